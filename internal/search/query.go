package search

import (
	"strconv"

	"github.com/rowantrollope/redis-route-cli/internal/router"
)

// parseHits converts an FT.SEARCH KNN reply into route hits. The reply
// shape is: total, key, [field, value, ...], key, [...], ... Malformed
// entries are skipped rather than failing the whole reply.
func parseHits(result interface{}) []router.RefHit {
	slice, ok := result.([]interface{})
	if !ok || len(slice) < 1 {
		return nil
	}

	total, ok := toInt64(slice[0])
	if !ok || total == 0 {
		return nil
	}

	var hits []router.RefHit
	for i := 1; i+1 < len(slice); i += 2 {
		fields, ok := slice[i+1].([]interface{})
		if !ok {
			continue
		}

		hit := router.RefHit{Distance: -1}
		for j := 0; j+1 < len(fields); j += 2 {
			key := toString(fields[j])
			val := toString(fields[j+1])
			switch key {
			case "route":
				hit.Route = val
			case "vector_score":
				if d, err := strconv.ParseFloat(val, 64); err == nil {
					hit.Distance = d
				}
			}
		}

		if hit.Route != "" && hit.Distance >= 0 {
			hits = append(hits, hit)
		}
	}
	return hits
}

// parseInfoReply converts an FT.INFO reply (flat key-value list) into a map.
func parseInfoReply(result interface{}) map[string]interface{} {
	info := make(map[string]interface{})
	slice, ok := result.([]interface{})
	if !ok {
		return info
	}
	for i := 0; i+1 < len(slice); i += 2 {
		key := toString(slice[i])
		if key == "" {
			continue
		}
		info[key] = slice[i+1]
	}
	return info
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return ""
	}
}

func toInt64(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	default:
		return 0, false
	}
}
