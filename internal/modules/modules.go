// Package modules normalizes MODULE LIST replies.
//
// The raw reply shape differs depending on the client's response decoding:
// module names and versions arrive as strings, raw byte strings, or
// integers. Everything here decodes fields through a single uniform step
// before any comparison runs, and treats malformed input as absence rather
// than error.
package modules

import (
	"fmt"
	"strconv"
)

// Record is a normalized entry from a MODULE LIST reply.
type Record struct {
	Name    string
	Version string
}

// Find scans a raw MODULE LIST reply for a module with the given name.
// The match is case-sensitive and the first matching group wins. A reply
// that is not a list, or whose groups are malformed, yields (Record{},
// false); absence is a normal outcome, not an error.
//
// The reply is scanned at stride 2 over even indexes, with each even
// position treated as a module group. A trailing unpaired element is never
// inspected.
func Find(raw interface{}, name string) (Record, bool) {
	reply, ok := raw.([]interface{})
	if !ok {
		return Record{}, false
	}

	for i := 0; i+1 < len(reply); i += 2 {
		group, ok := reply[i].([]interface{})
		if !ok || len(group) < 4 {
			continue
		}
		if decodeField(group[1]) != name {
			continue
		}
		return Record{Name: name, Version: decodeField(group[3])}, true
	}
	return Record{}, false
}

// List normalizes every well-formed group in a raw MODULE LIST reply.
// Malformed groups are skipped; a reply that is not a list yields nil.
func List(raw interface{}) []Record {
	reply, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	var records []Record
	for i := 0; i+1 < len(reply); i += 2 {
		group, ok := reply[i].([]interface{})
		if !ok || len(group) < 4 {
			continue
		}
		records = append(records, Record{
			Name:    decodeField(group[1]),
			Version: decodeField(group[3]),
		})
	}
	return records
}

// decodeField turns a reply field into text. Byte strings decode as UTF-8,
// integers render in decimal, text passes through unchanged.
func decodeField(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}
