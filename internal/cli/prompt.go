package cli

import "fmt"

// BuildPrompt generates the prompt string.
// Format: redis-route:<router-name>>
func BuildPrompt(routerName string, color bool) string {
	if color {
		// Green prompt
		return fmt.Sprintf("\033[32mredis-route:%s>\033[0m ", routerName)
	}
	return fmt.Sprintf("redis-route:%s> ", routerName)
}
