package shared

import "strings"

// BuildCacheKey joins a key prefix with its parts using ":" so related
// entries group together in redis.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}
