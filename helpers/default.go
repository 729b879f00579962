package helpers

import "time"

// DefaultString returns defaultValue when value is empty.
func DefaultString(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// DefaultInt64 returns defaultValue when value is 0.
// Note: If 0 is a legitimate, intentionally set value this function is not suitable for that field!!
func DefaultInt64(value int64, defaultValue int64) int64 {
	if value == 0 {
		return defaultValue
	}
	return value
}

// DefaultTimeDuration returns defaultValue when value is 0.
func DefaultTimeDuration(value time.Duration, defaultValue time.Duration) time.Duration {
	if value == 0 {
		return defaultValue
	}
	return value
}
