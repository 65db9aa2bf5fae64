package common

import "log"

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// ClampSmoothness restricts a configured smoothness value to [0, 1], logging when it had to.
//
// Parameters:
//   - name: the setting name used in the log line
//   - v: the configured smoothness
//
// Returns:
//   - float32: v clamped to [0, 1]
func ClampSmoothness(name string, v float32) float32 {
	c := Clamp01(v)
	if c != v {
		log.Printf("[Config] %s smoothness %v is outside [0, 1], clamped to %v", name, v, c)
	}
	return c
}
