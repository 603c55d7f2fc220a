package common

// Coalesce returns the first non-zero value in the list. With no non-zero
// value present it returns the zero value for T. Used for layering optional
// overrides on top of defaults.
//
// Parameters:
//   - values: the candidate values, highest priority first
//
// Returns:
//   - T: the first non-zero value, or the zero value if none
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
