package utils

// Value dereferences v, substituting the zero value for nil.
func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

// Ptr returns a pointer to v. Handy for the optional token-response fields,
// which are pointers so that absence stays distinguishable from zero.
func Ptr[T any](v T) *T {
	return &v
}
