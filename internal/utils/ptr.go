package utils

func Ptr[T any](v T) *T {
	return &v
}

func OrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// OrDefault is OrZero with a caller supplied fallback, handy for printing optional fields
func OrDefault[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
