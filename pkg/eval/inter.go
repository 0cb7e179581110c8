package eval

// Optional is implemented by containers that may hold no value.
type Optional[T any] interface {
	// Get returns the value and whether it is present
	Get() (T, bool)
}

// Fallible is implemented by containers that hold a value or an error.
type Fallible[T any] interface {
	// Get returns the value and the error, exactly one of them meaningful
	Get() (T, error)
}

// WithCancel extends Fallible with cancellation support
type WithCancel[T any] interface {
	Fallible[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}
