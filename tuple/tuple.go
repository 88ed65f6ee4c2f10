package tuple

// Tuple is implemented by all the tuple types in this package.
// It cannot be implemented outside it.
type Tuple interface {
	// Len returns the number of values in the tuple.
	Len() int

	// Values returns the values in the tuple, in order.
	// The returned slice is never nil.
	Values() []any

	isTuple()
}

var (
	_ Tuple = T0{}
	_ Tuple = T1[int]{}
	_ Tuple = T3[int, string, bool]{}
)
