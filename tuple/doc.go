// Package tuple provides a collection of generic struct types
// that hold a specific number of values, and structural
// operations over them.
//
// The type TN holds N values: T0 holds none, and T3[A0, A1, A2]
// holds values of types A0, A1 and A2 in fields of the same names.
// MkTN constructs a TN, inferring its type parameters.
//
// The operations are provided for every tuple length up to Max.
// Their names encode the lengths of their operands:
//
//	Join_M_N  - joins a TM and a TN into a T(M+N)
//	Split_M_N - splits a T(M+N) into a TM and a TN
//	TN.AtI    - returns the value at index I of a TN
//
// So, for example:
//
//	Join_2_1(MkT2(1, "b"), MkT1(true))
//
// returns a T3[int, string, bool] holding 1, "b" and true, and
//
//	Split_2_1(MkT3(1, "b", true))
//
// returns it back to the original pair. Split_M_N is the inverse
// of Join_M_N. Combinations beyond Max are not declared, so
// using one is a compile error rather than a run-time failure.
//
// At methods copy the value out of the tuple, which is left unchanged.
// To operate on tuples by reference, use PtrsN, which
// returns a tuple of pointers to the original values:
//
//	Join_1_1(Ptrs1(&a), Ptrs1(&b))
//
// By default Max is 16. Building with one of the tags tuple20,
// tuple24, tuple28 or tuple32 raises it to that number. Higher
// tiers only add declarations: code that compiles with a lower
// Max compiles unchanged with a higher one.
package tuple

//go:generate go run ../cmd/tuplegen --dir .
