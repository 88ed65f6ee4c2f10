package tuple_test

import (
	"fmt"

	"github.com/rogpeppe/tupleops/tuple"
)

func Example_join() {
	j := tuple.Join_3_3(tuple.MkT3(1, "b", 3.5), tuple.MkT3("a", 5, true))
	fmt.Println(j.Len(), j)
	fmt.Println(j.At4())
	// Output:
	// 6 {1 b 3.5 a 5 true}
	// 5
}

func Example_split() {
	j := tuple.MkT6(1, "b", 3.5, "a", 5, true)
	l, r := tuple.Split_3_3(j)
	fmt.Println(l, r)
	// Output:
	// {1 b 3.5} {a 5 true}
}

func Example_ptrs() {
	a := tuple.MkT2("x", 1)
	b := tuple.MkT1(true)
	j := tuple.Join_2_1(tuple.Ptrs2(&a), tuple.Ptrs1(&b))
	*j.A1 = 2
	*j.A2 = false
	fmt.Println(a, b)
	// Output:
	// {x 2} {false}
}
