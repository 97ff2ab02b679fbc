package bst_test

import (
	"fmt"

	"github.com/e11jah/bst"
)

func Example() {
	m := bst.New[int, string]()
	m.Insert(5, "root")
	m.Insert(3, "left")
	m.Insert(7, "right")
	m.Insert(2, "leaf")
	m.Insert(4, "mid")

	fmt.Println(m.Height(), m.IsBalanced())

	if v, ok := m.Search(4); ok {
		fmt.Println(v)
	}

	fmt.Println(m.Delete(3))
	_, ok := m.Search(3)
	fmt.Println(ok, m.Height(), m.IsBalanced())

	// Output:
	// 3 true
	// mid
	// true
	// false 3 true
}
