package core_test

import (
	"fmt"

	"github.com/katalvlaran/boolnet/core"
)

// ExampleNetwork_NextState follows a short synchronous orbit of a 3-node
// network until it reaches a fixed point.
func ExampleNetwork_NextState() {
	bn, _ := core.New([]core.Node{
		{Parents: []int{0, 1}, Truth: []bool{true, true, false, true}},
		{Parents: []int{0, 1}, Truth: []bool{false, false, false, true}},
		{Parents: []int{0, 1, 2}, Truth: []bool{false, false, false, false, true, true, true, false}},
	})

	s := core.State(2)
	for i := 0; i < 3; i++ {
		next, _ := bn.NextState(s)
		fmt.Printf("%d -> %d\n", s, next)
		s = next
	}
	// Output:
	// 2 -> 0
	// 0 -> 1
	// 1 -> 1
}

// ExampleNetwork_Successors lists the asynchronous successors of one state.
func ExampleNetwork_Successors() {
	bn, _ := core.New([]core.Node{
		{Parents: []int{1}, Truth: []bool{true, false}}, // x0' = ¬x1
		{Parents: []int{0}, Truth: []bool{true, false}}, // x1' = ¬x0
	})

	succs, _ := bn.Successors(0) // state 00: both flips turn a node on
	fmt.Println(succs)
	// Output: [1 2]
}
