package lowpoint_test

import (
	"fmt"

	"github.com/katalvlaran/lowpoint/grid"
	"github.com/katalvlaran/lowpoint/lowpoint"
)

// ExampleFindLowestPoint walks downhill from R3, C2 of the map below. Three
// routes end at altitude 44; 57→49→44 wins because its first drop (8) is the
// steepest at the point where the routes diverge.
//
//	      C0  C1  C2  C3
//	  R0  67  72  93   5
//	  R1  38  53  71  48
//	  R2  64  56  52  44
//	  R3  44  51  57  49
func ExampleFindLowestPoint() {
	g, err := grid.New([][]int{
		{67, 72, 93, 5},
		{38, 53, 71, 48},
		{64, 56, 52, 44},
		{44, 51, 57, 49},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := lowpoint.FindLowestPoint(g, 3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cell, res.Altitude, res.Drops)
	fmt.Println(res.Path)

	// Output:
	// R2, C3 44 [8 5]
	// [R3, C2 R3, C3 R2, C3]
}

// ExampleBetter compares two candidates that tie on altitude.
func ExampleBetter() {
	start := grid.Cell{Row: 3, Col: 2}
	viaLeft := lowpoint.Candidate{Cell: grid.Cell{Row: 3, Col: 0}, Altitude: 44, Drops: []int{6, 7}}
	viaRight := lowpoint.Candidate{Cell: grid.Cell{Row: 2, Col: 3}, Altitude: 44, Drops: []int{8, 5}}

	fmt.Println(lowpoint.Better(viaRight, viaLeft, start, lowpoint.Manhattan))
	fmt.Println(lowpoint.Better(viaLeft, viaRight, start, lowpoint.Manhattan))

	// Output:
	// true
	// false
}
