package rules_test

import (
	"fmt"

	"github.com/katalvlaran/summit/rules"
)

// ExampleEvaluate gates a C-side on both crystal hearts of its level.
func ExampleEvaluate() {
	gate := rules.HasAll("Level 1 A-Side Crystal Heart", "Level 1 B-Side Crystal Heart")

	inv := rules.NewInventory(1, nil)
	inv.Collect("Level 1 A-Side Crystal Heart", 1)
	fmt.Println(gate.Eval(inv, 1))

	inv.Collect("Level 1 B-Side Crystal Heart", 1)
	fmt.Println(gate.Eval(inv, 1))

	// Output:
	// false
	// true
}
