package mine_test

import (
	"fmt"

	"github.com/katalvlaran/fim/mine"
)

// ExampleEclat mines every itemset occurring in at least two
// transactions, smallest support threshold form: negative = absolute.
func ExampleEclat() {
	tracts := [][]string{
		{"bread", "butter"},
		{"bread", "butter"},
		{"bread", "milk"},
	}

	res, err := mine.Eclat(tracts, mine.WithSupport(-2))
	if err != nil {
		fmt.Println("mine:", err)

		return
	}
	for _, p := range res.Patterns {
		fmt.Printf("%v : %g\n", p.Items, p.Support)
	}

	// Output:
	// [bread] : 3
	// [bread butter] : 2
	// [butter] : 2
}

// ExampleRun_rules derives association rules that always hold.
func ExampleRun_rules() {
	tracts := [][]string{
		{"bread", "butter"},
		{"bread", "butter"},
		{"bread", "milk"},
	}

	res, err := mine.Run(tracts,
		mine.WithTarget(mine.TargetRules),
		mine.WithSupport(-2),
		mine.WithConfidence(100))
	if err != nil {
		fmt.Println("mine:", err)

		return
	}
	for _, r := range res.Rules {
		fmt.Printf("%v -> %v (conf %g)\n", r.Antecedent, r.Consequent, r.Confidence)
	}

	// Output:
	// [butter] -> [bread] (conf 1)
}
