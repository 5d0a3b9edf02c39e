package minikanren_test

import (
	"fmt"

	kanren "github.com/relprog/gokanren/pkg/minikanren"
)

// ExampleRun demonstrates the simplest possible program: constrain the
// query variable to equal a single atom.
func ExampleRun() {
	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return kanren.Eq(q, kanren.NewAtom("hello"))
	})
	fmt.Println(results[0])
	// Output: hello
}

// ExampleDisj shows a query variable with two possible values, produced
// in the order the disjunction introduces them.
func ExampleDisj() {
	results := kanren.Run(10, func(q *kanren.Var) kanren.Goal {
		return kanren.Disj(
			kanren.Eq(q, kanren.NewAtom(1)),
			kanren.Eq(q, kanren.NewAtom(2)),
		)
	})
	fmt.Println(results)
	// Output: [1 2]
}

// ExampleConj shows two variables constrained in conjunction, each
// bound by a separate equality goal.
func ExampleConj() {
	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return kanren.Fresh(func(x *kanren.Var) kanren.Goal {
			return kanren.ConjMany(
				kanren.Eq(x, kanren.NewAtom(1)),
				kanren.Eq(q, x),
			)
		})
	})
	fmt.Println(results[0])
	// Output: 1
}

// ExampleFresh introduces a fresh variable, binds it, and uses it inside
// the list that q is bound to.
func ExampleFresh() {
	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return kanren.Fresh(func(x *kanren.Var) kanren.Goal {
			return kanren.ConjMany(
				kanren.Eq(x, kanren.NewAtom(2)),
				kanren.Eq(q, kanren.ListOf(kanren.NewAtom(1), x)),
			)
		})
	})
	fmt.Println(results[0])
	// Output: (1 2)
}

// ExampleRunStar collects every answer to a finite disjunction.
func ExampleRunStar() {
	results := kanren.RunStar(func(q *kanren.Var) kanren.Goal {
		return kanren.Conde(
			kanren.Eq(q, kanren.NewAtom("a")),
			kanren.Eq(q, kanren.NewAtom("b")),
			kanren.Eq(q, kanren.NewAtom("c")),
		)
	})
	fmt.Println(results)
	// Output: [a b c]
}
