// Package main demonstrates basic relational programming patterns built
// on top of the gokanren core: unification, disjunctive choice,
// conjunctive combination, list/map structure, and the interleaving
// search that keeps recursive relations complete.
package main

import (
	"fmt"

	"github.com/google/uuid"
	kanren "github.com/relprog/gokanren/pkg/minikanren"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	fmt.Println("=== gokanren examples ===")
	fmt.Println()

	basicUnification(logger)
	multipleChoices(logger)
	listOperations(logger)
	mapOperations(logger)
	appendRelation(logger)
	interleavingFairness(logger)
}

// traceTo returns a kanren.RunOption that forwards search-scheduling
// events to a zap logger tagged with this run's correlation id. The
// correlation id exists purely for log correlation across concurrent
// Run calls; it is never part of State, Term, or the returned answers.
func traceTo(logger *zap.Logger, label string) kanren.RunOption {
	runID := uuid.New()
	return kanren.WithRunTrace(func(event, detail string) {
		logger.Debug("kanren event",
			zap.String("run", label),
			zap.String("run_id", runID.String()),
			zap.String("event", event),
			zap.String("detail", detail),
		)
	})
}

func basicUnification(logger *zap.Logger) {
	fmt.Println("1. Basic unification:")

	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return kanren.Eq(q, kanren.NewAtom("hello"))
	}, traceTo(logger, "basic-unification"))

	fmt.Printf("   q = \"hello\" => %v\n\n", results)
}

func multipleChoices(logger *zap.Logger) {
	fmt.Println("2. Disjunction (multiple choices):")

	results := kanren.Run(10, func(q *kanren.Var) kanren.Goal {
		return kanren.Conde(
			kanren.Eq(q, kanren.NewAtom(1)),
			kanren.Eq(q, kanren.NewAtom(2)),
			kanren.Eq(q, kanren.NewAtom(3)),
		)
	}, traceTo(logger, "multiple-choices"))

	fmt.Printf("   q ∈ {1,2,3} => %v\n\n", results)
}

func listOperations(logger *zap.Logger) {
	fmt.Println("3. List unification:")

	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return kanren.Fresh(func(x *kanren.Var) kanren.Goal {
			return kanren.Fresh(func(y *kanren.Var) kanren.Goal {
				u := kanren.Cons(kanren.NewAtom(1), kanren.Cons(x, kanren.EmptyList))
				v := kanren.Cons(y, kanren.Cons(kanren.NewAtom(2), kanren.EmptyList))
				return kanren.ConjMany(
					kanren.Eq(u, v),
					kanren.Eq(q, kanren.ListOf(x, y)),
				)
			})
		})
	}, traceTo(logger, "list-operations"))

	fmt.Printf("   unify (1 x) with (y 2), q=(x y) => %v\n\n", results)
}

func mapOperations(logger *zap.Logger) {
	fmt.Println("4. Map unification:")

	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return kanren.Fresh(func(x *kanren.Var) kanren.Goal {
			return kanren.Fresh(func(y *kanren.Var) kanren.Goal {
				u := kanren.NewMap(map[string]kanren.Term{"a": x, "b": kanren.NewAtom(2)})
				v := kanren.NewMap(map[string]kanren.Term{"a": kanren.NewAtom(1), "b": y})
				return kanren.ConjMany(
					kanren.Eq(u, v),
					kanren.Eq(q, kanren.ListOf(x, y)),
				)
			})
		})
	}, traceTo(logger, "map-operations"))

	fmt.Printf("   unify {a:x,b:2} with {a:1,b:y}, q=(x y) => %v\n\n", results)
}

// appendo relates three lists such that the third is the result of
// appending the first two. It is the canonical relational-programming
// smoke test, built entirely from the public core (Disj, Conj, Eq,
// Fresh, Delayed) to exercise recursive, potentially-divergent goal
// bodies end-to-end.
func appendo(l1, l2, l3 kanren.Term) kanren.Goal {
	return kanren.Disj(
		kanren.ConjMany(kanren.Eq(l1, kanren.EmptyList), kanren.Eq(l2, l3)),
		kanren.Delayed(func(st kanren.State) *kanren.Stream {
			return kanren.Fresh(func(a *kanren.Var) kanren.Goal {
				return kanren.Fresh(func(d *kanren.Var) kanren.Goal {
					return kanren.Fresh(func(res *kanren.Var) kanren.Goal {
						return kanren.ConjMany(
							kanren.Eq(l1, kanren.Cons(a, d)),
							kanren.Eq(l3, kanren.Cons(a, res)),
							appendo(d, l2, res),
						)
					})
				})
			})(st)
		}),
	)
}

func appendRelation(logger *zap.Logger) {
	fmt.Println("5. Relational append:")

	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		l1 := kanren.ListOf(kanren.NewAtom(1), kanren.NewAtom(2))
		l2 := kanren.ListOf(kanren.NewAtom(3))
		return appendo(l1, l2, q)
	}, traceTo(logger, "append-relation"))

	fmt.Printf("   append (1 2) (3) => %v\n\n", results)
}

func interleavingFairness(logger *zap.Logger) {
	fmt.Println("6. Interleaving fairness:")

	var loop func(z kanren.Term) kanren.Goal
	loop = func(z kanren.Term) kanren.Goal {
		return kanren.Delayed(func(st kanren.State) *kanren.Stream {
			return loop(z)(st)
		})
	}

	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return kanren.Fresh(func(z *kanren.Var) kanren.Goal {
			return kanren.Fresh(func(w *kanren.Var) kanren.Goal {
				return kanren.ConjMany(
					kanren.Disj(loop(z), kanren.Eq(w, kanren.NewAtom(42))),
					kanren.Eq(q, w),
				)
			})
		})
	}, traceTo(logger, "interleaving-fairness"))

	fmt.Printf("   loop(z) || w=42 => %v (first answer still arrives)\n\n", results)
}
