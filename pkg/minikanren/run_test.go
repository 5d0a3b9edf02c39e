package minikanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrivialEquality unifies the query variable directly with an
// atom.
func TestTrivialEquality(t *testing.T) {
	results := Run(1, func(q *Var) Goal {
		return Eq(q, NewAtom(1))
	})
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].String())
}

// TestFreeVariableReification checks that an answer left unbound
// reifies to an Unassigned marker rather than surfacing a raw *Var.
func TestFreeVariableReification(t *testing.T) {
	results := Run(1, func(q *Var) Goal {
		return Fresh(func(y *Var) Goal {
			return Eq(q, y)
		})
	})
	require.Len(t, results, 1)
	assert.IsType(t, &Unassigned{}, results[0])
}

func TestRunRespectsLimit(t *testing.T) {
	x := newVar(0, "x")
	results := Run(2, func(q *Var) Goal {
		return Conj(Disj(Eq(x, NewAtom(1)), Disj(Eq(x, NewAtom(2)), Eq(x, NewAtom(3)))), Eq(q, x))
	})
	assert.Len(t, results, 2)
}

func TestRunStarReturnsAllAnswers(t *testing.T) {
	x := newVar(0, "x")
	results := RunStar(func(q *Var) Goal {
		return Conj(Disj(Eq(x, NewAtom(1)), Disj(Eq(x, NewAtom(2)), Eq(x, NewAtom(3)))), Eq(q, x))
	})
	assert.Len(t, results, 3)
}

func TestRunTraceHookFiresOnFresh(t *testing.T) {
	var events []string
	opt := WithRunTrace(func(event, detail string) {
		events = append(events, event)
	})

	Run(1, func(q *Var) Goal {
		return Fresh(func(y *Var) Goal {
			return Eq(q, y)
		})
	}, opt)

	assert.Contains(t, events, "run")
	assert.Contains(t, events, "fresh")
}

func TestSubstitutionsDriverStopsOnEmpty(t *testing.T) {
	x := newVar(0, "x")
	g := Disj(Eq(x, NewAtom(1)), Eq(x, NewAtom(2)))

	var seen int
	for range Substitutions(g, InitialState()) {
		seen++
	}
	assert.Equal(t, 2, seen)
}
