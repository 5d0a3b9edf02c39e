package minikanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *Stream, limit int) []State {
	var out []State
	for {
		if limit > 0 && len(out) >= limit {
			break
		}
		s = Realize(s)
		if s.IsEmpty() {
			break
		}
		out = append(out, s.head)
		s = s.tail
	}
	return out
}

func TestRealizeIsIdempotentOnEmpty(t *testing.T) {
	assert.Same(t, Empty, Realize(Empty))
}

func TestRealizeForcesImmatureChain(t *testing.T) {
	st := InitialState()
	deep := Mature(st, Empty)
	s := ImmatureStream(func() *Stream {
		return ImmatureStream(func() *Stream {
			return deep
		})
	})

	realized := Realize(s)
	require.Equal(t, streamMature, realized.kind)
	assert.Equal(t, deep, realized)
}

func TestMplusEmptyLeftReturnsRight(t *testing.T) {
	right := Mature(InitialState(), Empty)
	assert.Same(t, right, Mplus(Empty, right))
}

func TestMplusMatureLeftKeepsHeadFirst(t *testing.T) {
	leftState := InitialState().withNextNewName()
	left := Mature(leftState, Empty)
	right := Mature(InitialState(), Empty)

	merged := Realize(Mplus(left, right))
	require.Equal(t, streamMature, merged.kind)
	assert.Equal(t, leftState, merged.head)
}

// TestMplusFairness checks that a divergent left branch must not
// prevent a right branch's answer from surfacing.
func TestMplusFairness(t *testing.T) {
	var loop func() *Stream
	loop = func() *Stream {
		return ImmatureStream(loop)
	}

	right := Mature(InitialState(), Empty)
	merged := Mplus(loop(), right)

	realized := Realize(merged)
	require.Equal(t, streamMature, realized.kind, "the right branch's answer must eventually surface")
}

func TestBindEmptyIsEmpty(t *testing.T) {
	g := func(State) *Stream { return Mature(InitialState(), Empty) }
	assert.Same(t, Empty, Bind(Empty, g))
}

func TestBindAppliesGoalToEachAnswer(t *testing.T) {
	x := newVar(0, "x")
	st := InitialState()
	s1 := Mature(st, Mature(st.withNextNewName(), Empty))

	g := func(in State) *Stream {
		sub, ok := in.sub.Unifying(x, NewAtom(1))
		if !ok {
			return Empty
		}
		return Mature(in.withNewSubstitution(sub), Empty)
	}

	out := collect(Bind(s1, g), 0)
	assert.Len(t, out, 2)
	for _, st := range out {
		assert.True(t, st.sub.DeepWalk(x).Equal(NewAtom(1)))
	}
}
