package minikanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarEquality(t *testing.T) {
	t.Run("distinct variables are not equal", func(t *testing.T) {
		v1 := newVar(0, "x")
		v2 := newVar(1, "x")
		if v1.Equal(v2) {
			t.Error("variables with different identity should not be equal")
		}
	})

	t.Run("a variable equals itself", func(t *testing.T) {
		v := newVar(0, "x")
		if !v.Equal(v) {
			t.Error("a variable should equal itself")
		}
	})

	t.Run("a variable is never equal to a non-variable", func(t *testing.T) {
		v := newVar(0, "x")
		if v.Equal(NewAtom(0)) {
			t.Error("variable should not equal an atom sharing no identity")
		}
	})
}

func TestAtomEquality(t *testing.T) {
	assert.True(t, NewAtom(1).Equal(NewAtom(1)))
	assert.False(t, NewAtom(1).Equal(NewAtom(2)))
	assert.False(t, NewAtom(1).Equal(NewAtom(int64(1))), "cross-type atoms must be unequal")
	assert.False(t, NewAtom("a").Equal(NewAtom(1)))
}

func TestListEquality(t *testing.T) {
	a := ListOf(NewAtom(1), NewAtom(2))
	b := ListOf(NewAtom(1), NewAtom(2))
	c := ListOf(NewAtom(1), NewAtom(3))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, EmptyList.Equal(EmptyList))
	assert.False(t, EmptyList.Equal(a))
}

func TestMapEquality(t *testing.T) {
	m1 := NewMap(map[string]Term{"a": NewAtom(1), "b": NewAtom(2)})
	m2 := NewMap(map[string]Term{"b": NewAtom(2), "a": NewAtom(1)})
	m3 := NewMap(map[string]Term{"a": NewAtom(1)})

	assert.True(t, m1.Equal(m2), "key order must not affect equality")
	assert.False(t, m1.Equal(m3), "different key sets must be unequal")
}

func TestUnassignedNeverEqual(t *testing.T) {
	u1 := &Unassigned{index: 0}
	u2 := &Unassigned{index: 0}
	assert.False(t, u1.Equal(u2), "Unassigned is a presentation-only sentinel, never equal to anything")
	assert.False(t, u1.Equal(u1))
}

func TestUnassignedString(t *testing.T) {
	assert.Equal(t, "_₀", (&Unassigned{index: 0}).String())
	assert.Equal(t, "_₁", (&Unassigned{index: 1}).String())
	assert.Equal(t, "_₁₀", (&Unassigned{index: 10}).String())
}

func TestListString(t *testing.T) {
	assert.Equal(t, "()", EmptyList.String())
	assert.Equal(t, "(1 2 3)", ListOf(NewAtom(1), NewAtom(2), NewAtom(3)).String())
}

func TestMapString(t *testing.T) {
	m := NewMap(map[string]Term{"b": NewAtom(2), "a": NewAtom(1)})
	assert.Equal(t, "{a: 1, b: 2}", m.String(), "keys render in sorted order")
}
