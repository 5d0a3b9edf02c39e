// Package minikanren implements a relational (logic) programming engine
// in the miniKanren tradition, embedded as a library for a host Go
// program. A program is built by composing a handful of small relational
// primitives — term equality (Eq), disjunction (Disj), conjunction
// (Conj), and fresh-variable introduction (Fresh) — and run to enumerate
// all substitutions under which it holds.
//
// # Core subsystems
//
// The package is organized around four tightly coupled pieces:
//
//   - Term algebra and substitution (term.go, substitution.go): the
//     representation of logic terms and the union-find-like walking
//     discipline used to resolve variable bindings.
//   - Unification (substitution.go): recursive structural unification
//     over composite terms (pairs/lists and string-keyed maps).
//   - Goal combinators and search streams (stream.go, goal.go): a lazy,
//     three-case stream plus the mplus/bind interleaving operators that
//     together implement complete search, even over non-terminating
//     relations.
//   - Fresh-variable allocation and execution state (state.go): an
//     immutable pair of a substitution and a monotonically increasing
//     name counter.
//
// # Non-goals
//
// This package does not implement constraint logic programming
// (disequality, symbolo, finite-domain constraints), tabling or
// memoization, negation, or an occurs check. It does not evaluate goals
// in parallel. See substitution.go for the consequences of omitting the
// occurs check.
package minikanren

import (
	"fmt"
	"sort"
	"strings"
)

// Term is a value in the term algebra: a variable, an atom, a list, a
// map, an Unassigned marker, or a user-defined Composite. Every Term
// implementation must provide a structural Equal that is reflexive,
// symmetric, transitive and total across the sum, and must never walk
// through a substitution itself — that is the Substitution's job (see
// substitution.go). Keeping the two layers separate prevents a cyclic
// dependency between Term and Substitution.
type Term interface {
	// Equal reports whether this term is structurally equal to other,
	// without consulting any substitution.
	Equal(other Term) bool

	// String renders the term for display. Variables render as their
	// display name, atoms via the host's value formatting, lists in a
	// parenthesized space-separated form such as (1 2 3), maps in a braced
	// key: value form such as {a: 1, b: 2},
	// and Unassigned markers as an underscore with a subscript index.
	String() string
}

// Composite is the extension hook for user-defined compound term
// variants. Anything implementing Composite participates in
// unification and deep-walk automatically: unification recursively
// unifies Children() pairwise, and deep-walk calls Rebuild with the
// deep-walked children.
type Composite interface {
	Term

	// Children returns the subterms of this composite in canonical
	// order.
	Children() []Term

	// Rebuild returns a new composite of the same kind with its
	// children replaced by the given terms, which must be the same
	// length as Children().
	Rebuild(children []Term) Term
}

// Var is a logic variable: a unique identity equipped with a stable
// display name. Two variables are equal iff they share identity — Go
// pointer identity here, since variables are always minted through Fresh,
// FreshN or Run and never copied by value.
type Var struct {
	id   int64
	name string
}

// newVar constructs a variable with the given id and display name. Not
// exported: variables are only created by Fresh, FreshN (VarFactory.At)
// and Run, each of which then advances the State counter with
// withNextNewName, so that the fresh-name counter and variable identity
// stay in lockstep.
func newVar(id int64, name string) *Var {
	return &Var{id: id, name: name}
}

// String returns the variable's display name if it has one, or its
// synthesized name ($N) otherwise.
func (v *Var) String() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("$%d", v.id)
}

// Equal reports whether other is the same variable, by identity.
func (v *Var) Equal(other Term) bool {
	o, ok := other.(*Var)
	return ok && o == v
}

// Atom is a ground, host-provided value. Equality between atoms of
// different underlying Go types is always false; equality between atoms
// of the same type delegates to Go's == operator, so the wrapped value
// must be comparable.
type Atom struct {
	value interface{}
}

// NewAtom wraps a comparable Go value as an atomic term.
func NewAtom(value interface{}) *Atom {
	return &Atom{value: value}
}

// Value returns the underlying Go value.
func (a *Atom) Value() interface{} {
	return a.value
}

func (a *Atom) String() string {
	return fmt.Sprintf("%v", a.value)
}

// Equal reports whether other is an Atom with the same dynamic type and
// value. Cross-type comparisons (Atom(1) vs Atom(int64(1))) are false.
func (a *Atom) Equal(other Term) bool {
	o, ok := other.(*Atom)
	if !ok {
		return false
	}
	if fmt.Sprintf("%T", a.value) != fmt.Sprintf("%T", o.value) {
		return false
	}
	return a.value == o.value
}

// List is either the empty list or a cons cell (head/tail pair). Lists
// unify and walk structurally, never by identity.
type List struct {
	// empty is true for the empty list (nil), in which case Head/Tail
	// are unused.
	empty bool
	head  Term
	tail  Term
}

// EmptyList is the canonical empty list term. It is safe to share: List
// values are never mutated after construction.
var EmptyList = &List{empty: true}

// Cons builds a new list cell with the given head and tail.
func Cons(head, tail Term) *List {
	return &List{head: head, tail: tail}
}

// ListOf builds a proper list out of the given terms, right-to-left, so
// that ListOf(a, b, c) is Cons(a, Cons(b, Cons(c, EmptyList))).
func ListOf(terms ...Term) Term {
	var result Term = EmptyList
	for i := len(terms) - 1; i >= 0; i-- {
		result = Cons(terms[i], result)
	}
	return result
}

// IsEmpty reports whether l is the empty list.
func (l *List) IsEmpty() bool { return l.empty }

// Head returns the list's head term. Calling it on the empty list
// panics, mirroring the classical car-of-nil error.
func (l *List) Head() Term {
	if l.empty {
		panic("minikanren: Head of empty list")
	}
	return l.head
}

// Tail returns the list's tail term. Calling it on the empty list
// panics, mirroring the classical cdr-of-nil error.
func (l *List) Tail() Term {
	if l.empty {
		panic("minikanren: Tail of empty list")
	}
	return l.tail
}

func (l *List) String() string {
	if l.empty {
		return "()"
	}
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(l.head.String())
	rest := l.tail
	for {
		switch t := rest.(type) {
		case *List:
			if t.empty {
				b.WriteByte(')')
				return b.String()
			}
			b.WriteByte(' ')
			b.WriteString(t.head.String())
			rest = t.tail
		default:
			// improper list: render the tail after a dot
			b.WriteString(" . ")
			b.WriteString(rest.String())
			b.WriteByte(')')
			return b.String()
		}
	}
}

// Equal reports whether other is a List with structurally equal head and
// tail (recursively).
func (l *List) Equal(other Term) bool {
	o, ok := other.(*List)
	if !ok {
		return false
	}
	if l.empty || o.empty {
		return l.empty == o.empty
	}
	return l.head.Equal(o.head) && l.tail.Equal(o.tail)
}

// Children implements Composite. The empty list has no children.
func (l *List) Children() []Term {
	if l.empty {
		return nil
	}
	return []Term{l.head, l.tail}
}

// Rebuild implements Composite.
func (l *List) Rebuild(children []Term) Term {
	if l.empty {
		return l
	}
	if len(children) != 2 {
		panic("minikanren: List.Rebuild needs exactly 2 children")
	}
	return Cons(children[0], children[1])
}

// Map is an unordered mapping from string keys to terms. Two maps are
// equal iff their key sets coincide and each paired value is
// structurally equal.
type Map struct {
	entries map[string]Term
}

// NewMap builds a Map term from a Go map. The argument is copied, so the
// caller's map may be mutated afterward without affecting the term.
func NewMap(entries map[string]Term) *Map {
	m := make(map[string]Term, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &Map{entries: m}
}

// Keys returns the map's keys in sorted order, giving deterministic
// iteration for unification and display.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the term bound to key and whether it was present.
func (m *Map) Get(key string) (Term, bool) {
	t, ok := m.entries[key]
	return t, ok
}

func (m *Map) String() string {
	keys := m.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, m.entries[k].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Equal reports whether other is a Map with the same key set and
// pointwise-equal values.
func (m *Map) Equal(other Term) bool {
	o, ok := other.(*Map)
	if !ok {
		return false
	}
	if len(m.entries) != len(o.entries) {
		return false
	}
	for k, v := range m.entries {
		ov, ok := o.entries[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Children implements Composite, returning values in sorted-key order so
// that Rebuild is its exact inverse.
func (m *Map) Children() []Term {
	keys := m.Keys()
	children := make([]Term, len(keys))
	for i, k := range keys {
		children[i] = m.entries[k]
	}
	return children
}

// Rebuild implements Composite.
func (m *Map) Rebuild(children []Term) Term {
	keys := m.Keys()
	if len(children) != len(keys) {
		panic("minikanren: Map.Rebuild children count mismatch")
	}
	entries := make(map[string]Term, len(keys))
	for i, k := range keys {
		entries[k] = children[i]
	}
	return &Map{entries: entries}
}

// Unassigned is a presentation-only marker that appears solely in
// reified output (never as input to a goal). It carries the small
// integer index assigned to the free variable it represents within one
// reification run.
type Unassigned struct {
	index int
}

func (u *Unassigned) String() string {
	return "_" + subscriptDigits(u.index)
}

// Equal always returns false: Unassigned is a sentinel, never equal to
// anything, including another Unassigned with the same index.
func (u *Unassigned) Equal(other Term) bool {
	return false
}

var subscriptRunes = [...]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

func subscriptDigits(n int) string {
	if n == 0 {
		return string(subscriptRunes[0])
	}
	var digits []rune
	for n > 0 {
		digits = append([]rune{subscriptRunes[n%10]}, digits...)
		n /= 10
	}
	return string(digits)
}
