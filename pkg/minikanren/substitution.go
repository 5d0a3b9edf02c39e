package minikanren

import (
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

// Substitution is a finite, persistent mapping from variable identity to
// term. It is immutable: Extended always returns a new Substitution
// holding a copy of the old bindings. No variable ever maps to itself
// (Extended drops trivial self-bindings), and well-behaved callers never
// construct a cycle — the walking and reification algorithms below
// assume acyclicity and do not check for it.
type Substitution struct {
	bindings map[*Var]Term
}

// EmptySubstitution is the substitution with no bindings.
func EmptySubstitution() *Substitution {
	return &Substitution{bindings: map[*Var]Term{}}
}

// cycleCheckEnabled, when true, makes Extended reject rebinding an
// already-bound variable rather than silently overwriting it. Off by
// default to match the usual permissive Bind; flip it on for debugging
// via WithCycleCheck.
var cycleCheckEnabled = false

// WithCycleCheck toggles the debug-mode assertion that Extended refuses
// to rebind an already-bound variable. It is a package-level setting
// rather than a per-Substitution flag because the contract it enforces
// — "never extend with a variable that's already bound" — is a property
// of how the caller builds programs, not of any one substitution value.
// Intended for tests and interactive debugging, not concurrent
// production use.
func WithCycleCheck(enabled bool) {
	cycleCheckEnabled = enabled
}

// Walk returns the representative term for t under s: if t is a
// variable bound (directly or transitively) to some other term, Walk
// follows the chain and returns the final non-variable-or-unbound term.
// Walk does not recurse into the children of a composite term (list,
// map, or user Composite) — that is DeepWalk's job. Terminates under the
// substitution's acyclicity invariant.
func (s *Substitution) Walk(t Term) Term {
	v, ok := t.(*Var)
	if !ok {
		return t
	}
	bound, ok := s.bindings[v]
	if !ok {
		return t
	}
	return s.Walk(bound)
}

// Extended returns a new Substitution with the additional binding
// v -> t. No occurs check is performed: callers must avoid
// constructing cycles. When WithCycleCheck(true) is in effect, extending
// an already-bound variable panics with a wrapped error instead of
// silently overwriting it.
func (s *Substitution) Extended(v *Var, t Term) *Substitution {
	if tv, ok := t.(*Var); ok && tv == v {
		return s
	}
	if cycleCheckEnabled {
		if _, bound := s.bindings[v]; bound {
			panic(errors.Wrapf(errAlreadyBound, "variable %s, new value %s", v, t))
		}
	}
	next := make(map[*Var]Term, len(s.bindings)+1)
	for k, val := range s.bindings {
		next[k] = val
	}
	next[v] = t
	return &Substitution{bindings: next}
}

var errAlreadyBound = errors.New("minikanren: extended an already-bound variable")

// Unifying attempts to unify u and v under s, returning the extended
// substitution and true on success, or (nil, false) on failure. This is
// the only place unification failure surfaces, and it is not an error:
// callers fold it into Eq's empty Stream.
//
// Algorithm:
//  1. Walk both sides.
//  2. If they're already structurally equal, succeed with no new
//     bindings.
//  3. If either side is a variable, bind it to the other.
//  4. If both are Composite (List, Map, or a user-defined composite),
//     unify children pairwise in canonical order.
//  5. Otherwise (distinct atoms, or mismatched composite kinds), fail.
func (s *Substitution) Unifying(u, v Term) (*Substitution, bool) {
	u0 := s.Walk(u)
	v0 := s.Walk(v)

	if u0.Equal(v0) {
		return s, true
	}

	if uv, ok := u0.(*Var); ok {
		return s.Extended(uv, v0), true
	}
	if vv, ok := v0.(*Var); ok {
		return s.Extended(vv, u0), true
	}

	uc, uok := u0.(Composite)
	vc, vok := v0.(Composite)
	if uok && vok {
		return s.unifyComposite(uc, vc)
	}

	return nil, false
}

// unifyComposite unifies two composites field-by-field. Lists unify
// head-then-tail; maps fail fast on mismatched key sets and otherwise
// unify values in sorted-key order for deterministic behavior.
func (s *Substitution) unifyComposite(u, v Composite) (*Substitution, bool) {
	um, uok := u.(*Map)
	vm, vok := v.(*Map)
	if uok != vok {
		return nil, false
	}
	if uok {
		return s.unifyMaps(um, vm)
	}

	// Different composite kinds (e.g. two distinct user-defined
	// Composite types, or a List against a user Composite) are
	// incompatible even if they happen to have the same arity.
	if reflect.TypeOf(u) != reflect.TypeOf(v) {
		return nil, false
	}

	uc, vc := u.Children(), v.Children()
	if len(uc) != len(vc) {
		return nil, false
	}

	cur := s
	for i := range uc {
		next, ok := cur.Unifying(uc[i], vc[i])
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func (s *Substitution) unifyMaps(u, v *Map) (*Substitution, bool) {
	uk, vk := u.Keys(), v.Keys()
	if len(uk) != len(vk) {
		return nil, false
	}
	for i := range uk {
		if uk[i] != vk[i] {
			return nil, false
		}
	}
	sort.Strings(uk)
	cur := s
	for _, k := range uk {
		uv, _ := u.Get(k)
		vv, _ := v.Get(k)
		next, ok := cur.Unifying(uv, vv)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// DeepWalk resolves t to a form free of remaining indirections: like
// Walk, but also recurses into the children of list/map/composite terms,
// producing a fully-walked term tree.
func (s *Substitution) DeepWalk(t Term) Term {
	w := s.Walk(t)
	c, ok := w.(Composite)
	if !ok {
		return w
	}
	children := c.Children()
	if len(children) == 0 {
		return w
	}
	walked := make([]Term, len(children))
	for i, child := range children {
		walked[i] = s.DeepWalk(child)
	}
	return c.Rebuild(walked)
}

// Reified returns a fresh substitution where every key v of s maps to
// DeepWalk(v) if that yields a non-variable, or to a fresh Unassigned
// marker otherwise. Unassigned indices are assigned in first-encounter
// order and are local to this call — the process-wide mutable index
// table some reification schemes use is deliberately not used here;
// each call to Reified gets its own local table, discarded when it
// returns.
//
// Free variables that Reified encounters only while walking another
// key's value (e.g. y in `x` when x is unbound but was unified with y)
// are also recorded in the result, under the same Unassigned as
// whichever key led to them — this is what makes two variables unified
// to each other reify to the same Unassigned index regardless of which
// one happens to be a bindings key.
func (s *Substitution) Reified() *Substitution {
	table := map[*Var]*Unassigned{}
	next := make(map[*Var]Term, len(s.bindings))
	for v := range s.bindings {
		next[v] = s.reifyTerm(s.DeepWalk(v), table, next)
	}
	return &Substitution{bindings: next}
}

// reifyTerm replaces any remaining free variable in t with a stable
// Unassigned marker, assigning indices from table in first-encounter
// order within this reification run, and records the mapping in next so
// that a later direct Lookup of that variable sees the same marker.
func (s *Substitution) reifyTerm(t Term, table map[*Var]*Unassigned, next map[*Var]Term) Term {
	switch x := t.(type) {
	case *Var:
		if u, ok := table[x]; ok {
			return u
		}
		u := &Unassigned{index: len(table)}
		table[x] = u
		if _, present := next[x]; !present {
			next[x] = u
		}
		return u
	case Composite:
		children := x.Children()
		if len(children) == 0 {
			return x
		}
		rebuilt := make([]Term, len(children))
		for i, c := range children {
			rebuilt[i] = s.reifyTerm(c, table, next)
		}
		return x.Rebuild(rebuilt)
	default:
		return t
	}
}

// Lookup returns the term directly bound to v in s, and whether v is
// bound at all. Unlike Walk, it does not follow chains; it is a thin
// accessor used by the result surface.
func (s *Substitution) Lookup(v *Var) (Term, bool) {
	t, ok := s.bindings[v]
	return t, ok
}

// Len returns the number of bindings in s.
func (s *Substitution) Len() int {
	return len(s.bindings)
}

// Each calls fn once for every (variable, term) binding in s, in
// unspecified order.
func (s *Substitution) Each(fn func(v *Var, t Term)) {
	for v, t := range s.bindings {
		fn(v, t)
	}
}
