package minikanren

import "reflect"

// Goal is a pure function from a State to a Stream of successor states.
// It is the fundamental building block of a relational program: Eq,
// Disj, Conj, Fresh and Delayed all produce Goals, and Goals compose
// freely. No Goal mutates shared state; the fresh-name counter is
// threaded explicitly through the State argument.
type Goal func(State) *Stream

// TraceFunc observes goal-level scheduling events for diagnostics. It is
// never required: the zero value (nil) disables tracing entirely, and
// no Goal's behavior depends on whether a trace hook is installed. See
// cmd/example for a zap-backed implementation.
type TraceFunc func(event string, detail string)

var trace TraceFunc

// SetTrace installs a diagnostic hook invoked by Fresh, FreshN, Delayed
// and Run. Pass
// nil to disable tracing (the default). This exists purely for
// observability outside the pure core and has no effect on search
// results.
func SetTrace(f TraceFunc) {
	trace = f
}

func emit(event, detail string) {
	if trace != nil {
		trace(event, detail)
	}
}

// Eq (≡) is the unification goal: it succeeds with exactly one answer
// when u and v unify, and fails (the empty stream) otherwise.
func Eq(u, v Term) Goal {
	return func(st State) *Stream {
		sub, ok := st.sub.Unifying(u, v)
		if !ok {
			return Empty
		}
		return Mature(st.withNewSubstitution(sub), Empty)
	}
}

// Disj (∨) returns a goal that succeeds wherever either g or h succeeds,
// merging their streams with Mplus so the search stays interleaving-fair
// even if one side diverges.
func Disj(g, h Goal) Goal {
	return func(st State) *Stream {
		return Mplus(g(st), h(st))
	}
}

// Conj (∧) returns a goal that succeeds wherever g succeeds and, for
// each of those successes, h also succeeds — i.e. conjunction is Bind.
func Conj(g, h Goal) Goal {
	return func(st State) *Stream {
		return Bind(g(st), h)
	}
}

// DisjMany folds Disj over goals right-to-left: DisjMany(g1, g2, g3) is
// Disj(g1, Disj(g2, g3)). Conde is the more common spelling of this.
// Calling it with zero goals returns Failure; with one, returns that
// goal unchanged.
func DisjMany(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Failure
	case 1:
		return goals[0]
	default:
		return Disj(goals[0], DisjMany(goals[1:]...))
	}
}

// ConjMany folds Conj over goals right-to-left. Calling it with zero
// goals returns Success; with one, returns that goal unchanged.
func ConjMany(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Success
	case 1:
		return goals[0]
	default:
		return Conj(goals[0], ConjMany(goals[1:]...))
	}
}

// Conde is an alias for DisjMany, following miniKanren's conventional
// naming for an n-ary choice point ("cond", relational style).
func Conde(goals ...Goal) Goal {
	return DisjMany(goals...)
}

// Fresh introduces one new logic variable, named, and hands it to
// constructor to build the resulting goal. Nested Fresh calls each
// advance the counter in State, so distinct Fresh invocations along any
// derivation path always mint distinct variables.
func Fresh(constructor func(v *Var) Goal) Goal {
	return func(st State) *Stream {
		name := st.nextUnusedName()
		v := newVar(st.nextID, name)
		emit("fresh", name)
		return constructor(v)(st.withNextNewName())
	}
}

// VarFactory lazily allocates named variables on first access to each
// subscript, advancing the factory's underlying state every time a new
// one is minted. It is the multi-variable convenience variant that
// FreshN(n, ...) below is built directly on.
type VarFactory struct {
	st   *State
	vars map[int]*Var
}

// At returns the i-th variable from the factory, minting it (and
// advancing the underlying state) on first access.
func (f *VarFactory) At(i int) *Var {
	if v, ok := f.vars[i]; ok {
		return v
	}
	name := f.st.nextUnusedName()
	v := newVar(f.st.nextID, name)
	emit("fresh", name)
	*f.st = f.st.withNextNewName()
	f.vars[i] = v
	return v
}

// FreshN introduces n fresh variables at once via a VarFactory, for
// goals whose arity isn't known until the constructor runs (or that
// would otherwise need many nested Fresh calls).
func FreshN(n int, constructor func(f *VarFactory) Goal) Goal {
	return func(st State) *Stream {
		factory := &VarFactory{st: &st, vars: map[int]*Var{}}
		g := constructor(factory)
		for i := 0; i < n; i++ {
			factory.At(i)
		}
		return g(st)
	}
}

// Delayed wraps g so its body is not evaluated until the search
// scheduler actually forces the resulting stream. This is what makes
// recursive, potentially-divergent goal bodies safe to compose with
// Disj/Conj: without it, a recursive call inside a goal constructor
// would recurse eagerly and never return.
func Delayed(g Goal) Goal {
	return func(st State) *Stream {
		emit("delayed", "")
		return ImmatureStream(func() *Stream {
			return g(st)
		})
	}
}

// Success always succeeds, producing exactly the state it was given.
var Success Goal = Eq(trueTerm, trueTerm)

// Failure always fails, producing no answers.
var Failure Goal = Eq(trueTerm, falseTerm)

var (
	trueTerm  = NewAtom(true)
	falseTerm = NewAtom(false)
)

// InEnvironment hands the current substitution to constructor to build a
// goal, letting that goal's decisions depend on what's already known
// about the terms involved. The substitution is passed as it is; it is
// not reified first, so free variables are still *Var values. It
// underlies the type-test convenience goals below.
func InEnvironment(constructor func(sub *Substitution) Goal) Goal {
	return func(st State) *Stream {
		return constructor(st.sub)(st)
	}
}

// IsVariable succeeds iff t is (still) an unbound variable under the
// current substitution.
func IsVariable(t Term) Goal {
	return InEnvironment(func(sub *Substitution) Goal {
		_, isVar := sub.Walk(t).(*Var)
		return boolGoal(isVar)
	})
}

// IsAtom succeeds iff t walks to an *Atom under the current
// substitution. If ofType is given, it must contain exactly one sample
// value, and the goal additionally requires the atom's underlying Go
// type to match reflect.TypeOf(ofType[0]) — e.g. IsAtom(t, 0) accepts
// only int atoms, matching spec.md's isAtom(t, T) signature.
func IsAtom(t Term, ofType ...interface{}) Goal {
	return InEnvironment(func(sub *Substitution) Goal {
		a, ok := sub.Walk(t).(*Atom)
		if !ok {
			return Failure
		}
		if len(ofType) == 0 {
			return Success
		}
		want := reflect.TypeOf(ofType[0])
		got := reflect.TypeOf(a.Value())
		return boolGoal(got == want)
	})
}

// IsList succeeds iff t walks to a *List under the current
// substitution.
func IsList(t Term) Goal {
	return InEnvironment(func(sub *Substitution) Goal {
		_, ok := sub.Walk(t).(*List)
		return boolGoal(ok)
	})
}

// IsMap succeeds iff t walks to a *Map under the current substitution.
func IsMap(t Term) Goal {
	return InEnvironment(func(sub *Substitution) Goal {
		_, ok := sub.Walk(t).(*Map)
		return boolGoal(ok)
	})
}

func boolGoal(b bool) Goal {
	if b {
		return Success
	}
	return Failure
}
