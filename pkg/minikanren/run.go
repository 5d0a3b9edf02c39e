package minikanren

import "github.com/google/uuid"

// RunOption configures a single Run/RunStar invocation. The only option
// today is WithRunTrace. WithCycleCheck (substitution.go) is not a
// RunOption: it is a package-level setter called directly.
type RunOption func(*runConfig)

type runConfig struct {
	trace TraceFunc
}

// WithRunTrace installs a TraceFunc scoped to a single Run/RunStar call,
// restored to the previous value when the call returns.
func WithRunTrace(f TraceFunc) RunOption {
	return func(c *runConfig) { c.trace = f }
}

// Run applies goalFunc to a fresh variable q in the initial state and
// returns up to n reified values for q, in the order Realize produces
// them. n <= 0 means "no limit" — equivalent to RunStar.
//
// Each call mints its own correlation id purely for trace-hook
// observability (never part of State, Term, or the returned values);
// two concurrent Run calls are always safe since State and Substitution
// are immutable, persistent values.
func Run(n int, goalFunc func(q *Var) Goal, opts ...RunOption) []Term {
	cfg := applyRunOptions(opts)
	runID := uuid.New()
	if cfg.trace != nil {
		prev := trace
		SetTrace(cfg.trace)
		defer SetTrace(prev)
	}
	emit("run", runID.String())

	st := InitialState()
	name := st.nextUnusedName()
	q := newVar(st.nextID, name)
	st = st.withNextNewName()

	g := goalFunc(q)
	stream := g(st)

	var results []Term
	for {
		if n > 0 && len(results) >= n {
			break
		}
		stream = Realize(stream)
		if stream.IsEmpty() {
			break
		}
		answer := stream.head
		reified := answer.sub.Reified()
		value := reified.DeepWalk(q)
		if _, free := value.(*Var); free {
			// q is unbound and no binding reaches it, so it is the only
			// free variable in this answer.
			value = &Unassigned{index: 0}
		}
		results = append(results, value)
		stream = stream.tail
	}
	return results
}

// RunStar is Run with no limit: it returns every answer. Like the
// classical miniKanren run*, it can run forever if goalFunc's search
// space is infinite — that's on the caller, the same as any other
// unbounded iteration.
func RunStar(goalFunc func(q *Var) Goal, opts ...RunOption) []Term {
	return Run(0, goalFunc, opts...)
}

func applyRunOptions(opts []RunOption) runConfig {
	var cfg runConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Substitutions exposes a goal's resulting stream, applied to an initial
// state, as a sequence of Substitutions for range-over-func iteration.
// Unlike Run, it
// does not reify or project to a single query variable — callers get the
// raw (unreified) Substitution for each answer and can walk or reify it
// themselves.
func Substitutions(g Goal, initial State) func(yield func(*Substitution) bool) {
	return func(yield func(*Substitution) bool) {
		stream := g(initial)
		for {
			stream = Realize(stream)
			if stream.IsEmpty() {
				return
			}
			if !yield(stream.head.sub) {
				return
			}
			stream = stream.tail
		}
	}
}
