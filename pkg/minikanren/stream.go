package minikanren

// Stream is a lazy, potentially infinite sequence of answer states. It
// has exactly three shapes:
//
//   - empty: no more answers.
//   - mature(state, tail): a head answer plus a (possibly lazy) tail.
//   - immature(thunk): a suspension that, when forced, yields another
//     Stream.
//
// Streams are produced by Eq, consumed by iteration (see Run), and
// composed by Mplus/Bind. Forcing an immature stream may itself return
// another immature stream, which is why Realize loops rather than
// recursing once.
type Stream struct {
	kind streamKind
	// mature fields
	head State
	tail *Stream
	// immature field
	thunk func() *Stream
}

type streamKind int

const (
	streamEmpty streamKind = iota
	streamMature
	streamImmature
)

// Empty is the stream with no answers.
var Empty = &Stream{kind: streamEmpty}

// Mature builds a stream whose first answer is head, followed by tail.
func Mature(head State, tail *Stream) *Stream {
	return &Stream{kind: streamMature, head: head, tail: tail}
}

// ImmatureStream suspends the production of a stream behind a thunk,
// deferring it until something forces the stream via Realize. User code
// should generally reach for the Delayed goal combinator (goal.go)
// rather than constructing this directly.
func ImmatureStream(thunk func() *Stream) *Stream {
	return &Stream{kind: streamImmature, thunk: thunk}
}

// IsEmpty reports whether s is the empty stream. s must already be
// realized (not immature); Realize(s) first if that isn't guaranteed.
func (s *Stream) IsEmpty() bool { return s.kind == streamEmpty }

// Realize forces s, repeatedly invoking immature thunks, until the
// result is empty or mature. It is idempotent on those two forms: a
// stream that is already empty or mature is returned unchanged.
// Realize itself must never return an immature stream — that would be a
// contract violation, and indicates a bug in Mplus/Bind rather than
// anything a caller can recover from.
func Realize(s *Stream) *Stream {
	for s.kind == streamImmature {
		s = s.thunk()
	}
	if s.kind == streamImmature {
		panic(errRealizeInvariant)
	}
	return s
}

// Mplus merges two streams, interleaving their answers so that a
// divergent (always-immature) left operand can never starve a right
// operand that is ready to produce an answer. The defining rule is the
// swap in the immature case: forcing is deferred, and the *other* stream
// moves to the front of the merge — this dovetailing is what makes the
// search interleaving-complete rather than naive depth-first.
func Mplus(s1, s2 *Stream) *Stream {
	switch s1.kind {
	case streamEmpty:
		return s2
	case streamMature:
		return Mature(s1.head, Mplus(s1.tail, s2))
	case streamImmature:
		return ImmatureStream(func() *Stream {
			return Mplus(s2, s1.thunk())
		})
	default:
		panic(errUnknownStreamKind)
	}
}

// Bind maps goal g across every answer in s, merging the resulting
// streams with Mplus so that answers from earlier states in s are
// interleaved with answers from later ones rather than waiting on them
// in sequence (this is what makes conjunction Bind).
func Bind(s *Stream, g Goal) *Stream {
	switch s.kind {
	case streamEmpty:
		return Empty
	case streamMature:
		return Mplus(g(s.head), Bind(s.tail, g))
	case streamImmature:
		return ImmatureStream(func() *Stream {
			return Bind(s.thunk(), g)
		})
	default:
		panic(errUnknownStreamKind)
	}
}
