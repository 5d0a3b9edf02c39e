package minikanren

import "fmt"

// State pairs a Substitution with the next unused fresh-name counter.
// States are immutable; every "update" below returns a successor value,
// never mutates s. The counter increases monotonically along every
// derivation path (it is never reset across disjunctive branches) so
// that concurrently alive fresh variables always have distinct names.
type State struct {
	sub    *Substitution
	nextID int64
}

// InitialState returns the empty starting state: no bindings, counter at
// zero.
func InitialState() State {
	return State{sub: EmptySubstitution(), nextID: 0}
}

// Substitution returns the state's current substitution.
func (s State) Substitution() *Substitution {
	return s.sub
}

// nextUnusedName returns a freshly minted display name derived from the
// counter, without advancing it.
func (s State) nextUnusedName() string {
	return fmt.Sprintf("$%d", s.nextID)
}

// withNewSubstitution returns a successor state with sub replaced and
// the same counter.
func (s State) withNewSubstitution(sub *Substitution) State {
	return State{sub: sub, nextID: s.nextID}
}

// withNextNewName returns a successor state with the same substitution
// and the counter advanced by one.
func (s State) withNextNewName() State {
	return State{sub: s.sub, nextID: s.nextID + 1}
}
