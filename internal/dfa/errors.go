package dfa

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDFA is matched by every validation error.
	ErrInvalidDFA = errors.New("invalid DFA")

	// ErrUndefinedTransition is matched by *UndefinedTransitionError.
	ErrUndefinedTransition = errors.New("undefined transition")
)

// ValidationKind names the invariant a validation error reports.
type ValidationKind int

const (
	KindAcceptingStatesNotInStates ValidationKind = iota + 1
	KindStartStateNotInStates
	KindTransitionUsesUnknownSymbols
	KindTransitionFromUnknownState
	KindTransitionToUnknownState
	KindIncompleteTransitionFunction
)

var kindNames = map[ValidationKind]string{
	KindAcceptingStatesNotInStates:   "accepting_states_not_in_states",
	KindStartStateNotInStates:        "start_state_not_in_states",
	KindTransitionUsesUnknownSymbols: "transition_uses_unknown_symbols",
	KindTransitionFromUnknownState:   "transition_from_unknown_state",
	KindTransitionToUnknownState:     "transition_to_unknown_state",
	KindIncompleteTransitionFunction: "incomplete_transition_function",
}

// String returns a stable snake_case code for the kind.
func (k ValidationKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("validation_kind(%d)", int(k))
}

// ValidationError is implemented by every error Validate returns.
type ValidationError interface {
	error
	Kind() ValidationKind
}

// AcceptingStatesNotInStatesError reports final states missing from the state set.
type AcceptingStatesNotInStatesError[S comparable] struct {
	States []S
}

func (e *AcceptingStatesNotInStatesError[S]) Error() string {
	return fmt.Sprintf("accepting states should be in the list of states: %s", join(e.States))
}

func (e *AcceptingStatesNotInStatesError[S]) Kind() ValidationKind {
	return KindAcceptingStatesNotInStates
}

func (e *AcceptingStatesNotInStatesError[S]) Unwrap() error { return ErrInvalidDFA }

// StartStateNotInStatesError reports a start state missing from the state set.
type StartStateNotInStatesError[S comparable] struct {
	State S
}

func (e *StartStateNotInStatesError[S]) Error() string {
	return fmt.Sprintf("start state should be in the list of states: '%v'", e.State)
}

func (e *StartStateNotInStatesError[S]) Kind() ValidationKind {
	return KindStartStateNotInStates
}

func (e *StartStateNotInStatesError[S]) Unwrap() error { return ErrInvalidDFA }

// TransitionUsesUnknownSymbolsError reports transition keys whose symbol is
// not in the alphabet. Symbols holds each offending symbol once.
type TransitionUsesUnknownSymbolsError[C comparable] struct {
	Symbols []C
}

func (e *TransitionUsesUnknownSymbolsError[C]) Error() string {
	return fmt.Sprintf("a transition uses symbols that aren't in the DFA's alphabet: %s", join(e.Symbols))
}

func (e *TransitionUsesUnknownSymbolsError[C]) Kind() ValidationKind {
	return KindTransitionUsesUnknownSymbols
}

func (e *TransitionUsesUnknownSymbolsError[C]) Unwrap() error { return ErrInvalidDFA }

// TransitionFromUnknownStateError reports a transition leaving a state that
// is not in the state set.
type TransitionFromUnknownStateError[S, C comparable] struct {
	State S
	Key   Key[S, C]
}

func (e *TransitionFromUnknownStateError[S, C]) Error() string {
	return fmt.Sprintf("a transition goes from an invalid state: '%v' on input '%v'", e.State, e.Key.Symbol)
}

func (e *TransitionFromUnknownStateError[S, C]) Kind() ValidationKind {
	return KindTransitionFromUnknownState
}

func (e *TransitionFromUnknownStateError[S, C]) Unwrap() error { return ErrInvalidDFA }

// TransitionToUnknownStateError reports a transition whose destination is not
// in the state set. Transitions is the complete transition function, in
// declaration order, for diagnosis.
type TransitionToUnknownStateError[S, C comparable] struct {
	Transition  Transition[S, C]
	Transitions []Transition[S, C]
}

func (e *TransitionToUnknownStateError[S, C]) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "a transition goes to an invalid state: ('%v', '%v') -> '%v'",
		e.Transition.From, e.Transition.Symbol, e.Transition.To)
	for _, t := range e.Transitions {
		fmt.Fprintf(&sb, "\n  ('%v', '%v') -> '%v'", t.From, t.Symbol, t.To)
	}
	return sb.String()
}

func (e *TransitionToUnknownStateError[S, C]) Kind() ValidationKind {
	return KindTransitionToUnknownState
}

func (e *TransitionToUnknownStateError[S, C]) Unwrap() error { return ErrInvalidDFA }

// IncompleteTransitionFunctionError reports a state whose outgoing symbols
// differ from the alphabet.
type IncompleteTransitionFunctionError[S, C comparable] struct {
	State S
	// Missing lists alphabet symbols with no transition from State.
	Missing []C
	// Extra lists symbols used from State that are not in the alphabet.
	Extra []C
}

func (e *IncompleteTransitionFunctionError[S, C]) Error() string {
	msg := fmt.Sprintf("state '%v' doesn't contain a transition for each symbol in the alphabet", e.State)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf(" (missing: %s)", join(e.Missing))
	}
	if len(e.Extra) > 0 {
		msg += fmt.Sprintf(" (extra: %s)", join(e.Extra))
	}
	return msg
}

func (e *IncompleteTransitionFunctionError[S, C]) Kind() ValidationKind {
	return KindIncompleteTransitionFunction
}

func (e *IncompleteTransitionFunctionError[S, C]) Unwrap() error { return ErrInvalidDFA }

// UndefinedTransitionError is returned by the simulator when the current
// state has no transition on an alphabet symbol.
type UndefinedTransitionError[S, C comparable] struct {
	State  S
	Symbol C
}

func (e *UndefinedTransitionError[S, C]) Error() string {
	return fmt.Sprintf("something went wrong when attempting transition from state '%v' on input '%v'", e.State, e.Symbol)
}

func (e *UndefinedTransitionError[S, C]) Unwrap() error { return ErrUndefinedTransition }

// ConflictingTransitionError is returned by New when two transitions share a
// key but disagree on the destination.
type ConflictingTransitionError[S, C comparable] struct {
	Key    Key[S, C]
	First  S
	Second S
}

func (e *ConflictingTransitionError[S, C]) Error() string {
	return fmt.Sprintf("conflicting transitions from state '%v' on input '%v': '%v' and '%v'",
		e.Key.State, e.Key.Symbol, e.First, e.Second)
}

func join[T any](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("'%v'", item)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
