// Package dfa implements deterministic finite automata: an immutable model,
// a validator proving the model is a complete deterministic automaton, and a
// single-pass simulator.
//
// The expected calling discipline is validate once, then simulate many times:
//
//	d, err := dfa.New(states, alphabet, transitions, start, final)
//	if err != nil { ... }
//	if err := d.Validate(); err != nil { ... } // do not simulate d
//	ok, err := d.Accepts(input)
//
// Symbols outside the alphabet make Accepts return false. A missing transition
// on an alphabet symbol is reported as *UndefinedTransitionError, which can
// only happen for a DFA that never passed Validate.
package dfa
