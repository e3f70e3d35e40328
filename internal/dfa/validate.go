package dfa

// Validate reports whether d is a complete deterministic automaton. Checks
// run in a fixed order and the first failing check determines the returned
// error, which always implements ValidationError.
//
//  1. every final state is a state
//  2. the start state is a state
//  3. every transition symbol is in the alphabet
//  4. every transition leaves a state
//  5. every transition enters a state
//  6. every state has exactly one transition per alphabet symbol
func Validate[S, C comparable](d *DFA[S, C]) error {
	if err := validateFinalStates(d); err != nil {
		return err
	}
	if err := validateStartState(d); err != nil {
		return err
	}
	return validateTransitions(d)
}

// Validate is shorthand for Validate(d).
func (d *DFA[S, C]) Validate() error {
	return Validate(d)
}

func validateFinalStates[S, C comparable](d *DFA[S, C]) error {
	var unknown []S
	for _, s := range d.final.items {
		if !d.states.has(s) {
			unknown = append(unknown, s)
		}
	}
	if len(unknown) > 0 {
		return &AcceptingStatesNotInStatesError[S]{States: unknown}
	}
	return nil
}

func validateStartState[S, C comparable](d *DFA[S, C]) error {
	if !d.states.has(d.start) {
		return &StartStateNotInStatesError[S]{State: d.start}
	}
	return nil
}

func validateTransitions[S, C comparable](d *DFA[S, C]) error {
	unknown := newSet[C](nil)
	for _, key := range d.order {
		if !d.alphabet.has(key.Symbol) {
			unknown.add(key.Symbol)
		}
	}
	if unknown.len() > 0 {
		return &TransitionUsesUnknownSymbolsError[C]{Symbols: unknown.slice()}
	}

	for _, key := range d.order {
		if !d.states.has(key.State) {
			return &TransitionFromUnknownStateError[S, C]{State: key.State, Key: key}
		}
	}

	for _, key := range d.order {
		to := d.transitions[key]
		if !d.states.has(to) {
			return &TransitionToUnknownStateError[S, C]{
				Transition:  Transition[S, C]{From: key.State, Symbol: key.Symbol, To: to},
				Transitions: d.Transitions(),
			}
		}
	}

	return validateTotality(d)
}

// validateTotality compares each state's outgoing symbol set to the alphabet
// by set equality, so extra symbols are reported here too even though the
// alphabet check above already rules them out.
func validateTotality[S, C comparable](d *DFA[S, C]) error {
	used := make(map[S]set[C], d.states.len())
	for _, key := range d.order {
		symbols, ok := used[key.State]
		if !ok {
			symbols = newSet[C](nil)
		}
		symbols.add(key.Symbol)
		used[key.State] = symbols
	}

	for _, s := range d.states.items {
		symbols := used[s]
		if equalSets(symbols, d.alphabet) {
			continue
		}

		var missing, extra []C
		for _, c := range d.alphabet.items {
			if !symbols.has(c) {
				missing = append(missing, c)
			}
		}
		for _, c := range symbols.items {
			if !d.alphabet.has(c) {
				extra = append(extra, c)
			}
		}
		return &IncompleteTransitionFunctionError[S, C]{State: s, Missing: missing, Extra: extra}
	}

	return nil
}

func equalSets[T comparable](a, b set[T]) bool {
	if a.len() != b.len() {
		return false
	}
	for _, item := range a.items {
		if !b.has(item) {
			return false
		}
	}
	return true
}
