package dfa

// Run describes one walk of an input sequence through a DFA.
type Run[S, C comparable] struct {
	// Path holds the start state followed by the state entered after each
	// consumed symbol.
	Path []S
	// Consumed is the number of input symbols that were consumed.
	Consumed int
	// Unknown is set when the walk stopped on a symbol outside the alphabet;
	// Symbol is that symbol and Consumed is its index.
	Unknown bool
	Symbol  C
	// Accepted is the verdict.
	Accepted bool
}

// State returns the state the walk ended in.
func (r Run[S, C]) State() S {
	return r.Path[len(r.Path)-1]
}

// Trace walks input through d from the start state, one symbol at a time.
//
// A symbol outside the alphabet stops the walk and rejects the input without
// inspecting the remaining symbols. A symbol inside the alphabet without a
// transition from the current state returns *UndefinedTransitionError; this
// cannot happen when d passed Validate.
func (d *DFA[S, C]) Trace(input []C) (Run[S, C], error) {
	current := d.start
	run := Run[S, C]{Path: make([]S, 1, len(input)+1)}
	run.Path[0] = current

	for i, c := range input {
		next, ok := d.transitions[Key[S, C]{State: current, Symbol: c}]
		if !ok {
			run.Consumed = i
			if !d.alphabet.has(c) {
				run.Unknown = true
				run.Symbol = c
				return run, nil
			}
			return run, &UndefinedTransitionError[S, C]{State: current, Symbol: c}
		}
		current = next
		run.Path = append(run.Path, current)
	}

	run.Consumed = len(input)
	run.Accepted = d.final.has(current)
	return run, nil
}

// Accepts reports whether d ends in an accepting state after consuming input.
// The empty input is accepted iff the start state is accepting.
func (d *DFA[S, C]) Accepts(input []C) (bool, error) {
	run, err := d.Trace(input)
	if err != nil {
		return false, err
	}
	return run.Accepted, nil
}
