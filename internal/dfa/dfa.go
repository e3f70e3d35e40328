package dfa

// Key identifies a single entry of the transition function.
type Key[S, C comparable] struct {
	State  S
	Symbol C
}

// Transition is one (From, Symbol) -> To entry of the transition function.
type Transition[S, C comparable] struct {
	From   S
	Symbol C
	To     S
}

// Key returns the transition function key of t.
func (t Transition[S, C]) Key() Key[S, C] {
	return Key[S, C]{State: t.From, Symbol: t.Symbol}
}

// set is an insertion-ordered set. Order only matters for diagnostics and
// rendering; membership is what the automaton semantics rely on.
type set[T comparable] struct {
	items []T
	index map[T]struct{}
}

func newSet[T comparable](items []T) set[T] {
	s := set[T]{index: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.add(item)
	}
	return s
}

func (s *set[T]) add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s set[T]) has(item T) bool {
	_, ok := s.index[item]
	return ok
}

func (s set[T]) len() int {
	return len(s.items)
}

func (s set[T]) slice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// DFA is an immutable deterministic finite automaton over states S and
// symbols C. A DFA returned by New is not necessarily well-formed; call
// Validate before simulating it.
type DFA[S, C comparable] struct {
	states   set[S]
	alphabet set[C]
	final    set[S]
	start    S

	transitions map[Key[S, C]]S
	// order keeps the declaration order of transitions.
	order []Key[S, C]
}

// New builds a DFA from its five components. Every argument is copied.
//
// Duplicate states, symbols, final states and identical duplicate transitions
// collapse. Two transitions sharing a key but pointing at different states
// cannot be represented by a transition function and are rejected with
// *ConflictingTransitionError. All other structural defects are left for
// Validate to report.
func New[S, C comparable](
	states []S,
	alphabet []C,
	transitions []Transition[S, C],
	start S,
	final []S,
) (*DFA[S, C], error) {
	d := &DFA[S, C]{
		states:      newSet(states),
		alphabet:    newSet(alphabet),
		final:       newSet(final),
		start:       start,
		transitions: make(map[Key[S, C]]S, len(transitions)),
		order:       make([]Key[S, C], 0, len(transitions)),
	}

	for _, t := range transitions {
		key := t.Key()
		if to, ok := d.transitions[key]; ok {
			if to != t.To {
				return nil, &ConflictingTransitionError[S, C]{Key: key, First: to, Second: t.To}
			}
			continue
		}
		d.transitions[key] = t.To
		d.order = append(d.order, key)
	}

	return d, nil
}

// States returns the state universe in declaration order.
func (d *DFA[S, C]) States() []S {
	return d.states.slice()
}

// Alphabet returns the input alphabet in declaration order.
func (d *DFA[S, C]) Alphabet() []C {
	return d.alphabet.slice()
}

// StartState returns the entry point of the automaton.
func (d *DFA[S, C]) StartState() S {
	return d.start
}

// FinalStates returns the accepting states in declaration order.
func (d *DFA[S, C]) FinalStates() []S {
	return d.final.slice()
}

// IsFinal reports whether s is an accepting state.
func (d *DFA[S, C]) IsFinal(s S) bool {
	return d.final.has(s)
}

// InAlphabet reports whether c is a legal input symbol.
func (d *DFA[S, C]) InAlphabet(c C) bool {
	return d.alphabet.has(c)
}

// Step returns the destination of the transition (s, c), if one is defined.
func (d *DFA[S, C]) Step(s S, c C) (S, bool) {
	to, ok := d.transitions[Key[S, C]{State: s, Symbol: c}]
	return to, ok
}

// Transitions returns the transition function in declaration order.
func (d *DFA[S, C]) Transitions() []Transition[S, C] {
	out := make([]Transition[S, C], len(d.order))
	for i, key := range d.order {
		out[i] = Transition[S, C]{From: key.State, Symbol: key.Symbol, To: d.transitions[key]}
	}
	return out
}

// TransitionMap returns a copy of the transition function.
func (d *DFA[S, C]) TransitionMap() map[Key[S, C]]S {
	out := make(map[Key[S, C]]S, len(d.transitions))
	for k, v := range d.transitions {
		out[k] = v
	}
	return out
}
