package config

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/dfarun/internal/dfa"
)

// Document is the unified, format-agnostic representation of a DFA document.
type Document struct {
	Source      string
	Description string
	// Regex describes the language of the DFA; strings generated from it
	// are expected to be accepted.
	Regex string

	States      []string
	Alphabet    []string
	Transitions []Transition
	StartState  string
	FinalStates []string

	AcceptStrings []string
	RejectStrings []string
}

// Transition is a single From --Symbol--> To entry of a document.
type Transition struct {
	From   string
	Symbol string
	To     string
}

// Name returns the description of the document, or its source when the
// description is empty.
func (d *Document) Name() string {
	if d.Description != "" {
		return d.Description
	}
	return d.Source
}

// Automaton builds the DFA described by the document. The result is not
// validated.
func (d *Document) Automaton() (*dfa.DFA[string, string], error) {
	transitions := make([]dfa.Transition[string, string], len(d.Transitions))
	for i, t := range d.Transitions {
		transitions[i] = dfa.Transition[string, string]{From: t.From, Symbol: t.Symbol, To: t.To}
	}

	automaton, err := dfa.New(d.States, d.Alphabet, transitions, d.StartState, d.FinalStates)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Source, err)
	}
	return automaton, nil
}

// SplitInput turns an input string into symbols. An empty separator yields
// one symbol per rune.
func SplitInput(input, separator string) []string {
	if input == "" {
		return []string{}
	}
	if separator == "" {
		symbols := make([]string, 0, len(input))
		for _, r := range input {
			symbols = append(symbols, string(r))
		}
		return symbols
	}
	return strings.Split(input, separator)
}
