package report

import (
	"errors"

	"github.com/specialistvlad/dfarun/internal/check"
	"github.com/specialistvlad/dfarun/internal/dfa"
)

// Verdict is the outcome of simulating one input.
type Verdict struct {
	Source   string   `json:"source"`
	Name     string   `json:"name"`
	Input    string   `json:"input"`
	Accepted bool     `json:"accepted"`
	Path     []string `json:"path"`
	Consumed int      `json:"consumed"`
	// Unknown is the first out-of-alphabet symbol, when the walk stopped on one.
	Unknown *string `json:"unknown_symbol,omitempty"`
}

// CheckSummary is the outcome of checking one or more documents.
type CheckSummary struct {
	Results []*check.Result `json:"-"`
}

// Failed returns the number of documents that did not pass.
func (s *CheckSummary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Invalid reports a document that could not be turned into a valid DFA.
type Invalid struct {
	Source string `json:"source"`
	Kind   string `json:"kind,omitempty"`
	Error  string `json:"error"`
}

// NewInvalid describes err for source. Kind is set for validation errors.
func NewInvalid(source string, err error) *Invalid {
	inv := &Invalid{Source: source, Error: err.Error()}
	var verr dfa.ValidationError
	if errors.As(err, &verr) {
		inv.Kind = verr.Kind().String()
	}
	return inv
}
