// Package check verifies DFA documents against the example strings they
// carry: every accept string must be accepted, every reject string rejected,
// and every string generated from the document's regex accepted.
package check

import (
	"context"
	"fmt"

	"github.com/specialistvlad/dfarun/internal/config"
	"github.com/specialistvlad/dfarun/internal/ctxlog"
	"github.com/specialistvlad/dfarun/internal/dfa"
	"github.com/specialistvlad/dfarun/internal/regexgen"
	"golang.org/x/sync/errgroup"
)

// Expectation is the verdict an example string should get.
type Expectation string

const (
	ExpectAccept Expectation = "accept"
	ExpectReject Expectation = "reject"
)

// Origin tells where an example string came from.
type Origin string

const (
	OriginProvided  Origin = "provided"
	OriginGenerated Origin = "generated"
)

// Failure is an example string that did not get its expected verdict.
type Failure struct {
	Input    string      `json:"input"`
	Expected Expectation `json:"expected"`
	Origin   Origin      `json:"origin"`
	// Err is set when simulation itself failed.
	Err error `json:"-"`
}

func (f Failure) String() string {
	if f.Err != nil {
		return fmt.Sprintf("%s string %q: %v", f.Origin, f.Input, f.Err)
	}
	if f.Expected == ExpectAccept {
		return fmt.Sprintf("rejected %s string %q", f.Origin, f.Input)
	}
	return fmt.Sprintf("accepted %s string %q", f.Origin, f.Input)
}

// Result is the outcome of checking one document.
type Result struct {
	Source      string    `json:"source"`
	Description string    `json:"description,omitempty"`
	Checked     int       `json:"checked"`
	Generated   int       `json:"generated"`
	Failures    []Failure `json:"failures,omitempty"`
	// Err is set when the document could not be turned into a valid DFA or
	// its regex could not be expanded. Nothing is simulated in that case.
	Err error `json:"-"`
}

// OK reports whether the document passed every check.
func (r *Result) OK() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// Checker checks documents. The zero value uses the regexgen defaults.
type Checker struct {
	// Generate caps the number of strings generated from a regex; a negative
	// value disables generation.
	Generate  int
	MaxRepeat int
	// Separator splits provided example strings into symbols. Generated
	// strings are always split per rune.
	Separator string
}

// Check validates doc and runs all of its example strings.
func (c *Checker) Check(ctx context.Context, doc *config.Document) *Result {
	_, logger := ctxlog.With(ctx, "source", doc.Source)
	result := &Result{Source: doc.Source, Description: doc.Description}

	automaton, err := doc.Automaton()
	if err != nil {
		result.Err = err
		return result
	}
	if err := automaton.Validate(); err != nil {
		result.Err = fmt.Errorf("%s: %w", doc.Source, err)
		return result
	}

	for _, s := range doc.AcceptStrings {
		c.run(result, automaton, s, config.SplitInput(s, c.Separator), ExpectAccept, OriginProvided)
	}
	for _, s := range doc.RejectStrings {
		c.run(result, automaton, s, config.SplitInput(s, c.Separator), ExpectReject, OriginProvided)
	}

	if doc.Regex != "" && c.Generate >= 0 {
		generated, err := regexgen.Generate(doc.Regex, regexgen.Options{
			Limit:     c.Generate,
			MaxRepeat: c.MaxRepeat,
			Alphabet:  doc.Alphabet,
		})
		if err != nil {
			result.Err = fmt.Errorf("%s: %w", doc.Source, err)
			return result
		}
		result.Generated = len(generated)
		for _, s := range generated {
			c.run(result, automaton, s, config.SplitInput(s, ""), ExpectAccept, OriginGenerated)
		}
	}

	logger.Debug("Checked DFA document.",
		"checked", result.Checked,
		"generated", result.Generated,
		"failures", len(result.Failures),
	)
	return result
}

func (c *Checker) run(result *Result, automaton *dfa.DFA[string, string], raw string, input []string, want Expectation, origin Origin) {
	result.Checked++
	accepted, err := automaton.Accepts(input)
	if err != nil {
		result.Failures = append(result.Failures, Failure{Input: raw, Expected: want, Origin: origin, Err: err})
		return
	}
	if accepted != (want == ExpectAccept) {
		result.Failures = append(result.Failures, Failure{Input: raw, Expected: want, Origin: origin})
	}
}

// Batch checks docs concurrently with at most workers documents in flight.
// Results keep the order of docs. The only error returned is the context's.
func (c *Checker) Batch(ctx context.Context, docs []*config.Document, workers int) ([]*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if workers <= 0 {
		workers = 1
	}

	results := make([]*Result, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.Check(gctx, doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	logger.Info("🏁 Checked DFA documents.", "documents", len(docs), "failed", failed, "workers", workers)
	return results, nil
}
