package report

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/specialistvlad/dfarun/internal/check"
)

func init() {
	Register("json", writeJSON)
}

type failureView struct {
	Input    string            `json:"input"`
	Expected check.Expectation `json:"expected"`
	Origin   check.Origin      `json:"origin"`
	Error    string            `json:"error,omitempty"`
}

type resultView struct {
	Source      string        `json:"source"`
	Description string        `json:"description,omitempty"`
	OK          bool          `json:"ok"`
	Checked     int           `json:"checked"`
	Generated   int           `json:"generated"`
	Error       string        `json:"error,omitempty"`
	Failures    []failureView `json:"failures"`
}

type summaryView struct {
	Documents int          `json:"documents"`
	Failed    int          `json:"failed"`
	Results   []resultView `json:"results"`
}

func writeJSON(w io.Writer, payload any) error {
	var v any
	switch p := payload.(type) {
	case *Verdict, *Invalid:
		v = p
	case *CheckSummary:
		v = summarize(p)
	default:
		return unsupported("json", payload)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func summarize(s *CheckSummary) summaryView {
	out := summaryView{
		Documents: len(s.Results),
		Failed:    s.Failed(),
		Results:   make([]resultView, 0, len(s.Results)),
	}
	for _, r := range s.Results {
		rv := resultView{
			Source:      r.Source,
			Description: r.Description,
			OK:          r.OK(),
			Checked:     r.Checked,
			Generated:   r.Generated,
			Failures:    make([]failureView, 0, len(r.Failures)),
		}
		if r.Err != nil {
			rv.Error = r.Err.Error()
		}
		for _, f := range r.Failures {
			fv := failureView{Input: f.Input, Expected: f.Expected, Origin: f.Origin}
			if f.Err != nil {
				fv.Error = f.Err.Error()
			}
			rv.Failures = append(rv.Failures, fv)
		}
		out.Results = append(out.Results, rv)
	}
	return out
}
