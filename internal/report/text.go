package report

import (
	"fmt"
	"io"
	"strings"
)

func init() {
	Register("text", writeText)
}

func writeText(w io.Writer, payload any) error {
	switch p := payload.(type) {
	case *Verdict:
		return textVerdict(w, p)
	case *CheckSummary:
		return textSummary(w, p)
	case *Invalid:
		_, err := fmt.Fprintf(w, "Invalid DFA %s: %s\n", p.Source, p.Error)
		return err
	default:
		return unsupported("text", payload)
	}
}

func textVerdict(w io.Writer, v *Verdict) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Loaded DFA: %s\n", v.Name)
	fmt.Fprintf(&sb, "Input string: %s\n", v.Input)
	fmt.Fprintf(&sb, "Path: %s\n", strings.Join(v.Path, " -> "))
	if v.Unknown != nil {
		fmt.Fprintf(&sb, "Stopped on symbol '%s' outside the alphabet\n", *v.Unknown)
	}
	if v.Accepted {
		fmt.Fprintf(&sb, "DFA accepts string '%s'\n", v.Input)
	} else {
		fmt.Fprintf(&sb, "DFA rejects string '%s'\n", v.Input)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func textSummary(w io.Writer, s *CheckSummary) error {
	var sb strings.Builder
	for _, r := range s.Results {
		status := "PASS"
		if !r.OK() {
			status = "FAIL"
		}
		fmt.Fprintf(&sb, "%s %s (%d strings, %d generated)\n", status, r.Source, r.Checked, r.Generated)
		if r.Err != nil {
			fmt.Fprintf(&sb, "  - error: %v\n", r.Err)
		}
		for _, f := range r.Failures {
			fmt.Fprintf(&sb, "  - %s\n", f)
		}
	}
	fmt.Fprintf(&sb, "%d documents, %d failed\n", len(s.Results), s.Failed())
	_, err := io.WriteString(w, sb.String())
	return err
}
