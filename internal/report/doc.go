// Package report writes the results of a run to an io.Writer in one of the
// registered formats ("text" and "json" out of the box).
//
// Writers are looked up by format name; Register adds or replaces one.
// Every writer accepts the payload types of this package: *Verdict,
// *CheckSummary and *Invalid.
package report
