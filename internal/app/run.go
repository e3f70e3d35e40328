package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/dfarun/internal/check"
	"github.com/specialistvlad/dfarun/internal/config"
	"github.com/specialistvlad/dfarun/internal/ctxlog"
	"github.com/specialistvlad/dfarun/internal/render"
	"github.com/specialistvlad/dfarun/internal/report"
)

// Run executes the mode selected by the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.DFAPath)

	var err error
	switch {
	case a.config.Check:
		err = a.runCheck(ctx)
	case a.config.Graph != "":
		err = a.runGraph(ctx)
	default:
		err = a.runSimulate(ctx)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

// runSimulate loads, validates and runs a single document on the input.
// Both verdicts are a successful run.
func (a *App) runSimulate(ctx context.Context) error {
	path := a.config.DFAPath

	doc, err := a.load(ctx, path)
	if err != nil {
		return a.invalid(path, err)
	}
	automaton, err := doc.Automaton()
	if err != nil {
		return a.invalid(doc.Source, err)
	}
	if err := automaton.Validate(); err != nil {
		return a.invalid(doc.Source, fmt.Errorf("%s: %w", doc.Source, err))
	}
	a.logger.Debug("DFA validated.", "source", doc.Source)

	run, err := automaton.Trace(config.SplitInput(a.config.Input, a.config.Separator))
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	verdict := &report.Verdict{
		Source:   doc.Source,
		Name:     doc.Name(),
		Input:    a.config.Input,
		Accepted: run.Accepted,
		Path:     run.Path,
		Consumed: run.Consumed,
	}
	if run.Unknown {
		symbol := run.Symbol
		verdict.Unknown = &symbol
		a.logger.Debug("Input symbol outside the alphabet.", "symbol", symbol, "position", run.Consumed)
	}
	a.logger.Info("Simulation finished.", "source", doc.Source, "accepted", run.Accepted)

	return a.write(verdict)
}

// runCheck checks one document or every document below a directory.
func (a *App) runCheck(ctx context.Context) error {
	files, err := a.loader.Find(a.config.DFAPath)
	if err != nil {
		return err
	}
	a.logger.Info("🚀 Checking DFA documents...", "count", len(files), "workers", a.config.Workers)

	// Load failures become failed results in place; the rest are checked
	// concurrently and slotted back in order.
	results := make([]*check.Result, len(files))
	docs := make([]*config.Document, 0, len(files))
	slots := make([]int, 0, len(files))
	for i, file := range files {
		doc, err := a.load(ctx, file)
		if err != nil {
			a.logger.Warn("Failed to load DFA document.", "source", file, "error", err)
			results[i] = &check.Result{Source: file, Err: err}
			continue
		}
		docs = append(docs, doc)
		slots = append(slots, i)
	}

	checker := &check.Checker{
		Generate:  a.config.Generate,
		MaxRepeat: a.config.MaxRepeat,
		Separator: a.config.Separator,
	}
	checked, err := checker.Batch(ctx, docs, a.config.Workers)
	if err != nil {
		return fmt.Errorf("check run aborted: %w", err)
	}
	for j, r := range checked {
		results[slots[j]] = r
	}

	summary := &report.CheckSummary{Results: results}
	if err := a.write(summary); err != nil {
		return err
	}
	if summary.Failed() > 0 {
		return ErrChecksFailed
	}
	return nil
}

// runGraph renders a single document. Invalid DFAs are still drawn.
func (a *App) runGraph(ctx context.Context) error {
	doc, err := a.load(ctx, a.config.DFAPath)
	if err != nil {
		return err
	}
	automaton, err := doc.Automaton()
	if err != nil {
		return err
	}
	if err := automaton.Validate(); err != nil {
		a.logger.Warn("Rendering an invalid DFA.", "source", doc.Source, "error", err)
	}

	var out string
	switch a.config.Graph {
	case GraphMermaid:
		out = render.Mermaid(automaton)
	default:
		out = render.DOT(automaton)
	}
	_, err = io.WriteString(a.outW, out)
	return err
}

// invalid reports err as an invalid document and returns it.
func (a *App) invalid(source string, err error) error {
	a.logger.Debug("Document rejected.", "source", source, "error", err)
	if werr := a.write(report.NewInvalid(source, err)); werr != nil {
		return werr
	}
	return err
}

func (a *App) write(payload any) error {
	if err := report.Write(a.config.Output, a.outW, payload); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
