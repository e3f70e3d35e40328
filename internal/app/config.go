package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/dfarun/internal/report"
)

// Graph formats accepted by Config.Graph.
const (
	GraphDOT     = "dot"
	GraphMermaid = "mermaid"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DFAPath string // document file, or directory in check mode
	Input   string
	// Separator splits Input into symbols; empty means one symbol per rune.
	Separator string

	Check bool
	Graph string
	// Output is the report format.
	Output string

	Generate  int
	MaxRepeat int
	Workers   int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DFAPath == "" {
		return nil, errors.New("DFAPath is a required configuration field and cannot be empty")
	}
	if cfg.Check && cfg.Graph != "" {
		return nil, errors.New("check and graph modes cannot be combined")
	}
	switch cfg.Graph {
	case "", GraphDOT, GraphMermaid:
	default:
		return nil, fmt.Errorf("invalid graph format %q: must be %q or %q", cfg.Graph, GraphDOT, GraphMermaid)
	}
	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if formats := report.Formats(); !slices.Contains(formats, cfg.Output) {
		return nil, fmt.Errorf("invalid output format %q: must be one of %v", cfg.Output, formats)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.MaxRepeat < 0 {
		return nil, fmt.Errorf("max-repeat cannot be negative, got %d", cfg.MaxRepeat)
	}
	return &cfg, nil
}
