// Package yaml provides the YAML implementation of the config.Loader
// interface. A document looks like:
//
//	description: odd number of a's
//	states: [1, 2]
//	alphabet: [a, b]
//	start_state: 1
//	final_states: [2]
//	transitions:
//	  1: {a: 2, b: 1}
//	  2: {a: 1, b: 2}
//
// Scalars are taken verbatim from the source text, so `1` and `"1"` name the
// same state and the core never sees anything but strings.
package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/dfarun/internal/config"
	"github.com/specialistvlad/dfarun/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions handled by the YAML loader.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the document layout. Transitions stay a node so that
// their declaration order survives decoding.
type fileRoot struct {
	Description   string    `yaml:"description"`
	Regex         string    `yaml:"regex"`
	States        []string  `yaml:"states"`
	Alphabet      []string  `yaml:"alphabet"`
	Transitions   yaml.Node `yaml:"transitions"`
	StartState    string    `yaml:"start_state"`
	FinalStates   []string  `yaml:"final_states"`
	AcceptStrings []string  `yaml:"accept_strings"`
	RejectStrings []string  `yaml:"reject_strings"`
}

// Load reads and translates the YAML document at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	return l.LoadBytes(ctx, src, path)
}

// LoadBytes translates an in-memory YAML document. filename is only used
// for diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Document, error) {
	_, logger := ctxlog.With(ctx, "source", filename)
	logger.Debug("YAML loader started.")

	var node yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(src))
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML file %s: document is empty", filename)
		}
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}

	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to parse YAML file %s: top level must be a mapping", filename)
	}
	top := node.Content[0]
	if err := config.CheckRequired(filename, func(field string) bool {
		return lookup(top, field) != nil
	}); err != nil {
		return nil, err
	}

	var root fileRoot
	if err := top.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	transitions, err := translateTransitions(&root.Transitions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	doc := &config.Document{
		Source:        filename,
		Description:   root.Description,
		Regex:         root.Regex,
		States:        root.States,
		Alphabet:      root.Alphabet,
		Transitions:   transitions,
		StartState:    root.StartState,
		FinalStates:   root.FinalStates,
		AcceptStrings: root.AcceptStrings,
		RejectStrings: root.RejectStrings,
	}

	logger.Debug("YAML loading complete.",
		"states", len(doc.States),
		"alphabet", len(doc.Alphabet),
		"transitions", len(doc.Transitions),
	)
	return doc, nil
}

// lookup returns the value node stored under key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// translateTransitions walks the `state -> symbol -> state` mapping in
// document order.
func translateTransitions(node *yaml.Node) ([]config.Transition, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: transitions must be a mapping of mappings", node.Line)
	}

	var out []config.Transition
	for i := 0; i+1 < len(node.Content); i += 2 {
		fromNode, row := node.Content[i], node.Content[i+1]
		from, err := scalar(fromNode, "state")
		if err != nil {
			return nil, err
		}
		if row.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: transitions from state %q must be a mapping", row.Line, from)
		}

		for j := 0; j+1 < len(row.Content); j += 2 {
			symbol, err := scalar(row.Content[j], "symbol")
			if err != nil {
				return nil, err
			}
			to, err := scalar(row.Content[j+1], "destination state")
			if err != nil {
				return nil, err
			}
			out = append(out, config.Transition{From: from, Symbol: symbol, To: to})
		}
	}
	return out, nil
}

func scalar(node *yaml.Node, what string) (string, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return "", fmt.Errorf("line %d: %s must be a scalar", node.Line, what)
	}
	return node.Value, nil
}
