// Package json provides the JSON implementation of the config.Loader
// interface. States and symbols may be written as strings, numbers or
// booleans; non-string scalars keep their source text.
package json

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"
	"github.com/specialistvlad/dfarun/internal/config"
	"github.com/specialistvlad/dfarun/internal/ctxlog"
)

// Extensions lists the file extensions handled by the JSON loader.
var Extensions = []string{".json"}

// Loader is the JSON-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new JSON document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// scalar decodes a JSON string, number or boolean into its text.
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("empty value")
	}
	switch b[0] {
	case '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = scalar(str)
	case '{', '[':
		return fmt.Errorf("expected a string, number or bool, got %s", b)
	case 'n':
		return fmt.Errorf("value must not be null")
	default:
		*s = scalar(b)
	}
	return nil
}

type fileRoot struct {
	Description   string                       `json:"description"`
	Regex         string                       `json:"regex"`
	States        []scalar                     `json:"states"`
	Alphabet      []scalar                     `json:"alphabet"`
	Transitions   map[string]map[string]scalar `json:"transitions"`
	StartState    scalar                       `json:"start_state"`
	FinalStates   []scalar                     `json:"final_states"`
	AcceptStrings []string                     `json:"accept_strings"`
	RejectStrings []string                     `json:"reject_strings"`
}

// Load reads and translates the JSON document at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file %s: %w", path, err)
	}
	return l.LoadBytes(ctx, src, path)
}

// LoadBytes translates an in-memory JSON document. filename is only used
// for diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Document, error) {
	_, logger := ctxlog.With(ctx, "source", filename)
	logger.Debug("JSON loader started.")

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(src, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse JSON file %s: %w", filename, err)
	}
	if err := config.CheckRequired(filename, func(field string) bool {
		_, ok := fields[field]
		return ok
	}); err != nil {
		return nil, err
	}

	var root fileRoot
	if err := json.Unmarshal(src, &root); err != nil {
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", filename, err)
	}

	doc := &config.Document{
		Source:        filename,
		Description:   root.Description,
		Regex:         root.Regex,
		States:        toStrings(root.States),
		Alphabet:      toStrings(root.Alphabet),
		Transitions:   translateTransitions(root.Transitions),
		StartState:    string(root.StartState),
		FinalStates:   toStrings(root.FinalStates),
		AcceptStrings: root.AcceptStrings,
		RejectStrings: root.RejectStrings,
	}

	logger.Debug("JSON loading complete.",
		"states", len(doc.States),
		"alphabet", len(doc.Alphabet),
		"transitions", len(doc.Transitions),
	)
	return doc, nil
}

func toStrings(in []scalar) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

// translateTransitions flattens the nested mapping with keys sorted, since
// JSON objects carry no order once decoded.
func translateTransitions(in map[string]map[string]scalar) []config.Transition {
	froms := make([]string, 0, len(in))
	for from := range in {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	var out []config.Transition
	for _, from := range froms {
		row := in[from]
		symbols := make([]string, 0, len(row))
		for symbol := range row {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)

		for _, symbol := range symbols {
			out = append(out, config.Transition{From: from, Symbol: symbol, To: string(row[symbol])})
		}
	}
	return out
}
