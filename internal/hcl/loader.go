package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/dfarun/internal/config"
	"github.com/specialistvlad/dfarun/internal/ctxlog"
)

// Extensions lists the file extensions handled by the HCL loader.
var Extensions = []string{".hcl"}

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the schema of a DFA document. The automaton attributes are
// kept as expressions so that numbers, strings and booleans can all be used
// as states and symbols.
type fileRoot struct {
	Description   string         `hcl:"description,optional"`
	Regex         string         `hcl:"regex,optional"`
	States        hcl.Expression `hcl:"states,optional"`
	Alphabet      hcl.Expression `hcl:"alphabet,optional"`
	Transitions   hcl.Expression `hcl:"transitions,optional"`
	StartState    hcl.Expression `hcl:"start_state,optional"`
	FinalStates   hcl.Expression `hcl:"final_states,optional"`
	AcceptStrings []string       `hcl:"accept_strings,optional"`
	RejectStrings []string       `hcl:"reject_strings,optional"`
}

// Load parses the HCL file at path and translates it into a config.Document.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	ctx, logger := ctxlog.With(ctx, "source", path)
	logger.Debug("HCL loader started.")

	hclFile, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return l.decode(ctx, path, hclFile.Body)
}

// LoadBytes parses an in-memory HCL document. filename is only used for
// diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Document, error) {
	ctx, _ = ctxlog.With(ctx, "source", filename)

	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return l.decode(ctx, filename, hclFile.Body)
}

func (l *Loader) decode(ctx context.Context, source string, body hcl.Body) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", source, diags)
	}

	exprs := map[string]hcl.Expression{
		"states":       root.States,
		"alphabet":     root.Alphabet,
		"transitions":  root.Transitions,
		"start_state":  root.StartState,
		"final_states": root.FinalStates,
	}
	err := config.CheckRequired(source, func(field string) bool {
		return isExprDefined(ctx, exprs[field], field)
	})
	if err != nil {
		return nil, err
	}

	doc, err := translateDocument(ctx, source, &root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	logger.Debug("HCL loading complete.",
		"states", len(doc.States),
		"alphabet", len(doc.Alphabet),
		"transitions", len(doc.Transitions),
	)
	return doc, nil
}
