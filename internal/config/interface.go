package config

import (
	"context"
	"fmt"
)

// Loader is the interface for a format-specific DFA document loader.
type Loader interface {
	// Load reads a single document from path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Document, error)
}

// RequiredFields lists the document fields every loader must find.
var RequiredFields = []string{"states", "alphabet", "transitions", "start_state", "final_states"}

// MissingFieldError reports a required field absent from a document.
type MissingFieldError struct {
	Source string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Source, e.Field)
}

// CheckRequired returns a *MissingFieldError for the first required field
// for which has returns false.
func CheckRequired(source string, has func(field string) bool) error {
	for _, field := range RequiredFields {
		if !has(field) {
			return &MissingFieldError{Source: source, Field: field}
		}
	}
	return nil
}
