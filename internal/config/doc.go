// Package config defines the format-agnostic DFA document model, along with
// the Loader interface for reading documents from various sources.
//
// A `config.Document` is what the `check` and `app` packages work
// with. Concrete loaders, such as for HCL or YAML, are provided in separate
// packages and must normalize every state and symbol to a string before
// handing the document over.
package config
