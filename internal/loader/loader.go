// Package loader dispatches DFA document loading to format-specific
// config.Loader implementations by file extension, and expands directories
// into the documents they contain.
package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/dfarun/internal/config"
	"github.com/specialistvlad/dfarun/internal/ctxlog"
	"github.com/specialistvlad/dfarun/internal/fsutil"
)

// Format binds a config.Loader to the file extensions it understands.
type Format struct {
	Name       string
	Extensions []string
	Loader     config.Loader
}

// Loader is a config.Loader that picks a Format by extension.
type Loader struct {
	byExt map[string]Format
}

// New creates a Loader from the given formats. Later formats win when two
// claim the same extension.
func New(formats ...Format) *Loader {
	l := &Loader{byExt: make(map[string]Format)}
	for _, f := range formats {
		for _, ext := range f.Extensions {
			l.byExt[strings.ToLower(ext)] = f
		}
	}
	return l
}

// Extensions returns every registered extension, sorted.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.byExt))
	for ext := range l.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load loads the single document at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := l.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported document format %q for %s (supported: %s)",
			ext, path, strings.Join(l.Extensions(), ", "))
	}

	ctxlog.FromContext(ctx).Debug("Loading DFA document.", "path", path, "format", format.Name)
	return format.Loader.Load(ctx, path)
}

// Find returns path when it is a file, or every document below it with a
// registered extension when it is a directory.
func (l *Loader) Find(path string) ([]string, error) {
	files, err := fsutil.FindFiles(path, l.Extensions()...)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	return files, nil
}

// LoadAll loads every document Find returns for path, stopping at the first
// failure.
func (l *Loader) LoadAll(ctx context.Context, path string) ([]*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.Find(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered DFA documents.", "path", path, "count", len(files))

	docs := make([]*config.Document, 0, len(files))
	for _, file := range files {
		doc, err := l.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
