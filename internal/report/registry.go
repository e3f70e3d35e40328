package report

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// WriterFunc renders payload to w.
type WriterFunc func(w io.Writer, payload any) error

var (
	mu      sync.RWMutex
	writers = map[string]WriterFunc{}
)

// Register installs fn for format. A later registration wins.
func Register(format string, fn WriterFunc) {
	mu.Lock()
	defer mu.Unlock()
	writers[format] = fn
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write renders payload to w using the writer registered for format.
func Write(format string, w io.Writer, payload any) error {
	mu.RLock()
	fn, ok := writers[format]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

func unsupported(format string, payload any) error {
	return fmt.Errorf("%s writer: unsupported payload %T", format, payload)
}
