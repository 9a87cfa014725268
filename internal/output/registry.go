package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Built-in sink names.
const (
	SinkFile   = "file"
	SinkStdout = "stdout"
)

// WriterFactory creates a Writer for the given output path.
// When path is empty, the writer should write to stdout.
type WriterFactory func(path string) Writer

// Registry maps sink names to WriterFactory functions, enabling pluggable
// output destinations without touching the generation pipeline.
type Registry struct {
	mu      sync.RWMutex
	writers map[string]WriterFactory
}

// NewRegistry creates an empty writer registry.
func NewRegistry() *Registry {
	return &Registry{
		writers: make(map[string]WriterFactory),
	}
}

// Register adds a writer factory under the given sink name.
// Existing entries for the same name are overwritten.
func (r *Registry) Register(name string, factory WriterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writers[name] = factory
}

// Writer returns the factory for the given sink, or an error if not found.
func (r *Registry) Writer(name string) (WriterFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.writers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output sink %q (available: %s)", name, r.AvailableSinks())
	}

	return f, nil
}

// Sinks returns the sorted list of registered sink names.
func (r *Registry) Sinks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// AvailableSinks returns a comma-separated string of registered sink names.
func (r *Registry) AvailableSinks() string {
	sinks := r.Sinks()
	if len(sinks) == 0 {
		return "none"
	}

	return strings.Join(sinks, ", ")
}

// DefaultRegistry returns a registry pre-populated with the built-in
// sinks: file and stdout. The file factory falls back to the stdout sink
// when no path is given, which is the CLI default. Stdout-bound writers
// send output to out (nil means os.Stdout); file writers are created
// with opts.
func DefaultRegistry(out io.Writer, opts ...FileWriterOption) *Registry {
	r := NewRegistry()

	r.Register(SinkFile, func(path string) Writer {
		if path == "" {
			return NewStdoutWriter(out)
		}

		return NewFileWriter(path, opts...)
	})

	r.Register(SinkStdout, func(_ string) Writer {
		return NewStdoutWriter(out)
	})

	return r
}
