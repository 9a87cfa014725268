package output

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer is the sink interface for generated sitemap payloads. The core
// pipeline treats a sink as a single opaque fallible operation.
type Writer interface {
	// Write sends serialized bytes to the output destination.
	Write(data []byte) error
}

// SinkErrorKind distinguishes the failure modes of a file sink so callers
// can tell environment problems apart from input problems.
type SinkErrorKind int

const (
	// SinkCreateDir means a missing parent directory could not be created.
	SinkCreateDir SinkErrorKind = iota
	// SinkDirNotWritable means the parent directory is not writable.
	SinkDirNotWritable
	// SinkFileNotWritable means the existing target file is not writable.
	SinkFileNotWritable
	// SinkWrite means the final write failed.
	SinkWrite
)

// String returns the kind name.
func (k SinkErrorKind) String() string {
	switch k {
	case SinkCreateDir:
		return "create-dir"
	case SinkDirNotWritable:
		return "dir-not-writable"
	case SinkFileNotWritable:
		return "file-not-writable"
	default:
		return "write"
	}
}

// SinkError is a file sink failure with its failure mode attached.
type SinkError struct {
	Kind SinkErrorKind
	Path string
	Err  error
}

// Error implements the error interface.
func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SinkError) Unwrap() error { return e.Err }

// StdoutWriter writes a generated payload to os.Stdout.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a writer that sends output to the given writer.
// If w is nil, os.Stdout is used.
func NewStdoutWriter(w io.Writer) *StdoutWriter {
	if w == nil {
		w = os.Stdout
	}

	return &StdoutWriter{out: w}
}

// Write sends data to stdout.
func (sw *StdoutWriter) Write(data []byte) error {
	_, err := sw.out.Write(data)
	if err != nil {
		return fmt.Errorf("writing to stdout: %w", err)
	}

	return nil
}

// FileWriter writes a generated payload to a file, creating parent
// directories as needed and replacing any existing file.
type FileWriter struct {
	path   string
	perm   os.FileMode
	logger *slog.Logger
}

// FileWriterOption configures a FileWriter.
type FileWriterOption func(*FileWriter)

// WithPermissions overrides the default file permissions (0644).
func WithPermissions(perm os.FileMode) FileWriterOption {
	return func(fw *FileWriter) {
		fw.perm = perm
	}
}

// WithLogger sets a logger for the FileWriter.
func WithLogger(logger *slog.Logger) FileWriterOption {
	return func(fw *FileWriter) {
		fw.logger = logger
	}
}

// NewFileWriter creates a writer that writes to the specified file path.
func NewFileWriter(path string, opts ...FileWriterOption) *FileWriter {
	fw := &FileWriter{
		path:   path,
		perm:   0o644,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(fw)
	}

	return fw
}

// Write creates missing parent directories, verifies the destination is
// writable, and writes data to the file. Each failure mode surfaces as a
// *SinkError with its own kind.
func (fw *FileWriter) Write(data []byte) error {
	dir := filepath.Dir(fw.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &SinkError{Kind: SinkCreateDir, Path: dir, Err: err}
	}

	if err := probeDirWritable(dir); err != nil {
		return &SinkError{Kind: SinkDirNotWritable, Path: dir, Err: err}
	}

	if _, err := os.Stat(fw.path); err == nil {
		fw.logger.Warn("overwriting existing file", slog.String("path", fw.path))

		if err := probeFileWritable(fw.path); err != nil {
			return &SinkError{Kind: SinkFileNotWritable, Path: fw.path, Err: err}
		}
	}

	if err := os.WriteFile(fw.path, data, fw.perm); err != nil {
		return &SinkError{Kind: SinkWrite, Path: fw.path, Err: err}
	}

	return nil
}

// Path returns the output file path.
func (fw *FileWriter) Path() string {
	return fw.path
}

// probeDirWritable verifies dir accepts new files by creating and removing
// a temp file. Permission-bit inspection is not portable enough here.
func probeDirWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".sitemapgen-*")
	if err != nil {
		return err
	}

	name := f.Name()
	_ = f.Close()

	return os.Remove(name)
}

// probeFileWritable verifies an existing file can be opened for writing.
func probeFileWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}

	return f.Close()
}
