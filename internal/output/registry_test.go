package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("file", func(path string) Writer { return NewFileWriter(path) })

	factory, err := r.Writer("file")
	require.NoError(t, err)
	assert.NotNil(t, factory("/tmp/x"))
}

func TestRegistry_UnknownSink(t *testing.T) {
	r := NewRegistry()

	_, err := r.Writer("ftp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output sink")
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry(nil)
	assert.Equal(t, []string{SinkFile, SinkStdout}, r.Sinks())

	// File factory falls back to stdout on an empty path.
	factory, err := r.Writer(SinkFile)
	require.NoError(t, err)

	_, isStdout := factory("").(*StdoutWriter)
	assert.True(t, isStdout)

	_, isFile := factory("/tmp/sitemap.xml").(*FileWriter)
	assert.True(t, isFile)
}

func TestDefaultRegistry_StdoutTarget(t *testing.T) {
	var buf bytes.Buffer

	r := DefaultRegistry(&buf)

	factory, err := r.Writer(SinkStdout)
	require.NoError(t, err)

	require.NoError(t, factory("").Write([]byte("payload")))
	assert.Equal(t, "payload", buf.String())
}

func TestDefaultRegistry_FileWriterOptions(t *testing.T) {
	r := DefaultRegistry(nil, WithPermissions(0o600))

	factory, err := r.Writer(SinkFile)
	require.NoError(t, err)

	fw, ok := factory("/tmp/sitemap.xml").(*FileWriter)
	require.True(t, ok)
	assert.Equal(t, "/tmp/sitemap.xml", fw.Path())
}
