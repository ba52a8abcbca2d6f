package emitter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/DevSymphony/biome2eslint/internal/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_WritesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	sink := FileSink{Dir: dir}
	path := filepath.Join(dir, "eslint.config.mjs")

	require.NoError(t, os.WriteFile(path, []byte("old content that is longer than the new one"), 0644))
	require.NoError(t, sink.WriteFile("eslint.config.mjs", []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.Equal(t, path, sink.Path("eslint.config.mjs"))
}

func TestFileSink_UnwritableDir(t *testing.T) {
	sink := FileSink{Dir: filepath.Join(t.TempDir(), "missing", "dir")}
	err := sink.WriteFile("eslint.config.mjs", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eslint.config.mjs")
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriterSink{W: &buf}.WriteFile("ignored", []byte("content")))
	assert.Equal(t, "content", buf.String())
}

func TestEmit(t *testing.T) {
	sink := &MemorySink{}
	out := &converter.Output{Filename: "eslint.config.mjs", Content: []byte("export default 1;\n")}

	require.NoError(t, Emit(sink, out))
	assert.Equal(t, "export default 1;\n", string(sink.Files["eslint.config.mjs"]))
}

func TestEmit_LinterDisabledWritesNothing(t *testing.T) {
	sink := &MemorySink{}
	require.NoError(t, Emit(sink, &converter.Output{Filename: "eslint.config.mjs", LinterDisabled: true}))
	require.NoError(t, Emit(sink, nil))
	assert.Empty(t, sink.Files)
}
