// Package emitter writes generated configuration files.
package emitter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/DevSymphony/biome2eslint/internal/converter"
	"github.com/google/renameio/v2"
)

// Sink receives a generated file.
type Sink interface {
	WriteFile(name string, data []byte) error
}

// FileSink writes files into Dir, replacing any existing file atomically.
type FileSink struct {
	Dir string
}

// Path returns where name would be written.
func (s FileSink) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// WriteFile implements Sink.
func (s FileSink) WriteFile(name string, data []byte) error {
	path := s.Path(name)
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriterSink writes file contents to W, ignoring the name.
type WriterSink struct {
	W io.Writer
}

// WriteFile implements Sink.
func (s WriterSink) WriteFile(_ string, data []byte) error {
	if _, err := s.W.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// MemorySink keeps written files in memory.
type MemorySink struct {
	Files map[string][]byte
}

// WriteFile implements Sink.
func (s *MemorySink) WriteFile(name string, data []byte) error {
	if s.Files == nil {
		s.Files = make(map[string][]byte)
	}
	s.Files[name] = append([]byte(nil), data...)
	return nil
}

// Emit writes the generated config to sink. Nothing is written when the
// conversion produced no file.
func Emit(sink Sink, out *converter.Output) error {
	if out == nil || out.LinterDisabled {
		return nil
	}
	return sink.WriteFile(out.Filename, out.Content)
}
