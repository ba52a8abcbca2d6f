package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_NoColorOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.PrintOK("written")
	p.PrintWarn("careful")
	p.PrintInfo("note")
	p.PrintError("broken")
	p.PrintTitle("Convert", "biome.json")
	p.PrintIndent("detail")

	want := "[OK] written\n" +
		"[WARN] careful\n" +
		"[INFO] note\n" +
		"[ERROR] broken\n" +
		"[Convert] biome.json\n" +
		"     detail\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_Color(t *testing.T) {
	p := &Printer{out: &bytes.Buffer{}, color: true}
	assert.Equal(t, Green+"[OK]"+Reset+" done", p.OK("done"))
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
