package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// Printer writes status lines to an output stream
type Printer struct {
	out   io.Writer
	color bool
}

// New creates a printer for w. Colors are used only when w is a terminal.
func New(w io.Writer) *Printer {
	return &Printer{out: w, color: IsTerminal(w)}
}

// IsTerminal checks if w is a terminal
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// colorize applies color only if output is a TTY
func (p *Printer) colorize(color, msg string) string {
	if !p.color {
		return msg
	}
	return color + msg + Reset
}

// OK formats a success message with [OK] prefix in green
func (p *Printer) OK(msg string) string {
	return fmt.Sprintf("%s %s", p.colorize(Green, "[OK]"), msg)
}

// Error formats an error message with [ERROR] prefix in red
func (p *Printer) Error(msg string) string {
	return fmt.Sprintf("%s %s", p.colorize(Red, "[ERROR]"), msg)
}

// Warn formats a warning message with [WARN] prefix in yellow
func (p *Printer) Warn(msg string) string {
	return fmt.Sprintf("%s %s", p.colorize(Yellow, "[WARN]"), msg)
}

// Info formats an info message with [INFO] prefix in blue
func (p *Printer) Info(msg string) string {
	return fmt.Sprintf("%s %s", p.colorize(Blue, "[INFO]"), msg)
}

// TitleWithDesc formats a section title with description
func (p *Printer) TitleWithDesc(title, desc string) string {
	return fmt.Sprintf("%s %s", p.colorize(Bold+Cyan, fmt.Sprintf("[%s]", title)), desc)
}

// PrintOK prints a success message
func (p *Printer) PrintOK(msg string) {
	fmt.Fprintln(p.out, p.OK(msg))
}

// PrintError prints an error message
func (p *Printer) PrintError(msg string) {
	fmt.Fprintln(p.out, p.Error(msg))
}

// PrintWarn prints a warning message
func (p *Printer) PrintWarn(msg string) {
	fmt.Fprintln(p.out, p.Warn(msg))
}

// PrintInfo prints an info message
func (p *Printer) PrintInfo(msg string) {
	fmt.Fprintln(p.out, p.Info(msg))
}

// PrintTitle prints a section title
func (p *Printer) PrintTitle(title, desc string) {
	fmt.Fprintln(p.out, p.TitleWithDesc(title, desc))
}

// Indent returns the message with indentation
func Indent(msg string) string {
	return "     " + msg
}

// PrintIndent prints an indented message
func (p *Printer) PrintIndent(msg string) {
	fmt.Fprintln(p.out, Indent(msg))
}
