package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Printer writes user-facing status lines. Colors are dropped automatically
// when the destination is not a terminal or NO_COLOR is set.
type Printer struct {
	out *termenv.Output
}

// NewPrinter returns a Printer on w.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

// Success prints a "✅ message" line.
func (p *Printer) Success(format string, args ...any) {
	p.line("✅", "2", format, args...)
}

// Warn prints a "⚠ message" line.
func (p *Printer) Warn(format string, args ...any) {
	p.line("⚠", "3", format, args...)
}

// Fail prints a "❌ message" line.
func (p *Printer) Fail(format string, args ...any) {
	p.line("❌", "1", format, args...)
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Writer exposes the underlying output for tabular reports.
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) line(icon, color, format string, args ...any) {
	mark := p.out.String(icon).Foreground(p.out.Color(color)).Bold()
	text := p.out.String(fmt.Sprintf(format, args...)).Foreground(p.out.Color("6"))
	fmt.Fprintf(p.out, "%s %s\n", mark, text)
}
