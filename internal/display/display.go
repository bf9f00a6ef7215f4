// Package display renders contact records and status results, styled on a
// terminal and as plain text otherwise.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/phonebook/internal/contact"
)

// Printer writes records and operation outcomes to an output stream.
type Printer interface {
	Record(r *contact.Record)
	Records(rs []*contact.Record)
	Result(res contact.Result)
	Message(s string)
	Error(err error)
}

// Verify at compile time that printers implement Printer.
var (
	_ Printer = (*PlainPrinter)(nil)
	_ Printer = (*StyledPrinter)(nil)
)

// Options configures printer creation.
type Options struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force plain text even if TTY.
}

// NewPrinter returns a StyledPrinter when the writer is a TTY, or a
// PlainPrinter otherwise. ForcePlain overrides TTY detection.
func NewPrinter(opts Options) Printer {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.ForcePlain || !IsTTY(opts.Writer) {
		return NewPlainPrinter(opts.Writer)
	}
	return NewStyledPrinter(opts.Writer)
}

// IsTTY reports whether w is connected to a terminal.
func IsTTY(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainPrinter writes the canonical one-line text forms.
type PlainPrinter struct {
	w io.Writer
}

// NewPlainPrinter creates a PlainPrinter writing to w.
func NewPlainPrinter(w io.Writer) *PlainPrinter {
	return &PlainPrinter{w: w}
}

func (p *PlainPrinter) Record(r *contact.Record) {
	_, _ = fmt.Fprintln(p.w, r)
}

func (p *PlainPrinter) Records(rs []*contact.Record) {
	for _, r := range rs {
		p.Record(r)
	}
}

func (p *PlainPrinter) Result(res contact.Result) {
	_, _ = fmt.Fprintln(p.w, res.Message)
}

func (p *PlainPrinter) Message(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *PlainPrinter) Error(err error) {
	_, _ = fmt.Fprintf(p.w, "error: %s\n", err)
}

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	phoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"})
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
)

// StyledPrinter renders records as a name header with indented phones.
type StyledPrinter struct {
	w io.Writer
}

// NewStyledPrinter creates a StyledPrinter writing to w.
func NewStyledPrinter(w io.Writer) *StyledPrinter {
	return &StyledPrinter{w: w}
}

func (p *StyledPrinter) Record(r *contact.Record) {
	_, _ = fmt.Fprintln(p.w, RenderRecord(r))
}

func (p *StyledPrinter) Records(rs []*contact.Record) {
	if len(rs) == 0 {
		_, _ = fmt.Fprintln(p.w, dimStyle.Render("No contacts"))
		return
	}
	for _, r := range rs {
		p.Record(r)
	}
}

func (p *StyledPrinter) Result(res contact.Result) {
	if res.OK {
		_, _ = fmt.Fprintln(p.w, okStyle.Render(res.Message))
		return
	}
	_, _ = fmt.Fprintln(p.w, missStyle.Render(res.Message))
}

func (p *StyledPrinter) Message(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *StyledPrinter) Error(err error) {
	_, _ = fmt.Fprintln(p.w, errStyle.Render("error: "+err.Error()))
}

// RenderRecord renders a record as a styled name line followed by one
// indented line per phone.
func RenderRecord(r *contact.Record) string {
	var b strings.Builder
	b.WriteString(nameStyle.Render(r.Name().String()))
	phones := r.Phones()
	if len(phones) == 0 {
		b.WriteString("\n  " + dimStyle.Render("(no phones)"))
	}
	for _, ph := range phones {
		b.WriteString("\n  " + phoneStyle.Render(ph.String()))
	}
	return b.String()
}
