package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"triz/standards/internal/domain"
	"triz/standards/internal/ordered"
)

// Printer renders lookup results as indented text.
type Printer struct {
	out     io.Writer
	heading lipgloss.Style
	key     lipgloss.Style
}

// NewPrinter styles output for w; plain text when w is not a terminal.
func NewPrinter(w io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(w)
	return &Printer{
		out:     w,
		heading: renderer.NewStyle().Bold(true),
		key:     renderer.NewStyle().Faint(true),
	}
}

func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.out, p.heading.Render(text))
}

func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}

// Listing prints every entry of a flattened category; subcategories are indented once more.
func (p *Printer) Listing(title string, listing *domain.Listing) {
	p.Heading(fmt.Sprintf("Results for %s:", title))
	for _, key := range listing.Keys() {
		entry, _ := listing.Get(key)
		if entry.IsSubcategory() {
			fmt.Fprintf(p.out, "  %s:\n", p.key.Render(key))
			p.codes("    ", entry.Codes)
			continue
		}
		fmt.Fprintf(p.out, "  %s: %s\n", p.key.Render(key), entry.Text)
	}
}

// Codes prints a code -> text mapping under a heading.
func (p *Printer) Codes(title string, codes *ordered.Map[string]) {
	p.Heading(title)
	p.codes("  ", codes)
}

func (p *Printer) codes(indent string, codes *ordered.Map[string]) {
	codes.Each(func(code, text string) bool {
		fmt.Fprintf(p.out, "%s%s: %s\n", indent, p.key.Render(code), text)
		return true
	})
}

// Record prints every field of a detail record.
func (p *Printer) Record(record domain.Record) {
	p.Heading(record.Key)
	if !record.Node.IsObject() {
		fmt.Fprintf(p.out, "  %s\n", record.Node.Text)
		return
	}
	p.node("  ", record.Node)
}

func (p *Printer) node(indent string, n *domain.Node) {
	n.Fields.Each(func(key string, child *domain.Node) bool {
		if child.IsObject() {
			fmt.Fprintf(p.out, "%s%s:\n", indent, p.key.Render(key))
			p.node(indent+"  ", child)
			return true
		}
		fmt.Fprintf(p.out, "%s%s: %s\n", indent, p.key.Render(key), strings.TrimSpace(child.Text))
		return true
	})
}
