package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"triz/standards/internal/domain"
)

// State is a step of the interactive lookup.
type State string

func (s State) String() string {
	return string(s)
}

const (
	StateSelectCategory     State = "select_category"
	StateResolveCategory    State = "resolve_category"
	StateSelectSubcategory  State = "select_subcategory"
	StateResolveSubcategory State = "resolve_subcategory"
	StateDisplayResults     State = "display_results"
	StateAborted            State = "aborted"
)

var ErrInvalidSelection = errors.New("selection not found")

// Resolver is the part of the lookup service the menu drives.
type Resolver interface {
	Categories() []string
	FlattenCategory(name string) *domain.Listing
	EnumerateChoices(w io.Writer, keys []string) domain.Choices
}

type Menu struct {
	resolver Resolver
	input    *bufio.Scanner
	printer  *Printer
}

func New(resolver Resolver, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		resolver: resolver,
		input:    bufio.NewScanner(in),
		printer:  NewPrinter(out),
	}
}

// Run walks one lookup from category selection to results and returns the
// terminal state. Invalid selections end in StateAborted without an error.
func (m *Menu) Run(ctx context.Context) (State, error) {
	state := StateSelectCategory
	var (
		category string
		listing  *domain.Listing
		entry    domain.ListingEntry
	)

	for {
		if err := ctx.Err(); err != nil {
			return StateAborted, err
		}
		log.Debugf("Menu state %s", state)

		switch state {
		case StateSelectCategory:
			m.printer.Heading("Available Categories:")
			choices := m.resolver.EnumerateChoices(m.printer.Writer(), m.resolver.Categories())

			selected, err := m.choose(choices, "\nEnter a number to choose a category: ")
			if err != nil {
				return m.abort(err)
			}
			category = selected
			state = StateResolveCategory

		case StateResolveCategory:
			listing = m.resolver.FlattenCategory(category)
			if listing.Len() == 0 {
				m.printer.Line("No results found for the given category.")
				return StateDisplayResults, nil
			}

			if first, _ := listing.First(); first.IsSubcategory() {
				state = StateSelectSubcategory
				continue
			}
			m.printer.Line("")
			m.printer.Listing(category, listing)
			return StateDisplayResults, nil

		case StateSelectSubcategory:
			m.printer.Line("")
			m.printer.Heading("Available Subcategories:")
			choices := m.resolver.EnumerateChoices(m.printer.Writer(), listing.Keys())

			selected, err := m.choose(choices, "\nEnter a number to choose a subcategory: ")
			if err != nil {
				return m.abort(err)
			}
			entry, _ = listing.Get(selected)
			state = StateResolveSubcategory

		case StateResolveSubcategory:
			if (entry.IsSubcategory() && entry.Codes.Len() == 0) || (!entry.IsSubcategory() && entry.Text == "") {
				m.printer.Line("No results found for the given subcategory.")
				return StateDisplayResults, nil
			}
			state = StateDisplayResults

		case StateDisplayResults:
			m.printer.Line("")
			if entry.IsSubcategory() {
				m.printer.Codes(fmt.Sprintf("Results for %s:", category), entry.Codes)
			} else {
				m.printer.Heading(fmt.Sprintf("Results for %s:", category))
				m.printer.Line("  " + entry.Text)
			}
			return StateDisplayResults, nil

		default:
			return StateAborted, fmt.Errorf("unknown menu state %q", state)
		}
	}
}

func (m *Menu) abort(err error) (State, error) {
	if !errors.Is(err, ErrInvalidSelection) {
		return StateAborted, err
	}
	log.Debugf("Aborting lookup: %v", err)
	m.printer.Line("Invalid choice. Exiting.")
	return StateAborted, nil
}

// choose prompts once and maps the typed number through choices.
func (m *Menu) choose(choices domain.Choices, prompt string) (string, error) {
	fmt.Fprint(m.printer.Writer(), prompt)

	if !m.input.Scan() {
		if err := m.input.Err(); err != nil {
			return "", fmt.Errorf("failed to read selection: %w", err)
		}
		return "", fmt.Errorf("%w: end of input", ErrInvalidSelection)
	}

	text := strings.TrimSpace(m.input.Text())
	n, err := strconv.Atoi(text)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, text)
	}

	key, ok := choices.Lookup(n)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrInvalidSelection, n)
	}
	return key, nil
}
