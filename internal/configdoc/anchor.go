package configdoc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/antonella-framework/antonella-cli/internal/hooks"
)

// ErrAnchorNotFound means the config file does not declare the array in the
// canonical `public $name = [` shape.
var ErrAnchorNotFound = errors.New("array declaration not found")

// Form tells which of the two anchor patterns matched.
type Form int

const (
	// FormEmpty matches `public $name = [];`.
	FormEmpty Form = iota + 1
	// FormOpen matches `public $name = [` with elements on the following lines.
	FormOpen
)

func (f Form) String() string {
	switch f {
	case FormEmpty:
		return "empty"
	case FormOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Anchor holds the normalized declaration patterns of one array.
type Anchor struct {
	Name      hooks.ArrayName
	EmptyForm string
	OpenForm  string
}

// Match locates an anchor inside a document.
type Match struct {
	Line int
	Form Form
}

// NewAnchor derives the patterns for name. Anchors are cheap and never cached.
func NewAnchor(name hooks.ArrayName) (Anchor, error) {
	if !name.Valid() {
		return Anchor{}, fmt.Errorf("%w: %q", hooks.ErrUnknownArray, name)
	}
	return Anchor{
		Name:      name,
		EmptyForm: Normalize(Declaration(name) + "];"),
		OpenForm:  Normalize(Declaration(name)),
	}, nil
}

// Declaration returns the canonical opening of the array declaration.
func Declaration(name hooks.ArrayName) string {
	return "public $" + string(name) + " = ["
}

// Normalize strips every whitespace character from line.
func Normalize(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}

// Match returns the first line declaring the array. The empty form is checked
// first on each line.
func (a Anchor) Match(lines []string) (Match, error) {
	for i, line := range lines {
		switch Normalize(line) {
		case a.EmptyForm:
			return Match{Line: i, Form: FormEmpty}, nil
		case a.OpenForm:
			return Match{Line: i, Form: FormOpen}, nil
		}
	}
	return Match{}, fmt.Errorf("%w: %s", ErrAnchorNotFound, Declaration(a.Name))
}
