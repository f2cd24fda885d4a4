package configdoc

import (
	"bytes"
	"fmt"

	"github.com/antonella-framework/antonella-cli/internal/hooks"
)

// Indent is the indentation written in front of a rewritten declaration. It
// is fixed, so files that differ only in the anchor's indentation mutate to
// the same bytes.
const Indent = "\t"

// Result describes a mutation.
type Result struct {
	Array hooks.ArrayName
	Form  Form
	Line  int
	// NoOp is set when the mutated document serializes to the original bytes.
	NoOp bool
}

// Mutate returns a copy of doc with entry inserted as the first element of
// the named array. doc itself is not modified.
//
// An empty declaration is replaced by a complete one-element array. An open
// declaration is re-emitted with the new element and a trailing comma, and
// the existing elements and closing bracket below it are left as they are.
func Mutate(doc *Document, name hooks.ArrayName, entry hooks.Entry) (*Document, *Result, error) {
	anchor, err := NewAnchor(name)
	if err != nil {
		return nil, nil, err
	}
	m, err := anchor.Match(doc.lines)
	if err != nil {
		return nil, nil, err
	}

	element := Indent + Indent + entry.Render(Indent+Indent)
	header := Indent + Declaration(name)

	var text string
	switch m.Form {
	case FormEmpty:
		text = header + "\n" + element + "\n" + Indent + "];"
	case FormOpen:
		text = header + "\n" + element + ","
	default:
		return nil, nil, fmt.Errorf("unexpected anchor form %d", m.Form)
	}

	out := doc.replaceLine(m.Line, text)
	res := &Result{
		Array: name,
		Form:  m.Form,
		Line:  m.Line,
		NoOp:  bytes.Equal(out.Bytes(), doc.Bytes()),
	}
	return out, res, nil
}
