package configdoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/antonella-framework/antonella-cli/internal/platform"
)

// Document is a config file held as an ordered sequence of lines.
type Document struct {
	path    string
	lines   []string
	newline string
}

// Read loads the file at path into a Document.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(path, data), nil
}

// Parse builds a Document from raw file content. CRLF files keep their line
// endings on serialization.
func Parse(path string, data []byte) *Document {
	text := string(data)
	newline := "\n"
	if strings.Contains(text, "\r\n") {
		newline = "\r\n"
	}
	return &Document{
		path:    path,
		lines:   strings.Split(text, newline),
		newline: newline,
	}
}

// Path returns the file the document was read from.
func (d *Document) Path() string { return d.path }

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// Bytes serializes the document back to file content.
func (d *Document) Bytes() []byte {
	return []byte(strings.Join(d.lines, d.newline))
}

// Save writes the document back to its path. The write is staged through a
// temporary file, so an interrupted save leaves the previous content intact.
func (d *Document) Save() error {
	if d.path == "" {
		return fmt.Errorf("document has no path")
	}
	if err := platform.WriteFileAtomic(d.path, d.Bytes()); err != nil {
		return fmt.Errorf("saving config %s: %w", d.path, err)
	}
	return nil
}

// replaceLine returns a new document in which line i is replaced by text.
// text may span several lines; it is split so later anchor lookups still see
// one declaration per line.
func (d *Document) replaceLine(i int, text string) *Document {
	repl := strings.Split(text, "\n")
	lines := make([]string, 0, len(d.lines)+len(repl)-1)
	lines = append(lines, d.lines[:i]...)
	lines = append(lines, repl...)
	lines = append(lines, d.lines[i+1:]...)
	return &Document{path: d.path, lines: lines, newline: d.newline}
}
