package stub

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/antonella-framework/antonella-cli/internal/platform"
)

//go:embed templates/*.stub
var templateFS embed.FS

// ErrExists is returned when Render would overwrite a file.
var ErrExists = errors.New("file already exists")

// Kind selects a template.
type Kind string

const (
	Controller Kind = "controller"
	Widget     Kind = "widget"
	Helper     Kind = "helper"
	Command    Kind = "command"
	Method     Kind = "method"
)

// Data holds every variable the templates reference.
type Data struct {
	Namespace string // e.g. Antonella\ABCDE\Controllers
	ClassName string // e.g. HomeController
	Name      string // helper file and function name
	Slug      string // widget id base
	ShortCode string // console command name, e.g. app:sync
	Method    string
	Args      int
	// Return is a PHP expression the generated method returns, if any.
	Return string
}

// Generator renders templates. Templates found in Dir take precedence over
// the embedded ones.
type Generator struct {
	Dir string
}

// New returns a Generator that reads overrides from dir. An empty dir uses
// only the embedded templates.
func New(dir string) *Generator {
	return &Generator{Dir: dir}
}

func (g *Generator) source(kind Kind) ([]byte, error) {
	name := string(kind) + ".stub"
	if g.Dir != "" {
		data, err := os.ReadFile(filepath.Join(g.Dir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading stub %s: %w", name, err)
		}
	}
	data, err := fs.ReadFile(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("stub %q not found: %w", kind, err)
	}
	return data, nil
}

var funcs = template.FuncMap{
	"params": func(n int) string {
		ps := make([]string, n)
		for i := range ps {
			ps[i] = fmt.Sprintf("$arg%d", i+1)
		}
		return strings.Join(ps, ", ")
	},
}

// Execute returns the rendered template for kind.
func (g *Generator) Execute(kind Kind, data Data) ([]byte, error) {
	src, err := g.source(kind)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(string(kind)).Funcs(funcs).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing stub %s: %w", kind, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing stub %s: %w", kind, err)
	}
	return buf.Bytes(), nil
}

// Render writes the rendered template to out, creating parent directories.
// An existing out is never overwritten.
func (g *Generator) Render(kind Kind, out string, data Data) error {
	if _, err := os.Stat(out); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, out)
	}
	content, err := g.Execute(kind, data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", out, err)
	}
	return platform.WriteFileAtomic(out, content)
}

// HasMethod reports whether the PHP source declares a function named method.
func HasMethod(src []byte, method string) bool {
	re := regexp.MustCompile(`(?i)\bfunction\s+&?` + regexp.QuoteMeta(method) + `\s*\(`)
	return re.Match(src)
}

// AppendMethod adds a method stub before the final closing brace of the
// class file at path. It reports false, without writing, when the method
// is already declared.
func (g *Generator) AppendMethod(path string, data Data) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading class %s: %w", path, err)
	}
	if HasMethod(src, data.Method) {
		return false, nil
	}
	end := bytes.LastIndexByte(src, '}')
	if end < 0 {
		return false, fmt.Errorf("%s: no class body found", path)
	}
	method, err := g.Execute(Method, data)
	if err != nil {
		return false, err
	}

	var out bytes.Buffer
	out.Write(bytes.TrimRight(src[:end], " \t\r\n"))
	out.WriteString("\n")
	out.Write(method)
	out.Write(src[end:])
	if err := platform.WriteFileAtomic(path, out.Bytes()); err != nil {
		return false, err
	}
	return true, nil
}
