package rename

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/antonella-framework/antonella-cli/internal/ctxlog"
	"github.com/antonella-framework/antonella-cli/internal/platform"
)

var (
	// ErrManifestNotFound is returned when composer.json is missing.
	ErrManifestNotFound = errors.New("manifest not found")
	// ErrSourceTreeNotFound is returned when the source tree is missing or not a directory.
	ErrSourceTreeNotFound = errors.New("source tree not found")
	// ErrSameNamespace is returned when From and To are equal.
	ErrSameNamespace = errors.New("namespace unchanged")
	// ErrInvalidNamespace is returned when To is not a valid PHP namespace.
	ErrInvalidNamespace = errors.New("invalid namespace")
)

var namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\\[A-Za-z_][A-Za-z0-9_]*)*$`)

// ValidNamespace reports whether ns is a qualified PHP namespace name.
func ValidNamespace(ns string) bool {
	return namespacePattern.MatchString(ns)
}

// binarySniffLen bounds the prefix inspected for NUL bytes.
const binarySniffLen = 8192

// Scope names the files a rename touches.
type Scope struct {
	// Manifest is composer.json. It must exist.
	Manifest string
	// CoreFiles are rewritten when present and skipped when missing.
	CoreFiles []string
	// SourceTree is walked recursively. It must be a directory.
	SourceTree string
}

// Operation replaces the namespace From with To across Scope.
type Operation struct {
	From  string
	To    string
	Scope Scope
}

// Warning is a hit of the old namespace that continues into a longer
// identifier, e.g. Antonella\ABCDEF while renaming Antonella\ABCDE.
type Warning struct {
	Path string
	Line int
	Text string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.Path, w.Line, w.Text)
}

// Result counts what a rename changed. For a dry run it counts what would
// change.
type Result struct {
	ManifestUpdated  bool
	CoreFilesUpdated int
	FilesUpdated     int
	FilesScanned     int
	Warnings         []Warning
}

// Rename applies op. Preconditions are checked before the first write. Each
// file is replaced atomically and only when its content changes; the
// manifest and core files are written before the source tree.
func Rename(ctx context.Context, op Operation) (*Result, error) {
	return run(ctx, op, false)
}

// Scan reports what Rename would do without writing anything.
func Scan(ctx context.Context, op Operation) (*Result, error) {
	return run(ctx, op, true)
}

func (op Operation) check() error {
	if op.From == "" {
		return fmt.Errorf("empty source namespace")
	}
	if op.From == op.To {
		return fmt.Errorf("%w: %s", ErrSameNamespace, op.From)
	}
	if !ValidNamespace(op.To) {
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, op.To)
	}
	info, err := os.Stat(op.Scope.Manifest)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrManifestNotFound, op.Scope.Manifest)
	}
	info, err = os.Stat(op.Scope.SourceTree)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceTreeNotFound, op.Scope.SourceTree)
	}
	return nil
}

func run(ctx context.Context, op Operation, dryRun bool) (*Result, error) {
	if err := op.check(); err != nil {
		return nil, err
	}
	log := ctxlog.FromContext(ctx).With("from", op.From, "to", op.To, "dry_run", dryRun)
	res := &Result{}
	r := &rewriter{from: []byte(op.From), to: []byte(op.To), dryRun: dryRun, res: res}

	changed, err := r.file(op.Scope.Manifest, []byte(EscapeManifest(op.From)), []byte(EscapeManifest(op.To)))
	if err != nil {
		return nil, err
	}
	res.ManifestUpdated = changed
	log.Debug("manifest", "path", op.Scope.Manifest, "changed", changed)

	for _, core := range op.Scope.CoreFiles {
		if _, err := os.Stat(core); errors.Is(err, os.ErrNotExist) {
			log.Debug("core file missing, skipped", "path", core)
			continue
		}
		changed, err := r.file(core, r.from, r.to)
		if err != nil {
			return nil, err
		}
		if changed {
			res.CoreFilesUpdated++
		}
	}

	if err := r.tree(ctx, op.Scope.SourceTree); err != nil {
		return res, err
	}
	log.Debug("source tree done", "scanned", res.FilesScanned, "updated", res.FilesUpdated, "warnings", len(res.Warnings))
	return res, nil
}

type rewriter struct {
	from, to []byte
	dryRun   bool
	res      *Result
}

// tree walks root with an explicit stack. Directory entries come back sorted;
// the most recently pushed directory is visited first.
func (r *rewriter) tree(ctx context.Context, root string) error {
	log := ctxlog.FromContext(ctx)
	stack := []string{root}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("reading %s: %w", dir, err)
		}
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			switch {
			case e.Type()&os.ModeSymlink != 0:
				log.Debug("symlink not followed", "path", path)
			case e.IsDir():
				stack = append(stack, path)
			case e.Type().IsRegular():
				r.res.FilesScanned++
				changed, err := r.file(path, r.from, r.to)
				if err != nil {
					return err
				}
				if changed {
					r.res.FilesUpdated++
					log.Debug("rewrote", "path", path)
				}
			}
		}
	}
	return nil
}

// file substitutes old with repl in path and reports whether the content
// changed. Binary files are left alone.
func (r *rewriter) file(path string, old, repl []byte) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if isBinary(data) {
		return false, nil
	}
	if !bytes.Contains(data, old) {
		return false, nil
	}
	r.res.Warnings = append(r.res.Warnings, prefixHits(path, data, old)...)

	out := bytes.ReplaceAll(data, old, repl)
	if bytes.Equal(out, data) {
		return false, nil
	}
	if !r.dryRun {
		if err := platform.WriteFileAtomic(path, out); err != nil {
			return false, err
		}
	}
	return true, nil
}

func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// prefixHits finds occurrences of token immediately followed by an
// identifier character.
func prefixHits(path string, data, token []byte) []Warning {
	var out []Warning
	for i, line := range bytes.Split(data, []byte("\n")) {
		rest := line
		for {
			idx := bytes.Index(rest, token)
			if idx < 0 {
				break
			}
			end := idx + len(token)
			if end < len(rest) && isIdentByte(rest[end]) {
				out = append(out, Warning{Path: path, Line: i + 1, Text: string(bytes.TrimSpace(line))})
				break
			}
			rest = rest[end:]
		}
	}
	return out
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
