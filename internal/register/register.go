package register

import (
	"context"
	"errors"
	"fmt"

	"github.com/antonella-framework/antonella-cli/internal/configdoc"
	"github.com/antonella-framework/antonella-cli/internal/ctxlog"
	"github.com/antonella-framework/antonella-cli/internal/hookregistry"
	"github.com/antonella-framework/antonella-cli/internal/hooks"
)

// ErrDuplicateEntry marks an entry whose key is already registered. It is
// reported through Outcome.Err, never as a failure of Add.
var ErrDuplicateEntry = errors.New("entry already registered")

// Outcome describes what Add did to the config file.
type Outcome struct {
	Array   hooks.ArrayName
	Key     hooks.DuplicateKey
	Skipped bool
	// Mutation is nil when the entry was skipped.
	Mutation *configdoc.Result
}

// Err returns ErrDuplicateEntry for a skipped entry and nil otherwise.
func (o *Outcome) Err() error {
	if o.Skipped {
		return fmt.Errorf("%w: %s in $%s", ErrDuplicateEntry, o.Key, o.Array)
	}
	return nil
}

// Add inserts entry into the named array of the config file at path, unless
// an entry with the same key is already there. The file is loaded once,
// checked, mutated in memory and saved atomically; a duplicate leaves it
// byte-identical.
func Add(ctx context.Context, path string, name hooks.ArrayName, entry hooks.Entry) (*Outcome, error) {
	log := ctxlog.FromContext(ctx)
	if !name.Valid() {
		return nil, fmt.Errorf("%w: %q", hooks.ErrUnknownArray, name)
	}

	doc, err := configdoc.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hookregistry.ErrConfigLoad, err)
	}
	reg, err := hookregistry.Decode(doc.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", hookregistry.ErrConfigLoad, path, err)
	}

	out := &Outcome{Array: name, Key: entry.Key()}
	if hookregistry.IsDuplicate(reg, name, entry) {
		log.Debug("duplicate entry, skipping", "array", name, "key", out.Key.String())
		out.Skipped = true
		return out, nil
	}

	mutated, res, err := configdoc.Mutate(doc, name, entry)
	if err != nil {
		return nil, err
	}
	out.Mutation = res
	if res.NoOp {
		log.Warn("mutation produced identical content", "array", name, "line", res.Line+1)
		return out, nil
	}
	if err := mutated.Save(); err != nil {
		return nil, err
	}
	log.Debug("registered entry", "array", name, "key", out.Key.String(), "form", res.Form, "line", res.Line+1)
	return out, nil
}
