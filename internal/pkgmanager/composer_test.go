package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeComposer writes a shell script that records its arguments and exits
// with the given code.
func fakeComposer(t *testing.T, exitCode string) (bin, argsFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	bin = filepath.Join(dir, "composer")
	script := "#!/bin/sh\necho \"$@\" > " + argsFile + "\necho working\necho oops >&2\nexit " + exitCode + "\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	return bin, argsFile
}

func TestComposer_Commands(t *testing.T) {
	bin, argsFile := fakeComposer(t, "0")
	var stdout, stderr bytes.Buffer
	c := &Composer{Bin: bin, Dir: t.TempDir(), Stdout: &stdout, Stderr: &stderr}
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
		want string
	}{
		{"require", func() error { return c.Require(ctx, "jenssegers/blade", false) }, "require jenssegers/blade"},
		{"require dev", func() error { return c.Require(ctx, "symfony/var-dumper", true) }, "require symfony/var-dumper --dev"},
		{"remove", func() error { return c.Remove(ctx, "jenssegers/blade") }, "remove jenssegers/blade"},
		{"dump-autoload", func() error { return c.DumpAutoload(ctx) }, "dump-autoload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.run())
			got, err := os.ReadFile(argsFile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(string(got)))
		})
	}
	assert.Contains(t, stdout.String(), "working")
	assert.Contains(t, stderr.String(), "oops")
}

func TestComposer_NonZeroExit(t *testing.T) {
	bin, _ := fakeComposer(t, "3")
	c := &Composer{Bin: bin, Dir: t.TempDir(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := c.DumpAutoload(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExternalTool))

	var te *ToolError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 3, te.ExitCode)
	assert.Equal(t, "oops", te.Output)
}

func TestComposer_MissingBinary(t *testing.T) {
	c := &Composer{Bin: filepath.Join(t.TempDir(), "no-such-composer")}
	err := c.DumpAutoload(context.Background())
	assert.ErrorIs(t, err, ErrExternalTool)

	_, err = c.Available()
	assert.ErrorIs(t, err, ErrExternalTool)
}

func TestLookupModule(t *testing.T) {
	m, err := LookupModule("DD", false)
	require.NoError(t, err)
	assert.Equal(t, "symfony/var-dumper", m.Package)
	assert.True(t, m.Dev)

	_, err = LookupModule("model", true)
	assert.Error(t, err, "model cannot be removed")

	_, err = LookupModule("twig", false)
	assert.Error(t, err)

	assert.Equal(t, []string{"blade", "dd", "model"}, ModuleNames(false))
	assert.Equal(t, []string{"blade", "dd"}, ModuleNames(true))
}
