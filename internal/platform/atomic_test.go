package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Config.php")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteFileAtomic(path, []byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteFileAtomic_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.php")

	require.NoError(t, WriteFileAtomic(path, []byte("<?php\n")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, DefaultFileMode, info.Mode().Perm())
	}
}

func TestWriteFileAtomic_PreservesPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	path := filepath.Join(t.TempDir(), "antonella")
	require.NoError(t, os.WriteFile(path, []byte("#!/usr/bin/env php\n"), 0o755))

	require.NoError(t, WriteFileAtomic(path, []byte("#!/usr/bin/env php\n// changed\n")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestWriteFileAtomic_LeavesNoStagingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "composer.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	require.NoError(t, WriteFileAtomic(path, []byte(`{"name":"x"}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "composer.json", entries[0].Name())
}

func TestWriteFileAtomic_RejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	err := WriteFileAtomic(dir, []byte("x"))
	assert.Error(t, err)
}

func TestChmod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")
	require.NoError(t, os.WriteFile(path, []byte("test"), 0o644))

	require.NoError(t, Chmod(path, 0o600))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}
