package testutil_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/haliatech/sassy/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFSDirectories(t *testing.T) {
	m := testutil.NewMemoryFS()

	require.NoError(t, m.MkdirAll("a/b/c", 0o755))
	assert.True(t, m.HasDir("a/b/c"))
	// Parents materialize with the leaf.
	assert.True(t, m.HasDir("a/b"))

	info, err := m.Stat("a/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryFSFilesRequireParentDir(t *testing.T) {
	m := testutil.NewMemoryFS()

	err := m.WriteFile("missing/file.txt", []byte("x"), 0o644)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, m.MkdirAll("present", 0o755))
	require.NoError(t, m.WriteFile("present/file.txt", []byte("x"), 0o644))

	data, err := m.ReadFile("present/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestMemoryFSCountsMutations(t *testing.T) {
	m := testutil.NewMemoryFS()

	require.NoError(t, m.MkdirAll("d", 0o755))
	require.NoError(t, m.WriteFile("d/f", nil, 0o644))
	require.NoError(t, m.Remove("d/f"))

	assert.Equal(t, 1, m.MkdirCalls)
	assert.Equal(t, 1, m.WriteCalls)
	assert.Equal(t, 1, m.RemoveCalls)
}

func TestMemoryFSInjectedErrors(t *testing.T) {
	m := testutil.NewMemoryFS()
	boom := errors.New("boom")
	m.InjectError("bad", boom)

	_, err := m.Stat("bad")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, m.MkdirAll("bad", 0o755), boom)
	assert.ErrorIs(t, m.WriteFile("bad", nil, 0o644), boom)
	assert.ErrorIs(t, m.Remove("bad"), boom)
}

func TestMemoryFSRemove(t *testing.T) {
	m := testutil.NewMemoryFS()
	m.AddFile("a/f.txt", "hi")

	require.NoError(t, m.Remove("a/f.txt"))
	_, exists := m.HasFile("a/f.txt")
	assert.False(t, exists)

	assert.ErrorIs(t, m.Remove("a/f.txt"), fs.ErrNotExist)
}
