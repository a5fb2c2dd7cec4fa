package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func TestNewLocalStore_CreatesDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := NewLocalStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, root, store.Root())
}

func TestNewLocalStore_EmptyRoot(t *testing.T) {
	_, err := NewLocalStore("")
	assert.Error(t, err)
}

func TestLocalStore_SaveAndOpen(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }

	path, err := store.Save(strings.NewReader("hello"), "notes.txt")
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "1700000000000-"), base)
	assert.True(t, strings.HasSuffix(base, "-notes.txt"), base)
	assert.Equal(t, store.Root(), filepath.Dir(path))

	f, err := store.Open(path)
	require.NoError(t, err)
	defer f.Close()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestLocalStore_SameNameSameInstantGetsDistinctPaths(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	frozen := time.Now()
	store.now = func() time.Time { return frozen }

	first, err := store.Save(strings.NewReader("one"), "dup.txt")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("two"), "dup.txt")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStore_SaveStripsDirectories(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(strings.NewReader("x"), "../../etc/passwd")
	require.NoError(t, err)

	assert.Equal(t, store.Root(), filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "-passwd"))
}

func TestLocalStore_SaveRemovesPartialFile(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	require.NoError(t, err)

	_, err = store.Save(failingReader{}, "broken.bin")
	require.Error(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(filepath.Join(store.Root(), "nope.txt"))
	assert.ErrorIs(t, err, ErrContentMissing)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "a.txt", sanitizeName(`C:\Users\me\a.txt`))
	assert.Equal(t, "file", sanitizeName(""))
	assert.Equal(t, "file", sanitizeName("/"))
}
