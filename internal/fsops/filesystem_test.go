package fsops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystemIsFile(t *testing.T) {
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "upload.bin")
	require.NoError(t, os.WriteFile(file, []byte("payload"), 0o644))

	link := filepath.Join(tmpDir, "upload.link")
	require.NoError(t, os.Symlink(file, link))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", file, true},
		{"directory", tmpDir, false},
		{"missing path", filepath.Join(tmpDir, "missing"), false},
		{"symlink to file", link, true},
	}

	var osfs OSFileSystem
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := osfs.IsFile(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOSFileSystemRemove(t *testing.T) {
	file := filepath.Join(t.TempDir(), "upload.bin")
	require.NoError(t, os.WriteFile(file, []byte("payload"), 0o644))

	var osfs OSFileSystem
	require.NoError(t, osfs.Remove(file))

	_, err := os.Stat(file)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "file should be gone, stat err=%v", err)

	// A second remove surfaces the os error untouched
	err = osfs.Remove(file)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFakeFileSystemRecordsCalls(t *testing.T) {
	fake := NewFakeFileSystem("/uploads/a")

	ok, err := fake.IsFile("/uploads/a")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, fake.Remove("/uploads/a"))

	ok, err = fake.IsFile("/uploads/a")
	require.NoError(t, err)
	assert.False(t, ok, "removed path must no longer exist")

	assert.Equal(t, []string{"isfile:/uploads/a", "rm:/uploads/a", "isfile:/uploads/a"}, fake.Calls)
	assert.Equal(t, []string{"/uploads/a"}, fake.RemoveCalls())
}

func TestFakeFileSystemInjectedErrors(t *testing.T) {
	fake := NewFakeFileSystem("/uploads/locked")
	fake.IsFileErr = map[string]error{"/uploads/unreadable": fs.ErrPermission}
	fake.RemoveErr = map[string]error{"/uploads/locked": fs.ErrPermission}

	_, err := fake.IsFile("/uploads/unreadable")
	assert.ErrorIs(t, err, fs.ErrPermission)

	err = fake.Remove("/uploads/locked")
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.True(t, fake.Files["/uploads/locked"], "failed remove must leave the file in place")

	err = fake.Remove("/uploads/never-existed")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
