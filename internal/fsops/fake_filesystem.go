package fsops

import (
	"io/fs"
	"strings"
)

// FakeFileSystem implements FileSystem for testing
// Records all calls in order without touching the real filesystem
type FakeFileSystem struct {
	Files     map[string]bool
	IsFileErr map[string]error
	RemoveErr map[string]error
	Calls     []string
}

// NewFakeFileSystem returns a fake where each given path exists as a regular file
func NewFakeFileSystem(files ...string) *FakeFileSystem {
	f := &FakeFileSystem{Files: make(map[string]bool, len(files))}
	for _, p := range files {
		f.Files[p] = true
	}
	return f
}

func (f *FakeFileSystem) IsFile(path string) (bool, error) {
	f.Calls = append(f.Calls, "isfile:"+path)
	if err := f.IsFileErr[path]; err != nil {
		return false, err
	}
	return f.Files[path], nil
}

func (f *FakeFileSystem) Remove(path string) error {
	f.Calls = append(f.Calls, "rm:"+path)
	if err := f.RemoveErr[path]; err != nil {
		return err
	}
	if !f.Files[path] {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(f.Files, path)
	return nil
}

// RemoveCalls returns the paths passed to Remove, in call order
func (f *FakeFileSystem) RemoveCalls() []string {
	var out []string
	for _, c := range f.Calls {
		if p, ok := strings.CutPrefix(c, "rm:"); ok {
			out = append(out, p)
		}
	}
	return out
}
