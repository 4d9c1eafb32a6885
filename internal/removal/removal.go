// Package removal deletes a file at a path if, and only if, it exists as a regular file.
package removal

import "upload-cleanup/internal/fsops"

// Remover is the removal capability handed to callers that need to drop a file
type Remover interface {
	Remove(path string) error
}

// Func adapts a plain function to Remover, e.g. removal.Func(removal.Remove)
type Func func(path string) error

func (f Func) Remove(path string) error {
	return f(path)
}

// Service removes files through an injected FileSystem
type Service struct {
	fs fsops.FileSystem
}

// NewService creates a Service backed by fs, or by the OS filesystem when fs is nil
func NewService(fs fsops.FileSystem) *Service {
	if fs == nil {
		fs = fsops.OSFileSystem{}
	}
	return &Service{fs: fs}
}

// Remove deletes path when it is a regular file and does nothing otherwise.
// Check and delete are not atomic; collaborator errors are returned unchanged.
func (s *Service) Remove(path string) error {
	return removeWith(s.fs, path)
}

// Remove deletes path from the OS filesystem when it is a regular file
func Remove(path string) error {
	return removeWith(fsops.OSFileSystem{}, path)
}

func removeWith(fs fsops.FileSystem, path string) error {
	ok, err := fs.IsFile(path)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return fs.Remove(path)
}
