// Package upload holds the hook run once an upload has finished.
package upload

import "upload-cleanup/internal/removal"

// Service cleans up the local source of a completed upload
type Service struct {
	remover removal.Remover
}

// NewService creates a Service that deletes sources through r
func NewService(r removal.Remover) *Service {
	if r == nil {
		panic("upload: nil Remover")
	}
	return &Service{remover: r}
}

// UploadComplete removes the now redundant source file at path.
// Whether a failure aborts the surrounding upload is left to the caller.
func (s *Service) UploadComplete(path string) error {
	return s.remover.Remove(path)
}
