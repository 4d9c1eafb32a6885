package fsops

// FileSystem abstracts the two filesystem calls file removal depends on
// Enables swapping in a fake in tests instead of patching os
type FileSystem interface {
	IsFile(path string) (bool, error)
	Remove(path string) error
}
