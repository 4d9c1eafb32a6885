package metrics

import "upload-cleanup/internal/fsops"

// instrumentedFS counts calls to the wrapped FileSystem.
// Results and errors are passed through untouched.
type instrumentedFS struct {
	next fsops.FileSystem
}

// InstrumentFileSystem wraps fs so every check and delete is counted
func InstrumentFileSystem(fs fsops.FileSystem) fsops.FileSystem {
	Init()
	return &instrumentedFS{next: fs}
}

func (i *instrumentedFS) IsFile(path string) (bool, error) {
	ok, err := i.next.IsFile(path)
	FSChecksTotal.WithLabelValues(result(err)).Inc()
	return ok, err
}

func (i *instrumentedFS) Remove(path string) error {
	err := i.next.Remove(path)
	FSRemovalsTotal.WithLabelValues(result(err)).Inc()
	return err
}
