package fileio

import (
	"errors"
	"fmt"
)

// ErrFileIO is matched by every error returned from this package.
var ErrFileIO = errors.New("file i/o error")

// FileError wraps a filesystem, encoding or validation failure together with
// the operation and file it happened on.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFileIO) match any FileError.
func (e *FileError) Is(target error) bool { return target == ErrFileIO }

func fileError(op, path string, err error) error {
	var fe *FileError
	if errors.As(err, &fe) {
		return err
	}
	return &FileError{Op: op, Path: path, Err: err}
}
