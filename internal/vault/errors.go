package vault

import (
	"errors"
	"io/fs"
)

// ErrIO matches any IOError via errors.Is.
var ErrIO = errors.New("vault io failure")

// IOError reports a filesystem operation that failed while initializing a vault.
type IOError struct {
	Op   string // "mkdir", "stat", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return e.Op + " " + e.Path + ": " + cause.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func ioErr(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
