package repository

import "fmt"

// StorageError tags any failure of the persistence collaborator:
// connection loss, pool exhaustion, statement timeout, or a rejected
// write. Handlers map it to a 500 response; the wrapped cause is for
// server-side logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// storageErr wraps err as a StorageError, passing nil through.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
