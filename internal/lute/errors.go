package lute

import "fmt"

// ValidationError reports a target path that does not point at a Lute store.
// No connection is attempted when extraction fails with it.
type ValidationError struct {
	Path string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("not a %s file: %s", StoreFilename, e.Path)
}

// StoreError reports a failure while opening the store or executing one of
// the extraction queries. It wraps the underlying driver error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
