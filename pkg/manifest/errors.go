package manifest

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInvalidEncoding is wrapped by a ReadError when the file is not UTF-8 text
var ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")

// ErrMultipleDocuments is wrapped by a ParseError when the input holds more than one YAML document
var ErrMultipleDocuments = errors.New("expected a single YAML document")

// ReadError is returned when the manifest file cannot be opened or read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("Path %q does not exist.", e.Path)
	}
	return fmt.Sprintf("reading manifest %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError is returned when the manifest is not well-formed YAML,
// does not have the expected shape, or has records missing required keys.
type ParseError struct {
	// Path is empty when the input did not come from a file
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing manifest: %v", e.Err)
	}
	return fmt.Sprintf("parsing manifest %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FieldError names a required key missing from one record
type FieldError struct {
	List  string
	Index int
	Field string
	Line  int
}

func (e *FieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s[%d] (line %d): missing required field %q", e.List, e.Index, e.Line, e.Field)
	}
	return fmt.Sprintf("%s[%d]: missing required field %q", e.List, e.Index, e.Field)
}
