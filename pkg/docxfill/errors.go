// Package docxfill provides custom error types for better error handling and reporting.
package docxfill

import "fmt"

// IOError represents a filesystem failure while creating, copying or
// placing the working copy of a document.
type IOError struct {
	Op    string
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("io error during %s of '%s': %v", e.Op, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("io error during %s of '%s'", e.Op, e.Path)
	}
	return fmt.Sprintf("io error during %s: %v", e.Op, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// NewIOError creates a new io error
func NewIOError(op, path string, cause error) error {
	return &IOError{
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// NotFoundError represents a failed structural search: the literal search
// text or an enclosing region boundary could not be located.
type NotFoundError struct {
	What   string
	Search string
}

func (e *NotFoundError) Error() string {
	if e.Search != "" {
		return fmt.Sprintf("%s not found for '%s'", e.What, e.Search)
	}
	return fmt.Sprintf("%s not found", e.What)
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(what, search string) error {
	return &NotFoundError{
		What:   what,
		Search: search,
	}
}

// PackageError represents a container failure: the document package could
// not be opened, written or closed.
type PackageError struct {
	Op    string
	Path  string
	Cause error
}

func (e *PackageError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("package error during %s of '%s': %v", e.Op, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("package error during %s of '%s'", e.Op, e.Path)
	}
	return fmt.Sprintf("package error during %s: %v", e.Op, e.Cause)
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}

// NewPackageError creates a new package error
func NewPackageError(op, path string, cause error) error {
	return &PackageError{
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// TransformError represents a failure in the external style-transform stage
type TransformError struct {
	Stage string
	Cause error
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transform error during %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("transform error during %s", e.Stage)
}

func (e *TransformError) Unwrap() error {
	return e.Cause
}

// NewTransformError creates a new transform error
func NewTransformError(stage string, cause error) error {
	return &TransformError{
		Stage: stage,
		Cause: cause,
	}
}

// IsIOError checks if an error is an io error
func IsIOError(err error) bool {
	_, ok := err.(*IOError)
	return ok
}

// IsNotFoundError checks if an error is a not-found error
func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsPackageError checks if an error is a package error
func IsPackageError(err error) bool {
	_, ok := err.(*PackageError)
	return ok
}

// IsTransformError checks if an error is a transform error
func IsTransformError(err error) bool {
	_, ok := err.(*TransformError)
	return ok
}
