// Package vfs implements the in-memory virtual filesystem tree: node
// model, path resolution, mutation, and traversal.
//
// This file contains error kinds and the error wrapper shared by all
// operations in the package.
package vfs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a named path component does not exist
	ErrNotFound = errors.New("no such file or directory")

	// ErrNotDirectory indicates an attempt to descend into or list a
	// non-directory node
	ErrNotDirectory = errors.New("not a directory")

	// ErrTypeConflict indicates a name is already taken by a node of the
	// opposite type
	ErrTypeConflict = errors.New("node of conflicting type exists")

	// ErrExists indicates a directory copy targeted an occupied name
	ErrExists = errors.New("target already exists")

	// ErrInvalidPath indicates a structurally nonsensical path
	ErrInvalidPath = errors.New("invalid path")

	// ErrRecursiveCopy indicates a directory copy whose destination lies
	// inside the source tree
	ErrRecursiveCopy = errors.New("cannot copy a directory into itself")

	// ErrLoadFailure indicates a seed source could not be turned into a tree.
	// It is surfaced by the loader boundary, never by tree operations.
	ErrLoadFailure = errors.New("load failure")
)

// Error wraps a failed tree operation with the operation name and the
// affected path.
type Error struct {
	Op   string // Operation that failed (e.g. "resolve", "copy")
	Path string // Affected path
	Err  error  // Underlying error kind
}

// Error implements the error interface, providing a formatted error message
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements error unwrapping for the errors.Is/As functions
func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}

// Common operation names for consistent error reporting
const (
	OpResolve = "resolve"
	OpMkdir   = "mkdir"
	OpCreate  = "create"
	OpCopy    = "copy"
	OpList    = "list"
	OpWalk    = "walk"
	OpLoad    = "load"
)
