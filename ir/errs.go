package ir

import (
	"errors"
	"fmt"
)

// ErrReconstruct is the sentinel under every ReconstructError.
var ErrReconstruct = errors.New("cannot reconstruct node")

// ReconstructError reports that a variant has no way to build an instance
// from the supplied argument vector.
type ReconstructError struct {
	Variant string
	Arity   int
	Reason  string
}

func (e *ReconstructError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot reconstruct %s from %d args: %s", e.Variant, e.Arity, e.Reason)
	}
	return fmt.Sprintf("cannot reconstruct %s from %d args", e.Variant, e.Arity)
}

func (e *ReconstructError) Unwrap() error {
	return ErrReconstruct
}

// TreeError wraps a failure that occurred during a tree operation,
// carrying the rendered offending node and the underlying cause.
type TreeError struct {
	Tree string
	Msg  string
	Err  error
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("%s: %v, tree:\n%s", e.Msg, e.Err, e.Tree)
}

func (e *TreeError) Unwrap() error {
	return e.Err
}

// AttachTree runs f and wraps any failure with msg and n's one-line
// description. The render package offers the same wrapper with the full
// multi-line tree.
func AttachTree(n Node, msg string, f func() error) error {
	if err := f(); err != nil {
		return &TreeError{Tree: SimpleString(n, DefaultMaxFields), Msg: msg, Err: err}
	}
	return nil
}
