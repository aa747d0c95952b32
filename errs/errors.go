// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package errs defines the flat error taxonomy the uvio components use for
// their own failure modes. Errors from an underlying reader, writer or
// connection are passed through unchanged, codec/ws reports unsupported
// frames with its own ErrUnsupportedFrame sentinel, and loop reports a
// panicking task body as a plain error.
package errs

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind is one of the five error categories of the taxonomy.
type Kind uint8

const (
	// UnexpectedEOF means input ended before the required bytes were read.
	UnexpectedEOF Kind = iota
	// WriteZero means a write attempt produced 0 bytes and cannot progress.
	WriteZero
	// ResolvedFailed means the DNS collaborator failed to resolve a name.
	ResolvedFailed
	// ReuniteError means reunite was called on halves that share no origin.
	ReuniteError
	// Unclassified covers protocol violations and opaque OS errors.
	Unclassified
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEOF:
		return "unexpected eof"
	case WriteZero:
		return "write zero"
	case ResolvedFailed:
		return "resolve failed"
	case ReuniteError:
		return "reunite error"
	case Unclassified:
		return "unclassified"
	default:
		return "unknown"
	}
}

// Error is the concrete error type that carries a Kind.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return "uvio: " + e.Kind.String()
	}
	return fmt.Sprintf("uvio: %s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether err (or anything it wraps) is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// New wraps cause as the given Kind. Unclassified causes are additionally
// decorated with a stack trace so a caller debugging a production failure
// can see where the core first observed it, not just the bare OS error.
func New(kind Kind, cause error) error {
	if kind == Unclassified && cause != nil {
		cause = pkgerrors.WithStack(cause)
	}
	return &Error{Kind: kind, Cause: cause}
}

// Wrap wraps cause as Kind Unclassified with a stack trace attached.
func Wrap(cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: Unclassified, Cause: pkgerrors.WithStack(cause)}
}

var (
	// ErrUnexpectedEOF is returned when a required byte count could not be
	// read before the source was exhausted.
	ErrUnexpectedEOF = &Error{Kind: UnexpectedEOF, Cause: errors.New("input ended before required bytes were read")}
	// ErrWriteZero is returned when a write attempt made zero progress.
	ErrWriteZero = &Error{Kind: WriteZero, Cause: errors.New("write returned 0 bytes and cannot progress")}
	// ErrResolveFailed is returned when the DNS collaborator fails.
	ErrResolveFailed = &Error{Kind: ResolvedFailed, Cause: errors.New("name resolution failed")}
	// ErrReunite is returned when reunite is called on mismatched halves.
	ErrReunite = &Error{Kind: ReuniteError, Cause: errors.New("halves do not share an origin")}
)
