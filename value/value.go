// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the run-time values of jot: shaped integer
// arrays, the verbs that operate on them, and the resolved expression
// tree that applies the verbs.
package value // import "github.com/jotlang/jot/value"

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies an evaluation error.
type ErrorKind int

const (
	ShapeMismatch ErrorKind = iota + 1
	InvalidShape
	IndexOutOfRange
	InvalidArgument
	RecursionLimitExceeded
	SizeLimitExceeded
)

var kindNames = map[ErrorKind]string{
	ShapeMismatch:          "shape mismatch",
	InvalidShape:           "invalid shape",
	IndexOutOfRange:        "index out of range",
	InvalidArgument:        "invalid argument",
	RecursionLimitExceeded: "recursion limit exceeded",
	SizeLimitExceeded:      "size limit exceeded",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error returned when evaluation fails.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (err *Error) Error() string {
	return err.Kind.String() + ": " + err.Msg
}

// Errorf returns an *Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err, or an error it wraps, is an *Error
// of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
