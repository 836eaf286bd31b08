// Copyright 2024 The foundation-lib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import "errors"

const errorPrefix = "json: "

// SyntacticError is a description of a syntax error in the input.
//
// This package reports no position, reason code, or partial tree for a
// syntax error; every malformed escape, malformed number, missing
// separator, unterminated string, object, or array, and unexpected
// character collapses to the same outcome.
type SyntacticError struct {
	str string
}

func (e *SyntacticError) Error() string { return errorPrefix + e.str }

var (
	// ErrSyntax is reported for any malformed input.
	ErrSyntax = &SyntacticError{str: "invalid syntax"}

	// ErrDepth is reported when the input nests objects and arrays more
	// than MaxDepth levels deep.
	ErrDepth = &SyntacticError{str: "exceeded max nesting depth"}

	// ErrTruncated is reported when a parse succeeded but produced more
	// tokens than the supplied array holds. The count returned alongside
	// it is the capacity required to hold every token; slots within the
	// supplied array hold valid data.
	ErrTruncated = errors.New(errorPrefix + "too many tokens for array")
)
