// Copyright 2024 The foundation-lib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package json implements a zero-copy tokenizer for JSON and for a
// simplified variant of JSON.
//
// The tokenizer consumes a byte buffer and fills a flat, caller-allocated
// array of tokens describing the shape of the value tree and the byte
// spans of each leaf's textual content. It allocates nothing, copies
// nothing, and interprets nothing: numbers and the literals true and
// false are recognized but not converted, strings are located but not
// unescaped. Converting spans into typed values is the caller's concern.
//
// # Grammars
//
// [Parse] accepts standard JSON syntax: quoted keys, ':' separators and
// explicit braces and brackets. [ParseSimplified] accepts a relaxed
// dialect in which keys and string values may be unquoted, '=' may be
// used in place of ':', and the top-level braces may be omitted, so that
//
//	key = value
//	other = [ 1 2 3 ]
//
// parses as an object with two members. Arrays remain bracket-delimited
// in both grammars.
//
// # Token capacity
//
// The token array never grows. When a parse produces more tokens than
// the array holds, the parse still succeeds: excess tokens are counted
// but not stored, and the entry point reports the full logical count
// alongside [ErrTruncated]. Passing a nil array is therefore a cheap way
// to measure the exact capacity an input needs:
//
//	n, err := json.Parse(buf, nil)
//	if errors.Is(err, json.ErrTruncated) {
//		tokens := make([]json.Token, n)
//		n, err = json.Parse(buf, tokens)
//	}
package json

import (
	"github.com/haifenghuang/foundation-lib/internal/jsonwire"
)

// MaxDepth is the maximum nesting depth of objects and arrays that a
// parse will follow before failing with ErrDepth. Recursion depth tracks
// input nesting depth exactly, so the ceiling bounds stack growth on
// pathological input.
const MaxDepth = 512

// Parse tokenizes buf as a single strict-grammar JSON value into tokens.
//
// On success it returns the number of tokens the input produced, which
// is at least 1; token 0 describes the outermost value. If the count
// exceeds len(tokens), the error is ErrTruncated and only the first
// len(tokens) slots hold valid data. On a syntax error the count is 0
// and the contents of tokens are undefined.
//
// Input after the first complete value is not examined.
//
// The tokens reference buf and remain meaningful only while buf is valid
// and unmodified.
func Parse(buf []byte, tokens []Token) (int, error) {
	p := parser{buf: buf, tokens: tokens}
	if len(tokens) > 0 {
		tokens[0] = Token{}
	}
	if _, err := p.parseValue(0); err != nil {
		return 0, err
	}
	return p.finish()
}

// ParseSimplified tokenizes buf under the simplified grammar.
//
// If the first significant character is not '{', a root Object token is
// synthesized in slot 0 and the entire input is parsed as that object's
// body, which is how a bare top-level "key = value" listing becomes a
// tree. Otherwise the input is parsed as an ordinary value with the
// simplified grammar's leniency rules.
//
// The count and error conventions match Parse.
func ParseSimplified(buf []byte, tokens []Token) (int, error) {
	p := parser{buf: buf, tokens: tokens, simple: true}
	if len(tokens) > 0 {
		tokens[0] = Token{}
	}
	pos := jsonwire.ConsumeWhitespace(buf)
	if pos < len(buf) && buf[pos] != '{' {
		p.setComplex(0, Object)
		p.current = 1
		if _, err := p.parseObject(pos); err != nil {
			return 0, err
		}
		return p.finish()
	}
	if _, err := p.parseValue(pos); err != nil {
		return 0, err
	}
	return p.finish()
}
