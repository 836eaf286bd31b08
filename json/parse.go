// Copyright 2024 The foundation-lib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"github.com/haifenghuang/foundation-lib/internal/jsonwire"
)

// parser holds the state of a single parse: the input buffer, the
// caller's token array, the next token index to assign, the current
// recursion depth, and the permissiveness mode. It is a pure function of
// its inputs; nothing survives across invocations.
//
// The value, object, and array parsers are mutually recursive and each
// returns the position just past what it consumed. Failure at any depth
// aborts immediately through every enclosing call; the token array's
// contents past the failure point are then undefined.
type parser struct {
	buf     []byte
	tokens  []Token
	current int
	depth   int
	simple  bool
}

// token returns the addressable token at index i, or nil when i lies
// beyond the array. Writes through a nil result are silently dropped,
// which is what keeps capacity overflow from being an error: the logical
// index keeps advancing while out-of-range slots are left untouched.
func (p *parser) token(i int) *Token {
	if i < len(p.tokens) {
		return &p.tokens[i]
	}
	return nil
}

// valid reports whether the token at index i has been written.
// Indices beyond the array cannot be inspected and are assumed written.
func (p *parser) valid(i int) bool {
	if t := p.token(i); t != nil {
		return t.Kind != Undefined
	}
	return true
}

func (p *parser) setPrimitive(i int, kind Kind, offset, length int) {
	if t := p.token(i); t != nil {
		t.Kind = kind
		t.Child = 0
		t.Sibling = 0
		t.Value = Span{Offset: offset, Length: length}
	}
}

// setComplex writes an Object or Array token. A complex token's first
// child is emitted immediately after it, so Child is fixed to the next
// index here; whether a child was actually produced is visible from the
// final count.
func (p *parser) setComplex(i int, kind Kind) {
	if t := p.token(i); t != nil {
		t.Kind = kind
		t.Child = i + 1
		t.Sibling = 0
		t.Value = Span{}
	}
}

func (p *parser) setKey(i, offset, length int) {
	if t := p.token(i); t != nil {
		t.Key = Span{Offset: offset, Length: length}
	}
}

// link records that the token at index i is followed at the same nesting
// level by the token about to be produced.
func (p *parser) link(i int) {
	if t := p.token(i); t != nil {
		t.Sibling = p.current
	}
}

func (p *parser) skipWhitespace(pos int) int {
	return pos + jsonwire.ConsumeWhitespace(p.buf[pos:])
}

func (p *parser) finish() (int, error) {
	if p.current > len(p.tokens) {
		return p.current, ErrTruncated
	}
	return p.current, nil
}

// parseValue dispatches on the next significant character and consumes
// one complete value, writing its token at the current index.
func (p *parser) parseValue(pos int) (int, error) {
	pos = p.skipWhitespace(pos)
	if pos == len(p.buf) {
		return 0, ErrSyntax
	}
	c := p.buf[pos]
	pos++
	switch {
	case c == '{':
		p.setComplex(p.current, Object)
		p.current++
		return p.parseObject(pos)

	case c == '[':
		p.setComplex(p.current, Array)
		p.current++
		return p.parseArray(pos)

	case c == '-' || c == '.' || ('0' <= c && c <= '9'):
		n, ok := jsonwire.ConsumeNumber(p.buf[pos-1:])
		if !ok {
			return 0, ErrSyntax
		}
		p.setPrimitive(p.current, Primitive, pos-1, n)
		p.current++
		return pos - 1 + n, nil

	case c == 't' || c == 'f':
		lit := "true"
		if c == 'f' {
			lit = "false"
		}
		if n, ok := jsonwire.ConsumeLiteral(p.buf[pos:], lit); ok {
			p.setPrimitive(p.current, Primitive, pos-1, n+1)
			p.current++
			return pos + n, nil
		}
		if !p.simple {
			return 0, ErrSyntax
		}
		// An unquoted token that merely begins with 't' or 'f'.
		fallthrough

	default:
		if c != '"' {
			if !p.simple {
				return 0, ErrSyntax
			}
			pos--
		}
		n, ok := jsonwire.ConsumeString(p.buf[pos:], p.simple)
		if !ok {
			return 0, ErrSyntax
		}
		p.setPrimitive(p.current, String, pos, n)
		p.current++
		// Skip the terminating '"' (optional for simplified).
		if !p.simple || (pos+n < len(p.buf) && p.buf[pos+n] == '"') {
			n++
		}
		return pos + n, nil
	}
}

// parseObject consumes "name separator value" members until the closing
// '}'. In simplified mode the separator may be '=', members need not be
// comma-separated (any character other than ',' or '}' after a value
// ends that member and auto-links siblings), and the object may also end
// at the end of the buffer, which is what allows a brace-less top-level
// listing.
func (p *parser) parseObject(pos int) (int, error) {
	if p.depth++; p.depth > MaxDepth {
		return 0, ErrDepth
	}
	defer func() { p.depth-- }()

	last := 0 // index of the member awaiting its sibling link; 0 is none
	pos = p.skipWhitespace(pos)
	for pos < len(p.buf) {
		c := p.buf[pos]
		pos++

		switch c {
		case '}':
			if last != 0 && !p.valid(last) {
				return 0, ErrSyntax
			}
			return pos, nil

		case ',':
			if last == 0 || !p.valid(last) {
				return 0, ErrSyntax
			}
			p.link(last)
			last = 0
			pos = p.skipWhitespace(pos)

		default:
			if last != 0 {
				return 0, ErrSyntax
			}
			if c != '"' {
				if !p.simple {
					return 0, ErrSyntax
				}
				pos--
			}

			n, ok := jsonwire.ConsumeString(p.buf[pos:], p.simple)
			if !ok {
				return 0, ErrSyntax
			}

			last = p.current
			p.setKey(p.current, pos, n)
			// Skip the terminating '"' (optional for simplified).
			if !p.simple || (pos+n < len(p.buf) && p.buf[pos+n] == '"') {
				n++
			}
			pos += n

			pos = p.skipWhitespace(pos)
			if pos == len(p.buf) || (p.buf[pos] != ':' && (!p.simple || p.buf[pos] != '=')) {
				return 0, ErrSyntax
			}
			var err error
			if pos, err = p.parseValue(pos + 1); err != nil {
				return 0, err
			}
			pos = p.skipWhitespace(pos)
			if p.simple && pos < len(p.buf) && p.buf[pos] != ',' && p.buf[pos] != '}' {
				p.link(last)
				last = 0
			}
		}
	}

	if p.simple {
		return pos, nil
	}
	return 0, ErrSyntax
}

// parseArray consumes values until the closing ']'. Arrays are
// bracket-delimited in both grammars; the only simplified-mode leniency
// is a consequence of the loop structure, which lets elements be
// separated by whitespace alone.
func (p *parser) parseArray(pos int) (int, error) {
	if p.depth++; p.depth > MaxDepth {
		return 0, ErrDepth
	}
	defer func() { p.depth-- }()

	pos = p.skipWhitespace(pos)
	if pos < len(p.buf) && p.buf[pos] == ']' {
		pos++
		return p.skipWhitespace(pos), nil
	}

	last := 0 // index of the previous element; 0 is none
	for pos < len(p.buf) {
		now := p.current
		p.setKey(now, 0, 0)
		var err error
		if pos, err = p.parseValue(pos); err != nil {
			return 0, err
		}
		// The sibling link targets now, not current: parseValue may have
		// produced an entire subtree and advanced current past it.
		if t := p.token(last); last != 0 && t != nil {
			t.Sibling = now
		}
		last = now
		pos = p.skipWhitespace(pos)
		switch {
		case pos < len(p.buf) && p.buf[pos] == ',':
			pos++
		case pos < len(p.buf) && p.buf[pos] == ']':
			return pos + 1, nil
		case !p.simple:
			return 0, ErrSyntax
		}
	}

	return 0, ErrSyntax
}
