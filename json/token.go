// Copyright 2024 The foundation-lib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

// Kind represents the kind of a parsed token.
type Kind byte

const (
	// Undefined marks an unwritten token slot. It only ever appears in
	// slot 0 between the start of a parse and the first token write.
	Undefined Kind = iota
	// Object is a JSON object. Its content is represented structurally
	// through Child and Sibling indices, not through a value span.
	Object
	// Array is a JSON array, represented structurally like Object.
	Array
	// Primitive is a number or one of the literals true and false.
	Primitive
	// String is a string value. The value span excludes the surrounding
	// quotes and is the raw content: escape sequences are not decoded.
	String
)

// String prints the kind in a humanly readable fashion.
func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Object:
		return "object"
	case Array:
		return "array"
	case Primitive:
		return "primitive"
	case String:
		return "string"
	}
	return "<invalid json.Kind>"
}

// Span identifies a contiguous byte range within the input buffer.
// The zero Span means "no text": array elements and the root have a zero
// key span, and complex tokens have a zero value span.
type Span struct {
	Offset int
	Length int
}

// Bytes returns the bytes the span identifies within buf, aliasing buf
// rather than copying. The buf provided must be the buffer the span was
// produced from.
func (s Span) Bytes(buf []byte) []byte {
	return buf[s.Offset : s.Offset+s.Length]
}

// IsZero reports whether the span identifies no text.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Token is one node of a parsed value tree. It references spans of the
// original input buffer and never owns a copy, so the buffer must remain
// valid and unmodified for as long as the token is read.
//
// Tokens live in a flat, caller-allocated array. Tree shape is recovered
// purely from the Child and Sibling indices starting at the root in
// slot 0. Since every child and sibling index is strictly greater than
// its parent's index and the root never appears as a child or sibling,
// a zero Child or Sibling on a non-root token means "none". The Child of
// an Object or Array token is fixed at creation to the next unused index;
// a childless complex token is therefore recognized by its Child being
// greater than or equal to the parse's token count.
type Token struct {
	// Kind is the token kind.
	Kind Kind
	// Key identifies the token's name when it is an object member,
	// and is zero for array elements and the root.
	Key Span
	// Value identifies the token's literal text when Kind is Primitive
	// or String, and is zero for Object and Array.
	Value Span
	// Child is the index of the token's first child.
	Child int
	// Sibling is the index of the next token at the same nesting level.
	Sibling int
}
