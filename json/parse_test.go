// Copyright 2024 The foundation-lib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	// Each want is the exact content of the token array after a
	// successful parse; the spans are byte offsets into in.
	tests := []struct {
		name string
		in   string
		want []Token
	}{{
		name: "EmptyObject",
		in:   `{}`,
		want: []Token{
			{Kind: Object, Child: 1},
		},
	}, {
		name: "EmptyArray",
		in:   `[]`,
		want: []Token{
			{Kind: Array, Child: 1},
		},
	}, {
		name: "ObjectOneMember",
		in:   `{"a":1}`,
		want: []Token{
			{Kind: Object, Child: 1},
			{Kind: Primitive, Key: Span{2, 1}, Value: Span{5, 1}},
		},
	}, {
		name: "String",
		in:   `"hello"`,
		want: []Token{
			{Kind: String, Value: Span{1, 5}},
		},
	}, {
		name: "True",
		in:   `true`,
		want: []Token{
			{Kind: Primitive, Value: Span{0, 4}},
		},
	}, {
		name: "False",
		in:   `false`,
		want: []Token{
			{Kind: Primitive, Value: Span{0, 5}},
		},
	}, {
		name: "Number",
		in:   `-0.5e-3`,
		want: []Token{
			{Kind: Primitive, Value: Span{0, 7}},
		},
	}, {
		name: "NumberBareExponent",
		// The number scan does not require a digit after the exponent
		// marker, so "1e" is accepted whole.
		in: `1e`,
		want: []Token{
			{Kind: Primitive, Value: Span{0, 2}},
		},
	}, {
		name: "ArrayElements",
		in:   `[1, 2]`,
		want: []Token{
			{Kind: Array, Child: 1},
			{Kind: Primitive, Value: Span{1, 1}, Sibling: 2},
			{Kind: Primitive, Value: Span{4, 1}},
		},
	}, {
		name: "Composite",
		in:   `{"a":1,"b":[true,"x"],"c":{}}`,
		want: []Token{
			{Kind: Object, Child: 1},
			{Kind: Primitive, Key: Span{2, 1}, Value: Span{5, 1}, Sibling: 2},
			{Kind: Array, Key: Span{8, 1}, Child: 3, Sibling: 5},
			{Kind: Primitive, Value: Span{12, 4}, Sibling: 4},
			{Kind: String, Value: Span{18, 1}},
			{Kind: Object, Key: Span{23, 1}, Child: 6},
		},
	}, {
		name: "LeadingWhitespace",
		in:   " \t\r\n[]",
		want: []Token{
			{Kind: Array, Child: 1},
		},
	}, {
		name: "TrailingCommaBeforeBrace",
		// A comma directly before '}' is tolerated; the last member's
		// sibling link is left pointing at the next unused index, which
		// is at or past the returned count and therefore reads as
		// "no sibling" to any traversal bounded by the count.
		in: `{"a":1,}`,
		want: []Token{
			{Kind: Object, Child: 1},
			{Kind: Primitive, Key: Span{2, 1}, Value: Span{5, 1}, Sibling: 2},
		},
	}, {
		name: "InputAfterValueIgnored",
		in:   `{} trailing garbage`,
		want: []Token{
			{Kind: Object, Child: 1},
		},
	}, {
		name: "EscapedQuoteEndsScan",
		// The string scan validates escapes without consuming the
		// escaped character, so an escaped '"' terminates the scan at
		// that quote and the remainder of the input is never reached.
		in: `"a\"b"`,
		want: []Token{
			{Kind: String, Value: Span{1, 2}},
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := make([]Token, 16)
			n, err := Parse([]byte(tt.in), tokens)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if n != len(tt.want) {
				t.Fatalf("Parse(%q) count = %d, want %d", tt.in, n, len(tt.want))
			}
			if diff := cmp.Diff(tt.want, tokens[:n]); diff != "" {
				t.Errorf("Parse(%q) tokens mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"Empty", ``},
		{"OnlyWhitespace", "  \t\n"},
		{"Garbage", `x`},
		{"NullUnsupported", `null`},
		{"TruePrefix", `truex`},
		{"FalsePrefix", `falsey`},
		{"TrueUnquoted", `tree`},
		{"UnclosedObject", `{`},
		{"UnclosedObjectMember", `{"a":1`},
		{"UnclosedArray", `[1`},
		{"UnclosedString", `"abc`},
		{"MissingSeparator", `{"a" 1}`},
		{"EqualsSeparator", `{"a"=1}`},
		{"UnquotedKey", `{a:1}`},
		{"MissingValue", `{"a":}`},
		{"LeadingComma", `{,}`},
		{"DoubleComma", `{"a":1,,}`},
		{"MembersWithoutComma", `{"a":1 "b":2}`},
		{"ArrayTrailingComma", `[1,]`},
		{"ArrayMissingComma", `[1 2]`},
		{"BadEscape", `"a\xb"`},
		{"BadUnicodeEscape", `"a\u12g4"`},
		{"ShortUnicodeEscape", `"a\u12"`},
		{"DoubleMinus", `--1`},
		{"MinusInside", `1-2`},
		{"DoubleDot", `1.2.3`},
		{"DoubleExponent", `1e5e2`},
		{"EscapedQuoteInMemberValue", `{"a":"x\"y"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := make([]Token, 16)
			n, err := Parse([]byte(tt.in), tokens)
			if err == nil {
				t.Fatalf("Parse(%q) = %d, want error", tt.in, n)
			}
			if n != 0 {
				t.Errorf("Parse(%q) count = %d, want 0 on failure", tt.in, n)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error = %v, want ErrSyntax", tt.in, err)
			}
		})
	}
}

func TestParseSpanFidelity(t *testing.T) {
	// Every span must reference the verbatim bytes of the input.
	in := []byte(`{"name":"foundation","version":-2.5,"tags":[true,false,"a\nb"]}`)
	tokens := make([]Token, 16)
	n, err := Parse(in, tokens)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	wantKeys := map[int]string{1: "name", 2: "version", 3: "tags"}
	wantValues := map[int]string{
		1: "foundation",
		2: "-2.5",
		4: "true",
		5: "false",
		6: `a\nb`, // raw span; the escape is not decoded
	}
	for i, want := range wantKeys {
		if got := string(tokens[i].Key.Bytes(in)); got != want {
			t.Errorf("token %d key = %q, want %q", i, got, want)
		}
	}
	for i, want := range wantValues {
		if got := string(tokens[i].Value.Bytes(in)); got != want {
			t.Errorf("token %d value = %q, want %q", i, got, want)
		}
	}
	if n != 7 {
		t.Errorf("count = %d, want 7", n)
	}
}

func TestParseDepth(t *testing.T) {
	atLimit := strings.Repeat("[", MaxDepth) + strings.Repeat("]", MaxDepth)
	n, err := Parse([]byte(atLimit), nil)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("Parse(depth=%d) error = %v, want ErrTruncated", MaxDepth, err)
	}
	if n != MaxDepth {
		t.Errorf("Parse(depth=%d) count = %d, want %d", MaxDepth, n, MaxDepth)
	}

	pastLimit := strings.Repeat("[", MaxDepth+1) + strings.Repeat("]", MaxDepth+1)
	if _, err := Parse([]byte(pastLimit), nil); !errors.Is(err, ErrDepth) {
		t.Fatalf("Parse(depth=%d) error = %v, want ErrDepth", MaxDepth+1, err)
	}

	// An unclosed run of open brackets must fail one way or the other
	// without exhausting the call stack.
	if _, err := Parse([]byte(strings.Repeat("[", 1<<20)), nil); err == nil {
		t.Fatal("Parse(unclosed brackets) succeeded, want error")
	}
}
