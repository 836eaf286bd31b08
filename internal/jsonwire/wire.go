// Copyright 2024 The foundation-lib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements stateless functionality for processing
// the raw bytes of JSON and simplified-JSON text.
//
// Every scanner operates on a byte slice starting at the position of
// interest and reports how many bytes it consumed. None of them allocate
// and none of them interpret the bytes they scan; interpretation belongs
// to callers holding the original buffer.
package jsonwire

// ConsumeWhitespace consumes leading JSON whitespace per RFC 8259, section 2.
func ConsumeWhitespace(b []byte) (n int) {
	// NOTE: The arguments and logic are kept simple to keep this inlinable.
	for len(b) > n && (b[n] == ' ' || b[n] == '\t' || b[n] == '\r' || b[n] == '\n') {
		n++
	}
	return n
}

// IsDelimiter reports whether c may legally follow an unquoted scalar:
// whitespace, ']', '}', or ','.
func IsDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ']', '}', ',':
		return true
	}
	return false
}

// isHexDigit reports whether c is from the set of 0-9, a-f, or A-F.
func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ConsumeString consumes the content of a string starting at b[0] and
// reports the content length in bytes. The surrounding quotes, if any,
// are not part of b's prefix nor of the reported length.
//
// In strict mode (simple is false) the content must be terminated by an
// unescaped '"' before the end of b, and every backslash escape must be
// from the recognized set: the single-character escapes ", /, \, b, f, r,
// n, t, or a \uXXXX sequence with exactly four hex digits. The escaped
// character itself is validated but not consumed; the next iteration
// re-examines it as ordinary content. An unterminated string or an
// unrecognized escape reports ok as false.
//
// In simplified mode (simple is true) the scan additionally terminates at
// any delimiter, '=', or ':', which supports unquoted strings, and a
// string running to the end of b reports the distance scanned rather
// than failing. Escape validation is unchanged.
func ConsumeString(b []byte, simple bool) (n int, ok bool) {
	for n < len(b) {
		c := b[n]
		if simple && (IsDelimiter(c) || c == '=' || c == ':') {
			return n, true
		}
		if c == '"' {
			return n, true
		}
		n++
		if c == '\\' && n < len(b) {
			switch b[n] {
			case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
				// Escaped symbol \X; re-scanned as ordinary content.
			case 'u':
				// Escaped symbol \uXXXX.
				for esc := 0; esc < 4; esc++ {
					n++
					if n >= len(b) || !isHexDigit(b[n]) {
						return 0, false
					}
				}
			default:
				return 0, false
			}
		}
	}
	if simple {
		return n, true
	}
	return 0, false
}

// ConsumeNumber consumes a number starting at b[0] and reports its length
// in bytes. The scan stops at the first delimiter or at the end of b.
//
// A leading '-' is accepted, at most one '.', and at most one exponent
// marker 'e' or 'E' which must be preceded by at least one digit and may
// be immediately followed by a single '+' or '-'. A '-' anywhere but the
// leading position, or any other non-digit character, reports ok as false.
//
// The exponent marker is not required to be followed by a digit, so "1e"
// is accepted. Callers depend on spans being cut exactly here, so the
// scan must not be made stricter.
func ConsumeNumber(b []byte) (n int, ok bool) {
	var hasDot, hasDigit, hasExp bool
	for n < len(b) {
		c := b[n]
		switch {
		case IsDelimiter(c):
			return n, true
		case c == '-':
			if n != 0 {
				return 0, false
			}
		case c == '.':
			if hasDot || hasExp {
				return 0, false
			}
			hasDot = true
		case c == 'e' || c == 'E':
			if !hasDigit || hasExp {
				return 0, false
			}
			hasExp = true
			if n+1 < len(b) && (b[n+1] == '+' || b[n+1] == '-') {
				n++
			}
		case c < '0' || c > '9':
			return 0, false
		default:
			hasDigit = true
		}
		n++
	}
	return n, true
}

// ConsumeLiteral consumes the remainder of the literal lit (with its first
// character already consumed by the caller) starting at b[0] and reports
// whether b begins with that remainder followed by a delimiter or the end
// of b. On success n is the length of the remainder.
func ConsumeLiteral(b []byte, lit string) (n int, ok bool) {
	rest := lit[1:]
	if len(b) < len(rest) {
		return 0, false
	}
	for i := 0; i < len(rest); i++ {
		if b[i] != rest[i] {
			return 0, false
		}
	}
	if len(b) > len(rest) && !IsDelimiter(b[len(rest)]) {
		return 0, false
	}
	return len(rest), true
}
