/*
Package ident implements the lexical primitives every higher-level
component in this module builds on: the YANG identifier grammar, schema
nodeid splitting, revision-date validation, and statement-keyword
recognition. None of these functions allocate beyond the returned
strings themselves: they all operate by advancing a cursor through the
input and slicing it.
*/
package ident

import "github.com/logbob0401/libyang/yerr"

// IsIdentStart reports whether b can start a YANG identifier:
// ALPHA or '_'.
func IsIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

// IsIdentChar reports whether b can continue a YANG identifier, beyond
// the first character: ALPHA, DIGIT, '_', '-', or '.'.
func IsIdentChar(b byte) bool {
	return IsIdentStart(b) || (b >= '0' && b <= '9') || b == '-' || b == '.'
}

// ParseIdentifier consumes the longest identifier-shaped prefix of s
// starting at offset start, returning the identifier and the offset of
// the first byte following it.
//
// Fails with yerr.InvalidInput if s[start] is not an identifier-start
// character; on failure the returned offset equals start, so rejected
// input never advances the cursor.
func ParseIdentifier(s string, start int) (ident string, end int, err error) {
	if start >= len(s) || !IsIdentStart(s[start]) {
		return "", start, yerr.InvalidInputf(
			yerr.WithMessage("invalid start character for identifier"))
	}
	end = start + 1
	for end < len(s) && IsIdentChar(s[end]) {
		end++
	}
	return s[start:end], end, nil
}

// SplitNodeID consumes one schema-nodeid segment ([prefix ":"] name)
// from s starting at offset start, returning the optional prefix, the
// name, and the offset following the consumed segment.
//
// If the character following the first identifier is ':', that
// identifier is the prefix and a second identifier must follow as the
// name; otherwise the first identifier is the name and prefix is "".
func SplitNodeID(s string, start int) (prefix, name string, end int, err error) {
	first, afterFirst, err := ParseIdentifier(s, start)
	if err != nil {
		return "", "", start, err
	}
	if afterFirst < len(s) && s[afterFirst] == ':' {
		second, afterSecond, err := ParseIdentifier(s, afterFirst+1)
		if err != nil {
			return "", "", start, err
		}
		return first, second, afterSecond, nil
	}
	return "", first, afterFirst, nil
}
