// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package escape converts between raw strings and their JSON encodings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var shortEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

const hexDigit = "0123456789abcdef"

func pickEsc(r rune) byte {
	if int(r) < len(shortEsc) {
		return shortEsc[r]
	}
	return 0
}

// AppendQuote appends the JSON encoding of src to dst, including the
// enclosing double quotation marks, and returns the updated slice.
func AppendQuote(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if e := pickEsc(r); e != 0 {
				dst = append(dst, '\\', e)
			} else if r < ' ' {
				dst = append(dst, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			} else {
				dst = append(dst, byte(r))
			}
		} else {
			var rbuf [utf8.UTFMax]byte
			nb := utf8.EncodeRune(rbuf[:], r)
			dst = append(dst, rbuf[:nb]...)
		}
		src = src.SliceFrom(n)
	}
	return append(dst, '"')
}

// Unquote decodes a JSON string body whose enclosing quotation marks have
// already been removed. Escape sequences are replaced with their unescaped
// equivalents, and surrogate pairs expressed as consecutive \u escapes are
// combined. An unpaired surrogate half or an invalid escape decodes to the
// Unicode replacement rune. Unquote reports an error for a truncated escape
// sequence.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}

	dec := make([]byte, 0, src.Len())
	putRune := func(r rune) {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			v, rest, err := readHexRune(src)
			if err != nil {
				return nil, err
			}
			src = rest
			if utf16.IsSurrogate(v) {
				// A high surrogate must be completed by a \u-escaped low
				// surrogate; anything else collapses to a replacement rune.
				if hi, lo, rest, ok := readLowSurrogate(v, src); ok {
					putRune(utf16.DecodeRune(hi, lo))
					src = rest
				} else {
					putRune(utf8.RuneError)
				}
			} else {
				putRune(v)
			}
		default:
			putRune(utf8.RuneError)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// readHexRune decodes a four-digit hex escape body from the front of src.
func readHexRune(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := src.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, src, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, src.SliceFrom(4), nil
}

// readLowSurrogate reports whether src begins with a \u escape completing the
// surrogate pair started by hi, and if so returns both halves and the rest of
// the input after the escape.
func readLowSurrogate(hi rune, src mem.RO) (rune, rune, mem.RO, bool) {
	if !utf16.IsSurrogate(hi) || src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, 0, src, false
	}
	lo, rest, err := readHexRune(src.SliceFrom(2))
	if err != nil || utf16.DecodeRune(hi, lo) == utf8.RuneError {
		return 0, 0, src, false
	}
	return hi, lo, rest, true
}
