// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package sjis implements byte-level Shift-JIS classification and
// SJIS<->UTF-8 conversion for the payloads carried by System4 strings,
// filenames, and archive entry names.
package sjis

import (
	"golang.org/x/text/encoding/japanese"
)

// IsLeadByte reports whether b can only appear as the first byte of a
// two-byte Shift-JIS sequence.
func IsLeadByte(b byte) bool {
	return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
}

// CharLen returns the byte length (1 or 2) of the character starting at
// s[i], without bounds-checking the second byte.
func CharLen(s []byte, i int) int {
	if i < len(s) && IsLeadByte(s[i]) {
		return 2
	}
	return 1
}

// Index converts a character index into a byte index, walking two-byte
// sequences atomically. It returns -1 if index runs past the end of s or
// lands on a truncated trailing lead byte.
func Index(s []byte, index int) int {
	i, c := 0, 0
	for c < index && i < len(s) {
		if IsLeadByte(s[i]) {
			i++
			if i >= len(s) {
				return -1
			}
		}
		i++
		c++
	}
	if i >= len(s) {
		return -1
	}
	return i
}

// ToUTF8 decodes a Shift-JIS byte string to UTF-8.
func ToUTF8(sjis []byte) (string, error) {
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(sjis)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// FromUTF8 encodes a UTF-8 string to Shift-JIS bytes.
func FromUTF8(s string) ([]byte, error) {
	return japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
}

// Basename strips the file extension (the final '.' and everything after
// it, provided the '.' is not itself part of a two-byte lead sequence)
// and case-folds the ASCII portion, matching the case-insensitive name
// comparisons archive backends use for exists_by_basename lookups.
func Basename(name []byte) []byte {
	ext := -1
	for i := 0; i < len(name); {
		if IsLeadByte(name[i]) {
			i += 2
			continue
		}
		if name[i] == '.' {
			ext = i
		}
		i++
	}
	base := name
	if ext >= 0 {
		base = name[:ext]
	}
	return FoldASCII(base)
}

// FoldASCII lower-cases the ASCII runs of s in place on a fresh copy,
// leaving SJIS double-byte sequences untouched (an ASCII-unsafe case fold
// would corrupt a trail byte that happens to fall in 'A'-'Z').
func FoldASCII(s []byte) []byte {
	out := make([]byte, len(s))
	for i := 0; i < len(s); {
		if IsLeadByte(s[i]) && i+1 < len(s) {
			out[i] = s[i]
			out[i+1] = s[i+1]
			i += 2
			continue
		}
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
		i++
	}
	return out
}

// EqualBasename reports whether two names refer to the same entry under
// basename comparison rules.
func EqualBasename(a, b []byte) bool {
	fa, fb := Basename(a), Basename(b)
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i] != fb[i] {
			return false
		}
	}
	return true
}
