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

// Package bstring implements the copy-on-write, reference-counted
// Shift-JIS byte string used throughout System4 formats (ain strings,
// messages, save-file strings). Byte length, not rune count, is the unit
// of truth; a two-byte SJIS sequence is always treated atomically by the
// character-oriented operations.
package bstring

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/nunuhara/system4/sjis"
)

// shared backs the payload of one or more String values. It is never
// mutated once more than one String references it; String.mutate clones
// it first (copy-on-write).
type shared struct {
	refs atomic.Int32
	text []byte
}

// empty is the sentinel shared across the process for the empty string,
// matching libsys4's EMPTY_STRING.
var empty = &shared{text: nil}

func init() {
	empty.refs.Store(1 << 30) // never reaches zero; shared forever
}

// String is a reference-counted, copy-on-write Shift-JIS byte string.
// The zero value is not valid; use Empty() or New().
type String struct {
	s *shared
}

// Empty returns the shared empty string.
func Empty() String {
	empty.refs.Add(1)
	return String{s: empty}
}

// New makes a String owning a copy of b.
func New(b []byte) String {
	cp := make([]byte, len(b))
	copy(cp, b)
	sh := &shared{text: cp}
	sh.refs.Store(1)
	return String{s: sh}
}

// FromInt formats n as a decimal string, optionally converting ASCII
// digits and sign to their full-width Shift-JIS counterparts (zenkaku).
func FromInt(n int, zenkaku bool) String {
	s := strconv.Itoa(n)
	if !zenkaku {
		return New([]byte(s))
	}
	return New(han2zenNumber([]byte(s)))
}

// FromFloat formats f with the given decimal precision, optionally
// converting to zenkaku digits the same way FromInt does.
func FromFloat(f float32, precision int, zenkaku bool) String {
	s := strconv.FormatFloat(float64(f), 'f', precision, 32)
	if !zenkaku {
		return New([]byte(s))
	}
	// System4.0 appends a stray full-width 'F' after converting a
	// float to zenkaku; preserved here for byte-exact behavior.
	out := han2zenNumber([]byte(s))
	out = append(out, 'F')
	return New(out)
}

func han2zenNumber(buf []byte) []byte {
	out := make([]byte, 0, len(buf)*2)
	for _, c := range buf {
		switch {
		case c >= '0' && c <= '9':
			out = append(out, 0x82, 0x4f+(c-'0'))
		case c == '-':
			out = append(out, 0x81, 0x7c)
		case c == '.':
			out = append(out, 0x81, 0x44)
		case c == ' ':
			out = append(out, 0x81, 0x40)
		default:
			out = append(out, c)
		}
	}
	return out
}

// Ref returns a new handle sharing the same backing bytes, incrementing
// the reference count. The original and the returned handle are
// independent copy-on-write views: mutating one clones first if the
// refcount is still >1.
func (s String) Ref() String {
	s.s.refs.Add(1)
	return s
}

// Release decrements the refcount, freeing the backing array once it
// reaches zero. The empty sentinel is never freed.
func (s String) Release() {
	if s.s == empty {
		return
	}
	s.s.refs.Add(-1)
}

// Bytes returns the raw Shift-JIS payload. The caller must not mutate it.
func (s String) Bytes() []byte { return s.s.text }

// Size returns the byte length (not character count).
func (s String) Size() int { return len(s.s.text) }

// String implements fmt.Stringer by decoding to UTF-8 for display;
// malformed SJIS falls back to a lossy escape.
func (s String) String() string {
	u, err := sjis.ToUTF8(s.s.text)
	if err != nil {
		return fmt.Sprintf("%q(sjis)", s.s.text)
	}
	return u
}

// mutate makes s own its backing array exclusively, cloning first if
// the array is currently shared.
func (s *String) mutate() {
	if s.s == empty {
		s.s = &shared{text: nil}
		s.s.refs.Store(1)
		return
	}
	if s.s.refs.Load() > 1 {
		cp := make([]byte, len(s.s.text))
		copy(cp, s.s.text)
		s.s.refs.Add(-1)
		ns := &shared{text: cp}
		ns.refs.Store(1)
		s.s = ns
	}
}

// PushBack appends one SJIS character (one or two bytes, little-endian
// packed the way libsys4 packs string_push_back's int argument).
func (s *String) PushBack(c int) {
	s.mutate()
	if sjis.IsLeadByte(byte(c & 0xFF)) {
		s.s.text = append(s.s.text, byte(c&0xFF), byte(c>>8))
	} else {
		s.s.text = append(s.s.text, byte(c&0xFF))
	}
}

// PopBack removes the last character (one or two bytes).
func (s *String) PopBack() {
	s.mutate()
	t := s.s.text
	cut := 0
	for i := 0; i < len(t); {
		cut = i
		if sjis.IsLeadByte(t[i]) {
			i += 2
		} else {
			i++
		}
	}
	s.s.text = t[:cut]
}

// Erase removes the character at character-index index.
func (s *String) Erase(index int) {
	if index < 0 {
		index = 0
	}
	if index >= s.Size() {
		return
	}
	bi := sjis.Index(s.s.text, index)
	if bi < 0 {
		return
	}
	s.mutate()
	n := sjis.CharLen(s.s.text, bi)
	s.s.text = append(s.s.text[:bi], s.s.text[bi+n:]...)
}

// Find returns the character index of the first occurrence of needle, or
// -1 if not found.
func (s String) Find(needle String) int {
	h := s.s.text
	n := needle.s.text
	c := 0
	for i := 0; i < len(h); i, c = i+sjis.CharLen(h, i), c+1 {
		if i+len(n) <= len(h) && bytesEqual(h[i:i+len(n)], n) {
			return c
		}
	}
	return -1
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Copy returns the substring starting at character-index index with
// character-length length (libsys4's string_copy semantics: an
// out-of-range index or length yields the empty string or clamps to the
// end respectively).
func (s String) Copy(index, length int) String {
	if index < 0 {
		index = 0
	}
	if length <= 0 {
		return Empty()
	}
	bi := sjis.Index(s.s.text, index)
	if bi < 0 {
		return Empty()
	}
	bl := sjis.Index(s.s.text[bi:], length)
	if bl < 0 {
		bl = s.Size() - bi
	}
	return New(s.s.text[bi : bi+bl])
}

// GetChar returns the packed character code at character-index i (low
// byte first for a two-byte character), matching string_get_char.
func (s String) GetChar(i int) int {
	bi := sjis.Index(s.s.text, i)
	if bi < 0 {
		return 0
	}
	if sjis.CharLen(s.s.text, bi) == 2 {
		return int(s.s.text[bi]) | int(s.s.text[bi+1])<<8
	}
	return int(s.s.text[bi])
}

// SetChar overwrites the character at character-index i with c, growing
// or shrinking the backing array by one byte if the replaced and
// replacement characters differ in width. c == 0 truncates the string at
// i, matching string_set_char.
func (s *String) SetChar(i int, c uint) {
	s.mutate()
	bi := sjis.Index(s.s.text, i)
	if bi < 0 {
		return
	}
	if c == 0 {
		s.s.text = s.s.text[:bi]
		return
	}
	srcWide := sjis.IsLeadByte(byte(c & 0xFF))
	dstWide := sjis.CharLen(s.s.text, bi) == 2

	switch {
	case !srcWide && !dstWide:
		s.s.text[bi] = byte(c)
	case srcWide && dstWide:
		s.s.text[bi] = byte(c & 0xFF)
		s.s.text[bi+1] = byte(c >> 8)
	case !srcWide && dstWide:
		s.s.text[bi] = byte(c)
		s.s.text = append(s.s.text[:bi+1], s.s.text[bi+2:]...)
	case srcWide && !dstWide:
		s.s.text = append(s.s.text, 0)
		copy(s.s.text[bi+2:], s.s.text[bi+1:len(s.s.text)-1])
		s.s.text[bi] = byte(c & 0xFF)
		s.s.text[bi+1] = byte(c >> 8)
	}
}
