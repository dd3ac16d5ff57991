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

// Package buffer implements a bounded, little-endian byte-buffer
// reader/writer used by every binary format in this module.
package buffer

import (
	"errors"
	"math"
)

// ErrOutOfBounds is returned whenever a read or skip would run past the
// end of the buffer. It indicates the caller should have length-checked
// first; System4 formats that permit truncation check Remaining before
// parsing rather than relying on this error.
var ErrOutOfBounds = errors.New("buffer: out of bounds")

// Buffer is a cursor over a byte slice. A Buffer constructed with NewReader
// never grows; one constructed with NewWriter grows (by doubling) on
// writes that would overflow the backing slice.
type Buffer struct {
	buf      []byte
	index    int
	writable bool
}

// NewReader returns a Buffer that reads from buf without copying it.
// Reads past len(buf) fail with ErrOutOfBounds.
func NewReader(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

// NewWriter returns an empty, growable Buffer suitable for serialising a
// format from scratch.
func NewWriter() *Buffer {
	return &Buffer{writable: true}
}

// NewWriterSize returns an empty, growable Buffer with capacity
// pre-reserved.
func NewWriterSize(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity), writable: true}
}

// Bytes returns the backing slice. For a reader this is the full original
// slice; for a writer it is the bytes written so far.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the total size of the backing slice.
func (b *Buffer) Len() int { return len(b.buf) }

// Index returns the current cursor position.
func (b *Buffer) Index() int { return b.index }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return len(b.buf) - b.index }

// Seek moves the cursor to an absolute offset. It does not validate the
// offset; a subsequent read past the end still fails with ErrOutOfBounds.
func (b *Buffer) Seek(off int) { b.index = off }

// Skip advances the cursor by n bytes.
func (b *Buffer) Skip(n int) error {
	if b.Remaining() < n {
		return ErrOutOfBounds
	}
	b.index += n
	return nil
}

// Align rounds the cursor up to the next multiple of p, where p is a power
// of two.
func (b *Buffer) Align(p int) {
	b.index = (b.index + (p - 1)) &^ (p - 1)
}

func (b *Buffer) need(n int) error {
	if b.Remaining() < n {
		return ErrOutOfBounds
	}
	return nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (b *Buffer) ReadU8() (uint8, error) {
	if err := b.need(1); err != nil {
		return 0, err
	}
	v := b.buf[b.index]
	b.index++
	return v, nil
}

// ReadI8 reads a signed 8-bit integer.
func (b *Buffer) ReadI8() (int8, error) {
	v, err := b.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian unsigned 16-bit integer.
func (b *Buffer) ReadU16() (uint16, error) {
	if err := b.need(2); err != nil {
		return 0, err
	}
	v := uint16(b.buf[b.index]) | uint16(b.buf[b.index+1])<<8
	b.index += 2
	return v, nil
}

// ReadI16 reads a little-endian signed 16-bit integer.
func (b *Buffer) ReadI16() (int16, error) {
	v, err := b.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian unsigned 32-bit integer.
func (b *Buffer) ReadU32() (uint32, error) {
	if err := b.need(4); err != nil {
		return 0, err
	}
	v := uint32(b.buf[b.index]) | uint32(b.buf[b.index+1])<<8 |
		uint32(b.buf[b.index+2])<<16 | uint32(b.buf[b.index+3])<<24
	b.index += 4
	return v, nil
}

// ReadI32 reads a little-endian signed 32-bit integer.
func (b *Buffer) ReadI32() (int32, error) {
	v, err := b.ReadU32()
	return int32(v), err
}

// ReadFloat reads a little-endian IEEE-754 32-bit float.
func (b *Buffer) ReadFloat() (float32, error) {
	v, err := b.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadBytes returns the next n bytes as a borrowed slice (no copy). The
// caller must copy it out if it needs to outlive subsequent writes to the
// backing array via a writer.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if err := b.need(n); err != nil {
		return nil, err
	}
	v := b.buf[b.index : b.index+n]
	b.index += n
	return v, nil
}

// ReadCString reads a NUL-terminated string and advances past the
// terminator. The returned bytes do not include the NUL.
func (b *Buffer) ReadCString() ([]byte, error) {
	start := b.index
	for b.index < len(b.buf) {
		if b.buf[b.index] == 0 {
			s := b.buf[start:b.index]
			b.index++
			return s, nil
		}
		b.index++
	}
	b.index = start
	return nil, ErrOutOfBounds
}

// ReadPascalString reads a 4-byte little-endian length prefix followed by
// that many bytes. A negative length is a fatal format error.
func (b *Buffer) ReadPascalString() ([]byte, error) {
	n, err := b.ReadI32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.New("buffer: negative pascal string length")
	}
	return b.ReadBytes(int(n))
}

// CheckBytes advances the cursor past literal only if the next
// len(literal) bytes match it exactly; otherwise the cursor is unchanged
// and ok is false.
func (b *Buffer) CheckBytes(literal []byte) (ok bool, err error) {
	if b.Remaining() < len(literal) {
		return false, nil
	}
	if !bytesEqual(b.buf[b.index:b.index+len(literal)], literal) {
		return false, nil
	}
	b.index += len(literal)
	return true, nil
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

func (b *Buffer) grow(n int) {
	need := b.index + n
	if need <= len(b.buf) {
		return
	}
	newCap := cap(b.buf)
	if newCap == 0 {
		newCap = 64
	}
	for newCap < need {
		newCap *= 2
	}
	nb := make([]byte, need, newCap)
	copy(nb, b.buf)
	b.buf = nb
}

// WriteU8 appends an unsigned 8-bit integer.
func (b *Buffer) WriteU8(v uint8) {
	b.grow(1)
	b.buf[b.index] = v
	b.index++
}

// WriteU16 appends a little-endian unsigned 16-bit integer.
func (b *Buffer) WriteU16(v uint16) {
	b.grow(2)
	b.buf[b.index] = byte(v)
	b.buf[b.index+1] = byte(v >> 8)
	b.index += 2
}

// WriteU32 appends a little-endian unsigned 32-bit integer.
func (b *Buffer) WriteU32(v uint32) {
	b.grow(4)
	b.buf[b.index] = byte(v)
	b.buf[b.index+1] = byte(v >> 8)
	b.buf[b.index+2] = byte(v >> 16)
	b.buf[b.index+3] = byte(v >> 24)
	b.index += 4
}

// WriteI32 appends a little-endian signed 32-bit integer.
func (b *Buffer) WriteI32(v int32) { b.WriteU32(uint32(v)) }

// WriteFloat appends a little-endian IEEE-754 32-bit float.
func (b *Buffer) WriteFloat(f float32) {
	b.WriteU32(math.Float32bits(f))
}

// WriteBytes appends raw bytes.
func (b *Buffer) WriteBytes(p []byte) {
	b.grow(len(p))
	copy(b.buf[b.index:], p)
	b.index += len(p)
}

// WriteCString appends s followed by a NUL terminator.
func (b *Buffer) WriteCString(s []byte) {
	b.WriteBytes(s)
	b.WriteU8(0)
}

// WritePascalString appends a 4-byte little-endian length prefix followed
// by s.
func (b *Buffer) WritePascalString(s []byte) {
	b.WriteI32(int32(len(s)))
	b.WriteBytes(s)
}

// WriteI32At back-patches a 4-byte little-endian integer at a previously
// written offset without moving the cursor.
func (b *Buffer) WriteI32At(index int, v int32) {
	if index+4 > len(b.buf) {
		panic("buffer: WriteI32At out of bounds")
	}
	b.buf[index] = byte(v)
	b.buf[index+1] = byte(v >> 8)
	b.buf[index+2] = byte(v >> 16)
	b.buf[index+3] = byte(v >> 24)
}
