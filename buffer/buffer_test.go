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

package buffer

import (
	"bytes"
	"testing"
)

func TestReadWriteIntegers(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0xAB)
	w.WriteU16(0x1234)
	w.WriteU32(0xDEADBEEF)
	w.WriteI32(-42)

	r := NewReader(w.Bytes())
	if v, err := r.ReadU8(); err != nil || v != 0xAB {
		t.Fatalf("ReadU8 = %#x, %v", v, err)
	}
	if v, err := r.ReadU16(); err != nil || v != 0x1234 {
		t.Fatalf("ReadU16 = %#x, %v", v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %#x, %v", v, err)
	}
	if v, err := r.ReadI32(); err != nil || v != -42 {
		t.Fatalf("ReadI32 = %d, %v", v, err)
	}
}

func TestOutOfBounds(t *testing.T) {
	r := NewReader([]byte{1, 2})
	if _, err := r.ReadU32(); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestAlign(t *testing.T) {
	r := NewReader(make([]byte, 16))
	r.Seek(3)
	r.Align(4)
	if r.Index() != 4 {
		t.Fatalf("Align(4) from 3 = %d, want 4", r.Index())
	}
	r.Seek(4)
	r.Align(4)
	if r.Index() != 4 {
		t.Fatalf("Align(4) from 4 = %d, want 4", r.Index())
	}
}

func TestPascalString(t *testing.T) {
	w := NewWriter()
	w.WritePascalString([]byte("hello"))
	r := NewReader(w.Bytes())
	s, err := r.ReadPascalString()
	if err != nil || !bytes.Equal(s, []byte("hello")) {
		t.Fatalf("ReadPascalString = %q, %v", s, err)
	}
}

func TestCString(t *testing.T) {
	w := NewWriter()
	w.WriteCString([]byte("foo"))
	w.WriteU8(0x99)
	r := NewReader(w.Bytes())
	s, err := r.ReadCString()
	if err != nil || !bytes.Equal(s, []byte("foo")) {
		t.Fatalf("ReadCString = %q, %v", s, err)
	}
	if v, _ := r.ReadU8(); v != 0x99 {
		t.Fatalf("byte after cstring = %#x", v)
	}
}

func TestCheckBytes(t *testing.T) {
	r := NewReader([]byte("AIN\x00rest"))
	ok, err := r.CheckBytes([]byte("AIN\x00"))
	if err != nil || !ok {
		t.Fatalf("CheckBytes matched = %v, %v", ok, err)
	}
	if r.Index() != 4 {
		t.Fatalf("index after CheckBytes = %d", r.Index())
	}
	ok, _ = r.CheckBytes([]byte("nope"))
	if ok {
		t.Fatalf("CheckBytes should not match")
	}
}

func TestWriteI32At(t *testing.T) {
	w := NewWriter()
	w.WriteI32(0)
	w.WriteBytes([]byte("filler"))
	w.WriteI32At(0, 0x1234)
	r := NewReader(w.Bytes())
	v, _ := r.ReadI32()
	if v != 0x1234 {
		t.Fatalf("patched value = %#x", v)
	}
}

func TestNegativePascalLength(t *testing.T) {
	w := NewWriter()
	w.WriteI32(-1)
	r := NewReader(w.Bytes())
	if _, err := r.ReadPascalString(); err == nil {
		t.Fatal("expected error for negative pascal string length")
	}
}
