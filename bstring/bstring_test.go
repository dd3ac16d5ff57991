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

package bstring

import (
	"bytes"
	"testing"
)

func TestEmptyIsSentinel(t *testing.T) {
	a := Empty()
	b := Empty()
	if a.Size() != 0 || b.Size() != 0 {
		t.Fatal("expected empty strings to have size 0")
	}
}

func TestCowCloneOnMutate(t *testing.T) {
	a := New([]byte("hello"))
	b := a.Ref()
	a.PushBack('!')
	if !bytes.Equal(a.Bytes(), []byte("hello!")) {
		t.Fatalf("a = %q", a.Bytes())
	}
	if !bytes.Equal(b.Bytes(), []byte("hello")) {
		t.Fatalf("b should be unaffected by a's mutation, got %q", b.Bytes())
	}
}

func TestPushPopBackTwoByte(t *testing.T) {
	s := New([]byte("x"))
	s.PushBack(0xA082) // あ (0x82 0xA0), lead byte in the low byte per string_push_back packing
	if s.Size() != 3 {
		t.Fatalf("size after push = %d, want 3", s.Size())
	}
	s.PopBack()
	if !bytes.Equal(s.Bytes(), []byte("x")) {
		t.Fatalf("after pop = %q", s.Bytes())
	}
}

func TestEraseAtomicCharacter(t *testing.T) {
	s := New([]byte{0x82, 0xA0, 'b', 'c'})
	s.Erase(0)
	if !bytes.Equal(s.Bytes(), []byte("bc")) {
		t.Fatalf("after erase = %v", s.Bytes())
	}
}

func TestFind(t *testing.T) {
	s := New([]byte("foobar"))
	if i := s.Find(New([]byte("bar"))); i != 3 {
		t.Fatalf("Find = %d, want 3", i)
	}
	if i := s.Find(New([]byte("nope"))); i != -1 {
		t.Fatalf("Find = %d, want -1", i)
	}
}

func TestCopySubstring(t *testing.T) {
	s := New([]byte("hello world"))
	c := s.Copy(6, 5)
	if !bytes.Equal(c.Bytes(), []byte("world")) {
		t.Fatalf("Copy = %q", c.Bytes())
	}
}

func TestSetCharGrowShrink(t *testing.T) {
	s := New([]byte("a"))
	s.SetChar(0, 0xA082) // あ: 1-byte -> 2-byte grows the string
	if s.Size() != 2 {
		t.Fatalf("size after widen = %d, want 2", s.Size())
	}
	s.SetChar(0, 'z') // 2-byte -> 1-byte shrinks it back
	if s.Size() != 1 || s.Bytes()[0] != 'z' {
		t.Fatalf("after narrow = %v", s.Bytes())
	}
}

func TestFromInt(t *testing.T) {
	s := FromInt(-42, false)
	if !bytes.Equal(s.Bytes(), []byte("-42")) {
		t.Fatalf("FromInt = %q", s.Bytes())
	}
}

func TestFromIntZenkaku(t *testing.T) {
	s := FromInt(5, true)
	want := []byte{0x82, 0x4f + 5}
	if !bytes.Equal(s.Bytes(), want) {
		t.Fatalf("FromInt(zenkaku) = %v, want %v", s.Bytes(), want)
	}
}
