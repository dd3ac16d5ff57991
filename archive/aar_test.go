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

package archive

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/buffer"
)

type aarTestEntry struct {
	name       string
	linkTarget string
	typ        aarEntryType
	data       []byte
}

func aarObfuscate(s string, key byte) []byte {
	b := []byte(s)
	out := make([]byte, len(b)+1)
	for i, c := range b {
		out[i] = c + key
	}
	return out // trailing NUL left as zero
}

func buildAAR(t *testing.T, version uint32, entries []aarTestEntry) []byte {
	t.Helper()
	var key byte
	if version >= 2 {
		key = 0x60
	}

	// First pass: lay out the index to learn firstEntryOffset.
	indexSize := 0
	for _, e := range entries {
		indexSize += 12 + len(e.name) + 1
		if version >= 2 {
			indexSize += len(e.linkTarget) + 1
		}
	}
	firstEntryOffset := 12 + indexSize

	// Second pass: assign payload offsets for non-symlink entries.
	offs := make([]int, len(entries))
	off := firstEntryOffset
	var payload []byte
	for i, e := range entries {
		if e.typ == aarSymlink {
			continue
		}
		offs[i] = off
		off += len(e.data)
		payload = append(payload, e.data...)
	}

	w := buffer.NewWriter()
	w.WriteBytes([]byte("AAR\x00"))
	w.WriteU32(version)
	w.WriteU32(uint32(len(entries)))
	for i, e := range entries {
		w.WriteU32(uint32(offs[i]))
		w.WriteU32(uint32(len(e.data)))
		w.WriteU32(uint32(int32(e.typ)))
		w.WriteBytes(aarObfuscate(e.name, key))
		if version >= 2 {
			w.WriteBytes(aarObfuscate(e.linkTarget, key))
		}
	}
	w.WriteBytes(payload)
	return w.Bytes()
}

func zlbWrap(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	w := buffer.NewWriter()
	w.WriteBytes([]byte("ZLB\x00"))
	w.WriteU32(0)
	w.WriteU32(uint32(len(data)))
	w.WriteU32(uint32(buf.Len()))
	w.WriteBytes(buf.Bytes())
	return w.Bytes()
}

func TestAARv0(t *testing.T) {
	raw := buildAAR(t, 0, []aarTestEntry{
		{name: "a.txt", typ: aarRaw, data: []byte("hello world")},
		{name: "b.dat", typ: aarCompressed, data: zlbWrap(t, []byte("compress me please"))},
	})
	path := openTemp(t, "test.aar", raw)

	a, err := OpenAAR(path, 0)
	if err != nil {
		t.Fatalf("OpenAAR: %v", err)
	}
	defer a.Close()

	d, err := a.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if d.Name != "a.txt" || !bytes.Equal(d.Data, []byte("hello world")) {
		t.Errorf("Get(0) = %+v", d)
	}

	d, err = a.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if !bytes.Equal(d.Data, []byte("compress me please")) {
		t.Errorf("Get(1).Data = %q", d.Data)
	}

	d, err = a.GetByName("a.txt")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if d == nil || d.Name != "a.txt" {
		t.Errorf("GetByName(a.txt) = %+v", d)
	}
}

func TestAARv2Symlink(t *testing.T) {
	raw := buildAAR(t, 2, []aarTestEntry{
		{name: "a.txt", typ: aarRaw, data: []byte("the real file")},
		{name: "link.txt", typ: aarSymlink, linkTarget: "a.txt"},
	})
	path := openTemp(t, "test2.aar", raw)

	a, err := OpenAAR(path, 0)
	if err != nil {
		t.Fatalf("OpenAAR: %v", err)
	}
	defer a.Close()

	d, err := a.Get(1)
	if err != nil {
		t.Fatalf("Get(1) (symlink): %v", err)
	}
	if !bytes.Equal(d.Data, []byte("the real file")) {
		t.Errorf("Get(1).Data via symlink = %q, want %q", d.Data, "the real file")
	}
}
