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
)

// buildALDVolume lays out a minimal single-volume, unobfuscated (magic
// all-zero, since header[2] == 0 skips the detection branch entirely)
// ALD volume with one entry at logical number 0: a 1-page (256B)
// pointer table, a 1-page file map, and one entry's header+payload. The
// pointer table only brackets the entry's presence; its exact byte
// length comes from an explicit size field in the entry header, so the
// payload need not be padded out to the next pointer's page boundary.
func buildALDVolume(t *testing.T, name string, payload []byte) []byte {
	t.Helper()
	const page = 256
	data := make([]byte, 4*page)

	// Pointer table: slot 0 holds {ptrsize=1, ptrsize+mapsize=2} (the
	// volume header); slot 1 and slot 2 give the page numbers bounding
	// entry pointer index 1's data (page 2 through page 3).
	putLE3 := func(off int, v uint32) {
		data[off] = byte(v)
		data[off+1] = byte(v >> 8)
		data[off+2] = byte(v >> 16)
	}
	putLE3(0, 1) // ptrsize = 1 page
	putLE3(3, 2) // ptrsize + mapsize = 2 pages
	putLE3(6, 2) // fp[1]: entry data starts at page 2
	putLE3(9, 3) // fp[2]: entry data ends at page 3 (existence bound only)

	// File map (page 1): entry number 0 -> disk 1 (i.e. disk index 0),
	// pointer 2 (i.e. ptr index 1).
	mapOff := page
	data[mapOff+0] = 1 // disk+1
	data[mapOff+1] = 2 // ptr+1 (low byte)
	data[mapOff+2] = 0 // ptr+1 (high byte)

	// Entry at page 2: 4-byte header size, 4-byte payload size, then
	// (after the rest of the 16-byte fixed header) a NUL-terminated
	// name, then the payload immediately following the header.
	entryOff := 2 * page
	nameField := append([]byte(name), 0)
	hdrSize := 16 + len(nameField)
	putU32 := func(off int, v uint32) {
		data[off] = byte(v)
		data[off+1] = byte(v >> 8)
		data[off+2] = byte(v >> 16)
		data[off+3] = byte(v >> 24)
	}
	putU32(entryOff+0, uint32(hdrSize))
	putU32(entryOff+4, uint32(len(payload)))
	copy(data[entryOff+16:], nameField)
	copy(data[entryOff+hdrSize:], payload)

	// fp[2] (page 3) must be >= entryOff+hdrSize+len(payload) for the
	// payload span to stay within bounds; page 3 = offset 768 and our
	// data fits well within that given the 4-page buffer.
	return data
}

func TestALD(t *testing.T) {
	raw := buildALDVolume(t, "GREETING.TXT", []byte("hello, ald"))
	path := openTemp(t, "test.ald", raw)

	a, err := OpenALD([]string{path}, 0)
	if err != nil {
		t.Fatalf("OpenALD: %v", err)
	}
	defer a.Close()

	if !a.Exists(0) {
		t.Fatal("Exists(0) = false, want true")
	}
	if a.Exists(1) {
		t.Error("Exists(1) = true, want false")
	}

	d, err := a.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if d == nil {
		t.Fatal("Get(0) = nil")
	}
	if d.Name != "GREETING.TXT" {
		t.Errorf("Get(0).Name = %q, want GREETING.TXT", d.Name)
	}
	if !bytes.Equal(d.Data, []byte("hello, ald")) {
		t.Errorf("Get(0).Data = %q, want %q", d.Data, "hello, ald")
	}

	no, ok := a.ExistsByName("GREETING.TXT")
	if !ok || no != 0 {
		t.Errorf("ExistsByName(GREETING.TXT) = %d, %v, want 0, true", no, ok)
	}
}

func TestALDMissingVolume(t *testing.T) {
	// A volume index with an empty path is allowed: the archive opens
	// even though the disk it would resolve to is unavailable.
	raw := buildALDVolume(t, "A.TXT", []byte("x"))
	path := openTemp(t, "test2.ald", raw)

	a, err := OpenALD([]string{path, ""}, 0)
	if err != nil {
		t.Fatalf("OpenALD: %v", err)
	}
	defer a.Close()
	if !a.Exists(0) {
		t.Error("Exists(0) = false, want true")
	}
}
