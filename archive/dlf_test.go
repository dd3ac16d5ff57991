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

	"github.com/nunuhara/system4/buffer"
)

func buildDLF(t *testing.T, occupied map[int][]byte) []byte {
	t.Helper()
	headerSize := 8 + 8*dlfNrEntries
	off := headerSize
	type slot struct{ off, size int }
	slots := make([]slot, dlfNrEntries)
	var payload []byte
	for i := 0; i < dlfNrEntries; i++ {
		data, ok := occupied[i]
		if !ok {
			continue
		}
		slots[i] = slot{off: off, size: len(data)}
		payload = append(payload, data...)
		off += len(data)
	}

	w := buffer.NewWriter()
	w.WriteBytes([]byte("DLF\x00\x00\x00\x00\x00"))
	for _, s := range slots {
		w.WriteU32(uint32(s.off))
		w.WriteU32(uint32(s.size))
	}
	w.WriteBytes(payload)
	return w.Bytes()
}

func TestDLF(t *testing.T) {
	raw := buildDLF(t, map[int][]byte{
		0: []byte("dungeon-geometry"),
		1: []byte("dungeon-texture!"),
	})
	path := openTemp(t, "test.dlf", raw)

	d, err := OpenDLF(path, 0)
	if err != nil {
		t.Fatalf("OpenDLF: %v", err)
	}
	defer d.Close()

	if !d.Exists(0) || !d.Exists(1) {
		t.Error("Exists(0)/Exists(1) = false, want true")
	}
	if d.Exists(2) {
		t.Error("Exists(2) = true, want false (unoccupied slot)")
	}

	data, err := d.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if data.Name != "map00.dgn" || !bytes.Equal(data.Data, []byte("dungeon-geometry")) {
		t.Errorf("Get(0) = %+v", data)
	}

	data, err = d.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if data.Name != "map00.dtx" {
		t.Errorf("Get(1).Name = %q, want map00.dtx", data.Name)
	}
}

func TestDLFBadMagic(t *testing.T) {
	path := openTemp(t, "bad.dlf", bytes.Repeat([]byte{0}, 16))
	if _, err := OpenDLF(path, 0); err == nil {
		t.Fatal("OpenDLF: want error on bad magic")
	}
}
