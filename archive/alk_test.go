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
	"os"
	"path/filepath"
	"testing"

	"github.com/nunuhara/system4/buffer"
)

func buildALK(t *testing.T, entries [][]byte) []byte {
	t.Helper()
	headerSize := 8 + 8*len(entries)
	off := headerSize
	w := buffer.NewWriter()
	w.WriteBytes([]byte("ALK0"))
	w.WriteU32(uint32(len(entries)))
	for _, e := range entries {
		w.WriteU32(uint32(off))
		w.WriteU32(uint32(len(e)))
		off += len(e)
	}
	for _, e := range entries {
		w.WriteBytes(e)
	}
	return w.Bytes()
}

func openTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestALK(t *testing.T) {
	raw := buildALK(t, [][]byte{
		[]byte("hello"),
		{},
		[]byte("world!!"),
	})
	path := openTemp(t, "test.alk", raw)

	a, err := OpenALK(path, 0)
	if err != nil {
		t.Fatalf("OpenALK: %v", err)
	}
	defer a.Close()

	if !a.Exists(0) {
		t.Error("Exists(0) = false, want true")
	}
	if a.Exists(1) {
		t.Error("Exists(1) = true, want false (zero size entry)")
	}
	if !a.Exists(2) {
		t.Error("Exists(2) = false, want true")
	}
	if a.Exists(3) {
		t.Error("Exists(3) = true, want false (out of range)")
	}

	d, err := a.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if d.Name != "0" || !bytes.Equal(d.Data, []byte("hello")) {
		t.Errorf("Get(0) = %+v", d)
	}

	d, err = a.Get(2)
	if err != nil {
		t.Fatalf("Get(2): %v", err)
	}
	if !bytes.Equal(d.Data, []byte("world!!")) {
		t.Errorf("Get(2).Data = %q, want %q", d.Data, "world!!")
	}

	var count int
	if err := a.ForEach(func(*Data) error { count++; return nil }); err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	if count != 2 {
		t.Errorf("ForEach visited %d entries, want 2", count)
	}

	if _, ok := a.ExistsByName("0"); ok {
		t.Error("ExistsByName should always report false for ALK")
	}
}

func TestALKBadMagic(t *testing.T) {
	path := openTemp(t, "bad.alk", []byte("NOPE0000"))
	if _, err := OpenALK(path, 0); err == nil {
		t.Fatal("OpenALK: want error on bad magic")
	}
}
