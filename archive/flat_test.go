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

// writeFlatString appends the length-prefixed, 4-byte-aligned string
// encoding read by readFlatString.
func writeFlatString(w *buffer.Buffer, s string) {
	b := []byte(s)
	w.WriteI32(int32(len(b)))
	w.WriteBytes(b)
	for pad := (4 - len(b)%4) % 4; pad > 0; pad-- {
		w.WriteU8(0)
	}
}

// writeFlatSection wraps payload with the magic+size header every flat
// section carries.
func writeFlatSection(w *buffer.Buffer, magic string, payload []byte) {
	w.WriteBytes([]byte(magic))
	w.WriteU32(uint32(len(payload)))
	w.WriteBytes(payload)
}

// buildFlat assembles a minimal flat file: no ELNA, a 32-byte (v1)
// FLAT header at version 0, an empty MTLC timeline list, and one LIBL
// entry holding a raw CG payload.
func buildFlat(t *testing.T, libName string, cg []byte) []byte {
	t.Helper()

	header := buffer.NewWriter()
	header.WriteI32(30)  // FPS
	header.WriteI32(640) // GameViewWidth
	header.WriteI32(480) // GameViewHeight
	header.WriteFloat(1) // CameraLength
	header.WriteFloat(1) // Meter
	header.WriteI32(640) // Width
	header.WriteI32(480) // Height
	header.WriteI32(0)   // Version

	mtlc := buffer.NewWriter()
	mtlc.WriteI32(0) // nr_timelines

	libl := buffer.NewWriter()
	libl.WriteI32(1) // nr_libraries
	writeFlatString(libl, libName)
	libl.WriteI32(int32(FlatLibCG))
	libl.WriteU32(uint32(len(cg)))
	libl.WriteBytes(cg)

	w := buffer.NewWriter()
	writeFlatSection(w, "FLAT", header.Bytes())
	writeFlatSection(w, "MTLC", mtlc.Bytes())
	writeFlatSection(w, "LIBL", libl.Bytes())
	return w.Bytes()
}

func TestFlat(t *testing.T) {
	cg := []byte("fake qnt payload")
	raw := buildFlat(t, "cg0", cg)
	path := openTemp(t, "test.flat", raw)

	fl, err := OpenFlat(path, 0)
	if err != nil {
		t.Fatalf("OpenFlat: %v", err)
	}
	defer fl.Close()

	if fl.Header.Type != FlatHdrV1_32 {
		t.Fatalf("Header.Type = %v, want FlatHdrV1_32", fl.Header.Type)
	}
	if fl.Header.FPS != 30 || fl.Header.Width != 640 || fl.Header.Height != 480 {
		t.Errorf("Header = %+v, unexpected field values", fl.Header)
	}
	if len(fl.Timelines) != 0 {
		t.Errorf("Timelines = %v, want empty", fl.Timelines)
	}
	if len(fl.TaltEntries) != 0 {
		t.Errorf("TaltEntries = %v, want empty", fl.TaltEntries)
	}

	if !fl.Exists(0) {
		t.Fatal("Exists(0) = false, want true")
	}
	if len(fl.Libraries) != 1 {
		t.Fatalf("Libraries = %d entries, want 1", len(fl.Libraries))
	}
	lib := fl.Libraries[0]
	if lib.Name != "cg0" || lib.Type != FlatLibCG {
		t.Errorf("Libraries[0] = %+v", lib)
	}
	if !bytes.Equal(lib.CG, cg) {
		t.Errorf("Libraries[0].CG = %q, want %q", lib.CG, cg)
	}

	d, err := fl.GetByName("cg0")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if d == nil || !bytes.Equal(d.Data, cg) {
		t.Errorf("GetByName(cg0) = %+v", d)
	}

	no, ok := fl.ExistsByBasename("cg0")
	if !ok || no != 0 {
		t.Errorf("ExistsByBasename(cg0) = %d, %v, want 0, true", no, ok)
	}
}

func TestFlatMissingFlatSection(t *testing.T) {
	path := openTemp(t, "bad.flat", []byte("NOPE\x00\x00\x00\x00"))
	if _, err := OpenFlat(path, 0); err == nil {
		t.Fatal("OpenFlat: want error when FLAT section is missing")
	}
}
