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

type afaTestEntry struct {
	name string
	data []byte
}

// buildAFA builds a v1 AFAH archive (version 1 always carries a numeric
// ID per entry, so this avoids depending on afaDetermineHasNumber's
// table-scan heuristic).
func buildAFA(t *testing.T, entries []afaTestEntry) []byte {
	t.Helper()

	table := buffer.NewWriter()
	off := 8
	for i, e := range entries {
		nameBytes := []byte(e.name)
		table.WriteU32(uint32(len(nameBytes)))
		table.WriteU32(uint32(len(nameBytes)))
		table.WriteBytes(nameBytes)
		table.WriteI32(int32(i + 1)) // id = no+1
		table.WriteU32(0)            // unknown0
		table.WriteU32(0)            // unknown1
		table.WriteU32(uint32(off))
		table.WriteU32(uint32(len(e.data)))
		off += len(e.data)
	}
	tableRaw := table.Bytes()

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(tableRaw); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}

	var payload []byte
	for _, e := range entries {
		payload = append(payload, e.data...)
	}

	dataStart := 44 + compressed.Len()

	w := buffer.NewWriter()
	w.WriteBytes([]byte("AFAH"))
	w.WriteU32(0x1c)
	w.WriteBytes([]byte("AlicArch"))
	w.WriteU32(1) // version
	w.WriteU32(0) // unused
	w.WriteU32(uint32(dataStart))
	w.WriteBytes([]byte("INFO"))
	w.WriteU32(uint32(compressed.Len() + 16))
	w.WriteU32(uint32(len(tableRaw)))
	w.WriteU32(uint32(len(entries)))
	w.WriteBytes(compressed.Bytes())
	w.WriteBytes([]byte("DATA"))
	w.WriteU32(uint32(8 + len(payload)))
	w.WriteBytes(payload)
	return w.Bytes()
}

func TestAFAv1(t *testing.T) {
	raw := buildAFA(t, []afaTestEntry{
		{name: "script.jaf", data: []byte("jaf bytecode here")},
		{name: "data.bin", data: []byte("binary data")},
	})
	path := openTemp(t, "test.afa", raw)

	a, err := OpenAFA(path, 0)
	if err != nil {
		t.Fatalf("OpenAFA: %v", err)
	}
	defer a.Close()

	if !a.Exists(0) || !a.Exists(1) {
		t.Error("Exists(0)/Exists(1) = false, want true")
	}

	d, err := a.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if d.Name != "script.jaf" || !bytes.Equal(d.Data, []byte("jaf bytecode here")) {
		t.Errorf("Get(0) = %+v", d)
	}

	d, err = a.GetByName("data.bin")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if d == nil || !bytes.Equal(d.Data, []byte("binary data")) {
		t.Errorf("GetByName(data.bin) = %+v", d)
	}

	d, err = a.GetByBasename("script")
	if err != nil {
		t.Fatalf("GetByBasename: %v", err)
	}
	if d == nil || d.Name != "script.jaf" {
		t.Errorf("GetByBasename(script) = %+v", d)
	}
}

func TestAFABadMagic(t *testing.T) {
	path := openTemp(t, "bad.afa", bytes.Repeat([]byte{0}, 64))
	if _, err := OpenAFA(path, 0); err == nil {
		t.Fatal("OpenAFA: want error on bad magic")
	}
}
