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

package cg

import (
	"bytes"
	"testing"
)

// buildDCF lays out a minimal DCF file with an empty base CG name, an
// empty chunk map (no tiles marked identical), and qntData as the diff
// CG payload.
func buildDCF(t *testing.T, width, height int, qntData []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var u32 [4]byte

	buf.WriteString("dcf ")
	putU32(u32[:], 0, 20) // header size: version+width+height+bpp+nameLength, no name
	buf.Write(u32[:])

	putU32(u32[:], 0, 1) // version
	buf.Write(u32[:])
	putU32(u32[:], 0, uint32(width))
	buf.Write(u32[:])
	putU32(u32[:], 0, uint32(height))
	buf.Write(u32[:])
	putU32(u32[:], 0, 32) // bpp
	buf.Write(u32[:])
	putU32(u32[:], 0, 0) // name length
	buf.Write(u32[:])

	chunkMapRaw := make([]byte, 4) // size=0, no tile bytes
	putU32(chunkMapRaw, 0, 0)
	compressed, err := zlibDeflate(chunkMapRaw)
	if err != nil {
		t.Fatalf("zlibDeflate: %v", err)
	}

	buf.WriteString("dfdl")
	putU32(u32[:], 0, uint32(4+len(compressed)))
	buf.Write(u32[:])
	putU32(u32[:], 0, uint32(len(chunkMapRaw)))
	buf.Write(u32[:])
	buf.Write(compressed)

	buf.WriteString("dcgd")
	putU32(u32[:], 0, uint32(len(qntData)))
	buf.Write(u32[:])
	buf.Write(qntData)

	return buf.Bytes()
}

func TestDCFCheckFormat(t *testing.T) {
	if !dcfCheckFormat([]byte("dcf \x00\x00\x00\x00")) {
		t.Fatal("expected dcf magic to match")
	}
	if dcfCheckFormat([]byte("QNT\x00")) {
		t.Fatal("did not expect QNT magic to match")
	}
}

func TestDCFExtractWithoutArchive(t *testing.T) {
	qntData := qntFixture(t, 4, 4)
	data := buildDCF(t, 4, 4, qntData)

	cg, err := dcfExtract(data, nil)
	if err != nil {
		t.Fatalf("dcfExtract: %v", err)
	}
	// No archive to resolve the base CG against: falls back to the
	// undiffed decode of the diff CG itself.
	if cg.Metrics.W != 4 || cg.Metrics.H != 4 {
		t.Fatalf("got %dx%d, want 4x4", cg.Metrics.W, cg.Metrics.H)
	}
}

func TestDCFGetMetrics(t *testing.T) {
	qntData := qntFixture(t, 4, 4)
	data := buildDCF(t, 4, 4, qntData)

	m, err := dcfGetMetrics(data)
	if err != nil {
		t.Fatalf("dcfGetMetrics: %v", err)
	}
	if m.W != 4 || m.H != 4 {
		t.Fatalf("metrics %dx%d, want 4x4", m.W, m.H)
	}
}
