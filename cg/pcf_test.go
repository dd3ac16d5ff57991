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

// buildPCF wraps qntData in an empty-payload 'pcf '/'ptdl' shell around
// a 'pcgd' section whose payload is the QNT bytes themselves.
func buildPCF(qntData []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("pcf ")
	var sz [4]byte
	putU32(sz[:], 0, 0)
	buf.Write(sz[:]) // pcf section payload size = 0

	buf.WriteString("ptdl")
	putU32(sz[:], 0, 0)
	buf.Write(sz[:]) // ptdl section payload size = 0

	buf.WriteString("pcgd")
	putU32(sz[:], 0, uint32(len(qntData)))
	buf.Write(sz[:])
	buf.Write(qntData)
	return buf.Bytes()
}

func qntFixture(t *testing.T, w, h int) []byte {
	t.Helper()
	pixels := make([]byte, w*h*4)
	for p := 0; p < w*h; p++ {
		pixels[p*4+0], pixels[p*4+1], pixels[p*4+2], pixels[p*4+3] = byte(p), byte(p * 2), byte(p * 3), 0xff
	}
	in := &CG{Type: TypeQNT, Metrics: Metrics{W: w, H: h, BPP: 24, HasPixel: true, HasAlpha: true}, Pixels: pixels}
	var out bytes.Buffer
	if err := qntWrite(in, &out); err != nil {
		t.Fatalf("qntWrite: %v", err)
	}
	return out.Bytes()
}

func TestPCFCheckFormat(t *testing.T) {
	if !pcfCheckFormat([]byte("pcf \x00\x00\x00\x00")) {
		t.Fatal("expected pcf magic to match")
	}
	if pcfCheckFormat([]byte("QNT\x00")) {
		t.Fatal("did not expect QNT magic to match")
	}
}

func TestPCFExtract(t *testing.T) {
	qntData := qntFixture(t, 2, 2)
	data := buildPCF(qntData)

	cg, err := pcfExtract(data)
	if err != nil {
		t.Fatalf("pcfExtract: %v", err)
	}
	if cg.Type != TypePCF {
		t.Fatalf("got Type %v, want TypePCF", cg.Type)
	}
	if cg.Metrics.W != 2 || cg.Metrics.H != 2 {
		t.Fatalf("got %dx%d, want 2x2", cg.Metrics.W, cg.Metrics.H)
	}

	m, err := pcfGetMetrics(data)
	if err != nil {
		t.Fatalf("pcfGetMetrics: %v", err)
	}
	if m.W != 2 || m.H != 2 {
		t.Fatalf("metrics %dx%d, want 2x2", m.W, m.H)
	}
}

func TestPCFExtractNotQNT(t *testing.T) {
	data := buildPCF([]byte("not a qnt file at all"))
	if _, err := pcfExtract(data); err == nil {
		t.Fatal("expected error for non-QNT pcgd payload")
	}
}
