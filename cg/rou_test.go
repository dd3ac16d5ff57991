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

// buildROU lays out a minimal ROU file with the given width/height and
// BGR pixel / alpha planes (either may be empty to omit that plane).
func buildROU(w, h int, pixels, alpha []byte) []byte {
	data := make([]byte, rouHeaderSize+len(pixels)+len(alpha))
	putU32(data, 8, uint32(rouHeaderSize))
	putU32(data, 0x14, uint32(w))
	putU32(data, 0x18, uint32(h))
	putU32(data, 0x1c, 24)
	putU32(data, 0x24, uint32(len(pixels)))
	putU32(data, 0x28, uint32(len(alpha)))
	copy(data[0:4], "ROU\x00")
	copy(data[rouHeaderSize:], pixels)
	copy(data[rouHeaderSize+len(pixels):], alpha)
	return data
}

func TestROUCheckFormat(t *testing.T) {
	if !rouCheckFormat([]byte("ROU\x00rest")) {
		t.Fatal("expected ROU magic to match")
	}
	if rouCheckFormat([]byte("QNT\x00")) {
		t.Fatal("did not expect QNT magic to match")
	}
}

func TestROUExtractPixelAndAlpha(t *testing.T) {
	const w, h = 2, 2
	pixels := []byte{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}
	alpha := []byte{0x11, 0x22, 0x33, 0x44}
	data := buildROU(w, h, pixels, alpha)

	cg, err := rouExtract(data)
	if err != nil {
		t.Fatalf("rouExtract: %v", err)
	}
	if cg.Metrics.W != w || cg.Metrics.H != h {
		t.Fatalf("got %dx%d, want %dx%d", cg.Metrics.W, cg.Metrics.H, w, h)
	}
	// first pixel is BGR {1,2,3} -> RGBA {3,2,1,0x11}
	want := []byte{3, 2, 1, 0x11}
	if got := cg.Pixels[0:4]; !bytes.Equal(got, want) {
		t.Errorf("pixel 0 = %v, want %v", got, want)
	}
}

func TestROUExtractPixelOnly(t *testing.T) {
	const w, h = 1, 1
	data := buildROU(w, h, []byte{9, 8, 7}, nil)
	cg, err := rouExtract(data)
	if err != nil {
		t.Fatalf("rouExtract: %v", err)
	}
	want := []byte{7, 8, 9, 0xff}
	if got := cg.Pixels; !bytes.Equal(got, want) {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestROUExtractAlphaOnly(t *testing.T) {
	const w, h = 1, 1
	data := buildROU(w, h, nil, []byte{0x77})
	cg, err := rouExtract(data)
	if err != nil {
		t.Fatalf("rouExtract: %v", err)
	}
	want := []byte{0, 0, 0, 0x77}
	if got := cg.Pixels; !bytes.Equal(got, want) {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestROUExtractNoPlanes(t *testing.T) {
	data := buildROU(1, 1, nil, nil)
	if _, err := rouExtract(data); err == nil {
		t.Fatal("expected error when neither pixel nor alpha plane is present")
	}
}
