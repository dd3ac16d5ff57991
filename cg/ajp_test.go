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
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func jpegFixture(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: byte(x * 10), G: byte(y * 10), B: 128, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestAJPCheckFormat(t *testing.T) {
	if !ajpCheckFormat([]byte("AJP\x00rest")) {
		t.Fatal("expected AJP magic to match")
	}
	if ajpCheckFormat([]byte("QNT\x00")) {
		t.Fatal("did not expect QNT magic to match")
	}
}

func TestAJPDecryptRoundTrip(t *testing.T) {
	plain := []byte("0123456789abcdefGHIJ")
	enc := ajpDecrypt(plain)
	dec := ajpDecrypt(enc)
	if !bytes.Equal(dec, plain) {
		t.Fatalf("XOR decrypt is not its own inverse: got %v, want %v", dec, plain)
	}
}

func TestAJPExtractNoMask(t *testing.T) {
	const w, h = 8, 8
	jpegData := jpegFixture(t, w, h)
	encJPEG := ajpDecrypt(jpegData)

	const headerSize = 36
	data := make([]byte, headerSize+len(encJPEG))
	copy(data[0:4], "AJP\x00")
	putU32(data, 12, w)
	putU32(data, 16, h)
	putU32(data, 20, headerSize)
	putU32(data, 24, uint32(len(encJPEG)))
	putU32(data, 28, 0)
	putU32(data, 32, 0)
	copy(data[headerSize:], encJPEG)

	cg, err := ajpExtract(data)
	if err != nil {
		t.Fatalf("ajpExtract: %v", err)
	}
	if cg.Metrics.W != w || cg.Metrics.H != h {
		t.Fatalf("got %dx%d, want %dx%d", cg.Metrics.W, cg.Metrics.H, w, h)
	}
	for p := 0; p < w*h; p++ {
		if cg.Pixels[p*4+3] != 0xff {
			t.Fatalf("pixel %d alpha = %#x, want opaque (no mask present)", p, cg.Pixels[p*4+3])
		}
	}
}

func TestAJPExtractDimensionMismatch(t *testing.T) {
	const w, h = 8, 8
	jpegData := jpegFixture(t, w, h)
	encJPEG := ajpDecrypt(jpegData)

	const headerSize = 36
	data := make([]byte, headerSize+len(encJPEG))
	copy(data[0:4], "AJP\x00")
	putU32(data, 12, w+1) // deliberately wrong
	putU32(data, 16, h)
	putU32(data, 20, headerSize)
	putU32(data, 24, uint32(len(encJPEG)))
	copy(data[headerSize:], encJPEG)

	if _, err := ajpExtract(data); err == nil {
		t.Fatal("expected error when AJP header width doesn't match embedded JPEG")
	}
}
