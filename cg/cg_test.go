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
	"image/png"
	"testing"
)

func TestCheckFormatDispatch(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Type
	}{
		{"qnt", []byte("QNT\x00rest"), TypeQNT},
		{"ajp", []byte("AJP\x00rest"), TypeAJP},
		{"rou", []byte("ROU\x00rest"), TypeROU},
		{"pcf", []byte("pcf \x00\x00\x00\x00"), TypePCF},
		{"dcf", []byte("dcf \x00\x00\x00\x00"), TypeDCF},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, TypeJPEG},
		{"unknown", []byte("not a cg"), TypeUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CheckFormat(c.data); got != c.want {
				t.Errorf("CheckFormat(%q) = %v, want %v", c.data, got, c.want)
			}
		})
	}
}

func TestTypeExtension(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{TypeQNT, "qnt"},
		{TypeAJP, "ajp"},
		{TypePNG, "png"},
		{TypeWebP, "webp"},
		{TypeDCF, "dcf"},
		{TypeJPEG, "jpg"},
		{TypePCF, "pcf"},
		{TypeROU, "rou"},
		{TypeUnknown, ""},
	}
	for _, c := range cases {
		if got := c.typ.Extension(); got != c.want {
			t.Errorf("Type(%d).Extension() = %q, want %q", c.typ, got, c.want)
		}
	}
}

func pngFixture(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: byte(x), G: byte(y), B: 50, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadPNG(t *testing.T) {
	data := pngFixture(t, 3, 3)
	if CheckFormat(data) != TypePNG {
		t.Fatal("expected PNG to be recognized")
	}
	cg, err := Load(data, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cg.Metrics.W != 3 || cg.Metrics.H != 3 {
		t.Fatalf("got %dx%d, want 3x3", cg.Metrics.W, cg.Metrics.H)
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	in := &CG{
		Type:    TypePNG,
		Metrics: Metrics{W: 2, H: 2, BPP: 32, HasPixel: true, HasAlpha: true},
		Pixels:  []byte{1, 2, 3, 255, 4, 5, 6, 255, 7, 8, 9, 255, 10, 11, 12, 255},
	}
	var buf bytes.Buffer
	if err := Write(in, TypePNG, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out, err := Load(buf.Bytes(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(out.Pixels, in.Pixels) {
		t.Fatalf("round-tripped pixels differ:\n got  %v\n want %v", out.Pixels, in.Pixels)
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	in := &CG{Type: TypeWebP, Metrics: Metrics{W: 1, H: 1}, Pixels: make([]byte, 4)}
	var buf bytes.Buffer
	if err := Write(in, TypeWebP, &buf); err == nil {
		t.Fatal("expected error encoding to an unsupported format")
	}
}

func TestLoadUnrecognized(t *testing.T) {
	if _, err := Load([]byte("nope"), nil); err == nil {
		t.Fatal("expected error loading unrecognized data")
	}
}
