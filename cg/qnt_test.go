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

func TestQNTCheckFormat(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"magic", []byte("QNT\x00anything"), true},
		{"short", []byte("QN"), false},
		{"other magic", []byte("AJP\x00"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := qntCheckFormat(c.data); got != c.want {
				t.Errorf("qntCheckFormat(%q) = %v, want %v", c.data, got, c.want)
			}
		})
	}
}

func TestQNTRoundTrip(t *testing.T) {
	const w, h = 4, 3
	pixels := make([]byte, w*h*4)
	for p := 0; p < w*h; p++ {
		pixels[p*4+0] = byte(p * 7)
		pixels[p*4+1] = byte(p * 13)
		pixels[p*4+2] = byte(p * 29)
		pixels[p*4+3] = 0xff
	}
	in := &CG{
		Type: TypeQNT,
		Metrics: Metrics{
			W: w, H: h, BPP: 24,
			HasPixel: true, HasAlpha: true,
		},
		Pixels: pixels,
	}

	var buf bytes.Buffer
	if err := qntWrite(in, &buf); err != nil {
		t.Fatalf("qntWrite: %v", err)
	}

	if !qntCheckFormat(buf.Bytes()) {
		t.Fatal("encoded data does not pass qntCheckFormat")
	}

	out, err := qntExtract(buf.Bytes())
	if err != nil {
		t.Fatalf("qntExtract: %v", err)
	}
	if out.Metrics.W != w || out.Metrics.H != h {
		t.Fatalf("got %dx%d, want %dx%d", out.Metrics.W, out.Metrics.H, w, h)
	}
	if !bytes.Equal(out.Pixels, pixels) {
		t.Fatalf("round-tripped pixels differ:\n got  %v\n want %v", out.Pixels, pixels)
	}
}

func TestQNTRoundTripOddSize(t *testing.T) {
	const w, h = 3, 1
	pixels := make([]byte, w*h*4)
	for p := 0; p < w*h; p++ {
		pixels[p*4+0] = byte(p * 50)
		pixels[p*4+1] = byte(p * 80)
		pixels[p*4+2] = byte(p * 110)
		pixels[p*4+3] = 0xff
	}
	in := &CG{
		Type:    TypeQNT,
		Metrics: Metrics{W: w, H: h, BPP: 24, HasPixel: true, HasAlpha: true},
		Pixels:  pixels,
	}

	var buf bytes.Buffer
	if err := qntWrite(in, &buf); err != nil {
		t.Fatalf("qntWrite: %v", err)
	}
	out, err := qntExtract(buf.Bytes())
	if err != nil {
		t.Fatalf("qntExtract: %v", err)
	}
	if !bytes.Equal(out.Pixels, pixels) {
		t.Fatalf("round-tripped pixels differ:\n got  %v\n want %v", out.Pixels, pixels)
	}
}

func TestQNTExtractTruncated(t *testing.T) {
	if _, err := qntExtract([]byte("QNT\x00short")); err == nil {
		t.Fatal("expected error for truncated QNT header")
	}
}
