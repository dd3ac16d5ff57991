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

	"golang.org/x/image/webp"

	"github.com/nunuhara/system4/archive"
	"github.com/nunuhara/system4/ferr"
)

func webpCheckFormat(data []byte) bool {
	return len(data) >= 12 &&
		bytes.Equal(data[0:4], []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WEBP"))
}

func webpGetMetrics(data []byte) (Metrics, error) {
	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Metrics{}, ferr.Wrap(ferr.Invalid, "webp", "header", err)
	}
	return Metrics{
		W: cfg.Width, H: cfg.Height,
		BPP:        24,
		HasPixel:   true,
		HasAlpha:   true,
		PixelPitch: cfg.Width * 3,
		AlphaPitch: 1,
	}, nil
}

// webpBaseCG extracts the archive entry number of the "OVER"-trailer
// base CG some WebP CGs reference, following the reference's
// scan-from-the-end heuristic for the two trailer layouts it supports.
// Returns -1 if no trailer is present.
func webpBaseCG(data []byte) int {
	var tail []byte
	switch {
	case len(data) >= 20 && bytes.Equal(data[len(data)-12:len(data)-8], []byte("OVER")):
		tail = data[len(data)-12:]
	case len(data) >= 32 && bytes.Equal(data[len(data)-24:len(data)-20], []byte("OVER")):
		tail = data[len(data)-24:]
	default:
		return -1
	}
	return int(int32(leU32(tail, 8)))
}

// webpExtract decodes a WebP CG. If ar is non-nil and the file carries
// an "OVER" trailer naming a base CG, magenta (255,0,255) pixels are
// treated as transparent holes and filled in from the base image,
// matching the reference's chroma-key compositing.
func webpExtract(data []byte, ar archive.Archive) (*CG, error) {
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ferr.Wrap(ferr.Invalid, "webp", "decode", err)
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	cg := &CG{
		Type: TypeWebP,
		Metrics: Metrics{
			W: b.Dx(), H: b.Dy(),
			BPP:        24,
			HasPixel:   true,
			HasAlpha:   true,
			PixelPitch: b.Dx() * 3,
			AlphaPitch: 1,
		},
		Pixels: rgba.Pix,
	}

	if ar == nil {
		return cg, nil
	}
	baseNo := webpBaseCG(data)
	if baseNo < 0 {
		return cg, nil
	}
	base, err := LoadEntry(ar, baseNo-1)
	if err != nil || base == nil {
		return cg, nil
	}
	if base.Metrics.W != cg.Metrics.W || base.Metrics.H != cg.Metrics.H {
		return cg, nil
	}

	w, h := cg.Metrics.W, cg.Metrics.H
	for row := 0; row < h; row++ {
		for x := 0; x < w; x++ {
			p := w*row*4 + x*4
			if cg.Pixels[p] == 255 && cg.Pixels[p+1] == 0 && cg.Pixels[p+2] == 255 {
				copy(cg.Pixels[p:p+4], base.Pixels[p:p+4])
			}
		}
	}
	return cg, nil
}
