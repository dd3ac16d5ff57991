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
	"image/png"

	"github.com/nunuhara/system4/ferr"
)

var pngMagic = []byte{137, 80, 78, 71, 13, 10, 26, 10}

func pngCheckFormat(data []byte) bool {
	return len(data) >= 8 && bytes.Equal(data[:8], pngMagic)
}

func pngGetMetrics(data []byte) (Metrics, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Metrics{}, ferr.Wrap(ferr.Invalid, "png", "header", err)
	}
	return Metrics{
		W: cfg.Width, H: cfg.Height,
		BPP:        32,
		HasPixel:   true,
		HasAlpha:   true,
		PixelPitch: cfg.Width * 4,
		AlphaPitch: 1,
	}, nil
}

func pngExtract(data []byte) (*CG, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ferr.Wrap(ferr.Invalid, "png", "decode", err)
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return &CG{
		Type: TypePNG,
		Metrics: Metrics{
			W: b.Dx(), H: b.Dy(),
			BPP:        32,
			HasPixel:   true,
			HasAlpha:   true,
			PixelPitch: b.Dx() * 4,
			AlphaPitch: 1,
		},
		Pixels: rgba.Pix,
	}, nil
}

func pngWrite(cg *CG, dst *bytes.Buffer) error {
	img := &image.RGBA{
		Pix:    cg.Pixels,
		Stride: cg.Metrics.W * 4,
		Rect:   image.Rect(0, 0, cg.Metrics.W, cg.Metrics.H),
	}
	if err := png.Encode(dst, img); err != nil {
		return ferr.Wrap(ferr.Invalid, "png", "encode", err)
	}
	return nil
}
