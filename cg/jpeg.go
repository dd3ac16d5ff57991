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
	"image/jpeg"

	"github.com/nunuhara/system4/ferr"
)

func jpegCheckFormat(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xff && data[1] == 0xd8
}

func jpegDecodeConfig(data []byte) (image.Config, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, ferr.Wrap(ferr.Invalid, "jpeg", "header", err)
	}
	return cfg, nil
}

func jpegGetMetrics(data []byte) (Metrics, error) {
	cfg, err := jpegDecodeConfig(data)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		W: cfg.Width, H: cfg.Height,
		BPP:        24,
		HasPixel:   true,
		HasAlpha:   false,
		PixelPitch: cfg.Width * 3,
		AlphaPitch: 1,
	}, nil
}

// jpegExtract decodes a bare JPEG CG, filling the alpha channel with
// fully opaque values; the format carries no alpha of its own (AJP
// layers its own encrypted mask alongside an embedded JPEG instead).
func jpegExtract(data []byte) (*CG, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ferr.Wrap(ferr.Invalid, "jpeg", "decode", err)
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	for p := 0; p < b.Dx()*b.Dy(); p++ {
		rgba.Pix[p*4+3] = 0xff
	}
	return &CG{
		Type: TypeJPEG,
		Metrics: Metrics{
			W: b.Dx(), H: b.Dy(),
			BPP:        24,
			HasPixel:   true,
			PixelPitch: b.Dx() * 3,
			AlphaPitch: 1,
		},
		Pixels: rgba.Pix,
	}, nil
}
