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

	"golang.org/x/image/webp"

	"github.com/nunuhara/system4/ferr"
)

var ajpKey = [16]byte{
	0x5d, 0x91, 0xae, 0x87,
	0x4a, 0x56, 0x41, 0xcd,
	0x83, 0xec, 0x4c, 0x92,
	0xb5, 0xcb, 0x16, 0x34,
}

type ajpHeader struct {
	width, height     uint32
	jpegOff, jpegSize uint32
	maskOff, maskSize uint32
}

func ajpCheckFormat(data []byte) bool {
	return len(data) >= 4 && data[0] == 'A' && data[1] == 'J' && data[2] == 'P' && data[3] == 0
}

func ajpDecrypt(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	for i := 0; i < 16 && i < len(out); i++ {
		out[i] ^= ajpKey[i]
	}
	return out
}

func ajpReadHeader(data []byte) (ajpHeader, error) {
	if len(data) < 36 {
		return ajpHeader{}, ferr.New(ferr.OutOfBounds, "ajp", "header truncated")
	}
	return ajpHeader{
		width:    leU32(data, 12),
		height:   leU32(data, 16),
		jpegOff:  leU32(data, 20),
		jpegSize: leU32(data, 24),
		maskOff:  leU32(data, 28),
		maskSize: leU32(data, 32),
	}, nil
}

// ajpMask resolves an AJP's alpha mask, which is stored in one of
// three shapes depending on the title: a WebP-encoded RGBA image (only
// the alpha channel is kept), a raw zlib-compressed plane, or (in the
// reference implementation) a PMS8 mask. PMS8 has no grounding in this
// module's source corpus, so a PMS8-tagged mask is reported as
// unsupported rather than guessed at.
func ajpMask(maskData []byte, width, height uint32) ([]byte, error) {
	if len(maskData) == 0 {
		return nil, nil
	}
	switch {
	case pms8CheckFormat(maskData):
		return nil, ferr.New(ferr.UnsupportedFormat, "ajp", "PMS8 mask not implemented")
	case webpCheckFormat(maskData):
		img, err := webp.Decode(bytes.NewReader(maskData))
		if err != nil {
			return nil, ferr.Wrap(ferr.Invalid, "ajp", "webp mask", err)
		}
		b := img.Bounds()
		if uint32(b.Dx()) != width || uint32(b.Dy()) != height {
			return nil, ferr.New(ferr.Invalid, "ajp", "unexpected AJP mask size")
		}
		mask := make([]byte, width*height)
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				mask[y*b.Dx()+x] = byte(a >> 8)
			}
		}
		return mask, nil
	case maskData[0] == 0x78:
		mask, err := zlibInflate(maskData, int(width*height))
		if err != nil {
			return nil, err
		}
		if len(mask) != int(width*height) {
			return nil, ferr.New(ferr.Invalid, "ajp", "unexpected AJP mask size")
		}
		return mask, nil
	default:
		return nil, ferr.New(ferr.UnsupportedFormat, "ajp", "unsupported AJP mask format")
	}
}

func ajpExtract(data []byte) (*CG, error) {
	hdr, err := ajpReadHeader(data)
	if err != nil {
		return nil, err
	}
	m := Metrics{
		W: int(hdr.width), H: int(hdr.height),
		BPP:        24,
		HasPixel:   hdr.jpegSize > 0,
		HasAlpha:   hdr.maskSize > 0,
		PixelPitch: int(hdr.width) * 3,
		AlphaPitch: 1,
	}

	if uint64(hdr.jpegOff)+uint64(hdr.jpegSize) > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "ajp", "jpeg span invalid")
	}
	if uint64(hdr.maskOff)+uint64(hdr.maskSize) > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "ajp", "mask span invalid")
	}

	jpegData := ajpDecrypt(data[hdr.jpegOff : hdr.jpegOff+hdr.jpegSize])
	img, err := jpeg.Decode(bytes.NewReader(jpegData))
	if err != nil {
		return nil, ferr.Wrap(ferr.Invalid, "ajp", "jpeg decode", err)
	}
	b := img.Bounds()
	if uint32(b.Dx()) != hdr.width {
		return nil, ferr.New(ferr.Invalid, "ajp", "AJP width doesn't match JPEG width")
	}
	if uint32(b.Dy()) != hdr.height {
		return nil, ferr.New(ferr.Invalid, "ajp", "AJP height doesn't match JPEG height")
	}

	var mask []byte
	if hdr.maskSize > 0 {
		maskData := ajpDecrypt(data[hdr.maskOff : hdr.maskOff+hdr.maskSize])
		mask, err = ajpMask(maskData, hdr.width, hdr.height)
		if err != nil {
			return nil, err
		}
	}
	if mask == nil {
		mask = bytes.Repeat([]byte{0xff}, int(hdr.width)*int(hdr.height))
	}

	src := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			src.Set(x, y, img.At(x, y))
		}
	}
	rgba := src.Pix
	for p := 0; p < int(hdr.width)*int(hdr.height); p++ {
		rgba[p*4+3] = mask[p]
	}

	return &CG{Type: TypeAJP, Metrics: m, Pixels: rgba}, nil
}
