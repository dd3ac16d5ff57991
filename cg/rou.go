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

	"github.com/nunuhara/system4/ferr"
)

const rouHeaderSize = 0x44

func rouCheckFormat(data []byte) bool {
	return len(data) >= 4 && bytes.Equal(data[:4], []byte("ROU\x00"))
}

func rouGetMetrics(data []byte) (Metrics, error) {
	if len(data) < rouHeaderSize {
		return Metrics{}, ferr.New(ferr.OutOfBounds, "rou", "header truncated")
	}
	w := int(leU32(data, 0x14))
	h := int(leU32(data, 0x18))
	hasAlpha := leU32(data, 0x28) > 0
	pitch := 3
	if hasAlpha {
		pitch = 4
	}
	return Metrics{
		W: w, H: h,
		BPP:        int(leU32(data, 0x1c)),
		HasPixel:   true,
		HasAlpha:   hasAlpha,
		PixelPitch: w * pitch,
		AlphaPitch: 1,
	}, nil
}

// rouExtract decodes a flat, uncompressed ROU bitmap: a fixed header
// followed by an optional BGR pixel plane and an optional separate
// alpha plane, matching whichever combination the header declares.
func rouExtract(data []byte) (*CG, error) {
	m, err := rouGetMetrics(data)
	if err != nil {
		return nil, err
	}
	headerSize := int(leU32(data, 8))
	pixelsSize := int(leU32(data, 0x24))
	alphaSize := int(leU32(data, 0x28))

	if len(data) != headerSize+pixelsSize+alphaSize {
		return nil, ferr.New(ferr.Invalid, "rou", "size does not match expected size")
	}
	if pixelsSize != 0 && pixelsSize != m.W*m.H*3 {
		return nil, ferr.New(ferr.Invalid, "rou", "unexpected pixel plane size")
	}
	if alphaSize != 0 && alphaSize != m.W*m.H {
		return nil, ferr.New(ferr.Invalid, "rou", "unexpected alpha plane size")
	}
	if pixelsSize == 0 && alphaSize == 0 {
		return nil, ferr.New(ferr.Invalid, "rou", "no pixel or alpha data present")
	}

	body := data[headerSize:]
	rgba := make([]byte, m.W*m.H*4)
	switch {
	case alphaSize == 0:
		for i := 0; i < m.W*m.H; i++ {
			b, g, r := body[i*3], body[i*3+1], body[i*3+2]
			rgba[i*4+0], rgba[i*4+1], rgba[i*4+2], rgba[i*4+3] = r, g, b, 0xff
		}
	case pixelsSize == 0:
		for i := 0; i < m.W*m.H; i++ {
			rgba[i*4+3] = body[i]
		}
	default:
		alpha := body[pixelsSize:]
		for i := 0; i < m.W*m.H; i++ {
			b, g, r := body[i*3], body[i*3+1], body[i*3+2]
			rgba[i*4+0], rgba[i*4+1], rgba[i*4+2], rgba[i*4+3] = r, g, b, alpha[i]
		}
	}

	return &CG{Type: TypeROU, Metrics: m, Pixels: rgba}, nil
}
