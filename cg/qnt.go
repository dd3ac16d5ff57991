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
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/ferr"
)

// qntHeader is QNT's on-disk header. Two layouts exist: the original
// (rsv0 == 0 at offset 4) packs hdr_size implicitly as 48, while the
// revised layout (rsv0 != 0) carries an explicit hdr_size field and
// shifts every field that follows it by 4 bytes.
type qntHeader struct {
	hdrSize             uint32
	x0, y0              uint32
	width, height       uint32
	bpp                 uint32
	rsv                 uint32
	pixelSize, alphaSize uint32
}

func qntCheckFormat(data []byte) bool {
	return len(data) >= 3 && data[0] == 'Q' && data[1] == 'N' && data[2] == 'T'
}

func qntReadHeader(data []byte) (qntHeader, error) {
	if len(data) < 44 {
		return qntHeader{}, ferr.New(ferr.OutOfBounds, "qnt", "header truncated")
	}
	var h qntHeader
	rsv0 := leU32(data, 4)
	if rsv0 == 0 {
		if len(data) < 40 {
			return qntHeader{}, ferr.New(ferr.OutOfBounds, "qnt", "header truncated")
		}
		h.hdrSize = 48
		h.x0 = leU32(data, 8)
		h.y0 = leU32(data, 12)
		h.width = leU32(data, 16)
		h.height = leU32(data, 20)
		h.bpp = leU32(data, 24)
		h.rsv = leU32(data, 28)
		h.pixelSize = leU32(data, 32)
		h.alphaSize = leU32(data, 36)
	} else {
		h.hdrSize = leU32(data, 8)
		h.x0 = leU32(data, 12)
		h.y0 = leU32(data, 16)
		h.width = leU32(data, 20)
		h.height = leU32(data, 24)
		h.bpp = leU32(data, 28)
		h.rsv = leU32(data, 32)
		h.pixelSize = leU32(data, 36)
		h.alphaSize = leU32(data, 40)
	}
	return h, nil
}

func qntInitMetrics(h qntHeader) Metrics {
	return Metrics{
		W:          int(h.width),
		H:          int(h.height),
		BPP:        int(h.bpp),
		HasPixel:   h.pixelSize > 0,
		HasAlpha:   h.alphaSize > 0,
		PixelPitch: int(h.width) * int(h.bpp) / 8,
		AlphaPitch: 1,
	}
}

func qntGetMetrics(data []byte) (Metrics, error) {
	h, err := qntReadHeader(data)
	if err != nil {
		return Metrics{}, err
	}
	return qntInitMetrics(h), nil
}

func zlibInflate(src []byte, sizeHint int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "qnt", "zlib header", err)
	}
	defer zr.Close()
	buf := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if _, err := io.Copy(buf, zr); err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "qnt", "zlib payload", err)
	}
	return buf.Bytes(), nil
}

// qntExtractPixel decodes the pixel plane: a zlib stream of three
// bit-planes (B, G, R, innermost-first), each itself delta-coded
// across a 2x2 block raster and then horizontally/vertically
// predicted, inverted here in the same order the reference applies it.
func qntExtractPixel(h qntHeader, b []byte) ([]byte, error) {
	w, hh := int(h.width), int(h.height)
	raw, err := zlibInflate(b, (w+1)*(hh+1)*3+5*1024)
	if err != nil {
		return nil, err
	}

	pic := make([]byte, w*hh*3)
	j := 0
	for i := 2; i >= 0; i-- {
		y := 0
		for ; y < hh-1; y += 2 {
			x := 0
			for ; x < w-1; x += 2 {
				if j+4 > len(raw) {
					return nil, ferr.New(ferr.OutOfBounds, "qnt", "pixel plane truncated")
				}
				pic[(y*w+x)*3+i] = raw[j]
				pic[((y+1)*w+x)*3+i] = raw[j+1]
				pic[(y*w+x+1)*3+i] = raw[j+2]
				pic[((y+1)*w+x+1)*3+i] = raw[j+3]
				j += 4
			}
			if x != w {
				if j+4 > len(raw) {
					return nil, ferr.New(ferr.OutOfBounds, "qnt", "pixel plane truncated")
				}
				pic[(y*w+x)*3+i] = raw[j]
				pic[((y+1)*w+x)*3+i] = raw[j+1]
				j += 4
			}
		}
		if y != hh {
			x := 0
			for ; x < w-1; x += 2 {
				if j+4 > len(raw) {
					return nil, ferr.New(ferr.OutOfBounds, "qnt", "pixel plane truncated")
				}
				pic[(y*w+x)*3+i] = raw[j]
				pic[(y*w+x+1)*3+i] = raw[j+2]
				j += 4
			}
			if x != w {
				if j+4 > len(raw) {
					return nil, ferr.New(ferr.OutOfBounds, "qnt", "pixel plane truncated")
				}
				pic[(y*w+x)*3+i] = raw[j]
				j += 4
			}
		}
	}

	if w > 1 {
		for x := 1; x < w; x++ {
			for c := 0; c < 3; c++ {
				pic[x*3+c] = pic[(x-1)*3+c] - pic[x*3+c]
			}
		}
	}
	if hh > 1 {
		for y := 1; y < hh; y++ {
			for c := 0; c < 3; c++ {
				pic[(y*w)*3+c] = pic[((y-1)*w)*3+c] - pic[(y*w)*3+c]
			}
			for x := 1; x < w; x++ {
				for c := 0; c < 3; c++ {
					py := int(pic[((y-1)*w+x)*3+c])
					px := int(pic[(y*w+x-1)*3+c])
					pic[(y*w+x)*3+c] = byte((py+px)>>1) - pic[(y*w+x)*3+c]
				}
			}
		}
	}
	return pic, nil
}

// qntExtractAlpha decodes the single-plane alpha channel, horizontally
// and vertically delta-coded the same way as the pixel plane.
func qntExtractAlpha(h qntHeader, b []byte) ([]byte, error) {
	w, hh := int(h.width), int(h.height)
	raw, err := zlibInflate(b, (w+1)*(hh+1)+5*1024)
	if err != nil {
		return nil, err
	}
	pic := make([]byte, w*hh)

	i := 1
	if w > 1 {
		pic[0] = raw[0]
		for x := 1; x < w; x++ {
			if i >= len(raw) {
				return nil, ferr.New(ferr.OutOfBounds, "qnt", "alpha plane truncated")
			}
			pic[x] = pic[x-1] - raw[i]
			i++
		}
		if w%2 != 0 {
			i++
		}
	}
	if hh > 1 {
		for y := 1; y < hh; y++ {
			if i >= len(raw) {
				return nil, ferr.New(ferr.OutOfBounds, "qnt", "alpha plane truncated")
			}
			pic[y*w] = pic[(y-1)*w] - raw[i]
			i++
			for x := 1; x < w; x++ {
				if i >= len(raw) {
					return nil, ferr.New(ferr.OutOfBounds, "qnt", "alpha plane truncated")
				}
				pax := int(pic[y*w+x-1])
				pay := int(pic[(y-1)*w+x])
				pic[y*w+x] = byte((pax+pay)>>1) - raw[i]
				i++
			}
			if w%2 != 0 {
				i++
			}
		}
	}
	return pic, nil
}

func qntExtract(data []byte) (*CG, error) {
	h, err := qntReadHeader(data)
	if err != nil {
		return nil, err
	}
	if h.bpp != 24 {
		return nil, ferr.New(ferr.UnsupportedFormat, "qnt", "unsupported bits-per-pixel")
	}
	w, hh := int(h.width), int(h.height)

	var pixels []byte
	if h.pixelSize > 0 {
		if uint64(h.hdrSize)+uint64(h.pixelSize) > uint64(len(data)) {
			return nil, ferr.New(ferr.OutOfBounds, "qnt", "pixel plane extends past end of data")
		}
		pixels, err = qntExtractPixel(h, data[h.hdrSize:h.hdrSize+h.pixelSize])
		if err != nil {
			return nil, err
		}
	} else {
		pixels = make([]byte, w*hh*3)
	}

	var alpha []byte
	if h.alphaSize > 0 {
		off := uint64(h.hdrSize) + uint64(h.pixelSize)
		if off+uint64(h.alphaSize) > uint64(len(data)) {
			return nil, ferr.New(ferr.OutOfBounds, "qnt", "alpha plane extends past end of data")
		}
		alpha, err = qntExtractAlpha(h, data[off:off+uint64(h.alphaSize)])
		if err != nil {
			return nil, err
		}
	} else {
		// Some CGs don't display correctly without a fully-opaque alpha
		// channel synthesized here; matches the reference's workaround.
		alpha = bytes.Repeat([]byte{0xff}, w*hh)
	}

	rgba := make([]byte, w*hh*4)
	for p := 0; p < w*hh; p++ {
		rgba[p*4+0] = pixels[p*3+0]
		rgba[p*4+1] = pixels[p*3+1]
		rgba[p*4+2] = pixels[p*3+2]
		rgba[p*4+3] = alpha[p]
	}

	return &CG{Type: TypeQNT, Metrics: qntInitMetrics(h), Pixels: rgba}, nil
}

// qntWrite encodes cg as a QNT file, following xsys35c's encoder: the
// image is padded to even width/height, per-channel delta-filtered,
// then its three color planes are zlib-compressed together in the
// 2x2-block interleaving the decoder expects, and the alpha plane is
// zlib-compressed separately in row order.
func qntWrite(cg *CG, dst *bytes.Buffer) error {
	w := (cg.Metrics.W + 1) &^ 1
	h := (cg.Metrics.H + 1) &^ 1
	rows := make([][]byte, h)
	buf := make([]byte, h*w*4)
	for y := 0; y < h; y++ {
		rows[y] = buf[y*w*4 : (y+1)*w*4]
	}
	for y := 0; y < cg.Metrics.H; y++ {
		copy(rows[y], cg.Pixels[y*cg.Metrics.W*4:(y+1)*cg.Metrics.W*4])
	}

	qntFilter(rows, cg.Metrics.W, cg.Metrics.H)
	pixelData, err := qntEncodePlanes(rows, w, h)
	if err != nil {
		return err
	}
	alphaData, err := qntEncodeAlpha(rows, w, h)
	if err != nil {
		return err
	}

	const hdrSize = 52
	var hdr [hdrSize]byte
	copy(hdr[0:4], "QNT\x00")
	putU32(hdr[4:], 0, 1)
	putU32(hdr[8:], 0, hdrSize)
	putU32(hdr[12:], 0, 0)
	putU32(hdr[16:], 0, 0)
	putU32(hdr[20:], 0, uint32(cg.Metrics.W))
	putU32(hdr[24:], 0, uint32(cg.Metrics.H))
	putU32(hdr[28:], 0, 24)
	putU32(hdr[32:], 0, 1)
	putU32(hdr[36:], 0, uint32(len(pixelData)))
	putU32(hdr[40:], 0, uint32(len(alphaData)))

	dst.Write(hdr[:])
	dst.Write(pixelData)
	dst.Write(alphaData)
	return nil
}

// qntFilter applies QNT's delta filter in place: every pixel is
// replaced by the average of its upper and left neighbors minus its
// original value (row/column zero falls back to a 1-D predictor).
func qntFilter(rows [][]byte, width, height int) {
	for y := height - 1; y > 0; y-- {
		for x := width - 1; x > 0; x-- {
			for c := 0; c < 4; c++ {
				up := int(rows[y-1][x*4+c])
				left := int(rows[y][(x-1)*4+c])
				rows[y][x*4+c] = byte((up+left)>>1) - rows[y][x*4+c]
			}
		}
		for c := 0; c < 4; c++ {
			rows[y][c] = rows[y-1][c] - rows[y][c]
		}
	}
	for x := width - 1; x > 0; x-- {
		for c := 0; c < 4; c++ {
			rows[0][x*4+c] = rows[0][(x-1)*4+c] - rows[0][x*4+c]
		}
	}
}

func qntEncodePlanes(rows [][]byte, width, height int) ([]byte, error) {
	buf := make([]byte, 0, width*height*3)
	for c := 2; c >= 0; c-- {
		for y := 0; y < height; y += 2 {
			for x := 0; x < width; x += 2 {
				buf = append(buf, rows[y][x*4+c], rows[y+1][x*4+c], rows[y][(x+1)*4+c], rows[y+1][(x+1)*4+c])
			}
		}
	}
	return zlibDeflate(buf)
}

func qntEncodeAlpha(rows [][]byte, width, height int) ([]byte, error) {
	buf := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf[y*width+x] = rows[y][x*4+3]
		}
	}
	return zlibDeflate(buf)
}

func zlibDeflate(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "qnt", "zlib writer init", err)
	}
	if _, err := zw.Write(src); err != nil {
		zw.Close()
		return nil, ferr.Wrap(ferr.CompressionError, "qnt", "zlib compress", err)
	}
	if err := zw.Close(); err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "qnt", "zlib close", err)
	}
	return buf.Bytes(), nil
}

func leU32(b []byte, off int) uint32 {
	return uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16 | uint32(b[off+3])<<24
}

func putU32(b []byte, off int, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
}
