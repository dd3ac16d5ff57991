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

// Package fnl decodes System 4 "FNL" font containers: a nested font/face
// index plus per-glyph zlib-compressed bitmaps, demand-loaded from the
// backing file by byte offset so opening a font does not pull every
// glyph bitmap into memory.
package fnl

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/buffer"
	"github.com/nunuhara/system4/ferr"
)

// Glyph is one codepoint's bitmap descriptor. DataPos is zero for a
// codepoint with no glyph (GetGlyph falls back to the space glyph in
// that case, matching the reference font renderer).
type Glyph struct {
	Height       uint32
	RealWidth    uint16
	DataPos      uint32
	DataCompSize uint32
}

// Face is one pixel size of a Font: a fixed glyph height plus the glyph
// table indexed by Shift-JIS code-point position (see CharToIndex).
type Face struct {
	Height  uint32
	Unknown uint32
	Glyphs  []Glyph
}

// Font is a named collection of Faces (point sizes) sharing a glyph
// layout.
type Font struct {
	Faces []Face
}

// FNL is an opened font container. Glyph bitmaps are read on demand via
// r with GlyphData; the index (font/face/glyph metadata) is fully parsed
// up front.
type FNL struct {
	r         io.ReaderAt
	Unknown   uint32
	FileSize  uint32
	IndexSize uint32
	Fonts     []Font
}

const headerSize = 16

// Open parses the FNL header and index from r, which must also support
// reads at arbitrary offsets for GlyphData to demand-load bitmaps later.
func Open(r io.ReaderAt) (*FNL, error) {
	header := make([]byte, headerSize)
	if _, err := r.ReadAt(header, 0); err != nil {
		return nil, ferr.Wrap(ferr.FileError, "fnl", "read header", err)
	}
	hb := buffer.NewReader(header)
	ok, _ := hb.CheckBytes([]byte("FNA\x00"))
	if !ok {
		return nil, ferr.New(ferr.InvalidSignature, "fnl", "not an FNL font file")
	}
	uk, err := hb.ReadU32()
	if err != nil {
		return nil, ferr.Wrap(ferr.OutOfBounds, "fnl", "header", err)
	}
	fileSize, err := hb.ReadU32()
	if err != nil {
		return nil, ferr.Wrap(ferr.OutOfBounds, "fnl", "header", err)
	}
	indexSize, err := hb.ReadU32()
	if err != nil {
		return nil, ferr.Wrap(ferr.OutOfBounds, "fnl", "header", err)
	}

	indexBuf := make([]byte, indexSize)
	if _, err := r.ReadAt(indexBuf, headerSize); err != nil {
		return nil, ferr.Wrap(ferr.FileError, "fnl", "read index", err)
	}

	fnl := &FNL{r: r, Unknown: uk, FileSize: fileSize, IndexSize: indexSize}
	ib := buffer.NewReader(indexBuf)
	nrFonts, err := ib.ReadU32()
	if err != nil {
		return nil, ferr.Wrap(ferr.OutOfBounds, "fnl", "font count", err)
	}
	fnl.Fonts = make([]Font, nrFonts)
	for i := range fnl.Fonts {
		font, err := readFont(ib)
		if err != nil {
			return nil, err
		}
		fnl.Fonts[i] = font
	}
	return fnl, nil
}

func readFont(b *buffer.Buffer) (Font, error) {
	var font Font
	nrFaces, err := b.ReadU32()
	if err != nil {
		return font, ferr.Wrap(ferr.OutOfBounds, "fnl", "face count", err)
	}
	font.Faces = make([]Face, nrFaces)
	for i := range font.Faces {
		face, err := readFace(b)
		if err != nil {
			return font, err
		}
		font.Faces[i] = face
	}
	return font, nil
}

func readFace(b *buffer.Buffer) (Face, error) {
	var face Face
	height, err := b.ReadU32()
	if err != nil {
		return face, ferr.Wrap(ferr.OutOfBounds, "fnl", "face height", err)
	}
	uk, err := b.ReadU32()
	if err != nil {
		return face, ferr.Wrap(ferr.OutOfBounds, "fnl", "face", err)
	}
	nrGlyphs, err := b.ReadU32()
	if err != nil {
		return face, ferr.Wrap(ferr.OutOfBounds, "fnl", "glyph count", err)
	}
	face.Height = height
	face.Unknown = uk
	face.Glyphs = make([]Glyph, nrGlyphs)
	for i := range face.Glyphs {
		g, err := readGlyph(b, height)
		if err != nil {
			return face, err
		}
		face.Glyphs[i] = g
	}
	return face, nil
}

func readGlyph(b *buffer.Buffer, height uint32) (Glyph, error) {
	var g Glyph
	g.Height = height
	w, err := b.ReadU16()
	if err != nil {
		return g, ferr.Wrap(ferr.OutOfBounds, "fnl", "glyph width", err)
	}
	pos, err := b.ReadU32()
	if err != nil {
		return g, ferr.Wrap(ferr.OutOfBounds, "fnl", "glyph data offset", err)
	}
	size, err := b.ReadU32()
	if err != nil {
		return g, ferr.Wrap(ferr.OutOfBounds, "fnl", "glyph data size", err)
	}
	g.RealWidth = w
	g.DataPos = pos
	g.DataCompSize = size
	return g, nil
}

// GetGlyph returns the glyph for code in face, falling back to glyph
// index 0 (conventionally the space character) when code has no glyph
// of its own or maps out of range.
func (f *Face) GetGlyph(code uint16) *Glyph {
	index := CharToIndex(code)
	if index >= len(f.Glyphs) {
		index = 0
	}
	if f.Glyphs[index].DataPos == 0 {
		index = 0
	}
	return &f.Glyphs[index]
}

// GlyphData demand-loads and decompresses g's bitmap from the file fnl
// was opened on.
func (fnl *FNL) GlyphData(g *Glyph) ([]byte, error) {
	if g.DataPos == 0 {
		return nil, nil
	}
	compressed := make([]byte, g.DataCompSize)
	if _, err := fnl.r.ReadAt(compressed, int64(g.DataPos)); err != nil {
		return nil, ferr.Wrap(ferr.FileError, "fnl", "read glyph data", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "fnl", "zlib header", err)
	}
	defer zr.Close()

	// The container records no exact decompressed size; height*height*4
	// is an upper bound on a square RGBA glyph bitmap, matching the
	// reference implementation's allocation.
	bound := int64(g.Height) * int64(g.Height) * 4
	data, err := io.ReadAll(io.LimitReader(zr, bound))
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "fnl", "zlib payload", err)
	}
	return data, nil
}

// CharToIndex maps a Shift-JIS code point to its glyph table index. FNL
// glyphs are indexed in ascending Shift-JIS code-point order, starting
// at the ASCII space character (0x20).
func CharToIndex(code uint16) int {
	if code < 0x20 {
		return 0
	}
	if code < 0x7f {
		return int(code) - 0x20
	}
	if code < 0xa1 {
		return 0
	}
	if code < 0xe0 {
		return int(code) - 0x42
	}

	fst := byte(code >> 8)
	snd := byte(code & 0xFF)
	if snd < 0x40 || snd == 0x7f || snd > 0xfc {
		return 0
	}

	sndIndex := int(snd)
	if snd > 0x7f {
		sndIndex -= 0x40 + 1
	} else {
		sndIndex -= 0x40
	}

	var fstIndex int
	switch {
	case fst < 0x81:
		return 0
	case fst < 0xa0:
		fstIndex = int(fst) - 0x81
	case fst < 0xe0:
		return 0
	case fst < 0xfd:
		fstIndex = int(fst-0xe0) + 31
	default:
		return 0
	}

	return 158 + fstIndex*188 + sndIndex
}

// IndexToChar is the inverse of CharToIndex.
func IndexToChar(index int) uint16 {
	if index < 95 {
		return uint16(index + 0x20)
	}
	if index < 158 {
		return uint16(index-95) + 0xA1
	}

	index -= 158

	// 188  = number of code points encoded per first-byte in Shift-JIS
	// 0x81 = first valid Shift-JIS first-byte
	// 0xa0 = beginning of invalid first-bytes
	// 64   = number of invalid first-bytes beginning at 0xa0 (0xa0-0xdf)
	fst := uint16(0x81 + index/188)
	if fst >= 0xa0 {
		fst += 64
	}

	// 0x40 = first valid Shift-JIS second-byte
	// 0x7f = invalid as a second-byte
	snd := uint16(0x40 + index%188)
	if snd >= 0x7f {
		snd++
	}

	return (fst << 8) | snd
}
