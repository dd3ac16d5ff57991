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

package fnl

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/buffer"
)

func TestCharIndexRoundTripASCII(t *testing.T) {
	for c := uint16(0x20); c < 0x7f; c++ {
		idx := CharToIndex(c)
		if got := IndexToChar(idx); got != c {
			t.Errorf("CharToIndex(%#x) -> %d -> IndexToChar = %#x, want %#x", c, idx, got, c)
		}
	}
}

func TestCharIndexRoundTripHalfWidthKana(t *testing.T) {
	for c := uint16(0xa1); c < 0xe0; c++ {
		idx := CharToIndex(c)
		if got := IndexToChar(idx); got != c {
			t.Errorf("CharToIndex(%#x) -> %d -> IndexToChar = %#x, want %#x", c, idx, got, c)
		}
	}
}

func TestCharIndexRoundTripTwoByte(t *testing.T) {
	cases := []uint16{0x8140, 0x889f, 0x9ffc, 0xe040, 0xfc4c}
	for _, c := range cases {
		idx := CharToIndex(c)
		if got := IndexToChar(idx); got != c {
			t.Errorf("CharToIndex(%#x) -> %d -> IndexToChar = %#x, want %#x", c, idx, got, c)
		}
	}
}

func TestCharToIndexRejectsInvalidLeadByte(t *testing.T) {
	if idx := CharToIndex(0x8040); idx != 0 {
		t.Errorf("CharToIndex(0x8040) = %d, want 0 (invalid second byte)", idx)
	}
	if idx := CharToIndex(0xa040); idx != 0 {
		t.Errorf("CharToIndex(0xa040) = %d, want 0 (invalid lead byte range)", idx)
	}
}

// memReaderAt adapts a byte slice to io.ReaderAt for Open/GlyphData.
type memReaderAt []byte

func (m memReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m)) {
		return 0, bytes.ErrTooLarge
	}
	n := copy(p, m[off:])
	return n, nil
}

func compressBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}

func buildFNL(t *testing.T, glyphData []byte) []byte {
	t.Helper()
	compressed := compressBytes(t, glyphData)

	// index: nr_fonts=1, nr_faces=1, height=2, uk=0, nr_glyphs=1,
	// glyph: real_width, data_pos, data_compsize
	index := buffer.NewWriter()
	index.WriteU32(1) // nr_fonts
	index.WriteU32(1) // nr_faces
	index.WriteU32(2) // height
	index.WriteU32(0) // uk
	index.WriteU32(1) // nr_glyphs

	const headerSz = 16
	dataPos := headerSz + 0 // filled in after index size known

	glyphPlaceholder := index.Index()
	index.WriteU16(8) // real_width
	index.WriteU32(0) // data_pos, patched below
	index.WriteU32(uint32(len(compressed)))

	indexBytes := index.Bytes()
	idxSize := uint32(len(indexBytes))
	dataPos = headerSz + int(idxSize)
	// patch data_pos (right after real_width's 2 bytes)
	patch := buffer.NewWriter()
	patch.WriteBytes(indexBytes)
	patch.WriteI32At(glyphPlaceholder+2, int32(dataPos))
	indexBytes = patch.Bytes()

	out := buffer.NewWriter()
	out.WriteBytes([]byte("FNA\x00"))
	out.WriteU32(0) // unknown
	out.WriteU32(uint32(dataPos + len(compressed)))
	out.WriteU32(idxSize)
	out.WriteBytes(indexBytes)
	out.WriteBytes(compressed)
	return out.Bytes()
}

func TestOpenAndGlyphData(t *testing.T) {
	glyph := bytes.Repeat([]byte{0xff}, 4)
	raw := buildFNL(t, glyph)

	f, err := Open(memReaderAt(raw))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(f.Fonts) != 1 || len(f.Fonts[0].Faces) != 1 {
		t.Fatalf("Fonts = %+v", f.Fonts)
	}
	face := &f.Fonts[0].Faces[0]
	if face.Height != 2 || len(face.Glyphs) != 1 {
		t.Fatalf("face = %+v", face)
	}

	g := face.GetGlyph(0x41) // 'A'
	data, err := f.GlyphData(g)
	if err != nil {
		t.Fatalf("GlyphData: %v", err)
	}
	if !bytes.Equal(data, glyph) {
		t.Fatalf("GlyphData = %v, want %v", data, glyph)
	}
}

func TestOpenRejectsBadMagic(t *testing.T) {
	if _, err := Open(memReaderAt([]byte("not an fnl file at all!!"))); err == nil {
		t.Fatal("Open: want error on bad magic")
	}
}
