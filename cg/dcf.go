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

	"github.com/nunuhara/system4/archive"
	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/sjis"
)

type dcfHeader struct {
	width, height int
	bpp           int
	baseCGName    string
}

func dcfCheckFormat(data []byte) bool {
	return len(data) >= 4 && bytes.Equal(data[:4], []byte("dcf "))
}

// dcfReadHeader parses the 'dcf ' section: fixed geometry fields
// followed by a rotate-obfuscated base CG filename.
func dcfReadHeader(data []byte) (dcfHeader, int, error) {
	if len(data) < 8 || !bytes.Equal(data[:4], []byte("dcf ")) {
		return dcfHeader{}, 0, ferr.New(ferr.Invalid, "dcf", "not a dcf file")
	}
	headerSize := int(int32(leU32(data, 4)))
	if headerSize < 0 || headerSize > 4096 {
		return dcfHeader{}, 0, ferr.New(ferr.Invalid, "dcf", "invalid header size")
	}
	nextPos := 8 + headerSize
	if len(data) < nextPos {
		return dcfHeader{}, 0, ferr.New(ferr.OutOfBounds, "dcf", "header extends past end of data")
	}
	if leU32(data, 8) != 1 {
		return dcfHeader{}, 0, ferr.New(ferr.UnsupportedFormat, "dcf", "unsupported version")
	}
	var h dcfHeader
	h.width = int(leU32(data, 12))
	h.height = int(leU32(data, 16))
	h.bpp = int(leU32(data, 20))
	if h.bpp != 32 {
		return dcfHeader{}, 0, ferr.New(ferr.UnsupportedFormat, "dcf", "unsupported bpp")
	}
	nameLength := int(int32(leU32(data, 24)))
	if nameLength < 0 || nameLength > 2000 || 28+nameLength > len(data) {
		return dcfHeader{}, 0, ferr.New(ferr.Invalid, "dcf", "invalid base CG name length")
	}
	name := make([]byte, nameLength)
	copy(name, data[28:28+nameLength])
	rot := uint(nameLength%7) + 1
	for i, b := range name {
		name[i] = (b << rot) | (b >> (8 - rot))
	}
	utf, err := sjis.ToUTF8(name)
	if err != nil {
		return dcfHeader{}, 0, ferr.Wrap(ferr.Invalid, "dcf", "base CG name encoding", err)
	}
	h.baseCGName = utf
	return h, nextPos, nil
}

// dcfReadDFDL reads the 'dfdl' section, a zlib-compressed chunk map
// (one byte per 16x16 tile: nonzero means "identical to the base CG").
func dcfReadDFDL(data []byte, pos int) ([]byte, int, error) {
	if len(data) < pos+8 || !bytes.Equal(data[pos:pos+4], []byte("dfdl")) {
		return nil, 0, ferr.New(ferr.Invalid, "dcf", "expected dfdl section")
	}
	dfdlSize := int(int32(leU32(data, pos+4)))
	if dfdlSize < 0 || dfdlSize > 10000 || pos+8+dfdlSize > len(data) {
		return nil, 0, ferr.New(ferr.Invalid, "dcf", "invalid dfdl section size")
	}
	nextPos := pos + 8 + dfdlSize
	uncompressedSize := int(int32(leU32(data, pos+8)))
	if uncompressedSize > 40000 || uncompressedSize < 0 {
		return nil, 0, ferr.New(ferr.Invalid, "dcf", "invalid chunk map size")
	}
	chunkMap, err := zlibInflate(data[pos+12:pos+8+dfdlSize], uncompressedSize)
	if err != nil {
		return nil, 0, ferr.Wrap(ferr.CompressionError, "dcf", "chunk map", err)
	}
	return chunkMap, nextPos, nil
}

// dcfReadDCGD reads the 'dcgd' section: the diff CG's raw (still
// format-tagged, usually QNT) bytes.
func dcfReadDCGD(data []byte, pos int) ([]byte, error) {
	if len(data) < pos+8 || !bytes.Equal(data[pos:pos+4], []byte("dcgd")) {
		return nil, ferr.New(ferr.Invalid, "dcf", "expected dcgd section")
	}
	size := int(int32(leU32(data, pos+4)))
	if size < 0 || pos+8+size > len(data) {
		return nil, ferr.New(ferr.Invalid, "dcf", "invalid dcgd section size")
	}
	return data[pos+8 : pos+8+size], nil
}

func dcfGetMetrics(data []byte) (Metrics, error) {
	qnt, err := dcfGetQNT(data)
	if err != nil {
		return Metrics{}, err
	}
	return qntGetMetrics(qnt)
}

// dcfGetQNT locates the QNT payload nested inside a DCF's section
// shell without decoding the chunk map, for callers that only need
// metrics.
func dcfGetQNT(data []byte) ([]byte, error) {
	if len(data) < 4 || !bytes.Equal(data[:4], []byte("dcf ")) {
		return nil, ferr.New(ferr.Invalid, "dcf", "not a dcf file")
	}
	h2 := 8 + int(leU32(data, 4))
	if len(data) < h2+4 || !bytes.Equal(data[h2:h2+4], []byte("dfdl")) {
		return nil, ferr.New(ferr.Invalid, "dcf", "expected dfdl section")
	}
	h3 := h2 + 8 + int(leU32(data, h2+4))
	if len(data) < h3+12 || !bytes.Equal(data[h3:h3+4], []byte("dcgd")) {
		return nil, ferr.New(ferr.Invalid, "dcf", "expected dcgd section")
	}
	if !bytes.Equal(data[h3+8:h3+11], []byte("QNT")) {
		return nil, ferr.New(ferr.Invalid, "dcf", "dcgd payload isn't QNT")
	}
	return data[h3+8:], nil
}

// dcfBlit copies a single w x h rectangle of diff's pixels over base's
// pixels at (x, y).
func dcfBlit(base, diff *CG, x, y, w, h int) {
	stride := base.Metrics.W * 4
	xOff := x * 4
	for row := 0; row < h; row++ {
		off := stride*(row+y) + xOff
		copy(base.Pixels[off:off+w*4], diff.Pixels[off:off+w*4])
	}
}

// dcfApplyDiff overlays diff onto base wherever chunkMap marks a tile
// as changed, then carries any leftover rows/columns (dimensions not a
// multiple of 16) directly from the diff CG.
func dcfApplyDiff(base, diff *CG, chunkMap []byte) error {
	if base.Metrics.W != diff.Metrics.W || base.Metrics.H != diff.Metrics.H {
		return ferr.New(ferr.Invalid, "dcf", "base/diff CG dimensions differ")
	}
	chunksW := base.Metrics.W / 16
	chunksH := base.Metrics.H / 16
	for i := 0; i < len(chunkMap) && i < chunksW*chunksH; i++ {
		if chunkMap[i] != 0 {
			continue
		}
		cx, cy := i%chunksW, i/chunksW
		dcfBlit(base, diff, cx*16, cy*16, 16, 16)
	}
	if rem := base.Metrics.W % 16; rem != 0 {
		dcfBlit(base, diff, chunksW*16, 0, rem, base.Metrics.H)
	}
	if rem := base.Metrics.H % 16; rem != 0 {
		dcfBlit(base, diff, 0, chunksH*16, base.Metrics.W, rem)
	}
	return nil
}

// dcfExtract decodes a DCF image: a diff CG layered onto a base CG
// looked up by basename in ar. If ar is nil, or the base CG cannot be
// found, the diff CG is returned undiffed, matching the reference's
// fallback behavior rather than failing outright.
func dcfExtract(data []byte, ar archive.Archive) (*CG, error) {
	hdr, pos, err := dcfReadHeader(data)
	if err != nil {
		return nil, err
	}
	chunkMap, pos, err := dcfReadDFDL(data, pos)
	if err != nil {
		return nil, err
	}
	if len(chunkMap) < 4 || int32(leU32(chunkMap, 0)) != int32(len(chunkMap)-4) {
		return nil, ferr.New(ferr.Invalid, "dcf", "invalid size in chunk map")
	}
	cgData, err := dcfReadDCGD(data, pos)
	if err != nil {
		return nil, err
	}

	if ar == nil {
		return qntExtract(cgData)
	}

	base := dcfBaseCG(hdr.baseCGName, ar)
	if base == nil {
		return qntExtract(cgData)
	}

	diff, err := Load(cgData, ar)
	if err != nil {
		return nil, ferr.Wrap(ferr.Invalid, "dcf", "diff CG", err)
	}
	if err := dcfApplyDiff(base, diff, chunkMap[4:]); err != nil {
		return nil, err
	}
	base.Type = TypeDCF
	return base, nil
}

func dcfBaseCG(name string, ar archive.Archive) *CG {
	base := archive.Basename(name)
	d, err := ar.GetByBasename(base)
	if err != nil || d == nil {
		return nil
	}
	cg, err := Load(d.Data, ar)
	if err != nil {
		return nil
	}
	return cg
}
