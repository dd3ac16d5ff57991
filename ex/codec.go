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

package ex

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/buffer"
	"github.com/nunuhara/system4/ferr"
)

// decodeTable and its inverse implement the fixed byte-substitution cipher
// applied to the compressed DATA section of every EX file: each byte i
// is replaced by decodeTable[i] on disk, and by encodeTable[i] (its
// inverse) when re-encoding a freshly compressed payload.
var (
	decodeTable [256]byte
	encodeTable [256]byte
	tableOnce   sync.Once
)

func initTables() {
	for i := 0; i < 256; i++ {
		v := i
		p := v
		p = (p & 0x55) + ((p >> 1) & 0x55)
		p = (p & 0x33) + ((p >> 2) & 0x33)
		p = (p & 0x0F) + ((p >> 4) & 0x0F)
		var out int
		if p&1 == 0 {
			out = ((v << (8 - p)) | (v >> p)) & 0xFF
		} else {
			out = ((v >> (8 - p)) | (v << p)) & 0xFF
		}
		decodeTable[i] = byte(out)
	}
	for i, v := range decodeTable {
		encodeTable[v] = byte(i)
	}
}

func tables() {
	tableOnce.Do(initTables)
}

const (
	magicHEAD = "HEAD"
	magicEXTF = "EXTF"
	magicDATA = "DATA"
)

// decodeContainer strips the HEAD/EXTF/DATA outer framing, undoes the
// byte-substitution cipher, and zlib-inflates the payload. It returns the
// decompressed value-tree bytes and the number of top-level blocks.
func decodeContainer(data []byte) (payload []byte, nrBlocks uint32, err error) {
	tables()

	r := buffer.NewReader(data)
	ok, _ := r.CheckBytes([]byte(magicHEAD))
	if !ok {
		return nil, 0, ferr.New(ferr.InvalidSignature, "ex", "missing HEAD section marker")
	}
	if err := r.Skip(8); err != nil {
		return nil, 0, ferr.Wrap(ferr.Invalid, "ex", "truncated HEAD section", err)
	}

	ok, _ = r.CheckBytes([]byte(magicEXTF))
	if !ok {
		return nil, 0, ferr.New(ferr.InvalidSignature, "ex", "missing EXTF section marker")
	}
	if err := r.Skip(8); err != nil {
		return nil, 0, ferr.Wrap(ferr.Invalid, "ex", "truncated EXTF section", err)
	}

	n, err := r.ReadI32()
	if err != nil {
		return nil, 0, ferr.Wrap(ferr.OutOfBounds, "ex", "block count", err)
	}
	nrBlocks = uint32(n)

	ok, _ = r.CheckBytes([]byte(magicDATA))
	if !ok {
		return nil, 0, ferr.New(ferr.InvalidSignature, "ex", "missing DATA section marker")
	}
	if err := r.Skip(4); err != nil {
		return nil, 0, ferr.Wrap(ferr.Invalid, "ex", "truncated DATA section", err)
	}

	compressedSize, err := r.ReadI32()
	if err != nil {
		return nil, 0, ferr.Wrap(ferr.OutOfBounds, "ex", "compressed size", err)
	}
	uncompressedSize, err := r.ReadI32()
	if err != nil {
		return nil, 0, ferr.Wrap(ferr.OutOfBounds, "ex", "uncompressed size", err)
	}
	if compressedSize < 0 || uncompressedSize < 0 {
		return nil, 0, ferr.New(ferr.Invalid, "ex", "negative DATA section size")
	}

	compressed, err := r.ReadBytes(int(compressedSize))
	if err != nil {
		return nil, 0, ferr.Wrap(ferr.OutOfBounds, "ex", "compressed payload", err)
	}
	plain := make([]byte, len(compressed))
	for i, b := range compressed {
		plain[i] = decodeTable[b]
	}

	zr, err := zlib.NewReader(bytes.NewReader(plain))
	if err != nil {
		return nil, 0, ferr.Wrap(ferr.CompressionError, "ex", "zlib header", err)
	}
	defer zr.Close()
	out := make([]byte, uncompressedSize)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, 0, ferr.Wrap(ferr.CompressionError, "ex", "zlib payload", err)
	}
	return out, nrBlocks, nil
}

// encodeContainer zlib-deflates payload, applies the inverse byte
// substitution, and wraps the result in the HEAD/EXTF/DATA framing
// expected by decodeContainer.
func encodeContainer(payload []byte, nrBlocks uint32) ([]byte, error) {
	tables()

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "ex", "zlib write", err)
	}
	if err := zw.Close(); err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "ex", "zlib close", err)
	}

	body := compressed.Bytes()
	cipher := make([]byte, len(body))
	for i, b := range body {
		cipher[i] = encodeTable[b]
	}

	w := buffer.NewWriter()
	w.WriteBytes([]byte(magicHEAD))
	w.WriteI32(0)
	w.WriteI32(0)
	w.WriteBytes([]byte(magicEXTF))
	w.WriteI32(0)
	w.WriteI32(0)
	w.WriteI32(int32(nrBlocks))
	w.WriteBytes([]byte(magicDATA))
	w.WriteI32(0)
	w.WriteI32(int32(len(cipher)))
	w.WriteI32(int32(len(payload)))
	w.WriteBytes(cipher)
	return w.Bytes(), nil
}

// Decode parses a complete on-disk EX file: outer framing, decompression,
// and the recursive block/value tree.
func Decode(data []byte) (*Ex, error) {
	payload, nrBlocks, err := decodeContainer(data)
	if err != nil {
		return nil, err
	}
	r := &reader{buf: buffer.NewReader(payload)}
	ex := &Ex{Blocks: make([]Block, nrBlocks)}
	for i := range ex.Blocks {
		b, err := r.readBlock()
		if err != nil {
			return nil, err
		}
		ex.Blocks[i] = *b
	}
	ex.RowsFirst = r.layout == layoutRowsFirst
	return ex, nil
}

// Encode serialises e back into the on-disk EX container format.
func (e *Ex) Encode() ([]byte, error) {
	w := &writer{buf: buffer.NewWriter(), rowsFirst: e.RowsFirst}
	for i := range e.Blocks {
		if err := w.writeBlock(&e.Blocks[i]); err != nil {
			return nil, err
		}
	}
	return encodeContainer(w.buf.Bytes(), uint32(len(e.Blocks)))
}
