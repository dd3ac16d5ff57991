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

package archive

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/sjis"
)

// afa3PRNG is the 521-word lagged-Fibonacci generator AFA v3 uses to
// derive the obfuscation bits scattered through its index and
// dictionary-based string encoding. Unlike the reference (a single
// process-global generator), each call site here constructs its own
// instance: every use immediately re-seeds from scratch anyway, so a
// shared global adds a data race for no benefit.
type afa3PRNG struct {
	state [521]uint32
	cur   int
}

func newAFA3PRNG(seed uint32) *afa3PRNG {
	p := &afa3PRNG{}
	var val uint32
	for i := 0; i < 17; i++ {
		for j := 0; j < 32; j++ {
			seed = 1566083941*seed + 1
			val = (seed & 0x80000000) | (val >> 1)
		}
		p.state[i] = val
	}
	p.state[16] = p.state[15] ^ (p.state[0] >> 9) ^ (p.state[16] << 23)
	for i := 17; i < 521; i++ {
		p.state[i] = p.state[i-1] ^ (p.state[i-16] >> 9) ^ (p.state[i-17] << 23)
	}
	p.shuffle()
	p.shuffle()
	p.shuffle()
	p.shuffle()
	p.cur = -1
	return p
}

func (p *afa3PRNG) shuffle() {
	for i := 0; i < 32; i += 4 {
		p.state[i] ^= p.state[i+489]
		p.state[i+1] ^= p.state[i+490]
		p.state[i+2] ^= p.state[i+491]
		p.state[i+3] ^= p.state[i+492]
	}
	for i := 32; i < 521; i += 3 {
		p.state[i] ^= p.state[i-32]
		p.state[i+1] ^= p.state[i-31]
		p.state[i+2] ^= p.state[i-30]
	}
}

func (p *afa3PRNG) next() uint32 {
	p.cur++
	if p.cur >= 521 {
		p.shuffle()
		p.cur = 0
	}
	return p.state[p.cur]
}

// afa3Bitstream is an MSB-first bit reader over an in-memory byte slice.
// The reference keeps two variants (FILE-backed and buffer-backed)
// because it streams the index before the whole file is loaded; this
// module always holds the complete file in memory (mmap or a full
// read), so one implementation over a byte slice suffices for both of
// the reference's phases.
type afa3Bitstream struct {
	data     []byte
	pos      int
	cache    uint32
	nrCached int
}

func newAFA3Bitstream(data []byte) *afa3Bitstream {
	return &afa3Bitstream{data: data}
}

func (bs *afa3Bitstream) readBits(count int) (int, bool) {
	for bs.nrCached < count {
		if bs.pos >= len(bs.data) {
			return 0, false
		}
		bs.cache = (bs.cache << 8) | uint32(bs.data[bs.pos])
		bs.pos++
		bs.nrCached += 8
	}
	bs.nrCached -= count
	mask := uint32(1)<<uint(count) - 1
	return int((bs.cache >> uint(bs.nrCached)) & mask), true
}

func (bs *afa3Bitstream) readInt32() (int32, bool) {
	b0, ok := bs.readBits(8)
	if !ok {
		return 0, false
	}
	b1, ok := bs.readBits(8)
	if !ok {
		return 0, false
	}
	b2, ok := bs.readBits(8)
	if !ok {
		return 0, false
	}
	b3, ok := bs.readBits(8)
	if !ok {
		return 0, false
	}
	return int32(uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24), true
}

// afa3ReadDict reads the string-decoding dictionary: a size, then that
// many bytes each preceded by a random run of 1-4 obfuscation bits that
// must be consumed and discarded.
func afa3ReadDict(bs *afa3Bitstream) ([]byte, error) {
	size, ok := bs.readInt32()
	if !ok || size < 0 {
		return nil, ferr.New(ferr.Invalid, "afa3", "bad dictionary size")
	}
	dict := make([]byte, size)
	rng := newAFA3PRNG(uint32(size))
	for i := range dict {
		count := int(rng.next()) & 3
		if _, ok := bs.readBits(count + 1); !ok {
			return nil, ferr.New(ferr.OutOfBounds, "afa3", "dictionary truncated")
		}
		rng.next()
		v, ok := bs.readBits(8)
		if !ok {
			return nil, ferr.New(ferr.OutOfBounds, "afa3", "dictionary truncated")
		}
		dict[i] = byte(v)
	}
	return dict, nil
}

// afa3ReadEncryptedChars reads a dictionary-indexed, obfuscated string:
// a character count, then that many 16-bit dictionary indices, each
// preceded by the same obfuscation-bit scheme as the dictionary itself.
func afa3ReadEncryptedChars(bs *afa3Bitstream) ([]uint16, error) {
	n, ok := bs.readInt32()
	if !ok || n < 0 {
		return nil, ferr.New(ferr.Invalid, "afa3", "bad string length")
	}
	chars := make([]uint16, n)
	rng := newAFA3PRNG(uint32(n))
	for i := range chars {
		count := int(rng.next()) & 3
		if _, ok := bs.readBits(count + 1); !ok {
			return nil, ferr.New(ferr.OutOfBounds, "afa3", "string truncated")
		}
		rng.next()
		lo, ok1 := bs.readBits(8)
		hi, ok2 := bs.readBits(8)
		if !ok1 || !ok2 {
			return nil, ferr.New(ferr.OutOfBounds, "afa3", "string truncated")
		}
		chars[i] = uint16(lo) | uint16(hi)<<8
	}
	return chars, nil
}

func afa3DecryptBytes(dict []byte, chars []uint16) ([]byte, error) {
	out := make([]byte, len(chars))
	for i, c := range chars {
		if int(c) >= len(dict) {
			return nil, ferr.New(ferr.Invalid, "afa3", "dictionary index out of range")
		}
		out[i] = dict[c] ^ 0xa4
	}
	return out, nil
}

func afa3ReadString(bs *afa3Bitstream, dict []byte) (string, error) {
	chars, err := afa3ReadEncryptedChars(bs)
	if err != nil {
		return "", err
	}
	raw, err := afa3DecryptBytes(dict, chars)
	if err != nil {
		return "", err
	}
	name, err := sjis.ToUTF8(raw)
	if err != nil {
		return "", ferr.Wrap(ferr.Invalid, "afa3", "entry name encoding", err)
	}
	return name, nil
}

// afa3FromSource parses an AFA v3 archive's encrypted metadata section
// and returns it as an *AFA sharing the v1/v2 entry table and every
// lookup method; only the index's encoding differs between versions.
func afa3FromSource(src *source) (*AFA, error) {
	data := src.data
	if len(data) < 16 {
		return nil, ferr.New(ferr.InvalidSignature, "afa3", "file too small")
	}
	indexSize := leU32(data, 4)

	bs := newAFA3Bitstream(data[12:])
	if _, ok := bs.readBits(1); !ok {
		return nil, ferr.New(ferr.OutOfBounds, "afa3", "truncated header")
	}
	dict, err := afa3ReadDict(bs)
	if err != nil {
		return nil, err
	}
	packedSize, ok := bs.readInt32()
	if !ok || packedSize < 0 {
		return nil, ferr.New(ferr.Invalid, "afa3", "bad packed index size")
	}
	unpackedSize, ok := bs.readInt32()
	if !ok || unpackedSize < 0 {
		return nil, ferr.New(ferr.Invalid, "afa3", "bad unpacked index size")
	}

	packed := make([]byte, packedSize)
	for i := range packed {
		v, ok := bs.readBits(8)
		if !ok {
			return nil, ferr.New(ferr.OutOfBounds, "afa3", "truncated packed index")
		}
		packed[i] = byte(v)
	}

	zr, err := zlib.NewReader(bytes.NewReader(packed))
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "afa3", "index zlib header", err)
	}
	unpacked, err := io.ReadAll(io.LimitReader(zr, int64(unpackedSize)))
	zr.Close()
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "afa3", "index zlib payload", err)
	}

	bs2 := newAFA3Bitstream(unpacked)
	if _, ok := bs2.readBits(1); !ok {
		return nil, ferr.New(ferr.OutOfBounds, "afa3", "truncated index")
	}
	nrFiles, ok := bs2.readInt32()
	if !ok || nrFiles < 0 {
		return nil, ferr.New(ferr.Invalid, "afa3", "bad file count")
	}

	a := &AFA{
		src:       src,
		version:   3,
		dataStart: indexSize + 8,
		entries:   make([]afaEntry, 0, nrFiles),
	}
	for i := 0; i < int(nrFiles); i++ {
		if _, ok := bs2.readBits(2); !ok {
			break
		}
		name, err := afa3ReadString(bs2, dict)
		if err != nil {
			return nil, err
		}
		u0, ok1 := bs2.readInt32()
		u1, ok2 := bs2.readInt32()
		off, ok3 := bs2.readInt32()
		size, ok4 := bs2.readInt32()
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil, ferr.New(ferr.OutOfBounds, "afa3", "entry fields")
		}
		a.entries = append(a.entries, afaEntry{
			name:     name,
			no:       i,
			unknown0: uint32(u0),
			unknown1: uint32(u1),
			off:      uint32(off),
			size:     uint32(size),
		})
	}
	a.buildIndexes()
	return a, nil
}
