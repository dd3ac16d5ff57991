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

	"github.com/nunuhara/system4/buffer"
	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/sjis"
)

type afaEntry struct {
	name               string
	off, size          uint32
	unknown0, unknown1 uint32
	no                 int
}

// AFA is a System 4 "AFAH"/"AlicArch" resource archive, covering both
// the plain v1/v2 container and (via OpenAFA's dispatch to the v3
// metadata reader) the encrypted v3 variant; both populate the same
// entry table and are served by the same set of methods.
type AFA struct {
	src       *source
	version   uint32
	dataStart uint32
	entries   []afaEntry

	byNo       map[int]int
	byName     map[string]int
	byBasename map[string]int
}

// OpenAFA opens an AFA archive. Files whose header declares the v3
// variant are transparently handed off to the v3 (encrypted) reader.
func OpenAFA(path string, flags OpenFlags) (*AFA, error) {
	src, err := openSource(path, flags)
	if err != nil {
		return nil, ferr.Wrap(ferr.FileError, "afa", "open", err)
	}
	a, err := afaFromSource(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	return a, nil
}

func afaFromSource(src *source) (*AFA, error) {
	data := src.data
	if len(data) < 44 || string(data[0:4]) != "AFAH" {
		return nil, ferr.New(ferr.InvalidSignature, "afa", "bad magic")
	}
	if leU32(data, 4) != 0x1c {
		return nil, ferr.New(ferr.Invalid, "afa", "unexpected header size field")
	}
	if leU32(data, 8) == 3 {
		return afa3FromSource(src)
	}
	if string(data[8:16]) != "AlicArch" {
		return nil, ferr.New(ferr.UnsupportedFormat, "afa", "unrecognized AFA variant tag")
	}
	if string(data[28:32]) != "INFO" {
		return nil, ferr.New(ferr.Invalid, "afa", "missing INFO marker")
	}

	a := &AFA{src: src}
	a.version = leU32(data, 16)
	a.dataStart = leU32(data, 24)
	compressedSize := leU32(data, 32) - 16
	uncompressedSize := leU32(data, 36)
	nrFiles := leU32(data, 40)

	if uint64(a.dataStart)+8 >= uint64(len(data)) {
		return nil, ferr.New(ferr.Invalid, "afa", "data_start out of range")
	}
	if string(data[a.dataStart:a.dataStart+4]) != "DATA" {
		return nil, ferr.New(ferr.Invalid, "afa", "missing DATA marker")
	}
	dataSize := leU32(data, int(a.dataStart)+4)
	if uint64(a.dataStart)+uint64(dataSize) > uint64(len(data)) {
		return nil, ferr.New(ferr.Invalid, "afa", "data section extends past end of file")
	}

	if uint64(44)+uint64(compressedSize) > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "afa", "file table extends past end of file")
	}
	table, err := afaInflateTable(data[44:44+compressedSize], uncompressedSize)
	if err != nil {
		return nil, err
	}

	hasNumber := a.version == 1 || afaDetermineHasNumber(table, nrFiles)

	r := buffer.NewReader(table)
	a.entries = make([]afaEntry, nrFiles)
	for i := range a.entries {
		e, err := afaReadEntry(r, hasNumber)
		if err != nil {
			return nil, err
		}
		if e.no < 0 {
			e.no = i
		}
		a.entries[i] = e
	}
	a.buildIndexes()
	return a, nil
}

func afaInflateTable(packed []byte, uncompressedSize uint32) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(packed))
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "afa", "file table zlib header", err)
	}
	defer zr.Close()
	table, err := io.ReadAll(io.LimitReader(zr, int64(uncompressedSize)))
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "afa", "file table payload", err)
	}
	return table, nil
}

// afaDetermineHasNumber infers whether the v2 file table carries a
// separate numeric ID per entry (a detail the header does not record)
// by assuming it does, scanning the whole table under that hypothesis,
// and accepting it only if doing so consumes the table exactly.
func afaDetermineHasNumber(table []byte, nrFiles uint32) bool {
	r := buffer.NewReader(table)
	for i := uint32(0); i < nrFiles; i++ {
		if r.Remaining() < 8 {
			return false
		}
		if err := r.Skip(4); err != nil {
			return false
		}
		paddedLen, err := r.ReadU32()
		if err != nil {
			return false
		}
		// 20 = id(4) + unknown0(4) + unknown1(4) + off(4) + size(4)
		if uint32(r.Remaining()) < paddedLen+20 {
			return false
		}
		if err := r.Skip(int(paddedLen) + 20); err != nil {
			return false
		}
	}
	return r.Remaining() == 0
}

// afaReadEntry reads one file-table entry. The name is stored as two
// length prefixes: an exact length and a second, word-aligned "padded"
// length giving the number of bytes actually present on disk; the extra
// bytes beyond the exact length are alignment padding, discarded here.
func afaReadEntry(r *buffer.Buffer, hasNumber bool) (afaEntry, error) {
	var e afaEntry
	e.no = -1

	nameLen, err := r.ReadU32()
	if err != nil {
		return e, ferr.Wrap(ferr.OutOfBounds, "afa", "entry name length", err)
	}
	paddedLen, err := r.ReadU32()
	if err != nil {
		return e, ferr.Wrap(ferr.OutOfBounds, "afa", "entry name padded length", err)
	}
	if nameLen > paddedLen {
		return e, ferr.New(ferr.Invalid, "afa", "entry name length exceeds padded length")
	}
	raw, err := r.ReadBytes(int(paddedLen))
	if err != nil {
		return e, ferr.Wrap(ferr.OutOfBounds, "afa", "entry name", err)
	}
	name, err := sjis.ToUTF8(raw[:nameLen])
	if err != nil {
		return e, ferr.Wrap(ferr.Invalid, "afa", "entry name encoding", err)
	}
	e.name = name

	if hasNumber {
		no, err := r.ReadI32()
		if err != nil {
			return e, ferr.Wrap(ferr.OutOfBounds, "afa", "entry id", err)
		}
		no--
		// A known bug in some v1 archives ("Oyako Rankan") stores 0 for
		// every entry's ID; treat a negative result as absent rather
		// than a format error, falling back to the sequential index.
		if no >= 0 {
			e.no = int(no)
		}
	}

	if e.unknown0, err = r.ReadU32(); err != nil {
		return e, ferr.Wrap(ferr.OutOfBounds, "afa", "entry unknown0", err)
	}
	if e.unknown1, err = r.ReadU32(); err != nil {
		return e, ferr.Wrap(ferr.OutOfBounds, "afa", "entry unknown1", err)
	}
	if e.off, err = r.ReadU32(); err != nil {
		return e, ferr.Wrap(ferr.OutOfBounds, "afa", "entry offset", err)
	}
	if e.size, err = r.ReadU32(); err != nil {
		return e, ferr.Wrap(ferr.OutOfBounds, "afa", "entry size", err)
	}
	return e, nil
}

func (a *AFA) buildIndexes() {
	a.byNo = make(map[int]int, len(a.entries))
	a.byName = make(map[string]int, len(a.entries))
	a.byBasename = make(map[string]int, len(a.entries))
	for i, e := range a.entries {
		a.byNo[e.no] = i
		a.byName[e.name] = i
		a.byBasename[Basename(e.name)] = i
	}
}

func (a *AFA) load(e *afaEntry) (*Data, error) {
	data := a.src.data
	start := uint64(a.dataStart) + uint64(e.off)
	end := start + uint64(e.size)
	if end > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "afa", "entry data extends past end of file")
	}
	return &Data{No: e.no, Name: e.name, Size: e.size, Data: data[start:end]}, nil
}

func (a *AFA) Exists(no int) bool {
	_, ok := a.byNo[no]
	return ok
}

func (a *AFA) Get(no int) (*Data, error) {
	idx, ok := a.byNo[no]
	if !ok {
		return nil, nil
	}
	return a.load(&a.entries[idx])
}

func (a *AFA) ExistsByName(name string) (int, bool) {
	idx, ok := a.byName[name]
	if !ok {
		return 0, false
	}
	return a.entries[idx].no, true
}

func (a *AFA) GetByName(name string) (*Data, error) {
	idx, ok := a.byName[name]
	if !ok {
		return nil, nil
	}
	return a.load(&a.entries[idx])
}

func (a *AFA) ExistsByBasename(name string) (int, bool) {
	idx, ok := a.byBasename[Basename(name)]
	if !ok {
		return 0, false
	}
	return a.entries[idx].no, true
}

func (a *AFA) GetByBasename(name string) (*Data, error) {
	idx, ok := a.byBasename[Basename(name)]
	if !ok {
		return nil, nil
	}
	return a.load(&a.entries[idx])
}

func (a *AFA) ForEach(fn func(*Data) error) error {
	for i := range a.entries {
		d, err := a.load(&a.entries[i])
		if err != nil {
			return err
		}
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}

func (a *AFA) Close() error { return a.src.Close() }
