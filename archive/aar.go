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
	"strings"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/sjis"
)

type aarEntryType int32

const (
	aarCompressed aarEntryType = 0
	aarRaw        aarEntryType = 1
	aarSymlink    aarEntryType = -1
)

type aarEntry struct {
	off, size  uint32
	typ        aarEntryType
	name       string
	linkTarget string
}

// AAR is a System 4 "AAR\0" resource archive. Each entry is raw bytes,
// a zlib "ZLB\0"-wrapped blob, or (version >= 2) a symlink resolved by
// chasing linkTarget through the same case-insensitive name index used
// for GetByName.
type AAR struct {
	src     *source
	version uint32
	entries []aarEntry
	byName  map[string]int
}

func OpenAAR(path string, flags OpenFlags) (*AAR, error) {
	src, err := openSource(path, flags)
	if err != nil {
		return nil, ferr.Wrap(ferr.FileError, "aar", "open", err)
	}
	a, err := aarFromSource(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	return a, nil
}

func aarFromSource(src *source) (*AAR, error) {
	data := src.data
	if len(data) < 16 || string(data[0:4]) != "AAR\x00" {
		return nil, ferr.New(ferr.InvalidSignature, "aar", "bad magic")
	}
	version := leU32(data, 4)
	if version != 0 && version != 2 {
		return nil, ferr.New(ferr.UnsupportedFormat, "aar", "unknown AAR version")
	}
	nrFiles := leU32(data, 8)
	firstEntryOffset := leU32(data, 12)
	if uint64(firstEntryOffset) > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "aar", "index extends past end of file")
	}

	a := &AAR{src: src, version: version}
	a.entries = make([]aarEntry, nrFiles)
	a.byName = make(map[string]int, nrFiles)

	var key byte
	if version >= 2 {
		key = 0x60
	}
	p := 12
	for i := 0; i < int(nrFiles); i++ {
		if p+12 > int(firstEntryOffset) {
			return nil, ferr.New(ferr.Invalid, "aar", "index entry table truncated")
		}
		e := aarEntry{
			off:  leU32(data, p),
			size: leU32(data, p+4),
			typ:  aarEntryType(int32(leU32(data, p+8))),
		}
		p += 12

		name, next, err := aarReadString(data, p, key)
		if err != nil {
			return nil, err
		}
		e.name = name
		p = next

		if version >= 2 {
			target, next2, err := aarReadString(data, p, key)
			if err != nil {
				return nil, err
			}
			e.linkTarget = target
			p = next2
		}

		a.byName[aarFold(e.name)] = i
		a.entries[i] = e
	}
	if p != int(firstEntryOffset) {
		return nil, ferr.New(ferr.Invalid, "aar", "index size does not match first_entry_offset")
	}
	return a, nil
}

// aarReadString reads a NUL-terminated, byte-XOR-obfuscated name field
// (the version>=2 obfuscation key; version 0 uses key 0).
func aarReadString(data []byte, off int, key byte) (string, int, error) {
	start := off
	for off < len(data) && data[off] != 0 {
		off++
	}
	if off >= len(data) {
		return "", 0, ferr.New(ferr.OutOfBounds, "aar", "unterminated entry name")
	}
	raw := make([]byte, off-start)
	for i, b := range data[start:off] {
		raw[i] = b - key
	}
	s, err := sjis.ToUTF8(raw)
	if err != nil {
		return "", 0, ferr.Wrap(ferr.Invalid, "aar", "entry name encoding", err)
	}
	return s, off + 1, nil
}

// aarFold normalizes a decoded entry name for the archive's
// case-insensitive name index. The reference folds case on the raw
// Shift-JIS bytes; since every name here has already been decoded to
// UTF-8, plain ASCII case-folding is sufficient (Shift-JIS carries no
// case distinction outside ASCII) and path separators are normalized to
// match names that mix '\' and '/'.
func aarFold(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.ToLower(name)
}

func aarInflate(buf []byte) ([]byte, error) {
	if len(buf) < 16 || string(buf[0:4]) != "ZLB\x00" {
		return nil, ferr.New(ferr.Invalid, "aar", "missing ZLB header")
	}
	if leU32(buf, 4) != 0 {
		return nil, ferr.New(ferr.UnsupportedFormat, "aar", "unknown ZLB version")
	}
	outSize := leU32(buf, 8)
	inSize := leU32(buf, 12)
	if uint64(inSize)+16 > uint64(len(buf)) {
		return nil, ferr.New(ferr.Invalid, "aar", "ZLB payload size out of range")
	}
	zr, err := zlib.NewReader(bytes.NewReader(buf[16 : 16+inSize]))
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "aar", "zlib header", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(io.LimitReader(zr, int64(outSize)))
	if err != nil {
		return nil, ferr.Wrap(ferr.CompressionError, "aar", "zlib payload", err)
	}
	return out, nil
}

// resolve follows a chain of AAR_SYMLINK entries to the real entry
// backing no's data, warning callers via an error on an orphaned link
// (one whose target is not present in the name index) rather than
// returning partial data.
func (a *AAR) resolve(no int) (*aarEntry, error) {
	e := &a.entries[no]
	seen := 0
	for e.typ == aarSymlink {
		idx, ok := a.byName[aarFold(e.linkTarget)]
		if !ok {
			return nil, ferr.New(ferr.Invalid, "aar", "orphaned symlink entry")
		}
		e = &a.entries[idx]
		seen++
		if seen > len(a.entries) {
			return nil, ferr.New(ferr.Invalid, "aar", "symlink cycle")
		}
	}
	return e, nil
}

func (a *AAR) Exists(no int) bool {
	return no >= 0 && no < len(a.entries)
}

func (a *AAR) Get(no int) (*Data, error) {
	if !a.Exists(no) {
		return nil, nil
	}
	e, err := a.resolve(no)
	if err != nil {
		return nil, err
	}
	data := a.src.data
	if uint64(e.off)+uint64(e.size) > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "aar", "entry data extends past end of file")
	}
	buf := data[e.off : e.off+e.size]
	if e.typ == aarCompressed {
		out, err := aarInflate(buf)
		if err != nil {
			return nil, err
		}
		return &Data{No: no, Name: a.entries[no].name, Size: uint32(len(out)), Data: out}, nil
	}
	return &Data{No: no, Name: a.entries[no].name, Size: e.size, Data: buf}, nil
}

func (a *AAR) ExistsByName(name string) (int, bool) {
	idx, ok := a.byName[aarFold(name)]
	return idx, ok
}

func (a *AAR) GetByName(name string) (*Data, error) {
	idx, ok := a.byName[aarFold(name)]
	if !ok {
		return nil, nil
	}
	return a.Get(idx)
}

// AAR has no basename index; the reference's get_by_basename op is nil
// for this format.
func (a *AAR) ExistsByBasename(string) (int, bool) { return 0, false }
func (a *AAR) GetByBasename(string) (*Data, error) { return nil, nil }

func (a *AAR) ForEach(fn func(*Data) error) error {
	for i := range a.entries {
		d, err := a.Get(i)
		if err != nil {
			return err
		}
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}

func (a *AAR) Close() error { return a.src.Close() }
