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

	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/sjis"
)

// ALD is a System 4 multi-volume disk archive. Entries are addressed by
// a single logical number across all volumes via a two-level indirection:
// a file map (number -> disk, pointer) shared by every volume, and a
// per-volume pointer map (pointer -> byte offset) giving each entry's
// header location. Some engines obfuscate the header bytes of the first
// volume with a constant per-byte offset ("magic"), detected once by
// scanning the link table for the first non-ascending entry.
type ALD struct {
	volumes []*source
	magic   [3]byte
	mapDisk []int
	mapPtr  []int
	filePtr [][]uint32
	maxFile int
}

// OpenALD opens a multi-volume archive. paths is indexed by disk number;
// an empty string marks a volume that was not supplied (the archive is
// still usable if no entry resolves to that disk).
func OpenALD(paths []string, flags OpenFlags) (*ALD, error) {
	a := &ALD{
		volumes: make([]*source, len(paths)),
		filePtr: make([][]uint32, len(paths)),
	}
	gotFilemap := false
	for i, p := range paths {
		if p == "" {
			continue
		}
		src, err := openSource(p, flags)
		if err != nil {
			return nil, ferr.Wrap(ferr.FileError, "ald", "open volume", err)
		}
		if err := aldFileCheck(a, i == 0, src.data); err != nil {
			src.Close()
			return nil, err
		}
		if !gotFilemap {
			if err := aldReadFilemap(a, src.data); err != nil {
				src.Close()
				return nil, err
			}
			gotFilemap = true
		}
		fp, err := aldReadPtrmap(a, src.data)
		if err != nil {
			src.Close()
			return nil, err
		}
		a.filePtr[i] = fp
		a.volumes[i] = src
	}
	return a, nil
}

// aldGetTableSizes reads the 6-byte volume header and returns the size
// (in 256-byte pages) of the pointer table and of the file map. When
// detectMagic is set and the header looks obfuscated, it scans the link
// table for the first entry that breaks ascending order and derives the
// magic offset from the gap between the expected and actual byte
// values there.
func aldGetTableSizes(data []byte, magic *[3]byte, detectMagic bool) (ptrsize, mapsize int, err error) {
	if len(data) < 6 {
		return 0, 0, ferr.New(ferr.OutOfBounds, "ald", "volume too small for header")
	}
	var header [6]byte
	copy(header[:], data[:6])

	if detectMagic && header[2] != 0 {
		linkTableEnd := int(le3(header[:], 3)) << 8
		prev := -1
		magic[2] = 0
		for i := 6; i < linkTableEnd; i += 3 {
			if i+3 > len(data) {
				return 0, 0, ferr.New(ferr.OutOfBounds, "ald", "link table extends past end of volume")
			}
			buf := data[i : i+3]
			n := int(le3(buf, 0))
			if prev < n {
				prev = n
				continue
			}
			corrected := uint32((i + 0xff) >> 8)
			expect := [3]byte{byte(corrected), byte(corrected >> 8), byte(corrected >> 16)}
			magic[0] = header[0] - expect[0]
			magic[1] = header[1] - expect[1]
			magic[2] = header[2] - expect[2]
			break
		}
		if magic[2] == 0 {
			return 0, 0, ferr.New(ferr.Invalid, "ald", "could not detect archive magic bytes")
		}
	}

	h0 := header[0] - magic[0]
	h1 := header[1] - magic[1]
	h2 := header[2] - magic[2]
	corrected := [6]byte{h0, h1, h2, header[3], header[4], header[5]}
	ptrsize = int(le3(corrected[:], 0))
	mapsize = int(le3(corrected[:], 3)) - ptrsize
	return ptrsize, mapsize, nil
}

func aldFileCheck(a *ALD, detectMagic bool, data []byte) error {
	filesize := (len(data) + 255) >> 8
	ptrsize, mapsize, err := aldGetTableSizes(data, &a.magic, detectMagic)
	if err != nil {
		return err
	}
	if ptrsize < 0 || mapsize < 0 || ptrsize > filesize || mapsize > filesize {
		return ferr.New(ferr.Invalid, "ald", "invalid pointer/file map size")
	}
	return nil
}

func aldReadFilemap(a *ALD, data []byte) error {
	ptrsize, mapsize, err := aldGetTableSizes(data, &a.magic, false)
	if err != nil {
		return err
	}
	start := ptrsize * 256
	end := start + mapsize*256
	if end > len(data) {
		return ferr.New(ferr.OutOfBounds, "ald", "file map extends past end of volume")
	}
	b := data[start:end]
	a.maxFile = (mapsize * 256) / 3
	a.mapDisk = make([]int, a.maxFile)
	a.mapPtr = make([]int, a.maxFile)
	for i := 0; i < a.maxFile; i++ {
		a.mapDisk[i] = int(b[i*3]) - 1
		a.mapPtr[i] = int(leU16(b, i*3+1)) - 1
	}
	return nil
}

func aldReadPtrmap(a *ALD, data []byte) ([]uint32, error) {
	ptrsize, _, err := aldGetTableSizes(data, &a.magic, false)
	if err != nil {
		return nil, err
	}
	size := ptrsize * 256
	if size > len(data) {
		return nil, ferr.New(ferr.OutOfBounds, "ald", "pointer map extends past end of volume")
	}
	b := data[:size]
	filecnt := size / 3
	fp := make([]uint32, filecnt)
	for i := 0; i < filecnt-1; i++ {
		if i*3+6 > len(b) {
			return nil, ferr.New(ferr.OutOfBounds, "ald", "pointer map truncated")
		}
		fp[i] = le3(b, i*3+3) * 256
	}
	return fp, nil
}

// locate resolves entry no to its disk and header byte offset, applying
// the same zero-is-absent convention as the reference: a disk, pointer,
// or on-disk pointer-table slot of -1/0 means the entry does not exist
// rather than being a format error. The pointer table only brackets the
// entry's presence (both its own and the next entry's pointer must be
// set); the entry's actual byte length is stored in its own header, not
// derived from the gap between pointers (pointers are page-granular and
// round entries up to a 256-byte boundary).
func (a *ALD) locate(no int) (disk int, dataptr uint32, ok bool) {
	if no < 0 || no >= a.maxFile {
		return 0, 0, false
	}
	disk = a.mapDisk[no]
	ptr := a.mapPtr[no]
	if disk < 0 || ptr < 0 || disk >= len(a.filePtr) || a.filePtr[disk] == nil {
		return 0, 0, false
	}
	fp := a.filePtr[disk]
	if ptr+1 >= len(fp) {
		return 0, 0, false
	}
	dataptr = fp[ptr]
	dataptr2 := fp[ptr+1]
	if dataptr == 0 || dataptr2 == 0 {
		return 0, 0, false
	}
	return disk, dataptr, true
}

func (a *ALD) Exists(no int) bool {
	_, _, ok := a.locate(no)
	return ok
}

func (a *ALD) Get(no int) (*Data, error) {
	disk, dataptr, ok := a.locate(no)
	if !ok {
		return nil, nil
	}
	data := a.volumes[disk].data
	if uint64(dataptr)+16 > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "ald", "entry header extends past end of volume")
	}
	hdrSize := leU32(data, int(dataptr))
	size := leU32(data, int(dataptr)+4)
	if hdrSize < 16 {
		return nil, ferr.New(ferr.Invalid, "ald", "entry header size too small")
	}
	nameEnd := uint64(dataptr) + uint64(hdrSize)
	if nameEnd > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "ald", "entry name extends past end of volume")
	}
	rawName := data[int(dataptr)+16 : nameEnd]
	if i := bytes.IndexByte(rawName, 0); i >= 0 {
		rawName = rawName[:i]
	}
	name, err := sjis.ToUTF8(rawName)
	if err != nil {
		return nil, ferr.Wrap(ferr.Invalid, "ald", "entry name encoding", err)
	}

	payloadStart := nameEnd
	payloadEnd := payloadStart + uint64(size)
	if payloadEnd > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "ald", "entry data extends past end of volume")
	}
	return &Data{No: no, Name: name, Size: size, Data: data[payloadStart:payloadEnd]}, nil
}

// GetByName linearly scans every entry for an exact name match, as the
// reference implementation does; there is no name index to build one
// lazily from since ALD entries are never parsed up front.
func (a *ALD) GetByName(name string) (*Data, error) {
	for i := 0; i < a.maxFile; i++ {
		d, err := a.Get(i)
		if err != nil || d == nil {
			continue
		}
		if d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

func (a *ALD) ExistsByName(name string) (int, bool) {
	d, _ := a.GetByName(name)
	if d == nil {
		return 0, false
	}
	return d.No, true
}

// ALD has no basename index; the reference's get_by_basename op is nil
// for this format.
func (a *ALD) ExistsByBasename(string) (int, bool) { return 0, false }
func (a *ALD) GetByBasename(string) (*Data, error) { return nil, nil }

func (a *ALD) ForEach(fn func(*Data) error) error {
	for i := 0; i < a.maxFile; i++ {
		d, err := a.Get(i)
		if err != nil || d == nil {
			continue
		}
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}

func (a *ALD) Close() error {
	var first error
	for _, v := range a.volumes {
		if v == nil {
			continue
		}
		if err := v.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
