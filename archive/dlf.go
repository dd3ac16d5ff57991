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
	"fmt"

	"github.com/nunuhara/system4/ferr"
)

// dlfNrEntries is fixed by the format: one DLF archive always holds
// exactly 100 map resources, each split into a .dgn/.dtx/.tes triple.
const dlfNrEntries = 300

var dlfExtensions = [3]string{".dgn", ".dtx", ".tes"}

type dlfEntry struct{ off, size uint32 }

// DLF is a System 4 archive used for compiled map resources: a fixed
// 300-slot off/size table (no file-stored count, unlike ALK), with
// entry names synthesized from the slot index.
type DLF struct {
	src     *source
	entries [dlfNrEntries]dlfEntry
}

func OpenDLF(path string, flags OpenFlags) (*DLF, error) {
	src, err := openSource(path, flags)
	if err != nil {
		return nil, ferr.Wrap(ferr.FileError, "dlf", "open", err)
	}
	data := src.data
	if len(data) < 8 || string(data[0:8]) != "DLF\x00\x00\x00\x00\x00" {
		src.Close()
		return nil, ferr.New(ferr.InvalidSignature, "dlf", "bad magic")
	}
	d := &DLF{src: src}
	off := 8
	for i := 0; i < dlfNrEntries; i++ {
		if off+8 > len(data) {
			src.Close()
			return nil, ferr.New(ferr.OutOfBounds, "dlf", "file table truncated")
		}
		d.entries[i] = dlfEntry{off: leU32(data, off), size: leU32(data, off+4)}
		off += 8
	}
	return d, nil
}

// Exists reports a slot as occupied when its offset is non-zero; unlike
// ALK, an empty DLF slot is marked by a zero offset rather than a zero
// size.
func (d *DLF) Exists(no int) bool {
	return no >= 0 && no < dlfNrEntries && d.entries[no].off != 0
}

func (d *DLF) Get(no int) (*Data, error) {
	if !d.Exists(no) {
		return nil, nil
	}
	e := d.entries[no]
	data := d.src.data
	if uint64(e.off)+uint64(e.size) > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "dlf", "entry data extends past end of file")
	}
	name := fmt.Sprintf("map%02d%s", no/3, dlfExtensions[no%3])
	return &Data{No: no, Name: name, Size: e.size, Data: data[e.off : e.off+e.size]}, nil
}

// DLF has no name index; the reference's get_by_name/get_by_basename
// ops are both nil for this format.
func (d *DLF) ExistsByName(string) (int, bool)     { return 0, false }
func (d *DLF) ExistsByBasename(string) (int, bool) { return 0, false }
func (d *DLF) GetByName(string) (*Data, error)     { return nil, nil }
func (d *DLF) GetByBasename(string) (*Data, error) { return nil, nil }

func (d *DLF) ForEach(fn func(*Data) error) error {
	for i := 0; i < dlfNrEntries; i++ {
		data, err := d.Get(i)
		if err != nil {
			return err
		}
		if data == nil {
			continue
		}
		if err := fn(data); err != nil {
			return err
		}
	}
	return nil
}

func (d *DLF) Close() error { return d.src.Close() }
