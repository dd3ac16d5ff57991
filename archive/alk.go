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

type alkEntry struct{ off, size uint32 }

// ALK is a System 4 "ALK0" archive: a flat off/size table with no
// stored names, addressed only by number.
type ALK struct {
	src     *source
	entries []alkEntry
}

func OpenALK(path string, flags OpenFlags) (*ALK, error) {
	src, err := openSource(path, flags)
	if err != nil {
		return nil, ferr.Wrap(ferr.FileError, "alk", "open", err)
	}
	data := src.data
	if len(data) < 8 || string(data[0:4]) != "ALK0" {
		src.Close()
		return nil, ferr.New(ferr.InvalidSignature, "alk", "bad magic")
	}
	nrFiles := leU32(data, 4)
	a := &ALK{src: src, entries: make([]alkEntry, nrFiles)}
	off := 8
	for i := range a.entries {
		if off+8 > len(data) {
			src.Close()
			return nil, ferr.New(ferr.OutOfBounds, "alk", "file table truncated")
		}
		a.entries[i] = alkEntry{off: leU32(data, off), size: leU32(data, off+4)}
		off += 8
	}
	return a, nil
}

// Exists reports an entry as present only if its recorded size is
// non-zero, matching the reference (a reserved slot with a zero size
// is not a retrievable file).
func (a *ALK) Exists(no int) bool {
	return no >= 0 && no < len(a.entries) && a.entries[no].size > 0
}

func (a *ALK) Get(no int) (*Data, error) {
	if !a.Exists(no) {
		return nil, nil
	}
	e := a.entries[no]
	data := a.src.data
	if uint64(e.off)+uint64(e.size) > uint64(len(data)) {
		return nil, ferr.New(ferr.OutOfBounds, "alk", "entry data extends past end of file")
	}
	// ALK stores no names; the reference synthesizes one from the
	// entry number alone (with a long-standing TODO to sniff the file
	// magic for an extension, never implemented).
	return &Data{No: no, Name: fmt.Sprintf("%d", no), Size: e.size, Data: data[e.off : e.off+e.size]}, nil
}

// ALK has no name index; the reference's get_by_name/get_by_basename
// ops are both nil for this format.
func (a *ALK) ExistsByName(string) (int, bool)     { return 0, false }
func (a *ALK) ExistsByBasename(string) (int, bool) { return 0, false }
func (a *ALK) GetByName(string) (*Data, error)     { return nil, nil }
func (a *ALK) GetByBasename(string) (*Data, error) { return nil, nil }

func (a *ALK) ForEach(fn func(*Data) error) error {
	for i := range a.entries {
		d, err := a.Get(i)
		if err != nil {
			return err
		}
		if d == nil {
			continue
		}
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}

func (a *ALK) Close() error { return a.src.Close() }
