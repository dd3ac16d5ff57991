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

// Package archive implements read access to the System 4 engine's
// resource-archive container formats: ALD (multi-volume, magic-byte
// obfuscated), AFA v1/v2 and the encrypted AFA v3, AAR, ALK, DLF, and
// FLAT. Every format is opened into a common Archive interface so a
// caller can enumerate and extract entries without knowing which
// container it is holding.
package archive

import "strings"

// OpenFlags controls how Open maps a backing file into memory.
type OpenFlags uint32

const (
	// Mmap maps the file read-only instead of reading it fully into
	// the process heap. Prefer this for archives too large to
	// comfortably copy, at the cost of keeping the file descriptor
	// open for the archive's lifetime.
	Mmap OpenFlags = 1 << iota
)

// Data is one retrieved archive entry: its logical number, name (decoded
// to UTF-8; numeric-only backends like ALK synthesize one), and content.
// Data aliases the archive's backing store — it is valid until the
// Archive is closed and must be copied by the caller if it needs to
// outlive that.
type Data struct {
	No   int
	Name string
	Size uint32
	Data []byte
}

// Archive is the common read interface every backend in this package
// implements. It collapses the reference library's split
// exists/get/load/release/free-data vtable into a single get-or-nil
// call per lookup kind: Go's garbage collector makes the reference
// implementation's explicit release and free-data steps unnecessary,
// since a Data's backing bytes are either a slice of the still-open
// mmap or owned heap memory the collector reclaims once unreferenced.
type Archive interface {
	// Exists reports whether entry number no is present.
	Exists(no int) bool
	// ExistsByName reports whether an entry with the exact given name
	// is present, returning its number. Backends that do not index by
	// name (ALK, DLF) always report false.
	ExistsByName(name string) (no int, ok bool)
	// ExistsByBasename is like ExistsByName but compares names with
	// their extension stripped and case-folded. Backends that do not
	// support basename lookup (ALD, AAR, ALK, DLF) always report false.
	ExistsByBasename(name string) (no int, ok bool)

	// Get retrieves entry no, or (nil, nil) if it does not exist.
	Get(no int) (*Data, error)
	// GetByName retrieves the entry with the exact given name, or
	// (nil, nil) if there is none.
	GetByName(name string) (*Data, error)
	// GetByBasename is the basename-comparison analogue of GetByName.
	GetByBasename(name string) (*Data, error)

	// ForEach calls fn once per entry in archive order. It stops and
	// returns fn's error as soon as fn returns a non-nil one.
	ForEach(fn func(*Data) error) error

	// Close releases any mapped memory and open file descriptors.
	Close() error
}

// Basename strips the extension from an already UTF-8-decoded entry
// name and case-folds it, for backends that index entries for
// ExistsByBasename/GetByBasename lookups.
//
// This intentionally does not reuse sjis.Basename: that function walks
// raw Shift-JIS bytes and treats 0x81-0x9F/0xE0-0xFC as lead bytes of a
// two-byte sequence, a rule that does not hold for UTF-8 text (where
// those same byte values appear as trailing bytes of multi-byte
// sequences). Every name reaching this package has already been decoded
// to UTF-8 by the backend that read it, so basename comparison only
// needs to be ASCII-safe.
func Basename(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}
