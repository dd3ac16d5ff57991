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

//go:build !unix

package archive

import (
	"io"
	"os"
)

// mmap falls back to a plain read on platforms without unix mmap
// semantics; the Mmap flag becomes an in-memory read, same as the
// default path, rather than failing outright.
func mmap(f *os.File) ([]byte, error) {
	return io.ReadAll(f)
}

func unmap(mem []byte) error {
	return nil
}
