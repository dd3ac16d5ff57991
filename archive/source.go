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

import "os"

// source is the backing store shared by every backend in this package:
// either a file read fully into the heap, or the file mapped read-only.
// Every backend parses and serves entries as slices of source.data,
// collapsing the reference library's separate FILE*-seek-and-fread and
// mmap-pointer-arithmetic code paths in each format into one.
type source struct {
	data   []byte
	file   *os.File
	mapped bool
}

func openSource(path string, flags OpenFlags) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if flags&Mmap == 0 {
		defer f.Close()
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return &source{data: data}, nil
	}

	data, err := mmap(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &source{data: data, file: f, mapped: true}, nil
}

func (s *source) Close() error {
	if !s.mapped {
		return nil
	}
	err := unmap(s.data)
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}
