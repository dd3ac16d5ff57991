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

package cg

import (
	"bytes"

	"github.com/nunuhara/system4/ferr"
)

func pcfCheckFormat(data []byte) bool {
	return len(data) >= 4 && bytes.Equal(data[:4], []byte("pcf "))
}

// pcfCGOffset walks the nested 'pcf '/'ptdl'/'pcgd' section shell and
// returns the byte offset of the QNT image it wraps.
func pcfCGOffset(data []byte) (int, error) {
	if len(data) < 8 {
		return 0, ferr.New(ferr.OutOfBounds, "pcf", "header truncated")
	}
	pcfSize := int(leU32(data, 4))
	if len(data) < pcfSize+16 {
		return 0, ferr.New(ferr.OutOfBounds, "pcf", "pcf section extends past end of data")
	}
	if !bytes.Equal(data[8+pcfSize:8+pcfSize+4], []byte("ptdl")) {
		return 0, ferr.New(ferr.Invalid, "pcf", "expected ptdl section")
	}
	ptdlSize := int(leU32(data, 8+pcfSize+4))
	if len(data) < pcfSize+ptdlSize+24 {
		return 0, ferr.New(ferr.OutOfBounds, "pcf", "ptdl section extends past end of data")
	}
	pcgdOff := 8 + pcfSize + 8 + ptdlSize
	if !bytes.Equal(data[pcgdOff:pcgdOff+4], []byte("pcgd")) {
		return 0, ferr.New(ferr.Invalid, "pcf", "expected pcgd section")
	}
	pcgdSize := int(leU32(data, pcgdOff+4))
	if pcgdSize < 4 || !bytes.Equal(data[pcgdOff+8:pcgdOff+11], []byte("QNT")) {
		return 0, ferr.New(ferr.Invalid, "pcf", "pcf CG isn't QNT format")
	}
	return pcgdOff + 8, nil
}

func pcfGetMetrics(data []byte) (Metrics, error) {
	off, err := pcfCGOffset(data)
	if err != nil {
		return Metrics{}, err
	}
	return qntGetMetrics(data[off:])
}

func pcfExtract(data []byte) (*CG, error) {
	off, err := pcfCGOffset(data)
	if err != nil {
		return nil, err
	}
	cg, err := qntExtract(data[off:])
	if err != nil {
		return nil, err
	}
	cg.Type = TypePCF
	return cg, nil
}
