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

// Package cg decodes and encodes the image formats System 4 engines
// embed in their archives: QNT (the native predictive-coded format),
// AJP (JPEG plus an encrypted alpha mask), DCF (a QNT delta against a
// named base image), PCF (a QNT wrapped in a metadata shell), ROU (a
// flat bitmap), and the PNG/JPEG/WebP formats some titles ship
// directly. Every format normalizes to the same in-memory shape: 8-bit
// RGBA pixels, row-major, no padding.
package cg

import (
	"bytes"

	"github.com/nunuhara/system4/archive"
	"github.com/nunuhara/system4/ferr"
)

// Type identifies a CG (computer graphic) container format.
type Type int

const (
	TypeUnknown Type = iota
	TypeQNT
	TypeAJP
	TypePNG
	TypePMS8
	TypePMS16
	TypeWebP
	TypeDCF
	TypeJPEG
	TypePCF
	TypeROU
)

// Extension returns the filename extension conventionally used for t,
// or the empty string for TypeUnknown or any value out of range.
func (t Type) Extension() string {
	switch t {
	case TypeQNT:
		return "qnt"
	case TypeAJP:
		return "ajp"
	case TypePNG:
		return "png"
	case TypePMS8, TypePMS16:
		return "pms"
	case TypeWebP:
		return "webp"
	case TypeDCF:
		return "dcf"
	case TypeJPEG:
		return "jpg"
	case TypePCF:
		return "pcf"
	case TypeROU:
		return "rou"
	default:
		return ""
	}
}

func (t Type) String() string {
	if e := t.Extension(); e != "" {
		return e
	}
	return "unknown"
}

// Metrics describes a CG's geometry without requiring the pixel data
// to be decoded.
type Metrics struct {
	X, Y        int
	W, H        int
	BPP         int
	HasPixel    bool
	HasAlpha    bool
	PixelPitch  int
	AlphaPitch  int
}

// CG is a fully decoded image: its original container type, its
// metrics, and RGBA8888 pixels (W*H*4 bytes, row-major, unpadded).
type CG struct {
	Type    Type
	Metrics Metrics
	Pixels  []byte
}

// CheckFormat sniffs data's leading bytes and reports which CG format,
// if any, it recognizes. The check order mirrors the reference
// dispatcher: QNT and AJP are checked first since their magics are
// unambiguous 4-byte tags, followed by the generic container formats,
// then the formats (PMS, JPEG) with the weakest signatures, and finally
// PCF and ROU.
func CheckFormat(data []byte) Type {
	switch {
	case qntCheckFormat(data):
		return TypeQNT
	case ajpCheckFormat(data):
		return TypeAJP
	case pngCheckFormat(data):
		return TypePNG
	case webpCheckFormat(data):
		return TypeWebP
	case dcfCheckFormat(data):
		return TypeDCF
	case pms8CheckFormat(data):
		return TypePMS8
	case pms16CheckFormat(data):
		return TypePMS16
	case jpegCheckFormat(data):
		return TypeJPEG
	case pcfCheckFormat(data):
		return TypePCF
	case rouCheckFormat(data):
		return TypeROU
	default:
		return TypeUnknown
	}
}

// GetMetrics returns data's geometry without decoding pixels, where
// the format supports doing so cheaply.
func GetMetrics(data []byte) (Metrics, error) {
	switch CheckFormat(data) {
	case TypeQNT:
		return qntGetMetrics(data)
	case TypePNG:
		return pngGetMetrics(data)
	case TypeWebP:
		return webpGetMetrics(data)
	case TypeDCF:
		return dcfGetMetrics(data)
	case TypePMS8, TypePMS16:
		return Metrics{}, ferr.New(ferr.UnsupportedFormat, "cg", "PMS metrics not implemented")
	case TypeJPEG:
		return jpegGetMetrics(data)
	case TypePCF:
		return pcfGetMetrics(data)
	case TypeROU:
		return rouGetMetrics(data)
	case TypeAJP:
		// The reference's own metrics dispatcher (cg_get_metrics_internal)
		// has no AJP case either: width/height live in the AJP header, but
		// getting them requires no more work than a full Load, so AJP
		// offers no header-only fast path to begin with.
		return Metrics{}, ferr.New(ferr.UnsupportedFormat, "cg", "AJP metrics not implemented")
	default:
		return Metrics{}, ferr.New(ferr.InvalidSignature, "cg", "unrecognized CG format")
	}
}

// Load decodes data into a fully realized RGBA image. ar, if non-nil,
// is consulted by formats that reference another archive entry (DCF's
// base image, WebP's "OVER" base-CG trailer); it may be nil for
// formats or files that don't need it, in which case those references
// are left unresolved rather than treated as an error.
func Load(data []byte, ar archive.Archive) (*CG, error) {
	switch CheckFormat(data) {
	case TypeQNT:
		return qntExtract(data)
	case TypeAJP:
		return ajpExtract(data)
	case TypePNG:
		return pngExtract(data)
	case TypeWebP:
		return webpExtract(data, ar)
	case TypeDCF:
		return dcfExtract(data, ar)
	case TypeJPEG:
		return jpegExtract(data)
	case TypePCF:
		return pcfExtract(data)
	case TypeROU:
		return rouExtract(data)
	case TypePMS8, TypePMS16:
		return nil, ferr.New(ferr.UnsupportedFormat, "cg", "PMS decoding not implemented")
	default:
		return nil, ferr.New(ferr.InvalidSignature, "cg", "unrecognized CG format")
	}
}

// LoadEntry decodes the archive entry no, resolving format-specific
// cross-references (DCF base images, WebP "OVER" trailers) against ar.
func LoadEntry(ar archive.Archive, no int) (*CG, error) {
	d, err := ar.Get(no)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ferr.New(ferr.Invalid, "cg", "entry does not exist")
	}
	return Load(d.Data, ar)
}

// Write encodes cg in the given container format. Only QNT and PNG
// support encoding; WebP decoding is provided by the ecosystem decoder
// this module uses (golang.org/x/image/webp), which does not also
// provide an encoder, so WebP encoding is not implemented here.
func Write(cg *CG, typ Type, dst *bytes.Buffer) error {
	switch typ {
	case TypeQNT:
		return qntWrite(cg, dst)
	case TypePNG:
		return pngWrite(cg, dst)
	default:
		return ferr.New(ferr.UnsupportedFormat, "cg", "encoding not supported for this CG type")
	}
}
