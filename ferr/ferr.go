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

// Package ferr defines the small error taxonomy shared by every format
// reader in this module, so callers can classify a failure with
// errors.Is regardless of which package raised it.
package ferr

import "fmt"

// Kind classifies why a format operation failed.
type Kind int

const (
	// FileError indicates a failure in the underlying I/O (open, read,
	// seek, mmap), as opposed to the bytes themselves being malformed.
	FileError Kind = iota
	// InvalidSignature indicates the leading magic/signature bytes did
	// not match any format this library recognizes.
	InvalidSignature
	// UnsupportedFormat indicates the signature was recognized but the
	// specific version or variant is not implemented.
	UnsupportedFormat
	// Invalid indicates the bytes violate a structural invariant of an
	// otherwise-recognized format (bad count, dangling index, ...).
	Invalid
	// OutOfBounds indicates a read or write past the end of a buffer.
	OutOfBounds
	// CompressionError indicates a zlib/deflate stream failed to
	// decompress or produced a size mismatch.
	CompressionError
)

func (k Kind) String() string {
	switch k {
	case FileError:
		return "file error"
	case InvalidSignature:
		return "invalid signature"
	case UnsupportedFormat:
		return "unsupported format"
	case Invalid:
		return "invalid"
	case OutOfBounds:
		return "out of bounds"
	case CompressionError:
		return "compression error"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every reader/writer in this
// module. At names the artifact or section being processed when the
// failure occurred.
type Error struct {
	Kind Kind
	At   string
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.At != "" {
		return fmt.Sprintf("%s: %s: %s", e.At, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error with the same Kind, so that
// errors.Is(err, ferr.OutOfBounds) works directly against a bare Kind
// value (Kind implements error via Error()).
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.Kind == k
}

// Error implements error, letting a bare Kind value serve as an
// errors.Is sentinel without callers constructing a full *Error.
func (k Kind) Error() string { return k.String() }

// New constructs an *Error of the given kind.
func New(kind Kind, at, msg string) *Error {
	return &Error{Kind: kind, At: at, Msg: msg}
}

// Wrap constructs an *Error of the given kind around a lower-level
// cause, in the same spirit as fmt.Errorf("%w", err) call sites
// elsewhere in this module.
func Wrap(kind Kind, at, msg string, err error) *Error {
	return &Error{Kind: kind, At: at, Msg: msg, Err: err}
}
