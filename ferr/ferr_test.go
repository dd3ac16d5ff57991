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

package ferr

import (
	"errors"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := New(OutOfBounds, "buffer", "read past end")
	if !errors.Is(err, OutOfBounds) {
		t.Fatal("expected errors.Is to match OutOfBounds")
	}
	if errors.Is(err, Invalid) {
		t.Fatal("expected errors.Is not to match a different kind")
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("zlib: invalid checksum")
	err := Wrap(CompressionError, "qnt", "decompress failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the wrapped cause")
	}
	if !errors.Is(err, CompressionError) {
		t.Fatal("expected errors.Is to match CompressionError")
	}
}
