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

package mt19937

import (
	"bytes"
	"testing"
)

func TestXORCodeInvolution(t *testing.T) {
	orig := []byte("the quick brown fox jumps over the lazy dog, twice")
	buf := append([]byte(nil), orig...)
	XORCode(buf, 0x5D3E3)
	if bytes.Equal(buf, orig) {
		t.Fatal("expected XORCode to change the buffer")
	}
	XORCode(buf, 0x5D3E3)
	if !bytes.Equal(buf, orig) {
		t.Fatal("expected a second XORCode with the same seed to invert the first")
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)
	XORCode(a, 0x5D3E3)
	XORCode(b, 0x12320F)
	if bytes.Equal(a, b) {
		t.Fatal("expected different seeds to produce different keystreams")
	}
}

func TestUint32Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("generators with the same seed diverged at draw %d", i)
		}
	}
}
