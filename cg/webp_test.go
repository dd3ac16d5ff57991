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

import "testing"

func TestWebPCheckFormat(t *testing.T) {
	riff := []byte("RIFF\x00\x00\x00\x00WEBPVP8 ")
	if !webpCheckFormat(riff) {
		t.Fatal("expected RIFF/WEBP magic to match")
	}
	if webpCheckFormat([]byte("QNT\x00")) {
		t.Fatal("did not expect QNT magic to match")
	}
}

func TestWebPBaseCGShortTrailer(t *testing.T) {
	data := make([]byte, 20)
	copy(data[len(data)-12:len(data)-8], "OVER")
	putU32(data, len(data)-4, 7)
	if got := webpBaseCG(data); got != 7 {
		t.Fatalf("webpBaseCG = %d, want 7", got)
	}
}

func TestWebPBaseCGLongTrailer(t *testing.T) {
	data := make([]byte, 32)
	copy(data[len(data)-24:len(data)-20], "OVER")
	putU32(data, len(data)-16, 42)
	if got := webpBaseCG(data); got != 42 {
		t.Fatalf("webpBaseCG = %d, want 42", got)
	}
}

func TestWebPBaseCGNoTrailer(t *testing.T) {
	data := make([]byte, 16)
	if got := webpBaseCG(data); got != -1 {
		t.Fatalf("webpBaseCG = %d, want -1", got)
	}
}
