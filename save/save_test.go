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

package save

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/ain"
)

func TestContainerRoundTripPlain(t *testing.T) {
	c := &Container{Payload: []byte("hello, save world"), Encrypted: false, CompressionLevel: zlib.DefaultCompression}
	raw, err := c.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := ReadContainer(raw)
	if err != nil {
		t.Fatalf("ReadContainer: %v", err)
	}
	if !bytes.Equal(got.Payload, c.Payload) {
		t.Errorf("Payload = %q, want %q", got.Payload, c.Payload)
	}
	if got.Encrypted {
		t.Error("Encrypted = true, want false")
	}
}

func TestContainerRoundTripEncrypted(t *testing.T) {
	c := &Container{Payload: bytes.Repeat([]byte("abc"), 50), Encrypted: true, CompressionLevel: zlib.BestCompression}
	raw, err := c.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := ReadContainer(raw)
	if err != nil {
		t.Fatalf("ReadContainer: %v", err)
	}
	if !got.Encrypted {
		t.Error("Encrypted = false, want true")
	}
	if !bytes.Equal(got.Payload, c.Payload) {
		t.Error("Payload mismatch after encrypted round-trip")
	}
}

func TestReadContainerRejectsBadMagic(t *testing.T) {
	if _, err := ReadContainer([]byte("not a save file at all")); err == nil {
		t.Fatal("ReadContainer: want error on bad magic")
	}
}

func TestGSaveRoundTripV4(t *testing.T) {
	gs := NewGSave(4, "TestGame", 2, "")
	gs.AddGlobalsRecord(2)
	gs.Globals[0] = GGlobal{Type: ain.Int, Value: 42, Name: "gScore", Unknown: 1}
	sIdx := gs.StringValue("player name")
	gs.Globals[1] = GGlobal{Type: ain.String, Value: sIdx, Name: "gPlayerName", Unknown: 1}

	raw := gs.Write()
	got, err := ParseGSave(raw)
	if err != nil {
		t.Fatalf("ParseGSave: %v", err)
	}
	if got.Version != 4 {
		t.Errorf("Version = %d, want 4", got.Version)
	}
	if len(got.Globals) != 2 || got.Globals[0].Value != 42 {
		t.Fatalf("Globals = %+v", got.Globals)
	}
	if got.Strings[got.Globals[1].Value] != "player name" {
		t.Errorf("string global resolved to %q", got.Strings[got.Globals[1].Value])
	}
}

func TestGSaveEmptyStringSentinel(t *testing.T) {
	gs := NewGSave(7, "TestGame", 1, "main")
	gs.AddGlobalsRecord(1)
	gs.Globals[0] = GGlobal{Type: ain.String, Value: gs.StringValue(""), Name: "gEmpty"}

	if gs.Globals[0].Value != emptyStringValue {
		t.Fatalf("StringValue(\"\") = %#x, want %#x", gs.Globals[0].Value, emptyStringValue)
	}

	raw := gs.Write()
	got, err := ParseGSave(raw)
	if err != nil {
		t.Fatalf("ParseGSave: %v", err)
	}
	if got.Globals[0].Value != emptyStringValue {
		t.Errorf("round-tripped sentinel = %#x, want %#x", got.Globals[0].Value, emptyStringValue)
	}
}

func TestGSaveRejectsBadVersion(t *testing.T) {
	gs := NewGSave(6, "x", 0, "")
	raw := gs.Write()
	if _, err := ParseGSave(raw); err == nil {
		t.Fatal("ParseGSave: want error for unsupported version 6")
	}
}

func TestGSaveValidatesRecordIndexBounds(t *testing.T) {
	gs := NewGSave(4, "x", 0, "")
	gs.AddRecord(GRecord{Type: RecordGlobals, Indices: []int32{5}})
	raw := gs.Write()
	if _, err := ParseGSave(raw); err == nil {
		t.Fatal("ParseGSave: want error for out-of-bounds record index")
	}
}

func TestRSaveRoundTripV4(t *testing.T) {
	rs := &RSave{
		Version:       4,
		Key:           "resume",
		CurrentReturn: ReturnRecord{FrameIndex: 0, Address: 100},
		Stack:         []int32{1, 2, 3},
		Frames:        []CallFrame{{Local: 0, Type: 1, Struc: -1}},
		Returns:       []ReturnRecord{{FrameIndex: -1, Address: 0}},
		Heap: []HeapObject{
			{Kind: HeapString, Text: "hi"},
			{Kind: HeapNull},
			{Kind: HeapFrame, Function: Symbol{ID: 7}, Types: []ain.DataType{ain.Int}, Slots: []int32{42}},
		},
	}
	raw := rs.Write()
	got, err := ParseRSave(raw)
	if err != nil {
		t.Fatalf("ParseRSave: %v", err)
	}
	if got.Version != 4 || got.Key != "resume" {
		t.Fatalf("got = %+v", got)
	}
	if len(got.Heap) != 3 || got.Heap[0].Text != "hi" || got.Heap[1].Kind != HeapNull {
		t.Fatalf("Heap = %+v", got.Heap)
	}
	if got.Heap[2].Function.ID != 7 || got.Heap[2].Slots[0] != 42 {
		t.Errorf("Heap[2] = %+v", got.Heap[2])
	}
}

func TestRSaveRoundTripV6SymbolNames(t *testing.T) {
	rs := &RSave{
		Version: 6,
		Key:     "resume6",
		Heap: []HeapObject{
			{Kind: HeapFrame, Function: Symbol{Name: "Game@update"}, Types: []ain.DataType{}},
		},
	}
	raw := rs.Write()
	got, err := ParseRSave(raw)
	if err != nil {
		t.Fatalf("ParseRSave: %v", err)
	}
	if got.Heap[0].Function.Name != "Game@update" {
		t.Errorf("Function.Name = %q, want Game@update", got.Heap[0].Function.Name)
	}
}

func TestRSaveCommentsOnly(t *testing.T) {
	rs := &RSave{Version: 7, Key: "k", Comments: "quicksave before boss", CommentsOnly: true}
	raw := rs.Write()
	got, err := ParseRSave(raw)
	if err != nil {
		t.Fatalf("ParseRSave: %v", err)
	}
	if !got.CommentsOnly || got.Comments != "quicksave before boss" {
		t.Errorf("got = %+v", got)
	}
}

func TestRSaveRejectsBadMagic(t *testing.T) {
	if _, err := ParseRSave([]byte("nope")); err == nil {
		t.Fatal("ParseRSave: want error on bad magic")
	}
}

func TestRSaveV9HasNextSeqAndDelegate(t *testing.T) {
	rs := &RSave{
		Version:    9,
		Key:        "k9",
		HasNextSeq: true,
		NextSeq:    12345,
		Heap: []HeapObject{
			{Kind: HeapDelegate, Slots: []int32{1, 2, 3}},
		},
	}
	raw := rs.Write()
	got, err := ParseRSave(raw)
	if err != nil {
		t.Fatalf("ParseRSave: %v", err)
	}
	if got.NextSeq != 12345 {
		t.Errorf("NextSeq = %d, want 12345", got.NextSeq)
	}
	if got.Heap[0].Kind != HeapDelegate || len(got.Heap[0].Slots) != 3 {
		t.Errorf("Heap[0] = %+v", got.Heap[0])
	}
}
