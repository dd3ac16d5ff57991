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

package ain

import (
	"testing"
)

func newMinimalProgram(major, minor int32) *Program {
	p := New(major, minor)
	p.Code = []byte{0, 0, 0, 0}
	no := p.AddFunction("main")
	p.Functions[no].Address = 0
	p.Functions[no].ReturnType = Type{Data: Void, Struct: -1}
	gi := p.AddGlobal("gGlobalFlag")
	p.Globals[gi].Type = Type{Data: Int, Struct: -1}
	p.Main = int32(no)
	p.AddString("hello")
	p.AddString("world")
	return p
}

func TestWriteLoadRoundTripV6(t *testing.T) {
	p := newMinimalProgram(6, 0)
	raw := p.Write(false)

	got, err := Load(raw)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Version != 6 {
		t.Errorf("Version = %d, want 6", got.Version)
	}
	if len(got.Functions) != 1 || got.Functions[0].Name != "main" {
		t.Fatalf("Functions = %+v", got.Functions)
	}
	if len(got.Globals) != 1 || got.Globals[0].Name != "gGlobalFlag" {
		t.Fatalf("Globals = %+v", got.Globals)
	}
	if len(got.Strings) != 2 || got.Strings[0] != "hello" || got.Strings[1] != "world" {
		t.Fatalf("Strings = %+v", got.Strings)
	}
}

func TestWriteLoadRoundTripV11(t *testing.T) {
	p := newMinimalProgram(11, 0)
	raw := p.Write(false)

	got, err := Load(raw)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Version != 11 {
		t.Errorf("Version = %d, want 11", got.Version)
	}
	if got.Functions[0].ReturnType.Data != Void {
		t.Errorf("ReturnType = %v, want Void", got.Functions[0].ReturnType.Data)
	}
}

func TestWriteLoadRoundTripEncrypted(t *testing.T) {
	p := newMinimalProgram(8, 0)
	raw := p.Write(true)

	got, err := Load(raw)
	if err != nil {
		t.Fatalf("Load of encrypted buffer: %v", err)
	}
	if got.Version != 8 {
		t.Errorf("Version = %d, want 8", got.Version)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load([]byte("not an ain file at all, way too short"))
	if err == nil {
		t.Fatal("Load: want error on garbage input, got nil")
	}
}

func TestAddStringDeduplicates(t *testing.T) {
	p := New(6, 0)
	a := p.AddString("foo")
	b := p.AddString("bar")
	c := p.AddString("foo")
	if a != c {
		t.Errorf("AddString(\"foo\") second call = %d, want %d (dedup)", c, a)
	}
	if a == b {
		t.Errorf("AddString(\"foo\") and AddString(\"bar\") collided at %d", a)
	}
	if len(p.Strings) != 2 {
		t.Errorf("len(Strings) = %d, want 2", len(p.Strings))
	}
}

func TestAddMessageDoesNotDeduplicate(t *testing.T) {
	p := New(6, 0)
	a := p.AddMessage("hi")
	b := p.AddMessage("hi")
	if a == b {
		t.Errorf("AddMessage calls returned the same index %d, want distinct (no dedup)", a)
	}
	if len(p.Messages) != 2 {
		t.Errorf("len(Messages) = %d, want 2", len(p.Messages))
	}
}

func TestAddFunctionInfersStructOwner(t *testing.T) {
	p := New(11, 0)
	p.AddStruct("Player")
	no := p.AddFunction("Player@init")
	f := p.Functions[no]
	if f.StructType != 0 {
		t.Errorf("StructType = %d, want 0 (Player)", f.StructType)
	}
	if f.EnumType != -1 {
		t.Errorf("EnumType = %d, want -1", f.EnumType)
	}
}

func TestFunctionByNameAndStructByName(t *testing.T) {
	p := newMinimalProgram(6, 0)
	if _, ok := p.FunctionByName("main"); !ok {
		t.Error("FunctionByName(\"main\") not found")
	}
	if _, ok := p.FunctionByName("nope"); ok {
		t.Error("FunctionByName(\"nope\") unexpectedly found")
	}
	p.AddStruct("Widget")
	if idx, ok := p.StructByName("Widget"); !ok || idx != 0 {
		t.Errorf("StructByName(\"Widget\") = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestDupFunctionDeepCopiesVars(t *testing.T) {
	p := New(11, 0)
	src := p.AddFunction("orig")
	p.Functions[src].Vars = []Variable{{Name: "x", Type: Type{Data: Int, Struct: -1}}}
	dst := p.DupFunction(src)

	p.Functions[dst].Vars[0].Name = "y"
	if p.Functions[src].Vars[0].Name != "x" {
		t.Errorf("DupFunction shared backing array: src.Vars[0].Name = %q, want \"x\"", p.Functions[src].Vars[0].Name)
	}
}

func TestVersionAtLeast(t *testing.T) {
	p := &Program{Version: 11, MinorVersion: 0}
	cases := []struct {
		major, minor int32
		want         bool
	}{
		{11, 0, true},
		{11, 1, false},
		{10, 0, true},
		{12, 0, false},
	}
	for _, c := range cases {
		if got := p.versionAtLeast(c.major, c.minor); got != c.want {
			t.Errorf("versionAtLeast(%d, %d) = %v, want %v", c.major, c.minor, got, c.want)
		}
	}
}
