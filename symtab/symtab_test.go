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

package symtab

import "testing"

func TestTableGetPut(t *testing.T) {
	tbl := NewTable(4)
	tbl.Put("foo", 1)
	tbl.Put("bar", 2)
	if v, ok := tbl.Get("foo"); !ok || v != 1 {
		t.Fatalf("Get(foo) = %d, %v", v, ok)
	}
	if _, ok := tbl.Get("missing"); ok {
		t.Fatal("expected miss")
	}
}

func TestTableOverwrite(t *testing.T) {
	tbl := NewTable(4)
	tbl.Put("x", 1)
	tbl.Put("x", 2)
	if v, _ := tbl.Get("x"); v != 2 {
		t.Fatalf("Get(x) = %d, want 2", v)
	}
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}
}

func TestIntTable(t *testing.T) {
	it := NewIntTable()
	it.Put(5, 10)
	if v, ok := it.Get(5); !ok || v != 10 {
		t.Fatalf("Get(5) = %d, %v", v, ok)
	}
}

func TestNameIndexDisambiguation(t *testing.T) {
	ni := NewNameIndex()
	ni.Add("f", 0)
	ni.Add("f", 7)
	ni.Add("f", 12)

	if i, ok := ni.Lookup("f"); !ok || i != 0 {
		t.Fatalf("Lookup(f) = %d, %v, want 0", i, ok)
	}
	if i, ok := ni.Lookup("f#1"); !ok || i != 7 {
		t.Fatalf("Lookup(f#1) = %d, %v, want 7", i, ok)
	}
	if i, ok := ni.Lookup("f#2"); !ok || i != 12 {
		t.Fatalf("Lookup(f#2) = %d, %v, want 12", i, ok)
	}
	if _, ok := ni.Lookup("f#9"); ok {
		t.Fatal("expected out-of-range disambiguator to miss")
	}
	if all := ni.All("f"); len(all) != 3 || all[0] != 0 || all[2] != 12 {
		t.Fatalf("All(f) = %v", all)
	}
}

func TestNameIndexMiss(t *testing.T) {
	ni := NewNameIndex()
	if _, ok := ni.Lookup("nope"); ok {
		t.Fatal("expected miss on empty index")
	}
}
