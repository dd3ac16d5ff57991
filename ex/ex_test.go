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

package ex

import (
	"testing"
)

func sampleTable() *Table {
	return &Table{
		Fields: []Field{
			{Type: TypeInt, Name: "id", IsIndex: true},
			{Type: TypeString, Name: "name"},
		},
		Rows: [][]Value{
			{{Type: TypeInt, Int: 1}, {Type: TypeString, Str: "Alice"}},
			{{Type: TypeInt, Int: 2}, {Type: TypeString, Str: "Bob"}},
		},
	}
}

func sampleEx() *Ex {
	return &Ex{
		Blocks: []Block{
			{Name: "gFlag", Value: Value{Type: TypeInt, Int: 42}},
			{Name: "gRate", Value: Value{Type: TypeFloat, Float: 1.5}},
			{Name: "gTitle", Value: Value{Type: TypeString, Str: "hello"}},
			{Name: "gTable", Value: Value{Type: TypeTable, Table: sampleTable()}},
			{Name: "gList", Value: Value{Type: TypeList, List: &List{
				Items: []ListItem{
					{Value: Value{Type: TypeInt, Int: 10}},
					{Value: Value{Type: TypeString, Str: "item"}},
				},
			}}},
			{Name: "gTree", Value: Value{Type: TypeTree, Tree: &Tree{
				Name: "root",
				Children: []Tree{
					{Name: "a", IsLeaf: true, Leaf: Leaf{Name: "a", Value: Value{Type: TypeInt, Int: 7}}},
					{Name: "b", Children: []Tree{
						{Name: "c", IsLeaf: true, Leaf: Leaf{Name: "c", Value: Value{Type: TypeString, Str: "deep"}}},
					}},
				},
			}}},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	e := sampleEx()
	raw, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Blocks) != len(e.Blocks) {
		t.Fatalf("got %d blocks, want %d", len(got.Blocks), len(e.Blocks))
	}
	if got.GetInt("gFlag", -1) != 42 {
		t.Errorf("gFlag = %d, want 42", got.GetInt("gFlag", -1))
	}
	if got.GetFloat("gRate", 0) != 1.5 {
		t.Errorf("gRate = %v, want 1.5", got.GetFloat("gRate", 0))
	}
	if s, ok := got.GetString("gTitle"); !ok || s != "hello" {
		t.Errorf("gTitle = %q, %v", s, ok)
	}

	tab := got.GetTable("gTable")
	if tab == nil {
		t.Fatal("gTable missing")
	}
	if len(tab.Rows) != 2 || tab.Rows[1][1].Str != "Bob" {
		t.Fatalf("gTable rows = %+v", tab.Rows)
	}
	if row := tab.RowAtIntKey(2); row != 1 {
		t.Errorf("RowAtIntKey(2) = %d, want 1", row)
	}

	list := got.GetList("gList")
	if list == nil || len(list.Items) != 2 || list.Items[1].Value.Str != "item" {
		t.Fatalf("gList = %+v", list)
	}

	tree := got.GetTree("gTree")
	if tree == nil {
		t.Fatal("gTree missing")
	}
	if v := got.Get("gTree.a"); v == nil || v.Int != 7 {
		t.Fatalf("Get(gTree.a) = %+v", v)
	}
	if v := got.Get("gTree.b.c"); v == nil || v.Str != "deep" {
		t.Fatalf("Get(gTree.b.c) = %+v", v)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	if _, err := Decode([]byte("not an ex file")); err == nil {
		t.Fatal("Decode: want error on bad magic")
	}
}

func TestAppendMergesTableRows(t *testing.T) {
	base := &Ex{Blocks: []Block{
		{Name: "gTable", Value: Value{Type: TypeTable, Table: sampleTable()}},
	}}
	patch := &Ex{Blocks: []Block{
		{Name: "gTable", Value: Value{Type: TypeTable, Table: &Table{
			Fields: sampleTable().Fields,
			Rows:   [][]Value{{{Type: TypeInt, Int: 3}, {Type: TypeString, Str: "Carol"}}},
		}}},
	}}
	if err := base.Append(patch); err != nil {
		t.Fatalf("Append: %v", err)
	}
	tab := base.GetTable("gTable")
	if len(tab.Rows) != 3 || tab.Rows[2][1].Str != "Carol" {
		t.Fatalf("merged rows = %+v", tab.Rows)
	}
}

func TestAppendRejectsMismatchedTableHeader(t *testing.T) {
	base := &Ex{Blocks: []Block{
		{Name: "gTable", Value: Value{Type: TypeTable, Table: sampleTable()}},
	}}
	patch := &Ex{Blocks: []Block{
		{Name: "gTable", Value: Value{Type: TypeTable, Table: &Table{
			Fields: []Field{{Type: TypeInt, Name: "onlyField"}},
			Rows:   [][]Value{{{Type: TypeInt, Int: 1}}},
		}}},
	}}
	if err := base.Append(patch); err == nil {
		t.Fatal("Append: want error for mismatched table header")
	}
}

func TestAppendAddsNewBlock(t *testing.T) {
	base := &Ex{Blocks: []Block{{Name: "gFlag", Value: Value{Type: TypeInt, Int: 1}}}}
	patch := &Ex{Blocks: []Block{{Name: "gNew", Value: Value{Type: TypeString, Str: "added"}}}}
	if err := base.Append(patch); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if s, ok := base.GetString("gNew"); !ok || s != "added" {
		t.Fatalf("gNew = %q, %v", s, ok)
	}
}

func TestAppendMergesTreeByName(t *testing.T) {
	base := &Ex{Blocks: []Block{{Name: "gTree", Value: Value{Type: TypeTree, Tree: &Tree{
		Name: "root",
		Children: []Tree{
			{Name: "a", IsLeaf: true, Leaf: Leaf{Name: "a", Value: Value{Type: TypeInt, Int: 1}}},
		},
	}}}}}
	patch := &Ex{Blocks: []Block{{Name: "gTree", Value: Value{Type: TypeTree, Tree: &Tree{
		Name: "root",
		Children: []Tree{
			{Name: "a", IsLeaf: true, Leaf: Leaf{Name: "a", Value: Value{Type: TypeInt, Int: 99}}},
			{Name: "b", IsLeaf: true, Leaf: Leaf{Name: "b", Value: Value{Type: TypeInt, Int: 2}}},
		},
	}}}}}
	if err := base.Append(patch); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if v := base.Get("gTree.a"); v == nil || v.Int != 99 {
		t.Fatalf("gTree.a = %+v, want 99", v)
	}
	if v := base.Get("gTree.b"); v == nil || v.Int != 2 {
		t.Fatalf("gTree.b = %+v, want 2", v)
	}
}

func TestReplaceOverwritesWholesale(t *testing.T) {
	base := &Ex{Blocks: []Block{
		{Name: "gTable", Value: Value{Type: TypeTable, Table: sampleTable()}},
	}}
	newTable := &Table{
		Fields: []Field{{Type: TypeInt, Name: "onlyField"}},
		Rows:   [][]Value{{{Type: TypeInt, Int: 5}}},
	}
	patch := &Ex{Blocks: []Block{{Name: "gTable", Value: Value{Type: TypeTable, Table: newTable}}}}
	base.Replace(patch)
	tab := base.GetTable("gTable")
	if len(tab.Fields) != 1 || tab.Fields[0].Name != "onlyField" {
		t.Fatalf("Replace did not overwrite wholesale: %+v", tab.Fields)
	}
}

func TestExtractAppendReturnsOnlyChanges(t *testing.T) {
	base := &Ex{Blocks: []Block{
		{Name: "gFlag", Value: Value{Type: TypeInt, Int: 1}},
		{Name: "gTable", Value: Value{Type: TypeTable, Table: sampleTable()}},
	}}
	patch := &Ex{Blocks: []Block{
		{Name: "gTable", Value: Value{Type: TypeTable, Table: &Table{
			Fields: sampleTable().Fields,
			Rows:   [][]Value{{{Type: TypeInt, Int: 3}, {Type: TypeString, Str: "Carol"}}},
		}}},
		{Name: "gNew", Value: Value{Type: TypeInt, Int: 9}},
	}}
	out, err := ExtractAppend(base, patch)
	if err != nil {
		t.Fatalf("ExtractAppend: %v", err)
	}
	if len(out.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2 (gFlag must not appear)", len(out.Blocks))
	}
	if b := findBlock(base.Blocks, "gTable", TypeTable); len(b.Value.Table.Rows) != 2 {
		t.Fatalf("ExtractAppend must not mutate base, got %d rows", len(b.Value.Table.Rows))
	}
	tab := out.GetTable("gTable")
	if tab == nil || len(tab.Rows) != 3 {
		t.Fatalf("extracted gTable rows = %+v", tab)
	}
	if out.GetInt("gNew", -1) != 9 {
		t.Fatal("extracted gNew missing")
	}
}

func TestReadTableAutoSwapsRowsAndColumns(t *testing.T) {
	table := &Table{
		Fields: []Field{
			{Type: TypeInt, Name: "id", IsIndex: true},
			{Type: TypeString, Name: "name"},
		},
		Rows: [][]Value{
			{{Type: TypeInt, Int: 1}, {Type: TypeString, Str: "Alice"}},
			{{Type: TypeInt, Int: 2}, {Type: TypeString, Str: "Bob"}},
			{{Type: TypeInt, Int: 3}, {Type: TypeString, Str: "Carol"}},
		},
	}
	e := &Ex{RowsFirst: true, Blocks: []Block{
		{Name: "gTable", Value: Value{Type: TypeTable, Table: table}},
	}}
	raw, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.RowsFirst {
		t.Fatal("Decode did not detect rows-first table layout")
	}
	tab := got.GetTable("gTable")
	if len(tab.Rows) != 3 || tab.Rows[2][1].Str != "Carol" {
		t.Fatalf("rows-first round trip = %+v", tab.Rows)
	}
}

func TestNestedSubtable(t *testing.T) {
	inner := &Table{
		Fields: []Field{{Type: TypeInt, Name: "x"}},
		Rows:   [][]Value{{{Type: TypeInt, Int: 1}}},
	}
	outer := &Table{
		Fields: []Field{
			{Type: TypeTable, Name: "sub", Subfields: inner.Fields},
		},
		Rows: [][]Value{
			{{Type: TypeTable, Table: inner}},
		},
	}
	e := &Ex{Blocks: []Block{{Name: "gOuter", Value: Value{Type: TypeTable, Table: outer}}}}
	raw, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sub := got.GetTable("gOuter").Rows[0][0].Table
	if len(sub.Rows) != 1 || sub.Rows[0][0].Int != 1 {
		t.Fatalf("nested subtable = %+v", sub)
	}
}
