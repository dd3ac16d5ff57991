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

// Package ex decodes and encodes System 4 "EX" structured data files: a
// permuted-byte, zlib-compressed container around a small recursive value
// format (int/float/string/table/list/tree) used for game scenario and
// configuration data.
package ex

// ValueType identifies the kind of value a Value, Field, or table column
// holds.
type ValueType int32

const (
	TypeInt ValueType = iota + 1
	TypeFloat
	TypeString
	TypeTable
	TypeList
	TypeTree
)

func (t ValueType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeTable:
		return "table"
	case TypeList:
		return "list"
	case TypeTree:
		return "tree"
	default:
		return "unknown_type"
	}
}

// Value is a tagged union holding one of the six EX value kinds.
type Value struct {
	Type   ValueType
	Int    int32
	Float  float32
	Str    string
	Table  *Table
	List   *List
	Tree   *Tree
}

// Field describes one column of a Table: its type, name, an optional
// constant value, whether it is the table's index column, and (for
// EX_TABLE-typed columns) the schema of the nested sub-table stored in
// each cell.
type Field struct {
	Type      ValueType
	Name      string
	HasValue  bool
	Value     Value
	IsIndex   bool
	Subfields []Field
}

// Table is a 2-D grid of Values, with a Field schema describing each
// column.
type Table struct {
	Fields []Field
	// Rows holds Rows[row][col]. len(Rows[i]) == len(Fields) for all i.
	Rows [][]Value
}

// Columns returns the number of columns, i.e. len(Fields).
func (t *Table) Columns() int { return len(t.Fields) }

// ListItem is one element of a List: a Value plus the byte size its
// encoded form occupied on disk, as read. Decode rejects an item whose
// recorded size differs from its encoding, and Encode writes the size it
// recomputes from the value rather than this field.
type ListItem struct {
	Size  uint32
	Value Value
}

// List is a homogeneous-or-not sequence of sized Values.
type List struct {
	Items []ListItem
}

// Leaf is the payload of a Tree node with IsLeaf set: a named Value plus
// its encoded byte size.
type Leaf struct {
	Size  uint32
	Name  string
	Value Value
}

// Tree is a node in a named, recursively nested key/value tree. A node is
// either an interior node with Children, or a leaf holding a Leaf value;
// never both.
type Tree struct {
	Name     string
	IsLeaf   bool
	Children []Tree
	Leaf     Leaf
}

// Child looks up an immediate child of an interior node by name.
func (t *Tree) Child(name string) *Tree {
	if t.IsLeaf {
		return nil
	}
	for i := range t.Children {
		if t.Children[i].Name == name {
			return &t.Children[i]
		}
	}
	return nil
}

// LeafValue returns the value of a leaf node, or nil if t is an interior
// node.
func (t *Tree) LeafValue() *Value {
	if !t.IsLeaf {
		return nil
	}
	return &t.Leaf.Value
}

// Block is one top-level named value in an Ex file.
type Block struct {
	Name  string
	Value Value
}

// Ex is a fully decoded EX file: an ordered set of uniquely-named top-level
// Blocks.
type Ex struct {
	Blocks []Block
	// RowsFirst records whether tables in this file encode
	// rows-then-columns (as introduced by later engine revisions) rather
	// than the original columns-then-rows order. Encode reproduces
	// whichever layout Decode observed.
	RowsFirst bool
}

func (t ValueType) valid() bool { return t >= TypeInt && t <= TypeTree }

func (t ValueType) validField() bool { return t >= TypeInt && t <= TypeTable }

// block returns the first top-level block with the given name and type,
// or nil.
func (e *Ex) block(name string, typ ValueType) *Block {
	for i := range e.Blocks {
		if e.Blocks[i].Value.Type == typ && e.Blocks[i].Name == name {
			return &e.Blocks[i]
		}
	}
	return nil
}

// Get resolves a dotted path ("a.b.c") against the top-level blocks,
// descending into Tree values at each '.'. It returns nil if any
// component is missing or a non-leaf, non-tree component is indexed
// further.
func (e *Ex) Get(path string) *Value {
	name, rest, hasRest := cutDot(path)
	var v *Value
	for i := range e.Blocks {
		if e.Blocks[i].Name == name {
			v = &e.Blocks[i].Value
			break
		}
	}
	if v == nil {
		return nil
	}
	if !hasRest {
		return v
	}
	if v.Type != TypeTree {
		return nil
	}
	return treeGetPath(v.Tree, rest)
}

// GetInt returns the value of the int-typed top-level block named name,
// or dflt if there is none. Unlike Get, it does not resolve dotted paths.
func (e *Ex) GetInt(name string, dflt int32) int32 {
	b := e.block(name, TypeInt)
	if b == nil {
		return dflt
	}
	return b.Value.Int
}

// GetFloat is the float analogue of GetInt.
func (e *Ex) GetFloat(name string, dflt float32) float32 {
	b := e.block(name, TypeFloat)
	if b == nil {
		return dflt
	}
	return b.Value.Float
}

// GetString is the string analogue of GetInt; it returns ("", false) if
// absent.
func (e *Ex) GetString(name string) (string, bool) {
	b := e.block(name, TypeString)
	if b == nil {
		return "", false
	}
	return b.Value.Str, true
}

// GetTable returns the named top-level table block, or nil.
func (e *Ex) GetTable(name string) *Table {
	b := e.block(name, TypeTable)
	if b == nil {
		return nil
	}
	return b.Value.Table
}

// GetList returns the named top-level list block, or nil.
func (e *Ex) GetList(name string) *List {
	b := e.block(name, TypeList)
	if b == nil {
		return nil
	}
	return b.Value.List
}

// GetTree returns the named top-level tree block, or nil.
func (e *Ex) GetTree(name string) *Tree {
	b := e.block(name, TypeTree)
	if b == nil {
		return nil
	}
	return b.Value.Tree
}

// At returns the value at (row, col), or nil if either is out of range.
func (t *Table) At(row, col int) *Value {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Fields) {
		return nil
	}
	return &t.Rows[row][col]
}

// Item returns the value of list item i, or nil if out of range.
func (l *List) Item(i int) *Value {
	if i < 0 || i >= len(l.Items) {
		return nil
	}
	return &l.Items[i].Value
}

// ColumnIndex returns the index of the field named name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return i
		}
	}
	return -1
}

// RowAtIntKey returns the row whose designated index column (the one
// Field with IsIndex set) holds key, or -1 if there is no int-typed
// index column or no matching row.
func (t *Table) RowAtIntKey(key int32) int {
	col := t.indexColumn()
	if col < 0 || t.Fields[col].Type != TypeInt {
		return -1
	}
	for row := range t.Rows {
		if t.Rows[row][col].Int == key {
			return row
		}
	}
	return -1
}

// RowAtStringKey is the string analogue of RowAtIntKey.
func (t *Table) RowAtStringKey(key string) int {
	col := t.indexColumn()
	if col < 0 || t.Fields[col].Type != TypeString {
		return -1
	}
	for row := range t.Rows {
		if t.Rows[row][col].Str == key {
			return row
		}
	}
	return -1
}

func (t *Table) indexColumn() int {
	for i := range t.Fields {
		if t.Fields[i].IsIndex {
			return i
		}
	}
	return -1
}

func cutDot(path string) (head, rest string, hasRest bool) {
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			return path[:i], path[i+1:], true
		}
	}
	return path, "", false
}

func treeGetPath(t *Tree, path string) *Value {
	head, rest, hasRest := cutDot(path)
	if t.IsLeaf {
		if !hasRest && t.Leaf.Name == path {
			return &t.Leaf.Value
		}
		return nil
	}
	for i := range t.Children {
		c := &t.Children[i]
		if c.Name != head {
			continue
		}
		if hasRest {
			return treeGetPath(c, rest)
		}
		if c.IsLeaf {
			return &c.Leaf.Value
		}
		v := &Value{Type: TypeTree, Tree: c}
		return v
	}
	return nil
}
