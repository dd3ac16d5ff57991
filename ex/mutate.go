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
	"fmt"
	"math"
)

func copyFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f
		if f.HasValue {
			out[i].Value = copyValue(f.Value)
		}
		out[i].Subfields = copyFields(f.Subfields)
	}
	return out
}

func copyValues(values []Value) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = copyValue(v)
	}
	return out
}

func copyTable(t *Table) *Table {
	out := &Table{Fields: copyFields(t.Fields)}
	out.Rows = make([][]Value, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = copyValues(row)
	}
	return out
}

func copyList(l *List) *List {
	out := &List{Items: make([]ListItem, len(l.Items))}
	for i, item := range l.Items {
		out.Items[i] = ListItem{Size: item.Size, Value: copyValue(item.Value)}
	}
	return out
}

func copyTree(t *Tree) *Tree {
	out := &Tree{}
	*out = copyTreeVal(*t)
	return out
}

func copyTreeVal(t Tree) Tree {
	out := Tree{Name: t.Name, IsLeaf: t.IsLeaf}
	if t.IsLeaf {
		out.Leaf = Leaf{Size: t.Leaf.Size, Name: t.Leaf.Name, Value: copyValue(t.Leaf.Value)}
		return out
	}
	out.Children = make([]Tree, len(t.Children))
	for i, c := range t.Children {
		out.Children[i] = copyTreeVal(c)
	}
	return out
}

func copyValue(v Value) Value {
	out := v
	switch v.Type {
	case TypeTable:
		out.Table = copyTable(v.Table)
	case TypeList:
		out.List = copyList(v.List)
	case TypeTree:
		out.Tree = copyTree(v.Tree)
	}
	return out
}

func copyBlock(b Block) Block {
	return Block{Name: b.Name, Value: copyValue(b.Value)}
}

func valueEqual(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TypeInt:
		return a.Int == b.Int
	case TypeFloat:
		return math.Abs(float64(a.Float-b.Float)) < 0.00001
	case TypeString:
		return a.Str == b.Str
	default:
		return false
	}
}

func fieldEqual(a, b Field) bool {
	if a.Type != b.Type || a.Name != b.Name || a.HasValue != b.HasValue {
		return false
	}
	if a.HasValue && !valueEqual(a.Value, b.Value) {
		return false
	}
	if a.IsIndex != b.IsIndex || len(a.Subfields) != len(b.Subfields) {
		return false
	}
	for i := range a.Subfields {
		if !fieldEqual(a.Subfields[i], b.Subfields[i]) {
			return false
		}
	}
	return true
}

func headerEqual(a, b *Table) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		if !fieldEqual(a.Fields[i], b.Fields[i]) {
			return false
		}
	}
	return true
}

func appendTable(out, in *Table) error {
	if !headerEqual(out, in) {
		return fmt.Errorf("ex: table headers do not match")
	}
	for _, row := range in.Rows {
		out.Rows = append(out.Rows, copyValues(row))
	}
	return nil
}

func appendList(out, in *List) {
	for _, item := range in.Items {
		out.Items = append(out.Items, ListItem{Size: item.Size, Value: copyValue(item.Value)})
	}
}

func appendTreeChild(out *Tree, child *Tree) error {
	for i := range out.Children {
		c := &out.Children[i]
		if c.Name != child.Name {
			continue
		}
		if c.IsLeaf != child.IsLeaf {
			return fmt.Errorf("ex: tree nodes with same name have different type")
		}
		if c.IsLeaf {
			c.Leaf = Leaf{Size: child.Leaf.Size, Name: child.Leaf.Name, Value: copyValue(child.Leaf.Value)}
			return nil
		}
		return appendTree(c, child)
	}
	out.Children = append(out.Children, copyTreeVal(*child))
	return nil
}

func appendTree(out, in *Tree) error {
	if out.IsLeaf || in.IsLeaf {
		return fmt.Errorf("ex: tried to append to a leaf node")
	}
	for i := range in.Children {
		if err := appendTreeChild(out, &in.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// findBlock finds the first block in blocks matching (name, typ).
func findBlock(blocks []Block, name string, typ ValueType) *Block {
	for i := range blocks {
		if blocks[i].Value.Type == typ && blocks[i].Name == name {
			return &blocks[i]
		}
	}
	return nil
}

// Append merges other's blocks into the receiver in place: a block whose
// name and type already exist is merged (tables/lists/trees concatenate
// or merge by key, scalars are overwritten), and any other block is
// copied in as a new top-level entry.
func (e *Ex) Append(other *Ex) error {
	for i := range other.Blocks {
		src := other.Blocks[i]
		dst := findBlock(e.Blocks, src.Name, src.Value.Type)
		if dst == nil {
			e.Blocks = append(e.Blocks, copyBlock(src))
			continue
		}
		switch dst.Value.Type {
		case TypeInt:
			dst.Value.Int = src.Value.Int
		case TypeFloat:
			dst.Value.Float = src.Value.Float
		case TypeString:
			dst.Value.Str = src.Value.Str
		case TypeTable:
			if err := appendTable(dst.Value.Table, src.Value.Table); err != nil {
				return err
			}
		case TypeList:
			appendList(dst.Value.List, src.Value.List)
		case TypeTree:
			if err := appendTree(dst.Value.Tree, src.Value.Tree); err != nil {
				return err
			}
		}
	}
	return nil
}

// Replace overwrites, in place, every block in the receiver whose name
// and type match a block in other with that block's value wholesale
// (rather than merging), and appends any block with no existing match.
func (e *Ex) Replace(other *Ex) {
	for i := range other.Blocks {
		src := other.Blocks[i]
		dst := findBlock(e.Blocks, src.Name, src.Value.Type)
		if dst == nil {
			e.Blocks = append(e.Blocks, copyBlock(src))
			continue
		}
		dst.Value = copyValue(src.Value)
	}
}

// ExtractAppend returns a new Ex containing only the blocks that Append
// would add or modify in base, without mutating base: for each block in
// patch, either a copy of the base block with patch's changes applied
// (same semantics as Append), or a copy of the patch block verbatim if
// base has no matching block.
func ExtractAppend(base, patch *Ex) (*Ex, error) {
	out := &Ex{RowsFirst: base.RowsFirst}
	for i := range patch.Blocks {
		src := patch.Blocks[i]
		baseBlock := findBlock(base.Blocks, src.Name, src.Value.Type)
		if baseBlock == nil {
			out.Blocks = append(out.Blocks, copyBlock(src))
			continue
		}
		merged := copyBlock(*baseBlock)
		switch merged.Value.Type {
		case TypeTable:
			if err := appendTable(merged.Value.Table, src.Value.Table); err != nil {
				return nil, err
			}
		case TypeList:
			appendList(merged.Value.List, src.Value.List)
		case TypeTree:
			if err := appendTree(merged.Value.Tree, src.Value.Tree); err != nil {
				return nil, err
			}
		default:
			merged = copyBlock(src)
		}
		out.Blocks = append(out.Blocks, merged)
	}
	return out, nil
}
