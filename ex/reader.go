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
	"strings"

	"github.com/nunuhara/system4/buffer"
	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/sjis"
)

// tableLayout tracks which of the two row/column count orderings a file
// uses. The original format always wrote columns-then-rows; a later
// engine revision swapped the order. Rather than hard-code one, the
// reader starts in layoutDefault and latches onto whichever order is
// consistent with the field count of the first table it reads
// (columns-first unless only rows-first fits), then applies that choice
// to every subsequent table in the same file.
type tableLayout int

const (
	layoutDefault tableLayout = iota
	layoutColumnsFirst
	layoutRowsFirst
)

type reader struct {
	buf    *buffer.Buffer
	layout tableLayout
}

func (r *reader) readString() (string, error) {
	raw, err := r.buf.ReadPascalString()
	if err != nil {
		return "", ferr.Wrap(ferr.OutOfBounds, "ex", "pascal string", err)
	}
	s, err := sjis.ToUTF8(raw)
	if err != nil {
		return "", ferr.Wrap(ferr.Invalid, "ex", "string encoding", err)
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s, nil
}

func (r *reader) readValue(v *Value, subfields []Field) error {
	typ, err := r.buf.ReadI32()
	if err != nil {
		return ferr.Wrap(ferr.OutOfBounds, "ex", "value type", err)
	}
	v.Type = ValueType(typ)
	return r.readValueBody(v, subfields)
}

func (r *reader) readValueBody(v *Value, subfields []Field) error {
	switch v.Type {
	case TypeInt:
		n, err := r.buf.ReadI32()
		if err != nil {
			return ferr.Wrap(ferr.OutOfBounds, "ex", "int value", err)
		}
		v.Int = n
	case TypeFloat:
		f, err := r.buf.ReadFloat()
		if err != nil {
			return ferr.Wrap(ferr.OutOfBounds, "ex", "float value", err)
		}
		v.Float = f
	case TypeString:
		s, err := r.readString()
		if err != nil {
			return err
		}
		v.Str = s
	case TypeTable:
		t := &Table{}
		if len(subfields) == 0 {
			fields, err := r.readFields()
			if err != nil {
				return err
			}
			t.Fields = fields
			if err := r.readTable(t, fields); err != nil {
				return err
			}
		} else {
			t.Fields = subfields
			if err := r.readTable(t, subfields); err != nil {
				return err
			}
		}
		v.Table = t
	case TypeList:
		l := &List{}
		if err := r.readList(l); err != nil {
			return err
		}
		v.List = l
	default:
		return ferr.New(ferr.Invalid, "ex", "unhandled value type in nested position")
	}
	return nil
}

func (r *reader) readField() (Field, error) {
	var f Field
	typ, err := r.buf.ReadI32()
	if err != nil {
		return f, ferr.Wrap(ferr.OutOfBounds, "ex", "field type", err)
	}
	f.Type = ValueType(typ)
	if !f.Type.validField() {
		return f, ferr.New(ferr.Invalid, "ex", "invalid field type")
	}
	name, err := r.readString()
	if err != nil {
		return f, err
	}
	f.Name = name

	hasValue, err := r.buf.ReadI32()
	if err != nil {
		return f, ferr.Wrap(ferr.OutOfBounds, "ex", "field has_value", err)
	}
	f.HasValue = hasValue != 0

	isIndex, err := r.buf.ReadI32()
	if err != nil {
		return f, ferr.Wrap(ferr.OutOfBounds, "ex", "field is_index", err)
	}
	f.IsIndex = isIndex != 0

	if f.HasValue {
		f.Value.Type = f.Type
		if err := r.readValueBody(&f.Value, nil); err != nil {
			return f, err
		}
	}

	if f.Type == TypeTable {
		n, err := r.buf.ReadI32()
		if err != nil {
			return f, ferr.Wrap(ferr.OutOfBounds, "ex", "subfield count", err)
		}
		if n < 0 || n > 255 {
			return f, ferr.New(ferr.Invalid, "ex", "too many subfields")
		}
		f.Subfields = make([]Field, n)
		for i := range f.Subfields {
			sf, err := r.readField()
			if err != nil {
				return f, err
			}
			f.Subfields[i] = sf
		}
	}
	return f, nil
}

func (r *reader) readFields() ([]Field, error) {
	n, err := r.buf.ReadI32()
	if err != nil {
		return nil, ferr.Wrap(ferr.OutOfBounds, "ex", "field count", err)
	}
	if n < 0 {
		return nil, ferr.New(ferr.Invalid, "ex", "negative field count")
	}
	fields := make([]Field, n)
	for i := range fields {
		f, err := r.readField()
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return fields, nil
}

func (r *reader) readTable(t *Table, fields []Field) error {
	var columns, rows int32
	var err error
	if r.layout == layoutRowsFirst {
		rows, err = r.buf.ReadI32()
		if err == nil {
			columns, err = r.buf.ReadI32()
		}
	} else {
		columns, err = r.buf.ReadI32()
		if err == nil {
			rows, err = r.buf.ReadI32()
		}
	}
	if err != nil {
		return ferr.Wrap(ferr.OutOfBounds, "ex", "table dimensions", err)
	}

	if r.layout == layoutDefault && int(columns) != len(fields) {
		if int(rows) == len(fields) {
			columns, rows = rows, columns
			r.layout = layoutRowsFirst
		} else {
			return ferr.New(ferr.Invalid, "ex", "field count does not match column count")
		}
	} else if r.layout != layoutRowsFirst && int(columns) != len(fields) {
		return ferr.New(ferr.Invalid, "ex", "field count does not match column count")
	}
	if r.layout == layoutDefault {
		r.layout = layoutColumnsFirst
	}
	if rows < 0 || columns < 0 {
		return ferr.New(ferr.Invalid, "ex", "negative table dimensions")
	}

	t.Rows = make([][]Value, rows)
	for i := range t.Rows {
		row := make([]Value, columns)
		for j := range row {
			// A column's encoded type occasionally disagrees with its
			// field's declared type in shipped data; tolerated here
			// rather than rejected, matching the reference reader.
			if err := r.readValue(&row[j], fields[j].Subfields); err != nil {
				return err
			}
		}
		t.Rows[i] = row
	}
	return nil
}

func (r *reader) readList(l *List) error {
	n, err := r.buf.ReadI32()
	if err != nil {
		return ferr.Wrap(ferr.OutOfBounds, "ex", "list item count", err)
	}
	if n < 0 {
		return ferr.New(ferr.Invalid, "ex", "negative list item count")
	}
	l.Items = make([]ListItem, n)
	for i := range l.Items {
		typ, err := r.buf.ReadI32()
		if err != nil {
			return ferr.Wrap(ferr.OutOfBounds, "ex", "list item type", err)
		}
		size, err := r.buf.ReadI32()
		if err != nil {
			return ferr.Wrap(ferr.OutOfBounds, "ex", "list item size", err)
		}
		l.Items[i].Size = uint32(size)
		l.Items[i].Value.Type = ValueType(typ)
		start := r.buf.Index()
		if err := r.readValueBody(&l.Items[i].Value, nil); err != nil {
			return err
		}
		if uint32(r.buf.Index()-start) != l.Items[i].Size {
			return ferr.New(ferr.Invalid, "ex", "incorrect size for list item")
		}
	}
	return nil
}

func (r *reader) readTree(t *Tree) error {
	name, err := r.readString()
	if err != nil {
		return err
	}
	t.Name = name

	isLeaf, err := r.buf.ReadI32()
	if err != nil {
		return ferr.Wrap(ferr.OutOfBounds, "ex", "tree is_leaf", err)
	}
	if isLeaf > 1 || isLeaf < 0 {
		return ferr.New(ferr.Invalid, "ex", "tree is_leaf is not a boolean")
	}
	t.IsLeaf = isLeaf != 0

	if !t.IsLeaf {
		n, err := r.buf.ReadI32()
		if err != nil {
			return ferr.Wrap(ferr.OutOfBounds, "ex", "tree child count", err)
		}
		if n < 0 {
			return ferr.New(ferr.Invalid, "ex", "negative tree child count")
		}
		t.Children = make([]Tree, n)
		for i := range t.Children {
			if err := r.readTree(&t.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}

	typ, err := r.buf.ReadI32()
	if err != nil {
		return ferr.Wrap(ferr.OutOfBounds, "ex", "leaf value type", err)
	}
	size, err := r.buf.ReadI32()
	if err != nil {
		return ferr.Wrap(ferr.OutOfBounds, "ex", "leaf size", err)
	}
	t.Leaf.Size = uint32(size)
	start := r.buf.Index()

	leafName, err := r.readString()
	if err != nil {
		return err
	}
	t.Leaf.Name = leafName
	t.Leaf.Value.Type = ValueType(typ)
	if err := r.readValueBody(&t.Leaf.Value, nil); err != nil {
		return err
	}
	if uint32(r.buf.Index()-start) != t.Leaf.Size {
		return ferr.New(ferr.Invalid, "ex", "incorrect size for leaf node")
	}

	zero, err := r.buf.ReadI32()
	if err != nil {
		return ferr.Wrap(ferr.OutOfBounds, "ex", "leaf trailer", err)
	}
	if zero != 0 {
		return ferr.New(ferr.Invalid, "ex", "expected zero after leaf node")
	}
	return nil
}

func (r *reader) readBlock() (*Block, error) {
	var b Block
	typ, err := r.buf.ReadI32()
	if err != nil {
		return nil, ferr.Wrap(ferr.OutOfBounds, "ex", "block type", err)
	}
	b.Value.Type = ValueType(typ)
	if !b.Value.Type.valid() {
		return nil, ferr.New(ferr.Invalid, "ex", "invalid block type")
	}

	size, err := r.buf.ReadI32()
	if err != nil {
		return nil, ferr.Wrap(ferr.OutOfBounds, "ex", "block size", err)
	}
	if size < 0 || int(size) > r.buf.Remaining() {
		return nil, ferr.New(ferr.Invalid, "ex", "block size extends past end of file")
	}
	start := r.buf.Index()

	name, err := r.readString()
	if err != nil {
		return nil, err
	}
	b.Name = name

	switch b.Value.Type {
	case TypeInt, TypeFloat, TypeString, TypeList:
		if err := r.readValueBody(&b.Value, nil); err != nil {
			return nil, err
		}
	case TypeTable:
		t := &Table{}
		fields, err := r.readFields()
		if err != nil {
			return nil, err
		}
		t.Fields = fields
		if err := r.readTable(t, fields); err != nil {
			return nil, err
		}
		b.Value.Table = t
	case TypeTree:
		t := &Tree{}
		if err := r.readTree(t); err != nil {
			return nil, err
		}
		b.Value.Tree = t
	}

	if uint32(r.buf.Index()-start) != uint32(size) {
		return nil, ferr.New(ferr.Invalid, "ex", "incorrect block size")
	}
	return &b, nil
}
