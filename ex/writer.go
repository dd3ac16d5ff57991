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
	"github.com/nunuhara/system4/buffer"
	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/sjis"
)

type writer struct {
	buf       *buffer.Buffer
	rowsFirst bool
}

func (w *writer) writeString(s string) error {
	raw, err := sjis.FromUTF8(s)
	if err != nil {
		return ferr.Wrap(ferr.Invalid, "ex", "string encoding", err)
	}
	w.buf.WritePascalString(raw)
	return nil
}

func (w *writer) writeValueBody(v *Value) error {
	switch v.Type {
	case TypeInt:
		w.buf.WriteI32(v.Int)
	case TypeFloat:
		w.buf.WriteFloat(v.Float)
	case TypeString:
		return w.writeString(v.Str)
	case TypeTable:
		return w.writeTableBody(v.Table, v.Table.Fields, false)
	case TypeList:
		return w.writeList(v.List)
	default:
		return ferr.New(ferr.Invalid, "ex", "unhandled value type in nested position")
	}
	return nil
}

func (w *writer) writeValue(v *Value) error {
	w.buf.WriteI32(int32(v.Type))
	return w.writeValueBody(v)
}

func (w *writer) writeField(f *Field) error {
	w.buf.WriteI32(int32(f.Type))
	if err := w.writeString(f.Name); err != nil {
		return err
	}
	if f.HasValue {
		w.buf.WriteI32(1)
	} else {
		w.buf.WriteI32(0)
	}
	if f.IsIndex {
		w.buf.WriteI32(1)
	} else {
		w.buf.WriteI32(0)
	}
	if f.HasValue {
		if err := w.writeValueBody(&f.Value); err != nil {
			return err
		}
	}
	if f.Type == TypeTable {
		w.buf.WriteI32(int32(len(f.Subfields)))
		for i := range f.Subfields {
			if err := w.writeField(&f.Subfields[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) writeFields(fields []Field) error {
	w.buf.WriteI32(int32(len(fields)))
	for i := range fields {
		if err := w.writeField(&fields[i]); err != nil {
			return err
		}
	}
	return nil
}

// writeTableBody writes a table's row/column dimensions and cell data.
// writeSchema additionally emits the field schema first, matching the
// difference between a top-level table block (schema + rows) and a
// TypeTable-valued cell nested under a field that already carries the
// subfield schema (rows only).
func (w *writer) writeTableBody(t *Table, fields []Field, writeSchema bool) error {
	if writeSchema {
		if err := w.writeFields(fields); err != nil {
			return err
		}
	}

	columns := int32(len(t.Fields))
	rows := int32(len(t.Rows))
	if w.rowsFirst {
		w.buf.WriteI32(rows)
		w.buf.WriteI32(columns)
	} else {
		w.buf.WriteI32(columns)
		w.buf.WriteI32(rows)
	}

	for _, row := range t.Rows {
		for j := range row {
			if err := w.writeValue(&row[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) writeList(l *List) error {
	w.buf.WriteI32(int32(len(l.Items)))
	for i := range l.Items {
		item := &l.Items[i]
		w.buf.WriteI32(int32(item.Value.Type))
		sizeAt := w.buf.Index()
		w.buf.WriteI32(0)
		start := w.buf.Index()
		if err := w.writeValueBody(&item.Value); err != nil {
			return err
		}
		w.buf.WriteI32At(sizeAt, int32(w.buf.Index()-start))
	}
	return nil
}

func (w *writer) writeTree(t *Tree) error {
	if err := w.writeString(t.Name); err != nil {
		return err
	}
	if t.IsLeaf {
		w.buf.WriteI32(1)
	} else {
		w.buf.WriteI32(0)
	}

	if !t.IsLeaf {
		w.buf.WriteI32(int32(len(t.Children)))
		for i := range t.Children {
			if err := w.writeTree(&t.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}

	w.buf.WriteI32(int32(t.Leaf.Value.Type))
	sizeAt := w.buf.Index()
	w.buf.WriteI32(0)
	start := w.buf.Index()
	if err := w.writeString(t.Leaf.Name); err != nil {
		return err
	}
	if err := w.writeValueBody(&t.Leaf.Value); err != nil {
		return err
	}
	w.buf.WriteI32At(sizeAt, int32(w.buf.Index()-start))
	w.buf.WriteI32(0)
	return nil
}

func (w *writer) writeBlock(b *Block) error {
	w.buf.WriteI32(int32(b.Value.Type))
	sizeAt := w.buf.Index()
	w.buf.WriteI32(0)
	start := w.buf.Index()

	if err := w.writeString(b.Name); err != nil {
		return err
	}

	switch b.Value.Type {
	case TypeInt, TypeFloat, TypeString, TypeList:
		if err := w.writeValueBody(&b.Value); err != nil {
			return err
		}
	case TypeTable:
		if err := w.writeTableBody(b.Value.Table, b.Value.Table.Fields, true); err != nil {
			return err
		}
	case TypeTree:
		if err := w.writeTree(b.Value.Tree); err != nil {
			return err
		}
	default:
		return ferr.New(ferr.Invalid, "ex", "unhandled block type")
	}

	w.buf.WriteI32At(sizeAt, int32(w.buf.Index()-start))
	return nil
}
