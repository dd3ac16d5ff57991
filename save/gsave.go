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
	"github.com/nunuhara/system4/ain"
	"github.com/nunuhara/system4/buffer"
	"github.com/nunuhara/system4/ferr"
)

// emptyStringValue is the sentinel a string-typed slot holds instead of a
// real string-table index when its value is the empty string, so that
// writing an empty string never needs a table entry.
const emptyStringValue = 0x7fffffff

// RecordType distinguishes the two kinds of GSave.Records entries.
type RecordType int32

const (
	RecordStruct  RecordType = RecordType(ain.Struct) // indexes into Keyvals
	RecordGlobals RecordType = 1000                    // indexes into Globals
)

// GRecord groups a run of Globals or Keyvals slots under a struct name
// (for RecordStruct) or the top-level ain globals (for RecordGlobals).
type GRecord struct {
	Type       RecordType
	StructName string
	Indices    []int32
}

// GGlobal is one persisted ain global variable slot.
type GGlobal struct {
	Type    ain.DataType
	Value   int32
	Name    string
	Unknown int32 // always 1; dropped from the wire format in gsave v7+
}

// GArrayValue is one scalar slot inside a GFlatArray.
type GArrayValue struct {
	Value int32
	Type  ain.DataType
}

// GFlatArray is one fully-instantiated leaf of a (possibly
// multi-dimensional) array; Values has length equal to the array's
// first dimension.
type GFlatArray struct {
	Values []GArrayValue
}

// GArray is one array-typed global or member slot's persisted contents.
// Rank -1 means unallocated; Dimensions is stored innermost-dimension
// first ("reversed" per the source layout), and FlatArrays holds one
// entry per combination of the outer dimensions.
type GArray struct {
	Rank       int32
	Dimensions []int32
	FlatArrays []GFlatArray
}

// GKeyval is one struct-member slot, owned by a GRecord of type
// RecordStruct.
type GKeyval struct {
	Type  ain.DataType
	Value int32
	Name  string
}

// GStructDef is a v7+ struct-definition table entry, naming the member
// layout a RecordStruct record was serialised against.
type GStructDef struct {
	Name      string
	NrMembers int32
}

// GSave is a decoded GlobalSave (system.GlobalSave / system.GroupSave).
type GSave struct {
	Key            string
	UK1            int32 // always 1000
	Version        int32 // 4, 5, or 7
	UK2            int32 // always 56
	NrAinGlobals   int32
	Group          string // v5+

	Records    []GRecord
	Globals    []GGlobal
	Strings    []string
	Arrays     []GArray
	Keyvals    []GKeyval
	StructDefs []GStructDef // v7+
}

// NewGSave returns an empty GSave ready for the builder methods.
func NewGSave(version int32, key string, nrAinGlobals int, group string) *GSave {
	gs := &GSave{Key: key, UK1: 1000, Version: version, UK2: 56, NrAinGlobals: int32(nrAinGlobals)}
	if version >= 5 {
		gs.Group = group
	}
	return gs
}

func gsaveValidateValue(val int32, typ ain.DataType, gs *GSave) bool {
	switch typ {
	case ain.Void, ain.Int, ain.Bool, ain.FuncType, ain.Delegate, ain.LongInt, ain.Float:
		return true
	case ain.String:
		return val == emptyStringValue || (val >= 0 && int(val) < len(gs.Strings))
	case ain.Struct:
		return val >= 0 && int(val) < len(gs.Records)
	}
	if typ.IsRef() {
		return true
	}
	if typ.IsArray() {
		return val >= 0 && int(val) < len(gs.Arrays)
	}
	return false
}

// ParseGSave decodes a gsave object graph from an already-decompressed
// save Container payload.
func ParseGSave(payload []byte) (*GSave, error) {
	r := buffer.NewReader(payload)
	gs := &GSave{}

	key, err := r.ReadCString()
	if err != nil {
		return nil, err
	}
	gs.Key = string(key)
	if gs.UK1, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if gs.Version, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if gs.Version != 4 && gs.Version != 5 && gs.Version != 7 {
		return nil, ferr.New(ferr.UnsupportedFormat, "gsave", "unsupported version")
	}
	if gs.UK2, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if gs.NrAinGlobals, err = r.ReadI32(); err != nil {
		return nil, err
	}

	recordsOff, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	nrRecords, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	globalsOff, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	nrGlobals, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	stringsOff, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	nrStrings, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	arraysOff, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	nrArrays, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	keyvalsOff, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	nrKeyvals, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	var structDefsOff, nrStructDefs int32
	if gs.Version >= 7 {
		if structDefsOff, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if nrStructDefs, err = r.ReadI32(); err != nil {
			return nil, err
		}
	}

	if gs.Version >= 5 {
		group, err := r.ReadCString()
		if err != nil {
			return nil, err
		}
		gs.Group = string(group)
	}

	if int32(r.Index()) != recordsOff {
		return nil, ferr.New(ferr.Invalid, "gsave", "records table offset mismatch")
	}
	gs.Records = make([]GRecord, nrRecords)
	for i := range gs.Records {
		rec := &gs.Records[i]
		typ, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		rec.Type = RecordType(typ)
		name, err := r.ReadCString()
		if err != nil {
			return nil, err
		}
		rec.StructName = string(name)
		nrIdx, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		var ubound int32
		switch rec.Type {
		case RecordStruct:
			ubound = nrKeyvals
		case RecordGlobals:
			ubound = nrGlobals
		default:
			return nil, ferr.New(ferr.Invalid, "gsave", "unknown record type")
		}
		rec.Indices = make([]int32, nrIdx)
		for j := range rec.Indices {
			idx, err := r.ReadI32()
			if err != nil {
				return nil, err
			}
			if idx < 0 || idx >= ubound {
				return nil, ferr.New(ferr.Invalid, "gsave", "record index out of bounds")
			}
			rec.Indices[j] = idx
		}
	}

	if int32(r.Index()) != globalsOff {
		return nil, ferr.New(ferr.Invalid, "gsave", "globals table offset mismatch")
	}
	gs.Globals = make([]GGlobal, nrGlobals)
	for i := range gs.Globals {
		g := &gs.Globals[i]
		t, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		g.Type = ain.DataType(t)
		if g.Value, err = r.ReadI32(); err != nil {
			return nil, err
		}
		name, err := r.ReadCString()
		if err != nil {
			return nil, err
		}
		g.Name = string(name)
		if gs.Version < 7 {
			if g.Unknown, err = r.ReadI32(); err != nil {
				return nil, err
			}
		}
		if !gsaveValidateValue(g.Value, g.Type, gs) {
			return nil, ferr.New(ferr.Invalid, "gsave", "global value out of bounds for its type")
		}
	}

	if int32(r.Index()) != stringsOff {
		return nil, ferr.New(ferr.Invalid, "gsave", "strings table offset mismatch")
	}
	gs.Strings = make([]string, nrStrings)
	for i := range gs.Strings {
		s, err := r.ReadCString()
		if err != nil {
			return nil, err
		}
		gs.Strings[i] = string(s)
	}

	if int32(r.Index()) != arraysOff {
		return nil, ferr.New(ferr.Invalid, "gsave", "arrays table offset mismatch")
	}
	gs.Arrays = make([]GArray, nrArrays)
	for i := range gs.Arrays {
		a := &gs.Arrays[i]
		if a.Rank, err = r.ReadI32(); err != nil {
			return nil, err
		}
		expected := int32(0)
		if a.Rank > 0 {
			expected = 1
			a.Dimensions = make([]int32, a.Rank)
			for j := range a.Dimensions {
				if a.Dimensions[j], err = r.ReadI32(); err != nil {
					return nil, err
				}
				if j != 0 {
					expected *= a.Dimensions[j]
				}
			}
		}
		nrFlat, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		if nrFlat != expected {
			return nil, ferr.New(ferr.Invalid, "gsave", "flat array count mismatch with declared dimensions")
		}
		a.FlatArrays = make([]GFlatArray, nrFlat)
		for j := range a.FlatArrays {
			fa := &a.FlatArrays[j]
			nrValues, err := r.ReadI32()
			if err != nil {
				return nil, err
			}
			if len(a.Dimensions) == 0 || nrValues != a.Dimensions[0] {
				return nil, ferr.New(ferr.Invalid, "gsave", "flat array value count mismatch with first dimension")
			}
			fa.Values = make([]GArrayValue, nrValues)
			for k := range fa.Values {
				val, err := r.ReadI32()
				if err != nil {
					return nil, err
				}
				t, err := r.ReadI32()
				if err != nil {
					return nil, err
				}
				if !gsaveValidateValue(val, ain.DataType(t), gs) {
					return nil, ferr.New(ferr.Invalid, "gsave", "array value out of bounds for its type")
				}
				fa.Values[k] = GArrayValue{Value: val, Type: ain.DataType(t)}
			}
		}
	}

	// Globals are validated once the strings and arrays tables they may
	// index have been read.
	for i := range gs.Globals {
		if !gsaveValidateValue(gs.Globals[i].Value, gs.Globals[i].Type, gs) {
			return nil, ferr.New(ferr.Invalid, "gsave", "global value out of bounds for its type")
		}
	}

	if int32(r.Index()) != keyvalsOff {
		return nil, ferr.New(ferr.Invalid, "gsave", "keyvals table offset mismatch")
	}
	gs.Keyvals = make([]GKeyval, nrKeyvals)
	for i := range gs.Keyvals {
		kv := &gs.Keyvals[i]
		t, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		kv.Type = ain.DataType(t)
		if kv.Value, err = r.ReadI32(); err != nil {
			return nil, err
		}
		name, err := r.ReadCString()
		if err != nil {
			return nil, err
		}
		kv.Name = string(name)
		if !gsaveValidateValue(kv.Value, kv.Type, gs) {
			return nil, ferr.New(ferr.Invalid, "gsave", "keyval value out of bounds for its type")
		}
	}

	if gs.Version >= 7 {
		if int32(r.Index()) != structDefsOff {
			return nil, ferr.New(ferr.Invalid, "gsave", "struct-definition table offset mismatch")
		}
		gs.StructDefs = make([]GStructDef, nrStructDefs)
		for i := range gs.StructDefs {
			name, err := r.ReadCString()
			if err != nil {
				return nil, err
			}
			nrMembers, err := r.ReadI32()
			if err != nil {
				return nil, err
			}
			gs.StructDefs[i] = GStructDef{Name: string(name), NrMembers: nrMembers}
		}
	}

	return gs, nil
}

// Write serialises gs back into its inner (pre-container) byte payload.
func (gs *GSave) Write() []byte {
	w := buffer.NewWriter()
	w.WriteCString([]byte(gs.Key))
	w.WriteI32(gs.UK1)
	w.WriteI32(gs.Version)
	w.WriteI32(gs.UK2)
	w.WriteI32(gs.NrAinGlobals)

	recordsOffLoc := w.Index()
	w.WriteI32(0)
	w.WriteI32(int32(len(gs.Records)))
	globalsOffLoc := w.Index()
	w.WriteI32(0)
	w.WriteI32(int32(len(gs.Globals)))
	stringsOffLoc := w.Index()
	w.WriteI32(0)
	w.WriteI32(int32(len(gs.Strings)))
	arraysOffLoc := w.Index()
	w.WriteI32(0)
	w.WriteI32(int32(len(gs.Arrays)))
	keyvalsOffLoc := w.Index()
	w.WriteI32(0)
	w.WriteI32(int32(len(gs.Keyvals)))
	var structDefsOffLoc int
	if gs.Version >= 7 {
		structDefsOffLoc = w.Index()
		w.WriteI32(0)
		w.WriteI32(int32(len(gs.StructDefs)))
	}

	if gs.Version >= 5 {
		w.WriteCString([]byte(gs.Group))
	}

	w.WriteI32At(recordsOffLoc, int32(w.Index()))
	for _, rec := range gs.Records {
		w.WriteI32(int32(rec.Type))
		w.WriteCString([]byte(rec.StructName))
		w.WriteI32(int32(len(rec.Indices)))
		for _, idx := range rec.Indices {
			w.WriteI32(idx)
		}
	}

	w.WriteI32At(globalsOffLoc, int32(w.Index()))
	for _, g := range gs.Globals {
		w.WriteI32(int32(g.Type))
		w.WriteI32(g.Value)
		w.WriteCString([]byte(g.Name))
		if gs.Version < 7 {
			w.WriteI32(g.Unknown)
		}
	}

	w.WriteI32At(stringsOffLoc, int32(w.Index()))
	for _, s := range gs.Strings {
		w.WriteCString([]byte(s))
	}

	w.WriteI32At(arraysOffLoc, int32(w.Index()))
	for _, a := range gs.Arrays {
		w.WriteI32(a.Rank)
		for _, d := range a.Dimensions {
			w.WriteI32(d)
		}
		w.WriteI32(int32(len(a.FlatArrays)))
		for _, fa := range a.FlatArrays {
			w.WriteI32(int32(len(fa.Values)))
			for _, v := range fa.Values {
				w.WriteI32(v.Value)
				w.WriteI32(int32(v.Type))
			}
		}
	}

	w.WriteI32At(keyvalsOffLoc, int32(w.Index()))
	for _, kv := range gs.Keyvals {
		w.WriteI32(int32(kv.Type))
		w.WriteI32(kv.Value)
		w.WriteCString([]byte(kv.Name))
	}

	if gs.Version >= 7 {
		w.WriteI32At(structDefsOffLoc, int32(w.Index()))
		for _, sd := range gs.StructDefs {
			w.WriteCString([]byte(sd.Name))
			w.WriteI32(sd.NrMembers)
		}
	}

	return w.Bytes()
}

// AddGlobalsRecord appends the single RecordGlobals entry covering the
// first nrGlobals ain globals and allocates that many (initially
// type-Void, Unknown=1) GGlobal slots.
func (gs *GSave) AddGlobalsRecord(nrGlobals int) int {
	indices := make([]int32, nrGlobals)
	for i := range indices {
		indices[i] = int32(i)
	}
	n := gs.AddRecord(GRecord{Type: RecordGlobals, StructName: "", Indices: indices})
	gs.Globals = make([]GGlobal, nrGlobals)
	for i := range gs.Globals {
		gs.Globals[i].Unknown = 1
	}
	return n
}

// AddRecord appends rec and returns its index.
func (gs *GSave) AddRecord(rec GRecord) int {
	n := len(gs.Records)
	gs.Records = append(gs.Records, rec)
	return n
}

// AddString interns str (not deduplicated, matching gsave_add_string)
// and returns its index.
func (gs *GSave) AddString(str string) int {
	n := len(gs.Strings)
	gs.Strings = append(gs.Strings, str)
	return n
}

// AddArray appends arr and returns its index.
func (gs *GSave) AddArray(arr GArray) int {
	n := len(gs.Arrays)
	gs.Arrays = append(gs.Arrays, arr)
	return n
}

// AddKeyval appends kv and returns its index.
func (gs *GSave) AddKeyval(kv GKeyval) int {
	n := len(gs.Keyvals)
	gs.Keyvals = append(gs.Keyvals, kv)
	return n
}

// StringValue returns the gsave-encoded value for a string-typed slot:
// the empty-string sentinel if s is empty and the container is v7 or
// later, or s interned in the string table otherwise. Versions before
// 7 have no sentinel and must intern even the empty string as a real
// index.
func (gs *GSave) StringValue(s string) int32 {
	if s == "" && gs.Version >= 7 {
		return emptyStringValue
	}
	return int32(gs.AddString(s))
}
