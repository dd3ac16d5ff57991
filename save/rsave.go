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

// Symbol is a function/variable reference: an ain index in rsave v4, a
// name lookup (resolved against the ain symbol table by the caller) in
// v6 and later. Both representations are kept so round-tripping never
// loses information regardless of which one the source file used.
type Symbol struct {
	ID   int32
	Name string
}

func readSymbol(r *buffer.Buffer, version int32) (Symbol, error) {
	if version < 6 {
		id, err := r.ReadI32()
		return Symbol{ID: id}, err
	}
	name, err := r.ReadCString()
	return Symbol{Name: string(name)}, err
}

func writeSymbol(w *buffer.Buffer, version int32, s Symbol) {
	if version < 6 {
		w.WriteI32(s.ID)
		return
	}
	w.WriteCString([]byte(s.Name))
}

// ReturnRecord names a resume point: the call frame to return into and
// the code address to resume at.
type ReturnRecord struct {
	FrameIndex int32
	Address    uint32
}

// CallFrame is one activation record: Local indexes the heap object
// holding its Globals/Locals frame; Struc indexes the struct pointer for
// method-call frames, or -1 for plain function frames.
type CallFrame struct {
	Local int32
	Type  int32
	Struc int32
}

// HeapKind tags the variant a HeapObject holds.
type HeapKind int32

const (
	HeapFrame HeapKind = iota
	HeapString
	HeapArray
	HeapStruct
	HeapDelegate
	HeapNull
)

// HeapObject is one entry of the rsave heap. Only the fields relevant to
// Kind are meaningful; the rest are zero.
type HeapObject struct {
	Kind HeapKind

	// HeapFrame (Globals/Locals frame)
	Function    Symbol
	StructPtr   int32 // v9+; zero if absent (see HasStructPtr)
	HasStructPtr bool
	Slots       []int32 // length = persisted byte size / 4

	// HeapString
	Text string

	// HeapArray
	Rank       int32
	ElemType   ain.DataType
	StructType Symbol
	RootRank   int32
	NonEmpty   bool
	// Slots reused above for array elements

	// HeapStruct
	Constructor Symbol
	Destructor  Symbol
	StructName  Symbol
	Types       []ain.DataType
	// Slots reused above for member values

	// HeapDelegate (v9+)
	// Slots reused above for delegate targets
}

// RSave is a decoded ResumeSave: a snapshot of the running VM's call
// stack, operand stack, and heap.
type RSave struct {
	Version  int32
	Key      string
	Comments string
	HasComments bool
	CommentsOnly bool // v7+: true if parsing stopped right after Comments

	CurrentReturn ReturnRecord
	Stack         []int32
	Frames        []CallFrame
	Returns       []ReturnRecord
	Reserved      [4]int32
	HasNextSeq    bool
	NextSeq       int32
	Heap          []HeapObject
}

// ParseRSave decodes an rsave object graph from an already-decompressed
// save Container payload.
func ParseRSave(payload []byte) (*RSave, error) {
	r := buffer.NewReader(payload)

	magic, err := r.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	if string(magic) != "RSM\x00" {
		return nil, ferr.New(ferr.InvalidSignature, "rsave", "bad RSM magic")
	}

	rs := &RSave{}
	if rs.Version, err = r.ReadI32(); err != nil {
		return nil, err
	}
	switch rs.Version {
	case 4, 6, 7, 9:
	default:
		return nil, ferr.New(ferr.UnsupportedFormat, "rsave", "unsupported version")
	}

	key, err := r.ReadCString()
	if err != nil {
		return nil, err
	}
	rs.Key = string(key)

	if rs.Version >= 7 {
		comments, err := r.ReadCString()
		if err != nil {
			return nil, err
		}
		rs.Comments = string(comments)
		rs.HasComments = true
		if r.Remaining() == 0 {
			rs.CommentsOnly = true
			return rs, nil
		}
	}

	if rs.CurrentReturn.FrameIndex, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if rs.CurrentReturn.Address, err = r.ReadU32(); err != nil {
		return nil, err
	}

	nrStack, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	rs.Stack = make([]int32, nrStack)
	for i := range rs.Stack {
		if rs.Stack[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}

	nrFrames, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	locals := make([]int32, nrFrames)
	for i := range locals {
		if locals[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	types := make([]int32, nrFrames)
	for i := range types {
		if types[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	strucs := make([]int32, nrFrames)
	for i := range strucs {
		if strucs[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	rs.Frames = make([]CallFrame, nrFrames)
	for i := range rs.Frames {
		rs.Frames[i] = CallFrame{Local: locals[i], Type: types[i], Struc: strucs[i]}
	}

	nrReturns, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	rs.Returns = make([]ReturnRecord, nrReturns)
	for i := range rs.Returns {
		if rs.Returns[i].FrameIndex, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if rs.Returns[i].Address, err = r.ReadU32(); err != nil {
			return nil, err
		}
	}

	for i := range rs.Reserved {
		if rs.Reserved[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}

	if rs.Version >= 9 {
		rs.HasNextSeq = true
		if rs.NextSeq, err = r.ReadI32(); err != nil {
			return nil, err
		}
	}

	nrHeap, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	rs.Heap = make([]HeapObject, nrHeap)
	for i := range rs.Heap {
		obj, err := readHeapObject(r, rs.Version)
		if err != nil {
			return nil, err
		}
		rs.Heap[i] = obj
	}

	return rs, nil
}

func readHeapObject(r *buffer.Buffer, version int32) (HeapObject, error) {
	tag, err := r.ReadI32()
	if err != nil {
		return HeapObject{}, err
	}
	if tag == -1 {
		return HeapObject{Kind: HeapNull}, nil
	}

	switch HeapKind(tag) {
	case HeapFrame:
		obj := HeapObject{Kind: HeapFrame}
		fn, err := readSymbol(r, version)
		if err != nil {
			return obj, err
		}
		obj.Function = fn
		nrTypes, err := r.ReadI32()
		if err != nil {
			return obj, err
		}
		obj.Types = make([]ain.DataType, nrTypes)
		for i := range obj.Types {
			t, err := r.ReadI32()
			if err != nil {
				return obj, err
			}
			obj.Types[i] = ain.DataType(t)
		}
		if version >= 9 {
			obj.HasStructPtr = true
			if obj.StructPtr, err = r.ReadI32(); err != nil {
				return obj, err
			}
		}
		byteSize, err := r.ReadI32()
		if err != nil {
			return obj, err
		}
		obj.Slots = make([]int32, byteSize/4)
		for i := range obj.Slots {
			if obj.Slots[i], err = r.ReadI32(); err != nil {
				return obj, err
			}
		}
		return obj, nil

	case HeapString:
		obj := HeapObject{Kind: HeapString}
		n, err := r.ReadI32()
		if err != nil {
			return obj, err
		}
		raw, err := r.ReadBytes(int(n))
		if err != nil {
			return obj, err
		}
		if len(raw) > 0 {
			raw = raw[:len(raw)-1] // drop stored terminator
		}
		obj.Text = string(raw)
		return obj, nil

	case HeapArray:
		obj := HeapObject{Kind: HeapArray}
		var err error
		if obj.Rank, err = r.ReadI32(); err != nil {
			return obj, err
		}
		et, err := r.ReadI32()
		if err != nil {
			return obj, err
		}
		obj.ElemType = ain.DataType(et)
		if obj.StructType, err = readSymbol(r, version); err != nil {
			return obj, err
		}
		if obj.RootRank, err = r.ReadI32(); err != nil {
			return obj, err
		}
		nonEmpty, err := r.ReadI32()
		if err != nil {
			return obj, err
		}
		obj.NonEmpty = nonEmpty != 0
		n, err := r.ReadI32()
		if err != nil {
			return obj, err
		}
		obj.Slots = make([]int32, n)
		for i := range obj.Slots {
			if obj.Slots[i], err = r.ReadI32(); err != nil {
				return obj, err
			}
		}
		return obj, nil

	case HeapStruct:
		obj := HeapObject{Kind: HeapStruct}
		var err error
		if obj.Constructor, err = readSymbol(r, version); err != nil {
			return obj, err
		}
		if obj.Destructor, err = readSymbol(r, version); err != nil {
			return obj, err
		}
		if obj.StructName, err = readSymbol(r, version); err != nil {
			return obj, err
		}
		nrTypes, err := r.ReadI32()
		if err != nil {
			return obj, err
		}
		obj.Types = make([]ain.DataType, nrTypes)
		for i := range obj.Types {
			t, err := r.ReadI32()
			if err != nil {
				return obj, err
			}
			obj.Types[i] = ain.DataType(t)
		}
		n, err := r.ReadI32()
		if err != nil {
			return obj, err
		}
		obj.Slots = make([]int32, n)
		for i := range obj.Slots {
			if obj.Slots[i], err = r.ReadI32(); err != nil {
				return obj, err
			}
		}
		return obj, nil

	case HeapDelegate:
		obj := HeapObject{Kind: HeapDelegate}
		if version < 9 {
			return obj, ferr.New(ferr.Invalid, "rsave", "delegate heap object requires v9+")
		}
		n, err := r.ReadI32()
		if err != nil {
			return obj, err
		}
		obj.Slots = make([]int32, n)
		for i := range obj.Slots {
			if obj.Slots[i], err = r.ReadI32(); err != nil {
				return obj, err
			}
		}
		return obj, nil
	}

	return HeapObject{}, ferr.New(ferr.Invalid, "rsave", "unknown heap object tag")
}

// Write serialises rs back into its inner (pre-container) byte payload.
func (rs *RSave) Write() []byte {
	w := buffer.NewWriter()
	w.WriteBytes([]byte("RSM\x00"))
	w.WriteI32(rs.Version)
	w.WriteCString([]byte(rs.Key))

	if rs.Version >= 7 {
		w.WriteCString([]byte(rs.Comments))
		if rs.CommentsOnly {
			return w.Bytes()
		}
	}

	w.WriteI32(rs.CurrentReturn.FrameIndex)
	w.WriteU32(rs.CurrentReturn.Address)

	w.WriteI32(int32(len(rs.Stack)))
	for _, v := range rs.Stack {
		w.WriteI32(v)
	}

	w.WriteI32(int32(len(rs.Frames)))
	for _, f := range rs.Frames {
		w.WriteI32(f.Local)
	}
	for _, f := range rs.Frames {
		w.WriteI32(f.Type)
	}
	for _, f := range rs.Frames {
		w.WriteI32(f.Struc)
	}

	w.WriteI32(int32(len(rs.Returns)))
	for _, ret := range rs.Returns {
		w.WriteI32(ret.FrameIndex)
		w.WriteU32(ret.Address)
	}

	for _, v := range rs.Reserved {
		w.WriteI32(v)
	}

	if rs.Version >= 9 {
		w.WriteI32(rs.NextSeq)
	}

	w.WriteI32(int32(len(rs.Heap)))
	for _, obj := range rs.Heap {
		writeHeapObject(w, rs.Version, obj)
	}

	return w.Bytes()
}

func writeHeapObject(w *buffer.Buffer, version int32, obj HeapObject) {
	if obj.Kind == HeapNull {
		w.WriteI32(-1)
		return
	}
	w.WriteI32(int32(obj.Kind))

	switch obj.Kind {
	case HeapFrame:
		writeSymbol(w, version, obj.Function)
		w.WriteI32(int32(len(obj.Types)))
		for _, t := range obj.Types {
			w.WriteI32(int32(t))
		}
		if version >= 9 {
			w.WriteI32(obj.StructPtr)
		}
		w.WriteI32(int32(len(obj.Slots) * 4))
		for _, v := range obj.Slots {
			w.WriteI32(v)
		}

	case HeapString:
		raw := append([]byte(obj.Text), 0)
		w.WriteI32(int32(len(raw)))
		w.WriteBytes(raw)

	case HeapArray:
		w.WriteI32(obj.Rank)
		w.WriteI32(int32(obj.ElemType))
		writeSymbol(w, version, obj.StructType)
		w.WriteI32(obj.RootRank)
		if obj.NonEmpty {
			w.WriteI32(1)
		} else {
			w.WriteI32(0)
		}
		w.WriteI32(int32(len(obj.Slots)))
		for _, v := range obj.Slots {
			w.WriteI32(v)
		}

	case HeapStruct:
		writeSymbol(w, version, obj.Constructor)
		writeSymbol(w, version, obj.Destructor)
		writeSymbol(w, version, obj.StructName)
		w.WriteI32(int32(len(obj.Types)))
		for _, t := range obj.Types {
			w.WriteI32(int32(t))
		}
		w.WriteI32(int32(len(obj.Slots)))
		for _, v := range obj.Slots {
			w.WriteI32(v)
		}

	case HeapDelegate:
		w.WriteI32(int32(len(obj.Slots)))
		for _, v := range obj.Slots {
			w.WriteI32(v)
		}
	}
}
