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
	"github.com/nunuhara/system4/buffer"
	"github.com/nunuhara/system4/internal/mt19937"
	"github.com/nunuhara/system4/sjis"
)

// Write serialises p back into the tag-stream wire format. If encrypt is
// true the whole buffer is XORed with the MT19937 keystream the way a
// shipped ain file is, the same transform Load's unwrap reverses.
func (p *Program) Write(encrypt bool) []byte {
	b := buffer.NewWriter()
	w := &writer{b: b, p: p}

	w.writeTag("VERS")
	b.WriteI32(p.Version)

	if p.Sections.KEYC {
		w.writeTag("KEYC")
		b.WriteI32(p.KeyCode)
	}
	if p.Sections.CODE {
		w.writeTag("CODE")
		b.WriteI32(int32(len(p.Code)))
		b.WriteBytes(p.Code)
	}
	if p.Sections.FUNC {
		w.writeTag("FUNC")
		b.WriteI32(int32(len(p.Functions)))
		w.writeFunctions(p.Functions)
	}
	if p.Sections.GLOB {
		w.writeTag("GLOB")
		b.WriteI32(int32(len(p.Globals)))
		w.writeGlobals(p.Globals)
	}
	if p.Sections.GSET {
		w.writeTag("GSET")
		b.WriteI32(int32(len(p.GlobalInitvals)))
		w.writeInitvals(p.GlobalInitvals)
	}
	if p.Sections.STRT {
		w.writeTag("STRT")
		b.WriteI32(int32(len(p.Structures)))
		w.writeStructures(p.Structures)
	}
	if p.Sections.MSG1 {
		w.writeTag("MSG1")
		b.WriteI32(int32(len(p.Messages)))
		b.WriteI32(p.Msg1Unknown)
		for _, m := range p.Messages {
			w.writeMsg1String(m)
		}
	} else if p.Sections.MSG0 {
		w.writeTag("MSG0")
		b.WriteI32(int32(len(p.Messages)))
		for _, m := range p.Messages {
			w.writeCString(m)
		}
	}
	if p.Sections.MAIN {
		w.writeTag("MAIN")
		b.WriteI32(p.Main)
	}
	if p.Sections.MSGF {
		w.writeTag("MSGF")
		b.WriteI32(p.MsgF)
	}
	if p.Sections.HLL0 {
		w.writeTag("HLL0")
		b.WriteI32(int32(len(p.Libraries)))
		w.writeLibraries(p.Libraries)
	}
	if p.Sections.SWI0 {
		w.writeTag("SWI0")
		b.WriteI32(int32(len(p.Switches)))
		w.writeSwitches(p.Switches)
	}
	if p.Sections.GVER {
		w.writeTag("GVER")
		b.WriteI32(p.GameVersion)
	}
	if p.Sections.SLBL {
		w.writeTag("SLBL")
		b.WriteI32(int32(len(p.ScenarioLabels)))
		for _, l := range p.ScenarioLabels {
			w.writeCString(l.Name)
			b.WriteU32(l.Address)
		}
	}
	if p.Sections.STR0 {
		w.writeTag("STR0")
		b.WriteI32(int32(len(p.Strings)))
		for _, s := range p.Strings {
			w.writeCString(s)
		}
	}
	if p.Sections.FNAM {
		w.writeTag("FNAM")
		b.WriteI32(int32(len(p.Filenames)))
		for _, f := range p.Filenames {
			w.writeCString(f)
		}
	}
	if p.Sections.OJMP {
		w.writeTag("OJMP")
		b.WriteI32(p.Ojmp)
	}
	if p.Sections.FNCT {
		w.writeTag("FNCT")
		b.WriteI32(p.FnctSize)
		b.WriteI32(int32(len(p.FunctionTypes)))
		w.writeFunctionTypes(p.FunctionTypes)
	}
	if p.Sections.DELG {
		w.writeTag("DELG")
		b.WriteI32(p.DelgSize)
		b.WriteI32(int32(len(p.Delegates)))
		w.writeFunctionTypes(p.Delegates)
	}
	if p.Sections.OBJG {
		w.writeTag("OBJG")
		b.WriteI32(int32(len(p.GlobalGroups)))
		for _, g := range p.GlobalGroups {
			w.writeCString(g)
		}
	}
	if p.Sections.ENUM {
		w.writeTag("ENUM")
		b.WriteI32(int32(len(p.Enums)))
		for _, e := range p.Enums {
			w.writeCString(e.Name)
		}
	}

	out := b.Bytes()
	if encrypt {
		out = append([]byte(nil), out...)
		mt19937.XORCode(out, ainDecryptSeed)
	}
	return out
}

type writer struct {
	b *buffer.Buffer
	p *Program
}

func (w *writer) writeTag(tag string) {
	w.b.WriteBytes([]byte(tag))
}

func (w *writer) writeCString(s string) {
	raw, err := sjis.FromUTF8(s)
	if err != nil {
		raw = []byte(s)
	}
	w.b.WriteCString(raw)
}

func (w *writer) writeMsg1String(s string) {
	raw, err := sjis.FromUTF8(s)
	if err != nil {
		raw = []byte(s)
	}
	enc := make([]byte, len(raw))
	for i, c := range raw {
		enc[i] = c + byte(i) + 0x60
	}
	w.b.WriteI32(int32(len(enc)))
	w.b.WriteBytes(enc)
}

func (w *writer) writeType(t Type) {
	w.b.WriteI32(int32(t.Data))
	w.b.WriteI32(t.Struct)
	w.b.WriteI32(t.Rank)
	if w.p.versionAtLeast(11, 0) && t.Rank != 0 && t.ArrayType != nil {
		w.writeType(*t.ArrayType)
	}
}

func (w *writer) writeReturnType(t Type) {
	if w.p.versionAtLeast(11, 0) {
		w.writeType(t)
		return
	}
	w.b.WriteI32(int32(t.Data))
	w.b.WriteI32(t.Struct)
}

func (w *writer) writeInitval(v Variable) {
	if !v.HasInitval {
		w.b.WriteI32(0)
		return
	}
	w.b.WriteI32(1)
	switch v.Type.Data {
	case String:
		w.writeCString(v.InitString)
	case Struct, Delegate:
	default:
		if v.Type.Data.IsRef() || v.Type.Data == Array {
			return
		}
		w.b.WriteI32(v.InitInt)
	}
}

func (w *writer) writeVariables(vars []Variable) {
	for _, v := range vars {
		w.writeCString(v.Name)
		if w.p.versionAtLeast(12, 0) {
			w.writeCString(v.Name2)
		}
		w.writeType(v.Type)
		if w.p.versionAtLeast(8, 0) {
			w.writeInitval(v)
		}
	}
}

func (w *writer) writeGlobals(globals []Variable) {
	for _, g := range globals {
		w.writeCString(g.Name)
		if w.p.versionAtLeast(12, 0) {
			w.writeCString(g.Name2)
		}
		w.writeType(g.Type)
		if w.p.versionAtLeast(5, 0) {
			w.b.WriteI32(g.GroupIndex)
		}
	}
}

func (w *writer) writeInitvals(initvals []Initval) {
	for _, iv := range initvals {
		w.b.WriteI32(iv.GlobalIndex)
		w.b.WriteI32(int32(iv.DataType))
		if iv.DataType == String {
			w.writeCString(iv.StringValue)
		} else {
			w.b.WriteI32(iv.IntValue)
		}
	}
}

func (w *writer) writeFunctions(funcs []Function) {
	for _, f := range funcs {
		w.b.WriteU32(f.Address)
		w.writeCString(f.Name)
		if w.p.Version > 1 && w.p.Version < 7 {
			if f.IsLabel {
				w.b.WriteI32(1)
			} else {
				w.b.WriteI32(0)
			}
		}
		w.writeReturnType(f.ReturnType)
		w.b.WriteI32(f.NrArgs)
		w.b.WriteI32(int32(len(f.Vars)))
		if w.p.versionAtLeast(11, 0) {
			w.b.WriteI32(f.IsLambda)
		}
		if w.p.Version > 1 {
			w.b.WriteI32(f.CRC)
		}
		if len(f.Vars) > 0 {
			w.writeVariables(f.Vars)
		}
	}
}

func (w *writer) writeStructures(structs []Struct) {
	for _, s := range structs {
		w.writeCString(s.Name)
		if w.p.versionAtLeast(11, 0) {
			w.b.WriteI32(int32(len(s.Interfaces)))
			for _, iface := range s.Interfaces {
				w.b.WriteI32(iface.StructType)
				w.b.WriteI32(iface.VtableOffset)
			}
		}
		w.b.WriteI32(s.Constructor)
		w.b.WriteI32(s.Destructor)
		w.b.WriteI32(int32(len(s.Members)))
		w.writeVariables(s.Members)
		if w.p.versionAtLeast(14, 1) {
			w.b.WriteI32(int32(len(s.VMethods)))
			for _, m := range s.VMethods {
				w.b.WriteI32(m)
			}
		}
	}
}

func (w *writer) writeHLLArguments(args []HLLArgument) {
	for _, a := range args {
		w.writeCString(a.Name)
		if w.p.versionAtLeast(14, 0) {
			w.writeType(a.Type)
		} else {
			w.b.WriteI32(int32(a.Type.Data))
		}
	}
}

func (w *writer) writeLibraries(libs []Library) {
	for _, l := range libs {
		w.writeCString(l.Name)
		w.b.WriteI32(int32(len(l.Functions)))
		for _, f := range l.Functions {
			w.writeCString(f.Name)
			if w.p.versionAtLeast(14, 0) {
				w.writeType(f.ReturnType)
			} else {
				w.b.WriteI32(int32(f.ReturnType.Data))
			}
			w.b.WriteI32(int32(len(f.Arguments)))
			w.writeHLLArguments(f.Arguments)
		}
	}
}

func (w *writer) writeSwitches(switches []Switch) {
	for _, s := range switches {
		w.b.WriteI32(int32(s.CaseType))
		w.b.WriteU32(s.DefaultAddress)
		w.b.WriteI32(int32(len(s.Cases)))
		for _, c := range s.Cases {
			w.b.WriteI32(c.Value)
			w.b.WriteU32(c.Address)
		}
	}
}

func (w *writer) writeFunctionTypes(types []FunctionType) {
	for _, t := range types {
		w.writeCString(t.Name)
		w.writeReturnType(t.ReturnType)
		w.b.WriteI32(t.NrArgs)
		w.b.WriteI32(int32(len(t.Variables)))
		w.writeVariables(t.Variables)
	}
}
