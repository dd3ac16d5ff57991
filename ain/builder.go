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

import "github.com/nunuhara/system4/symtab"

// New returns an empty program of the given major/minor version, ready
// for builder calls, mirroring ain_new's section-presence defaults.
func New(majorVersion, minorVersion int32) *Program {
	p := &Program{
		Version:      majorVersion,
		MinorVersion: minorVersion,
		Alloc:        -1,
	}
	p.Sections.VERS = true
	p.Sections.KEYC = majorVersion < 12
	p.Sections.CODE = true
	p.Sections.FUNC = true
	p.Sections.GLOB = true
	p.Sections.GSET = true
	p.Sections.STRT = true
	p.Sections.MSG1 = (majorVersion == 6 && minorVersion > 0) || majorVersion > 6
	p.Sections.MSG0 = !p.Sections.MSG1
	p.Sections.MAIN = true
	p.Sections.MSGF = majorVersion >= 2
	p.Sections.HLL0 = true
	p.Sections.SWI0 = true
	p.Sections.STR0 = true
	p.Sections.FNAM = majorVersion >= 3
	p.Sections.OJMP = majorVersion >= 5
	p.funcIndex = newNameIndex(nil)
	p.structIndex = newStructIndex(nil)
	p.stringIndex = nil
	return p
}

func (p *Program) invalidateIndexes() {
	p.funcIndex = newNameIndex(p.Functions)
	p.structIndex = newStructIndex(p.Structures)
}

// AddStruct appends an empty named struct and returns its index.
func (p *Program) AddStruct(name string) int {
	no := len(p.Structures)
	p.Structures = append(p.Structures, Struct{Name: name, Constructor: -1, Destructor: -1})
	p.structIndex.Put(name, no)
	return no
}

// AddGlobal appends a named global variable and returns its index.
func (p *Program) AddGlobal(name string) int {
	no := len(p.Globals)
	v := Variable{Name: name, VariableType: VarGlobal}
	if p.versionAtLeast(12, 0) {
		v.Name2 = ""
	}
	p.Globals = append(p.Globals, v)
	return no
}

// AddInitval appends an (uninitialized) GSET entry for globalIndex and
// returns its index; the caller fills in the value fields.
func (p *Program) AddInitval(globalIndex int32) int {
	no := len(p.GlobalInitvals)
	p.GlobalInitvals = append(p.GlobalInitvals, Initval{GlobalIndex: globalIndex})
	return no
}

// AddFunction appends an empty named function, infers its owning struct
// or enum from the name's "<Type>@" prefix, and returns its index.
func (p *Program) AddFunction(name string) int {
	no := len(p.Functions)
	f := Function{Name: name, StructType: -1, EnumType: -1}
	p.Functions = append(p.Functions, f)
	p.initFunctionOwner(no)
	p.funcIndex.Add(name, no)
	return no
}

func (p *Program) initFunctionOwner(i int) {
	f := &p.Functions[i]
	at := -1
	for j := 0; j < len(f.Name); j++ {
		if f.Name[j] == '@' {
			at = j
			break
		}
	}
	if at < 0 {
		return
	}
	prefix := f.Name[:at]
	if idx, ok := p.StructByName(prefix); ok {
		f.StructType = int32(idx)
		return
	}
	for j, e := range p.Enums {
		if e.Name == prefix {
			f.EnumType = int32(j)
			return
		}
	}
}

// DupFunction duplicates the function at srcNo (deep-copying its
// variables and return type) and returns the new function's index.
func (p *Program) DupFunction(srcNo int) int {
	dstNo := len(p.Functions)
	src := p.Functions[srcNo]
	dst := src
	dst.Vars = append([]Variable(nil), src.Vars...)
	dst.ReturnType = copyType(src.ReturnType)
	for i := range dst.Vars {
		dst.Vars[i].Type = copyType(src.Vars[i].Type)
	}
	p.Functions = append(p.Functions, dst)
	p.funcIndex.Add(dst.Name, dstNo)
	return dstNo
}

func copyType(t Type) Type {
	out := t
	if t.ArrayType != nil {
		child := copyType(*t.ArrayType)
		out.ArrayType = &child
	}
	return out
}

// AddFunctionType appends an empty named function-pointer type and
// returns its index.
func (p *Program) AddFunctionType(name string) int {
	no := len(p.FunctionTypes)
	p.FunctionTypes = append(p.FunctionTypes, FunctionType{Name: name})
	p.Sections.FNCT = true
	return no
}

// AddDelegate appends an empty named delegate type and returns its
// index.
func (p *Program) AddDelegate(name string) int {
	no := len(p.Delegates)
	p.Delegates = append(p.Delegates, FunctionType{Name: name})
	p.Sections.DELG = true
	return no
}

// AddString interns str in the string pool, returning its existing
// index if already present.
func (p *Program) AddString(str string) int {
	if p.stringIndex == nil {
		p.stringIndex = newStringIndex(p.Strings)
	}
	if i, ok := p.stringIndex.Get(str); ok {
		return i
	}
	no := len(p.Strings)
	p.Strings = append(p.Strings, str)
	p.stringIndex.Put(str, no)
	return no
}

// AddMessage appends str to the message pool (not deduplicated, unlike
// AddString) and returns its index.
func (p *Program) AddMessage(str string) int {
	no := len(p.Messages)
	p.Messages = append(p.Messages, str)
	return no
}

// AddSwitch appends an empty int-keyed switch and returns its index.
func (p *Program) AddSwitch() int {
	no := len(p.Switches)
	p.Switches = append(p.Switches, Switch{CaseType: SwitchInt, DefaultAddress: 0xFFFFFFFF})
	return no
}

// AddFile appends a source filename and returns its index.
func (p *Program) AddFile(name string) int {
	no := len(p.Filenames)
	p.Filenames = append(p.Filenames, name)
	return no
}

// AddLibrary appends an empty named HLL library and returns its index.
func (p *Program) AddLibrary(name string) int {
	no := len(p.Libraries)
	p.Libraries = append(p.Libraries, Library{Name: name})
	return no
}

func newStringIndex(strs []string) *symtab.Table {
	t := symtab.NewTable(max(len(strs), 1))
	for i, s := range strs {
		t.Put(s, i)
	}
	return t
}
