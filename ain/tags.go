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

import "github.com/nunuhara/system4/ferr"

// readTag decodes one tagged section and reports whether the stream has
// more tags to read. It returns false (with a nil error) at a clean end
// of stream, and an error on a malformed section.
func (r *reader) readTag() (bool, error) {
	if r.index+4 > len(r.buf) {
		return false, nil
	}
	tag := string(r.buf[r.index : r.index+4])
	r.index += 4
	p := r.p

	switch tag {
	case "VERS":
		v, err := r.i32()
		if err != nil {
			return false, err
		}
		p.Version = v
		p.Sections.VERS = true
		if p.versionAtLeast(11, 0) {
			// Six opcodes change arity at v11; dasm.PatchForVersion applies
			// this when the code section is disassembled, so there is
			// nothing to patch here beyond recording the version itself.
		}
		if p.Version == 14 {
			p.MinorVersion = 1
		}
	case "KEYC":
		v, err := r.i32()
		if err != nil {
			return false, err
		}
		p.KeyCode = v
		p.Sections.KEYC = true
	case "CODE":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		code, err := r.bytes(int(n))
		if err != nil {
			return false, err
		}
		p.Code = append([]byte(nil), code...)
		p.Sections.CODE = true
	case "FUNC":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		funcs, err := r.readFunctions(int(n))
		if err != nil {
			return false, err
		}
		p.Functions = funcs
		p.Sections.FUNC = true
		p.buildFuncIndex()
	case "GLOB":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		globals, err := r.readGlobals(int(n))
		if err != nil {
			return false, err
		}
		p.Globals = globals
		p.Sections.GLOB = true
	case "GSET":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		initvals, err := r.readInitvals(int(n))
		if err != nil {
			return false, err
		}
		p.GlobalInitvals = initvals
		p.Sections.GSET = true
	case "STRT":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		structs, err := r.readStructures(int(n))
		if err != nil {
			return false, err
		}
		p.Structures = structs
		p.Sections.STRT = true
		p.buildStructIndex()
	case "MSG0":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		msgs, err := r.strings(int(n))
		if err != nil {
			return false, err
		}
		p.Messages = msgs
		p.Sections.MSG0 = true
	case "MSG1":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		uk, err := r.i32()
		if err != nil {
			return false, err
		}
		p.Msg1Unknown = uk
		msgs, err := r.msg1Strings(int(n))
		if err != nil {
			return false, err
		}
		p.Messages = msgs
		p.Sections.MSG1 = true
	case "MAIN":
		v, err := r.i32()
		if err != nil {
			return false, err
		}
		p.Main = v
		p.Sections.MAIN = true
	case "MSGF":
		v, err := r.i32()
		if err != nil {
			return false, err
		}
		p.MsgF = v
		p.Sections.MSGF = true
	case "HLL0":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		libs, err := r.readLibraries(int(n))
		if err != nil {
			return false, err
		}
		p.Libraries = libs
		p.Sections.HLL0 = true
	case "SWI0":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		sw, err := r.readSwitches(int(n))
		if err != nil {
			return false, err
		}
		p.Switches = sw
		p.Sections.SWI0 = true
	case "GVER":
		v, err := r.i32()
		if err != nil {
			return false, err
		}
		p.GameVersion = v
		p.Sections.GVER = true
	case "SLBL":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		labels, err := r.readScenarioLabels(int(n))
		if err != nil {
			return false, err
		}
		p.ScenarioLabels = labels
		p.Sections.SLBL = true
	case "STR0":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		strs, err := r.strings(int(n))
		if err != nil {
			return false, err
		}
		p.Strings = strs
		p.Sections.STR0 = true
	case "FNAM":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		names, err := r.strings(int(n))
		if err != nil {
			return false, err
		}
		p.Filenames = names
		p.Sections.FNAM = true
	case "OJMP":
		v, err := r.i32()
		if err != nil {
			return false, err
		}
		p.Ojmp = v
		p.Sections.OJMP = true
	case "FNCT":
		size, err := r.i32()
		if err != nil {
			return false, err
		}
		p.FnctSize = size
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		types, err := r.readFunctionTypes(int(n))
		if err != nil {
			return false, err
		}
		p.FunctionTypes = types
		p.Sections.FNCT = true
	case "DELG":
		size, err := r.i32()
		if err != nil {
			return false, err
		}
		p.DelgSize = size
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		types, err := r.readFunctionTypes(int(n))
		if err != nil {
			return false, err
		}
		p.Delegates = types
		p.Sections.DELG = true
	case "OBJG":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		names, err := r.strings(int(n))
		if err != nil {
			return false, err
		}
		p.GlobalGroups = names
		p.Sections.OBJG = true
	case "ENUM":
		n, err := r.i32()
		if err != nil {
			return false, err
		}
		enums, err := r.readEnums(int(n))
		if err != nil {
			return false, err
		}
		p.Enums = enums
		p.Sections.ENUM = true
	default:
		return false, ferr.New(ferr.Invalid, "ain", "unrecognized section tag "+tag)
	}
	return true, nil
}

// buildFuncIndex and buildStructIndex are called right after FUNC/STRT
// are parsed (rather than only once at the very end) because readEnums
// resolves each enum's string-conversion function by name before the
// whole file has been read, exactly as ain_index_functions/
// ain_index_structures are invoked inline in read_tag.
func (p *Program) buildFuncIndex() {
	p.funcIndex = newNameIndex(p.Functions)
}

func (p *Program) buildStructIndex() {
	p.structIndex = newStructIndex(p.Structures)
}
