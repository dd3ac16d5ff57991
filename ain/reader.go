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
	"fmt"

	"github.com/nunuhara/system4/dasm"
	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/sjis"
)

// reader walks the flat tag stream, tracking which ain_section is
// currently open the way the reference start_section bookkeeping does.
type reader struct {
	buf   []byte
	index int
	p     *Program

	curSection *sectionInfo
}

func (r *reader) fail(kind ferr.Kind, msg string) error {
	return ferr.New(kind, "ain", fmt.Sprintf("%s (at %#x)", msg, r.index))
}

func (r *reader) need(n int) error {
	if r.index+n > len(r.buf) {
		return r.fail(ferr.OutOfBounds, "truncated section")
	}
	return nil
}

func (r *reader) i32() (int32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := int32(le32(r.buf[r.index:]))
	r.index += 4
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	v, err := r.i32()
	return uint32(v), err
}

func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.buf[r.index : r.index+n]
	r.index += n
	return v, nil
}

// cstring reads a NUL-terminated, possibly-SJIS-encoded C string and
// converts it to UTF-8. A broken Chinese-port build pads some function
// names with a run of 0xFF bytes first; callers that see this skip past
// it before calling cstring.
func (r *reader) cstring() (string, error) {
	start := r.index
	for r.index < len(r.buf) && r.buf[r.index] != 0 {
		r.index++
	}
	if r.index >= len(r.buf) {
		r.index = start
		return "", r.fail(ferr.OutOfBounds, "unterminated string")
	}
	raw := r.buf[start:r.index]
	r.index++
	s, err := sjis.ToUTF8(raw)
	if err != nil {
		return string(raw), nil
	}
	return s, nil
}

func (r *reader) skipJunkPrefix() {
	for r.index < len(r.buf) && r.buf[r.index] == 0xFF {
		r.index++
	}
}

func (r *reader) strings(count int) ([]string, error) {
	out := make([]string, count)
	for i := range out {
		s, err := r.cstring()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// msg1String reads one MSG1-section message: a length-prefixed byte run
// obfuscated by subtracting the byte's position and a fixed constant,
// grounded on read_msg1_string's `bytes[i] -= i; bytes[i] -= 0x60`.
func (r *reader) msg1String() (string, error) {
	n, err := r.i32()
	if err != nil {
		return "", err
	}
	raw, err := r.bytes(int(n))
	if err != nil {
		return "", err
	}
	dec := make([]byte, len(raw))
	for i, b := range raw {
		dec[i] = b - byte(i) - 0x60
	}
	s, err := sjis.ToUTF8(dec)
	if err != nil {
		return string(dec), nil
	}
	return s, nil
}

func (r *reader) msg1Strings(count int) ([]string, error) {
	out := make([]string, count)
	for i := range out {
		s, err := r.msg1String()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (r *reader) readType(t *Type) error {
	data, err := r.i32()
	if err != nil {
		return err
	}
	struc, err := r.i32()
	if err != nil {
		return err
	}
	rank, err := r.i32()
	if err != nil {
		return err
	}
	t.Data = DataType(data)
	t.Struct = struc
	t.Rank = rank

	// v11+: Rank becomes a has-subtype boolean; arrays nest instead of
	// carrying an explicit rank.
	if r.p.versionAtLeast(11, 0) && rank != 0 {
		t.ArrayType = &Type{}
		if err := r.readType(t.ArrayType); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) readReturnType(t *Type) error {
	if r.p.versionAtLeast(11, 0) {
		return r.readType(t)
	}
	data, err := r.i32()
	if err != nil {
		return err
	}
	struc, err := r.i32()
	if err != nil {
		return err
	}
	t.Data = DataType(data)
	t.Struct = struc
	return nil
}

func (r *reader) readInitval(v *Variable) error {
	has, err := r.i32()
	if err != nil {
		return err
	}
	if has == 0 {
		return nil
	}
	v.HasInitval = true
	switch v.Type.Data {
	case String:
		s, err := r.cstring()
		if err != nil {
			return err
		}
		v.InitString = s
	case Struct, Delegate:
		// no inline value
	default:
		if v.Type.IsRef() || v.Type.Data == Array {
			// no inline value
			return nil
		}
		i, err := r.i32()
		if err != nil {
			return err
		}
		v.InitInt = i
	}
	return nil
}

func (r *reader) readVariables(count int, vt VariableType) ([]Variable, error) {
	out := make([]Variable, count)
	for i := range out {
		v := &out[i]
		v.VariableType = vt
		name, err := r.cstring()
		if err != nil {
			return nil, err
		}
		v.Name = name
		if r.p.versionAtLeast(12, 0) {
			name2, err := r.cstring()
			if err != nil {
				return nil, err
			}
			v.Name2 = name2
		}
		if err := r.readType(&v.Type); err != nil {
			return nil, err
		}
		if r.p.versionAtLeast(8, 0) {
			if err := r.readInitval(v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func (r *reader) readFunctions(count int) ([]Function, error) {
	out := make([]Function, count)
	for i := range out {
		f := &out[i]
		addr, err := r.u32()
		if err != nil {
			return nil, err
		}
		f.Address = addr

		r.skipJunkPrefix()
		name, err := r.cstring()
		if err != nil {
			return nil, err
		}
		f.Name = name
		if name == "0" {
			r.p.Alloc = int32(i)
		}

		if r.p.Version == 14 && r.p.MinorVersion == 1 {
			switch name {
			case "C_MedicaMenu@0", "CInvasionHexScene@0", "_ALICETOOLS_AINV14_00":
				r.p.MinorVersion = 0
			}
		}

		if r.p.Version > 1 && r.p.Version < 7 {
			isLabel, err := r.i32()
			if err != nil {
				return nil, err
			}
			f.IsLabel = isLabel != 0
		}

		if err := r.readReturnType(&f.ReturnType); err != nil {
			return nil, err
		}
		nrArgs, err := r.i32()
		if err != nil {
			return nil, err
		}
		f.NrArgs = nrArgs
		nrVars, err := r.i32()
		if err != nil {
			return nil, err
		}
		if r.p.versionAtLeast(11, 0) {
			isLambda, err := r.i32()
			if err != nil {
				return nil, err
			}
			f.IsLambda = isLambda
		}
		if r.p.Version > 1 {
			crc, err := r.i32()
			if err != nil {
				return nil, err
			}
			f.CRC = crc
		}
		f.StructType = -1
		f.EnumType = -1
		if nrVars > 0 {
			vars, err := r.readVariables(int(nrVars), VarLocal)
			if err != nil {
				return nil, err
			}
			f.Vars = vars
		}
	}
	return out, nil
}

func (r *reader) readGlobals(count int) ([]Variable, error) {
	out := make([]Variable, count)
	for i := range out {
		g := &out[i]
		name, err := r.cstring()
		if err != nil {
			return nil, err
		}
		g.Name = name
		if r.p.versionAtLeast(12, 0) {
			name2, err := r.cstring()
			if err != nil {
				return nil, err
			}
			g.Name2 = name2
		}
		if err := r.readType(&g.Type); err != nil {
			return nil, err
		}
		if r.p.versionAtLeast(5, 0) {
			gi, err := r.i32()
			if err != nil {
				return nil, err
			}
			g.GroupIndex = gi
		}
		g.VariableType = VarGlobal
	}
	return out, nil
}

func (r *reader) readInitvals(count int) ([]Initval, error) {
	out := make([]Initval, count)
	for i := range out {
		iv := &out[i]
		gi, err := r.i32()
		if err != nil {
			return nil, err
		}
		iv.GlobalIndex = gi
		dt, err := r.i32()
		if err != nil {
			return nil, err
		}
		iv.DataType = DataType(dt)
		if iv.DataType == String {
			s, err := r.cstring()
			if err != nil {
				return nil, err
			}
			iv.StringValue = s
		} else {
			v, err := r.i32()
			if err != nil {
				return nil, err
			}
			iv.IntValue = v
		}
	}
	return out, nil
}

func (r *reader) readStructures(count int) ([]Struct, error) {
	out := make([]Struct, count)
	for i := range out {
		s := &out[i]
		name, err := r.cstring()
		if err != nil {
			return nil, err
		}
		s.Name = name

		if r.p.versionAtLeast(11, 0) {
			n, err := r.i32()
			if err != nil {
				return nil, err
			}
			s.Interfaces = make([]Interface, n)
			for j := range s.Interfaces {
				st, err := r.i32()
				if err != nil {
					return nil, err
				}
				vt, err := r.i32()
				if err != nil {
					return nil, err
				}
				s.Interfaces[j] = Interface{StructType: st, VtableOffset: vt}
			}
		}

		ctor, err := r.i32()
		if err != nil {
			return nil, err
		}
		s.Constructor = ctor
		dtor, err := r.i32()
		if err != nil {
			return nil, err
		}
		s.Destructor = dtor
		nrMembers, err := r.i32()
		if err != nil {
			return nil, err
		}
		members, err := r.readVariables(int(nrMembers), VarMember)
		if err != nil {
			return nil, err
		}
		s.Members = members

		if r.p.versionAtLeast(14, 1) {
			n, err := r.i32()
			if err != nil {
				return nil, err
			}
			s.VMethods = make([]int32, n)
			for j := range s.VMethods {
				v, err := r.i32()
				if err != nil {
					return nil, err
				}
				s.VMethods[j] = v
			}
		}
	}

	if r.p.versionAtLeast(11, 0) {
		for i := range out {
			for _, iface := range out[i].Interfaces {
				if iface.StructType >= 0 && int(iface.StructType) < count {
					out[iface.StructType].IsInterface = true
				}
			}
		}
	}
	return out, nil
}

func (r *reader) readHLLArguments(count int) ([]HLLArgument, error) {
	out := make([]HLLArgument, count)
	for i := range out {
		a := &out[i]
		name, err := r.cstring()
		if err != nil {
			return nil, err
		}
		a.Name = name
		if r.p.versionAtLeast(14, 0) {
			if err := r.readType(&a.Type); err != nil {
				return nil, err
			}
		} else {
			d, err := r.i32()
			if err != nil {
				return nil, err
			}
			a.Type = Type{Data: DataType(d), Struct: -1}
		}
	}
	return out, nil
}

func (r *reader) readHLLFunctions(count int) ([]HLLFunction, error) {
	out := make([]HLLFunction, count)
	for i := range out {
		f := &out[i]
		name, err := r.cstring()
		if err != nil {
			return nil, err
		}
		f.Name = name
		if r.p.versionAtLeast(14, 0) {
			if err := r.readType(&f.ReturnType); err != nil {
				return nil, err
			}
		} else {
			d, err := r.i32()
			if err != nil {
				return nil, err
			}
			f.ReturnType = Type{Data: DataType(d), Struct: -1}
		}
		nrArgs, err := r.i32()
		if err != nil {
			return nil, err
		}
		if nrArgs < 0 || nrArgs > 100 {
			return nil, r.fail(ferr.Invalid, "HLL function argument count out of range")
		}
		args, err := r.readHLLArguments(int(nrArgs))
		if err != nil {
			return nil, err
		}
		f.Arguments = args
	}
	return out, nil
}

func (r *reader) readLibraries(count int) ([]Library, error) {
	out := make([]Library, count)
	for i := range out {
		l := &out[i]
		name, err := r.cstring()
		if err != nil {
			return nil, err
		}
		l.Name = name
		nrFuncs, err := r.i32()
		if err != nil {
			return nil, err
		}
		funcs, err := r.readHLLFunctions(int(nrFuncs))
		if err != nil {
			return nil, err
		}
		l.Functions = funcs
	}
	return out, nil
}

func (r *reader) readSwitches(count int) ([]Switch, error) {
	out := make([]Switch, count)
	for i := range out {
		s := &out[i]
		ct, err := r.i32()
		if err != nil {
			return nil, err
		}
		s.CaseType = SwitchCaseType(ct)
		def, err := r.u32()
		if err != nil {
			return nil, err
		}
		s.DefaultAddress = def
		nrCases, err := r.i32()
		if err != nil {
			return nil, err
		}
		s.Cases = make([]SwitchCase, nrCases)
		for j := range s.Cases {
			v, err := r.i32()
			if err != nil {
				return nil, err
			}
			addr, err := r.u32()
			if err != nil {
				return nil, err
			}
			s.Cases[j] = SwitchCase{Value: v, Address: addr}
		}
	}
	return out, nil
}

func (r *reader) readScenarioLabels(count int) ([]ScenarioLabel, error) {
	out := make([]ScenarioLabel, count)
	for i := range out {
		name, err := r.cstring()
		if err != nil {
			return nil, err
		}
		addr, err := r.u32()
		if err != nil {
			return nil, err
		}
		out[i] = ScenarioLabel{Name: name, Address: addr}
	}
	return out, nil
}

func (r *reader) readFunctionTypes(count int) ([]FunctionType, error) {
	out := make([]FunctionType, count)
	for i := range out {
		t := &out[i]
		name, err := r.cstring()
		if err != nil {
			return nil, err
		}
		t.Name = name
		if err := r.readReturnType(&t.ReturnType); err != nil {
			return nil, err
		}
		nrArgs, err := r.i32()
		if err != nil {
			return nil, err
		}
		t.NrArgs = nrArgs
		nrVars, err := r.i32()
		if err != nil {
			return nil, err
		}
		vars, err := r.readVariables(int(nrVars), VarLocal)
		if err != nil {
			return nil, err
		}
		t.Variables = vars
	}
	return out, nil
}

// readEnums recovers symbolic enum values by disassembling each enum's
// compiler-generated string-conversion function and collecting the
// operands of every S_PUSH instruction up to ENDFUNC, grounded on
// read_enums in the reference reader.
func (r *reader) readEnums(count int) ([]Enum, error) {
	names, err := r.strings(count)
	if err != nil {
		return nil, err
	}
	out := make([]Enum, count)
	for i, name := range names {
		out[i].Name = name

		var fname string
		if r.p.Version < 14 {
			fname = name + "@String"
		} else {
			fname = name + "::ToString"
		}
		fn, ok := r.p.FunctionByName(fname)
		if !ok {
			continue
		}
		out[i].Values = r.p.collectEnumSymbols(fn.Address)
	}
	return out, nil
}

// collectEnumSymbols walks the bytecode of the function at addr,
// collecting the string-pool operand of every S_PUSH instruction until
// ENDFUNC, in instruction order (the order libsys4 assigns ordinal enum
// values).
func (p *Program) collectEnumSymbols(addr uint32) []EnumValue {
	c := dasm.Open(p.Code, int(p.Version))
	c.Jump(int(addr))
	var values []EnumValue
	for !c.Eof() {
		ins, err := c.Instruction()
		if err != nil {
			break
		}
		if ins.Opcode == dasm.ENDFUNC {
			break
		}
		if ins.Opcode == dasm.S_PUSH {
			if strno, err := c.Arg(0); err == nil && int(strno) >= 0 && int(strno) < len(p.Strings) {
				if s := p.Strings[strno]; s != "" {
					values = append(values, EnumValue{Symbol: s, Value: len(values)})
				}
			}
		}
		if err := c.Next(ins.IPInc); err != nil {
			break
		}
	}
	return values
}
