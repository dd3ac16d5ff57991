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

package dasm

// PatchForVersion returns a copy of the instruction table adjusted for the
// given ain version. Six opcodes changed shape at ain version 11: NEW,
// S_MOD, OBJSWAP and DG_STR_TO_METHOD had no inline arguments in earlier
// versions, CALLHLL had only its library and function arguments (no
// third), and CALLMETHOD's single argument was a function index rather
// than an integer. instructionTable is declared with the version >= 11
// shape for the first five and the version < 11 shape for CALLMETHOD; this only has to patch whichever opcodes don't
// already match the requested version.
func PatchForVersion(version int) [opcodeCount]Instruction {
	t := instructionTable
	if version >= 11 {
		t[CALLMETHOD].Args = []ArgKind{ArgInt}
		return t
	}
	shrink := func(op Opcode) {
		ins := t[op]
		ins.Args = nil
		ins.IPInc = 2
		t[op] = ins
	}
	shrink(NEW)
	shrink(S_MOD)
	shrink(OBJSWAP)
	shrink(DG_STR_TO_METHOD)

	callhll := t[CALLHLL]
	callhll.Args = []ArgKind{ArgHLL, ArgHLLFunc}
	callhll.IPInc = 2 + 4*len(callhll.Args)
	t[CALLHLL] = callhll

	t[CALLMETHOD].Args = []ArgKind{ArgFunc}
	return t
}
