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

import (
	"encoding/binary"
	"testing"
)

func TestTableShapeInvariants(t *testing.T) {
	for op := Opcode(0); op < opcodeCount; op++ {
		ins := instructionTable[op]
		if ins.Name == "" {
			t.Fatalf("opcode %d has no name", op)
		}
		if ins.VariableWidth {
			if ins.IPInc != 0 {
				t.Errorf("%s: variable-width opcode has nonzero IPInc %d", ins.Name, ins.IPInc)
			}
			continue
		}
		want := 2 + 4*len(ins.Args)
		if ins.IPInc != want {
			t.Errorf("%s: IPInc = %d, want %d (2 + 4*%d args)", ins.Name, ins.IPInc, want, len(ins.Args))
		}
	}
}

func TestPatchForVersionPre11(t *testing.T) {
	table := PatchForVersion(8)
	if n := len(table[NEW].Args); n != 0 {
		t.Errorf("NEW pre-11 Args = %d, want 0", n)
	}
	if n := len(table[CALLHLL].Args); n != 2 {
		t.Errorf("CALLHLL pre-11 Args = %d, want 2", n)
	}
	if table[CALLMETHOD].Args[0] != ArgFunc {
		t.Errorf("CALLMETHOD pre-11 Args[0] = %v, want ArgFunc", table[CALLMETHOD].Args[0])
	}
}

func TestPatchForVersionPost11(t *testing.T) {
	table := PatchForVersion(11)
	if n := len(table[NEW].Args); n != 2 {
		t.Errorf("NEW v11 Args = %d, want 2", n)
	}
	if n := len(table[CALLHLL].Args); n != 3 {
		t.Errorf("CALLHLL v11 Args = %d, want 3", n)
	}
	if table[CALLMETHOD].Args[0] != ArgInt {
		t.Errorf("CALLMETHOD v11 Args[0] = %v, want ArgInt", table[CALLMETHOD].Args[0])
	}
}

func encodeInsn(op Opcode, args ...int32) []byte {
	buf := make([]byte, 2+4*len(args))
	binary.LittleEndian.PutUint16(buf, uint16(op))
	for i, a := range args {
		binary.LittleEndian.PutUint32(buf[2+4*i:], uint32(a))
	}
	return buf
}

func TestCursorWalksFixedWidthInstructions(t *testing.T) {
	var code []byte
	code = append(code, encodeInsn(PUSH, 42)...)
	code = append(code, encodeInsn(POP)...)

	c := Open(code, 11)
	if c.Eof() {
		t.Fatal("cursor at eof before reading anything")
	}
	op, err := c.Opcode()
	if err != nil || op != PUSH {
		t.Fatalf("Opcode() = %v, %v, want PUSH", op, err)
	}
	arg, err := c.Arg(0)
	if err != nil || arg != 42 {
		t.Fatalf("Arg(0) = %v, %v, want 42", arg, err)
	}
	next, err := c.Peek()
	if err != nil || next != POP {
		t.Fatalf("Peek() = %v, %v, want POP", next, err)
	}
	ins, _ := c.Instruction()
	if err := c.Next(ins.IPInc); err != nil {
		t.Fatal(err)
	}
	if c.Addr() != 6 {
		t.Fatalf("Addr() = %d, want 6", c.Addr())
	}
	op, err = c.Opcode()
	if err != nil || op != POP {
		t.Fatalf("Opcode() after Next = %v, %v, want POP", op, err)
	}
	ins, _ = c.Instruction()
	if err := c.Next(ins.IPInc); err != nil {
		t.Fatal(err)
	}
	if !c.Eof() {
		t.Fatal("expected eof after consuming both instructions")
	}
}

func TestCursorFunctionShadowStack(t *testing.T) {
	var code []byte
	code = append(code, encodeInsn(FUNC, 7)...)
	code = append(code, encodeInsn(PUSH, 1)...)
	code = append(code, encodeInsn(ENDFUNC, 7)...)

	c := Open(code, 11)
	if _, ok := c.Function(); ok {
		t.Fatal("expected no current function before any FUNC")
	}

	ins, _ := c.Instruction()
	if err := c.Next(ins.IPInc); err != nil {
		t.Fatal(err)
	}
	id, ok := c.Function()
	if !ok || id != 7 {
		t.Fatalf("Function() = %d, %v, want 7, true", id, ok)
	}

	ins, _ = c.Instruction()
	if err := c.Next(ins.IPInc); err != nil {
		t.Fatal(err)
	}
	id, ok = c.Function()
	if !ok || id != 7 {
		t.Fatalf("Function() mid-body = %d, %v, want 7, true", id, ok)
	}

	ins, _ = c.Instruction()
	if err := c.Next(ins.IPInc); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Function(); ok {
		t.Fatal("expected no current function after ENDFUNC")
	}
}

func TestCursorOutOfBounds(t *testing.T) {
	code := []byte{0x01}
	c := Open(code, 11)
	if _, err := c.Opcode(); err == nil {
		t.Fatal("expected truncated-opcode error")
	}
}
