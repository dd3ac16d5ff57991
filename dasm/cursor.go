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
	"fmt"
)

// maxFuncDepth bounds the FUNC/ENDFUNC shadow stack. libsys4 never nests
// function markers more than a few deep in practice; this is a defensive
// ceiling, not an observed limit.
const maxFuncDepth = 16

// Cursor walks one ain code section instruction by instruction, decoding
// inline arguments and tracking which function the current address falls
// inside of. It holds no reference to the owning program beyond the raw
// code bytes and the version-patched instruction table.
type Cursor struct {
	code  []byte
	table [opcodeCount]Instruction
	addr  int

	funcStack [maxFuncDepth]int
	funcDepth int
}

// Open returns a cursor positioned at the start of code, using the
// instruction table patched for ainVersion.
func Open(code []byte, ainVersion int) *Cursor {
	return &Cursor{code: code, table: PatchForVersion(ainVersion)}
}

// Eof reports whether the cursor has run off the end of the code section.
func (c *Cursor) Eof() bool {
	return c.addr >= len(c.code)
}

// Addr returns the byte offset of the current instruction.
func (c *Cursor) Addr() int { return c.addr }

// Opcode returns the opcode at the current address.
func (c *Cursor) Opcode() (Opcode, error) {
	if c.addr+2 > len(c.code) {
		return 0, fmt.Errorf("dasm: truncated opcode at %#x", c.addr)
	}
	op := Opcode(binary.LittleEndian.Uint16(c.code[c.addr:]))
	if int(op) >= len(c.table) {
		return 0, fmt.Errorf("dasm: opcode %d out of range at %#x", op, c.addr)
	}
	return op, nil
}

// Instruction returns the decoded instruction shape at the current
// address.
func (c *Cursor) Instruction() (Instruction, error) {
	op, err := c.Opcode()
	if err != nil {
		return Instruction{}, err
	}
	return c.table[op], nil
}

// NrArgs returns the number of inline arguments of the current
// instruction.
func (c *Cursor) NrArgs() (int, error) {
	ins, err := c.Instruction()
	if err != nil {
		return 0, err
	}
	return len(ins.Args), nil
}

// Arg returns the raw inline argument word n (0-based) of the current
// instruction, always stored little-endian as a 4-byte int immediately
// following the 2-byte opcode.
func (c *Cursor) Arg(n int) (int32, error) {
	ins, err := c.Instruction()
	if err != nil {
		return 0, err
	}
	if n < 0 || n >= len(ins.Args) {
		return 0, fmt.Errorf("dasm: arg %d out of range for %s", n, ins.Name)
	}
	off := c.addr + 2 + 4*n
	if off+4 > len(c.code) {
		return 0, fmt.Errorf("dasm: truncated argument %d of %s at %#x", n, ins.Name, c.addr)
	}
	return int32(binary.LittleEndian.Uint32(c.code[off:])), nil
}

// ArgType returns the kind of inline argument n of the current
// instruction.
func (c *Cursor) ArgType(n int) (ArgKind, error) {
	ins, err := c.Instruction()
	if err != nil {
		return 0, err
	}
	if n < 0 || n >= len(ins.Args) {
		return 0, fmt.Errorf("dasm: arg %d out of range for %s", n, ins.Name)
	}
	return ins.Args[n], nil
}

// Jump moves the cursor to addr without touching the function shadow
// stack; callers that jump across a FUNC/ENDFUNC boundary are
// responsible for the consequences (the disassembler itself never emits
// such a jump).
func (c *Cursor) Jump(addr int) {
	c.addr = addr
}

// Peek returns the opcode of the instruction immediately following the
// current one, without moving the cursor. It only applies to
// fixed-width instructions; callers must not call Peek on a
// variable-width instruction since its width is not known here.
func (c *Cursor) Peek() (Opcode, error) {
	ins, err := c.Instruction()
	if err != nil {
		return 0, err
	}
	if ins.VariableWidth {
		return 0, fmt.Errorf("dasm: Peek past variable-width instruction %s", ins.Name)
	}
	next := c.addr + ins.IPInc
	if next >= len(c.code) {
		return 0, fmt.Errorf("dasm: truncated code at %#x", next)
	}
	return Opcode(binary.LittleEndian.Uint16(c.code[next:])), nil
}

// Next advances the cursor past the current instruction, updating the
// function shadow stack on FUNC/ENDFUNC. ipInc must be supplied by the
// caller for variable-width instructions (call/jump opcodes resolve
// their own successor address); fixed-width instructions ignore it.
func (c *Cursor) Next(ipInc int) error {
	ins, err := c.Instruction()
	if err != nil {
		return err
	}
	switch ins.Opcode {
	case FUNC:
		funcID, err := c.Arg(0)
		if err != nil {
			return err
		}
		if c.funcDepth >= maxFuncDepth {
			return fmt.Errorf("dasm: FUNC nesting exceeds %d at %#x", maxFuncDepth, c.addr)
		}
		c.funcStack[c.funcDepth] = int(funcID)
		c.funcDepth++
	case ENDFUNC:
		if c.funcDepth > 0 {
			c.funcDepth--
		}
	}
	if ins.VariableWidth {
		c.addr += ipInc
	} else {
		c.addr += ins.IPInc
	}
	return nil
}

// Function returns the id of the function the current address falls
// inside of, or (0, false) if the cursor is not inside any FUNC/ENDFUNC
// pair.
func (c *Cursor) Function() (int, bool) {
	if c.funcDepth == 0 {
		return 0, false
	}
	return c.funcStack[c.funcDepth-1], true
}
