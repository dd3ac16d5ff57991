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
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/internal/mt19937"
	"github.com/nunuhara/system4/symtab"
)

// ainDecryptSeed is the MT19937 seed applied to the whole file (after the
// AI2 zlib wrapper is ruled out) when the leading tag is obfuscated.
const ainDecryptSeed = 0x5D3E3

// Sections records which optional tagged sections were present in the
// source file, mirroring the per-tag ain_section bools in the reference
// reader. A zero-value Sections means "freshly built, nothing parsed".
type Sections struct {
	VERS, KEYC, CODE, FUNC, GLOB, GSET, STRT bool
	MSG0, MSG1, MAIN, MSGF, HLL0, SWI0       bool
	GVER, SLBL, STR0, FNAM, OJMP             bool
	FNCT, DELG, OBJG, ENUM                   bool
}

// Program is the complete decompiled contents of an ain file.
type Program struct {
	Version      int32
	MinorVersion int32
	KeyCode      int32
	GameVersion  int32

	Code []byte

	Functions       []Function
	Globals         []Variable
	GlobalInitvals  []Initval
	Structures      []Struct
	Messages        []string
	Main            int32
	Alloc           int32
	MsgF            int32
	Msg1Unknown     int32
	Libraries       []Library
	Switches        []Switch
	ScenarioLabels  []ScenarioLabel
	Strings         []string
	Filenames       []string
	Ojmp            int32
	FnctSize        int32
	FunctionTypes   []FunctionType
	DelgSize        int32
	Delegates       []FunctionType
	GlobalGroups    []string
	Enums           []Enum

	Sections Sections

	funcIndex   *symtab.NameIndex
	structIndex *symtab.Table
	stringIndex *symtab.Table
}

// versionAtLeast reports whether the program's (major, minor) version is
// at least (major, minor), matching the AIN_VERSION_GTE macro.
func (p *Program) versionAtLeast(major, minor int32) bool {
	return p.Version > major || (p.Version == major && p.MinorVersion >= minor)
}

// Load decodes a complete ain file image, handling both outer framings
// (AI2 zlib wrap, and the MT19937-obfuscated tag stream) transparently,
// as well as an unencrypted tag stream such as Write(false) produces.
func Load(raw []byte) (*Program, error) {
	buf, err := unwrap(raw)
	if err != nil {
		return nil, err
	}
	return parse(buf)
}

// unwrap strips the outer AI2 zlib wrapper or MT19937 tag-stream
// obfuscation, returning the plain tagged-section byte stream. A stream
// that already starts with a plain VERS tag is returned unchanged.
func unwrap(raw []byte) ([]byte, error) {
	if len(raw) >= 16 && bytes.Equal(raw[:8], []byte("AI2\x00\x00\x00\x00")) {
		outLen := le32(raw[8:])
		inLen := le32(raw[12:])
		if int(inLen) < 0 || 16+int(inLen) > len(raw) {
			return nil, ferr.New(ferr.Invalid, "ain", "AI2 compressed length exceeds file size")
		}
		zr, err := zlib.NewReader(bytes.NewReader(raw[16 : 16+int(inLen)]))
		if err != nil {
			return nil, ferr.Wrap(ferr.CompressionError, "ain", "AI2 zlib header", err)
		}
		defer zr.Close()
		out := make([]byte, outLen)
		if _, err := io.ReadFull(zr, out); err != nil {
			return nil, ferr.Wrap(ferr.CompressionError, "ain", "AI2 zlib payload", err)
		}
		return out, nil
	}

	if len(raw) < 8 {
		return nil, ferr.New(ferr.InvalidSignature, "ain", "file too small")
	}
	magic := append([]byte(nil), raw[:8]...)
	mt19937.XORCode(magic, ainDecryptSeed)
	if bytes.Equal(magic[:4], []byte("VERS")) && magic[5] == 0 && magic[6] == 0 && magic[7] == 0 {
		out := append([]byte(nil), raw...)
		mt19937.XORCode(out, ainDecryptSeed)
		return out, nil
	}
	if bytes.Equal(raw[:4], []byte("VERS")) && raw[5] == 0 && raw[6] == 0 && raw[7] == 0 {
		return raw, nil
	}
	return nil, ferr.New(ferr.InvalidSignature, "ain", "unrecognized ain framing")
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// parse walks the unwrapped tag stream and fills in a Program.
func parse(buf []byte) (*Program, error) {
	p := &Program{Version: -1, Alloc: -1}
	r := &reader{buf: buf, p: p}
	for r.index+4 < len(buf) {
		more, err := r.readTag()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	if p.Version == -1 {
		return nil, ferr.New(ferr.Invalid, "ain", "no VERS section found")
	}
	if p.Sections.MSG1 && p.Version == 6 && p.MinorVersion < 1 {
		p.MinorVersion = 1
	}
	p.distributeInitvals()
	p.buildIndexes()
	return p, nil
}

func (p *Program) distributeInitvals() {
	for _, iv := range p.GlobalInitvals {
		if iv.GlobalIndex < 0 || int(iv.GlobalIndex) >= len(p.Globals) {
			continue
		}
		g := &p.Globals[iv.GlobalIndex]
		g.HasInitval = true
		if iv.DataType == String {
			g.InitString = iv.StringValue
		} else {
			g.InitInt = iv.IntValue
			g.InitFloat = iv.FloatValue
		}
	}
}

func newNameIndex(functions []Function) *symtab.NameIndex {
	idx := symtab.NewNameIndex()
	for i, f := range functions {
		idx.Add(f.Name, i)
	}
	return idx
}

func newStructIndex(structures []Struct) *symtab.Table {
	t := symtab.NewTable(max(len(structures), 1))
	for i, s := range structures {
		t.Put(s.Name, i)
	}
	return t
}

func (p *Program) buildIndexes() {
	if p.funcIndex == nil {
		p.funcIndex = newNameIndex(p.Functions)
	}
	if p.structIndex == nil {
		p.structIndex = newStructIndex(p.Structures)
	}
	p.stringIndex = symtab.NewTable(max(len(p.Strings), 1))
	for i, s := range p.Strings {
		p.stringIndex.Put(s, i)
	}
	p.initMemberFunctions()
}

// initMemberFunctions infers each function's owning struct or enum from
// the "<Type>@<method>" naming convention compiled ain files use,
// grounded on function_init_struct_type in the reference reader (called
// there from ain_add_function; here applied once over every function
// after the whole symbol table is available).
func (p *Program) initMemberFunctions() {
	for i := range p.Functions {
		f := &p.Functions[i]
		f.StructType = -1
		f.EnumType = -1
		at := strings.IndexByte(f.Name, '@')
		if at < 0 {
			continue
		}
		prefix := f.Name[:at]
		if idx, ok := p.StructByName(prefix); ok {
			f.StructType = int32(idx)
			continue
		}
		for j, e := range p.Enums {
			if e.Name == prefix {
				f.EnumType = int32(j)
				break
			}
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FunctionByName resolves a function name, honoring the "name#n"
// disambiguation syntax for overloaded/duplicate names.
func (p *Program) FunctionByName(name string) (*Function, bool) {
	i, ok := p.funcIndex.Lookup(name)
	if !ok {
		return nil, false
	}
	return &p.Functions[i], true
}

// StructByName resolves a struct name to its index.
func (p *Program) StructByName(name string) (int, bool) {
	return p.structIndex.Get(name)
}

// StringIndex resolves a string-pool entry to its index.
func (p *Program) StringIndex(s string) (int, bool) {
	return p.stringIndex.Get(s)
}

// String implements fmt.Stringer for debugging/CLI use.
func (p *Program) String() string {
	return fmt.Sprintf("ain v%d.%d: %d functions, %d globals, %d structs, %d strings",
		p.Version, p.MinorVersion, len(p.Functions), len(p.Globals), len(p.Structures), len(p.Strings))
}
