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

// Command s4dump prints a human-readable summary of a System 4 engine
// artifact: an ain program image, a gsave/rsave save file, an EX value
// tree, a CG image, or one of the archive container formats.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nunuhara/system4/ain"
	"github.com/nunuhara/system4/archive"
	"github.com/nunuhara/system4/cg"
	"github.com/nunuhara/system4/dasm"
	"github.com/nunuhara/system4/ex"
	"github.com/nunuhara/system4/save"
)

func main() {
	list := flag.Bool("list", false, "list archive entries instead of a summary")
	extract := flag.Int("extract", -1, "write archive entry N's raw bytes to stdout")
	funcName := flag.String("func", "", "disassemble only the named ain function")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: s4dump [-list] [-extract N] [-func NAME] file")
		os.Exit(1)
	}
	path := args[0]

	if err := dump(path, *list, *extract, *funcName); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
		os.Exit(1)
	}
}

var archiveExtensions = map[string]func(string) (archive.Archive, error){
	".ald":  func(path string) (archive.Archive, error) { return archive.OpenALD([]string{path}, 0) },
	".afa":  func(path string) (archive.Archive, error) { return archive.OpenAFA(path, 0) },
	".aar":  func(path string) (archive.Archive, error) { return archive.OpenAAR(path, 0) },
	".alk":  func(path string) (archive.Archive, error) { return archive.OpenALK(path, 0) },
	".dlf":  func(path string) (archive.Archive, error) { return archive.OpenDLF(path, 0) },
	".flat": func(path string) (archive.Archive, error) { return archive.OpenFlat(path, 0) },
}

func dump(path string, list bool, extract int, funcName string) error {
	ext := strings.ToLower(filepath.Ext(path))

	if open, ok := archiveExtensions[ext]; ok {
		ar, err := open(path)
		if err != nil {
			return err
		}
		defer ar.Close()
		if extract >= 0 {
			return extractEntry(ar, extract)
		}
		return dumpArchive(ar, list)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch ext {
	case ".ain":
		return dumpAin(raw, funcName)
	case ".ex":
		return dumpEx(raw)
	}

	// Unrecognized extension: sniff each framing's magic in turn.
	switch {
	case bytes.HasPrefix(raw, []byte("AI2\x00\x00\x00\x00")), looksLikeAin(raw):
		return dumpAin(raw, funcName)
	case bytes.HasPrefix(raw, []byte("GD\x01\x01")):
		return dumpSave(raw)
	case bytes.HasPrefix(raw, []byte("HEAD")):
		return dumpEx(raw)
	case cg.CheckFormat(raw) != cg.TypeUnknown:
		return dumpCG(raw)
	default:
		return fmt.Errorf("unrecognized file format")
	}
}

// looksLikeAin reports whether raw loads as an ain image in any framing
// ain.Load accepts; it does so by loading the whole file.
func looksLikeAin(raw []byte) bool {
	if len(raw) < 8 {
		return false
	}
	p, err := ain.Load(raw)
	return err == nil && p != nil
}

func extractEntry(ar archive.Archive, no int) error {
	d, err := ar.Get(no)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("entry %d does not exist", no)
	}
	_, err = os.Stdout.Write(d.Data)
	return err
}

func dumpArchive(ar archive.Archive, list bool) error {
	count := 0
	err := ar.ForEach(func(d *archive.Data) error {
		count++
		if list {
			fmt.Printf("%6d  %10d  %s\n", d.No, d.Size, d.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !list {
		fmt.Printf("%d entries\n", count)
	}
	return nil
}

func dumpAin(raw []byte, funcName string) error {
	p, err := ain.Load(raw)
	if err != nil {
		return err
	}
	if funcName == "" {
		fmt.Println(p.String())
		for i, s := range p.Structures {
			fmt.Printf("struct %d: %s (%d members)\n", i, s.Name, len(s.Members))
		}
		for i, l := range p.Libraries {
			fmt.Printf("library %d: %s (%d functions)\n", i, l.Name, len(l.Functions))
		}
		return nil
	}

	fn, ok := p.FunctionByName(funcName)
	if !ok {
		return fmt.Errorf("no function named %q", funcName)
	}
	return disassembleFunction(p, fn)
}

func disassembleFunction(p *ain.Program, fn *ain.Function) error {
	c := dasm.Open(p.Code, int(p.Version))
	c.Jump(int(fn.Address))
	for !c.Eof() {
		id, inFunc := c.Function()
		if inFunc && id != indexOf(p, fn) {
			break
		}
		ins, err := c.Instruction()
		if err != nil {
			return err
		}
		fmt.Printf("%#08x  %s", c.Addr(), ins.Name)
		for i := range ins.Args {
			v, err := c.Arg(i)
			if err != nil {
				return err
			}
			fmt.Printf(" %d", v)
		}
		fmt.Println()
		if ins.Opcode == dasm.ENDFUNC && inFunc {
			break
		}
		if err := c.Next(2 + 4*len(ins.Args)); err != nil {
			return err
		}
	}
	return nil
}

func indexOf(p *ain.Program, fn *ain.Function) int {
	for i := range p.Functions {
		if &p.Functions[i] == fn {
			return i
		}
	}
	return -1
}

func dumpSave(raw []byte) error {
	c, err := save.ReadContainer(raw)
	if err != nil {
		return err
	}
	if bytes.HasPrefix(c.Payload, []byte("RSM\x00")) {
		rs, err := save.ParseRSave(c.Payload)
		if err != nil {
			return err
		}
		fmt.Printf("rsave v%d: %d stack entries, %d frames, %d heap objects\n",
			rs.Version, len(rs.Stack), len(rs.Frames), len(rs.Heap))
		return nil
	}
	gs, err := save.ParseGSave(c.Payload)
	if err != nil {
		return err
	}
	fmt.Printf("gsave v%d (%s): %d globals, %d strings, %d arrays, %d records\n",
		gs.Version, gs.Key, len(gs.Globals), len(gs.Strings), len(gs.Arrays), len(gs.Records))
	return nil
}

func dumpEx(raw []byte) error {
	e, err := ex.Decode(raw)
	if err != nil {
		return err
	}
	for _, b := range e.Blocks {
		fmt.Printf("%s: %s\n", b.Name, b.Value.Type)
	}
	return nil
}

func dumpCG(raw []byte) error {
	typ := cg.CheckFormat(raw)
	m, err := cg.GetMetrics(raw)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d, %d bpp, pixel=%v alpha=%v\n", typ, m.W, m.H, m.BPP, m.HasPixel, m.HasAlpha)
	return nil
}
