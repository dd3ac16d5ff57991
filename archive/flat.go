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

package archive

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/nunuhara/system4/buffer"
	"github.com/nunuhara/system4/ferr"
	"github.com/nunuhara/system4/sjis"
)

// FlatHeaderType records which of the two FLAT section layouts was read.
type FlatHeaderType int

const (
	FlatHdrUnknown FlatHeaderType = iota
	FlatHdrV1_32
	FlatHdrV2_64
)

// FlatSection is a single entry from a flat file's table of contents: a
// 4-byte magic, a 4-byte size, and the payload that follows.
type FlatSection struct {
	Present bool
	Off     uint32
	Size    uint32
}

// FlatHeader is the parsed FLAT section. Size 32 selects the v1 layout
// (version trails the other fields); size 64 selects v2 (version leads
// and an extra trailing field is present).
type FlatHeader struct {
	Present         bool
	Type            FlatHeaderType
	Version         int32
	FPS             int32
	GameViewWidth   int32
	GameViewHeight  int32
	CameraLength    float32
	Meter           float32
	Width           int32
	Height          int32
	UK1             int32 // v2 only
}

// TimelineType selects which of the MTLC/LIBL timeline payload shapes
// follows the common timeline header.
type TimelineType int32

const (
	TimelineGraphic TimelineType = 0
	TimelineScript  TimelineType = 1
	TimelineSound   TimelineType = 2
)

// GraphicKey is one keyframe of a graphic timeline. Fields present only
// from a given header version are left zero below that version, mirroring
// the reference's version-gated reads.
type GraphicKey struct {
	PosXInt, PosYInt     int32   // version <= 4
	PosXFloat, PosYFloat float32 // version > 4
	ScaleX, ScaleY       float32
	AngleX, AngleY, AngleZ float32
	AddR, AddG, AddB     int32
	MulR, MulG, MulB     int32
	Alpha                int32
	AreaX, AreaY         int32
	AreaWidth, AreaHeight int32
	DrawFilter           int32
	UK1                  int32 // version > 8
	OriginX, OriginY     int32
	UK2                  int32 // version > 7
	ReverseTB, ReverseLR bool
}

// GraphicFrame holds the keys for a single frame of a version >= 15
// graphic timeline, which nests a variable key count per frame instead
// of one flat key array for the whole timeline.
type GraphicFrame struct {
	Keys []GraphicKey
}

// ScriptKey is one entry of a script timeline: a frame index followed
// by a run of operations (jump, stop, display text) terminated by a
// zero opcode.
type ScriptKey struct {
	FrameIndex int32
	HasJump    bool
	JumpFrame  int32
	IsStop     bool
	Text       string
}

// Timeline is a named, typed sequence of keyframes, used both as a
// top-level MTLC entry and nested inside a FlatLibTimeline library.
type Timeline struct {
	Name        string
	LibraryName string
	Type        TimelineType
	BeginFrame  int32
	FrameCount  int32

	GraphicKeys   []GraphicKey   // version < 15
	GraphicFrames []GraphicFrame // version >= 15
	ScriptKeys    []ScriptKey
}

// LibraryType selects the payload shape of a LIBL entry. The header that
// defines these constants is not present in the reference sources
// available for this module; the values below are a documented
// reconstruction (assigned in the order parse_library's switch checks
// them) rather than a confirmed original numbering. Only FlatLibCG's
// value of 2 is independently corroborated, by flat_data_type.FLAT_CG in
// flat.h.
type LibraryType int32

const (
	FlatLibCG         LibraryType = 2
	FlatLibMemory     LibraryType = 0
	FlatLibTimeline   LibraryType = 1
	FlatLibStopMotion LibraryType = 3
	FlatLibEmitter    LibraryType = 4
)

// StopMotion describes a stop-motion animation library entry: a library
// to cut frames from, a span, and a loop type.
type StopMotion struct {
	LibraryName string
	Span        int32
	LoopType    int32
}

// Emitter is a particle-emitter descriptor. Its layout is version
// dependent (gated by the FLAT header's version field), with later
// versions adding fields rather than replacing earlier ones; every
// field the format can produce is preserved here even though a given
// file only ever populates the subset its version reads.
type Emitter struct {
	LibraryName string

	UKInt1 int32

	CreatePosType    int32
	CreatePosLength  float32
	CreatePosLength2 float32
	CreateCount      int32
	ParticleLength   int32

	BeginSizeRate float32
	// version < 1
	EndSizeRate   float32
	BeginXSizeRate float32
	EndXSizeRate   float32
	BeginYSizeRate float32
	EndYSizeRate   float32
	// version >= 1 (adds uk*SizeRate fields alongside begin/end)
	UK1SizeRate  float32
	UK2SizeRate  float32
	UK1XSizeRate float32
	UK2XSizeRate float32
	UK1YSizeRate float32
	UK2YSizeRate float32
	UKBool1      bool // version > 5

	DirectionType  int32
	DirectionX     float32
	DirectionY     float32
	DirectionZ     float32
	DirectionAngle float32

	IsEmitterConnectType bool

	UKInt2  int32 // version > 2
	UKInt3  int32 // version > 9
	UKInt4  int32 // version > 1
	UKInt5  int32
	UKInt6  int32
	UKInt7  int32
	UKInt8  int32
	UKInt9  int32
	UKInt10 int32
	UKInt11 int32

	Speed      float32
	SpeedRate  float32
	MoveLength float32
	MoveCurve  float32
	UKFloat1   float32 // version > 1

	IsFall        bool
	Width         float32
	AirResistance float32
	UKBool2       bool // version > 1

	BeginXAngle float32
	// version < 1
	EndXAngle   float32
	BeginYAngle float32
	EndYAngle   float32
	BeginZAngle float32
	EndZAngle   float32
	// version >= 1
	UK1XAngle float32
	UK2XAngle float32
	UK1YAngle float32
	UK2YAngle float32
	UK1ZAngle float32
	UK2ZAngle float32
	UKBool3   bool // version > 5

	FadeInFrame    int32
	FadeOutFrame   int32
	DrawFilterType int32
	RandBase       int32
	EndPosType     int32
	EndPosX        float32
	EndPosY        float32
	EndPosZ        float32
	EndCGName      string
}

// Library is one entry of the LIBL section.
type Library struct {
	Name string
	Type LibraryType
	Size uint32

	CG         []byte
	Timelines  []Timeline
	StopMotion *StopMotion
	Emitter    *Emitter
}

// TaltMetadata is one metadata record attached to a TALT entry.
type TaltMetadata struct {
	Unknown1Size uint32
	Unknown1Off  uint32
	Unknown2     int32
	Unknown3     int32
	Unknown4     int32
	Unknown5     int32
}

// TaltEntry is one TALT table entry: an embedded AJP image plus a
// variable-length run of metadata records.
type TaltEntry struct {
	Size     uint32
	Off      uint32
	Metadata []TaltMetadata
}

// Flat is a System 4 "flat" asset container: a fixed sequence of
// magic-tagged sections (ELNA, FLAT, TMNL, MTLC, LIBL, TALT) holding a
// header, top-level timelines, named libraries (CG images, memory
// blobs, nested timelines, stop-motion descriptors, particle emitters),
// and auxiliary AJP thumbnails. Unlike the other archive backends, a
// flat file's entries are typed, parsed records rather than opaque
// byte blobs; Get/GetByName expose each library's raw CG bytes where
// the type is FlatLibCG; for other library types the returned Data is
// empty, while the
// parsed Libraries/Timelines/TaltEntries fields give full access to
// every decoded field.
type Flat struct {
	src *source

	ELNA FlatSection
	Flat FlatSection
	TMNL FlatSection
	MTLC FlatSection
	LIBL FlatSection
	TALT FlatSection

	Header FlatHeader

	Timelines   []Timeline
	Libraries   []Library
	TaltEntries []TaltEntry

	byName map[string]int
}

func OpenFlat(path string, flags OpenFlags) (*Flat, error) {
	src, err := openSource(path, flags)
	if err != nil {
		return nil, ferr.Wrap(ferr.FileError, "flat", "open", err)
	}
	fl, err := flatFromSource(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	return fl, nil
}

func readFlatSection(magic string, r *buffer.Buffer) (FlatSection, bool) {
	if r.Remaining() < 8 {
		return FlatSection{}, false
	}
	tag, err := r.ReadBytes(4)
	if err != nil || string(tag) != magic {
		r.Seek(r.Index() - len(tag))
		return FlatSection{}, false
	}
	off := r.Index() - 4
	size, err := r.ReadU32()
	if err != nil {
		return FlatSection{}, false
	}
	if err := r.Skip(int(size)); err != nil {
		return FlatSection{}, false
	}
	return FlatSection{Present: true, Off: uint32(off), Size: size}, true
}

// readFlatString reads the length-prefixed, 4-byte-aligned string
// encoding used throughout flat sections (distinct from buffer's NUL-
// terminated or plain pascal strings).
func readFlatString(r *buffer.Buffer) (string, error) {
	n, err := r.ReadI32()
	if err != nil || n < 0 || r.Remaining() < int(n) {
		return "", ferr.New(ferr.Invalid, "flat", "bad string length")
	}
	raw, err := r.ReadBytes(int(n))
	if err != nil {
		return "", ferr.Wrap(ferr.OutOfBounds, "flat", "string data", err)
	}
	r.Align(4)
	s, err := sjis.ToUTF8(raw)
	if err != nil {
		return "", ferr.Wrap(ferr.Invalid, "flat", "string encoding", err)
	}
	return s, nil
}

func readFlatHeaderV1(data []byte, sec FlatSection) (FlatHeader, error) {
	r := buffer.NewReader(data[sec.Off+8 : sec.Off+8+sec.Size])
	if r.Remaining() < 8*4 {
		return FlatHeader{}, ferr.New(ferr.Invalid, "flat", "FLAT section too small")
	}
	var h FlatHeader
	h.Type = FlatHdrV1_32
	h.FPS, _ = r.ReadI32()
	h.GameViewWidth, _ = r.ReadI32()
	h.GameViewHeight, _ = r.ReadI32()
	h.CameraLength, _ = r.ReadFloat()
	h.Meter, _ = r.ReadFloat()
	h.Width, _ = r.ReadI32()
	h.Height, _ = r.ReadI32()
	h.Version, _ = r.ReadI32()
	h.Present = true
	return h, nil
}

func readFlatHeaderV2(data []byte, sec FlatSection) (FlatHeader, error) {
	r := buffer.NewReader(data[sec.Off+8 : sec.Off+8+sec.Size])
	if r.Remaining() < 9*4 {
		return FlatHeader{}, ferr.New(ferr.Invalid, "flat", "FLAT section too small")
	}
	var h FlatHeader
	h.Type = FlatHdrV2_64
	h.Version, _ = r.ReadI32()
	h.FPS, _ = r.ReadI32()
	h.GameViewWidth, _ = r.ReadI32()
	h.GameViewHeight, _ = r.ReadI32()
	h.CameraLength, _ = r.ReadFloat()
	h.Meter, _ = r.ReadFloat()
	h.Width, _ = r.ReadI32()
	h.Height, _ = r.ReadI32()
	h.UK1, _ = r.ReadI32()
	h.Present = true
	return h, nil
}

func parseGraphicKey(r *buffer.Buffer, version int32) (GraphicKey, error) {
	var k GraphicKey
	var err error
	if version <= 4 {
		k.PosXInt, err = r.ReadI32()
		if err == nil {
			k.PosYInt, err = r.ReadI32()
		}
	} else {
		k.PosXFloat, err = r.ReadFloat()
		if err == nil {
			k.PosYFloat, err = r.ReadFloat()
		}
	}
	readers := []func() error{
		func() (e error) { k.ScaleX, e = r.ReadFloat(); return },
		func() (e error) { k.ScaleY, e = r.ReadFloat(); return },
		func() (e error) { k.AngleX, e = r.ReadFloat(); return },
		func() (e error) { k.AngleY, e = r.ReadFloat(); return },
		func() (e error) { k.AngleZ, e = r.ReadFloat(); return },
		func() (e error) { k.AddR, e = r.ReadI32(); return },
		func() (e error) { k.AddG, e = r.ReadI32(); return },
		func() (e error) { k.AddB, e = r.ReadI32(); return },
		func() (e error) { k.MulR, e = r.ReadI32(); return },
		func() (e error) { k.MulG, e = r.ReadI32(); return },
		func() (e error) { k.MulB, e = r.ReadI32(); return },
		func() (e error) { k.Alpha, e = r.ReadI32(); return },
		func() (e error) { k.AreaX, e = r.ReadI32(); return },
		func() (e error) { k.AreaY, e = r.ReadI32(); return },
		func() (e error) { k.AreaWidth, e = r.ReadI32(); return },
		func() (e error) { k.AreaHeight, e = r.ReadI32(); return },
		func() (e error) { k.DrawFilter, e = r.ReadI32(); return },
	}
	for _, f := range readers {
		if err == nil {
			err = f()
		}
	}
	if err != nil {
		return k, err
	}
	if version > 8 {
		if k.UK1, err = r.ReadI32(); err != nil {
			return k, err
		}
	}
	if k.OriginX, err = r.ReadI32(); err != nil {
		return k, err
	}
	if k.OriginY, err = r.ReadI32(); err != nil {
		return k, err
	}
	if version > 7 {
		if k.UK2, err = r.ReadI32(); err != nil {
			return k, err
		}
	}
	rtb, err := r.ReadI32()
	if err != nil {
		return k, err
	}
	k.ReverseTB = rtb != 0
	rlr, err := r.ReadI32()
	if err != nil {
		return k, err
	}
	k.ReverseLR = rlr != 0
	return k, nil
}

func graphicKeyDataSize(version int32) int {
	sz := 92
	if version > 7 {
		sz += 4
	}
	if version > 8 {
		sz += 4
	}
	return sz
}

func readGraphicTimeline(tl *Timeline, r *buffer.Buffer, version int32) {
	if tl.FrameCount <= 0 {
		return
	}
	ksz := graphicKeyDataSize(version)

	if version < 15 {
		tl.GraphicKeys = make([]GraphicKey, 0, tl.FrameCount)
		for i := int32(0); i < tl.FrameCount; i++ {
			if r.Remaining() < ksz {
				break
			}
			k, err := parseGraphicKey(r, version)
			if err != nil {
				break
			}
			tl.GraphicKeys = append(tl.GraphicKeys, k)
		}
		return
	}

	tl.GraphicFrames = make([]GraphicFrame, tl.FrameCount)
	for f := int32(0); f < tl.FrameCount; f++ {
		n, err := r.ReadI32()
		if err != nil {
			break
		}
		need := int(n) * ksz
		if r.Remaining() < need {
			n = int32(r.Remaining() / ksz)
		}
		frame := GraphicFrame{Keys: make([]GraphicKey, 0, n)}
		for i := int32(0); i < n; i++ {
			k, err := parseGraphicKey(r, version)
			if err != nil {
				break
			}
			frame.Keys = append(frame.Keys, k)
		}
		tl.GraphicFrames[f] = frame
	}
}

func parseScriptKey(r *buffer.Buffer) (ScriptKey, error) {
	var k ScriptKey
	var err error
	k.FrameIndex, err = r.ReadI32()
	if err != nil {
		return k, err
	}
	k.JumpFrame = -1
	for {
		op, err := r.ReadI32()
		if err != nil {
			return k, err
		}
		switch op {
		case 0:
			return k, nil
		case 1:
			k.HasJump = true
			if k.JumpFrame, err = r.ReadI32(); err != nil {
				return k, err
			}
		case 2:
			k.IsStop = true
		case 3:
			if k.Text, err = readFlatString(r); err != nil {
				return k, err
			}
		default:
			return k, ferr.New(ferr.Invalid, "flat", "unknown script key operation")
		}
	}
}

func readScriptTimeline(tl *Timeline, r *buffer.Buffer) error {
	if r.Remaining() < 4 {
		return nil
	}
	n, err := r.ReadI32()
	if err != nil {
		return err
	}
	tl.ScriptKeys = make([]ScriptKey, 0, n)
	for i := int32(0); i < n; i++ {
		k, err := parseScriptKey(r)
		if err != nil {
			return err
		}
		tl.ScriptKeys = append(tl.ScriptKeys, k)
	}
	return nil
}

func parseTimeline(version int32, r *buffer.Buffer) (Timeline, bool) {
	var tl Timeline
	var err error
	if tl.Name, err = readFlatString(r); err != nil {
		return tl, false
	}
	if tl.LibraryName, err = readFlatString(r); err != nil {
		return tl, false
	}
	typ, err := r.ReadI32()
	if err != nil {
		return tl, false
	}
	tl.Type = TimelineType(typ)
	if tl.BeginFrame, err = r.ReadI32(); err != nil {
		return tl, false
	}
	if tl.FrameCount, err = r.ReadI32(); err != nil {
		return tl, false
	}

	switch tl.Type {
	case TimelineGraphic:
		readGraphicTimeline(&tl, r, version)
	case TimelineScript:
		if err := readScriptTimeline(&tl, r); err != nil {
			return tl, false
		}
	default:
		return tl, false
	}
	return tl, true
}

// parseTimelines reads a timeline list, optionally zlib-compressed
// (flat header version >= 4 prefixes the list with an uncompressed-size
// field and deflates it).
func parseTimelines(version int32, r *buffer.Buffer) ([]Timeline, error) {
	if version >= 4 {
		uncompressedSize, err := r.ReadI32()
		if err != nil || uncompressedSize < 0 {
			return nil, ferr.New(ferr.Invalid, "flat", "bad timeline list size")
		}
		zr, err := zlib.NewReader(bytes.NewReader(r.Bytes()[r.Index():]))
		if err != nil {
			return nil, ferr.Wrap(ferr.CompressionError, "flat", "timeline list zlib header", err)
		}
		data, err := io.ReadAll(io.LimitReader(zr, int64(uncompressedSize)))
		zr.Close()
		if err != nil {
			return nil, ferr.Wrap(ferr.CompressionError, "flat", "timeline list payload", err)
		}
		r = buffer.NewReader(data)
	}

	n, err := r.ReadI32()
	if err != nil || n < 0 {
		return nil, ferr.New(ferr.Invalid, "flat", "bad timeline count")
	}
	timelines := make([]Timeline, 0, n)
	for i := int32(0); i < n; i++ {
		tl, ok := parseTimeline(version, r)
		if !ok {
			break
		}
		timelines = append(timelines, tl)
	}
	return timelines, nil
}

func (fl *Flat) readMTLC(data []byte) {
	if !fl.MTLC.Present || !fl.Header.Present {
		return
	}
	r := buffer.NewReader(data[fl.MTLC.Off+8 : fl.MTLC.Off+8+fl.MTLC.Size])
	timelines, err := parseTimelines(fl.Header.Version, r)
	if err == nil {
		fl.Timelines = timelines
	}
}

func parseStopMotion(r *buffer.Buffer) (StopMotion, error) {
	var sm StopMotion
	var err error
	if sm.LibraryName, err = readFlatString(r); err != nil {
		return sm, err
	}
	if sm.Span, err = r.ReadI32(); err != nil {
		return sm, err
	}
	if sm.LoopType, err = r.ReadI32(); err != nil {
		return sm, err
	}
	return sm, nil
}

func parseEmitter(r *buffer.Buffer, version int32) (Emitter, error) {
	var em Emitter
	var err error
	read32 := func() (v int32) { if err == nil { v, err = r.ReadI32() }; return }
	readF := func() (v float32) { if err == nil { v, err = r.ReadFloat() }; return }

	em.LibraryName, err = readFlatString(r)
	if version > 0 {
		em.UKInt1 = read32()
	} else {
		em.UKInt1 = 5
	}
	em.CreatePosType = read32()
	em.CreatePosLength = readF()
	em.CreatePosLength2 = readF()
	em.CreateCount = read32()
	em.ParticleLength = read32()
	em.BeginSizeRate = readF()
	if version < 1 {
		em.EndSizeRate = readF()
		em.BeginXSizeRate = readF()
		em.EndXSizeRate = readF()
		em.BeginYSizeRate = readF()
		em.EndYSizeRate = readF()
	} else {
		em.UK1SizeRate = readF()
		em.EndSizeRate = readF()
		em.UK2SizeRate = readF()
		em.BeginXSizeRate = readF()
		em.UK1XSizeRate = readF()
		em.EndXSizeRate = readF()
		em.UK2XSizeRate = readF()
		em.BeginYSizeRate = readF()
		em.UK1YSizeRate = readF()
		em.EndYSizeRate = readF()
		em.UK2YSizeRate = readF()
		if version > 5 {
			em.UKBool1 = read32() != 0
		}
	}
	em.DirectionType = read32()
	em.DirectionX = readF()
	em.DirectionY = readF()
	em.DirectionZ = readF()
	em.DirectionAngle = readF()
	em.IsEmitterConnectType = read32() != 0
	if version > 2 {
		em.UKInt2 = read32()
	}
	if version > 9 {
		em.UKInt3 = read32()
	}
	if version > 1 {
		em.UKInt4 = read32()
		em.UKInt5 = read32()
		em.UKInt6 = read32()
		em.UKInt7 = read32()
		em.UKInt8 = read32()
		em.UKInt9 = read32()
		em.UKInt10 = read32()
		em.UKInt11 = read32()
	}
	em.Speed = readF()
	em.SpeedRate = readF()
	em.MoveLength = readF()
	em.MoveCurve = readF()
	if version > 1 {
		em.UKFloat1 = readF()
	}
	em.IsFall = read32() != 0
	em.Width = readF()
	em.AirResistance = readF()
	if version > 1 {
		em.UKBool2 = read32() != 0
	}
	em.BeginXAngle = readF()
	if version < 1 {
		em.EndXAngle = readF()
		em.BeginYAngle = readF()
		em.EndYAngle = readF()
		em.BeginZAngle = readF()
		em.EndZAngle = readF()
	} else {
		em.UK1XAngle = readF()
		em.EndXAngle = readF()
		em.UK2XAngle = readF()
		em.BeginYAngle = readF()
		em.UK1YAngle = readF()
		em.EndYAngle = readF()
		em.UK2YAngle = readF()
		em.BeginZAngle = readF()
		em.UK1ZAngle = readF()
		em.EndZAngle = readF()
		em.UK2ZAngle = readF()
		if version > 5 {
			em.UKBool3 = read32() != 0
		}
	}
	em.FadeInFrame = read32()
	em.FadeOutFrame = read32()
	em.DrawFilterType = read32()
	em.RandBase = read32()
	em.EndPosType = read32()
	em.EndPosX = readF()
	em.EndPosY = readF()
	em.EndPosZ = readF()
	if err == nil {
		em.EndCGName, err = readFlatString(r)
	}
	return em, err
}

// parseLibrary reads one LIBL entry. When an ELNA section is present,
// the entry's name (and, for stop-motion/emitter payloads, the whole
// entry body) is XOR-masked with 0x55 rather than stored plainly.
func parseLibrary(data []byte, elnaPresent bool, version int32, r *buffer.Buffer) (Library, bool) {
	var lib Library
	var err error

	if elnaPresent {
		size, e := r.ReadI32()
		if e != nil || size < 0 || r.Remaining() < int(size) {
			return lib, false
		}
		raw, e := r.ReadBytes(int(size))
		if e != nil {
			return lib, false
		}
		tmp := make([]byte, len(raw))
		for i, b := range raw {
			tmp[i] = b ^ 0x55
		}
		r.Align(4)
		lib.Name, err = sjis.ToUTF8(tmp)
		if err != nil {
			return lib, false
		}
	} else {
		lib.Name, err = readFlatString(r)
		if err != nil {
			return lib, false
		}
	}

	typ, err := r.ReadI32()
	if err != nil {
		return lib, false
	}
	lib.Type = LibraryType(typ)
	size, err := r.ReadU32()
	if err != nil {
		return lib, false
	}
	lib.Size = size
	if r.Remaining() < int(size) {
		return lib, false
	}

	payload, err := r.ReadBytes(int(size))
	if err != nil {
		return lib, false
	}
	r.Align(4)

	if elnaPresent && (lib.Type == FlatLibStopMotion || lib.Type == FlatLibEmitter) {
		decoded := make([]byte, len(payload))
		for i, b := range payload {
			decoded[i] = b ^ 0x55
		}
		payload = decoded
	}
	pr := buffer.NewReader(payload)

	switch lib.Type {
	case FlatLibCG:
		if version > 0 {
			pr.Skip(4)
		}
		// The reference reports this entry's size as the full LIBL size
		// field even after skipping the leading 4-byte tag (version > 0),
		// which overstates the CG payload by 4 bytes; this reports the
		// actual remaining byte count instead.
		lib.CG = pr.Bytes()[pr.Index():]
	case FlatLibMemory:
		return lib, false
	case FlatLibTimeline:
		timelines, err := parseTimelines(version, pr)
		if err != nil {
			return lib, false
		}
		lib.Timelines = timelines
	case FlatLibStopMotion:
		sm, err := parseStopMotion(pr)
		if err != nil {
			return lib, false
		}
		lib.StopMotion = &sm
	case FlatLibEmitter:
		em, err := parseEmitter(pr, version)
		if err != nil {
			return lib, false
		}
		lib.Emitter = &em
	default:
		return lib, false
	}
	return lib, true
}

func (fl *Flat) readLIBL(data []byte) {
	if !fl.LIBL.Present {
		return
	}
	r := buffer.NewReader(data[fl.LIBL.Off+8 : fl.LIBL.Off+8+fl.LIBL.Size])
	n, err := r.ReadI32()
	if err != nil || n < 0 {
		return
	}
	fl.Libraries = make([]Library, 0, n)
	for i := int32(0); i < n; i++ {
		lib, ok := parseLibrary(data, fl.ELNA.Present, fl.Header.Version, r)
		if !ok {
			break
		}
		fl.Libraries = append(fl.Libraries, lib)
	}
	fl.byName = make(map[string]int, len(fl.Libraries))
	for i, lib := range fl.Libraries {
		fl.byName[lib.Name] = i
	}
}

func (fl *Flat) readTALT(data []byte) {
	if !fl.TALT.Present {
		return
	}
	r := buffer.NewReader(data[fl.TALT.Off+8 : fl.TALT.Off+8+fl.TALT.Size])
	n, err := r.ReadI32()
	if err != nil || n < 0 {
		return
	}
	fl.TaltEntries = make([]TaltEntry, 0, n)
	for i := int32(0); i < n; i++ {
		size, err := r.ReadI32()
		if err != nil || size < 0 {
			break
		}
		e := TaltEntry{Size: uint32(size), Off: fl.TALT.Off + uint32(r.Index()) + 8}
		if err := r.Skip(int(size)); err != nil {
			break
		}
		r.Align(4)

		nrMeta, err := r.ReadI32()
		if err != nil || nrMeta < 0 {
			break
		}
		e.Metadata = make([]TaltMetadata, 0, nrMeta)
		ok := true
		for j := int32(0); j < nrMeta; j++ {
			var m TaltMetadata
			msize, err := r.ReadI32()
			if err != nil || msize < 0 {
				ok = false
				break
			}
			m.Unknown1Size = uint32(msize)
			m.Unknown1Off = fl.TALT.Off + uint32(r.Index()) + 8
			if err := r.Skip(int(msize)); err != nil {
				ok = false
				break
			}
			r.Align(4)
			u2, e2 := r.ReadI32()
			u3, e3 := r.ReadI32()
			u4, e4 := r.ReadI32()
			u5, e5 := r.ReadI32()
			if e2 != nil || e3 != nil || e4 != nil || e5 != nil {
				ok = false
				break
			}
			m.Unknown2, m.Unknown3, m.Unknown4, m.Unknown5 = u2, u3, u4, u5
			e.Metadata = append(e.Metadata, m)
		}
		fl.TaltEntries = append(fl.TaltEntries, e)
		if !ok {
			break
		}
	}
}

func flatFromSource(src *source) (*Flat, error) {
	data := src.data
	r := buffer.NewReader(data)
	fl := &Flat{src: src}

	fl.ELNA, _ = readFlatSection("ELNA", r)
	var ok bool
	if fl.Flat, ok = readFlatSection("FLAT", r); !ok {
		return nil, ferr.New(ferr.Invalid, "flat", "missing FLAT section")
	}
	fl.TMNL, _ = readFlatSection("TMNL", r)
	if fl.MTLC, ok = readFlatSection("MTLC", r); !ok {
		return nil, ferr.New(ferr.Invalid, "flat", "missing MTLC section")
	}
	if fl.LIBL, ok = readFlatSection("LIBL", r); !ok {
		return nil, ferr.New(ferr.Invalid, "flat", "missing LIBL section")
	}
	fl.TALT, _ = readFlatSection("TALT", r)

	var err error
	switch fl.Flat.Size {
	case 32:
		fl.Header, err = readFlatHeaderV1(data, fl.Flat)
	case 64:
		fl.Header, err = readFlatHeaderV2(data, fl.Flat)
	default:
		fl.Header.Type = FlatHdrUnknown
	}
	if err != nil {
		return nil, err
	}

	fl.readMTLC(data)
	fl.readLIBL(data)
	fl.readTALT(data)

	return fl, nil
}

func (fl *Flat) Exists(no int) bool {
	return no >= 0 && no < len(fl.Libraries)
}

func (fl *Flat) libraryData(no int) *Data {
	lib := fl.Libraries[no]
	return &Data{No: no, Name: lib.Name, Size: uint32(len(lib.CG)), Data: lib.CG}
}

func (fl *Flat) Get(no int) (*Data, error) {
	if !fl.Exists(no) {
		return nil, nil
	}
	return fl.libraryData(no), nil
}

func (fl *Flat) ExistsByName(name string) (int, bool) {
	idx, ok := fl.byName[name]
	return idx, ok
}

func (fl *Flat) GetByName(name string) (*Data, error) {
	idx, ok := fl.byName[name]
	if !ok {
		return nil, nil
	}
	return fl.libraryData(idx), nil
}

func (fl *Flat) ExistsByBasename(name string) (int, bool) {
	base := Basename(name)
	for i, lib := range fl.Libraries {
		if Basename(lib.Name) == base {
			return i, true
		}
	}
	return 0, false
}

func (fl *Flat) GetByBasename(name string) (*Data, error) {
	idx, ok := fl.ExistsByBasename(name)
	if !ok {
		return nil, nil
	}
	return fl.libraryData(idx), nil
}

func (fl *Flat) ForEach(fn func(*Data) error) error {
	for i := range fl.Libraries {
		if err := fn(fl.libraryData(i)); err != nil {
			return err
		}
	}
	return nil
}

func (fl *Flat) Close() error { return fl.src.Close() }
