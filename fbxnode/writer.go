package fbxnode

import "github.com/pkg/errors"

// Document is the implicit-root ordered list of top-level nodes the binary
// writer emits back to back (FBX_FULL §4.1 point 3). Field order is the
// fixed order the spec requires; zero-value (nil) optional nodes are simply
// not written.
type Document struct {
	FileId             *Node
	CreationTime       *Node
	Creator            *Node
	FBXHeaderExtension *Node
	GlobalSettings     *Node
	Documents          *Node
	References         *Node
	Definitions        *Node
	Objects            *Node
	Connections        *Node
}

func (d *Document) topLevel() []*Node {
	ordered := []*Node{
		d.FileId, d.CreationTime, d.Creator,
		d.FBXHeaderExtension, d.GlobalSettings, d.Documents,
		d.References, d.Definitions, d.Objects, d.Connections,
	}
	out := make([]*Node, 0, len(ordered))
	for _, n := range ordered {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

const (
	fbxVersion  = 7500
	magicString = "Kaydara FBX Binary  "
)

// fileIDFooter is the fixed 16-byte constant written after the terminal
// null record (FBX_FULL §4.1 point 5).
var fileIDFooter = []byte{
	0xFA, 0xBC, 0xAB, 0x09, 0xD0, 0xC8, 0xD4, 0x66,
	0xB1, 0x76, 0xFB, 0x83, 0x1C, 0xF7, 0x26, 0x7E,
}

// closingMagic is the fixed 16-byte constant that terminates every FBX
// 7500 binary file (FBX_FULL §4.1 point 10).
var closingMagic = []byte{
	0xF8, 0x5A, 0x8C, 0x6A, 0xDE, 0xF5, 0xD9, 0x7E,
	0xEC, 0xE9, 0x0C, 0xE3, 0x75, 0x8F, 0x29, 0x0B,
}

// forcedNullRecord names nodes that always get a null-record sentinel after
// their children, even when (degenerate case) they have none.
var forcedNullRecord = map[string]bool{
	"AnimationStack": true,
	"AnimationLayer": true,
}

// Write serializes doc into a contiguous FBX 7500 binary byte stream.
func Write(doc *Document) ([]byte, error) {
	w := newBuffer(64 * 1024)

	if len(magicString) != 20 {
		return nil, errors.Errorf("internal error: magic string length is %d, want 20", len(magicString))
	}
	w.writeBytes([]byte(magicString))
	w.writeU8(0x00)
	w.writeU8(0x1A)
	w.writeU8(0x00)
	w.writeU32(fbxVersion)

	for _, n := range doc.topLevel() {
		writeNode(w, n)
	}

	// terminal null record: three 8-byte zeros plus one zero byte.
	writeNullRecord(w)

	w.writeBytes(fileIDFooter)
	w.writeZeros(4)

	pad := 16 - (w.offset() % 16)
	if pad == 0 {
		pad = 16
	}
	w.writeZeros(int(pad))

	w.writeU32(fbxVersion)
	w.writeZeros(120)
	w.writeBytes(closingMagic)

	return w.data, nil
}

func writeNullRecord(w *buffer) {
	w.writeU64(0)
	w.writeU64(0)
	w.writeU64(0)
	w.writeU8(0)
}

func writeNode(w *buffer, n *Node) {
	endOffsetPos := w.reserveU64()
	w.writeU64(uint64(len(n.Properties)))
	propListLenPos := w.reserveU64()

	if len(n.Name) > 255 {
		panic(errors.Errorf("fbxnode: node name %q exceeds 255 bytes", n.Name))
	}
	w.writeU8(uint8(len(n.Name)))
	w.writeBytes([]byte(n.Name))

	propStart := w.offset()
	for _, p := range n.Properties {
		writeProperty(w, p)
	}
	w.patchU64(propListLenPos, uint64(w.offset()-propStart))

	for _, c := range n.Children {
		writeNode(w, c)
	}

	if len(n.Children) > 0 || forcedNullRecord[n.Name] {
		writeNullRecord(w)
	}

	w.patchU64(endOffsetPos, uint64(w.offset()))
}

func writeProperty(w *buffer, p Property) {
	switch p.Kind {
	case KindBool:
		w.writeU8('C')
		if p.Bool {
			w.writeU8(1)
		} else {
			w.writeU8(0)
		}
	case KindInt16:
		w.writeU8('Y')
		w.writeU16(uint16(p.Int16))
	case KindInt32:
		w.writeU8('I')
		w.writeI32(p.Int32)
	case KindInt64:
		w.writeU8('L')
		w.writeI64(p.Int64)
	case KindFloat32:
		w.writeU8('F')
		w.writeF32(p.Float32)
	case KindFloat64:
		w.writeU8('D')
		w.writeF64(p.Float64)
	case KindString:
		w.writeU8('S')
		w.writeU32(uint32(len(p.Str)))
		w.writeBytes([]byte(p.Str))
	case KindRaw:
		w.writeU8('R')
		w.writeU32(uint32(len(p.Raw)))
		w.writeBytes(p.Raw)
	case KindBoolArray:
		writeArrayHeader(w, 'b', len(p.BoolArray), len(p.BoolArray))
		for _, v := range p.BoolArray {
			if v {
				w.writeU8(1)
			} else {
				w.writeU8(0)
			}
		}
	case KindInt32Array:
		writeArrayHeader(w, 'i', len(p.Int32Array), len(p.Int32Array)*4)
		for _, v := range p.Int32Array {
			w.writeI32(v)
		}
	case KindInt64Array:
		writeArrayHeader(w, 'l', len(p.Int64Array), len(p.Int64Array)*8)
		for _, v := range p.Int64Array {
			w.writeI64(v)
		}
	case KindFloat32Array:
		writeArrayHeader(w, 'f', len(p.Float32Array), len(p.Float32Array)*4)
		for _, v := range p.Float32Array {
			w.writeF32(v)
		}
	case KindFloat64Array:
		writeArrayHeader(w, 'd', len(p.Float64Array), len(p.Float64Array)*8)
		for _, v := range p.Float64Array {
			w.writeF64(v)
		}
	default:
		panic(errors.Errorf("fbxnode: unknown property kind %d", p.Kind))
	}
}

// writeArrayHeader emits the tag/count/encoding/size prefix for a typed
// array property. Per §4.1, a zero-length array always collapses to the
// 'd' tag with three zero 32-bit words and no payload, regardless of the
// element kind the caller asked for.
func writeArrayHeader(w *buffer, tag byte, count, byteLen int) {
	if count == 0 {
		w.writeU8('d')
		w.writeU32(0)
		w.writeU32(0)
		w.writeU32(0)
		return
	}
	w.writeU8(tag)
	w.writeU32(uint32(count))
	w.writeU32(0) // encoding: always uncompressed
	w.writeU32(uint32(byteLen))
}
