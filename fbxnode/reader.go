package fbxnode

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// reader is the read-direction mirror of buffer, used to re-parse this
// module's own output for the round-trip invariant checks in §8 (no
// importer is available in this environment, so this module verifies the
// structural invariants rather than bit-exact external re-import). Modeled
// on binzume-modelconv/fbx/binary_parser.go, adapted from its 32-bit
// next-offset dialect to FBX 7500's 64-bit offsets.
type reader struct {
	data []byte
	pos  int64
}

func (r *reader) readU8() uint8 {
	v := r.data[r.pos]
	r.pos++
	return v
}

func (r *reader) readU16() uint16 {
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v
}

func (r *reader) readU32() uint32 {
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v
}

func (r *reader) readU64() uint64 {
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v
}

func (r *reader) readBytes(n int) []byte {
	b := r.data[r.pos : r.pos+int64(n)]
	r.pos += int64(n)
	return b
}

func (r *reader) readProperty() (Property, error) {
	tag := r.readU8()
	switch tag {
	case 'C':
		return Bool(r.readU8() != 0), nil
	case 'Y':
		return Int16Val(int16(r.readU16())), nil
	case 'I':
		return Int32Val(int32(r.readU32())), nil
	case 'L':
		return Int64Val(int64(r.readU64())), nil
	case 'F':
		return Float32Val(bitsToF32(r.readU32())), nil
	case 'D':
		return Float64Val(bitsToF64(r.readU64())), nil
	case 'S':
		n := r.readU32()
		return String(string(r.readBytes(int(n)))), nil
	case 'R':
		n := r.readU32()
		return Raw(append([]byte(nil), r.readBytes(int(n))...)), nil
	case 'b', 'i', 'l', 'f', 'd':
		count := r.readU32()
		encoding := r.readU32()
		byteLen := r.readU32()
		if encoding != 0 {
			return Property{}, errors.Errorf("fbxnode: compressed arrays not supported by reader (tag %c)", tag)
		}
		if count == 0 {
			return zeroArrayOfTag(tag), nil
		}
		switch tag {
		case 'b':
			out := make([]bool, count)
			for i := range out {
				out[i] = r.readU8() != 0
			}
			return BoolArray(out), nil
		case 'i':
			out := make([]int32, count)
			for i := range out {
				out[i] = int32(r.readU32())
			}
			return Int32Array(out), nil
		case 'l':
			out := make([]int64, count)
			for i := range out {
				out[i] = int64(r.readU64())
			}
			return Int64Array(out), nil
		case 'f':
			out := make([]float32, count)
			for i := range out {
				out[i] = bitsToF32(r.readU32())
			}
			return Float32Array(out), nil
		case 'd':
			out := make([]float64, count)
			for i := range out {
				out[i] = bitsToF64(r.readU64())
			}
			_ = byteLen
			return Float64Array(out), nil
		}
	}
	return Property{}, errors.Errorf("fbxnode: unknown property tag %q", tag)
}

func zeroArrayOfTag(tag byte) Property {
	switch tag {
	case 'b':
		return BoolArray(nil)
	case 'i':
		return Int32Array(nil)
	case 'l':
		return Int64Array(nil)
	case 'f':
		return Float32Array(nil)
	default:
		return Float64Array(nil)
	}
}

// readNode reads one node frame. ok is false when the frame was a null
// record sentinel rather than a real node.
func (r *reader) readNode() (n *Node, ok bool, err error) {
	endOffset := r.readU64()
	if endOffset == 0 {
		r.readU64()
		r.readU64()
		r.readU8()
		return nil, false, nil
	}
	numProps := r.readU64()
	_ = r.readU64() // propertyListLen, not needed for reconstruction
	nameLen := r.readU8()
	node := &Node{Name: string(r.readBytes(int(nameLen)))}

	for i := uint64(0); i < numProps; i++ {
		p, err := r.readProperty()
		if err != nil {
			return nil, false, err
		}
		node.Properties = append(node.Properties, p)
	}

	for uint64(r.pos) < endOffset {
		child, ok, err := r.readNode()
		if err != nil {
			return nil, false, err
		}
		if ok {
			node.Children = append(node.Children, child)
		}
	}
	r.pos = int64(endOffset)
	return node, true, nil
}

// Read re-parses a buffer produced by Write back into its top-level node
// list, for use by this module's own invariant tests.
func Read(data []byte) ([]*Node, error) {
	if len(data) < 27 || string(data[:len(magicString)]) != magicString {
		return nil, errors.New("fbxnode: not an FBX binary stream")
	}
	r := &reader{data: data, pos: int64(len(magicString)) + 7}
	var nodes []*Node
	for {
		node, ok, err := r.readNode()
		if err != nil {
			return nil, errors.Wrap(err, "fbxnode: read")
		}
		if !ok {
			break
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
