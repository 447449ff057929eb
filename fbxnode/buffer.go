package fbxnode

import "encoding/binary"

// buffer is a growable little-endian byte sink with reserve/patch support
// for the node framing's back-patched length fields (FBX_FULL §9: "keep
// written positions in local variables rather than threading them through
// return values").
type buffer struct {
	data []byte
}

func newBuffer(capacityHint int) *buffer {
	return &buffer{data: make([]byte, 0, capacityHint)}
}

func (b *buffer) offset() int64 { return int64(len(b.data)) }

func (b *buffer) writeBytes(p []byte) { b.data = append(b.data, p...) }

func (b *buffer) writeZeros(n int) {
	for i := 0; i < n; i++ {
		b.data = append(b.data, 0)
	}
}

func (b *buffer) writeU8(v uint8) { b.data = append(b.data, v) }

func (b *buffer) writeU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

func (b *buffer) writeU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

func (b *buffer) writeU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

func (b *buffer) writeI32(v int32) { b.writeU32(uint32(v)) }
func (b *buffer) writeI64(v int64) { b.writeU64(uint64(v)) }

func (b *buffer) writeF32(v float32) { b.writeU32(f32bits(v)) }
func (b *buffer) writeF64(v float64) { b.writeU64(f64bits(v)) }

// reserveU64 writes an 8-byte placeholder and returns its offset for a
// later patchU64 call.
func (b *buffer) reserveU64() int64 {
	off := b.offset()
	b.writeU64(0)
	return off
}

func (b *buffer) patchU64(offset int64, v uint64) {
	binary.LittleEndian.PutUint64(b.data[offset:offset+8], v)
}
