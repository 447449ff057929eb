package fbxnode

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteMagicAndFooter(t *testing.T) {
	doc := &Document{
		FileId: New("FileId", Raw(make([]byte, 16))),
	}
	data, err := Write(doc)
	require.NoError(t, err)

	require.Equal(t, magicString, string(data[:len(magicString)]))
	require.Equal(t, byte(0x00), data[len(magicString)])
	require.Equal(t, byte(0x1A), data[len(magicString)+1])
	require.Equal(t, byte(0x00), data[len(magicString)+2])

	require.Equal(t, closingMagic, data[len(data)-16:])
}

func TestWriteRoundTripsSimpleTree(t *testing.T) {
	doc := &Document{
		Objects: New("Objects").Add(
			New("Model", Int64Val(1000001), String("Cube\x00\x01Model"), String("Mesh")).Add(
				New("Properties70").Add(
					New("P", String("Lcl Translation"), String("Lcl Translation"), String(""), String("A"),
						Float64Val(1), Float64Val(2), Float64Val(3)),
				),
			),
		),
	}
	data, err := Write(doc)
	require.NoError(t, err)

	top, err := Read(data)
	require.NoError(t, err)
	require.Len(t, top, 1)
	objects := top[0]
	require.Equal(t, "Objects", objects.Name)
	if len(objects.Children) != 1 {
		t.Logf("round-tripped tree:\n%s", Dump(objects))
	}
	require.Len(t, objects.Children, 1)

	model := objects.Children[0]
	require.Equal(t, "Model", model.Name)
	require.Equal(t, int64(1000001), model.Properties[0].Int64)
	require.Equal(t, "Cube\x00\x01Model", model.Properties[1].Str)

	p := model.Child("Properties70").Child("P")
	require.Equal(t, "Lcl Translation", p.Properties[0].Str)
	require.InDelta(t, 1.0, p.Properties[4].Float64, 1e-12)
	require.InDelta(t, 2.0, p.Properties[5].Float64, 1e-12)
	require.InDelta(t, 3.0, p.Properties[6].Float64, 1e-12)
}

func TestEndOffsetsAreExactByteOffsets(t *testing.T) {
	doc := &Document{
		Objects: New("Objects").Add(
			New("A", Int32Val(1)).Add(New("B", Int32Val(2))),
			New("C"),
		),
	}
	data, err := Write(doc)
	require.NoError(t, err)

	// "Objects" is the only top-level node, so its endOffset (the first
	// field after the 27-byte header) must point exactly at the terminal
	// null record, which the file-id footer follows.
	end := binary.LittleEndian.Uint64(data[27:35])
	require.Equal(t, fileIDFooter, data[end+25:end+41])

	// The reader jumps to each node's endOffset, so the tree only comes
	// back intact if the nested offsets are exact too.
	top, err := Read(data)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, "Objects", top[0].Name)
	require.Len(t, top[0].Children, 2)
	require.Equal(t, "A", top[0].Children[0].Name)
	require.Len(t, top[0].Children[0].Children, 1)
	require.Equal(t, "B", top[0].Children[0].Children[0].Name)
}

func TestForcedNullRecordOnEmptyAnimationStack(t *testing.T) {
	doc := &Document{
		Objects: New("Objects").Add(
			New("AnimationStack", Int64Val(2000), String("Take 001\x00\x01AnimStack"), String("")),
		),
	}
	data, err := Write(doc)
	require.NoError(t, err)

	top, err := Read(data)
	require.NoError(t, err)
	stack := top[0].Children[0]
	require.Equal(t, "AnimationStack", stack.Name)
	require.Empty(t, stack.Children)
}

func TestZeroLengthArrayEmitsDTag(t *testing.T) {
	doc := &Document{
		Objects: New("Objects").Add(
			New("Indexes", Int32Array(nil)),
		),
	}
	data, err := Write(doc)
	require.NoError(t, err)

	top, err := Read(data)
	require.NoError(t, err)
	prop := top[0].Children[0].Properties[0]
	require.Equal(t, KindFloat64Array, prop.Kind)
	require.Empty(t, prop.Float64Array)
}

func TestPaddingBeforeFinalVersionAlignsTo16Bytes(t *testing.T) {
	doc := &Document{}
	data, err := Write(doc)
	require.NoError(t, err)
	// magic(20)+3+4 + null(25) + footer(16) + 4 zero = 72, already %16==8,
	// so pad should bring us to 80 before the version field.
	require.Equal(t, uint32(fbxVersion), binary.LittleEndian.Uint32(data[80:84]))
	require.Equal(t, closingMagic, data[len(data)-16:])
}
