package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mogaika/scenefbx/fbxnode"
	"github.com/mogaika/scenefbx/ids"
	"github.com/mogaika/scenefbx/scene"
)

func newBuilder(opts scene.Options) *Builder {
	return New(ids.New(), opts)
}

func TestAddObjectTracksTypeCountsInFirstSeenOrder(t *testing.T) {
	b := newBuilder(scene.DefaultOptions())

	b.addObject(fbxnode.New("Model"))
	b.addObject(fbxnode.New("Material"))
	b.addObject(fbxnode.New("Model"))

	order, counts := b.ObjectTypeCounts()
	require.Equal(t, []string{"Model", "Material"}, order)
	require.Equal(t, int32(2), counts["Model"])
	require.Equal(t, int32(1), counts["Material"])
}

func TestConnectOOAndOPEmitExpectedShape(t *testing.T) {
	b := newBuilder(scene.DefaultOptions())
	b.ConnectOO(5, 1)
	b.ConnectOP(6, 1, "DiffuseColor")

	require.Len(t, b.Connections.Children, 2)

	oo := b.Connections.Children[0]
	require.Equal(t, "C", oo.Name)
	require.Equal(t, "OO", oo.Properties[0].Str)
	require.Equal(t, int64(5), oo.Properties[1].Int64)
	require.Equal(t, int64(1), oo.Properties[2].Int64)

	op := b.Connections.Children[1]
	require.Equal(t, "OP", op.Properties[0].Str)
	require.Equal(t, "DiffuseColor", op.Properties[3].Str)
}
