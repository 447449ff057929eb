package scenefbx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/scenefbx/fbxnode"
	"github.com/mogaika/scenefbx/scenetest"
)

func simpleScene() *scenetest.Node {
	root := scenetest.NewNode("Root")

	bone0 := scenetest.NewNode("Bone0")
	bone1 := scenetest.NewNode("Bone1")
	bone1.World = mgl32.Translate3D(0, 1, 0)
	bone0.AddChild(bone1)
	root.AddChild(bone0)

	mesh := scenetest.NewNode("Body")
	mesh.NodeKind = KindMesh
	mesh.MeshVal = &scenetest.Mesh{
		Geom: Geometry{
			Positions:   []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			SkinIndices: [][4]int{{0, 0, 0, 0}, {1, 0, 0, 0}, {0, 1, 0, 0}},
			SkinWeights: [][4]float32{{1, 0, 0, 0}, {1, 0, 0, 0}, {0.5, 0.5, 0, 0}},
		},
		Skel:      &scenetest.Skeleton{BoneList: []*scenetest.Node{bone0, bone1}},
		BindWorld: mgl32.Ident4(),
		Mats:      []Material{&scenetest.Material{MatName: "Skin", Diffuse: mgl32.Vec3{1, 1, 1}, Op: 1}},
	}
	root.AddChild(mesh)

	return root
}

func TestParseProducesReadableBinary(t *testing.T) {
	opts := DefaultOptions()
	data, err := Parse(simpleScene(), opts)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	nodes, err := fbxnode.Read(data)
	require.NoError(t, err)
	require.NotEmpty(t, nodes)
}

func TestParseConnectionsReferenceOnlyExistingObjects(t *testing.T) {
	data, err := Parse(simpleScene(), DefaultOptions())
	require.NoError(t, err)

	nodes, err := fbxnode.Read(data)
	require.NoError(t, err)

	var objects, connections *fbxnode.Node
	for _, n := range nodes {
		switch n.Name {
		case "Objects":
			objects = n
		case "Connections":
			connections = n
		}
	}
	require.NotNil(t, objects)
	require.NotNil(t, connections)

	known := map[int64]bool{0: true}
	for _, o := range objects.Children {
		if len(o.Properties) > 0 {
			known[o.Properties[0].Int64] = true
		}
	}

	for _, c := range connections.Children {
		require.Equal(t, "C", c.Name)
		childID := c.Properties[1].Int64
		parentID := c.Properties[2].Int64
		require.True(t, known[childID], "connection references unknown child id %d", childID)
		require.True(t, known[parentID], "connection references unknown parent id %d", parentID)
	}
}

func TestParsePolygonVertexIndexClosesEveryTriangle(t *testing.T) {
	data, err := Parse(simpleScene(), DefaultOptions())
	require.NoError(t, err)

	nodes, err := fbxnode.Read(data)
	require.NoError(t, err)

	var objects *fbxnode.Node
	for _, n := range nodes {
		if n.Name == "Objects" {
			objects = n
		}
	}
	require.NotNil(t, objects)

	var geometry *fbxnode.Node
	for _, o := range objects.Children {
		if o.Name == "Geometry" {
			geometry = o
		}
	}
	require.NotNil(t, geometry)

	pvi := geometry.Child("PolygonVertexIndex")
	require.NotNil(t, pvi)
	indices := pvi.Properties[0].Int32Array
	require.Len(t, indices, 3)
	require.Less(t, indices[2], int32(0))
}

func TestParseSkipsMaterialsWhenDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.ExportMaterials = false
	data, err := Parse(simpleScene(), opts)
	require.NoError(t, err)

	nodes, err := fbxnode.Read(data)
	require.NoError(t, err)

	for _, n := range nodes {
		if n.Name != "Objects" {
			continue
		}
		for _, o := range n.Children {
			require.NotEqual(t, "Material", o.Name)
		}
	}
}
