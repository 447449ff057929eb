package collect

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/scenefbx/scene"
	"github.com/mogaika/scenefbx/scenetest"
)

func TestCollectDiscardsHelperNamedMeshes(t *testing.T) {
	root := scenetest.NewNode("Root")
	helper := scenetest.NewNode("widget_01")
	helper.NodeKind = scene.KindMesh
	helper.MeshVal = &scenetest.Mesh{}
	root.AddChild(helper)

	c := Collect(root, scene.DefaultOptions())
	require.Len(t, c.Objects, 1)
	require.Equal(t, "Root", c.Objects[0].Name())
}

func TestCollectHonorsExportOptOut(t *testing.T) {
	root := scenetest.NewNode("Root")
	child := scenetest.NewNode("Hidden")
	child.UD["export"] = false
	root.AddChild(child)

	c := Collect(root, scene.DefaultOptions())
	require.Len(t, c.Objects, 1)
	require.Equal(t, "Root", c.Objects[0].Name())
}

func TestCollectSkipsSkeletonHelpers(t *testing.T) {
	root := scenetest.NewNode("Root")
	helper := scenetest.NewNode("BoneVis")
	helper.UD["skeletonHelper"] = true
	root.AddChild(helper)

	c := Collect(root, scene.DefaultOptions())
	require.Len(t, c.Objects, 1)
}

func TestCollectStillWalksIntoDiscardedChildren(t *testing.T) {
	root := scenetest.NewNode("Root")
	discarded := scenetest.NewNode("widget_01")
	discarded.NodeKind = scene.KindMesh
	discarded.MeshVal = &scenetest.Mesh{}
	kept := scenetest.NewNode("Grandchild")
	discarded.AddChild(kept)
	root.AddChild(discarded)

	c := Collect(root, scene.DefaultOptions())
	require.Contains(t, namesOf(c.Objects), "Grandchild")
	require.NotContains(t, namesOf(c.Objects), "widget_01")
}

func TestCollectFindsSkinnedMeshAndUnionsBones(t *testing.T) {
	root := scenetest.NewNode("Root")

	bone0 := scenetest.NewNode("Bone0")
	bone1 := scenetest.NewNode("Bone1")
	bone0.AddChild(bone1)
	root.AddChild(bone0)

	mesh := scenetest.NewNode("SkinnedMesh")
	mesh.NodeKind = scene.KindMesh
	mesh.MeshVal = &scenetest.Mesh{
		Geom: scene.Geometry{
			Positions:   []mgl32.Vec3{{0, 0, 0}},
			SkinIndices: [][4]int{{0, 1, 0, 0}},
			SkinWeights: [][4]float32{{0.5, 0.5, 0, 0}},
		},
		Skel: &scenetest.Skeleton{BoneList: []*scenetest.Node{bone0, bone1}},
	}
	root.AddChild(mesh)

	opts := scene.DefaultOptions()
	opts.ExportSkin = true

	c := Collect(root, opts)
	if len(c.SkinnedMeshes) != 1 {
		t.Logf("collected tree:\n%s", spew.Sdump(c))
	}
	require.Len(t, c.SkinnedMeshes, 1)
	require.Equal(t, "SkinnedMesh", c.SkinnedMeshes[0].Name())

	names := namesOf(c.Objects)
	require.Contains(t, names, "Bone0")
	require.Contains(t, names, "Bone1")
	require.Contains(t, names, "SkinnedMesh")
}

func TestCollectTreatsEmptyGeometryMeshAsNonSkinned(t *testing.T) {
	root := scenetest.NewNode("Root")
	mesh := scenetest.NewNode("widget_02")
	mesh.NodeKind = scene.KindMesh
	mesh.MeshVal = &scenetest.Mesh{
		Skel: &scenetest.Skeleton{},
	}
	root.AddChild(mesh)

	opts := scene.DefaultOptions()
	opts.ExportSkin = true

	c := Collect(root, opts)
	require.Empty(t, c.SkinnedMeshes)
	require.Empty(t, c.Objects)
}

func TestFindArmatureRootReturnsNonBoneParent(t *testing.T) {
	root := scenetest.NewNode("Root")
	armature := scenetest.NewNode("Armature")
	bone0 := scenetest.NewNode("Bone0")
	armature.AddChild(bone0)
	root.AddChild(armature)

	mesh := scenetest.NewNode("SkinnedMesh")
	mesh.NodeKind = scene.KindMesh
	mesh.MeshVal = &scenetest.Mesh{
		Geom: scene.Geometry{
			Positions: []mgl32.Vec3{{0, 0, 0}},
		},
		Skel: &scenetest.Skeleton{BoneList: []*scenetest.Node{bone0}},
	}
	root.AddChild(mesh)

	opts := scene.DefaultOptions()
	opts.ExportSkin = true
	c := Collect(root, opts)

	got := FindArmatureRoot(c)
	require.NotNil(t, got)
	require.Equal(t, "Armature", got.Name())
}

func TestFindArmatureRootNilWithoutSkinnedMeshes(t *testing.T) {
	c := &Collected{}
	require.Nil(t, FindArmatureRoot(c))
}

func TestCollectIgnoresTextureReadErrorsNotItsOwnConcern(t *testing.T) {
	// Collect doesn't touch textures at all; this just documents that a
	// Texture's PNG error doesn't influence whether its owning mesh is
	// collected (texture failures are handled downstream in build).
	root := scenetest.NewNode("Root")
	mesh := scenetest.NewNode("TexturedMesh")
	mesh.NodeKind = scene.KindMesh
	mat := &scenetest.Material{
		MatName: "mat",
		Tex:     &scenetest.Texture{TexName: "tex", ReadErr: errors.New("unreadable")},
	}
	mesh.MeshVal = &scenetest.Mesh{
		Geom: scene.Geometry{Positions: []mgl32.Vec3{{0, 0, 0}}},
		Mats: []scene.Material{mat},
	}
	root.AddChild(mesh)

	c := Collect(root, scene.DefaultOptions())
	require.Len(t, c.Objects, 1)
}

func namesOf(nodes []scene.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}
