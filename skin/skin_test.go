package skin

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/scenefbx/build"
	"github.com/mogaika/scenefbx/fbxnode"
	"github.com/mogaika/scenefbx/ids"
	"github.com/mogaika/scenefbx/scene"
	"github.com/mogaika/scenefbx/scenetest"
)

func riggedMesh() (*scenetest.Node, *scenetest.Node) {
	bone := scenetest.NewNode("Bone0")
	bone.World = mgl32.Translate3D(0, 1, 0)

	mesh := scenetest.NewNode("Mesh0")
	mesh.NodeKind = scene.KindMesh
	mesh.MeshVal = &scenetest.Mesh{
		Geom: scene.Geometry{
			Positions:   []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}},
			SkinIndices: [][4]int{{0, 0, 0, 0}, {0, 0, 0, 0}},
			SkinWeights: [][4]float32{{1, 0, 0, 0}, {0.5, 0, 0, 0}},
		},
		Skel:      &scenetest.Skeleton{BoneList: []*scenetest.Node{bone}},
		BindWorld: mgl32.Ident4(),
	}
	return mesh, bone
}

func TestBuildReturnsBoneNamesInSkeletonOrder(t *testing.T) {
	mesh, _ := riggedMesh()
	b := build.New(ids.New(), scene.DefaultOptions())

	names := Build(b, mesh)
	require.Equal(t, []string{"Bone0"}, names)
}

func TestBuildClusterParallelArraysMatchWeightedVertices(t *testing.T) {
	mesh, _ := riggedMesh()
	b := build.New(ids.New(), scene.DefaultOptions())
	Build(b, mesh)

	cluster := findCluster(b.Objects)
	require.NotNil(t, cluster)
	indexes := cluster.Child("Indexes").Properties[0].Int32Array
	weights := cluster.Child("Weights").Properties[0].Float64Array
	require.Equal(t, []int32{0, 1}, indexes)
	require.Equal(t, []float64{1, 0.5}, weights)
}

func TestBuildFallsBackToBoneWorldMatrixWithoutBindInverse(t *testing.T) {
	mesh, bone := riggedMesh()
	opts := scene.DefaultOptions()
	opts.Scale = 1
	b := build.New(ids.New(), opts)
	Build(b, mesh)

	cluster := findCluster(b.Objects)
	transformLink := cluster.Child("TransformLink").Properties[0].Float64Array
	require.InDelta(t, float64(bone.World[13]), transformLink[13], 1e-4)
}

func TestBuildUsesBindInverseWhenPresent(t *testing.T) {
	mesh, _ := riggedMesh()
	mesh.MeshVal.Skel.Inverses = map[int]mgl32.Mat4{0: mgl32.Translate3D(0, -1, 0)}
	opts := scene.DefaultOptions()
	opts.Scale = 1
	b := build.New(ids.New(), opts)
	Build(b, mesh)

	cluster := findCluster(b.Objects)
	transformLink := cluster.Child("TransformLink").Properties[0].Float64Array
	// meshBind(identity) * inv(inv) == meshBind * (translate 0,1,0)
	require.InDelta(t, 1.0, transformLink[13], 1e-4)
}

func TestBuildScalesBindInverseTransformLinkExactlyOnce(t *testing.T) {
	bone := scenetest.NewNode("Bone0")
	bone.World = mgl32.Translate3D(0, 1, 0)

	mesh := scenetest.NewNode("Mesh0")
	mesh.NodeKind = scene.KindMesh
	mesh.MeshVal = &scenetest.Mesh{
		Geom: scene.Geometry{
			Positions:   []mgl32.Vec3{{0, 0, 0}},
			SkinIndices: [][4]int{{0, 0, 0, 0}},
			SkinWeights: [][4]float32{{1, 0, 0, 0}},
		},
		Skel:      &scenetest.Skeleton{BoneList: []*scenetest.Node{bone}, Inverses: map[int]mgl32.Mat4{0: mgl32.Ident4()}},
		BindWorld: mgl32.Translate3D(0, 2, 0),
	}

	opts := scene.DefaultOptions() // default Scale is 100
	b := build.New(ids.New(), opts)
	Build(b, mesh)

	cluster := findCluster(b.Objects)
	transformLink := cluster.Child("TransformLink").Properties[0].Float64Array
	// meshBind's unscaled translation (0,2,0) times inv(identity) must be
	// scaled by opts.Scale exactly once, not squared.
	require.InDelta(t, float64(2*opts.Scale), transformLink[13], 1e-2)
}

func TestBuildBindPoseCountsArmatureMeshAndBones(t *testing.T) {
	mesh, _ := riggedMesh()
	b := build.New(ids.New(), scene.DefaultOptions())
	b.HasArmatureModel = true
	b.ArmatureModelID = 1
	b.ArmatureWorld = mgl32.Ident4()

	Build(b, mesh)

	pose := findPose(b.Objects)
	require.NotNil(t, pose)
	nbPoseNodes := pose.Child("NbPoseNodes").Properties[0].Int32
	require.Equal(t, int32(3), nbPoseNodes) // armature + mesh + 1 bone

	var poseNodeCount int
	for _, c := range pose.Children {
		if c.Name == "PoseNode" {
			poseNodeCount++
		}
	}
	require.Equal(t, 3, poseNodeCount)
}

func TestBuildBindPoseWithoutArmature(t *testing.T) {
	mesh, _ := riggedMesh()
	b := build.New(ids.New(), scene.DefaultOptions())

	Build(b, mesh)

	pose := findPose(b.Objects)
	nbPoseNodes := pose.Child("NbPoseNodes").Properties[0].Int32
	require.Equal(t, int32(2), nbPoseNodes) // mesh + 1 bone, no armature
}

func findCluster(objects *fbxnode.Node) *fbxnode.Node {
	for _, c := range objects.Children {
		if c.Name == "Deformer" && len(c.Properties) > 2 && c.Properties[2].Str == "Cluster" {
			return c
		}
	}
	return nil
}

func findPose(objects *fbxnode.Node) *fbxnode.Node {
	for _, c := range objects.Children {
		if c.Name == "Pose" {
			return c
		}
	}
	return nil
}
