// Package skin implements the skinning subsystem (FBX_FULL §4.4): per
// skinned mesh, one Skin deformer, one Cluster per bone, and the BindPose
// snapshot the skin deformer's clusters rely on for round-tripping.
package skin

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/scenefbx/scene"
	"github.com/mogaika/scenefbx/build"
	"github.com/mogaika/scenefbx/fbxnode"
)

// Build emits the Skin deformer, its Clusters, and connects everything for
// one skinned mesh. It returns the list of bone names in skeleton index
// order, for BuildGeometry's VertexGroups node.
func Build(b *build.Builder, n scene.Node) []string {
	mesh := n.Mesh()
	skel := mesh.Skeleton()
	geom := mesh.Geometry()

	scale := b.Scale()
	meshBindUnscaled := mesh.BindMatrix()
	meshBind := scene.ScaleTranslationColumn(meshBindUnscaled, scale)

	skinID := b.Reg.SkinID(mesh)
	skinNode := fbxnode.New("Deformer",
		fbxnode.Int64Val(skinID),
		fbxnode.String(scene.NameWithClass("", "Deformer")),
		fbxnode.String("Skin")).Add(
		fbxnode.New("Version", fbxnode.Int32Val(101)),
		fbxnode.New("Link_DeformAcuracy", fbxnode.Float64Val(50)),
	)
	b.AddObject(skinNode)
	b.ConnectOO(skinID, b.Reg.GeometryID(mesh))

	bones := skel.Bones()
	boneNames := make([]string, len(bones))
	for i, bone := range bones {
		boneNames[i] = bone.Name()
	}

	for boneIndex, bone := range bones {
		clusterID := b.Reg.ClusterID(mesh, boneIndex)

		var indexes []int32
		var weights []float64
		for v := range geom.SkinIndices {
			for slot := 0; slot < 4; slot++ {
				if geom.SkinIndices[v][slot] == boneIndex && geom.SkinWeights[v][slot] > 0 {
					indexes = append(indexes, int32(v))
					weights = append(weights, float64(geom.SkinWeights[v][slot]))
				}
			}
		}

		boneBind := bone.WorldMatrix()
		var transformLink mgl32.Mat4
		if inv, ok := skel.BoneInverse(boneIndex); ok {
			transformLink = meshBindUnscaled.Mul4(inv.Inv())
		} else {
			transformLink = boneBind
		}
		transformLink = scene.ScaleTranslationColumn(transformLink, scale)

		cluster := fbxnode.New("Deformer",
			fbxnode.Int64Val(clusterID),
			fbxnode.String(scene.NameWithClass(scene.NormalizeMixamoName(bone.Name()), "SubDeformer")),
			fbxnode.String("Cluster")).Add(
			fbxnode.New("Version", fbxnode.Int32Val(100)),
			fbxnode.New("UserData", fbxnode.String(""), fbxnode.String("")),
			fbxnode.New("Indexes", fbxnode.Int32Array(indexes)),
			fbxnode.New("Weights", fbxnode.Float64Array(weights)),
			fbxnode.New("Transform", fbxnode.Float64Array(mat4ToFloat64s(meshBind))),
			fbxnode.New("TransformLink", fbxnode.Float64Array(mat4ToFloat64s(transformLink))),
		)
		b.AddObject(cluster)

		boneModelID := b.Reg.ModelID(bone)
		b.ConnectOO(clusterID, skinID)
		b.ConnectOO(boneModelID, clusterID)
		b.Reg.RecordClusterBone(clusterID, boneModelID)
		b.Reg.RecordClusterSkin(clusterID, skinID)
	}

	BuildBindPose(b, n, mesh, skel, bones, meshBind, scale)

	return boneNames
}

// BuildBindPose emits the single BindPose node covering the armature (if
// present), the mesh, and every bone (FBX_FULL §4.4 step 4).
func BuildBindPose(b *build.Builder, n scene.Node, mesh scene.Mesh, skel scene.Skeleton, bones []scene.Node, meshBind mgl32.Mat4, scale float32) {
	poseNodeCount := 1 + len(bones) // mesh + bones
	if b.HasArmatureModel {
		poseNodeCount++
	}

	poseID := b.Reg.BindPoseID(mesh)
	pose := fbxnode.New("Pose",
		fbxnode.Int64Val(poseID),
		fbxnode.String(scene.NameWithClass("", "Pose")),
		fbxnode.String("BindPose")).Add(
		fbxnode.New("Type", fbxnode.String("BindPose")),
		fbxnode.New("Version", fbxnode.Int32Val(100)),
		fbxnode.New("NbPoseNodes", fbxnode.Int32Val(int32(poseNodeCount))),
	)

	if b.HasArmatureModel {
		armatureWorld := scene.ScaleTranslationColumn(b.ArmatureWorld, scale)
		pose.Add(poseNode(b.ArmatureModelID, armatureWorld))
	}

	pose.Add(poseNode(b.Reg.ModelID(n), meshBind))

	for _, bone := range bones {
		boneWorld := scene.ScaleTranslationColumn(bone.WorldMatrix(), scale)
		pose.Add(poseNode(b.Reg.ModelID(bone), boneWorld))
	}

	b.AddObject(pose)
}

func poseNode(modelID int64, m mgl32.Mat4) *fbxnode.Node {
	return fbxnode.New("PoseNode").Add(
		fbxnode.New("Node", fbxnode.Int64Val(modelID)),
		fbxnode.New("Matrix", fbxnode.Float64Array(mat4ToFloat64s(m))),
	)
}

func mat4ToFloat64s(m mgl32.Mat4) []float64 {
	out := make([]float64, 16)
	for i := 0; i < 16; i++ {
		out[i] = float64(m[i])
	}
	return out
}
