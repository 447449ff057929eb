package build

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/scenefbx/scene"
	"github.com/mogaika/scenefbx/fbxnode"
)

// rotationOrderNames mirrors FBX_FULL §4.3's RotationOrder mapping.
var rotationOrderNames = map[scene.RotationOrder]int32{
	scene.RotationXYZ: 0,
	scene.RotationXZY: 1,
	scene.RotationYXZ: 2,
	scene.RotationYZX: 3,
	scene.RotationZXY: 4,
	scene.RotationZYX: 5,
}

// BuildModels emits a Model (+ sibling NodeAttribute, for bones) for every
// object the collector kept, plus the synthetic Armature root when one is
// present, following pack/wad/obj/export_fbx.go's model-hierarchy walk.
// boneSet marks which objects are bones (typically every object referenced
// by a skeleton); armatureRoot, if non-nil, is the object FindArmatureRoot
// picked out.
func (b *Builder) BuildModels(objects []scene.Node, boneSet map[scene.Node]bool, armatureRoot scene.Node) {
	if armatureRoot != nil {
		b.buildArmatureModel(armatureRoot)
	}

	for _, n := range objects {
		b.buildModelNode(n, boneSet[n], armatureRoot)
	}
}

func (b *Builder) buildArmatureModel(root scene.Node) {
	id := b.Reg.Alloc()
	b.ArmatureModelID = id
	b.HasArmatureModel = true
	b.ArmatureWorld = root.WorldMatrix()

	model := fbxnode.New("Model",
		fbxnode.Int64Val(id),
		fbxnode.String(scene.NameWithClass("Armature", "Model")),
		fbxnode.String("Null")).Add(
		fbxnode.New("Version", fbxnode.Int32Val(232)),
		properties70(b.transformProperties(root, false)...),
		fbxnode.New("Shading", fbxnode.Bool(true)),
		fbxnode.New("Culling", fbxnode.String("CullingOff")),
	)
	b.addObject(model)

	attrID := b.Reg.Alloc()
	attr := fbxnode.New("NodeAttribute",
		fbxnode.Int64Val(attrID),
		fbxnode.String(scene.NameWithClass("", "NodeAttribute")),
		fbxnode.String("Null")).Add(
		fbxnode.New("TypeFlags", fbxnode.String("Null")),
	)
	b.addObject(attr)

	b.ConnectOO(attrID, id)
	b.ConnectOO(id, 0)
}

func (b *Builder) buildModelNode(n scene.Node, isBone bool, armatureRoot scene.Node) {
	id := b.Reg.ModelID(n)

	kind := "Null"
	switch {
	case isBone:
		kind = "LimbNode"
	case n.Kind() == scene.KindMesh:
		kind = "Mesh"
	}

	model := fbxnode.New("Model",
		fbxnode.Int64Val(id),
		fbxnode.String(scene.NameWithClass(n.Name(), "Model")),
		fbxnode.String(kind)).Add(
		fbxnode.New("Version", fbxnode.Int32Val(232)),
		properties70(b.transformProperties(n, isBone)...),
		fbxnode.New("Shading", fbxnode.Bool(true)),
		fbxnode.New("Culling", fbxnode.String("CullingOff")),
	)
	b.addObject(model)

	if isBone {
		attrID := b.Reg.NodeAttributeID(n)
		attr := fbxnode.New("NodeAttribute",
			fbxnode.Int64Val(attrID),
			fbxnode.String(scene.NameWithClass("", "NodeAttribute")),
			fbxnode.String("LimbNode")).Add(
			fbxnode.New("TypeFlags", fbxnode.String("Skeleton")),
		)
		b.addObject(attr)
		b.ConnectOO(attrID, id)
	}

	parent := n.Parent()
	switch {
	case isBone && parent == nil, isBone && parent != nil && parent == armatureRoot:
		if b.HasArmatureModel {
			b.ConnectOO(id, b.ArmatureModelID)
		} else {
			b.ConnectOO(id, 0)
		}
	case parent != nil:
		b.ConnectOO(id, b.Reg.ModelID(parent))
	default:
		b.ConnectOO(id, 0)
	}
}

// transformProperties builds the Lcl Translation/Rotation/Scaling +
// RotationOrder/InheritType property set shared by every Model node
// (FBX_FULL §4.3). Bones additionally carry RotationActive and
// SegmentScaleCompensate.
func (b *Builder) transformProperties(n scene.Node, isBone bool) []*fbxnode.Node {
	t := n.Translation()
	t = mgl32.Vec3{t[0] * b.scale, t[1] * b.scale, t[2] * b.scale}
	r := scene.RadToDegVec3(n.Rotation())
	s := n.Scale()

	order, ok := rotationOrderNames[n.RotationOrder()]
	if !ok {
		order = 0
	}

	props := []*fbxnode.Node{
		p70("RotationOrder", "enum", "", "", fbxnode.Int32Val(order)),
		p70("InheritType", "enum", "", "", fbxnode.Int32Val(1)),
		p70("Lcl Translation", "Lcl Translation", "", "A",
			fbxnode.Float64Val(float64(t[0])), fbxnode.Float64Val(float64(t[1])), fbxnode.Float64Val(float64(t[2]))),
		p70("Lcl Rotation", "Lcl Rotation", "", "A",
			fbxnode.Float64Val(float64(r[0])), fbxnode.Float64Val(float64(r[1])), fbxnode.Float64Val(float64(r[2]))),
		p70("Lcl Scaling", "Lcl Scaling", "", "A",
			fbxnode.Float64Val(float64(s[0])), fbxnode.Float64Val(float64(s[1])), fbxnode.Float64Val(float64(s[2]))),
	}

	if isBone {
		props = append(props,
			p70("RotationActive", "bool", "", "", fbxnode.Bool(true)),
			p70("SegmentScaleCompensate", "bool", "", "", fbxnode.Bool(true)),
		)
	}

	return props
}
