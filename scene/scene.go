// Package scene defines the input scene-graph contract (FBX_FULL §3, §6):
// the interfaces and value types a caller implements to describe a 3D
// scene, independent of the encoder itself. It has no dependency on the
// encoder packages, so collect/build/skin/anim can all depend on it without
// creating an import cycle back through the root scenefbx package, which
// re-exports these types under their original names.
package scene

import "github.com/go-gl/mathgl/mgl32"

// RotationOrder mirrors the FBX RotationOrder enum (FBX_FULL §3).
type RotationOrder int

const (
	RotationXYZ RotationOrder = iota
	RotationXZY
	RotationYXZ
	RotationYZX
	RotationZXY
	RotationZYX
)

// Kind distinguishes the three exportable model kinds (FBX_FULL §3).
type Kind int

const (
	KindNull Kind = iota
	KindMesh
	KindBone
)

// Node is one entry in the caller-supplied scene hierarchy (FBX_FULL §6
// input scene-graph contract). Implementations are expected to be backed
// by a pointer type so identity comparison (used by the id registry) is
// stable.
type Node interface {
	Name() string
	Kind() Kind
	Parent() Node
	Children() []Node

	// Local transform. Rotation is Euler radians in the order RotationOrder
	// reports.
	Translation() mgl32.Vec3
	Rotation() mgl32.Vec3
	RotationOrder() RotationOrder
	Scale() mgl32.Vec3

	WorldMatrix() mgl32.Mat4
	Visible() bool

	// UserData carries at least the "export" opt-out flag consulted by the
	// collector (FBX_FULL §4.2).
	UserData() map[string]interface{}

	// Mesh returns this node's mesh data, or nil if Kind() != KindMesh.
	Mesh() Mesh
}

// Geometry is a mesh's raw vertex data (FBX_FULL §3). Polygons are assumed
// triangulated; Indices is optional (nil means positions are already laid
// out in triangle order, three per face).
type Geometry struct {
	Positions []mgl32.Vec3
	Indices   []int32

	Normals []mgl32.Vec3 // optional, per polygon-vertex (len == len(Indices) if Indices set, else == len(Positions))
	UVs     []mgl32.Vec2 // optional, per polygon-vertex

	// SkinIndices/SkinWeights are optional, 4 entries per vertex, parallel
	// to Positions (not per polygon-vertex).
	SkinIndices [][4]int
	SkinWeights [][4]float32
}

// Mesh is the mesh payload of a Node with Kind() == KindMesh.
type Mesh interface {
	Geometry() *Geometry
	Materials() []Material

	// Skeleton returns the skinning skeleton, or nil if this mesh isn't
	// skinned.
	Skeleton() Skeleton

	// BindMatrix is the mesh's bind-time world matrix, used as the
	// "mesh bind" in the skinning subsystem (FBX_FULL §4.4). Usually equal
	// to the owning Node's WorldMatrix() at bind time.
	BindMatrix() mgl32.Mat4
}

// Material is a mesh's visual appearance (FBX_FULL §3). Shading model is
// always Lambert.
type Material interface {
	Name() string
	DiffuseColor() mgl32.Vec3 // defaults to (0.5,0.5,0.5) if unknown
	Opacity() float32         // 1 = fully opaque

	// Texture returns the diffuse texture binding, or nil.
	Texture() Texture
}

// Texture is an image binding (FBX_FULL §3). PNG is invoked synchronously
// by the encoder (FBX_FULL §5); a non-nil error is treated like a
// CORS-tainted/unreadable image (FBX_FULL §7): the texture is logged and
// omitted, never a hard failure.
type Texture interface {
	Name() string
	PNG() ([]byte, error)
}

// Skeleton exposes a skinned mesh's ordered bone list and parallel
// bind-inverse matrices (FBX_FULL §6).
type Skeleton interface {
	Bones() []Node

	// BoneInverse returns the bind inverse for bone index i, and whether
	// one is recorded. A missing inverse falls back to the bone's current
	// world matrix (FBX_FULL §4.4, §7).
	BoneInverse(i int) (mgl32.Mat4, bool)
}

// AnimationTrack targets a single "<bone>.<property>" channel (FBX_FULL
// §4.5). Values has 3 components per key for position/scale or 4
// (x,y,z,w) for quaternion.
type AnimationTrack struct {
	Name   string
	Times  []float32
	Values [][]float32
}

// AnimationClip is one exportable clip (FBX_FULL §3, §6).
type AnimationClip struct {
	Name     string
	Duration float32
	Tracks   []AnimationTrack
}
