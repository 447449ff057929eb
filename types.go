// Package scenefbx encodes an in-memory 3D scene graph into the binary
// FBX 7500 interchange format (FBX_FULL §1). Parse is the single entry
// point; every other exported type in this package is an alias onto
// scenefbx/scene, the leaf package the encoder subpackages depend on, kept
// here too so callers only ever need to import one package.
package scenefbx

import "github.com/mogaika/scenefbx/scene"

type (
	RotationOrder  = scene.RotationOrder
	Kind           = scene.Kind
	Node           = scene.Node
	Geometry       = scene.Geometry
	Mesh           = scene.Mesh
	Material       = scene.Material
	Texture        = scene.Texture
	Skeleton       = scene.Skeleton
	AnimationTrack = scene.AnimationTrack
	AnimationClip  = scene.AnimationClip
	Options        = scene.Options
)

const (
	RotationXYZ = scene.RotationXYZ
	RotationXZY = scene.RotationXZY
	RotationYXZ = scene.RotationYXZ
	RotationYZX = scene.RotationYZX
	RotationZXY = scene.RotationZXY
	RotationZYX = scene.RotationZYX

	KindNull = scene.KindNull
	KindMesh = scene.KindMesh
	KindBone = scene.KindBone
)

// DefaultOptions returns the spec's documented defaults (FBX_FULL §6 table).
func DefaultOptions() Options { return scene.DefaultOptions() }

// NameWithClass appends the FBX name/class sentinel (FBX_FULL §4.7).
func NameWithClass(n, cls string) string { return scene.NameWithClass(n, cls) }

// NormalizeMixamoName rewrites "mixamorigHips" to "mixamorig:Hips" (FBX_FULL §4.7).
func NormalizeMixamoName(name string) string { return scene.NormalizeMixamoName(name) }

// SanitizeTextureName produces a filesystem-safe embedded-texture base name (FBX_FULL §4.7).
func SanitizeTextureName(name string) string { return scene.SanitizeTextureName(name) }
