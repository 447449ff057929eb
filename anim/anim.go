// Package anim implements the animation subsystem (FBX_FULL §4.5):
// AnimationStack/Layer/CurveNode/Curve construction with the quaternion-to-
// Euler conversion generalized from a single static-pose call (the
// teacher's quatToEuler in pack/wad/obj/export_fbx.go) into a per-key,
// continuity-corrected fold.
package anim

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/scenefbx/scene"
	"github.com/mogaika/scenefbx/build"
	"github.com/mogaika/scenefbx/fbxnode"
)

// ktimeTicksPerSecond is the fixed FBX KTime tick rate (FBX_FULL §4.5).
const ktimeTicksPerSecond = 46186158000

// boneModelID resolves a bone name (Mixamo-normalized) to its allocated
// Model id, or ok=false if the clip references a bone that wasn't exported.
type boneModelID func(name string) (int64, bool)

// Build emits one AnimationStack+Layer per clip, and within it one
// CurveNode+3 Curves per resolvable track.
func Build(b *build.Builder, clips []scene.AnimationClip, resolveBone boneModelID) {
	for _, clip := range clips {
		buildClip(b, clip, resolveBone)
	}
}

func buildClip(b *build.Builder, clip scene.AnimationClip, resolveBone boneModelID) {
	stackID := b.Reg.Alloc()
	layerID := b.Reg.Alloc()

	stop := ktime(float64(clip.Duration))

	stack := fbxnode.New("AnimationStack",
		fbxnode.Int64Val(stackID),
		fbxnode.String(scene.NameWithClass(clip.Name, "AnimStack")),
		fbxnode.String("")).Add(
		fbxnode.New("Properties70").Add(
			p70("LocalStop", "KTime", "Time", "", fbxnode.Int64Val(stop)),
			p70("ReferenceStop", "KTime", "Time", "", fbxnode.Int64Val(stop)),
		),
	)
	b.AddObject(stack)
	b.ConnectOO(layerID, stackID)

	layer := fbxnode.New("AnimationLayer",
		fbxnode.Int64Val(layerID),
		fbxnode.String(scene.NameWithClass("BaseLayer", "AnimLayer")),
		fbxnode.String(""))
	b.AddObject(layer)

	for _, track := range clip.Tracks {
		buildTrack(b, track, layerID, resolveBone)
	}
}

func buildTrack(b *build.Builder, track scene.AnimationTrack, layerID int64, resolveBone boneModelID) {
	boneName, property, ok := splitTrackName(track.Name)
	if !ok {
		return
	}

	boneID, ok := resolveBone(scene.NormalizeMixamoName(boneName))
	if !ok {
		return
	}

	var keyAttr, propName string
	values := make([][3]float32, len(track.Times))

	switch property {
	case "position":
		keyAttr, propName = "T", "Lcl Translation"
		for i, v := range track.Values {
			values[i] = [3]float32{v[0] * b.Scale(), v[1] * b.Scale(), v[2] * b.Scale()}
		}
	case "scale":
		keyAttr, propName = "S", "Lcl Scaling"
		for i, v := range track.Values {
			values[i] = [3]float32{v[0], v[1], v[2]}
		}
	case "quaternion":
		keyAttr, propName = "R", "Lcl Rotation"
		values = quaternionsToEulerDegrees(track.Values)
	default:
		return
	}

	times := make([]int64, len(track.Times))
	for i, t := range track.Times {
		times[i] = ktime(float64(t))
	}

	nodeID := b.Reg.Alloc()
	var defX, defY, defZ float64
	if len(values) > 0 {
		defX, defY, defZ = float64(values[0][0]), float64(values[0][1]), float64(values[0][2])
	}

	curveNode := fbxnode.New("AnimationCurveNode",
		fbxnode.Int64Val(nodeID),
		fbxnode.String(scene.NameWithClass(keyAttr, "AnimCurveNode")),
		fbxnode.String("")).Add(
		fbxnode.New("Properties70").Add(
			p70("d|X", "Number", "", "A", fbxnode.Float64Val(defX)),
			p70("d|Y", "Number", "", "A", fbxnode.Float64Val(defY)),
			p70("d|Z", "Number", "", "A", fbxnode.Float64Val(defZ)),
		),
	)
	b.AddObject(curveNode)
	b.ConnectOO(nodeID, layerID)
	b.ConnectOP(nodeID, boneID, propName)

	buildCurve(b, "d|X", values, 0, nodeID, times)
	buildCurve(b, "d|Y", values, 1, nodeID, times)
	buildCurve(b, "d|Z", values, 2, nodeID, times)
}

func buildCurve(b *build.Builder, axisProp string, values [][3]float32, axis int, nodeID int64, times []int64) {
	curveID := b.Reg.Alloc()

	axisValues := make([]float32, len(values))
	attrFlags := make([]int32, len(values))
	attrData := make([]float32, len(values)*4)
	attrRefs := make([]int32, len(values))
	for i, v := range values {
		axisValues[i] = v[axis]
		attrFlags[i] = 256
		attrRefs[i] = 1
	}

	curve := fbxnode.New("AnimationCurve",
		fbxnode.Int64Val(curveID),
		fbxnode.String(scene.NameWithClass("", "AnimCurve")),
		fbxnode.String("")).Add(
		fbxnode.New("Default", fbxnode.Float64Val(0)),
		fbxnode.New("KeyVer", fbxnode.Int32Val(4009)),
		fbxnode.New("KeyTime", fbxnode.Int64Array(times)),
		fbxnode.New("KeyValueFloat", fbxnode.Float32Array(axisValues)),
		fbxnode.New("KeyAttrFlags", fbxnode.Int32Array(attrFlags)),
		fbxnode.New("KeyAttrDataFloat", fbxnode.Float32Array(attrData)),
		fbxnode.New("KeyAttrRefCount", fbxnode.Int32Array(attrRefs)),
	)
	b.AddObject(curve)
	b.ConnectOP(curveID, nodeID, axisProp)
}

// splitTrackName parses "<bone>.<property>" (FBX_FULL §4.5).
func splitTrackName(name string) (bone, property string, ok bool) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

func ktime(seconds float64) int64 {
	return int64(math.Round(seconds * ktimeTicksPerSecond))
}

// quaternionsToEulerDegrees converts each key's quaternion (track.Values[i]
// == [x,y,z,w]) to XYZ Euler degrees, unwinding each axis against the
// previous key before the degree conversion: where an axis differs from the
// previous key by more than pi, one 2*pi correction is applied toward it
// (FBX_FULL §4.5, §9 "Quaternion-to-Euler continuity"). Only one correction
// is applied, so a previous key that has drifted more than one turn from the
// principal range can still leave a difference above pi.
func quaternionsToEulerDegrees(values [][]float32) [][3]float32 {
	out := make([][3]float32, len(values))
	var prev mgl32.Vec3
	for i, v := range values {
		q := mgl32.Quat{W: v[3], V: mgl32.Vec3{v[0], v[1], v[2]}}
		cur := scene.QuatToEuler(q)
		if i > 0 {
			cur = unwind(cur, prev)
		}
		prev = cur
		deg := scene.RadToDegVec3(cur)
		out[i] = [3]float32{deg[0], deg[1], deg[2]}
	}
	return out
}

const twoPi = float32(2 * math.Pi)

func unwind(cur, prev mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		d := cur[i] - prev[i]
		if d > math.Pi {
			cur[i] -= twoPi
		} else if d < -math.Pi {
			cur[i] += twoPi
		}
	}
	return cur
}

func p70(name, typ, label, flags string, values ...fbxnode.Property) *fbxnode.Node {
	props := append([]fbxnode.Property{
		fbxnode.String(name), fbxnode.String(typ), fbxnode.String(label), fbxnode.String(flags),
	}, values...)
	return fbxnode.New("P", props...)
}
