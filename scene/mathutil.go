package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RadToDegVec3 converts a radian Euler triple to degrees, the form FBX
// model rotation properties are stored in (FBX_FULL §4.3).
func RadToDegVec3(v mgl32.Vec3) mgl32.Vec3 {
	const k = float32(180.0 / math.Pi)
	return mgl32.Vec3{v[0] * k, v[1] * k, v[2] * k}
}

// QuatToEuler converts a quaternion to an XYZ Euler angle triple in
// radians. Grounded on pack/wad/obj/export_fbx.go's quatToEuler /
// utils/math.go's QuatToEuler, which this module's animation subsystem
// calls once per key instead of once per static pose (FBX_FULL §4.5, §9).
func QuatToEuler(q mgl32.Quat) mgl32.Vec3 {
	var e mgl32.Vec3

	sinrCosp := float64(2 * (q.W*q.X() + q.Y()*q.Z()))
	cosrCosp := float64(1 - 2*(q.X()*q.X()+q.Y()*q.Y()))
	e[0] = float32(math.Atan2(sinrCosp, cosrCosp))

	sinp := float64(2 * (q.W*q.Y() - q.Z()*q.X()))
	if math.Abs(sinp) >= 1 {
		e[1] = float32(math.Copysign(math.Pi/2, sinp))
	} else {
		e[1] = float32(math.Asin(sinp))
	}

	sinyCosp := float64(2 * (q.W*q.Z() + q.X()*q.Y()))
	cosyCosp := float64(1 - 2*(q.Y()*q.Y()+q.Z()*q.Z()))
	e[2] = float32(math.Atan2(sinyCosp, cosyCosp))

	return e
}

// ScaleTranslationColumn multiplies the translation column (elements
// 12..14 in column-major storage) of m by scale, leaving rotation/scale
// columns untouched (FBX_FULL §4.4).
func ScaleTranslationColumn(m mgl32.Mat4, scale float32) mgl32.Mat4 {
	out := m
	out[12] *= scale
	out[13] *= scale
	out[14] *= scale
	return out
}
