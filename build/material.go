package build

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/scenefbx/scene"
	"github.com/mogaika/scenefbx/fbxnode"
)

// grayMaterialKey is the registry key for the synthetic fallback material a
// mesh with no exported material receives, so every Geometry->Model still
// gets a Material connection (FBX_FULL §4.3, §9 supplemented feature: the
// teacher's export_fbx.go always has a source material to reflect, this
// module's callers may not).
const grayMaterialKey = "scenefbx:gray-material"

// BuildMaterial emits a Lambert material for mat, or the synthetic gray
// fallback if mat is nil, and connects it to modelID. Grounded on
// pack/wad/mat/export_fbx.go's bfbx73.Material emission.
func (b *Builder) BuildMaterial(mat scene.Material, modelID int64) {
	if mat == nil {
		b.buildMaterialOnce(grayMaterialKey, "DefaultGray", mgl32.Vec3{0.5, 0.5, 0.5}, 1, modelID)
		return
	}
	b.buildMaterialOnce(mat, mat.Name(), mat.DiffuseColor(), mat.Opacity(), modelID)
	if tex := mat.Texture(); tex != nil {
		b.BuildTexture(tex, b.Reg.MaterialID(mat))
	}
}

func (b *Builder) buildMaterialOnce(key interface{}, name string, color mgl32.Vec3, opacity float32, modelID int64) {
	id := b.Reg.MaterialID(key)
	if b.materialSeen == nil {
		b.materialSeen = make(map[int64]bool)
	}
	if !b.materialSeen[id] {
		b.materialSeen[id] = true

		material := fbxnode.New("Material",
			fbxnode.Int64Val(id),
			fbxnode.String(scene.NameWithClass(name, "Material")),
			fbxnode.String("")).Add(
			fbxnode.New("Version", fbxnode.Int32Val(102)),
			fbxnode.New("ShadingModel", fbxnode.String("lambert")),
			fbxnode.New("MultiLayer", fbxnode.Int32Val(0)),
			properties70(
				p70("AmbientColor", "Color", "", "A", fbxnode.Float64Val(0), fbxnode.Float64Val(0), fbxnode.Float64Val(0)),
				p70("DiffuseColor", "Color", "", "A",
					fbxnode.Float64Val(float64(color[0])), fbxnode.Float64Val(float64(color[1])), fbxnode.Float64Val(float64(color[2]))),
				p70("Diffuse", "Vector3D", "Vector", "",
					fbxnode.Float64Val(float64(color[0])), fbxnode.Float64Val(float64(color[1])), fbxnode.Float64Val(float64(color[2]))),
				p70("TransparencyFactor", "double", "Number", "", fbxnode.Float64Val(1-float64(opacity))),
			),
		)
		b.addObject(material)
	}
	b.ConnectOO(id, modelID)
}
