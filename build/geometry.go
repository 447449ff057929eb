package build

import (
	"github.com/mogaika/scenefbx/scene"
	"github.com/mogaika/scenefbx/fbxnode"
)

// BuildGeometry emits a mesh's Geometry node (positions, polygon-vertex
// indices, normal/UV/material layer elements, Layer) plus its Model->
// Geometry and Geometry->Model(NodeAttribute-style) connections, following
// pack/wad/mesh/export_fbx.go's geometryLayer assembly (FBX_FULL §4.3).
// boneNames, when non-nil, is emitted as a VertexGroups node in bone-index
// order (FBX_FULL §4.3, skinning export).
func (b *Builder) BuildGeometry(n scene.Node, boneNames []string) {
	mesh := n.Mesh()
	if mesh == nil {
		return
	}
	geom := mesh.Geometry()
	if geom == nil || len(geom.Positions) == 0 {
		return
	}

	modelID := b.Reg.ModelID(n)
	geomID := b.Reg.GeometryID(mesh)

	positions := make([]float64, 0, len(geom.Positions)*3)
	for _, p := range geom.Positions {
		positions = append(positions,
			float64(p[0])*float64(b.scale), float64(p[1])*float64(b.scale), float64(p[2])*float64(b.scale))
	}

	polyCount := len(geom.Indices)
	if polyCount == 0 {
		polyCount = len(geom.Positions)
	}
	indices := make([]int32, polyCount)
	for i := 0; i < polyCount; i++ {
		var idx int32
		if geom.Indices != nil {
			idx = geom.Indices[i]
		} else {
			idx = int32(i)
		}
		if i%3 == 2 {
			idx = -(idx + 1)
		}
		indices[i] = idx
	}

	layer := fbxnode.New("Layer", fbxnode.Int32Val(0)).Add(
		fbxnode.New("Version", fbxnode.Int32Val(100)),
	)

	geometry := fbxnode.New("Geometry",
		fbxnode.Int64Val(geomID),
		fbxnode.String(scene.NameWithClass("", "Geometry")),
		fbxnode.String("Mesh")).Add(
		fbxnode.New("GeometryVersion", fbxnode.Int32Val(124)),
		fbxnode.New("Vertices", fbxnode.Float64Array(positions)),
		fbxnode.New("PolygonVertexIndex", fbxnode.Int32Array(indices)),
	)

	if len(geom.Normals) > 0 {
		normals := make([]float64, 0, len(geom.Normals)*3)
		for _, nv := range geom.Normals {
			normals = append(normals, float64(nv[0]), float64(nv[1]), float64(nv[2]))
		}
		geometry.Add(fbxnode.New("LayerElementNormal", fbxnode.Int32Val(0)).Add(
			fbxnode.New("Version", fbxnode.Int32Val(101)),
			fbxnode.New("Name", fbxnode.String("")),
			fbxnode.New("MappingInformationType", fbxnode.String("ByPolygonVertex")),
			fbxnode.New("ReferenceInformationType", fbxnode.String("Direct")),
			fbxnode.New("Normals", fbxnode.Float64Array(normals)),
		))
		layer.Add(fbxnode.New("LayerElement").Add(
			fbxnode.New("Type", fbxnode.String("LayerElementNormal")),
			fbxnode.New("TypedIndex", fbxnode.Int32Val(0)),
		))
	}

	if len(geom.UVs) > 0 {
		uvs := make([]float64, 0, len(geom.UVs)*2)
		uvIndex := make([]int32, len(geom.UVs))
		for i, uv := range geom.UVs {
			uvs = append(uvs, float64(uv[0]), float64(uv[1]))
			uvIndex[i] = int32(i)
		}
		geometry.Add(fbxnode.New("LayerElementUV", fbxnode.Int32Val(0)).Add(
			fbxnode.New("Version", fbxnode.Int32Val(101)),
			fbxnode.New("Name", fbxnode.String("")),
			fbxnode.New("MappingInformationType", fbxnode.String("ByPolygonVertex")),
			fbxnode.New("ReferenceInformationType", fbxnode.String("IndexToDirect")),
			fbxnode.New("UV", fbxnode.Float64Array(uvs)),
			fbxnode.New("UVIndex", fbxnode.Int32Array(uvIndex)),
		))
		layer.Add(fbxnode.New("LayerElement").Add(
			fbxnode.New("Type", fbxnode.String("LayerElementUV")),
			fbxnode.New("TypedIndex", fbxnode.Int32Val(0)),
		))
	}

	// Single material slot per mesh: every polygon points at material index
	// 0, however many materials the mesh has.
	polyFaceCount := polyCount / 3
	matIndex := make([]int32, polyFaceCount)
	geometry.Add(fbxnode.New("LayerElementMaterial", fbxnode.Int32Val(0)).Add(
		fbxnode.New("Version", fbxnode.Int32Val(101)),
		fbxnode.New("Name", fbxnode.String("")),
		fbxnode.New("MappingInformationType", fbxnode.String("ByPolygon")),
		fbxnode.New("ReferenceInformationType", fbxnode.String("IndexToDirect")),
		fbxnode.New("Materials", fbxnode.Int32Array(matIndex)),
	))
	layer.Add(fbxnode.New("LayerElement").Add(
		fbxnode.New("Type", fbxnode.String("LayerElementMaterial")),
		fbxnode.New("TypedIndex", fbxnode.Int32Val(0)),
	))

	geometry.Add(layer)

	if boneNames != nil {
		props := make([]fbxnode.Property, len(boneNames))
		for i, name := range boneNames {
			props[i] = fbxnode.String(scene.NormalizeMixamoName(name))
		}
		geometry.Add(fbxnode.New("VertexGroups", props...))
	}

	b.addObject(geometry)
	b.ConnectOO(geomID, modelID)
}
