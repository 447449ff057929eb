package scenefbx

import (
	"github.com/mogaika/scenefbx/anim"
	"github.com/mogaika/scenefbx/build"
	"github.com/mogaika/scenefbx/collect"
	"github.com/mogaika/scenefbx/fbxnode"
	"github.com/mogaika/scenefbx/ids"
	"github.com/mogaika/scenefbx/skin"
)

// Parse walks root, partitions it via the Collector, and builds the
// complete FBX 7500 node tree (header, definitions, models, geometry,
// materials, textures, skinning, animation, connections) before handing it
// to the binary writer (FBX_FULL §6, orchestrating §4.2-§4.6).
func Parse(root Node, opts Options) ([]byte, error) {
	collected := collect.Collect(root, opts)
	armatureRoot := collect.FindArmatureRoot(collected)

	reg := ids.New()
	documentID := reg.Alloc()
	b := build.New(reg, opts)

	boneSet := make(map[Node]bool)
	for _, mn := range collected.SkinnedMeshes {
		for _, bone := range mn.Mesh().Skeleton().Bones() {
			boneSet[bone] = true
		}
	}

	b.BuildModels(collected.Objects, boneSet, armatureRoot)

	skinnedSet := make(map[Node]bool, len(collected.SkinnedMeshes))
	for _, mn := range collected.SkinnedMeshes {
		skinnedSet[mn] = true
	}

	boneNamesByMesh := make(map[Node][]string, len(collected.SkinnedMeshes))

	for _, n := range collected.Objects {
		if n.Kind() != KindMesh || boneSet[n] {
			continue
		}
		if !opts.ExportMaterials {
			b.BuildGeometry(n, nil)
			continue
		}

		modelID := reg.ModelID(n)
		mesh := n.Mesh()
		mats := mesh.Materials()
		if len(mats) == 0 {
			b.BuildMaterial(nil, modelID)
		} else {
			for _, mat := range mats {
				b.BuildMaterial(mat, modelID)
			}
		}

		var boneNames []string
		if skinnedSet[n] {
			boneNames = skin.Build(b, n)
			boneNamesByMesh[n] = boneNames
		}
		b.BuildGeometry(n, boneNames)
	}

	resolveBone := func(name string) (int64, bool) {
		for bone := range boneSet {
			if NormalizeMixamoName(bone.Name()) == name {
				return reg.ModelID(bone), true
			}
		}
		return 0, false
	}
	anim.Build(b, opts.Animations, resolveBone)

	fileID, creationTime, creator, headerExt, globalSettings, documents, references := build.BuildHeader(documentID)

	doc := &fbxnode.Document{
		FileId:             fileID,
		CreationTime:       creationTime,
		Creator:            creator,
		FBXHeaderExtension: headerExt,
		GlobalSettings:     globalSettings,
		Documents:          documents,
		References:         references,
		Definitions:        b.BuildDefinitions(),
		Objects:            b.Objects,
		Connections:        b.Connections,
	}

	return fbxnode.Write(doc)
}
