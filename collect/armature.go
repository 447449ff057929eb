package collect

import "github.com/mogaika/scenefbx/scene"

// FindArmatureRoot locates the non-bone parent of at least one root bone
// (FBX_FULL §4.3). Per the spec's documented open question (FBX_FULL §9),
// only the first skinned mesh's skeleton is consulted; scenes with
// multiple disjoint skeletons may therefore misattribute bones belonging
// to a second skeleton to the first one's armature. Returns nil if there
// is no skinned mesh, or no bone has a non-bone parent.
func FindArmatureRoot(c *Collected) scene.Node {
	if len(c.SkinnedMeshes) == 0 {
		return nil
	}
	mesh := c.SkinnedMeshes[0].Mesh()
	if mesh == nil || mesh.Skeleton() == nil {
		return nil
	}
	bones := make(map[scene.Node]bool)
	for _, b := range mesh.Skeleton().Bones() {
		bones[b] = true
	}
	for _, b := range mesh.Skeleton().Bones() {
		parent := b.Parent()
		if parent != nil && !bones[parent] {
			return parent
		}
	}
	return nil
}
