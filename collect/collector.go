// Package collect implements the Collector (FBX_FULL §4.2): it walks the
// input scene graph and partitions objects into exported models and
// skinned-mesh entries.
package collect

import (
	"regexp"

	"github.com/mogaika/scenefbx/scene"
)

// discardPattern matches the editor-helper naming convention the source
// scenes use for objects that should never be exported (FBX_FULL §4.2).
var discardPattern = regexp.MustCompile(`(?i)^(mesh_\d+|widget|handle|helper|bonevis)`)

// Collected is the Collector's output: a flat, deterministically ordered
// list of exported objects plus the subset that are skinned meshes.
type Collected struct {
	Objects       []scene.Node
	SkinnedMeshes []scene.Node
}

// Collect walks root depth-first, in scene traversal order, applying the
// decision table of FBX_FULL §4.2. The union of all bones referenced by
// any skinned mesh is appended to the object list afterward, deduplicated,
// preserving the order in which each bone's owning skeleton listed it.
func Collect(root scene.Node, opts scene.Options) *Collected {
	c := &Collected{}
	present := make(map[scene.Node]bool)
	boneSeen := make(map[scene.Node]bool)
	var boneOrder []scene.Node

	var walk func(n scene.Node)
	walk = func(n scene.Node) {
		if shouldExport(n, opts) {
			c.Objects = append(c.Objects, n)
			present[n] = true

			if n.Kind() == scene.KindMesh {
				if mesh := n.Mesh(); mesh != nil && isSkinnedExportable(mesh, opts) {
					c.SkinnedMeshes = append(c.SkinnedMeshes, n)
					for _, bone := range mesh.Skeleton().Bones() {
						if !boneSeen[bone] {
							boneSeen[bone] = true
							boneOrder = append(boneOrder, bone)
						}
					}
				}
			}
		}
		// Traversal continues into children regardless of whether n itself
		// was exported (FBX_FULL §4.2).
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(root)

	for _, bone := range boneOrder {
		if !present[bone] {
			c.Objects = append(c.Objects, bone)
			present[bone] = true
		}
	}

	return c
}

func shouldExport(n scene.Node, opts scene.Options) bool {
	if opts.OnlyVisible && !n.Visible() {
		return false
	}
	if export, ok := n.UserData()["export"].(bool); ok && !export {
		return false
	}
	if isSkeletonHelper(n) {
		return false
	}
	if n.Kind() != scene.KindMesh {
		return true
	}
	mesh := n.Mesh()
	if mesh == nil {
		return true
	}
	if isSkinnedExportable(mesh, opts) {
		return true
	}
	return !discardPattern.MatchString(n.Name())
}

func isSkinnedExportable(mesh scene.Mesh, opts scene.Options) bool {
	if !opts.ExportSkin {
		return false
	}
	geom := mesh.Geometry()
	return geom != nil && len(geom.Positions) > 0 && mesh.Skeleton() != nil
}

// isSkeletonHelper recognizes the editor's skeleton-visualization
// objects, which carry an explicit marker in user data rather than a name
// convention (distinct from the plain-mesh discard regex, which only
// applies to non-skinned meshes).
func isSkeletonHelper(n scene.Node) bool {
	v, ok := n.UserData()["skeletonHelper"].(bool)
	return ok && v
}

