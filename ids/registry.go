// Package ids is the Id Registry (FBX_FULL §3): a collection of mappings
// from scene entity to 64-bit stable id, plus the reverse relationships
// the connection stage needs (cluster->skin, cluster->bone). Generalized
// from the teacher's fbx/cache/cache.go id-keyed cache (a single flat
// map keyed by an asset tag) into namespaced maps keyed by object
// identity, since this encoder's entities don't carry a pre-existing tag.
package ids

// Registry allocates monotonically increasing, never-zero 64-bit ids
// (id 0 is reserved for the implicit FBX root) and remembers the id
// already assigned to a given scene entity so repeated lookups are
// idempotent.
type Registry struct {
	next int64
	ids  map[namespacedKey]int64

	clusterBone map[int64]int64
	clusterSkin map[int64]int64
}

type namespacedKey struct {
	ns  string
	key interface{}
}

type clusterKey struct {
	mesh      interface{}
	boneIndex int
}

// New returns an empty registry. Registries are per-encoder-instance state
// (FBX_FULL §5, §9): never share one across concurrent exports.
func New() *Registry {
	return &Registry{
		ids:         make(map[namespacedKey]int64),
		clusterBone: make(map[int64]int64),
		clusterSkin: make(map[int64]int64),
	}
}

// Alloc returns a fresh id not tied to any entity (used for ids that have
// no natural Go object to key on, e.g. the armature root synthesized by
// the builder, or animation stacks/layers/curves).
func (r *Registry) Alloc() int64 {
	r.next++
	return r.next
}

func (r *Registry) forNS(ns string, key interface{}) int64 {
	k := namespacedKey{ns: ns, key: key}
	if id, ok := r.ids[k]; ok {
		return id
	}
	id := r.Alloc()
	r.ids[k] = id
	return id
}

func (r *Registry) ModelID(node interface{}) int64        { return r.forNS("model", node) }
func (r *Registry) NodeAttributeID(node interface{}) int64 { return r.forNS("nodeattr", node) }
func (r *Registry) GeometryID(mesh interface{}) int64      { return r.forNS("geometry", mesh) }
func (r *Registry) MaterialID(mat interface{}) int64       { return r.forNS("material", mat) }
func (r *Registry) TextureID(tex interface{}) int64        { return r.forNS("texture", tex) }
func (r *Registry) VideoID(tex interface{}) int64          { return r.forNS("video", tex) }
func (r *Registry) SkinID(mesh interface{}) int64          { return r.forNS("skin", mesh) }
func (r *Registry) BindPoseID(mesh interface{}) int64      { return r.forNS("bindpose", mesh) }

func (r *Registry) ClusterID(mesh interface{}, boneIndex int) int64 {
	return r.forNS("cluster", clusterKey{mesh: mesh, boneIndex: boneIndex})
}

// RecordClusterBone and RecordClusterSkin store the reverse relationships
// the connection emitter needs: which bone a cluster influences, and
// which skin owns it.
func (r *Registry) RecordClusterBone(clusterID, boneModelID int64) {
	r.clusterBone[clusterID] = boneModelID
}

func (r *Registry) RecordClusterSkin(clusterID, skinID int64) {
	r.clusterSkin[clusterID] = skinID
}

func (r *Registry) ClusterBone(clusterID int64) (int64, bool) {
	v, ok := r.clusterBone[clusterID]
	return v, ok
}

func (r *Registry) ClusterSkin(clusterID int64) (int64, bool) {
	v, ok := r.clusterSkin[clusterID]
	return v, ok
}
