// Package build implements the Node Builder (FBX_FULL §4.3): it produces
// the in-memory FBX node tree (header extension, global settings,
// document, definitions, objects, connections) from a Collected scene.
package build

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/scenefbx/scene"
	"github.com/mogaika/scenefbx/fbxnode"
	"github.com/mogaika/scenefbx/ids"
)

// Builder accumulates Objects and Connections nodes plus the per-class
// counts Definitions needs, the way utils/fbxbuilder.FBXBuilder accumulates
// f.objects/f.connections across many exportObject calls.
type Builder struct {
	Reg  *ids.Registry
	Opts scene.Options

	Objects     *fbxnode.Node
	Connections *fbxnode.Node

	objectTypeOrder []string
	objectTypeCount map[string]int32

	scale float32

	materialSeen map[int64]bool

	// ArmatureWorld is populated by BuildModels when an armature root is
	// synthesized, for the bind-pose stage to reuse (FBX_FULL §4.3).
	ArmatureWorld    mgl32.Mat4
	ArmatureModelID  int64
	HasArmatureModel bool
}

// New creates an empty Builder.
func New(reg *ids.Registry, opts scene.Options) *Builder {
	return &Builder{
		Reg:             reg,
		Opts:            opts,
		Objects:         fbxnode.New("Objects"),
		Connections:     fbxnode.New("Connections"),
		objectTypeCount: make(map[string]int32),
		scale:           opts.Scale,
	}
}

// Scale returns the configured output scale, for subpackages (skin, anim)
// that need to apply it outside the Builder's own emit methods.
func (b *Builder) Scale() float32 { return b.scale }

// AddObject exposes addObject to subpackages that build their own object
// nodes (skin, anim) but still need them counted into Definitions.
func (b *Builder) AddObject(n *fbxnode.Node) { b.addObject(n) }

func (b *Builder) addObject(n *fbxnode.Node) {
	b.Objects.Add(n)
	if _, seen := b.objectTypeCount[n.Name]; !seen {
		b.objectTypeOrder = append(b.objectTypeOrder, n.Name)
	}
	b.objectTypeCount[n.Name]++
}

// ConnectOO records an object-to-object connection: child -> parent.
func (b *Builder) ConnectOO(childID, parentID int64) {
	b.Connections.Add(fbxnode.New("C",
		fbxnode.String("OO"), fbxnode.Int64Val(childID), fbxnode.Int64Val(parentID)))
}

// ConnectOP records an object-to-property connection targeting a named
// property on the parent.
func (b *Builder) ConnectOP(childID, parentID int64, property string) {
	b.Connections.Add(fbxnode.New("C",
		fbxnode.String("OP"), fbxnode.Int64Val(childID), fbxnode.Int64Val(parentID), fbxnode.String(property)))
}

// ObjectTypeCounts returns the per-class object counts in first-seen
// order, for the Definitions node.
func (b *Builder) ObjectTypeCounts() (order []string, counts map[string]int32) {
	return b.objectTypeOrder, b.objectTypeCount
}

func p70(name, typ, label, flags string, values ...fbxnode.Property) *fbxnode.Node {
	props := append([]fbxnode.Property{
		fbxnode.String(name), fbxnode.String(typ), fbxnode.String(label), fbxnode.String(flags),
	}, values...)
	return fbxnode.New("P", props...)
}

func properties70(ps ...*fbxnode.Node) *fbxnode.Node {
	return fbxnode.New("Properties70").Add(ps...)
}
