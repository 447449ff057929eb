// Package scenetest is a minimal in-memory implementation of the
// scenefbx/scene contract, used by this module's own package tests and by
// cmd/scenefbxcli's example fixture loader. It is not part of the
// encoder's public contract.
package scenetest

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/scenefbx/scene"
)

// Node is a mutable, pointer-identity scene node. Use NewNode for a visible
// Null node with identity transform; the zero value is invisible and has
// zero Scl and World.
type Node struct {
	NodeName  string
	NodeKind  scene.Kind
	ParentPtr *Node
	Children_ []*Node

	Trans mgl32.Vec3
	Rot   mgl32.Vec3
	Order scene.RotationOrder
	Scl   mgl32.Vec3

	World   mgl32.Mat4
	Vis     bool
	UD      map[string]interface{}
	MeshVal *Mesh
}

// NewNode returns a visible Null node with unit scale and identity world
// matrix.
func NewNode(name string) *Node {
	return &Node{
		NodeName: name,
		Scl:      mgl32.Vec3{1, 1, 1},
		World:    mgl32.Ident4(),
		Vis:      true,
		UD:       make(map[string]interface{}),
	}
}

// AddChild appends child to n's children and sets child's parent.
func (n *Node) AddChild(child *Node) *Node {
	child.ParentPtr = n
	n.Children_ = append(n.Children_, child)
	return n
}

func (n *Node) Name() string             { return n.NodeName }
func (n *Node) Kind() scene.Kind         { return n.NodeKind }
func (n *Node) Parent() scene.Node {
	if n.ParentPtr == nil {
		return nil
	}
	return n.ParentPtr
}
func (n *Node) Children() []scene.Node {
	out := make([]scene.Node, len(n.Children_))
	for i, c := range n.Children_ {
		out[i] = c
	}
	return out
}
func (n *Node) Translation() mgl32.Vec3       { return n.Trans }
func (n *Node) Rotation() mgl32.Vec3          { return n.Rot }
func (n *Node) RotationOrder() scene.RotationOrder { return n.Order }
func (n *Node) Scale() mgl32.Vec3             { return n.Scl }
func (n *Node) WorldMatrix() mgl32.Mat4       { return n.World }
func (n *Node) Visible() bool                 { return n.Vis }
func (n *Node) UserData() map[string]interface{} {
	return n.UD
}
func (n *Node) Mesh() scene.Mesh {
	if n.MeshVal == nil {
		return nil
	}
	return n.MeshVal
}

// Mesh is a mutable in-memory scene.Mesh.
type Mesh struct {
	Geom      scene.Geometry
	Mats      []scene.Material
	Skel      *Skeleton
	BindWorld mgl32.Mat4
}

func (m *Mesh) Geometry() *scene.Geometry { return &m.Geom }
func (m *Mesh) Materials() []scene.Material { return m.Mats }
func (m *Mesh) Skeleton() scene.Skeleton {
	if m.Skel == nil {
		return nil
	}
	return m.Skel
}
func (m *Mesh) BindMatrix() mgl32.Mat4 { return m.BindWorld }

// Skeleton is a mutable in-memory scene.Skeleton.
type Skeleton struct {
	BoneList  []*Node
	Inverses  map[int]mgl32.Mat4
}

func (s *Skeleton) Bones() []scene.Node {
	out := make([]scene.Node, len(s.BoneList))
	for i, b := range s.BoneList {
		out[i] = b
	}
	return out
}

func (s *Skeleton) BoneInverse(i int) (mgl32.Mat4, bool) {
	m, ok := s.Inverses[i]
	return m, ok
}

// Material is a static in-memory scene.Material.
type Material struct {
	MatName string
	Diffuse mgl32.Vec3
	Op      float32
	Tex     *Texture
}

func (m *Material) Name() string              { return m.MatName }
func (m *Material) DiffuseColor() mgl32.Vec3   { return m.Diffuse }
func (m *Material) Opacity() float32           { return m.Op }
func (m *Material) Texture() scene.Texture {
	if m.Tex == nil {
		return nil
	}
	return m.Tex
}

// Texture is a static in-memory scene.Texture. ReadErr, if set, is
// returned by PNG instead of Bytes, simulating a CORS-tainted/unreadable
// source image.
type Texture struct {
	TexName string
	Bytes   []byte
	ReadErr error
}

func (t *Texture) Name() string { return t.TexName }
func (t *Texture) PNG() ([]byte, error) {
	if t.ReadErr != nil {
		return nil, t.ReadErr
	}
	return t.Bytes, nil
}
