package fbxnode

// Node is the universal container of the FBX binary format: a named record
// with an ordered list of typed properties and an ordered list of child
// records (FBX_FULL §3).
type Node struct {
	Name       string
	Properties []Property
	Children   []*Node
}

// New creates a node with the given name and properties.
func New(name string, props ...Property) *Node {
	return &Node{Name: name, Properties: props}
}

// Add appends children and returns the node, so builder sites can chain
// construction the way the teacher's bfbx73 DSL does (AddNodes).
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}
