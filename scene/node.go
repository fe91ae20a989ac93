package scene

// Component is a typed component attached to a node.  Within one node
// several components may share a Type; ID, when present, keeps them
// apart across versions.
type Component struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Props *Value `json:"props,omitempty"`
}

func (c *Component) Clone() *Component {
	res := &Component{Type: c.Type, ID: c.ID}
	if c.Props != nil {
		res.Props = c.Props.Clone()
		res.Props.Parent = nil
		res.Props.ParentField = ""
		res.Props.ParentIndex = 0
	}
	return res
}

// Node is one entity of a scene graph.
type Node struct {
	Name       string       `json:"name,omitempty"`
	ID         string       `json:"id,omitempty"`
	Components []*Component `json:"components,omitempty"`
	Children   []*Node      `json:"children,omitempty"`

	Parent *Node `json:"-"`

	// Deleted marks a root node whose deletion was accepted; non-root
	// nodes are detached instead.
	Deleted bool `json:"-"`
}

// Label returns a human readable name for the node.
func (n *Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	if n.ID != "" {
		return "#" + n.ID
	}
	return "<node>"
}

func (n *Node) AddComponent(c *Component) {
	n.Components = append(n.Components, c)
}

// RemoveComponent removes c from the node, by identity.  It reports
// whether c was attached.
func (n *Node) RemoveComponent(c *Component) bool {
	for i, nc := range n.Components {
		if nc == c {
			n.Components = append(n.Components[:i], n.Components[i+1:]...)
			return true
		}
	}
	return false
}

func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Detach removes the node from its parent's children.  Detaching a
// root is a no-op; it reports whether the node was detached.
func (n *Node) Detach() bool {
	p := n.Parent
	if p == nil {
		return false
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			n.Parent = nil
			return true
		}
	}
	return false
}

// Clone returns a detached deep copy of the node and its subtree.
func (n *Node) Clone() *Node {
	res := &Node{Name: n.Name, ID: n.ID}
	res.Components = make([]*Component, len(n.Components))
	for i, c := range n.Components {
		res.Components[i] = c.Clone()
	}
	for _, c := range n.Children {
		res.AddChild(c.Clone())
	}
	return res
}
