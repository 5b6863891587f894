package surface

import (
	"slices"
	"strconv"
)

// Node is one element of the UI tree: a component type, its props and its
// ordered children.
//
// A node is assembled by a builder and treated as immutable afterwards. It is
// owned by its parent (or by the Surface for the root); nodes are never
// shared between trees.
type Node struct {
	// Type is the component type name (e.g., "Column", "Text", "Button").
	Type string
	// Props holds the component properties in sorted key order.
	Props Record
	// Children is empty for leaf components like Text and Button.
	Children []Node
}

// NewNode creates a node with the given component type and no props or
// children.
func NewNode(componentType string) Node {
	return Node{Type: componentType}
}

// SetProp inserts or replaces a prop.
func (n *Node) SetProp(key string, v PropValue) { n.Props.Set(key, v) }

// Prop returns the prop stored under key.
func (n Node) Prop(key string) (PropValue, bool) { return n.Props.Get(key) }

// AddChild appends a child. The children slice is reallocated, so copies of
// n taken earlier keep their own children.
func (n *Node) AddChild(child Node) { n.Children = append(slices.Clip(n.Children), child) }

// WithProp returns a copy of n with the prop set. n itself is not modified.
func (n Node) WithProp(key string, v PropValue) Node {
	n.Props = n.Props.Clone()
	n.Props.Set(key, v)
	return n
}

// WithChild returns a copy of n with child appended.
func (n Node) WithChild(child Node) Node {
	n.Children = append(slices.Clip(n.Children), child)
	return n
}

// WithChildren returns a copy of n whose children are replaced.
func (n Node) WithChildren(children ...Node) Node {
	n.Children = slices.Clone(children)
	return n
}

// Equal reports structural equality of the whole subtree.
func (n Node) Equal(o Node) bool {
	if n.Type != o.Type || !n.Props.Equal(o.Props) || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Walk visits n and its descendants depth-first, parents before children.
// ptr is the JSON Pointer of the visited node relative to n ("" for n
// itself, "/children/0/children/1" for a grandchild). Returning false from fn
// skips the visited node's children.
func (n *Node) Walk(fn func(ptr string, node *Node) bool) {
	n.walk("", fn)
}

func (n *Node) walk(ptr string, fn func(string, *Node) bool) {
	if !fn(ptr, n) {
		return
	}
	for i := range n.Children {
		n.Children[i].walk(ptr+"/children/"+strconv.Itoa(i), fn)
	}
}

// Surface is the top-level owner of a UI tree. It serializes to a JSON
// document with a single "root" key.
type Surface struct {
	Root Node
}

// New wraps root in a Surface.
func New(root Node) Surface { return Surface{Root: root} }

// Equal reports structural equality of the two trees.
func (s Surface) Equal(o Surface) bool { return s.Root.Equal(o.Root) }
