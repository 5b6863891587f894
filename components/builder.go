// Package components provides one builder per built-in component.
//
// Required props are constructor arguments; optional props are chained
// setters. Build returns a node that already carries an "accessible" prop,
// either the one set with Accessible or one derived from the other props.
package components

import (
	"slices"

	"github.com/reoring/surface"
	"github.com/reoring/surface/a11y"
)

// base holds the node under construction. Builders may be reused: every
// Build returns an independent copy.
type base struct {
	node       surface.Node
	accessible *a11y.Info
}

func newBase(componentType string) base {
	return base{node: surface.NewNode(componentType)}
}

func (b *base) set(key string, v surface.PropValue) { b.node.SetProp(key, v) }

func (b *base) setInfo(info a11y.Info) { b.accessible = &info }

func (b *base) build() surface.Node {
	n := surface.Node{
		Type:     b.node.Type,
		Props:    b.node.Props.Clone(),
		Children: slices.Clone(b.node.Children),
	}
	if b.accessible != nil {
		n.SetProp(a11y.PropKey, b.accessible.Record())
	}
	a11y.Ensure(&n)
	return n
}

// container adds child management to layout and modal builders.
type container struct{ base }

func (c *container) add(children []surface.Node) {
	c.node.Children = append(c.node.Children, children...)
}

func (c *container) replace(children []surface.Node) {
	c.node.Children = slices.Clone(children)
}
