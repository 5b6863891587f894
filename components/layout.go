package components

import (
	"github.com/reoring/surface"
	"github.com/reoring/surface/a11y"
)

// ColumnBuilder builds a Column, which stacks children vertically.
type ColumnBuilder struct{ container }

// Column starts a Column with the given children.
func Column(children ...surface.Node) *ColumnBuilder {
	b := &ColumnBuilder{container{newBase("Column")}}
	b.add(children)
	return b
}

func (b *ColumnBuilder) Spacing(v float64) *ColumnBuilder {
	b.set("spacing", surface.Number(v))
	return b
}

func (b *ColumnBuilder) Align(a surface.Alignment) *ColumnBuilder {
	b.set("align", a.PropValue())
	return b
}

func (b *ColumnBuilder) Padding(e surface.Edges) *ColumnBuilder {
	b.set("padding", e.PropValue())
	return b
}

func (b *ColumnBuilder) Child(n surface.Node) *ColumnBuilder {
	b.add([]surface.Node{n})
	return b
}

// Children replaces all children.
func (b *ColumnBuilder) Children(children ...surface.Node) *ColumnBuilder {
	b.replace(children)
	return b
}

func (b *ColumnBuilder) Accessible(info a11y.Info) *ColumnBuilder {
	b.setInfo(info)
	return b
}

func (b *ColumnBuilder) Build() surface.Node { return b.build() }

// RowBuilder builds a Row, which lays children out horizontally.
type RowBuilder struct{ container }

// Row starts a Row with the given children.
func Row(children ...surface.Node) *RowBuilder {
	b := &RowBuilder{container{newBase("Row")}}
	b.add(children)
	return b
}

func (b *RowBuilder) Spacing(v float64) *RowBuilder {
	b.set("spacing", surface.Number(v))
	return b
}

func (b *RowBuilder) Align(a surface.Alignment) *RowBuilder {
	b.set("align", a.PropValue())
	return b
}

func (b *RowBuilder) Padding(e surface.Edges) *RowBuilder {
	b.set("padding", e.PropValue())
	return b
}

func (b *RowBuilder) Child(n surface.Node) *RowBuilder {
	b.add([]surface.Node{n})
	return b
}

// Children replaces all children.
func (b *RowBuilder) Children(children ...surface.Node) *RowBuilder {
	b.replace(children)
	return b
}

func (b *RowBuilder) Accessible(info a11y.Info) *RowBuilder {
	b.setInfo(info)
	return b
}

func (b *RowBuilder) Build() surface.Node { return b.build() }

// ScrollDirection is the scroll axis of a Scroll.
type ScrollDirection string

const (
	Vertical   ScrollDirection = "vertical"
	Horizontal ScrollDirection = "horizontal"
	Both       ScrollDirection = "both"
)

// ScrollBuilder builds a Scroll. The direction prop is always written and
// defaults to Vertical.
type ScrollBuilder struct {
	container
	direction ScrollDirection
}

// Scroll starts a vertical Scroll with the given children.
func Scroll(children ...surface.Node) *ScrollBuilder {
	b := &ScrollBuilder{container: container{newBase("Scroll")}, direction: Vertical}
	b.add(children)
	return b
}

func (b *ScrollBuilder) Direction(d ScrollDirection) *ScrollBuilder {
	b.direction = d
	return b
}

func (b *ScrollBuilder) Child(n surface.Node) *ScrollBuilder {
	b.add([]surface.Node{n})
	return b
}

// Children replaces all children.
func (b *ScrollBuilder) Children(children ...surface.Node) *ScrollBuilder {
	b.replace(children)
	return b
}

func (b *ScrollBuilder) Accessible(info a11y.Info) *ScrollBuilder {
	b.setInfo(info)
	return b
}

func (b *ScrollBuilder) Build() surface.Node {
	b.set("direction", surface.String(b.direction))
	return b.build()
}
