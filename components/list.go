package components

import (
	"github.com/reoring/surface"
	"github.com/reoring/surface/a11y"
)

// ScrollListBuilder builds a ScrollList. The host calls render and key once
// per item.
type ScrollListBuilder struct{ base }

// ScrollList starts a ScrollList over items.
func ScrollList(items surface.List, render, key surface.Lambda) *ScrollListBuilder {
	b := &ScrollListBuilder{newBase("ScrollList")}
	if items == nil {
		items = surface.List{}
	}
	b.set("items", items)
	b.set("render", render)
	b.set("key", key)
	return b
}

func (b *ScrollListBuilder) OnReorder(fn surface.Lambda) *ScrollListBuilder {
	b.set("on_reorder", fn)
	return b
}

func (b *ScrollListBuilder) Dividers(v bool) *ScrollListBuilder {
	b.set("dividers", surface.Bool(v))
	return b
}

func (b *ScrollListBuilder) Accessible(info a11y.Info) *ScrollListBuilder {
	b.setInfo(info)
	return b
}

func (b *ScrollListBuilder) Build() surface.Node { return b.build() }
