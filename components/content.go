package components

import (
	"github.com/reoring/surface"
	"github.com/reoring/surface/a11y"
)

type TextSize string

const (
	SizeSmall   TextSize = "small"
	SizeBody    TextSize = "body"
	SizeTitle   TextSize = "title"
	SizeHeading TextSize = "heading"
	SizeDisplay TextSize = "display"
)

type TextWeight string

const (
	WeightNormal TextWeight = "normal"
	WeightMedium TextWeight = "medium"
	WeightBold   TextWeight = "bold"
)

type TextAlign string

const (
	TextStart  TextAlign = "start"
	TextCenter TextAlign = "center"
	TextEnd    TextAlign = "end"
)

type TextOverflow string

const (
	OverflowClip     TextOverflow = "clip"
	OverflowEllipsis TextOverflow = "ellipsis"
	OverflowWrap     TextOverflow = "wrap"
)

// TextBuilder builds a Text.
type TextBuilder struct{ base }

// Text starts a Text displaying value.
func Text(value string) *TextBuilder {
	b := &TextBuilder{newBase("Text")}
	b.set("value", surface.String(value))
	return b
}

func (b *TextBuilder) Size(s TextSize) *TextBuilder {
	b.set("size", surface.String(s))
	return b
}

func (b *TextBuilder) Weight(w TextWeight) *TextBuilder {
	b.set("weight", surface.String(w))
	return b
}

func (b *TextBuilder) Color(c surface.Color) *TextBuilder {
	b.set("color", c)
	return b
}

func (b *TextBuilder) Align(a TextAlign) *TextBuilder {
	b.set("align", surface.String(a))
	return b
}

func (b *TextBuilder) MaxLines(n float64) *TextBuilder {
	b.set("max_lines", surface.Number(n))
	return b
}

func (b *TextBuilder) Overflow(o TextOverflow) *TextBuilder {
	b.set("overflow", surface.String(o))
	return b
}

func (b *TextBuilder) Accessible(info a11y.Info) *TextBuilder {
	b.setInfo(info)
	return b
}

func (b *TextBuilder) Build() surface.Node { return b.build() }

// ProgressBarBuilder builds a ProgressBar.
type ProgressBarBuilder struct{ base }

// ProgressBar starts a ProgressBar. value is clamped to [0, 1]; NaN becomes 0.
func ProgressBar(value float64) *ProgressBarBuilder {
	b := &ProgressBarBuilder{newBase("ProgressBar")}
	b.set("value", surface.Number(clamp01(value)))
	return b
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}

func (b *ProgressBarBuilder) Color(c surface.Color) *ProgressBarBuilder {
	b.set("color", c)
	return b
}

func (b *ProgressBarBuilder) Background(c surface.Color) *ProgressBarBuilder {
	b.set("background", c)
	return b
}

// Height sets the bar height in logical pixels.
func (b *ProgressBarBuilder) Height(h float64) *ProgressBarBuilder {
	b.set("height", surface.Number(h))
	return b
}

func (b *ProgressBarBuilder) Accessible(info a11y.Info) *ProgressBarBuilder {
	b.setInfo(info)
	return b
}

func (b *ProgressBarBuilder) Build() surface.Node { return b.build() }
