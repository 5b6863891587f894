package components

import (
	"github.com/reoring/surface"
	"github.com/reoring/surface/a11y"
)

type ButtonVariant string

const (
	Filled   ButtonVariant = "filled"
	Outlined ButtonVariant = "outlined"
	TextOnly ButtonVariant = "text"
)

type KeyboardType string

const (
	KeyboardText   KeyboardType = "text"
	KeyboardNumber KeyboardType = "number"
	KeyboardEmail  KeyboardType = "email"
	KeyboardPhone  KeyboardType = "phone"
	KeyboardURL    KeyboardType = "url"
)

// ButtonBuilder builds a Button.
type ButtonBuilder struct{ base }

// Button starts a Button dispatching onTap.
func Button(label string, onTap surface.ActionRef) *ButtonBuilder {
	b := &ButtonBuilder{newBase("Button")}
	b.set("label", surface.String(label))
	b.set("on_tap", onTap)
	return b
}

func (b *ButtonBuilder) Variant(v ButtonVariant) *ButtonBuilder {
	b.set("variant", surface.String(v))
	return b
}

func (b *ButtonBuilder) Icon(name string) *ButtonBuilder {
	b.set("icon", surface.String(name))
	return b
}

func (b *ButtonBuilder) Disabled(v bool) *ButtonBuilder {
	b.set("disabled", surface.Bool(v))
	return b
}

func (b *ButtonBuilder) Loading(v bool) *ButtonBuilder {
	b.set("loading", surface.Bool(v))
	return b
}

func (b *ButtonBuilder) Accessible(info a11y.Info) *ButtonBuilder {
	b.setInfo(info)
	return b
}

func (b *ButtonBuilder) Build() surface.Node { return b.build() }

// TextInputBuilder builds a TextInput.
type TextInputBuilder struct{ base }

// TextInput starts a TextInput whose edits are sent to onChange.
func TextInput(value string, onChange surface.Lambda) *TextInputBuilder {
	b := &TextInputBuilder{newBase("TextInput")}
	b.set("value", surface.String(value))
	b.set("on_change", onChange)
	return b
}

func (b *TextInputBuilder) Placeholder(s string) *TextInputBuilder {
	b.set("placeholder", surface.String(s))
	return b
}

func (b *TextInputBuilder) Label(s string) *TextInputBuilder {
	b.set("label", surface.String(s))
	return b
}

func (b *TextInputBuilder) Keyboard(k KeyboardType) *TextInputBuilder {
	b.set("keyboard", surface.String(k))
	return b
}

func (b *TextInputBuilder) MaxLength(n float64) *TextInputBuilder {
	b.set("max_length", surface.Number(n))
	return b
}

func (b *TextInputBuilder) Multiline(v bool) *TextInputBuilder {
	b.set("multiline", surface.Bool(v))
	return b
}

func (b *TextInputBuilder) Accessible(info a11y.Info) *TextInputBuilder {
	b.setInfo(info)
	return b
}

func (b *TextInputBuilder) Build() surface.Node { return b.build() }
