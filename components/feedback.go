package components

import (
	"github.com/reoring/surface"
	"github.com/reoring/surface/a11y"
)

type ToastType string

const (
	ToastInfo    ToastType = "info"
	ToastSuccess ToastType = "success"
	ToastWarning ToastType = "warning"
	ToastError   ToastType = "error"
)

// ModalBuilder builds a Modal dialog.
type ModalBuilder struct{ container }

// Modal starts a Modal. onDismiss is dispatched when the user closes it.
func Modal(visible bool, onDismiss surface.ActionRef, children ...surface.Node) *ModalBuilder {
	b := &ModalBuilder{container{newBase("Modal")}}
	b.set("visible", surface.Bool(visible))
	b.set("on_dismiss", onDismiss)
	b.add(children)
	return b
}

func (b *ModalBuilder) Title(s string) *ModalBuilder {
	b.set("title", surface.String(s))
	return b
}

func (b *ModalBuilder) Child(n surface.Node) *ModalBuilder {
	b.add([]surface.Node{n})
	return b
}

// Children replaces all children.
func (b *ModalBuilder) Children(children ...surface.Node) *ModalBuilder {
	b.replace(children)
	return b
}

func (b *ModalBuilder) Accessible(info a11y.Info) *ModalBuilder {
	b.setInfo(info)
	return b
}

func (b *ModalBuilder) Build() surface.Node { return b.build() }

// ToastBuilder builds a Toast.
type ToastBuilder struct{ base }

// Toast starts a Toast showing message.
func Toast(message string) *ToastBuilder {
	b := &ToastBuilder{newBase("Toast")}
	b.set("message", surface.String(message))
	return b
}

// Duration sets the display time in milliseconds.
func (b *ToastBuilder) Duration(ms float64) *ToastBuilder {
	b.set("duration", surface.Number(ms))
	return b
}

func (b *ToastBuilder) Type(t ToastType) *ToastBuilder {
	b.set("type", surface.String(t))
	return b
}

func (b *ToastBuilder) Accessible(info a11y.Info) *ToastBuilder {
	b.setInfo(info)
	return b
}

func (b *ToastBuilder) Build() surface.Node { return b.build() }
