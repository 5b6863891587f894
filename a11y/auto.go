package a11y

import (
	"math"
	"strconv"

	"github.com/reoring/surface"
)

// maxLabelRunes bounds labels derived from Text content.
const maxLabelRunes = 100

// Auto derives accessibility info from a component type and its props.
func Auto(componentType string, props surface.Record) Info {
	info := New(autoLabel(componentType, props)).WithRole(DefaultRole(componentType))
	switch componentType {
	case "ProgressBar":
		if pct, ok := percent(props); ok {
			info = info.WithValue(strconv.FormatInt(pct, 10) + "%")
		}
	case "Toast":
		info = info.WithLiveRegion(Assertive)
	}
	return info
}

func autoLabel(componentType string, props surface.Record) string {
	switch componentType {
	case "Button":
		return stringProp(props, "label", "Button")
	case "TextInput":
		if s, ok := str(props, "label"); ok {
			return s
		}
		return stringProp(props, "placeholder", "Text input")
	case "Text":
		return truncate(stringProp(props, "value", "Text"))
	case "ProgressBar":
		if pct, ok := percent(props); ok {
			return strconv.FormatInt(pct, 10) + "% complete"
		}
		return "Progress bar"
	case "Modal":
		return stringProp(props, "title", "Dialog")
	case "Toast":
		return stringProp(props, "message", "Notification")
	case "ScrollList":
		return "List"
	}
	return componentType
}

func str(props surface.Record, key string) (string, bool) {
	v, _ := props.Get(key)
	s, ok := v.(surface.String)
	return string(s), ok
}

func stringProp(props surface.Record, key, fallback string) string {
	if s, ok := str(props, key); ok {
		return s
	}
	return fallback
}

// percent rounds value*100 half away from zero.
func percent(props surface.Record) (int64, bool) {
	v, _ := props.Get("value")
	n, ok := v.(surface.Number)
	if !ok {
		return 0, false
	}
	return int64(math.Round(float64(n) * 100)), true
}

// truncate cuts s to maxLabelRunes characters and appends an ellipsis.
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxLabelRunes {
		return s
	}
	return string(r[:maxLabelRunes]) + "…"
}

// Ensure attaches Auto info to n unless it already carries PropKey.
func Ensure(n *surface.Node) {
	if n.Props.Has(PropKey) {
		return
	}
	n.SetProp(PropKey, Auto(n.Type, n.Props).Record())
}

// EnsureTree applies Ensure to n and all its descendants. Nodes decoded from
// a document or assembled without the builders use this.
func EnsureTree(n *surface.Node) {
	n.Walk(func(_ string, node *surface.Node) bool {
		Ensure(node)
		return true
	})
}
