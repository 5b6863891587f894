// Package validate checks nodes against the component registry.
//
// Every check runs; a node with three defects yields three issues, in this
// order: required props, optional props, children, unknown prop keys.
// Issue paths are JSON Pointers relative to the validated node.
package validate

import (
	"strconv"
	"strings"

	"github.com/reoring/surface"
	"github.com/reoring/surface/a11y"
	"github.com/reoring/surface/i18n"
	"github.com/reoring/surface/registry"
)

// Layout validates Column, Row and Scroll.
func Layout(n surface.Node) surface.Issues { return inCategory(registry.Layout, n) }

// Content validates Text and ProgressBar.
func Content(n surface.Node) surface.Issues { return inCategory(registry.Content, n) }

// Interactive validates Button and TextInput.
func Interactive(n surface.Node) surface.Issues { return inCategory(registry.Interactive, n) }

// List validates ScrollList.
func List(n surface.Node) surface.Issues { return inCategory(registry.List, n) }

// Feedback validates Modal and Toast.
func Feedback(n surface.Node) surface.Issues { return inCategory(registry.Feedback, n) }

// Node validates n with the validator of its registered category. Children
// are not visited.
func Node(n surface.Node) surface.Issues {
	def, ok := registry.Default().Get(n.Type)
	if !ok {
		return surface.Issues{unknownComponent("", n.Type)}
	}
	return component(def, n)
}

// Tree validates n and every descendant. Issues of descendants are prefixed
// with their position (/children/0/props/label).
func Tree(n surface.Node) surface.Issues {
	var iss surface.Issues
	n.Walk(func(ptr string, node *surface.Node) bool {
		iss = append(iss, Node(*node).Rebase(ptr)...)
		return true
	})
	return iss
}

// Surface validates the whole tree of s. It returns nil or the
// surface.Issues found, with paths rooted at /root.
func Surface(s surface.Surface) error {
	if iss := Tree(s.Root).Rebase("/root"); len(iss) > 0 {
		return iss
	}
	return nil
}

func inCategory(c registry.Category, n surface.Node) surface.Issues {
	def, ok := registry.Default().Get(n.Type)
	if !ok || def.Category != c {
		return surface.Issues{unknownComponent(c, n.Type)}
	}
	return component(def, n)
}

func unknownComponent(c registry.Category, name string) surface.Issue {
	key, data := "unknown_component", map[string]string{"category": string(c), "component": name}
	if c == "" {
		key = "unknown_component.any"
	}
	it := surface.Root().Field("type").Issue(surface.CodeUnknownComponent, i18n.T(key, data), "component", name)
	it.Cause = surface.ErrUnknownComponent
	return it
}

func component(def registry.ComponentDef, n surface.Node) surface.Issues {
	var iss surface.Issues
	props := surface.Root().Field("props")

	for _, p := range def.RequiredProps() {
		v, ok := n.Props.Get(p.Name)
		if !ok {
			iss = surface.AppendIssues(iss, props.Field(p.Name).Issue(surface.CodeRequired,
				i18n.T("required", map[string]string{"subject": def.Name + "." + p.Name}), "prop", p.Name))
			continue
		}
		iss = append(iss, checkProp(def, p, v)...)
	}

	for _, p := range def.OptionalProps() {
		v, ok := n.Props.Get(p.Name)
		if !ok {
			continue
		}
		if p.Name == registry.AccessibleProp {
			iss = append(iss, a11y.ValidateProp(def.Name, v).Rebase(props.Field(p.Name).Pointer())...)
			continue
		}
		iss = append(iss, checkProp(def, p, v)...)
	}

	if !def.AcceptsChildren && len(n.Children) > 0 {
		count := strconv.Itoa(len(n.Children))
		iss = surface.AppendIssues(iss, surface.Root().Field("children").Issue(surface.CodeChildrenNotAllowed,
			i18n.T("children_not_allowed", map[string]string{"subject": def.Name, "count": count}), "count", count))
	}

	for k := range n.Props.All() {
		if !def.Known(k) {
			iss = surface.AppendIssues(iss, props.Field(k).Issue(surface.CodeUnknownKey,
				i18n.T("unknown_key", map[string]string{"subject": def.Name, "key": k}), "key", k))
		}
	}
	return iss
}

func checkProp(def registry.ComponentDef, p registry.PropDef, v surface.PropValue) surface.Issues {
	path := surface.Root().Field("props").Field(p.Name)
	subject := def.Name + "." + p.Name
	if !p.Type.HasShape(v) {
		got := v.TypeName()
		return surface.Issues{path.Issue(surface.CodeInvalidType,
			i18n.T("invalid_type", map[string]string{"subject": subject, "expected": p.Type.Expected(), "got": got}),
			"prop", p.Name, "expected", p.Type.Expected(), "got", got)}
	}
	if !p.Type.Accepts(v) {
		got := string(v.(surface.String))
		allowed := p.Type.Allowed()
		list := strings.Join(allowed, ", ")
		it := path.Issue(surface.CodeInvalidEnum,
			i18n.T("invalid_enum", map[string]string{"subject": subject, "allowed": list, "got": got}),
			"prop", p.Name, "got", got)
		it.Hint = i18n.T("hint.allowed", map[string]string{"allowed": list})
		return surface.Issues{it}
	}
	return nil
}
