// Package a11y derives and checks the "accessible" prop every component
// carries: semantic roles, screen reader labels and live regions.
package a11y

import "slices"

// Role is the semantic role reported to platform accessibility APIs
// (UIAccessibilityTraits, AccessibilityNodeInfo, ARIA role).
type Role string

const (
	RoleButton      Role = "button"
	RoleTextField   Role = "textfield"
	RoleProgressBar Role = "progressbar"
	RoleHeading     Role = "heading"
	RoleImage       Role = "image"
	RoleLink        Role = "link"
	RoleCheckbox    Role = "checkbox"
	RoleSlider      Role = "slider"
	RoleList        Role = "list"
	RoleDialog      Role = "dialog"
	RoleAlert       Role = "alert"
	RoleGroup       Role = "group"
	RoleRegion      Role = "region"
	RoleText        Role = "text"
	RoleNone        Role = "none"
)

var roles = []Role{
	RoleButton, RoleTextField, RoleProgressBar, RoleHeading, RoleImage,
	RoleLink, RoleCheckbox, RoleSlider, RoleList, RoleDialog,
	RoleAlert, RoleGroup, RoleRegion, RoleText, RoleNone,
}

// RoleNames lists every valid role literal in declaration order.
func RoleNames() []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// ParseRole returns the role named s.
func ParseRole(s string) (Role, bool) {
	if slices.Contains(roles, Role(s)) {
		return Role(s), true
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// LiveRegion controls how updates to dynamic content are announced.
type LiveRegion string

const (
	// Polite announces updates when the user is idle.
	Polite LiveRegion = "polite"
	// Assertive interrupts current speech.
	Assertive LiveRegion = "assertive"
)

// ParseLiveRegion returns the live region named s.
func ParseLiveRegion(s string) (LiveRegion, bool) {
	switch LiveRegion(s) {
	case Polite, Assertive:
		return LiveRegion(s), true
	}
	return "", false
}

func (l LiveRegion) String() string { return string(l) }

// DefaultRole maps a component type to its role. Unknown types map to
// RoleNone.
func DefaultRole(componentType string) Role {
	switch componentType {
	case "Button":
		return RoleButton
	case "TextInput":
		return RoleTextField
	case "Text":
		return RoleText
	case "ProgressBar":
		return RoleProgressBar
	case "Column", "Row":
		return RoleGroup
	case "Scroll":
		return RoleRegion
	case "ScrollList":
		return RoleList
	case "Modal":
		return RoleDialog
	case "Toast":
		return RoleAlert
	}
	return RoleNone
}
