package a11y

import (
	"github.com/reoring/surface"
)

// PropKey is the prop under which accessibility info is attached to a node.
const PropKey = "accessible"

// Info holds the accessibility attributes of one component. Label is
// required; the remaining fields are optional and only serialize when set.
type Info struct {
	Label      string
	Hint       *string
	Role       Role       // "" when unset
	Value      *string
	LiveRegion LiveRegion // "" when unset
}

// New creates Info with the given label.
func New(label string) Info { return Info{Label: label} }

func (i Info) WithHint(hint string) Info {
	i.Hint = &hint
	return i
}

func (i Info) WithRole(role Role) Info {
	i.Role = role
	return i
}

func (i Info) WithValue(value string) Info {
	i.Value = &value
	return i
}

func (i Info) WithLiveRegion(lr LiveRegion) Info {
	i.LiveRegion = lr
	return i
}

// Record converts the info to the record stored under PropKey. Only set
// fields are present.
func (i Info) Record() surface.Record {
	var r surface.Record
	r.Set("label", surface.String(i.Label))
	if i.Hint != nil {
		r.Set("hint", surface.String(*i.Hint))
	}
	if i.Role != "" {
		r.Set("role", surface.String(i.Role))
	}
	if i.Value != nil {
		r.Set("value", surface.String(*i.Value))
	}
	if i.LiveRegion != "" {
		r.Set("live_region", surface.String(i.LiveRegion))
	}
	return r
}

// Equal compares all fields, including optional ones by value.
func (i Info) Equal(o Info) bool {
	return i.Label == o.Label && i.Role == o.Role && i.LiveRegion == o.LiveRegion &&
		eqPtr(i.Hint, o.Hint) && eqPtr(i.Value, o.Value)
}

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// InfoFromRecord reverses Info.Record. The record must pass ValidateProp;
// otherwise the returned error is the surface.Issues found.
func InfoFromRecord(r surface.Record) (Info, error) {
	if iss := ValidateProp("", r); len(iss) > 0 {
		return Info{}, iss
	}
	var info Info
	for k, v := range r.All() {
		s := string(v.(surface.String))
		switch k {
		case "label":
			info.Label = s
		case "hint":
			info.Hint = &s
		case "role":
			info.Role = Role(s)
		case "value":
			info.Value = &s
		case "live_region":
			info.LiveRegion = LiveRegion(s)
		}
	}
	return info, nil
}

// FromNode returns the info attached to n, if any and well-formed.
func FromNode(n surface.Node) (Info, bool) {
	v, ok := n.Prop(PropKey)
	if !ok {
		return Info{}, false
	}
	r, ok := v.(surface.Record)
	if !ok {
		return Info{}, false
	}
	info, err := InfoFromRecord(r)
	return info, err == nil
}
