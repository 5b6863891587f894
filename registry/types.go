package registry

import (
	"slices"
	"strings"

	"github.com/reoring/surface"
)

// Category groups components by the validator that checks them.
type Category string

const (
	Layout      Category = "layout"
	Content     Category = "content"
	Interactive Category = "interactive"
	List        Category = "list"
	Feedback    Category = "feedback"
)

// Categories lists every category in validator order.
func Categories() []Category { return []Category{Layout, Content, Interactive, List, Feedback} }

// Kind is the shape a prop value must have.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindColor
	KindAction
	KindLambda
	KindList
	KindRecord
	// KindEnum is a string restricted to PropType.Enum.
	KindEnum
	// KindEdges is a Number or a {top,bottom,start,end} record.
	KindEdges
	// KindAlignment is a string restricted to surface.Alignments.
	KindAlignment
)

// PropType describes the accepted values of one prop.
type PropType struct {
	Kind Kind
	Enum []string // allowed literals for KindEnum
}

var (
	StringType    = PropType{Kind: KindString}
	NumberType    = PropType{Kind: KindNumber}
	BoolType      = PropType{Kind: KindBool}
	ColorType     = PropType{Kind: KindColor}
	ActionType    = PropType{Kind: KindAction}
	LambdaType    = PropType{Kind: KindLambda}
	ListType      = PropType{Kind: KindList}
	RecordType    = PropType{Kind: KindRecord}
	EdgesType     = PropType{Kind: KindEdges}
	AlignmentType = PropType{Kind: KindAlignment}
)

// EnumType returns a string-enum type.
func EnumType(values ...string) PropType { return PropType{Kind: KindEnum, Enum: values} }

// Allowed returns the enum literals for KindEnum and KindAlignment.
func (t PropType) Allowed() []string {
	switch t.Kind {
	case KindEnum:
		return slices.Clone(t.Enum)
	case KindAlignment:
		return surface.Alignments()
	}
	return nil
}

// IsEnum reports whether the type is a string restricted to fixed literals.
func (t PropType) IsEnum() bool { return t.Kind == KindEnum || t.Kind == KindAlignment }

// Expected is the type name used in "expected X, got Y" messages.
func (t PropType) Expected() string {
	switch t.Kind {
	case KindString, KindEnum, KindAlignment:
		return surface.TypeString
	case KindNumber:
		return surface.TypeNumber
	case KindBool:
		return surface.TypeBool
	case KindColor:
		return surface.TypeColor
	case KindAction:
		return surface.TypeAction
	case KindLambda:
		return surface.TypeLambda
	case KindList:
		return surface.TypeList
	case KindRecord:
		return surface.TypeRecord
	case KindEdges:
		return "number or edges record"
	}
	return "unknown"
}

// String renders the type for listings, e.g. enum(filled|outlined|text).
func (t PropType) String() string {
	switch t.Kind {
	case KindEnum:
		return "enum(" + strings.Join(t.Enum, "|") + ")"
	case KindEdges:
		return "edges"
	case KindAlignment:
		return "alignment"
	}
	return t.Expected()
}

// HasShape reports whether v has the variant required by t, ignoring enum
// membership.
func (t PropType) HasShape(v surface.PropValue) bool {
	switch t.Kind {
	case KindString, KindEnum, KindAlignment:
		_, ok := v.(surface.String)
		return ok
	case KindNumber:
		_, ok := v.(surface.Number)
		return ok
	case KindBool:
		_, ok := v.(surface.Bool)
		return ok
	case KindColor:
		_, ok := v.(surface.Color)
		return ok
	case KindAction:
		_, ok := v.(surface.ActionRef)
		return ok
	case KindLambda:
		_, ok := v.(surface.Lambda)
		return ok
	case KindList:
		_, ok := v.(surface.List)
		return ok
	case KindRecord:
		_, ok := v.(surface.Record)
		return ok
	case KindEdges:
		_, ok := surface.EdgesFromProp(v)
		return ok
	}
	return false
}

// Accepts reports whether v is a valid value of t, including enum
// membership.
func (t PropType) Accepts(v surface.PropValue) bool {
	if !t.HasShape(v) {
		return false
	}
	if t.IsEnum() {
		return slices.Contains(t.Allowed(), string(v.(surface.String)))
	}
	return true
}

// Requirement says whether a prop must be present.
type Requirement int

const (
	Optional Requirement = iota
	Required
)

func (r Requirement) String() string {
	if r == Required {
		return "required"
	}
	return "optional"
}

// PropDef describes one prop of a component.
type PropDef struct {
	Name        string
	Requirement Requirement
	Type        PropType
	Description string
}

// ComponentDef is the schema of one component.
type ComponentDef struct {
	Name            string
	Category        Category
	AcceptsChildren bool
	// Props are in schema order: required props first.
	Props       []PropDef
	Description string
}

// Prop returns the definition of the named prop.
func (d ComponentDef) Prop(name string) (PropDef, bool) {
	for _, p := range d.Props {
		if p.Name == name {
			return p, true
		}
	}
	return PropDef{}, false
}

// RequiredProps returns required props in schema order.
func (d ComponentDef) RequiredProps() []PropDef { return d.filter(Required) }

// OptionalProps returns optional props in schema order.
func (d ComponentDef) OptionalProps() []PropDef { return d.filter(Optional) }

func (d ComponentDef) filter(r Requirement) []PropDef {
	var out []PropDef
	for _, p := range d.Props {
		if p.Requirement == r {
			out = append(out, p)
		}
	}
	return out
}

// Known reports whether key is declared by the schema.
func (d ComponentDef) Known(key string) bool {
	_, ok := d.Prop(key)
	return ok
}
