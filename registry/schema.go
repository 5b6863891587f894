package registry

import (
	"math"

	"github.com/reoring/surface/a11y"
	"github.com/reoring/surface/jsonschema"
)

// JSONSchema describes the wire encoding of a node of this component.
func (d ComponentDef) JSONSchema() *jsonschema.Schema {
	props := &jsonschema.Schema{
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema, len(d.Props)),
		AdditionalProperties: false,
	}
	for _, p := range d.Props {
		s := propSchema(p.Type)
		if p.Name == AccessibleProp {
			s = accessibleSchema()
		}
		s.Description = p.Description
		props.Properties[p.Name] = s
		if p.Requirement == Required {
			props.Required = append(props.Required, p.Name)
		}
	}

	children := &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "object"}}
	if !d.AcceptsChildren {
		children.MaxItems = jsonschema.Int(0)
	}

	return &jsonschema.Schema{
		Schema:      jsonschema.Draft,
		Title:       d.Name,
		Description: d.Description,
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"type":     {Const: d.Name},
			"props":    props,
			"children": children,
		},
		Required:             []string{"type", "props", "children"},
		AdditionalProperties: false,
	}
}

// JSONSchemas exports every component schema keyed by name.
func (r *Registry) JSONSchemas() map[string]*jsonschema.Schema {
	out := make(map[string]*jsonschema.Schema, r.Len())
	for n, d := range r.All() {
		out[n] = d.JSONSchema()
	}
	return out
}

func propSchema(t PropType) *jsonschema.Schema {
	switch t.Kind {
	case KindString:
		return &jsonschema.Schema{Type: "string"}
	case KindNumber:
		return &jsonschema.Schema{Type: "number"}
	case KindBool:
		return &jsonschema.Schema{Type: "boolean"}
	case KindColor:
		ch := func() *jsonschema.Schema { return &jsonschema.Schema{Type: "number"} }
		return &jsonschema.Schema{
			Type:                 "object",
			Properties:           map[string]*jsonschema.Schema{"r": ch(), "g": ch(), "b": ch(), "a": ch()},
			Required:             []string{"r", "g", "b", "a"},
			AdditionalProperties: false,
		}
	case KindAction:
		return &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"__action": {Type: "string"},
				"__args":   {Type: "array", MinItems: jsonschema.Int(1)},
			},
			Required:             []string{"__action"},
			AdditionalProperties: false,
		}
	case KindLambda:
		return &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"__lambda": {Type: "integer", Minimum: jsonschema.Float(0), Maximum: jsonschema.Float(math.MaxUint32)},
			},
			Required:             []string{"__lambda"},
			AdditionalProperties: false,
		}
	case KindList:
		return &jsonschema.Schema{Type: "array"}
	case KindRecord:
		return &jsonschema.Schema{Type: "object"}
	case KindEnum, KindAlignment:
		return &jsonschema.Schema{Type: "string", Enum: anySlice(t.Allowed())}
	case KindEdges:
		side := func() *jsonschema.Schema { return &jsonschema.Schema{Type: "number"} }
		return &jsonschema.Schema{OneOf: []*jsonschema.Schema{
			{Type: "number"},
			{
				Type:                 "object",
				Properties:           map[string]*jsonschema.Schema{"top": side(), "bottom": side(), "start": side(), "end": side()},
				Required:             []string{"top", "bottom", "start", "end"},
				AdditionalProperties: false,
			},
		}}
	}
	return &jsonschema.Schema{}
}

func accessibleSchema() *jsonschema.Schema {
	str := func() *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} }
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"label":       str(),
			"hint":        str(),
			"value":       str(),
			"role":        {Type: "string", Enum: anySlice(a11y.RoleNames())},
			"live_region": {Type: "string", Enum: []any{string(a11y.Polite), string(a11y.Assertive)}},
		},
		Required:             []string{"label"},
		AdditionalProperties: false,
	}
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
