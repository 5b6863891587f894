package surface

import (
	"fmt"
	"math"
	"reflect"
)

// PropValue is a value a component prop can hold.
//
// The set of implementations is closed: String, Number, Bool, Nil, Color,
// ActionRef, Lambda, List and Record. Consumers switch over these nine types;
// a default branch in such a switch is unreachable.
type PropValue interface {
	// TypeName returns the lowercase variant name used in validation messages.
	TypeName() string
	// Equal reports structural equality.
	Equal(PropValue) bool
	isPropValue()
}

// Variant type names returned by TypeName.
const (
	TypeString = "string"
	TypeNumber = "number"
	TypeBool   = "bool"
	TypeNil    = "nil"
	TypeColor  = "color"
	TypeAction = "action"
	TypeLambda = "lambda"
	TypeList   = "list"
	TypeRecord = "record"
)

// String is a plain string value (label: "Click me").
type String string

// Number is a 64-bit float value (spacing: 8).
type Number float64

// Bool is a boolean value (disabled: true).
type Bool bool

// Nil is the null value.
type Nil struct{}

// Color is an RGBA color. Channels are documented as 0.0-1.0 but are not
// range-checked.
type Color struct {
	R, G, B, A float64
}

// ActionRef names a host-side action, optionally with arguments.
// A nil or empty Args serializes without the "__args" key.
type ActionRef struct {
	Action string
	Args   List
}

// Lambda references a callback by id; the host resolves it at dispatch time.
type Lambda struct {
	ID uint32
}

// List is an ordered sequence of values.
type List []PropValue

func (String) isPropValue()    {}
func (Number) isPropValue()    {}
func (Bool) isPropValue()      {}
func (Nil) isPropValue()       {}
func (Color) isPropValue()     {}
func (ActionRef) isPropValue() {}
func (Lambda) isPropValue()    {}
func (List) isPropValue()      {}

func (String) TypeName() string    { return TypeString }
func (Number) TypeName() string    { return TypeNumber }
func (Bool) TypeName() string      { return TypeBool }
func (Nil) TypeName() string       { return TypeNil }
func (Color) TypeName() string     { return TypeColor }
func (ActionRef) TypeName() string { return TypeAction }
func (Lambda) TypeName() string    { return TypeLambda }
func (List) TypeName() string      { return TypeList }

func (s String) Equal(v PropValue) bool {
	o, ok := v.(String)
	return ok && s == o
}

func (n Number) Equal(v PropValue) bool {
	o, ok := v.(Number)
	return ok && n == o
}

func (b Bool) Equal(v PropValue) bool {
	o, ok := v.(Bool)
	return ok && b == o
}

func (Nil) Equal(v PropValue) bool {
	_, ok := v.(Nil)
	return ok
}

func (c Color) Equal(v PropValue) bool {
	o, ok := v.(Color)
	return ok && c == o
}

func (a ActionRef) Equal(v PropValue) bool {
	o, ok := v.(ActionRef)
	return ok && a.Action == o.Action && a.Args.Equal(o.Args)
}

func (l Lambda) Equal(v PropValue) bool {
	o, ok := v.(Lambda)
	return ok && l == o
}

// Equal compares element-wise. A nil List equals an empty one.
func (l List) Equal(v PropValue) bool {
	o, ok := v.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !Equal(l[i], o[i]) {
			return false
		}
	}
	return true
}

// Equal compares two values, treating a nil interface as Nil.
func Equal(a, b PropValue) bool {
	if a == nil {
		a = Nil{}
	}
	if b == nil {
		b = Nil{}
	}
	return a.Equal(b)
}

// Action creates an action reference. Without args the reference serializes
// as {"__action": name}.
func Action(name string, args ...PropValue) ActionRef {
	ref := ActionRef{Action: name}
	if len(args) > 0 {
		ref.Args = append(List{}, args...)
	}
	return ref
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// ListOf copies values into a new List.
func ListOf(values ...PropValue) List { return append(List{}, values...) }

// ValueOf converts a Go literal into a PropValue. Supported inputs are nil,
// PropValue, string, bool, every integer and float kind, []any, []PropValue,
// map[string]any and map[string]PropValue (recursively).
func ValueOf(v any) (PropValue, error) {
	switch x := v.(type) {
	case nil:
		return Nil{}, nil
	case PropValue:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case []PropValue:
		return ListOf(x...), nil
	case []any:
		out := make(List, 0, len(x))
		for i, e := range x {
			pv, err := ValueOf(e)
			if err != nil {
				return nil, fmt.Errorf("surface: list index %d: %w", i, err)
			}
			out = append(out, pv)
		}
		return out, nil
	case map[string]PropValue:
		return RecordOf(x), nil
	case map[string]any:
		var rec Record
		for k, e := range x {
			pv, err := ValueOf(e)
			if err != nil {
				return nil, fmt.Errorf("surface: record key %q: %w", k, err)
			}
			rec.Set(k, pv)
		}
		return rec, nil
	}
	if f, ok := toFloat(v); ok {
		return Number(f), nil
	}
	return nil, fmt.Errorf("surface: unsupported value type %T", v)
}

// toFloat widens any integer or float kind to float64.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
