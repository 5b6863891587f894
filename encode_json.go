package surface

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// Reserved keys distinguishing callback references from plain records.
const (
	keyAction = "__action"
	keyArgs   = "__args"
	keyLambda = "__lambda"
)

// appendValue writes the wire encoding of v to dst.
func appendValue(dst []byte, v PropValue, path PathRef) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return append(dst, "null"...), nil
	case String:
		return appendString(dst, string(x))
	case Number:
		return appendNumber(dst, float64(x), path)
	case Bool:
		return strconv.AppendBool(dst, bool(x)), nil
	case Nil:
		return append(dst, "null"...), nil
	case Color:
		var err error
		for i, ch := range []struct {
			key string
			val float64
		}{{"r", x.R}, {"g", x.G}, {"b", x.B}, {"a", x.A}} {
			if i == 0 {
				dst = append(dst, '{')
			} else {
				dst = append(dst, ',')
			}
			dst = append(dst, '"')
			dst = append(dst, ch.key...)
			dst = append(dst, '"', ':')
			if dst, err = appendNumber(dst, ch.val, path.Field(ch.key)); err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	case ActionRef:
		dst = append(dst, `{"__action":`...)
		dst, err := appendString(dst, x.Action)
		if err != nil {
			return nil, err
		}
		if len(x.Args) > 0 {
			dst = append(dst, `,"__args":`...)
			if dst, err = appendList(dst, x.Args, path.Field(keyArgs)); err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	case Lambda:
		dst = append(dst, `{"__lambda":`...)
		dst = strconv.AppendUint(dst, uint64(x.ID), 10)
		return append(dst, '}'), nil
	case List:
		return appendList(dst, x, path)
	case Record:
		return appendRecord(dst, x, path)
	}
	return nil, fmt.Errorf("surface: cannot encode %T at %s", v, path.Pointer())
}

func appendString(dst []byte, s string) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

func appendNumber(dst []byte, f float64, path PathRef) ([]byte, error) {
	if !isFinite(f) {
		return nil, Issues{path.Issue(CodeOverflow, fmt.Sprintf("non-finite number %v cannot be encoded", f))}
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

func appendList(dst []byte, l List, path PathRef) ([]byte, error) {
	dst = append(dst, '[')
	var err error
	for i, e := range l {
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendValue(dst, e, path.Index(i)); err != nil {
			return nil, err
		}
	}
	return append(dst, ']'), nil
}

func appendRecord(dst []byte, r Record, path PathRef) ([]byte, error) {
	dst = append(dst, '{')
	var err error
	i := 0
	for k, v := range r.All() {
		if i > 0 {
			dst = append(dst, ',')
		}
		i++
		if dst, err = appendString(dst, k); err != nil {
			return nil, err
		}
		dst = append(dst, ':')
		if dst, err = appendValue(dst, v, path.Field(k)); err != nil {
			return nil, err
		}
	}
	return append(dst, '}'), nil
}

func appendNode(dst []byte, n *Node, path PathRef) ([]byte, error) {
	dst = append(dst, `{"type":`...)
	dst, err := appendString(dst, n.Type)
	if err != nil {
		return nil, err
	}
	dst = append(dst, `,"props":`...)
	if dst, err = appendRecord(dst, n.Props, path.Field("props")); err != nil {
		return nil, err
	}
	dst = append(dst, `,"children":[`...)
	for i := range n.Children {
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendNode(dst, &n.Children[i], path.Field("children").Index(i)); err != nil {
			return nil, err
		}
	}
	return append(dst, ']', '}'), nil
}

func (s String) MarshalJSON() ([]byte, error)    { return appendValue(nil, s, Root()) }
func (n Number) MarshalJSON() ([]byte, error)    { return appendValue(nil, n, Root()) }
func (b Bool) MarshalJSON() ([]byte, error)      { return appendValue(nil, b, Root()) }
func (n Nil) MarshalJSON() ([]byte, error)       { return appendValue(nil, n, Root()) }
func (c Color) MarshalJSON() ([]byte, error)     { return appendValue(nil, c, Root()) }
func (a ActionRef) MarshalJSON() ([]byte, error) { return appendValue(nil, a, Root()) }
func (l Lambda) MarshalJSON() ([]byte, error)    { return appendValue(nil, l, Root()) }
func (l List) MarshalJSON() ([]byte, error)      { return appendValue(nil, l, Root()) }
func (r Record) MarshalJSON() ([]byte, error)    { return appendValue(nil, r, Root()) }

// MarshalJSON encodes the node as {"type","props","children"}. Children is
// always an array, empty for leaves.
func (n Node) MarshalJSON() ([]byte, error) { return appendNode(nil, &n, Root()) }

// MarshalJSON encodes the surface as {"root": <node>}.
func (s Surface) MarshalJSON() ([]byte, error) {
	dst := append(make([]byte, 0, 256), `{"root":`...)
	dst, err := appendNode(dst, &s.Root, Root().Field("root"))
	if err != nil {
		return nil, err
	}
	return append(dst, '}'), nil
}

// JSON returns the compact wire encoding. Identical trees always produce
// identical bytes.
//
// It panics if the tree holds a non-finite number, which no builder can
// produce.
func (s Surface) JSON() []byte {
	b, err := s.MarshalJSON()
	if err != nil {
		panic(fmt.Sprintf("surface: encode: %v", err))
	}
	return b
}

// PrettyJSON is JSON indented with two spaces. It panics under the same
// conditions as JSON.
func (s Surface) PrettyJSON() []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, s.JSON(), "", "  "); err != nil {
		panic(fmt.Sprintf("surface: indent: %v", err))
	}
	return buf.Bytes()
}

// String returns the compact JSON text.
func (s Surface) String() string { return string(s.JSON()) }
