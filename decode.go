package surface

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	json "github.com/goccy/go-json"

	eng "github.com/reoring/surface/internal/engine"
)

// Decode parses a wire document ({"root": <node>}) into a Surface.
//
// Duplicate object keys are rejected unless opts relax Strictness. Every
// structural defect found in the document is reported in one Issues error.
func Decode(data []byte, opts ...DecodeOpt) (Surface, error) {
	tree, err := decodeTree(data, resolveDecodeOpt(opts))
	if err != nil {
		return Surface{}, err
	}
	return surfaceFromTree(tree)
}

// DecodeReader is Decode for an io.Reader.
func DecodeReader(r io.Reader, opts ...DecodeOpt) (Surface, error) {
	o := resolveDecodeOpt(opts)
	tree, err := eng.DecodeReader(r, engineOptions(o))
	if err != nil {
		return Surface{}, fromEngineErr(err)
	}
	return surfaceFromTree(tree)
}

// DecodeNode parses a single node document ({"type","props","children"}).
func DecodeNode(data []byte, opts ...DecodeOpt) (Node, error) {
	tree, err := decodeTree(data, resolveDecodeOpt(opts))
	if err != nil {
		return Node{}, err
	}
	n, iss := nodeFromTree(tree, Root())
	if len(iss) > 0 {
		return Node{}, iss
	}
	return n, nil
}

// DecodeValue parses the wire encoding of a single PropValue.
func DecodeValue(data []byte, opts ...DecodeOpt) (PropValue, error) {
	tree, err := decodeTree(data, resolveDecodeOpt(opts))
	if err != nil {
		return nil, err
	}
	v, iss := propFromTree(tree, Root())
	if len(iss) > 0 {
		return nil, iss
	}
	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler with the default decode options.
func (s *Surface) UnmarshalJSON(data []byte) error {
	out, err := Decode(data)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Node) UnmarshalJSON(data []byte) error {
	out, err := DecodeNode(data)
	if err != nil {
		return err
	}
	*n = out
	return nil
}

// UnmarshalJSON accepts a JSON object only.
func (r *Record) UnmarshalJSON(data []byte) error {
	tree, err := decodeTree(data, DefaultDecodeOpt())
	if err != nil {
		return err
	}
	m, ok := tree.(map[string]any)
	if !ok {
		return Issues{Root().Issue(CodeInvalidType, fmt.Sprintf("expected record, got %s", treeTypeName(tree)))}
	}
	rec, iss := recordFromTree(m, Root())
	if len(iss) > 0 {
		return iss
	}
	*r = rec
	return nil
}

func decodeTree(data []byte, o DecodeOpt) (any, error) {
	tree, err := eng.DecodeBytes(data, engineOptions(o))
	if err != nil {
		return nil, fromEngineErr(err)
	}
	return tree, nil
}

func engineOptions(o DecodeOpt) eng.Options {
	eo := eng.Options{OnDuplicate: toEngineDup(o.Strictness.OnDuplicateKey), MaxDepth: o.MaxDepth}
	if o.OnWarn != nil {
		warn := o.OnWarn
		eo.IssueSink = func(si eng.SimpleIssue) {
			warn(Issue{Code: si.Code, Path: si.Path, Message: si.Message})
		}
	}
	return eo
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromEngineErr(err error) error {
	if ie, ok := err.(eng.IssueError); ok {
		return Issues{{Code: ie.Code, Path: ie.Path, Message: ie.Message, Cause: err}}
	}
	return Issues{{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err}}
}

func surfaceFromTree(tree any) (Surface, error) {
	m, ok := asMap(tree)
	if !ok {
		return Surface{}, Issues{Root().Issue(CodeInvalidType, fmt.Sprintf("surface: expected object, got %s", treeTypeName(tree)))}
	}
	var iss Issues
	for _, k := range sortedKeys(m) {
		if k != "root" {
			iss = AppendIssues(iss, Root().Field(k).Issue(CodeUnknownKey, fmt.Sprintf("surface: unknown key '%s'", k), "key", k))
		}
	}
	raw, ok := m["root"]
	if !ok {
		iss = AppendIssues(iss, Root().Field("root").Issue(CodeRequired, "surface.root: required field missing"))
		return Surface{}, iss
	}
	root, more := nodeFromTree(raw, Root().Field("root"))
	iss = append(iss, more...)
	if len(iss) > 0 {
		return Surface{}, iss
	}
	return New(root), nil
}

func nodeFromTree(tree any, path PathRef) (Node, Issues) {
	m, ok := asMap(tree)
	if !ok {
		return Node{}, Issues{path.Issue(CodeInvalidType, fmt.Sprintf("node: expected object, got %s", treeTypeName(tree)))}
	}
	var (
		n   Node
		iss Issues
	)
	switch t := m["type"].(type) {
	case string:
		n.Type = t
	case nil:
		iss = AppendIssues(iss, path.Field("type").Issue(CodeRequired, "node.type: required field missing"))
	default:
		iss = AppendIssues(iss, path.Field("type").Issue(CodeInvalidType, fmt.Sprintf("node.type: expected string, got %s", treeTypeName(t))))
	}
	if raw, ok := m["props"]; ok && raw != nil {
		pm, ok := asMap(raw)
		if !ok {
			iss = AppendIssues(iss, path.Field("props").Issue(CodeInvalidType, fmt.Sprintf("node.props: expected object, got %s", treeTypeName(raw))))
		} else {
			props, more := recordFromTree(pm, path.Field("props"))
			n.Props = props
			iss = append(iss, more...)
		}
	}
	if raw, ok := m["children"]; ok && raw != nil {
		arr, ok := raw.([]any)
		if !ok {
			iss = AppendIssues(iss, path.Field("children").Issue(CodeInvalidType, fmt.Sprintf("node.children: expected array, got %s", treeTypeName(raw))))
		} else {
			for i, c := range arr {
				child, more := nodeFromTree(c, path.Field("children").Index(i))
				iss = append(iss, more...)
				n.Children = append(n.Children, child)
			}
		}
	}
	for _, k := range sortedKeys(m) {
		switch k {
		case "type", "props", "children":
		default:
			iss = AppendIssues(iss, path.Field(k).Issue(CodeUnknownKey, fmt.Sprintf("node: unknown key '%s'", k), "key", k))
		}
	}
	return n, iss
}

// propFromTree maps a generic decoded value onto the PropValue union.
// Objects carrying the reserved keys become ActionRef or Lambda, an object
// holding exactly numeric r, g, b and a becomes Color, anything else is a
// Record.
func propFromTree(tree any, path PathRef) (PropValue, Issues) {
	switch x := tree.(type) {
	case nil:
		return Nil{}, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case eng.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return nil, Issues{path.Issue(CodeOverflow, fmt.Sprintf("number %s out of range", x))}
		}
		return Number(f), nil
	case json.Number:
		return propFromTree(eng.Number(x), path)
	case []any:
		out := make(List, 0, len(x))
		var iss Issues
		for i, e := range x {
			v, more := propFromTree(e, path.Index(i))
			iss = append(iss, more...)
			out = append(out, v)
		}
		return out, iss
	}
	if m, ok := asMap(tree); ok {
		if _, ok := m[keyLambda]; ok {
			return lambdaFromTree(m, path)
		}
		if _, ok := m[keyAction]; ok {
			return actionFromTree(m, path)
		}
		if c, ok := colorFromTree(m); ok {
			return c, nil
		}
		return recordFromTree(m, path)
	}
	if f, ok := toFloat(tree); ok {
		return Number(f), nil
	}
	return nil, Issues{path.Issue(CodeInvalidType, fmt.Sprintf("unsupported value of type %T", tree))}
}

func recordFromTree(m map[string]any, path PathRef) (Record, Issues) {
	var (
		rec Record
		iss Issues
	)
	for _, k := range sortedKeys(m) {
		v, more := propFromTree(m[k], path.Field(k))
		iss = append(iss, more...)
		rec.Set(k, v)
	}
	return rec, iss
}

func lambdaFromTree(m map[string]any, path PathRef) (PropValue, Issues) {
	p := path.Field(keyLambda)
	if len(m) != 1 {
		return nil, Issues{path.Issue(CodeInvalidType, "lambda: '__lambda' must be the only key")}
	}
	id, ok := lambdaID(m[keyLambda])
	if !ok {
		return nil, Issues{p.Issue(CodeInvalidType, fmt.Sprintf("lambda: expected unsigned 32-bit id, got %v", m[keyLambda]))}
	}
	return Lambda{ID: id}, nil
}

func lambdaID(v any) (uint32, bool) {
	switch x := v.(type) {
	case eng.Number:
		n, err := strconv.ParseUint(string(x), 10, 32)
		return uint32(n), err == nil
	case json.Number:
		return lambdaID(eng.Number(x))
	}
	f, ok := toFloat(v)
	if !ok || f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		return 0, false
	}
	return uint32(f), true
}

func actionFromTree(m map[string]any, path PathRef) (PropValue, Issues) {
	var iss Issues
	ref := ActionRef{}
	if name, ok := m[keyAction].(string); ok {
		ref.Action = name
	} else {
		iss = AppendIssues(iss, path.Field(keyAction).Issue(CodeInvalidType, fmt.Sprintf("action: expected string name, got %s", treeTypeName(m[keyAction]))))
	}
	if raw, ok := m[keyArgs]; ok {
		arr, ok := raw.([]any)
		if !ok {
			iss = AppendIssues(iss, path.Field(keyArgs).Issue(CodeInvalidType, fmt.Sprintf("action: expected args array, got %s", treeTypeName(raw))))
		} else if len(arr) > 0 {
			args, more := propFromTree(arr, path.Field(keyArgs))
			iss = append(iss, more...)
			if l, ok := args.(List); ok {
				ref.Args = l
			}
		}
	}
	for _, k := range sortedKeys(m) {
		if k != keyAction && k != keyArgs {
			iss = AppendIssues(iss, path.Field(k).Issue(CodeUnknownKey, fmt.Sprintf("action: unknown key '%s'", k), "key", k))
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return ref, nil
}

func colorFromTree(m map[string]any) (Color, bool) {
	if len(m) != 4 {
		return Color{}, false
	}
	var c Color
	for _, ch := range []struct {
		key string
		dst *float64
	}{{"r", &c.R}, {"g", &c.G}, {"b", &c.B}, {"a", &c.A}} {
		raw, ok := m[ch.key]
		if !ok {
			return Color{}, false
		}
		v, iss := propFromTree(raw, Root())
		n, isNum := v.(Number)
		if len(iss) > 0 || !isNum {
			return Color{}, false
		}
		*ch.dst = float64(n)
	}
	return c, true
}

// asMap normalizes the object shapes produced by the JSON, YAML and msgpack
// decoders.
func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = e
		}
		return out, true
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func treeTypeName(v any) string {
	switch v.(type) {
	case nil:
		return TypeNil
	case string:
		return TypeString
	case bool:
		return TypeBool
	case eng.Number, json.Number:
		return TypeNumber
	case []any:
		return TypeList
	case map[string]any, map[any]any:
		return "object"
	}
	if _, ok := toFloat(v); ok {
		return TypeNumber
	}
	return fmt.Sprintf("%T", v)
}
