package surface

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// YAML renders the surface as a YAML document with the same shape as the
// JSON wire format. Node keys keep the order type, props, children and prop
// keys stay sorted.
func (s Surface) YAML() ([]byte, error) {
	root, err := nodeYAML(&s.Root, Root().Field("root"))
	if err != nil {
		return nil, err
	}
	doc := mappingYAML(scalarYAML("!!str", "root"), root)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeYAML parses a YAML rendering of a surface. Duplicate mapping keys are
// rejected according to opts, like Decode.
func DecodeYAML(data []byte, opts ...DecodeOpt) (Surface, error) {
	o := resolveDecodeOpt(opts)
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Surface{}, Issues{{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err}}
	}
	y := yamlReader{opt: o}
	tree, err := y.value(&root, Root(), 0)
	if err != nil {
		return Surface{}, err
	}
	return surfaceFromTree(tree)
}

type yamlReader struct {
	opt DecodeOpt
}

func (y yamlReader) value(n *yaml.Node, path PathRef, depth int) (any, error) {
	if y.opt.MaxDepth > 0 && depth > y.opt.MaxDepth {
		return nil, Issues{path.Issue(CodeParseError, "max depth exceeded")}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return y.value(n.Content[0], path, depth)
	case yaml.AliasNode:
		return y.value(n.Alias, path, depth)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			key := k.Value
			if pos, dup := first[key]; dup {
				cause := &DuplicateKeyError{Key: key, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
				it := path.Field(key).Issue(CodeDuplicateKey, cause.Error(), "key", key)
				it.Cause = cause
				switch y.opt.Strictness.OnDuplicateKey {
				case Error:
					return nil, Issues{it}
				case Warn:
					if y.opt.OnWarn != nil {
						y.opt.OnWarn(it)
					}
				}
			} else {
				first[key] = [2]int{k.Line, k.Column}
			}
			val, err := y.value(v, path.Field(key), depth+1)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := y.value(c, path.Index(i), depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, Issues{path.Issue(CodeParseError, err.Error())}
			}
			return b, nil
		case "!!int":
			if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
				return i, nil
			}
			var f float64
			if err := n.Decode(&f); err != nil {
				return nil, Issues{path.Issue(CodeOverflow, fmt.Sprintf("number %s out of range", n.Value))}
			}
			return f, nil
		case "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return nil, Issues{path.Issue(CodeParseError, err.Error())}
			}
			if !isFinite(f) {
				return nil, Issues{path.Issue(CodeOverflow, fmt.Sprintf("non-finite number %s", n.Value))}
			}
			return f, nil
		default:
			return n.Value, nil
		}
	}
	return nil, Issues{path.Issue(CodeParseError, fmt.Sprintf("unsupported YAML node kind %d", n.Kind))}
}

func scalarYAML(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func mappingYAML(kv ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: kv}
}

func nodeYAML(n *Node, path PathRef) (*yaml.Node, error) {
	props, err := recordYAML(n.Props, path.Field("props"))
	if err != nil {
		return nil, err
	}
	children := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(n.Children) == 0 {
		children.Style = yaml.FlowStyle
	}
	for i := range n.Children {
		c, err := nodeYAML(&n.Children[i], path.Field("children").Index(i))
		if err != nil {
			return nil, err
		}
		children.Content = append(children.Content, c)
	}
	return mappingYAML(
		scalarYAML("!!str", "type"), scalarYAML("!!str", n.Type),
		scalarYAML("!!str", "props"), props,
		scalarYAML("!!str", "children"), children,
	), nil
}

func recordYAML(r Record, path PathRef) (*yaml.Node, error) {
	m := mappingYAML()
	if r.Len() == 0 {
		m.Style = yaml.FlowStyle
	}
	for k, v := range r.All() {
		vn, err := valueYAML(v, path.Field(k))
		if err != nil {
			return nil, err
		}
		m.Content = append(m.Content, scalarYAML("!!str", k), vn)
	}
	return m, nil
}

func valueYAML(v PropValue, path PathRef) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil, Nil:
		return scalarYAML("!!null", "null"), nil
	case String:
		return scalarYAML("!!str", string(x)), nil
	case Number:
		return numberYAML(float64(x), path)
	case Bool:
		return scalarYAML("!!bool", strconv.FormatBool(bool(x))), nil
	case Color:
		m := mappingYAML()
		m.Style = yaml.FlowStyle
		for _, ch := range []struct {
			key string
			val float64
		}{{"r", x.R}, {"g", x.G}, {"b", x.B}, {"a", x.A}} {
			vn, err := numberYAML(ch.val, path.Field(ch.key))
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, scalarYAML("!!str", ch.key), vn)
		}
		return m, nil
	case ActionRef:
		m := mappingYAML(scalarYAML("!!str", keyAction), scalarYAML("!!str", x.Action))
		if len(x.Args) > 0 {
			args, err := valueYAML(x.Args, path.Field(keyArgs))
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, scalarYAML("!!str", keyArgs), args)
		}
		return m, nil
	case Lambda:
		m := mappingYAML(scalarYAML("!!str", keyLambda), scalarYAML("!!int", strconv.FormatUint(uint64(x.ID), 10)))
		m.Style = yaml.FlowStyle
		return m, nil
	case List:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(x) == 0 {
			seq.Style = yaml.FlowStyle
		}
		for i, e := range x {
			en, err := valueYAML(e, path.Index(i))
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, en)
		}
		return seq, nil
	case Record:
		return recordYAML(x, path)
	}
	return nil, fmt.Errorf("surface: cannot encode %T at %s", v, path.Pointer())
}

func numberYAML(f float64, path PathRef) (*yaml.Node, error) {
	if !isFinite(f) {
		return nil, Issues{path.Issue(CodeOverflow, fmt.Sprintf("non-finite number %v cannot be encoded", f))}
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return scalarYAML("!!int", strconv.FormatInt(int64(f), 10)), nil
	}
	return scalarYAML("!!float", strconv.FormatFloat(f, 'g', -1, 64)), nil
}
