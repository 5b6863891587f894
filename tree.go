package surface

// Tree returns the surface as generic Go values (map[string]any, []any,
// string, float64, int64, bool and nil) shaped exactly like the wire
// document. It is the interchange form for the msgpack codec and for Query.
func (s Surface) Tree() map[string]any {
	return map[string]any{"root": nodeTree(&s.Root)}
}

// Tree returns the node in generic form; see Surface.Tree.
func (n Node) Tree() map[string]any { return nodeTree(&n) }

func nodeTree(n *Node) map[string]any {
	children := make([]any, len(n.Children))
	for i := range n.Children {
		children[i] = nodeTree(&n.Children[i])
	}
	return map[string]any{
		"type":     n.Type,
		"props":    recordTree(n.Props),
		"children": children,
	}
}

func recordTree(r Record) map[string]any {
	m := make(map[string]any, r.Len())
	for k, v := range r.All() {
		m[k] = valueTree(v)
	}
	return m
}

// valueTree converts one value. Lambda ids become int64 so JSONPath filters
// compare them like any other integer.
func valueTree(v PropValue) any {
	switch x := v.(type) {
	case nil, Nil:
		return nil
	case String:
		return string(x)
	case Number:
		return float64(x)
	case Bool:
		return bool(x)
	case Color:
		return map[string]any{"r": x.R, "g": x.G, "b": x.B, "a": x.A}
	case ActionRef:
		m := map[string]any{keyAction: x.Action}
		if len(x.Args) > 0 {
			m[keyArgs] = listTree(x.Args)
		}
		return m
	case Lambda:
		return map[string]any{keyLambda: int64(x.ID)}
	case List:
		return listTree(x)
	case Record:
		return recordTree(x)
	}
	return nil
}

func listTree(l List) []any {
	out := make([]any, len(l))
	for i, e := range l {
		out[i] = valueTree(e)
	}
	return out
}
