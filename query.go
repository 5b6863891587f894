package surface

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
)

// Query evaluates a JSONPath expression against the generic form of the
// surface (see Tree) and returns the matched values in document order.
//
//	s.Query("$..children[?(@.type == 'Button')].props.label")
func (s Surface) Query(expr string) ([]any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", expr, err)
	}
	return x.Get(s.Tree()), nil
}

// Find returns the JSON Pointer and node of every node whose type matches
// componentType, depth-first with parents first.
func (s *Surface) Find(componentType string) (ptrs []string, nodes []*Node) {
	s.Root.Walk(func(ptr string, n *Node) bool {
		if n.Type == componentType {
			ptrs = append(ptrs, "/root"+ptr)
			nodes = append(nodes, n)
		}
		return true
	})
	return ptrs, nodes
}
