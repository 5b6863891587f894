package surface_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuery_ButtonLabels(t *testing.T) {
	res, err := counterSurface().Query("$..children[?(@.type == 'Button')].props.label")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	got := make([]string, 0, len(res))
	for _, r := range res {
		got = append(got, r.(string))
	}
	slices.Sort(got)
	if diff := cmp.Diff([]string{"Decrement", "Increment", "Reset"}, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestQuery_ReservedShapes(t *testing.T) {
	res, err := todoSurface().Query("$.root.children[1].children[0].props.on_change.__lambda")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(res) != 1 || res[0] != int64(1) {
		t.Fatalf("expected lambda id 1, got %v", res)
	}
	res, _ = todoSurface().Query("$.root.props.padding")
	if len(res) != 1 || res[0] != float64(16) {
		t.Fatalf("uniform padding should be a bare number, got %v", res)
	}
}

func TestQuery_InvalidExpression(t *testing.T) {
	if _, err := counterSurface().Query("$[?(@.x =="); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestFind(t *testing.T) {
	s := counterSurface()
	ptrs, nodes := s.Find("Button")
	want := []string{"/root/children/1/children/0", "/root/children/1/children/1", "/root/children/1/children/2"}
	if diff := cmp.Diff(want, ptrs); diff != "" {
		t.Fatalf("pointers mismatch (-want +got):\n%s", diff)
	}
	if len(nodes) != 3 || nodes[2].Type != "Button" {
		t.Fatalf("unexpected nodes: %v", nodes)
	}
}
