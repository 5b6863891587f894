package validate_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/surface"
	c "github.com/reoring/surface/components"
	"github.com/reoring/surface/validate"
)

type issue struct{ Path, Code, Message string }

func flatten(iss surface.Issues) []issue {
	out := make([]issue, 0, len(iss))
	for _, it := range iss {
		out = append(out, issue{it.Path, it.Code, it.Message})
	}
	return out
}

func node(typ string, kv ...any) surface.Node {
	n := surface.NewNode(typ)
	for i := 0; i+1 < len(kv); i += 2 {
		n.SetProp(kv[i].(string), kv[i+1].(surface.PropValue))
	}
	return n
}

func TestBuiltNodesAreValid(t *testing.T) {
	items := surface.ListOf(surface.String("a"))
	nodes := []surface.Node{
		c.Column(c.Text("x").Build()).Spacing(4).Align(surface.AlignCenter).Padding(surface.Sides(1, 2, 3, 4)).Build(),
		c.Row().Padding(surface.Uniform(2)).Build(),
		c.Scroll(c.Text("y").Build()).Direction(c.Both).Build(),
		c.Text("hello").Size(c.SizeDisplay).Weight(c.WeightMedium).Align(c.TextEnd).MaxLines(2).Overflow(c.OverflowEllipsis).Color(surface.RGB(0, 0, 0)).Build(),
		c.ProgressBar(0.4).Background(surface.RGB(1, 1, 1)).Height(4).Build(),
		c.Button("Go", surface.Action("go")).Variant(c.TextOnly).Icon("plus").Disabled(false).Loading(true).Build(),
		c.TextInput("", surface.Lambda{ID: 1}).Keyboard(c.KeyboardEmail).MaxLength(20).Multiline(true).Build(),
		c.ScrollList(items, surface.Lambda{ID: 2}, surface.Lambda{ID: 3}).OnReorder(surface.Lambda{ID: 4}).Build(),
		c.Modal(false, surface.Action("close"), c.Text("body").Build()).Title("T").Build(),
		c.Toast("done").Duration(3000).Type(c.ToastWarning).Build(),
	}
	for _, n := range nodes {
		if iss := validate.Tree(n); len(iss) != 0 {
			t.Fatalf("%s: unexpected issues: %v", n.Type, iss)
		}
	}
}

func TestNode_MissingRequired(t *testing.T) {
	got := flatten(validate.Interactive(node("Button")))
	want := []issue{
		{"/props/label", surface.CodeRequired, "Button.label: required prop missing"},
		{"/props/on_tap", surface.CodeRequired, "Button.on_tap: required prop missing"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
}

func TestNode_IssueOrder(t *testing.T) {
	n := node("Text",
		"value", surface.Number(3),
		"size", surface.String("huge"),
		"foo", surface.Bool(true),
	)
	n.AddChild(node("Text", "value", surface.String("child")))
	got := flatten(validate.Content(n))
	want := []issue{
		{"/props/value", surface.CodeInvalidType, "Text.value: expected string, got number"},
		{"/props/size", surface.CodeInvalidEnum, `Text.size: expected one of [small, body, title, heading, display], got "huge"`},
		{"/children", surface.CodeChildrenNotAllowed, "Text: does not accept children, but got 1"},
		{"/props/foo", surface.CodeUnknownKey, "Text: unknown prop 'foo'"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
	iss := validate.Content(n)
	if iss[1].Hint != "use one of: small, body, title, heading, display" {
		t.Fatalf("enum hint: %q", iss[1].Hint)
	}
	if iss[0].Hint != "" {
		t.Fatalf("type issue should carry no hint: %q", iss[0].Hint)
	}
}

func TestNode_ThreeDefectsThreeIssues(t *testing.T) {
	n := node("Button",
		"label", surface.String("ok"),
		"on_tap", surface.String("not an action"),
		"variant", surface.String("big"),
		"zzz", surface.Nil{},
	)
	iss := validate.Node(n)
	if len(iss) != 3 {
		t.Fatalf("expected 3 issues, got %v", iss)
	}
	codes := []string{iss[0].Code, iss[1].Code, iss[2].Code}
	if diff := cmp.Diff([]string{surface.CodeInvalidType, surface.CodeInvalidEnum, surface.CodeUnknownKey}, codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	if iss[0].Message != "Button.on_tap: expected action, got string" {
		t.Fatalf("message: %s", iss[0].Message)
	}
}

func TestNode_UnknownKeysSorted(t *testing.T) {
	n := c.Toast("hi").Build()
	n.SetProp("zeta", surface.Nil{})
	n.SetProp("alpha", surface.Nil{})
	got := validate.Feedback(n).Messages()
	want := []string{"Toast: unknown prop 'alpha'", "Toast: unknown prop 'zeta'"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages (-want +got):\n%s", diff)
	}
}

func TestCategory_UnknownComponent(t *testing.T) {
	cases := []struct {
		fn   func(surface.Node) surface.Issues
		n    surface.Node
		want string
	}{
		{validate.Layout, node("Foo"), "Unknown layout component: Foo"},
		{validate.Content, node("Foo"), "Unknown content component: Foo"},
		{validate.Interactive, node("Foo"), "Unknown interactive component: Foo"},
		{validate.List, node("Foo"), "Unknown list component: Foo"},
		{validate.Feedback, node("Foo"), "Unknown feedback component: Foo"},
		{validate.Layout, c.Text("registered elsewhere").Build(), "Unknown layout component: Text"},
		{validate.Node, node("Foo"), "Unknown component: Foo"},
	}
	for _, tc := range cases {
		iss := tc.fn(tc.n)
		if len(iss) != 1 || iss[0].Message != tc.want || iss[0].Path != "/type" || iss[0].Code != surface.CodeUnknownComponent {
			t.Fatalf("%s: got %v", tc.want, flatten(iss))
		}
		if !errors.Is(iss, surface.ErrUnknownComponent) {
			t.Fatalf("%s: cause should be ErrUnknownComponent", tc.want)
		}
	}
}

func TestNode_AccessibleDelegation(t *testing.T) {
	n := c.Button("Go", surface.Action("go")).Build()
	var acc surface.Record
	acc.Set("role", surface.String("widget"))
	n.SetProp("accessible", acc)
	got := flatten(validate.Node(n))
	if len(got) != 2 {
		t.Fatalf("expected 2 issues, got %v", got)
	}
	if got[0].Path != "/props/accessible/label" || got[0].Message != "Button.accessible.label: required field missing" {
		t.Fatalf("label issue: %+v", got[0])
	}
	if got[1].Path != "/props/accessible/role" || got[1].Code != surface.CodeUnknownRole {
		t.Fatalf("role issue: %+v", got[1])
	}

	n.SetProp("accessible", surface.String("nope"))
	got = flatten(validate.Node(n))
	want := []issue{{"/props/accessible", surface.CodeInvalidType, "Button.accessible: expected record, got string"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
}

func TestNode_EdgesAndAlignment(t *testing.T) {
	n := node("Column",
		"padding", surface.String("8"),
		"align", surface.String("middle"),
	)
	got := validate.Layout(n).Messages()
	want := []string{
		`Column.align: expected one of [start, center, end, stretch, space_between, space_around], got "middle"`,
		"Column.padding: expected number or edges record, got string",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages (-want +got):\n%s", diff)
	}
}

func TestSurface_Paths(t *testing.T) {
	bad := node("Text")
	s := surface.New(c.Column(
		c.Text("ok").Build(),
		c.Row(bad, node("Chart")).Build(),
	).Build())
	err := validate.Surface(s)
	iss, ok := surface.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	want := []issue{
		{"/root/children/1/children/0/props/value", surface.CodeRequired, "Text.value: required prop missing"},
		{"/root/children/1/children/1/type", surface.CodeUnknownComponent, "Unknown component: Chart"},
	}
	if diff := cmp.Diff(want, flatten(iss)); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
	if !surface.IsUnknownComponent(err) {
		t.Fatalf("IsUnknownComponent should see nested causes")
	}

	if err := validate.Surface(surface.New(c.Column().Build())); err != nil {
		t.Fatalf("valid surface: %v", err)
	}
}
