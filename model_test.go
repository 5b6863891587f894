package surface_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/surface"
	"github.com/reoring/surface/components"
	"github.com/reoring/surface/validate"
)

func TestPropValue_TypeNames(t *testing.T) {
	cases := map[string]surface.PropValue{
		"string": surface.String(""),
		"number": surface.Number(0),
		"bool":   surface.Bool(false),
		"nil":    surface.Nil{},
		"color":  surface.Color{},
		"action": surface.ActionRef{},
		"lambda": surface.Lambda{},
		"list":   surface.List{},
		"record": surface.Record{},
	}
	for want, v := range cases {
		if got := v.TypeName(); got != want {
			t.Fatalf("%T: got %q, want %q", v, got, want)
		}
	}
}

func TestPropValue_Equal(t *testing.T) {
	if !surface.Equal(surface.Action("a"), surface.ActionRef{Action: "a", Args: surface.List{}}) {
		t.Fatalf("nil and empty args should be equal")
	}
	if surface.Equal(surface.Action("a", surface.Number(1)), surface.Action("a", surface.Number(2))) {
		t.Fatalf("different args should differ")
	}
	if surface.Equal(surface.Number(1), surface.String("1")) {
		t.Fatalf("different variants should differ")
	}
	if !surface.Equal(nil, surface.Nil{}) {
		t.Fatalf("nil interface should equal Nil")
	}
	if !surface.Equal(surface.ListOf(surface.RGB(1, 1, 1)), surface.ListOf(surface.RGBA(1, 1, 1, 1))) {
		t.Fatalf("RGB should be opaque")
	}
}

func TestValueOf(t *testing.T) {
	got, err := surface.ValueOf(map[string]any{
		"n":    3,
		"u":    uint8(4),
		"f":    float32(0.5),
		"s":    "x",
		"b":    true,
		"nil":  nil,
		"list": []any{1, "two"},
	})
	if err != nil {
		t.Fatalf("ValueOf: %v", err)
	}
	want := surface.RecordOf(map[string]surface.PropValue{
		"n":    surface.Number(3),
		"u":    surface.Number(4),
		"f":    surface.Number(0.5),
		"s":    surface.String("x"),
		"b":    surface.Bool(true),
		"nil":  surface.Nil{},
		"list": surface.ListOf(surface.Number(1), surface.String("two")),
	})
	if !surface.Equal(got, want) {
		t.Fatalf("got %#v", got)
	}
	if _, err := surface.ValueOf([]any{struct{}{}}); err == nil {
		t.Fatalf("expected an error for an unsupported type")
	}
}

func TestRecord_SortedAndCloned(t *testing.T) {
	var r surface.Record
	for _, k := range []string{"weight", "size", "accessible", "value"} {
		r.Set(k, surface.String(k))
	}
	r.Set("size", surface.Number(2))
	if diff := cmp.Diff([]string{"accessible", "size", "value", "weight"}, r.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if r.Len() != 4 || !r.Has("value") || r.Has("nope") {
		t.Fatalf("unexpected record state: %v", r.Keys())
	}

	var seen []string
	for k := range r.All() {
		seen = append(seen, k)
		if k == "size" {
			break
		}
	}
	if diff := cmp.Diff([]string{"accessible", "size"}, seen); diff != "" {
		t.Fatalf("early break (-want +got):\n%s", diff)
	}

	nested := surface.RecordOf(map[string]surface.PropValue{"inner": r})
	clone := nested.Clone()
	inner, _ := clone.Get("inner")
	in := inner.(surface.Record)
	in.Set("extra", surface.Bool(true))
	if r.Has("extra") {
		t.Fatalf("clone shares storage with the original")
	}
	if !nested.Equal(nested.Clone()) {
		t.Fatalf("clone should be equal")
	}

	r.Set("nilled", nil)
	if v, _ := r.Get("nilled"); !surface.Equal(v, surface.Nil{}) {
		t.Fatalf("nil should be stored as Nil, got %#v", v)
	}
}

func TestRecord_CopiesDoNotShareWrites(t *testing.T) {
	var rec surface.Record
	rec.Set("b", surface.Number(1))
	rec.Set("d", surface.Number(2))
	before, err := rec.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	cp := rec
	cp.Set("a", surface.Bool(true))
	cp.Set("c", surface.Bool(true))
	cp.Set("d", surface.Number(9))

	if diff := cmp.Diff([]string{"b", "d"}, rec.Keys()); diff != "" {
		t.Fatalf("original keys (-want +got):\n%s", diff)
	}
	if rec.Has("a") || rec.Has("c") || rec.Len() != 2 {
		t.Fatalf("original sees the copy's keys: %v", rec.Keys())
	}
	if v, _ := rec.Get("d"); !surface.Equal(v, surface.Number(2)) {
		t.Fatalf("original sees the copy's replacement: %v", v)
	}
	after, err := rec.MarshalJSON()
	if err != nil || string(after) != string(before) {
		t.Fatalf("original JSON changed: %s -> %s (%v)", before, after, err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, cp.Keys()); diff != "" {
		t.Fatalf("copy keys (-want +got):\n%s", diff)
	}
	if rec.Equal(cp) {
		t.Fatalf("records with different keys compare equal")
	}
}

func TestNode_AddedChildKeepsJSON(t *testing.T) {
	btn := components.Button("Go", surface.Action("go")).Build()
	want := string(surface.New(btn).JSON())

	row := components.Row().Build()
	row.AddChild(btn)
	row.Children[0].SetProp("disabled", surface.Bool(true))

	if got := string(surface.New(btn).JSON()); got != want {
		t.Fatalf("JSON changed after the parent's copy was mutated:\nwant %s\ngot  %s", want, got)
	}
	back, err := surface.Decode(surface.New(btn).JSON())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if iss := validate.Interactive(back.Root); len(iss) != 0 {
		t.Fatalf("round-tripped button is invalid: %v", iss)
	}
	if !back.Root.Equal(btn) || back.Root.Equal(row.Children[0]) {
		t.Fatalf("Equal does not track the serialized props")
	}

	cp := row
	cp.AddChild(components.Text("a").Build())
	row.AddChild(components.Text("b").Build())
	if cp.Children[1].Type != "Text" || !surface.Equal(mustProp(t, cp.Children[1], "value"), surface.String("a")) {
		t.Fatalf("sibling copies share appended children")
	}
}

func mustProp(t *testing.T, n surface.Node, key string) surface.PropValue {
	t.Helper()
	v, ok := n.Prop(key)
	if !ok {
		t.Fatalf("%s: missing prop %q", n.Type, key)
	}
	return v
}

func TestNode_ImmutableHelpers(t *testing.T) {
	base := surface.NewNode("Column")
	base.SetProp("spacing", surface.Number(1))
	withProp := base.WithProp("spacing", surface.Number(2))
	if v, _ := base.Prop("spacing"); !surface.Equal(v, surface.Number(1)) {
		t.Fatalf("WithProp mutated the receiver")
	}
	if v, _ := withProp.Prop("spacing"); !surface.Equal(v, surface.Number(2)) {
		t.Fatalf("WithProp did not set the prop")
	}

	a := base.WithChild(surface.NewNode("Text"))
	b := base.WithChild(surface.NewNode("Button"))
	if len(base.Children) != 0 || a.Children[0].Type != "Text" || b.Children[0].Type != "Button" {
		t.Fatalf("WithChild aliasing: base=%d a=%v b=%v", len(base.Children), a.Children, b.Children)
	}
	if c := a.WithChildren(); len(c.Children) != 0 || len(a.Children) != 1 {
		t.Fatalf("WithChildren should replace only on the copy")
	}
	if a.Equal(b) || !a.Equal(a.WithProp("spacing", surface.Number(1))) {
		t.Fatalf("Equal mismatch")
	}
}

func TestNode_Walk(t *testing.T) {
	root := counterSurface().Root
	var visited []string
	root.Walk(func(ptr string, n *surface.Node) bool {
		visited = append(visited, fmt.Sprintf("%s=%s", ptr, n.Type))
		return n.Type != "Row"
	})
	want := []string{"=Column", "/children/0=Text", "/children/1=Row"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("walk (-want +got):\n%s", diff)
	}
}

func TestEdges(t *testing.T) {
	if !surface.Equal(surface.Sides(4, 4, 4, 4).PropValue(), surface.Number(4)) {
		t.Fatalf("equal sides should collapse to a number")
	}
	e := surface.Sides(1, 2, 3, 4)
	back, ok := surface.EdgesFromProp(e.PropValue())
	if !ok || back != e {
		t.Fatalf("edges round trip: %v %v", back, ok)
	}
	if u, ok := surface.EdgesFromProp(surface.Number(8)); !ok || u != surface.Uniform(8) {
		t.Fatalf("number should coerce to uniform edges")
	}
	bad := surface.RecordOf(map[string]surface.PropValue{"top": surface.Number(1), "bottom": surface.Number(1), "start": surface.Number(1), "left": surface.Number(1)})
	if _, ok := surface.EdgesFromProp(bad); ok {
		t.Fatalf("unexpected side names should not parse")
	}
	if _, ok := surface.EdgesFromProp(surface.String("8")); ok {
		t.Fatalf("strings are not edges")
	}
}

func TestAlignment(t *testing.T) {
	for _, a := range surface.Alignments() {
		if !surface.Alignment(a).Valid() {
			t.Fatalf("%s should be valid", a)
		}
	}
	if surface.Alignment("middle").Valid() {
		t.Fatalf("middle is not an alignment")
	}
	if !surface.Equal(surface.AlignSpaceBetween.PropValue(), surface.String("space_between")) {
		t.Fatalf("unexpected prop value")
	}
}

func TestIssues_ErrorModel(t *testing.T) {
	iss := surface.Issues{
		surface.Root().Field("props").Field("a/b").Issue(surface.CodeRequired, "first"),
		{Code: surface.CodeUnknownComponent, Path: "/type", Cause: surface.ErrUnknownComponent},
		{Code: surface.CodeUnknownKey, Path: "/props/x", Message: "third"},
		{Code: surface.CodeUnknownKey, Path: "/props/y", Message: "fourth"},
	}
	if iss[0].Path != "/props/a~1b" {
		t.Fatalf("pointer escaping: %s", iss[0].Path)
	}
	if got, want := iss.Error(), "first; unknown_component at /type; third; ... (total 4)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	var err error = iss
	if !errors.Is(err, surface.ErrUnknownComponent) || !surface.IsUnknownComponent(err) {
		t.Fatalf("errors.Is should see the unknown component cause")
	}
	if !iss.HasCode(surface.CodeUnknownKey) || iss.HasCode(surface.CodeInvalidEnum) {
		t.Fatalf("HasCode mismatch")
	}
	rebased := iss.Rebase("/root/children/0")
	if rebased[1].Path != "/root/children/0/type" || iss[1].Path != "/type" {
		t.Fatalf("Rebase: %s / %s", rebased[1].Path, iss[1].Path)
	}
	if got := surface.At("/props/x").Index(2).Pointer(); got != "/props/x/2" {
		t.Fatalf("At: %s", got)
	}
	if _, ok := surface.AsIssues(fmt.Errorf("wrapped: %w", iss)); !ok {
		t.Fatalf("AsIssues should unwrap")
	}
	if _, ok := surface.AsIssues(nil); ok {
		t.Fatalf("AsIssues(nil) should be false")
	}
}
