package surface_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/reoring/surface"
)

const counterGolden = `{"root":{"type":"Column","props":{"accessible":{"label":"Column","role":"group"},"spacing":16},"children":[` +
	`{"type":"Text","props":{"accessible":{"label":"Count: 0","role":"text"},"size":"title","value":"Count: 0"},"children":[]},` +
	`{"type":"Row","props":{"accessible":{"label":"Row","role":"group"},"spacing":8},"children":[` +
	`{"type":"Button","props":{"accessible":{"label":"Increment","role":"button"},"label":"Increment","on_tap":{"__action":"increment"}},"children":[]},` +
	`{"type":"Button","props":{"accessible":{"label":"Decrement","role":"button"},"label":"Decrement","on_tap":{"__action":"decrement"}},"children":[]},` +
	`{"type":"Button","props":{"accessible":{"label":"Reset","role":"button"},"label":"Reset","on_tap":{"__action":"reset"},"variant":"outlined"},"children":[]}` +
	`]}]}}`

func TestJSON_CounterGolden(t *testing.T) {
	if got := string(counterSurface().JSON()); got != counterGolden {
		t.Fatalf("golden mismatch\n got: %s\nwant: %s", got, counterGolden)
	}
}

func TestJSON_Deterministic(t *testing.T) {
	for _, s := range []surface.Surface{counterSurface(), todoSurface(), converterSurface(), kitchenSink()} {
		first := s.JSON()
		for i := 0; i < 100; i++ {
			if !bytes.Equal(first, s.JSON()) {
				t.Fatalf("run %d produced different bytes", i)
			}
		}
	}
}

func TestJSON_DeterministicAcrossRebuilds(t *testing.T) {
	first := todoSurface().JSON()
	for i := 0; i < 100; i++ {
		if got := todoSurface().JSON(); !bytes.Equal(first, got) {
			t.Fatalf("rebuild %d differs:\n%s\n%s", i, first, got)
		}
	}
}

func TestJSON_SortedPropKeys(t *testing.T) {
	orders := [][]string{
		{"weight", "size", "accessible", "value"},
		{"value", "accessible", "size", "weight"},
		{"size", "weight", "value", "accessible"},
	}
	var want string
	for _, order := range orders {
		n := surface.NewNode("Text")
		for _, k := range order {
			n.SetProp(k, surface.String(k))
		}
		got, err := n.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if want == "" {
			want = string(got)
		}
		if string(got) != want {
			t.Fatalf("order %v changed output: %s vs %s", order, got, want)
		}
	}
	const expect = `{"type":"Text","props":{"accessible":"accessible","size":"size","value":"value","weight":"weight"},"children":[]}`
	if want != expect {
		t.Fatalf("got %s, want %s", want, expect)
	}
}

func TestJSON_ValueEncodings(t *testing.T) {
	var rec surface.Record
	rec.Set("b", surface.Number(2))
	rec.Set("a", surface.String("x"))

	cases := []struct {
		name string
		v    surface.PropValue
		want string
	}{
		{"string", surface.String("hi"), `"hi"`},
		{"number", surface.Number(16), `16`},
		{"fraction", surface.Number(0.25), `0.25`},
		{"bool", surface.Bool(true), `true`},
		{"nil", surface.Nil{}, `null`},
		{"color", surface.RGBA(1, 0.5, 0, 1), `{"r":1,"g":0.5,"b":0,"a":1}`},
		{"action", surface.Action("save"), `{"__action":"save"}`},
		{"action empty args", surface.ActionRef{Action: "save", Args: surface.List{}}, `{"__action":"save"}`},
		{"action args", surface.Action("add", surface.Number(250)), `{"__action":"add","__args":[250]}`},
		{"lambda", surface.Lambda{ID: 7}, `{"__lambda":7}`},
		{"lambda max", surface.Lambda{ID: math.MaxUint32}, `{"__lambda":4294967295}`},
		{"list", surface.ListOf(surface.Number(1), surface.Nil{}), `[1,null]`},
		{"empty list", surface.List{}, `[]`},
		{"record", rec, `{"a":"x","b":2}`},
		{"empty record", surface.Record{}, `{}`},
		{"uniform edges", surface.Uniform(16).PropValue(), `16`},
		{"edges", surface.Sides(1, 2, 3, 4).PropValue(), `{"bottom":2,"end":4,"start":3,"top":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := surface.DecodeValue([]byte(tc.want))
			if err != nil {
				t.Fatalf("decode %s: %v", tc.want, err)
			}
			if !surface.Equal(got, tc.v) {
				t.Fatalf("decode mismatch: got %#v, want %#v", got, tc.v)
			}
			b, err := tc.v.(interface{ MarshalJSON() ([]byte, error) }).MarshalJSON()
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tc.want {
				t.Fatalf("got %s, want %s", b, tc.want)
			}
		})
	}
}

func TestJSON_ChildrenAlwaysArray(t *testing.T) {
	b, err := surface.NewNode("Text").MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"children":[]`) {
		t.Fatalf("expected empty children array, got %s", b)
	}
}

func TestJSON_ScenarioColumnRowButtons(t *testing.T) {
	res, err := counterSurface().Query("$.root.children[1].children[*].type")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(res) != 3 {
		t.Fatalf("expected 3 buttons, got %v", res)
	}
	res, _ = counterSurface().Query("$.root.type")
	if len(res) != 1 || res[0] != "Column" {
		t.Fatalf("root type: %v", res)
	}
}

func TestJSON_NonFiniteIsRejected(t *testing.T) {
	n := surface.NewNode("ProgressBar")
	n.SetProp("value", surface.Number(math.NaN()))
	s := surface.New(n)

	_, err := s.MarshalJSON()
	iss, ok := surface.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != surface.CodeOverflow || iss[0].Path != "/root/props/value" {
		t.Fatalf("expected overflow issue at /root/props/value, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("JSON() should panic on a non-finite number")
		}
	}()
	_ = s.JSON()
}

func TestPrettyJSON_SameDocument(t *testing.T) {
	s := todoSurface()
	back, err := surface.Decode(s.PrettyJSON())
	if err != nil {
		t.Fatalf("decode pretty: %v", err)
	}
	if !back.Equal(s) {
		t.Fatalf("pretty output decodes to a different tree")
	}
	if !bytes.Contains(s.PrettyJSON(), []byte("\n  \"root\": {")) {
		t.Fatalf("expected two-space indentation:\n%s", s.PrettyJSON())
	}
}
