package surface

// Alignment positions children along the cross axis of Column and Row.
type Alignment string

const (
	AlignStart        Alignment = "start"
	AlignCenter       Alignment = "center"
	AlignEnd          Alignment = "end"
	AlignStretch      Alignment = "stretch"
	AlignSpaceBetween Alignment = "space_between"
	AlignSpaceAround  Alignment = "space_around"
)

// Alignments lists every alignment literal in declaration order.
func Alignments() []string {
	return []string{"start", "center", "end", "stretch", "space_between", "space_around"}
}

// Valid reports whether a is one of the declared alignments.
func (a Alignment) Valid() bool {
	for _, s := range Alignments() {
		if string(a) == s {
			return true
		}
	}
	return false
}

// PropValue returns the string form stored in the tree.
func (a Alignment) PropValue() PropValue { return String(a) }

// Edges are insets for padding and similar props.
type Edges struct {
	Top, Bottom, Start, End float64
}

// Uniform returns edges with the same inset on every side. A number literal
// used for padding (padding: 16) coerces to this.
func Uniform(n float64) Edges { return Edges{Top: n, Bottom: n, Start: n, End: n} }

// Sides returns edges with individual insets.
func Sides(top, bottom, start, end float64) Edges {
	return Edges{Top: top, Bottom: bottom, Start: start, End: end}
}

// IsUniform reports whether all four sides are equal.
func (e Edges) IsUniform() bool {
	return e.Top == e.Bottom && e.Top == e.Start && e.Top == e.End
}

// PropValue collapses uniform edges to a bare Number and encodes anything
// else as a {top, bottom, start, end} record.
func (e Edges) PropValue() PropValue {
	if e.IsUniform() {
		return Number(e.Top)
	}
	var r Record
	r.Set("top", Number(e.Top))
	r.Set("bottom", Number(e.Bottom))
	r.Set("start", Number(e.Start))
	r.Set("end", Number(e.End))
	return r
}

// EdgesFromProp reverses Edges.PropValue. It accepts a Number or a record
// holding exactly the four numeric sides.
func EdgesFromProp(v PropValue) (Edges, bool) {
	switch x := v.(type) {
	case Number:
		return Uniform(float64(x)), true
	case Record:
		if x.Len() != 4 {
			return Edges{}, false
		}
		var out Edges
		for _, side := range []struct {
			key string
			dst *float64
		}{{"top", &out.Top}, {"bottom", &out.Bottom}, {"start", &out.Start}, {"end", &out.End}} {
			v, _ := x.Get(side.key)
			n, ok := v.(Number)
			if !ok {
				return Edges{}, false
			}
			*side.dst = float64(n)
		}
		return out, true
	}
	return Edges{}, false
}
