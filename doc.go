// Package surface is the intermediate representation of a declarative UI:
//
// - PropValue, a closed union of the nine values a component prop can hold
// - Node and Surface, the component tree with sorted props and ordered children
// - A deterministic JSON wire format, plus YAML and MessagePack renderings
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep the data model and codecs in the root package; schemas live in
// registry/, accessibility defaulting in a11y/, checks in validate/ and
// builders in components/.
// - Serialization is byte-stable: prop keys are emitted in ascending order and
// the same builder calls always yield the same bytes.
// - Validation never panics; defects are returned as Issues.
//
// Typical usage:
//
//	root := components.Column(
//		components.Text("Count: 0").Build(),
//		components.Button("Increment", surface.Action("increment")).Build(),
//	).Spacing(16).Build()
//	s := surface.New(root)
//	if err := validate.Surface(s); err != nil { ... }
//	wire := s.JSON()
//
//	back, err := surface.Decode(wire)
package surface
