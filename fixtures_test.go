package surface_test

import (
	"github.com/reoring/surface"
	c "github.com/reoring/surface/components"
)

func counterSurface() surface.Surface {
	return surface.New(c.Column(
		c.Text("Count: 0").Size(c.SizeTitle).Build(),
		c.Row(
			c.Button("Increment", surface.Action("increment")).Build(),
			c.Button("Decrement", surface.Action("decrement")).Build(),
			c.Button("Reset", surface.Action("reset")).Variant(c.Outlined).Build(),
		).Spacing(8).Build(),
	).Spacing(16).Build())
}

func todoSurface() surface.Surface {
	items := surface.ListOf(
		surface.RecordOf(map[string]surface.PropValue{"id": surface.Number(1), "title": surface.String("Buy milk"), "done": surface.Bool(false)}),
		surface.RecordOf(map[string]surface.PropValue{"id": surface.Number(2), "title": surface.String("Walk dog"), "done": surface.Bool(true)}),
	)
	return surface.New(c.Column(
		c.Text("Todo List").Size(c.SizeHeading).Weight(c.WeightBold).Build(),
		c.Row(
			c.TextInput("", surface.Lambda{ID: 1}).Placeholder("New task...").Build(),
			c.Button("Add", surface.Action("add_todo")).Build(),
		).Spacing(8).Build(),
		c.ScrollList(items, surface.Lambda{ID: 2}, surface.Lambda{ID: 3}).Dividers(true).Build(),
	).Spacing(12).Padding(surface.Uniform(16)).Build())
}

func converterSurface() surface.Surface {
	return surface.New(c.Column(
		c.Text("Temperature Converter").Size(c.SizeTitle).Build(),
		c.TextInput("0", surface.Lambda{ID: 1}).Label("Celsius").Keyboard(c.KeyboardNumber).Build(),
		c.Text("32 °F").Size(c.SizeBody).Build(),
		c.ProgressBar(0.32).Color(surface.RGB(0.2, 0.4, 0.8)).Build(),
	).Spacing(8).Padding(surface.Sides(8, 8, 16, 16)).Build())
}

// kitchenSink exercises every PropValue variant.
func kitchenSink() surface.Surface {
	var rec surface.Record
	rec.Set("z", surface.Number(-1.5))
	rec.Set("a", surface.ListOf(surface.Nil{}, surface.Bool(true), surface.String("x")))
	root := surface.NewNode("Column")
	root.SetProp("spacing", surface.Number(4))
	root.AddChild(c.Button("Go", surface.Action("go", surface.Number(1), surface.String("two"), rec)).Build())
	root.AddChild(c.Modal(true, surface.Action("close"), c.Toast("Saved").Type(c.ToastSuccess).Build()).Title("Done").Build())
	root.AddChild(c.Text("colored").Color(surface.RGBA(1, 0.5, 0, 0.25)).Build())
	root.AddChild(c.Scroll().Direction(c.Horizontal).Build())
	return surface.New(root)
}
