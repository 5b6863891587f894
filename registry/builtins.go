package registry

func req(name string, t PropType, desc string) PropDef {
	return PropDef{Name: name, Requirement: Required, Type: t, Description: desc}
}

func opt(name string, t PropType, desc string) PropDef {
	return PropDef{Name: name, Requirement: Optional, Type: t, Description: desc}
}

func accessible() PropDef {
	return opt(AccessibleProp, RecordType, "Accessibility overrides (label, hint, role, value, live_region).")
}

func container(name, desc string) ComponentDef {
	return ComponentDef{
		Name:            name,
		Category:        Layout,
		AcceptsChildren: true,
		Description:     desc,
		Props: []PropDef{
			opt("spacing", NumberType, "Gap between children."),
			opt("align", AlignmentType, "Cross-axis alignment of children."),
			opt("padding", EdgesType, "Inner insets; a number applies to every side."),
			accessible(),
		},
	}
}

func builtins() []ComponentDef {
	return []ComponentDef{
		container("Column", "Stacks children vertically."),
		container("Row", "Lays children out horizontally."),
		{
			Name:            "Scroll",
			Category:        Layout,
			AcceptsChildren: true,
			Description:     "Scrollable container.",
			Props: []PropDef{
				opt("direction", EnumType("vertical", "horizontal", "both"), "Scroll axis; vertical when omitted."),
				accessible(),
			},
		},
		{
			Name:        "Text",
			Category:    Content,
			Description: "Displays a string.",
			Props: []PropDef{
				req("value", StringType, "Text to display."),
				opt("size", EnumType("small", "body", "title", "heading", "display"), "Type scale."),
				opt("weight", EnumType("normal", "medium", "bold"), "Font weight."),
				opt("color", ColorType, "Foreground color."),
				opt("align", EnumType("start", "center", "end"), "Horizontal alignment."),
				opt("max_lines", NumberType, "Maximum visible lines."),
				opt("overflow", EnumType("clip", "ellipsis", "wrap"), "Behavior when the text does not fit."),
				accessible(),
			},
		},
		{
			Name:        "ProgressBar",
			Category:    Content,
			Description: "Horizontal progress indicator.",
			Props: []PropDef{
				req("value", NumberType, "Progress from 0.0 to 1.0."),
				opt("color", ColorType, "Fill color."),
				opt("background", ColorType, "Track color."),
				opt("height", NumberType, "Bar height."),
				accessible(),
			},
		},
		{
			Name:        "Button",
			Category:    Interactive,
			Description: "Tappable button dispatching an action.",
			Props: []PropDef{
				req("label", StringType, "Button text."),
				req("on_tap", ActionType, "Action dispatched on tap."),
				opt("variant", EnumType("filled", "outlined", "text"), "Visual style."),
				opt("icon", StringType, "Icon name."),
				opt("disabled", BoolType, "Disables interaction."),
				opt("loading", BoolType, "Shows a busy indicator."),
				accessible(),
			},
		},
		{
			Name:        "TextInput",
			Category:    Interactive,
			Description: "Single or multi-line text field.",
			Props: []PropDef{
				req("value", StringType, "Current text."),
				req("on_change", LambdaType, "Callback receiving the new text."),
				opt("placeholder", StringType, "Hint shown when empty."),
				opt("label", StringType, "Field label."),
				opt("keyboard", EnumType("text", "number", "email", "phone", "url"), "Keyboard type."),
				opt("max_length", NumberType, "Maximum characters."),
				opt("multiline", BoolType, "Allows line breaks."),
				accessible(),
			},
		},
		{
			Name:        "ScrollList",
			Category:    List,
			Description: "Virtualized list rendering one node per item.",
			Props: []PropDef{
				req("items", ListType, "Items to render."),
				req("render", LambdaType, "Callback producing a node for an item."),
				req("key", LambdaType, "Callback producing a stable key for an item."),
				opt("on_reorder", LambdaType, "Callback receiving reordered indices."),
				opt("dividers", BoolType, "Draws separators between items."),
				accessible(),
			},
		},
		{
			Name:            "Modal",
			Category:        Feedback,
			AcceptsChildren: true,
			Description:     "Dialog overlay.",
			Props: []PropDef{
				req("visible", BoolType, "Whether the dialog is shown."),
				req("on_dismiss", ActionType, "Action dispatched when dismissed."),
				opt("title", StringType, "Dialog title."),
				accessible(),
			},
		},
		{
			Name:        "Toast",
			Category:    Feedback,
			Description: "Transient notification.",
			Props: []PropDef{
				req("message", StringType, "Notification text."),
				opt("duration", NumberType, "Display time in milliseconds."),
				opt("type", EnumType("info", "success", "warning", "error"), "Severity style."),
				accessible(),
			},
		},
	}
}
