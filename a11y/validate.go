package a11y

import (
	"strings"

	"github.com/reoring/surface"
	"github.com/reoring/surface/i18n"
)

var fields = []string{"label", "hint", "role", "value", "live_region"}

// ValidateProp checks the value of an "accessible" prop on a component named
// component. Paths are relative to the prop value ("/" for the value itself,
// "/label" for a field).
//
// A non-record value yields exactly one issue and nothing else is checked.
// Within a record every check runs, so several defects are reported together.
func ValidateProp(component string, v surface.PropValue) surface.Issues {
	subject := PropKey
	if component != "" {
		subject = component + "." + PropKey
	}
	root := surface.Root()

	rec, ok := v.(surface.Record)
	if !ok {
		return surface.Issues{typeIssue(root, subject, surface.TypeRecord, v)}
	}

	var iss surface.Issues
	field := func(name string) (surface.PathRef, string) {
		return root.Field(name), subject + "." + name
	}

	// label: required string
	p, s := field("label")
	switch x, ok := rec.Get("label"); {
	case !ok:
		iss = surface.AppendIssues(iss, p.Issue(surface.CodeRequired,
			i18n.T("required.field", map[string]string{"subject": s}), "field", "label"))
	case !isString(x):
		iss = surface.AppendIssues(iss, typeIssue(p, s, surface.TypeString, x))
	}

	// hint: optional string
	if x, ok := rec.Get("hint"); ok && !isString(x) {
		p, s := field("hint")
		iss = surface.AppendIssues(iss, typeIssue(p, s, surface.TypeString, x))
	}

	// role: optional role literal
	if x, ok := rec.Get("role"); ok {
		p, s := field("role")
		if str, isStr := x.(surface.String); !isStr {
			iss = surface.AppendIssues(iss, typeIssue(p, s, surface.TypeString, x))
		} else if _, valid := ParseRole(string(str)); !valid {
			allowed := quoteAll(RoleNames())
			it := p.Issue(surface.CodeUnknownRole,
				i18n.T("unknown_role", map[string]string{"subject": s, "got": string(str), "allowed": allowed}),
				"got", string(str))
			it.Hint = i18n.T("hint.allowed", map[string]string{"allowed": allowed})
			iss = surface.AppendIssues(iss, it)
		}
	}

	// value: optional string
	if x, ok := rec.Get("value"); ok && !isString(x) {
		p, s := field("value")
		iss = surface.AppendIssues(iss, typeIssue(p, s, surface.TypeString, x))
	}

	// live_region: optional polite|assertive
	if x, ok := rec.Get("live_region"); ok {
		p, s := field("live_region")
		if str, isStr := x.(surface.String); !isStr {
			iss = surface.AppendIssues(iss, typeIssue(p, s, surface.TypeString, x))
		} else if _, valid := ParseLiveRegion(string(str)); !valid {
			it := p.Issue(surface.CodeInvalidEnum,
				i18n.T("invalid_enum.live_region", map[string]string{"subject": s, "got": string(str)}),
				"got", string(str))
			it.Hint = i18n.T("hint.allowed", map[string]string{"allowed": quoteAll([]string{string(Polite), string(Assertive)})})
			iss = surface.AppendIssues(iss, it)
		}
	}

	for _, k := range rec.Keys() {
		if !isField(k) {
			iss = surface.AppendIssues(iss, root.Field(k).Issue(surface.CodeUnknownKey,
				i18n.T("unknown_key.field", map[string]string{"subject": subject, "key": k}), "key", k))
		}
	}
	return iss
}

func typeIssue(p surface.PathRef, subject, expected string, got surface.PropValue) surface.Issue {
	gotName := surface.TypeNil
	if got != nil {
		gotName = got.TypeName()
	}
	return p.Issue(surface.CodeInvalidType,
		i18n.T("invalid_type", map[string]string{"subject": subject, "expected": expected, "got": gotName}),
		"expected", expected, "got", gotName)
}

func isString(v surface.PropValue) bool {
	_, ok := v.(surface.String)
	return ok
}

func isField(k string) bool {
	for _, f := range fields {
		if f == k {
			return true
		}
	}
	return false
}

func quoteAll(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = `"` + n + `"`
	}
	return strings.Join(q, ", ")
}
