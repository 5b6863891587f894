package surface

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType        = "invalid_type"
	CodeRequired           = "required"
	CodeUnknownKey         = "unknown_key"
	CodeDuplicateKey       = "duplicate_key"
	CodeInvalidEnum        = "invalid_enum"
	CodeChildrenNotAllowed = "children_not_allowed"
	CodeUnknownRole        = "unknown_role"
	CodeParseError         = "parse_error"
	CodeOverflow           = "overflow"
	// CodeUnknownComponent marks a component type the registry does not know.
	// It is reported on its own, never mixed into a schema-defect list.
	CodeUnknownComponent = "unknown_component"
)

// ErrUnknownComponent is the cause attached to every CodeUnknownComponent
// issue and wrapped by registry lookups, so callers can use errors.Is instead
// of matching message text.
var ErrUnknownComponent = errors.New("surface: unknown component")

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer relative to the validated node (for example: /props/label).
	Code    string // One of the codes listed above.
	Message string // Human-readable text shown to the UI author.
	Hint    string // Optional: remediation hints such as the allowed values.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"component":"Button",
	// "prop":"label"}) for i18n and tooling.
	Params map[string]string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Message != "" {
			b.WriteString(it.Message)
			continue
		}
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes issue causes to errors.Is and errors.As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// Messages returns the human-readable message of every issue, in order.
func (iss Issues) Messages() []string {
	if len(iss) == 0 {
		return nil
	}
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Message
	}
	return out
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// Rebase prefixes every issue path with base. It is used when a node's
// issues are reported as part of a larger tree.
func (iss Issues) Rebase(base string) Issues {
	if base == "" || base == "/" || len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		switch {
		case it.Path == "" || it.Path == "/":
			it.Path = base
		case it.Path[0] == '/':
			it.Path = base + it.Path
		default:
			it.Path = base + "/" + it.Path
		}
		out[i] = it
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsUnknownComponent reports whether err is, or contains, an unknown
// component classification.
func IsUnknownComponent(err error) bool {
	return errors.Is(err, ErrUnknownComponent)
}
