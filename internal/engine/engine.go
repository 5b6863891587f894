package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// Options controls decode-time enforcement.
type Options struct {
	OnDuplicate DuplicateStrictness
	// MaxDepth limits container nesting; <= 0 disables the check.
	MaxDepth int
	// IssueSink receives non-fatal issues (duplicate keys under DupWarn).
	IssueSink func(SimpleIssue)
}

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// Number is a JSON number literal kept as text so callers choose the
// precision (lambda ids are unsigned integers, prop numbers are float64).
type Number string

// DecodeBytes decodes exactly one JSON document into a generic tree built
// from map[string]any, []any, string, Number, bool and nil.
func DecodeBytes(data []byte, opt Options) (any, error) {
	return DecodeReader(bytes.NewReader(data), opt)
}

// DecodeReader is DecodeBytes for an io.Reader. The reader is consumed fully.
func DecodeReader(r io.Reader, opt Options) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	d := &decoder{dec: dec, opt: opt}

	tok, err := dec.Token()
	if err != nil {
		return nil, d.parseErr("/", err)
	}
	v, err := d.value(tok, "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, IssueError{SimpleIssue{Code: "parse_error", Path: "/", Message: "unexpected data after top-level value"}}
	}
	return v, nil
}

type decoder struct {
	dec   *json.Decoder
	opt   Options
	depth int
}

func (d *decoder) value(tok json.Token, path string) (any, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return d.object(path)
		case '[':
			return d.array(path)
		}
		return nil, d.fail("parse_error", path, fmt.Sprintf("unexpected delimiter %q", rune(v)))
	case string:
		return v, nil
	case json.Number:
		return Number(v), nil
	case float64:
		return Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case bool:
		return v, nil
	case nil:
		return nil, nil
	}
	return nil, d.fail("parse_error", path, fmt.Sprintf("unexpected token %T", tok))
}

func (d *decoder) enter(path string) error {
	d.depth++
	if d.opt.MaxDepth > 0 && d.depth > d.opt.MaxDepth {
		return d.fail("parse_error", path, "max depth exceeded")
	}
	return nil
}

func (d *decoder) object(path string) (any, error) {
	if err := d.enter(path); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	m := make(map[string]any)
	for d.dec.More() {
		kt, err := d.dec.Token()
		if err != nil {
			return nil, d.parseErr(path, err)
		}
		key, ok := kt.(string)
		if !ok {
			return nil, d.fail("parse_error", path, "object key must be a string")
		}
		child := path + "/" + escape(key)
		if _, dup := m[key]; dup {
			si := SimpleIssue{Code: "duplicate_key", Path: child, Message: fmt.Sprintf("duplicate key %q", key)}
			switch d.opt.OnDuplicate {
			case DupError:
				return nil, IssueError{si}
			case DupWarn:
				if d.opt.IssueSink != nil {
					d.opt.IssueSink(si)
				}
			}
		}
		vt, err := d.dec.Token()
		if err != nil {
			return nil, d.parseErr(child, err)
		}
		v, err := d.value(vt, child)
		if err != nil {
			return nil, err
		}
		// last occurrence wins, like encoding/json
		m[key] = v
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, d.parseErr(path, err)
	}
	return m, nil
}

func (d *decoder) array(path string) (any, error) {
	if err := d.enter(path); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	arr := []any{}
	for i := 0; d.dec.More(); i++ {
		tok, err := d.dec.Token()
		child := path + "/" + strconv.Itoa(i)
		if err != nil {
			return nil, d.parseErr(child, err)
		}
		v, err := d.value(tok, child)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, d.parseErr(path, err)
	}
	return arr, nil
}

func (d *decoder) fail(code, path, msg string) error {
	if path == "" {
		path = "/"
	}
	return IssueError{SimpleIssue{Code: code, Path: path, Message: msg}}
}

func (d *decoder) parseErr(path string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return d.fail("parse_error", path, err.Error())
}

// escape encodes a reference token per RFC6901.
func escape(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}
