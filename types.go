package surface

// Severity expresses the severity level for decode-time findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate JSON keys).
}

// DefaultMaxDepth bounds container nesting when decoding a Surface document.
const DefaultMaxDepth = 512

// DecodeOpt bundles decoding options for Decode and friends.
type DecodeOpt struct {
	Strictness Strictness
	// MaxDepth limits object/array nesting; values <= 0 disable the check.
	MaxDepth int
	// OnWarn receives issues downgraded to warnings (Severity Warn).
	OnWarn func(Issue)
}

// DefaultDecodeOpt rejects duplicate keys and limits nesting to
// DefaultMaxDepth. It is used when no option is passed.
func DefaultDecodeOpt() DecodeOpt {
	return DecodeOpt{
		Strictness: Strictness{OnDuplicateKey: Error},
		MaxDepth:   DefaultMaxDepth,
	}
}

func resolveDecodeOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) == 0 {
		return DefaultDecodeOpt()
	}
	return opts[0]
}
