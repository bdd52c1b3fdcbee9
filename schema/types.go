package schema

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrict      UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                            // Drop unknown keys.
	UnknownPassthrough                      // Preserve unknown keys under a target field.
)

// String returns the policy name used in logs and JSON Schema hints.
func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrict:
		return "strict"
	case UnknownStrip:
		return "strip"
	case UnknownPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// FailFast stops at the first issue instead of collecting all of them.
	FailFast bool
	// MaxBytes caps the input size for StreamParse. Zero means unlimited.
	MaxBytes int64
}
