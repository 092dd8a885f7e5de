package invocation

import (
	"strings"

	"github.com/pkg/errors"
)

// Policy decides whether the replacements value is checked at parse time.
type Policy string

const (
	// PolicyDefer leaves the replacements text opaque. The engine that
	// consumes it reports malformed JSON.
	PolicyDefer Policy = "defer"

	// PolicyValidate rejects replacements that are not a JSON object with a
	// UsageError.
	PolicyValidate Policy = "validate"
)

// ParsePolicy converts a configuration value into a Policy. The empty string
// selects PolicyDefer.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyDefer, nil
	case PolicyDefer, PolicyValidate:
		return p, nil
	default:
		return "", errors.Errorf("unknown replacements policy %q (want %q or %q)", s, PolicyDefer, PolicyValidate)
	}
}
