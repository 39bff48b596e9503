package value

import (
	"fmt"
	"strings"
)

// Policy selects what happens when an insert targets an occupied slot.
type Policy uint8

const (
	// Replace discards the stored value and keeps the new construction.
	Replace Policy = iota
	// Merge combines the stored value with the new arguments.
	Merge
	// Reject fails the insert with a duplicate index error.
	Reject
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Replace:
		return "replace"
	case Merge:
		return "merge"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy parses a policy name as returned by String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replace":
		return Replace, nil
	case "merge":
		return Merge, nil
	case "reject":
		return Reject, nil
	default:
		return 0, fmt.Errorf("unknown duplicate policy %q", s)
	}
}
