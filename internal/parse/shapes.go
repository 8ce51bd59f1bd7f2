package parse

import (
	"regexp"
	"strings"
)

// Token shape rules. These three patterns carry the whole classification
// scheme, so they live here as named predicates rather than inline matches.
var (
	// recordStartPattern matches a serial number: digits only, fewer than
	// four of them. The width bound is load-bearing: reference numbers are
	// eight or more digits and must never open a new record.
	recordStartPattern = regexp.MustCompile(`^[0-9]{1,3}$`)

	// altPartPattern matches the other-format part number alphabet.
	// The predicate additionally requires at least one dot, which this
	// pattern alone does not enforce.
	altPartPattern = regexp.MustCompile(`^[A-Z0-9.]+$`)

	// referencePattern matches long numeric reference codes.
	referencePattern = regexp.MustCompile(`^[0-9]{8,}$`)
)

// IsRecordStart reports whether a token opens a new record.
func IsRecordStart(tok string) bool {
	return recordStartPattern.MatchString(tok)
}

// IsAltPartNumber reports whether a token has the dotted other-format part
// number shape: uppercase letters, digits and dots only, with at least one
// dot.
func IsAltPartNumber(tok string) bool {
	return altPartPattern.MatchString(tok) && strings.Contains(tok, ".")
}

// IsReferenceNumber reports whether a token has the reference number shape:
// eight or more decimal digits, nothing else.
func IsReferenceNumber(tok string) bool {
	return referencePattern.MatchString(tok)
}

// isNameStop reports whether a token ends the variable-length name run.
func isNameStop(tok string) bool {
	return IsAltPartNumber(tok) || IsReferenceNumber(tok)
}
