package core

import (
	"strconv"
	"strings"
)

// NormalizeID folds numerically equivalent identifier spellings to one
// canonical form so that "189" and "189.0" compare equal. The source bundle
// represents the same logical id inconsistently across collections, so every
// cross-collection join compares normalized ids, never raw strings.
//
// Non-numeric ids are returned verbatim and therefore compare by exact
// string equality. Routing them through float parsing would collapse every
// non-numeric id to the same value, so they deliberately take a separate
// branch.
//
// The second return is false only for empty (or all-whitespace) input.
func NormalizeID(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return trimmed, true
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

// SameID reports whether two raw identifiers refer to the same logical id
// under normalization. Two empty ids never match.
func SameID(a, b string) bool {
	na, ok := NormalizeID(a)
	if !ok {
		return false
	}
	nb, ok := NormalizeID(b)
	if !ok {
		return false
	}
	return na == nb
}
