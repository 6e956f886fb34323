// Package format implements the field-level display policy shared by every
// renderer: numeric-looking values gain grouping separators, missing values
// render as an explicit no-data indicator, and snake_case keys become
// readable labels. The policy is uniform across all record kinds.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NoData is the explicit indicator rendered for empty, absent, or
// placeholder values. The label of a fixed field is still shown alongside.
const NoData = "N/A"

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// Missing reports whether a raw value counts as absent: empty text or one
// of the literal placeholders the source data uses for "no value".
func Missing(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "N/A", "null", "undefined":
		return true
	}
	return false
}

// Value renders one raw field value for display. Missing values become
// NoData; values that parse as numbers render with grouping separators,
// integers without decimal places ("1234.0" renders as "1,234", "1234.5"
// as "1,234.5"); everything else passes through as plain text.
func Value(v string) string {
	trimmed := strings.TrimSpace(v)
	if Missing(trimmed) {
		return NoData
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return trimmed
	}
	return Number(f)
}

// Number renders a numeric value with grouping separators, dropping the
// fractional part when the value is a whole number.
func Number(f float64) string {
	if f == float64(int64(f)) {
		return printer.Sprint(number.Decimal(int64(f)))
	}
	return printer.Sprint(number.Decimal(f))
}

// Count parses and renders a count-like value; non-numeric input renders
// as NoData rather than passing through.
func Count(v string) string {
	trimmed := strings.TrimSpace(v)
	if Missing(trimmed) {
		return NoData
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return NoData
	}
	return Number(f)
}

// Label turns a snake_case field key into a display label: underscores
// become spaces and each word is title-cased.
func Label(key string) string {
	return titler.String(strings.ReplaceAll(key, "_", " "))
}
