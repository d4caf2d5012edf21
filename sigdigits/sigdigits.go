// Copyright (c) 2026 Coinbase Agent Authors

// Package sigdigits rounds decimal strings to a fixed number of significant
// digits.
//
// Values coming out of the exchange api are decimal strings with up to 8-16
// fractional digits. Agents consuming them don't need that precision and the
// extra digits inflate the context they operate on, so every user-visible
// number is squeezed through Round before it leaves this process.
//
// Values are kept as strings end-to-end; they are converted to float64 only
// transiently inside the rounding step.
package sigdigits

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Round returns val rounded to n significant digits, formatted without
// trailing zeros. Strings that don't look like plain decimal numbers are
// returned unchanged, which also makes Round idempotent: a previous result
// in exponent notation passes through as-is.
func Round(val string, n int) string {
	if !IsNumeric(val) {
		return val
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return val
	}
	return RoundFloat(f, n)
}

// RoundFloat rounds v to n significant digits. Rounding is round-half-to-even
// on the underlying binary value, which is what strconv's 'g' formatting
// does. The result uses the shortest decimal form and switches to exponent
// notation only when fixed notation would be unreasonable.
func RoundFloat(v float64, n int) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', n, 64), 64)
	if err != nil {
		return strconv.FormatFloat(v, 'g', n, 64)
	}
	return strconv.FormatFloat(rounded, 'g', -1, 64)
}

// RoundAll rounds every element of vals to n significant digits. Non-numeric
// elements pass through unchanged.
func RoundAll(vals []string, n int) []string {
	rs := make([]string, len(vals))
	for i, v := range vals {
		rs[i] = Round(v, n)
	}
	return rs
}

// IsNumeric reports whether s consists of decimal digits with optional '.'
// and '-' characters. This is intentionally loose -- "1.2.3" is accepted here
// and rejected later by the float parse -- but it keeps exponent forms and
// arbitrary words out of the rounding path.
func IsNumeric(s string) bool {
	stripped := strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), "-", "")
	if len(stripped) == 0 {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsUnsignedNumeric reports whether s is a non-negative decimal number
// string: digits with at most one '.' and no sign.
func IsUnsignedNumeric(s string) bool {
	if len(s) == 0 || strings.Count(s, ".") > 1 {
		return false
	}
	stripped := strings.ReplaceAll(s, ".", "")
	if len(stripped) == 0 {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Decimals returns the number of fractional digits in the decimal string s,
// or zero when s has no fractional component.
func Decimals(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// TrimDecimal drops exactly one fractional digit from s, e.g. "1.2345"
// becomes "1.234". It reports false when s has no fractional digits left to
// drop or doesn't parse as a decimal number.
func TrimDecimal(s string) (string, bool) {
	nd := Decimals(s)
	if nd == 0 {
		return s, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s, false
	}
	return d.Truncate(int32(nd - 1)).String(), true
}
