// Package csvout serializes a dataset to a single delimited UTF-8 file.
package csvout

import "strconv"

// FormatCents renders non-negative integer cents with exactly two decimal
// digits, e.g. 1234 -> "12.34", 500 -> "5.00".
func FormatCents(cents int64) string {
	return string(AppendCents(nil, cents))
}

// AppendCents appends the two-decimal rendering of cents to dst. Kept
// allocation-free for the row-writing hot loop.
func AppendCents(dst []byte, cents int64) []byte {
	dst = strconv.AppendInt(dst, cents/100, 10)
	dst = append(dst, '.')
	frac := cents % 100
	if frac < 10 {
		dst = append(dst, '0')
	}
	return strconv.AppendInt(dst, frac, 10)
}
