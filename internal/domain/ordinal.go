package domain

import "strconv"

// Ordinal renders n as an English ordinal: 0 -> "0th", 1 -> "1st",
// 2 -> "2nd", 11 -> "11th", 21 -> "21st". Used to name record positions in
// diagnostics.
func Ordinal(n int) string {
	suffix := "th"
	// 11th, 12th, 13th override the last-digit rule.
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
