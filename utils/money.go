package utils

import (
	"strconv"
	"strings"
)

// FormatKz formats an integer amount of kwanzas as a string like "12.500 Kz".
// Uses dot as thousands separator, and only groups amounts of five or more
// digits (Portuguese convention: "4400", "12.500", "450.000").
func FormatKz(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) <= 4 {
		if neg {
			return "-" + s + " Kz"
		}
		return s + " Kz"
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + " Kz"
	b.Grow(len(s) + len(s)/3 + 4)
	if neg {
		b.WriteByte('-')
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}
	b.WriteString(" Kz")

	return b.String()
}
