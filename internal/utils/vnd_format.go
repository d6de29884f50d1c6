package utils

import "strconv"

// FormatVND formats a VND amount with dot thousands separators and the
// currency suffix, e.g. 1500000 -> "1.500.000đ". Notification messages use
// this rendering.
func FormatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	n := len(s)
	groups := (n - 1) / 3

	out := make([]byte, 0, n+groups)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	formatted := string(out) + "đ"
	if negative {
		return "-" + formatted
	}
	return formatted
}
