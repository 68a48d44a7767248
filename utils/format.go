package utils

import (
	"strconv"
	"time"
)

// DateLayout is the wire format for dates (date-only, no zone).
const DateLayout = "2006-01-02"

// DisplayDateLayout is the format shown to users.
const DisplayDateLayout = "02/01/2006"

// FormatVND renders an amount in Vietnamese dong with dot thousand
// separators, e.g. 150000 -> "150.000 VNĐ".
func FormatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	s := string(out)
	if negative {
		s = "-" + s
	}
	return s + " VNĐ"
}

// FormatDate converts a wire-format date string to the display format.
// An unparsable value is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(DisplayDateLayout)
}
