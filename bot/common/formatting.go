package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatQuantity formats a stake quantity with thousand separators
func FormatQuantity(quantity int64) string {
	if quantity < 0 {
		return "-" + FormatQuantity(-quantity)
	}
	str := fmt.Sprintf("%d", quantity)

	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatStake renders an amount with its reward unit, e.g. "20 coffee"
func FormatStake(quantity int64, rewardType string) string {
	if rewardType == "" {
		rewardType = "units"
	}
	return fmt.Sprintf("%s %s", FormatQuantity(quantity), rewardType)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays
// in the user's local timezone. Format types: "t" short time, "T" long time,
// "d" short date, "D" long date, "f" short date/time, "F" long date/time,
// "R" relative.
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// FormatPercent renders a fraction as a whole percentage, or "N/A" when the
// metric is undefined
func FormatPercent(fraction float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.0f%%", fraction*100)
}
