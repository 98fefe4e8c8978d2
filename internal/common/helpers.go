// Package common holds small formatting utilities shared by handlers
// and cron announcements.
package common

import (
	"fmt"
	"strconv"
)

// FormatPoints renders a score with one decimal place, the precision the
// decimal scoring system was introduced for (fewer ties).
func FormatPoints(points float64) string {
	return strconv.FormatFloat(points, 'f', 1, 64)
}

// PluralDays returns "day" or "days".
func PluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

// StreakEmoji maps a current streak to its fire tier. A one-day streak
// gets the poop of shame.
func StreakEmoji(current int) string {
	switch {
	case current >= 100:
		return "🔥🔥🔥🔥🔥"
	case current >= 50:
		return "🔥🔥🔥🔥"
	case current >= 30:
		return "🔥🔥🔥"
	case current >= 20:
		return "🔥🔥"
	case current >= 10:
		return "🔥"
	case current == 1:
		return "💩"
	}
	return ""
}

// MedalFor returns the medal for a 1-based leaderboard place.
func MedalFor(place int) string {
	switch place {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

// Ordinal renders 1 → "1st", 2 → "2nd", etc.
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// 11th, 12th, 13th
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
