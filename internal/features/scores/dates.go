// Package scores implements the Wordle submission engine: date
// normalization, grid parsing, scoring, streaks and the submission
// orchestrator, plus the score store and the Telegram-facing handlers.
//
// dates.go normalizes the messy date shapes found in historical rows
// (ISO strings, spreadsheet serial numbers, free-text dates) into integer
// epoch days so all day arithmetic is timezone-safe.
package scores

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// EpochDay is a calendar day as an integer count of days since
// 1970-01-01 UTC. Day differences are plain integer subtraction,
// immune to DST and timezone drift.
type EpochDay int

// secondsPerDay is fixed; epoch days ignore leap seconds on purpose.
const secondsPerDay = 86400

// Spreadsheet serial numbers use the 1899-12-30 epoch; serial 25569 is
// 1970-01-01. Values outside (25569, 60000) — roughly years 1970–2064 —
// are not treated as serials.
const (
	serialUnixEpoch = 25569
	serialCeiling   = 60000
)

var isoDayPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Fallback layouts for free-text dates in old rows. Tried in order after
// the ISO and serial fast paths.
var looseLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// DayOf converts a wall-clock instant to the epoch day of its calendar
// date in that instant's location.
func DayOf(t time.Time) EpochDay {
	y, m, d := t.Date()
	return dayFromDate(y, m, d)
}

func dayFromDate(year int, month time.Month, day int) EpochDay {
	return EpochDay(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// Time returns the UTC midnight instant of the day.
func (d EpochDay) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// String formats the day as canonical ISO YYYY-MM-DD.
// ToEpochDay is idempotent on this output.
func (d EpochDay) String() string {
	return d.Time().Format("2006-01-02")
}

// Weekday returns the day of week of the calendar day.
func (d EpochDay) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MonthKey formats the day's month as YYYY-MM, the key used by the
// monthly winners table.
func (d EpochDay) MonthKey() string {
	return d.Time().Format("2006-01")
}

// StartOfWeek returns the Monday of the week containing d.
func (d EpochDay) StartOfWeek() EpochDay {
	// time.Weekday has Sunday=0; shift so Monday=0.
	offset := (int(d.Weekday()) + 6) % 7
	return d - EpochDay(offset)
}

// StartOfMonth returns the first day of the month containing d.
func (d EpochDay) StartOfMonth() EpochDay {
	t := d.Time()
	return dayFromDate(t.Year(), t.Month(), 1)
}

// PreviousMonthKey returns the month key of the month before the one
// containing d. A month's champion is crowned on the 1st of the next
// month and wears the trophy for that following month, so submissions
// look their champion up under the PREVIOUS month's key.
func (d EpochDay) PreviousMonthKey() string {
	return (d.StartOfMonth() - 1).MonthKey()
}

// ToEpochDay normalizes a raw date value from a historical row.
// Accepted shapes, in order:
//  1. ISO YYYY-MM-DD
//  2. spreadsheet serial number (days since 1899-12-30), plausible range only
//  3. a handful of loose free-text layouts
//
// The second return is false when the value is unparseable; callers skip
// such rows instead of failing the whole computation.
func ToEpochDay(raw string) (EpochDay, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if m := isoDayPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return 0, false
		}
		return dayFromDate(year, time.Month(month), day), true
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if n > serialUnixEpoch && n < serialCeiling {
			return EpochDay(int(n) - serialUnixEpoch), true
		}
		return 0, false
	}

	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), true
		}
	}
	return 0, false
}

// EffectiveDay resolves the calendar day a submission is attributed to.
// A post before graceHour local time counts for the previous day, so a
// 1am submission still scores yesterday's puzzle.
func EffectiveDay(now time.Time, graceHour int, loc *time.Location) EpochDay {
	local := now.In(loc)
	day := DayOf(local)
	if local.Hour() < graceHour {
		day--
	}
	return day
}
