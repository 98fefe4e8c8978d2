// models.go defines the persisted score row and the validating parse
// from the loosely-typed row shape the store hands back.
package scores

import (
	"strconv"
	"strings"
)

// Attempts is the number of guesses used, or AttemptsFail for X/6.
type Attempts int

// AttemptsFail marks an unsolved puzzle. Stored and displayed as "X".
const AttemptsFail Attempts = 7

// ParseAttempts reads the token from the "3/6" part of a submission.
func ParseAttempts(token string) (Attempts, bool) {
	t := strings.ToUpper(strings.TrimSpace(token))
	switch t {
	case "1", "2", "3", "4", "5", "6":
		n, _ := strconv.Atoi(t)
		return Attempts(n), true
	case "X":
		return AttemptsFail, true
	}
	return 0, false
}

// Completed reports whether the puzzle was actually solved.
// Only completed days count toward streaks.
func (a Attempts) Completed() bool {
	return a >= 1 && a <= 6
}

func (a Attempts) String() string {
	if a == AttemptsFail {
		return "X"
	}
	return strconv.Itoa(int(a))
}

// SubmissionRecord is one persisted row: one player, one day. Records are
// append-only; streak values are snapshotted at write time, never
// recomputed by readers.
type SubmissionRecord struct {
	ID            int64
	Day           EpochDay
	Player        string
	Score         float64
	PuzzleNumber  int
	Attempts      Attempts
	CurrentStreak int
	MaxStreak     int
}

// ParseRecord maps a loosely-typed row [day, player, score, puzzleNumber,
// attempts, currentStreak, maxStreak] onto a typed record. Historical
// data is noisy — spreadsheet-serial dates, missing streak columns, junk
// rows — so anything below the minimum shape is rejected (ok=false) and
// the caller skips it rather than aborting the whole read.
func ParseRecord(fields []string) (SubmissionRecord, bool) {
	if len(fields) < 5 {
		return SubmissionRecord{}, false
	}

	day, ok := ToEpochDay(fields[0])
	if !ok {
		return SubmissionRecord{}, false
	}

	player := strings.TrimSpace(fields[1])
	if player == "" {
		return SubmissionRecord{}, false
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil || score < 0 {
		return SubmissionRecord{}, false
	}

	puzzleNumber, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(fields[3], ",", "")))
	if err != nil {
		puzzleNumber = 0 // old rows sometimes miss the puzzle number; not fatal
	}

	attempts, ok := ParseAttempts(fields[4])
	if !ok {
		return SubmissionRecord{}, false
	}

	rec := SubmissionRecord{
		Day:          day,
		Player:       player,
		Score:        score,
		PuzzleNumber: puzzleNumber,
		Attempts:     attempts,
	}

	// Streak columns are optional; rows predating streak tracking lack them.
	if len(fields) >= 7 {
		if cur, err := strconv.Atoi(strings.TrimSpace(fields[5])); err == nil {
			rec.CurrentStreak = cur
		}
		if max, err := strconv.Atoi(strings.TrimSpace(fields[6])); err == nil {
			rec.MaxStreak = max
		}
	}

	return rec, true
}

// PlayedDays builds the set of completed days for one player from
// history. Failed games (X/6) do not keep a streak alive.
func PlayedDays(history []SubmissionRecord, player string) []EpochDay {
	var days []EpochDay
	for _, rec := range history {
		if rec.Player == player && rec.Attempts.Completed() {
			days = append(days, rec.Day)
		}
	}
	return days
}
