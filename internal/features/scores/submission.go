// submission.go is the orchestrator: it turns a raw group-chat message
// plus the historical rows into a persisted record and a reply summary.
// It is deliberately synchronous and I/O-free — history comes in as a
// slice, the record goes back out for the caller to append — which keeps
// the whole engine testable without a database.
package scores

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// submissionPattern matches the shared result header, e.g. "Wordle 1234 3/6"
// or "Wordle 1234 X/6*". Commas in the puzzle number are stripped before
// matching. Messages that don't match are simply not submissions.
var submissionPattern = regexp.MustCompile(`Wordle\s+(\d+)\s+([1-6Xx])/6\*?`)

// archivePattern flags backfilled results for past puzzles. Archive games
// are scored and acknowledged but never persisted and never duplicate-checked.
var archivePattern = regexp.MustCompile(`(?i)\barchive\b`)

// Submission is the parsed form of a result message.
type Submission struct {
	PuzzleNumber int
	Attempts     Attempts
	Rows         []Row
	Archive      bool
}

// ParseSubmission extracts the puzzle number, attempts token, grid and
// archive flag. ok is false for ordinary chat messages.
func ParseSubmission(text string) (Submission, bool) {
	clean := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))

	m := submissionPattern.FindStringSubmatch(clean)
	if m == nil {
		return Submission{}, false
	}

	number, err := strconv.Atoi(m[1])
	if err != nil {
		return Submission{}, false
	}
	attempts, ok := ParseAttempts(m[2])
	if !ok {
		return Submission{}, false
	}

	return Submission{
		PuzzleNumber: number,
		Attempts:     attempts,
		Rows:         ParseGrid(clean),
		Archive:      archivePattern.MatchString(clean),
	}, true
}

// Rival is the next-highest competitor on today's board.
type Rival struct {
	Player string
	Gap    float64 // points between rival and player, >= 0
	Tied   bool    // gap below the configured tolerance
}

// Summary carries everything the presentation layer needs for the reply.
// None of it is persisted.
type Summary struct {
	Player       string
	Day          EpochDay
	PuzzleNumber int
	Attempts     Attempts
	Score        float64
	Streak       Streak
	DoublePoints bool
	Archive      bool

	Rank      int // 1-based on today's board, including this submission
	FieldSize int
	Rival     *Rival

	DailyMedal  int  // 1..3 = place on yesterday's board, 0 = none
	WeeklyCrown bool // top of last week's board
}

// Result is the orchestrator's verdict on one submission.
type Result struct {
	// Record is the row to persist. Nil for archive submissions.
	Record *SubmissionRecord
	// Duplicate is set when the player already has a row for the
	// effective day; nothing was scored and nothing should be persisted.
	Duplicate bool
	Summary   Summary
}

// Orchestrator wires the scoring pipeline together with its policy knobs.
type Orchestrator struct {
	GraceHour     int
	DoubleWeekday time.Weekday
	TieTolerance  float64
	Location      *time.Location
}

// Handle processes one message. ok is false when the message is not a
// submission at all (no reply should be sent). When Result.Duplicate is
// set the caller replies with the already-submitted notice; otherwise
// Result.Record (if non-nil) must be appended to the store by the caller.
func (o *Orchestrator) Handle(text, player string, sentAt time.Time, history []SubmissionRecord) (Result, bool) {
	sub, ok := ParseSubmission(text)
	if !ok {
		return Result{}, false
	}

	day := EffectiveDay(sentAt, o.GraceHour, o.Location)

	if !sub.Archive {
		for _, rec := range history {
			if rec.Player == player && rec.Day == day {
				return Result{
					Duplicate: true,
					Summary:   Summary{Player: player, Day: day, Archive: false},
				}, true
			}
		}
	}

	doublePoints := day.Weekday() == o.DoubleWeekday
	score := Score(sub.Attempts, sub.Rows, doublePoints)

	// Streak input: every completed historical day, plus today's game if it
	// counts. Archive backfills are unanchored — they must not claim today.
	days := PlayedDays(history, player)
	var streak Streak
	if sub.Archive {
		streak = ComputeStreak(days, nil)
	} else {
		if sub.Attempts.Completed() {
			days = append(days, day)
		}
		anchor := day
		streak = ComputeStreak(days, &anchor)
	}

	summary := Summary{
		Player:       player,
		Day:          day,
		PuzzleNumber: sub.PuzzleNumber,
		Attempts:     sub.Attempts,
		Score:        score,
		Streak:       streak,
		DoublePoints: doublePoints,
		Archive:      sub.Archive,
	}

	var record *SubmissionRecord
	if !sub.Archive {
		record = &SubmissionRecord{
			Day:           day,
			Player:        player,
			Score:         score,
			PuzzleNumber:  sub.PuzzleNumber,
			Attempts:      sub.Attempts,
			CurrentStreak: streak.Current,
			MaxStreak:     o.clampMax(history, player, streak),
		}
		// Keep the summary consistent with what gets written.
		summary.Streak.Max = record.MaxStreak
	}

	o.fillBoardContext(&summary, history, record)

	return Result{Record: record, Summary: summary}, true
}

// clampMax keeps the stored max streak monotonically non-decreasing per
// player: a recomputation must never regress a previously recorded peak
// (old rows may encode runs the parseable history no longer shows).
func (o *Orchestrator) clampMax(history []SubmissionRecord, player string, streak Streak) int {
	max := streak.Max
	if max < streak.Current {
		max = streak.Current
	}
	for _, rec := range history {
		if rec.Player == player && rec.MaxStreak > max {
			max = rec.MaxStreak
		}
	}
	return max
}

// fillBoardContext computes the display-only flavor context: today's rank
// and rival, yesterday's medal, last week's crown.
func (o *Orchestrator) fillBoardContext(summary *Summary, history []SubmissionRecord, record *SubmissionRecord) {
	day := summary.Day

	// Today's board includes the just-scored submission.
	augmented := history
	if record != nil {
		augmented = append(append([]SubmissionRecord{}, history...), *record)
	}
	board := DayTotals(augmented, day)
	summary.FieldSize = len(board)
	summary.Rank = RankOf(board, summary.Player)

	if summary.Rank > 1 {
		above := board[summary.Rank-2]
		mine := board[summary.Rank-1]
		gap := above.Points - mine.Points
		summary.Rival = &Rival{
			Player: above.Player,
			Gap:    gap,
			Tied:   gap < o.TieTolerance,
		}
	}

	if yesterday := DayTotals(history, day-1); len(yesterday) > 0 {
		if place := RankOf(yesterday, summary.Player); place >= 1 && place <= 3 {
			summary.DailyMedal = place
		}
	}

	weekStart := day.StartOfWeek()
	lastWeek := RangeTotals(history, weekStart-7, weekStart-1)
	if len(lastWeek) > 0 && lastWeek[0].Player == summary.Player {
		summary.WeeklyCrown = true
	}
}
