package scores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(dayISO, player string, score float64) SubmissionRecord {
	return SubmissionRecord{Day: day(dayISO), Player: player, Score: score, Attempts: 3}
}

func testOrchestrator() *Orchestrator {
	return &Orchestrator{
		GraceHour:     3,
		DoubleWeekday: time.Friday,
		TieTolerance:  0.5,
		Location:      time.UTC,
	}
}

// 2024-03-14 is a Thursday, 2024-03-15 a Friday.
var (
	thursdayNoon = time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	fridayNoon   = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
)

func TestParseSubmission(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		ok      bool
		number  int
		tries   Attempts
		rows    int
		archive bool
	}{
		{name: "plain result", text: "Wordle 1234 3/6", ok: true, number: 1234, tries: 3},
		{name: "comma in puzzle number", text: "Wordle 1,234 4/6", ok: true, number: 1234, tries: 4},
		{name: "failed puzzle", text: "Wordle 1234 X/6", ok: true, number: 1234, tries: AttemptsFail},
		{name: "lowercase fail token", text: "Wordle 1234 x/6", ok: true, number: 1234, tries: AttemptsFail},
		{name: "hard mode asterisk", text: "Wordle 1234 2/6*", ok: true, number: 1234, tries: 2},
		{name: "archive flag", text: "Wordle 812 5/6 archive", ok: true, number: 812, tries: 5, archive: true},
		{name: "archive flag uppercase", text: "Wordle 812 5/6 ARCHIVE", ok: true, number: 812, tries: 5, archive: true},
		{
			name:   "with grid",
			text:   "Wordle 1234 2/6\n\n🟨⬛⬛⬛🟩\n🟩🟩🟩🟩🟩",
			ok:     true,
			number: 1234,
			tries:  2,
			rows:   2,
		},
		{name: "ordinary chat", text: "anyone else find today's hard?", ok: false},
		{name: "wordle mentioned casually", text: "I love Wordle so much", ok: false},
		{name: "attempts out of range", text: "Wordle 1234 7/6", ok: false},
		{name: "empty", text: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, ok := ParseSubmission(tt.text)
			if !tt.ok {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.number, sub.PuzzleNumber)
			assert.Equal(t, tt.tries, sub.Attempts)
			assert.Equal(t, tt.archive, sub.Archive)
			assert.Len(t, sub.Rows, tt.rows)
		})
	}
}

func TestHandleBasicSubmission(t *testing.T) {
	o := testOrchestrator()

	res, ok := o.Handle("Wordle 1000 3/6", "Alice", thursdayNoon, nil)
	require.True(t, ok)
	assert.False(t, res.Duplicate)
	require.NotNil(t, res.Record)

	assert.Equal(t, "2024-03-14", res.Record.Day.String())
	assert.Equal(t, "Alice", res.Record.Player)
	assert.InDelta(t, 40, res.Record.Score, 1e-9)
	assert.Equal(t, 1000, res.Record.PuzzleNumber)
	assert.Equal(t, 1, res.Record.CurrentStreak)
	assert.Equal(t, 1, res.Record.MaxStreak)

	assert.False(t, res.Summary.DoublePoints)
	assert.Equal(t, 1, res.Summary.Rank)
	assert.Equal(t, 1, res.Summary.FieldSize)
	assert.Nil(t, res.Summary.Rival)
}

func TestHandleIgnoresNonSubmissions(t *testing.T) {
	o := testOrchestrator()
	_, ok := o.Handle("good morning all", "Alice", thursdayNoon, nil)
	assert.False(t, ok)
}

func TestHandleRejectsDuplicate(t *testing.T) {
	o := testOrchestrator()
	history := []SubmissionRecord{rec("2024-03-14", "Alice", 40)}

	res, ok := o.Handle("Wordle 1000 2/6", "Alice", thursdayNoon, history)
	require.True(t, ok)
	assert.True(t, res.Duplicate)
	assert.Nil(t, res.Record)

	// A different player on the same day is fine.
	res, ok = o.Handle("Wordle 1000 2/6", "Bob", thursdayNoon, history)
	require.True(t, ok)
	assert.False(t, res.Duplicate)
	require.NotNil(t, res.Record)
}

func TestHandleArchiveSubmission(t *testing.T) {
	o := testOrchestrator()
	history := []SubmissionRecord{
		rec("2024-03-10", "Alice", 40),
		rec("2024-03-14", "Alice", 40), // already played today
	}

	res, ok := o.Handle("Wordle 812 5/6 archive", "Alice", thursdayNoon, history)
	require.True(t, ok)

	// Archives bypass the duplicate check and are never persisted.
	assert.False(t, res.Duplicate)
	assert.Nil(t, res.Record)
	assert.True(t, res.Summary.Archive)
	assert.InDelta(t, 20, res.Summary.Score, 1e-9)

	// Streak is computed unanchored: the two historical days are not
	// consecutive, so the best run is 1 and nothing is zeroed by today.
	assert.Equal(t, Streak{Current: 1, Max: 1}, res.Summary.Streak)
}

func TestHandleGraceHour(t *testing.T) {
	o := testOrchestrator()

	// 01:00 Friday still belongs to Thursday, so no double points either.
	earlyFriday := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	res, ok := o.Handle("Wordle 1000 1/6", "Alice", earlyFriday, nil)
	require.True(t, ok)
	assert.Equal(t, "2024-03-14", res.Record.Day.String())
	assert.False(t, res.Summary.DoublePoints)
	assert.InDelta(t, 60, res.Record.Score, 1e-9)
}

func TestHandleDoublePointsDay(t *testing.T) {
	o := testOrchestrator()

	res, ok := o.Handle("Wordle 1001 3/6", "Alice", fridayNoon, nil)
	require.True(t, ok)
	assert.True(t, res.Summary.DoublePoints)
	assert.InDelta(t, 80, res.Record.Score, 1e-9)
}

func TestHandleStreakContinuation(t *testing.T) {
	o := testOrchestrator()
	history := []SubmissionRecord{
		rec("2024-03-12", "Alice", 40),
		rec("2024-03-13", "Alice", 40),
	}

	res, ok := o.Handle("Wordle 1000 3/6", "Alice", thursdayNoon, history)
	require.True(t, ok)
	assert.Equal(t, 3, res.Record.CurrentStreak)
	assert.Equal(t, 3, res.Record.MaxStreak)
}

func TestHandleFailedGameBreaksStreak(t *testing.T) {
	o := testOrchestrator()
	history := []SubmissionRecord{rec("2024-03-13", "Alice", 40)}

	// X/6 is recorded but does not count as a played day: the anchor is
	// today and today is not in the set, so current drops to zero.
	res, ok := o.Handle("Wordle 1000 X/6", "Alice", thursdayNoon, history)
	require.True(t, ok)
	require.NotNil(t, res.Record)
	assert.InDelta(t, 0, res.Record.Score, 1e-9)
	assert.Equal(t, 0, res.Record.CurrentStreak)
	assert.Equal(t, 1, res.Record.MaxStreak)
}

func TestHandleMaxStreakNeverRegresses(t *testing.T) {
	o := testOrchestrator()
	old := rec("2024-03-01", "Alice", 40)
	old.MaxStreak = 9
	history := []SubmissionRecord{old}

	res, ok := o.Handle("Wordle 1000 3/6", "Alice", thursdayNoon, history)
	require.True(t, ok)
	assert.Equal(t, 1, res.Record.CurrentStreak)
	assert.Equal(t, 9, res.Record.MaxStreak)
	assert.Equal(t, 9, res.Summary.Streak.Max)
}

func TestHandleRivalContext(t *testing.T) {
	o := testOrchestrator()
	history := []SubmissionRecord{rec("2024-03-14", "Bob", 50)}

	res, ok := o.Handle("Wordle 1000 3/6", "Alice", thursdayNoon, history)
	require.True(t, ok)
	assert.Equal(t, 2, res.Summary.Rank)
	assert.Equal(t, 2, res.Summary.FieldSize)
	require.NotNil(t, res.Summary.Rival)
	assert.Equal(t, "Bob", res.Summary.Rival.Player)
	assert.InDelta(t, 10, res.Summary.Rival.Gap, 1e-9)
	assert.False(t, res.Summary.Rival.Tied)
}

func TestHandleRivalTiedWithinTolerance(t *testing.T) {
	o := testOrchestrator()
	history := []SubmissionRecord{rec("2024-03-14", "Bob", 40.3)}

	res, ok := o.Handle("Wordle 1000 3/6", "Alice", thursdayNoon, history)
	require.True(t, ok)
	require.NotNil(t, res.Summary.Rival)
	assert.True(t, res.Summary.Rival.Tied)
}

func TestHandleDailyMedal(t *testing.T) {
	o := testOrchestrator()
	history := []SubmissionRecord{
		rec("2024-03-13", "Alice", 50),
		rec("2024-03-13", "Bob", 30),
	}

	res, ok := o.Handle("Wordle 1000 3/6", "Alice", thursdayNoon, history)
	require.True(t, ok)
	assert.Equal(t, 1, res.Summary.DailyMedal)

	res, ok = o.Handle("Wordle 1000 3/6", "Bob", thursdayNoon, history)
	require.True(t, ok)
	assert.Equal(t, 2, res.Summary.DailyMedal)
}

func TestHandleWeeklyCrown(t *testing.T) {
	o := testOrchestrator()
	// Thursday 2024-03-14: last week runs Mon 2024-03-04 .. Sun 2024-03-10.
	history := []SubmissionRecord{
		rec("2024-03-05", "Alice", 60),
		rec("2024-03-06", "Bob", 20),
	}

	res, ok := o.Handle("Wordle 1000 3/6", "Alice", thursdayNoon, history)
	require.True(t, ok)
	assert.True(t, res.Summary.WeeklyCrown)

	res, ok = o.Handle("Wordle 1000 3/6", "Bob", thursdayNoon, history)
	require.True(t, ok)
	assert.False(t, res.Summary.WeeklyCrown)
}
