// leaderboard.go aggregates historical rows into ranked standings.
// Used by the submission orchestrator for rival/rank context and by the
// command handlers and cron announcements for the boards themselves.
package scores

import "sort"

// Standing is one row of a points leaderboard.
type Standing struct {
	Player string
	Points float64

	// Append index of the player's most recent contributing row. Ties on
	// points rank the chronologically later submitter first.
	lastIndex int
}

// sortStandings orders by points descending; equal totals are broken by
// later append order.
func sortStandings(standings []Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].lastIndex > standings[j].lastIndex
	})
}

func totals(history []SubmissionRecord, include func(SubmissionRecord) bool) []Standing {
	byPlayer := make(map[string]*Standing)
	var order []string
	for i, rec := range history {
		if !include(rec) {
			continue
		}
		s, ok := byPlayer[rec.Player]
		if !ok {
			s = &Standing{Player: rec.Player}
			byPlayer[rec.Player] = s
			order = append(order, rec.Player)
		}
		s.Points += rec.Score
		s.lastIndex = i
	}

	standings := make([]Standing, 0, len(order))
	for _, p := range order {
		standings = append(standings, *byPlayer[p])
	}
	sortStandings(standings)
	return standings
}

// DayTotals ranks the given day's scores.
func DayTotals(history []SubmissionRecord, day EpochDay) []Standing {
	return totals(history, func(r SubmissionRecord) bool { return r.Day == day })
}

// RangeTotals ranks scores over the inclusive day range [from, to].
func RangeTotals(history []SubmissionRecord, from, to EpochDay) []Standing {
	return totals(history, func(r SubmissionRecord) bool { return r.Day >= from && r.Day <= to })
}

// AllTimeTotals ranks every score ever recorded.
func AllTimeTotals(history []SubmissionRecord) []Standing {
	return totals(history, func(SubmissionRecord) bool { return true })
}

// RankOf finds a player's 1-based position in standings, or 0 if absent.
func RankOf(standings []Standing, player string) int {
	for i, s := range standings {
		if s.Player == player {
			return i + 1
		}
	}
	return 0
}

// StreakStanding is one row of the streak leaderboard: the streak values
// snapshotted on a player's most recent row.
type StreakStanding struct {
	Player string
	Day    EpochDay
	Streak Streak
}

// LatestStreaks returns each player's newest streak snapshot, ordered by
// current streak descending (max streak breaks ties). Rows may arrive
// unsorted, so the newest day wins per player; equal days fall back to
// append order.
func LatestStreaks(history []SubmissionRecord) []StreakStanding {
	latest := make(map[string]StreakStanding)
	var order []string
	for _, rec := range history {
		prev, seen := latest[rec.Player]
		if seen && prev.Day > rec.Day {
			continue
		}
		if !seen {
			order = append(order, rec.Player)
		}
		latest[rec.Player] = StreakStanding{
			Player: rec.Player,
			Day:    rec.Day,
			Streak: Streak{Current: rec.CurrentStreak, Max: rec.MaxStreak},
		}
	}

	standings := make([]StreakStanding, 0, len(order))
	for _, p := range order {
		standings = append(standings, latest[p])
	}
	sortStreakStandings(standings)
	return standings
}

func sortStreakStandings(standings []StreakStanding) {
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Streak.Current != standings[j].Streak.Current {
			return standings[i].Streak.Current > standings[j].Streak.Current
		}
		return standings[i].Streak.Max > standings[j].Streak.Max
	})
}
