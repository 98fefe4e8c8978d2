// streak.go computes consecutive-day streaks from a player's played days.
package scores

import "sort"

// Streak is the pair of streak values snapshotted onto every record.
type Streak struct {
	Current int
	Max     int
}

// ComputeStreak calculates the longest historical run and the run ending
// at the most recent played day.
//
// When anchor is non-nil the current streak is only live if the latest
// played day equals the anchor (normally "effective today"): a player
// whose last game was two days ago shows current 0 even though the run's
// length is still reflected in Max. Archive backfills pass a nil anchor
// since they must not claim today's credit.
//
// Input days need not be sorted or unique; unparseable dates must already
// have been filtered out upstream.
func ComputeStreak(days []EpochDay, anchor *EpochDay) Streak {
	if len(days) == 0 {
		return Streak{}
	}

	uniq := make(map[EpochDay]struct{}, len(days))
	for _, d := range days {
		uniq[d] = struct{}{}
	}
	sorted := make([]EpochDay, 0, len(uniq))
	for d := range uniq {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	// Longest run anywhere in history.
	max, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] == 1 {
			run++
		} else {
			if run > max {
				max = run
			}
			run = 1
		}
	}
	if run > max {
		max = run
	}

	// Run ending at the most recent day: walk backward until the first gap.
	current := 1
	for i := len(sorted) - 1; i > 0; i-- {
		if sorted[i]-sorted[i-1] == 1 {
			current++
		} else {
			break
		}
	}

	if anchor != nil && sorted[len(sorted)-1] != *anchor {
		current = 0
	}

	return Streak{Current: current, Max: max}
}
