package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(iso string) EpochDay {
	d, ok := ToEpochDay(iso)
	if !ok {
		panic("bad test date: " + iso)
	}
	return d
}

func anchorTo(iso string) *EpochDay {
	d := day(iso)
	return &d
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name   string
		days   []string
		anchor *EpochDay
		want   Streak
	}{
		{
			name: "empty input",
			days: nil,
			want: Streak{Current: 0, Max: 0},
		},
		{
			name: "single day unanchored",
			days: []string{"2024-03-13"},
			want: Streak{Current: 1, Max: 1},
		},
		{
			name:   "single day anchored elsewhere",
			days:   []string{"2024-03-13"},
			anchor: anchorTo("2024-03-14"),
			want:   Streak{Current: 0, Max: 1},
		},
		{
			name:   "mon tue wed anchored wed",
			days:   []string{"2024-03-11", "2024-03-12", "2024-03-13"},
			anchor: anchorTo("2024-03-13"),
			want:   Streak{Current: 3, Max: 3},
		},
		{
			name:   "mon tue wed anchored thu",
			days:   []string{"2024-03-11", "2024-03-12", "2024-03-13"},
			anchor: anchorTo("2024-03-14"),
			want:   Streak{Current: 0, Max: 3},
		},
		{
			name: "gap splits runs, max keeps the longer",
			days: []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-10", "2024-03-11"},
			want: Streak{Current: 2, Max: 4},
		},
		{
			name: "duplicates and unsorted input",
			days: []string{"2024-03-12", "2024-03-11", "2024-03-12", "2024-03-13"},
			want: Streak{Current: 3, Max: 3},
		},
		{
			name:   "anchor matching latest keeps current",
			days:   []string{"2024-03-10", "2024-03-12", "2024-03-13"},
			anchor: anchorTo("2024-03-13"),
			want:   Streak{Current: 2, Max: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var days []EpochDay
			for _, iso := range tt.days {
				days = append(days, day(iso))
			}
			got := ComputeStreak(days, tt.anchor)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStreakMaxNeverBelowCurrent(t *testing.T) {
	sets := [][]string{
		nil,
		{"2024-03-13"},
		{"2024-03-11", "2024-03-12", "2024-03-13"},
		{"2024-03-01", "2024-03-03", "2024-03-05"},
		{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"},
	}
	anchors := []*EpochDay{nil, anchorTo("2024-03-13"), anchorTo("2024-03-01")}

	for _, set := range sets {
		var days []EpochDay
		for _, iso := range set {
			days = append(days, day(iso))
		}
		for _, anchor := range anchors {
			got := ComputeStreak(days, anchor)
			require.GreaterOrEqual(t, got.Max, got.Current, "set=%v anchor=%v", set, anchor)
		}
	}
}

func TestComputeStreakAcrossMonthBoundary(t *testing.T) {
	// Feb 29 → Mar 1 is a gap of exactly one epoch day.
	got := ComputeStreak([]EpochDay{day("2024-02-28"), day("2024-02-29"), day("2024-03-01")}, nil)
	assert.Equal(t, Streak{Current: 3, Max: 3}, got)
}
