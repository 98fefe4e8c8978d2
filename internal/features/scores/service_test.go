package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name     string
		today    string
		previous bool
		from     string
		to       string
	}{
		{name: "current month", today: "2026-04-15", from: "2026-04-01", to: "2026-04-30"},
		{name: "current month from its first day", today: "2026-04-01", from: "2026-04-01", to: "2026-04-30"},
		{name: "previous month", today: "2026-04-15", previous: true, from: "2026-03-01", to: "2026-03-31"},
		{name: "previous month across year boundary", today: "2026-01-10", previous: true, from: "2025-12-01", to: "2025-12-31"},
		{name: "previous leap february", today: "2024-03-20", previous: true, from: "2024-02-01", to: "2024-02-29"},
		{name: "current december", today: "2025-12-31", from: "2025-12-01", to: "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := monthRange(day(tt.today), tt.previous)
			assert.Equal(t, tt.from, from.String())
			assert.Equal(t, tt.to, to.String())
		})
	}
}
