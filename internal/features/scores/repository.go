// repository.go persists score rows to the scores table.
//
// The day column is stored as ISO text and every read goes through the
// validating ParseRecord step: the table was bulk-imported from the
// group's old spreadsheet, so historical rows carry serial-number dates
// and missing columns that must be skipped, not trusted.
package scores

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/wordleworkers/wordlebot/internal/common"
)

// Repository provides access to the scores and monthly_winners tables.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates the score repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Append inserts one submission row. The unique index on (day, player)
// closes the duplicate-check race: two in-flight submissions from the
// same player cannot both land.
func (r *Repository) Append(ctx context.Context, rec *SubmissionRecord) error {
	query := `
		INSERT INTO scores (day, player, score, puzzle_number, attempts, current_streak, max_streak)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		rec.Day.String(), rec.Player, rec.Score, rec.PuzzleNumber,
		rec.Attempts.String(), rec.CurrentStreak, rec.MaxStreak,
	)
	if err != nil {
		return fmt.Errorf("failed to append score row: %w", err)
	}
	return nil
}

// GetAll returns every row in append order. Rows that fail the
// validating parse are logged at debug level and skipped.
func (r *Repository) GetAll(ctx context.Context) ([]SubmissionRecord, error) {
	query := `
		SELECT id, day, player, score::text, puzzle_number::text, attempts,
		       current_streak::text, max_streak::text
		FROM scores
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read score rows: %w", err)
	}
	defer rows.Close()

	var records []SubmissionRecord
	for rows.Next() {
		var id int64
		fields := make([]string, 7)
		if err := rows.Scan(&id, &fields[0], &fields[1], &fields[2], &fields[3],
			&fields[4], &fields[5], &fields[6]); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}

		rec, ok := ParseRecord(fields)
		if !ok {
			log.WithFields(log.Fields{"row_id": id, "day": fields[0]}).
				Debug("skipping malformed score row")
			continue
		}
		rec.ID = id
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate score rows: %w", err)
	}
	return records, nil
}

// UpdateStreaks rewrites the streak snapshot on one row. Only the admin
// /recalcstreaks repair path uses this; normal records are append-only.
func (r *Repository) UpdateStreaks(ctx context.Context, id int64, streak Streak) error {
	query := `UPDATE scores SET current_streak = $2, max_streak = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, streak.Current, streak.Max)
	if err != nil {
		return fmt.Errorf("failed to update streaks for row %d: %w", id, err)
	}
	return nil
}

// MonthlyChampion looks up the recorded winner for a YYYY-MM month key.
func (r *Repository) MonthlyChampion(ctx context.Context, monthKey string) (string, error) {
	query := `SELECT player FROM monthly_winners WHERE month = $1`
	var player string
	err := r.db.QueryRow(ctx, query, monthKey).Scan(&player)
	if err == pgx.ErrNoRows {
		return "", common.ErrNoScores
	}
	if err != nil {
		return "", fmt.Errorf("failed to read monthly winner: %w", err)
	}
	return player, nil
}

// RecordMonthlyWinner stores a month's champion. Re-announcing the same
// month overwrites rather than duplicating.
func (r *Repository) RecordMonthlyWinner(ctx context.Context, monthKey, player string) error {
	query := `
		INSERT INTO monthly_winners (month, player)
		VALUES ($1, $2)
		ON CONFLICT (month) DO UPDATE SET player = EXCLUDED.player
	`
	_, err := r.db.Exec(ctx, query, monthKey, player)
	if err != nil {
		return fmt.Errorf("failed to record monthly winner: %w", err)
	}
	return nil
}
