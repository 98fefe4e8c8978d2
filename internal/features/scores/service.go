// service.go is the business layer: it feeds the orchestrator with
// history from the repository, persists the outcome and serves the
// leaderboard queries behind the text commands and cron announcements.
package scores

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wordleworkers/wordlebot/internal/common"
	"github.com/wordleworkers/wordlebot/internal/config"
)

// Service coordinates the submission engine against the score store.
type Service struct {
	repo *Repository
	orch *Orchestrator
	cfg  *config.Config
	loc  *time.Location
}

// NewService creates the scores service.
func NewService(repo *Repository, cfg *config.Config) *Service {
	loc := cfg.Location()
	return &Service{
		repo: repo,
		cfg:  cfg,
		loc:  loc,
		orch: &Orchestrator{
			GraceHour:     cfg.GraceHour,
			DoubleWeekday: time.Weekday(cfg.DoublePointsWeekday),
			TieTolerance:  cfg.RivalTieTolerance,
			Location:      loc,
		},
	}
}

// Outcome is the service-level result of one submission, ready for the
// handler to format.
type Outcome struct {
	Summary         Summary
	Duplicate       bool
	MonthlyChampion bool
}

// HandleSubmission scores one message. Returns (nil, nil) when the text
// is not a Wordle submission — most chat messages aren't, and they get
// no reply at all.
func (s *Service) HandleSubmission(ctx context.Context, text, player string, sentAt time.Time) (*Outcome, error) {
	history, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result, ok := s.orch.Handle(text, player, sentAt, history)
	if !ok {
		return nil, nil
	}

	if result.Duplicate {
		log.WithFields(log.Fields{
			"player": player,
			"day":    result.Summary.Day.String(),
		}).Info("duplicate submission rejected")
		return &Outcome{Summary: result.Summary, Duplicate: true}, nil
	}

	if result.Record != nil {
		if err := s.repo.Append(ctx, result.Record); err != nil {
			// Delivery failure goes up as-is; retry policy belongs to the
			// caller, not here.
			return nil, err
		}
	}

	outcome := &Outcome{Summary: result.Summary}

	// The reigning champion is last month's winner, recorded by the cron on
	// the 1st under the previous month's key.
	champion, err := s.repo.MonthlyChampion(ctx, result.Summary.Day.PreviousMonthKey())
	if err != nil && !errors.Is(err, common.ErrNoScores) {
		log.WithError(err).Warn("monthly champion lookup failed, skipping trophy")
	}
	outcome.MonthlyChampion = champion != "" && champion == player

	log.WithFields(log.Fields{
		"player":  player,
		"day":     result.Summary.Day.String(),
		"score":   result.Summary.Score,
		"streak":  result.Summary.Streak.Current,
		"archive": result.Summary.Archive,
	}).Info("submission scored")

	return outcome, nil
}

// EffectiveToday resolves "today" under the grace-hour rule.
func (s *Service) EffectiveToday(now time.Time) EpochDay {
	return EffectiveDay(now, s.cfg.GraceHour, s.loc)
}

// DayBoard returns the ranked totals for one day.
func (s *Service) DayBoard(ctx context.Context, day EpochDay) ([]Standing, error) {
	history, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return DayTotals(history, day), nil
}

// WeekBoard returns this week's totals so far, or last week's when
// previous is set. Weeks run Monday through Sunday.
func (s *Service) WeekBoard(ctx context.Context, now time.Time, previous bool) ([]Standing, error) {
	history, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	start := s.EffectiveToday(now).StartOfWeek()
	if previous {
		return RangeTotals(history, start-7, start-1), nil
	}
	return RangeTotals(history, start, start+6), nil
}

// MonthBoard returns this month's totals, or the previous month's.
func (s *Service) MonthBoard(ctx context.Context, now time.Time, previous bool) ([]Standing, error) {
	history, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	from, to := monthRange(s.EffectiveToday(now), previous)
	return RangeTotals(history, from, to), nil
}

// monthRange resolves the inclusive day window of the month containing
// today, or of the month before it.
func monthRange(today EpochDay, previous bool) (from, to EpochDay) {
	start := today.StartOfMonth()
	if previous {
		end := start - 1
		return end.StartOfMonth(), end
	}
	return start, DayOf(start.Time().AddDate(0, 1, -1))
}

// AllTimeBoard returns the all-time totals.
func (s *Service) AllTimeBoard(ctx context.Context) ([]Standing, error) {
	history, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return AllTimeTotals(history), nil
}

// StreakBoard returns each player's latest streak snapshot.
func (s *Service) StreakBoard(ctx context.Context) ([]StreakStanding, error) {
	history, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return LatestStreaks(history), nil
}

// PlayerRank describes a player's standing on today's board.
type PlayerRank struct {
	Rank   int
	Points float64
	Streak Streak
}

// MyRank finds the player on today's board along with their latest
// streak snapshot. Returns common.ErrNoScores when they haven't played.
func (s *Service) MyRank(ctx context.Context, player string, now time.Time) (*PlayerRank, error) {
	history, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	board := DayTotals(history, s.EffectiveToday(now))
	rank := RankOf(board, player)
	if rank == 0 {
		return nil, common.ErrNoScores
	}

	pr := &PlayerRank{Rank: rank, Points: board[rank-1].Points, Streak: Streak{Current: 1, Max: 1}}
	for _, st := range LatestStreaks(history) {
		if st.Player == player {
			pr.Streak = st.Streak
			break
		}
	}
	return pr, nil
}

// RecalcStreaks recomputes current/max for every player from raw rows
// and rewrites each player's latest snapshot. Admin repair tool for when
// historical edits (or old buggy rewrites) left stale streak columns.
func (s *Service) RecalcStreaks(ctx context.Context, now time.Time) ([]StreakStanding, error) {
	history, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.EffectiveToday(now)

	// Latest row id per player, so the fresh snapshot lands on the row the
	// streak leaderboard reads.
	latestRow := make(map[string]int64)
	players := make(map[string]struct{})
	for _, rec := range history {
		players[rec.Player] = struct{}{}
		if rec.ID > latestRow[rec.Player] {
			latestRow[rec.Player] = rec.ID
		}
	}

	var standings []StreakStanding
	for player := range players {
		anchor := today
		streak := ComputeStreak(PlayedDays(history, player), &anchor)
		if err := s.repo.UpdateStreaks(ctx, latestRow[player], streak); err != nil {
			log.WithError(err).WithField("player", player).Error("failed to rewrite streak snapshot")
			continue
		}
		standings = append(standings, StreakStanding{Player: player, Day: today, Streak: streak})
	}

	sortStreakStandings(standings)
	return standings, nil
}

// RecordMonthlyWinner stores the champion for the month containing day.
func (s *Service) RecordMonthlyWinner(ctx context.Context, day EpochDay, player string) error {
	if err := s.repo.RecordMonthlyWinner(ctx, day.MonthKey(), player); err != nil {
		return fmt.Errorf("record monthly winner: %w", err)
	}
	return nil
}
