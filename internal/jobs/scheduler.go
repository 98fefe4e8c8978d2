// Package jobs runs the cron-scheduled announcements: daily podium,
// weekly and monthly champions, the double-points reminder and the
// Sunday summary.
package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/wordleworkers/wordlebot/internal/common"
	"github.com/wordleworkers/wordlebot/internal/config"
	"github.com/wordleworkers/wordlebot/internal/features/scores"
)

// AnnounceFunc posts a message to the score group.
type AnnounceFunc func(text string)

// Scheduler owns the cron instance and the announcement jobs.
type Scheduler struct {
	cron     *cron.Cron
	scores   *scores.Service
	cfg      *config.Config
	announce AnnounceFunc
	loc      *time.Location
}

// NewScheduler creates the scheduler in the configured timezone, so
// "08:00" means the group's morning and not the server's.
func NewScheduler(scoresService *scores.Service, cfg *config.Config, announce AnnounceFunc) *Scheduler {
	loc := cfg.Location()
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		scores:   scoresService,
		cfg:      cfg,
		announce: announce,
		loc:      loc,
	}
}

// Start registers and launches all jobs.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.cfg.FeatureAnnouncementsEnabled {
		log.Info("Announcements disabled, scheduler idle")
		return
	}

	// Yesterday's podium, every morning.
	s.cron.AddFunc("0 8 * * *", func() { s.dailyTopThree(ctx) })

	// Last week's champion, Monday mid-morning.
	s.cron.AddFunc("0 10 * * 1", func() { s.weeklyChampion(ctx) })

	// Last month's champion on the 1st.
	s.cron.AddFunc("0 10 1 * *", func() { s.monthlyChampion(ctx) })

	// Mid-month standings on the 15th.
	s.cron.AddFunc("0 10 15 * *", func() { s.midMonthLeaderboard(ctx) })

	// Double-points hype on the configured weekday morning.
	s.cron.AddFunc(fmt.Sprintf("0 9 * * %d", s.cfg.DoublePointsWeekday), func() {
		s.announce("🎉 *DOUBLE POINTS DAY!* Every point you score today counts twice. Choose your starting word wisely... ✨")
	})

	// Sunday evening week-so-far summary.
	s.cron.AddFunc("0 19 * * 0", func() { s.sundaySummary(ctx) })

	s.cron.Start()
	log.WithField("timezone", s.loc.String()).Info("Scheduler started")
}

// Stop halts the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Scheduler stopped")
}

func (s *Scheduler) dailyTopThree(ctx context.Context) {
	yesterday := s.scores.EffectiveToday(time.Now()) - 1
	board, err := s.scores.DayBoard(ctx, yesterday)
	if err != nil {
		log.WithError(err).Error("[CRON] daily top three failed")
		return
	}
	if len(board) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("🌟 *Yesterday's Top Wordlers!* 🌟\n\n")
	for i, standing := range board {
		if i >= 3 {
			break
		}
		b.WriteString(fmt.Sprintf("%s %s: %s pts\n",
			common.MedalFor(i+1), standing.Player, common.FormatPoints(standing.Points)))
	}
	s.announce(b.String())
}

func (s *Scheduler) weeklyChampion(ctx context.Context) {
	board, err := s.scores.WeekBoard(ctx, time.Now(), true)
	if err != nil {
		log.WithError(err).Error("[CRON] weekly champion failed")
		return
	}
	if len(board) == 0 {
		return
	}
	s.announce(fmt.Sprintf(
		"👑 *Last week's Champion:*\n\n%s with %s points! Congratulations! 🎉",
		board[0].Player, common.FormatPoints(board[0].Points),
	))
}

func (s *Scheduler) monthlyChampion(ctx context.Context) {
	now := time.Now()
	board, err := s.scores.MonthBoard(ctx, now, true)
	if err != nil {
		log.WithError(err).Error("[CRON] monthly champion failed")
		return
	}
	if len(board) == 0 {
		return
	}

	winner := board[0]
	lastMonth := s.scores.EffectiveToday(now).StartOfMonth() - 1
	if err := s.scores.RecordMonthlyWinner(ctx, lastMonth, winner.Player); err != nil {
		// Announce anyway; the trophy flag just won't show until fixed.
		log.WithError(err).Error("[CRON] failed to record monthly winner")
	}

	s.announce(fmt.Sprintf(
		"🏆 *MONTHLY CHAMPION!* 🏆\n\n%s takes the month with %s points! Bow before your Wordle overlord. 🙇",
		winner.Player, common.FormatPoints(winner.Points),
	))
}

func (s *Scheduler) midMonthLeaderboard(ctx context.Context) {
	board, err := s.scores.MonthBoard(ctx, time.Now(), false)
	if err != nil {
		log.WithError(err).Error("[CRON] mid-month leaderboard failed")
		return
	}
	if len(board) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("📊 *Mid-month check-in — the race so far:*\n\n")
	for i, standing := range board {
		badge := common.MedalFor(i + 1)
		if badge != "" {
			badge += " "
		}
		b.WriteString(fmt.Sprintf("%d. %s%s: %s pts\n",
			i+1, badge, standing.Player, common.FormatPoints(standing.Points)))
	}
	b.WriteString("\nHalf the month left to catch up! 🏃")
	s.announce(b.String())
}

func (s *Scheduler) sundaySummary(ctx context.Context) {
	board, err := s.scores.WeekBoard(ctx, time.Now(), false)
	if err != nil {
		log.WithError(err).Error("[CRON] sunday summary failed")
		return
	}
	if len(board) == 0 {
		s.announce("📊 *Sunday Summary:* nobody played this week?! The word was right there. 😶")
		return
	}

	var b strings.Builder
	b.WriteString("📊 *Sunday Summary — this week so far:*\n\n")
	for i, standing := range board {
		badge := common.MedalFor(i + 1)
		if badge != "" {
			badge += " "
		}
		b.WriteString(fmt.Sprintf("%d. %s%s: %s pts\n",
			i+1, badge, standing.Player, common.FormatPoints(standing.Points)))
	}
	b.WriteString("\nOne more day to move the table! 🎯")
	s.announce(b.String())
}
