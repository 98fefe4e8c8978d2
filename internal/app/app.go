// Package app initializes all application components.
// app.go is the assembly point: database pool, repositories, services,
// handlers, filters, bot and scheduler, wired in dependency order.
package app

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/wordleworkers/wordlebot/internal/bot"
	"github.com/wordleworkers/wordlebot/internal/bot/filters"
	"github.com/wordleworkers/wordlebot/internal/config"
	"github.com/wordleworkers/wordlebot/internal/db/postgres"
	"github.com/wordleworkers/wordlebot/internal/features/reactions"
	"github.com/wordleworkers/wordlebot/internal/features/scores"
	"github.com/wordleworkers/wordlebot/internal/jobs"
)

// App holds all application components.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
	BotAPI    *tgbotapi.BotAPI
}

// New creates and initializes the application.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. Database ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	// === 2. Telegram Bot API ===
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram API setup failed: %w", err)
	}
	botAPI.Debug = cfg.AppEnv == "development"
	log.Infof("Authorized as @%s", botAPI.Self.UserName)

	// === 3. Repositories and services ===
	scoreRepo := scores.NewRepository(pool)
	scoreService := scores.NewService(scoreRepo, cfg)

	// === 4. Handlers ===
	picker := reactions.NewPicker(cfg.ReactionCacheSize, time.Now().UnixNano())
	scoreHandler := scores.NewHandler(scoreService, picker, botAPI, cfg)

	// === 5. Filter and bot ===
	chatFilter := filters.NewChatFilter(cfg.GroupChatID)
	b := bot.New(botAPI, cfg, scoreHandler, chatFilter)

	// === 6. Scheduler ===
	scheduler := jobs.NewScheduler(scoreService, cfg, b.Announce)

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		DB:        pool,
		BotAPI:    botAPI,
	}, nil
}

// runMigrations applies the embedded SQL migrations in order.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.EnsureMigrationTable(ctx, pool); err != nil {
		return err
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Scores},
		{2, migration002MonthlyWinners},
	}

	for _, m := range migrations {
		if err := postgres.ApplyMigration(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
		log.Infof("Migration %d applied", m.version)
	}
	return nil
}

// The day column is ISO text rather than DATE: the table was imported
// from the group's old spreadsheet and some historical rows carry
// serial-number dates that only the validating reader can interpret.
// The unique index closes the duplicate-submission race at the store.
var migration001Scores = `
CREATE TABLE IF NOT EXISTS scores (
    id BIGSERIAL PRIMARY KEY,
    day TEXT NOT NULL,
    player TEXT NOT NULL,
    score NUMERIC(10,1) NOT NULL DEFAULT 0,
    puzzle_number INTEGER NOT NULL DEFAULT 0,
    attempts TEXT NOT NULL,
    current_streak INTEGER NOT NULL DEFAULT 0,
    max_streak INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_scores_day_player ON scores(day, player);
CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player);
CREATE INDEX IF NOT EXISTS idx_scores_day ON scores(day);
`

var migration002MonthlyWinners = `
CREATE TABLE IF NOT EXISTS monthly_winners (
    id BIGSERIAL PRIMARY KEY,
    month TEXT UNIQUE NOT NULL,
    player TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);
`
