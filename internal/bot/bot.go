// Package bot contains the main bot module: startup, the long-polling
// loop and command routing.
package bot

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/wordleworkers/wordlebot/internal/bot/filters"
	"github.com/wordleworkers/wordlebot/internal/bot/middleware"
	"github.com/wordleworkers/wordlebot/internal/config"
	"github.com/wordleworkers/wordlebot/internal/features/scores"
)

// Bot ties the transport to the feature handlers.
type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.Config

	chatFilter  *filters.ChatFilter
	rateLimiter *middleware.RateLimiter

	scoresHandler *scores.Handler

	// parallelism cap for update handling
	inflight chan struct{}
}

// New creates the bot with all dependencies.
func New(api *tgbotapi.BotAPI, cfg *config.Config, scoresHandler *scores.Handler, chatFilter *filters.ChatFilter) *Bot {
	maxInflight := cfg.BotMaxInflight
	if maxInflight <= 0 {
		maxInflight = 64
	}

	return &Bot{
		api:           api,
		cfg:           cfg,
		chatFilter:    chatFilter,
		rateLimiter:   middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		scoresHandler: scoresHandler,
		inflight:      make(chan struct{}, maxInflight),
	}
}

// Start runs the long-polling loop until the context is cancelled.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.BotUpdateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	log.WithFields(log.Fields{
		"max_inflight": b.cfg.BotMaxInflight,
		"timeout_sec":  b.cfg.BotUpdateTimeoutSeconds,
	}).Info("Bot started, waiting for messages...")

	for {
		select {
		case <-ctx.Done():
			log.Info("Bot stopping (ctx done)...")
			b.api.StopReceivingUpdates()
			b.rateLimiter.Close()
			return

		case update, ok := <-updates:
			if !ok {
				log.Info("Updates channel closed, bot stopped")
				return
			}

			b.inflight <- struct{}{}
			go func(upd tgbotapi.Update) {
				defer func() { <-b.inflight }()
				b.handleUpdate(ctx, upd)
			}(update)
		}
	}
}

// handleUpdate processes a single update.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer middleware.RecoverFromPanic()

	if update.Message == nil || update.Message.Text == "" {
		return
	}
	message := update.Message

	middleware.LogMessage(message)

	if !b.chatFilter.Allow(message) {
		return
	}

	if !b.rateLimiter.Allow(message.From.ID) {
		log.WithField("user_id", message.From.ID).Debug("rate limited")
		return
	}

	chatID := message.Chat.ID
	// Players are keyed by first name, the way the leaderboard always
	// displayed them. Not a stable ID, but it matches years of rows.
	player := message.From.FirstName
	if player == "" {
		player = "Unknown"
	}
	sentAt := time.Unix(int64(message.Date), 0)

	if cmd, args, isCommand := parseCommand(message.Text); isCommand {
		b.routeCommand(ctx, chatID, message, cmd, args)
		return
	}

	// Not a command: maybe it's a Wordle submission. Anything else is
	// ordinary chatter the bot stays out of.
	b.scoresHandler.HandleMessage(ctx, chatID, player, message.Text, sentAt)
}

// routeCommand dispatches a /command to its handler.
func (b *Bot) routeCommand(ctx context.Context, chatID int64, message *tgbotapi.Message, cmd string, args []string) {
	log.WithFields(log.Fields{"cmd": cmd, "args": args}).Debug("routing command")

	player := message.From.FirstName
	now := time.Unix(int64(message.Date), 0)

	switch cmd {
	case "leaderboard":
		b.scoresHandler.HandleLeaderboard(ctx, chatID, now)

	case "weeklyleaderboard":
		b.scoresHandler.HandleWeeklyLeaderboard(ctx, chatID, now)

	case "monthlyleaderboard":
		b.scoresHandler.HandleMonthlyLeaderboard(ctx, chatID, now)

	case "lastmonthleaderboard":
		b.scoresHandler.HandleLastMonthLeaderboard(ctx, chatID, now)

	case "lastweekchamp":
		b.scoresHandler.HandleLastWeekChamp(ctx, chatID, now)

	case "top10":
		b.scoresHandler.HandleTop10(ctx, chatID)

	case "streakleaderboard":
		b.scoresHandler.HandleStreakLeaderboard(ctx, chatID)

	case "myrank":
		b.scoresHandler.HandleMyRank(ctx, chatID, player, now)

	case "rules":
		b.sendMessage(chatID, rulesText)

	case "scoring":
		b.sendMessage(chatID, scoringText)

	case "help", "start":
		b.sendMessage(chatID, helpText)

	case "about":
		b.sendMessage(chatID, aboutText)

	case "ping":
		b.sendMessage(chatID, "🏓 Pong! Still counting your greens.")

	case "recalcstreaks":
		if b.requireAdmin(chatID, message) {
			b.scoresHandler.HandleRecalcStreaks(ctx, chatID, now)
		}

	case "export":
		if b.requireAdmin(chatID, message) {
			b.scoresHandler.HandleExport(ctx, chatID)
		}

	case "say":
		if b.requireAdmin(chatID, message) && len(args) > 0 {
			b.sendMessage(chatID, strings.Join(args, " "))
		}
	}
}

// requireAdmin checks the allow-list and scolds impostors.
func (b *Bot) requireAdmin(chatID int64, message *tgbotapi.Message) bool {
	if b.cfg.IsAdmin(message.From.UserName) {
		return true
	}
	log.WithFields(log.Fields{
		"user_id":  message.From.ID,
		"username": message.From.UserName,
	}).Info("admin command from non-admin")
	b.sendMessage(chatID, "🔒 Nice try — that one's for admins only.")
	return false
}

// Announce posts to the score group. Used by the cron scheduler.
func (b *Bot) Announce(text string) {
	b.sendMessage(b.cfg.GroupChatID, text)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}

// parseCommand splits "/cmd@BotName arg arg" into its parts. Telegram
// clients append @BotName in groups; it is stripped before matching.
func parseCommand(text string) (string, []string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", nil, false
	}

	parts := strings.Fields(strings.TrimPrefix(text, "/"))
	if len(parts) == 0 {
		return "", nil, false
	}

	command := strings.ToLower(parts[0])
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}

	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}
	return command, args, true
}
