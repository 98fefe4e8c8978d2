// handlers.go formats the Telegram-facing replies. All chat markup
// lives here; the engine below it only produces structured summaries.
package scores

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/wordleworkers/wordlebot/internal/common"
	"github.com/wordleworkers/wordlebot/internal/config"
	"github.com/wordleworkers/wordlebot/internal/features/reactions"
)

// Handler turns service results into group-chat messages.
type Handler struct {
	service   *Service
	reactions *reactions.Picker
	bot       *tgbotapi.BotAPI
	cfg       *config.Config
}

// NewHandler creates the scores handler.
func NewHandler(service *Service, picker *reactions.Picker, bot *tgbotapi.BotAPI, cfg *config.Config) *Handler {
	return &Handler{service: service, reactions: picker, bot: bot, cfg: cfg}
}

// HandleMessage feeds a plain chat message through the submission
// pipeline. Returns true when the message was a submission (a reply was
// sent); false means ordinary chatter that the bot ignores.
func (h *Handler) HandleMessage(ctx context.Context, chatID int64, player, text string, sentAt time.Time) bool {
	outcome, err := h.service.HandleSubmission(ctx, text, player, sentAt)
	if err != nil {
		log.WithError(err).WithField("player", player).Error("submission handling failed")
		h.sendMessage(chatID, "😵 Something went wrong logging that one. Try again in a minute?")
		return true
	}
	if outcome == nil {
		return false
	}

	if outcome.Duplicate {
		h.sendMessage(chatID, fmt.Sprintf(
			"🛑 %s, you've already submitted your Wordle for today. No cheating! 😜",
			outcome.Summary.Player,
		))
		return true
	}

	if outcome.Summary.Archive {
		h.sendMessage(chatID, fmt.Sprintf(
			"🗃️ Sorry %s, I will score your Archive Wordle but I can only log *today's* game to the leaderboard.",
			outcome.Summary.Player,
		))
	}

	h.sendMessage(chatID, h.formatSummary(outcome))
	return true
}

// formatSummary builds the score announcement line plus rank context.
func (h *Handler) formatSummary(outcome *Outcome) string {
	sum := outcome.Summary

	var decorations strings.Builder
	decorations.WriteString(fmt.Sprintf(" (%d%s)", sum.Streak.Current, common.StreakEmoji(sum.Streak.Current)))
	if outcome.MonthlyChampion {
		decorations.WriteString(" 🏆")
	}
	if sum.WeeklyCrown {
		decorations.WriteString(" 👑")
	}
	if sum.DailyMedal > 0 {
		decorations.WriteString(" " + common.MedalFor(sum.DailyMedal))
	}

	reaction := reactions.Fallback
	if h.cfg.FeatureReactionsEnabled {
		reaction = h.reactions.Pick(sum.Attempts.String())
	}

	text := fmt.Sprintf("%s%s scored %s points! %s",
		sum.Player, decorations.String(), common.FormatPoints(sum.Score), reaction)

	if sum.DoublePoints && !sum.Archive && sum.Attempts.Completed() {
		text += "\n✨ Double points day!"
	}

	if line := h.formatRankLine(sum); line != "" {
		text += "\n" + line
	}
	return text
}

// formatRankLine renders today's rank and rival context. Archive games
// are off the board, so they get none.
func (h *Handler) formatRankLine(sum Summary) string {
	if sum.Archive || sum.Rank == 0 {
		return ""
	}
	if sum.Rank == 1 {
		if sum.FieldSize > 1 {
			return "🏅 You're leading today's board!"
		}
		return "🏅 First on the board today!"
	}

	line := fmt.Sprintf("🏅 You're %s today", common.Ordinal(sum.Rank))
	if sum.Rival != nil {
		if sum.Rival.Tied {
			line += fmt.Sprintf(" — neck and neck with %s!", sum.Rival.Player)
		} else {
			line += fmt.Sprintf(" — %s pts behind %s.", common.FormatPoints(sum.Rival.Gap), sum.Rival.Player)
		}
	} else {
		line += "."
	}
	return line
}

// HandleLeaderboard — /leaderboard, today's board.
func (h *Handler) HandleLeaderboard(ctx context.Context, chatID int64, now time.Time) {
	board, err := h.service.DayBoard(ctx, h.service.EffectiveToday(now))
	if err != nil {
		h.replyBoardError(chatID, err)
		return
	}
	if len(board) == 0 {
		h.sendMessage(chatID, "📈 *Today's Leaderboard:*\n\nNo scores submitted yet today! Don't make me call HR. 😜")
		return
	}
	h.sendMessage(chatID, formatBoard("📈 *Today's Leaderboard:*", board, 0))
}

// HandleWeeklyLeaderboard — /weeklyleaderboard, this week so far.
func (h *Handler) HandleWeeklyLeaderboard(ctx context.Context, chatID int64, now time.Time) {
	board, err := h.service.WeekBoard(ctx, now, false)
	if err != nil {
		h.replyBoardError(chatID, err)
		return
	}
	if len(board) == 0 {
		h.sendMessage(chatID, "📅 No scores recorded this week. Let's smash it! 🎯")
		return
	}
	h.sendMessage(chatID, formatBoard("📅 *This Week's Leaderboard:*", board, 0))
}

// HandleMonthlyLeaderboard — /monthlyleaderboard, this month so far.
func (h *Handler) HandleMonthlyLeaderboard(ctx context.Context, chatID int64, now time.Time) {
	board, err := h.service.MonthBoard(ctx, now, false)
	if err != nil {
		h.replyBoardError(chatID, err)
		return
	}
	if len(board) == 0 {
		h.sendMessage(chatID, "🗓️ No scores recorded this month yet!")
		return
	}
	h.sendMessage(chatID, formatBoard("🗓️ *This Month's Leaderboard:*", board, 0))
}

// HandleLastMonthLeaderboard — /lastmonthleaderboard, the finished board
// of the previous month.
func (h *Handler) HandleLastMonthLeaderboard(ctx context.Context, chatID int64, now time.Time) {
	board, err := h.service.MonthBoard(ctx, now, true)
	if err != nil {
		h.replyBoardError(chatID, err)
		return
	}
	if len(board) == 0 {
		h.sendMessage(chatID, "🗓️ No scores were recorded last month.")
		return
	}
	h.sendMessage(chatID, formatBoard("🗓️ *Last Month's Leaderboard:*", board, 0))
}

// HandleLastWeekChamp — /lastweekchamp.
func (h *Handler) HandleLastWeekChamp(ctx context.Context, chatID int64, now time.Time) {
	board, err := h.service.WeekBoard(ctx, now, true)
	if err != nil {
		h.replyBoardError(chatID, err)
		return
	}
	if len(board) == 0 {
		h.sendMessage(chatID, "🤷 No games were logged last week.")
		return
	}
	h.sendMessage(chatID, fmt.Sprintf(
		"👑 *Last week's Champion:*\n\n%s with %s points! Congratulations! 🎉",
		board[0].Player, common.FormatPoints(board[0].Points),
	))
}

// HandleTop10 — /top10, the all-time board capped at ten rows.
func (h *Handler) HandleTop10(ctx context.Context, chatID int64) {
	board, err := h.service.AllTimeBoard(ctx)
	if err != nil {
		h.replyBoardError(chatID, err)
		return
	}
	if len(board) == 0 {
		h.sendMessage(chatID, "🏅 No data yet! Let the games begin! 🎯")
		return
	}
	h.sendMessage(chatID, formatBoard("🏅 *Top 10 All-Time Wordlers:*", board, 10))
}

// HandleStreakLeaderboard — /streakleaderboard, latest snapshot per player.
func (h *Handler) HandleStreakLeaderboard(ctx context.Context, chatID int64) {
	standings, err := h.service.StreakBoard(ctx)
	if err != nil {
		h.replyBoardError(chatID, err)
		return
	}
	if len(standings) == 0 {
		h.sendMessage(chatID, "🤷 No data yet — play a few games and try again.")
		return
	}

	var b strings.Builder
	b.WriteString("🔥 *Streak Leaderboard:*\n\n")
	for i, st := range standings {
		b.WriteString(fmt.Sprintf("%d. %s: %d %s %s(max %d)\n",
			i+1, st.Player, st.Streak.Current, common.PluralDays(st.Streak.Current),
			spaceAfter(common.StreakEmoji(st.Streak.Current)), st.Streak.Max))
	}
	h.sendMessage(chatID, b.String())
}

// HandleMyRank — /myrank.
func (h *Handler) HandleMyRank(ctx context.Context, chatID int64, player string, now time.Time) {
	rank, err := h.service.MyRank(ctx, player, now)
	if errors.Is(err, common.ErrNoScores) {
		h.sendMessage(chatID, fmt.Sprintf(
			"😬 %s, you haven't even played yet! Are you even Wordling, bro? 🧠🎯", player))
		return
	}
	if err != nil {
		h.replyBoardError(chatID, err)
		return
	}

	h.sendMessage(chatID, fmt.Sprintf(
		"🏅 %s, you're ranked #%d with %s points today!\n%s Current Streak: %d %s | Max Streak: %d %s",
		player, rank.Rank, common.FormatPoints(rank.Points),
		common.StreakEmoji(rank.Streak.Current),
		rank.Streak.Current, common.PluralDays(rank.Streak.Current),
		rank.Streak.Max, common.PluralDays(rank.Streak.Max),
	))
}

// HandleRecalcStreaks — admin /recalcstreaks: recompute everyone's
// streaks from raw rows and post the resulting table.
func (h *Handler) HandleRecalcStreaks(ctx context.Context, chatID int64, now time.Time) {
	standings, err := h.service.RecalcStreaks(ctx, now)
	if err != nil {
		h.replyBoardError(chatID, err)
		return
	}
	if len(standings) == 0 {
		h.sendMessage(chatID, "🤷 Nothing to recalculate yet.")
		return
	}

	var b strings.Builder
	b.WriteString("🔧 *Streaks recalculated:*\n\n")
	for _, st := range standings {
		b.WriteString(fmt.Sprintf("%s: current %d, max %d\n", st.Player, st.Streak.Current, st.Streak.Max))
	}
	h.sendMessage(chatID, b.String())
}

// HandleExport — admin /export: reply with the full history as .xlsx.
func (h *Handler) HandleExport(ctx context.Context, chatID int64) {
	data, name, err := h.service.ExportXLSX(ctx)
	if err != nil {
		log.WithError(err).Error("export failed")
		h.sendMessage(chatID, "❌ Export failed, check the logs.")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = "📊 Full score history"
	if _, err := h.bot.Send(doc); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send export document")
	}
}

// formatBoard renders a ranked points list. limit 0 means no cap.
func formatBoard(title string, board []Standing, limit int) string {
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for i, s := range board {
		if limit > 0 && i >= limit {
			break
		}
		badge := common.MedalFor(i + 1)
		if badge != "" {
			badge += " "
		}
		b.WriteString(fmt.Sprintf("%d. %s%s: %s pts\n", i+1, badge, s.Player, common.FormatPoints(s.Points)))
	}
	return b.String()
}

func spaceAfter(s string) string {
	if s == "" {
		return ""
	}
	return s + " "
}

func (h *Handler) replyBoardError(chatID int64, err error) {
	log.WithError(err).Error("leaderboard query failed")
	h.sendMessage(chatID, "❌ Couldn't fetch the scores right now, try again later.")
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
