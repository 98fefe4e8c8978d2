// Package middleware contains cross-cutting update handling: incoming
// message logging, panic recovery and per-user rate limiting.
package middleware

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// LogMessage records an incoming message at debug level. Long texts are
// truncated — a full Wordle grid is six lines of emoji noise.
func LogMessage(message *tgbotapi.Message) {
	if message == nil || message.From == nil {
		return
	}

	// Truncate on runes, not bytes: grids are multibyte emoji.
	text := message.Text
	if runes := []rune(text); len(runes) > 60 {
		text = string(runes[:60]) + "…"
	}

	log.WithFields(log.Fields{
		"user_id":  message.From.ID,
		"chat_id":  message.Chat.ID,
		"username": message.From.UserName,
		"text":     text,
	}).Debug("incoming message")
}
