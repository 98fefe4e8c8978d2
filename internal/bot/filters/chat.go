// Package filters gates which chats the bot reacts to.
package filters

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// ChatFilter restricts the bot to its one configured group chat.
// Everything else — other groups, channels, random DMs — is ignored
// outright; the leaderboard belongs to exactly one group.
type ChatFilter struct {
	groupChatID int64
}

// NewChatFilter creates the filter for the configured group.
func NewChatFilter(groupChatID int64) *ChatFilter {
	return &ChatFilter{groupChatID: groupChatID}
}

// Allow reports whether a message should be processed at all.
func (f *ChatFilter) Allow(message *tgbotapi.Message) bool {
	if message == nil || message.Chat == nil || message.From == nil {
		return false
	}
	if f.groupChatID == 0 {
		log.WithField("component", "ChatFilter").Error("groupChatID is 0 (config bug)")
		return false
	}
	if message.Chat.ID != f.groupChatID {
		log.WithFields(log.Fields{
			"component": "ChatFilter",
			"chat_id":   message.Chat.ID,
			"chat_type": message.Chat.Type,
		}).Debug("deny: not the score group")
		return false
	}
	return true
}
