package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/nextlevelbuilder/scrybot/internal/channels"
	"github.com/nextlevelbuilder/scrybot/internal/scryfall"
)

// handleMessage processes an incoming Telegram update: extracts card
// references from the message text and sends one reply per reference.
func (c *Channel) handleMessage(ctx context.Context, update telego.Update) {
	message := update.Message
	if message == nil {
		return
	}

	// Only plain text reaches the pipeline. Edits, media without captions and
	// service messages carry no Text and are skipped here.
	if message.Text == "" {
		return
	}

	// Senders that can't be identified (anonymous admins, channel-backed
	// posts) don't get past a configured allowlist.
	if user := message.From; user == nil {
		if c.HasAllowList() {
			slog.Debug("telegram message rejected: unidentifiable sender", "chat_id", message.Chat.ID)
			return
		}
	} else {
		userID := fmt.Sprintf("%d", user.ID)
		if !c.IsAllowed(userID) {
			slog.Debug("telegram message rejected by allowlist", "user_id", userID)
			return
		}
	}

	replies := channels.ResolveAll(ctx, c.resolver, message.Text)
	if len(replies) == 0 {
		return
	}

	slog.Info("cards found",
		"chat_id", message.Chat.ID,
		"count", len(replies),
	)

	for _, reply := range replies {
		c.sendReply(ctx, message.Chat.ID, reply)
	}
}

// sendReply renders one resolution result into the chat.
func (c *Channel) sendReply(ctx context.Context, chatID int64, reply channels.Reply) {
	if reply.Err != nil {
		slog.Info("card lookup failed", "ref", reply.Ref, "error", reply.Err)
		msg := tu.Message(tu.ID(chatID), channels.DiagnosticText(reply.Err))
		if _, err := c.bot.SendMessage(ctx, msg); err != nil {
			slog.Warn("failed to send diagnostic", "chat_id", chatID, "error", err)
		}
		return
	}

	switch outcome := reply.Outcome.(type) {
	case scryfall.Card:
		if outcome.ImageURL == "" {
			c.sendText(ctx, chatID, channels.NoImageText(outcome.Name, outcome.URL), "")
			return
		}
		photo := tu.Photo(tu.ID(chatID), tu.FileFromURL(outcome.ImageURL))
		photo.Caption = channels.FoundCaption(outcome.Name, outcome.URL)
		photo.DisableNotification = true
		if _, err := c.bot.SendPhoto(ctx, photo); err != nil {
			slog.Warn("failed to send photo", "chat_id", chatID, "card", outcome.Name, "error", err)
		}

	case scryfall.CardFaces:
		media := make([]telego.InputMedia, 0, len(outcome.ImageURLs))
		for i, img := range outcome.ImageURLs {
			item := tu.MediaPhoto(tu.FileFromURL(img))
			if i == 0 {
				// A media group shows the first item's caption as the
				// caption for the whole album.
				item.Caption = channels.FoundCaption(outcome.Name, outcome.URL)
			}
			media = append(media, item)
		}
		group := tu.MediaGroup(tu.ID(chatID), media...)
		group.DisableNotification = true
		if _, err := c.bot.SendMediaGroup(ctx, group); err != nil {
			slog.Warn("failed to send media group", "chat_id", chatID, "card", outcome.Name, "error", err)
		}

	case scryfall.NotFound:
		c.sendText(ctx, chatID, channels.NotFoundText(outcome), telego.ModeMarkdown)
	}
}

func (c *Channel) sendText(ctx context.Context, chatID int64, text, parseMode string) {
	msg := tu.Message(tu.ID(chatID), text)
	msg.ParseMode = parseMode
	msg.DisableNotification = true
	if _, err := c.bot.SendMessage(ctx, msg); err != nil {
		slog.Warn("failed to send message", "chat_id", chatID, "error", err)
	}
}
