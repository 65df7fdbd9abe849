package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/nextlevelbuilder/scrybot/internal/channels"
	"github.com/nextlevelbuilder/scrybot/internal/scryfall"
)

// handleMessage processes an incoming Discord message: extracts card
// references from the content and sends one reply per reference.
func (c *Channel) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == c.botUserID || m.Author.Bot {
		return
	}
	if m.Content == "" {
		return
	}
	if !c.IsAllowed(m.Author.ID) {
		slog.Debug("discord message rejected by allowlist", "user_id", m.Author.ID)
		return
	}

	replies := channels.ResolveAll(context.Background(), c.resolver, m.Content)
	if len(replies) == 0 {
		return
	}

	slog.Info("cards found",
		"channel_id", m.ChannelID,
		"count", len(replies),
	)

	for _, reply := range replies {
		c.sendReply(m.ChannelID, reply)
	}
}

// sendReply renders one resolution result into the Discord channel. Images
// ride in embeds so Discord fetches them by URL, like Telegram photo sends.
func (c *Channel) sendReply(channelID string, reply channels.Reply) {
	if reply.Err != nil {
		slog.Info("card lookup failed", "ref", reply.Ref, "error", reply.Err)
		if _, err := c.session.ChannelMessageSend(channelID, channels.DiagnosticText(reply.Err)); err != nil {
			slog.Warn("failed to send diagnostic", "channel_id", channelID, "error", err)
		}
		return
	}

	switch outcome := reply.Outcome.(type) {
	case scryfall.Card:
		if outcome.ImageURL == "" {
			c.sendSilent(channelID, &discordgo.MessageSend{
				Content: channels.NoImageText(outcome.Name, outcome.URL),
			})
			return
		}
		c.sendSilent(channelID, &discordgo.MessageSend{
			Content: channels.FoundCaption(outcome.Name, outcome.URL),
			Embeds: []*discordgo.MessageEmbed{{
				Image: &discordgo.MessageEmbedImage{URL: outcome.ImageURL},
			}},
		})

	case scryfall.CardFaces:
		embeds := make([]*discordgo.MessageEmbed, 0, len(outcome.ImageURLs))
		for _, img := range outcome.ImageURLs {
			embeds = append(embeds, &discordgo.MessageEmbed{
				Image: &discordgo.MessageEmbedImage{URL: img},
			})
		}
		c.sendSilent(channelID, &discordgo.MessageSend{
			Content: channels.FoundCaption(outcome.Name, outcome.URL),
			Embeds:  embeds,
		})

	case scryfall.NotFound:
		c.sendSilent(channelID, &discordgo.MessageSend{
			Content: channels.NotFoundText(outcome),
		})
	}
}

func (c *Channel) sendSilent(channelID string, msg *discordgo.MessageSend) {
	msg.Flags |= discordgo.MessageFlagsSuppressNotifications
	if _, err := c.session.ChannelMessageSendComplex(channelID, msg); err != nil {
		slog.Warn("failed to send message", "channel_id", channelID, "error", err)
	}
}
