package testutil

import (
	"poolbot/models"
)

// CreateTestGuildLink creates a guild link with default values
func CreateTestGuildLink(guildID int64, groupID string) *models.GuildLink {
	return &models.GuildLink{
		GuildID:  guildID,
		GroupID:  groupID,
		LinkedBy: 999999,
	}
}

// CreateTestGuildLinkWithChannel creates a guild link with an announcement channel
func CreateTestGuildLinkWithChannel(guildID int64, groupID string, channelID int64) *models.GuildLink {
	link := CreateTestGuildLink(guildID, groupID)
	link.AnnounceChannelID = &channelID
	return link
}

// CreateTestBetMessage creates a bet message record with default values
func CreateTestBetMessage(messageID int64, betID string) *models.BetMessage {
	return &models.BetMessage{
		MessageID: messageID,
		ChannelID: 456,
		GuildID:   123,
		BetID:     betID,
	}
}
