package models

import (
	"time"
)

// GuildLink binds a Discord guild to a remote betting group. This is
// presentation-layer state owned by the bot, not by the remote service.
type GuildLink struct {
	GuildID           int64     `db:"guild_id"`
	GroupID           string    `db:"group_id"`
	AnnounceChannelID *int64    `db:"announce_channel_id"`
	LinkedBy          int64     `db:"linked_by"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// BetMessage records which Discord message displays which bet, so later
// interactions can resolve the bet id and refresh the right message.
type BetMessage struct {
	MessageID int64     `db:"message_id"`
	ChannelID int64     `db:"channel_id"`
	GuildID   int64     `db:"guild_id"`
	BetID     string    `db:"bet_id"`
	CreatedAt time.Time `db:"created_at"`
}
