package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"poolbot/database"
	"poolbot/models"
)

// GuildLinkRepository stores the binding between Discord guilds and remote
// betting groups
type GuildLinkRepository struct {
	db *database.DB
}

// NewGuildLinkRepository creates a new guild link repository
func NewGuildLinkRepository(db *database.DB) *GuildLinkRepository {
	return &GuildLinkRepository{db: db}
}

// GetByGuild retrieves the link for a guild, or nil if the guild is not
// linked to any group
func (r *GuildLinkRepository) GetByGuild(ctx context.Context, guildID int64) (*models.GuildLink, error) {
	query := `
		SELECT guild_id, group_id, announce_channel_id, linked_by, created_at, updated_at
		FROM guild_links
		WHERE guild_id = $1
	`

	var link models.GuildLink
	err := r.db.QueryRow(ctx, query, guildID).Scan(
		&link.GuildID,
		&link.GroupID,
		&link.AnnounceChannelID,
		&link.LinkedBy,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild link: %w", err)
	}

	return &link, nil
}

// ListByGroup returns every guild linked to a group, for fanning out
// announcements
func (r *GuildLinkRepository) ListByGroup(ctx context.Context, groupID string) ([]*models.GuildLink, error) {
	query := `
		SELECT guild_id, group_id, announce_channel_id, linked_by, created_at, updated_at
		FROM guild_links
		WHERE group_id = $1
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild links: %w", err)
	}
	defer rows.Close()

	var links []*models.GuildLink
	for rows.Next() {
		var link models.GuildLink
		if err := rows.Scan(
			&link.GuildID,
			&link.GroupID,
			&link.AnnounceChannelID,
			&link.LinkedBy,
			&link.CreatedAt,
			&link.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guild link: %w", err)
		}
		links = append(links, &link)
	}

	return links, rows.Err()
}

// Upsert creates or replaces the link for a guild
func (r *GuildLinkRepository) Upsert(ctx context.Context, link *models.GuildLink) error {
	query := `
		INSERT INTO guild_links (guild_id, group_id, announce_channel_id, linked_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id) DO UPDATE SET
			group_id = EXCLUDED.group_id,
			announce_channel_id = EXCLUDED.announce_channel_id,
			linked_by = EXCLUDED.linked_by,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		link.GuildID,
		link.GroupID,
		link.AnnounceChannelID,
		link.LinkedBy,
	).Scan(&link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert guild link: %w", err)
	}

	return nil
}

// UpdateAnnounceChannel changes the announcement channel for a linked guild
func (r *GuildLinkRepository) UpdateAnnounceChannel(ctx context.Context, guildID int64, channelID *int64) error {
	query := `
		UPDATE guild_links
		SET announce_channel_id = $2, updated_at = NOW()
		WHERE guild_id = $1
	`

	tag, err := r.db.Exec(ctx, query, guildID, channelID)
	if err != nil {
		return fmt.Errorf("failed to update announce channel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("guild %d is not linked to a group", guildID)
	}

	return nil
}

// Unlink removes a guild's link and its recorded bet messages in one
// transaction, so a later re-link starts with a clean message registry
func (r *GuildLinkRepository) Unlink(ctx context.Context, guildID int64) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM bet_messages WHERE guild_id = $1`, guildID); err != nil {
			return fmt.Errorf("failed to delete bet messages: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM guild_links WHERE guild_id = $1`, guildID); err != nil {
			return fmt.Errorf("failed to delete guild link: %w", err)
		}
		return nil
	})
}
