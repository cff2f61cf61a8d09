package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"poolbot/database"
	"poolbot/models"
)

// BetMessageRepository records which Discord message displays which bet
type BetMessageRepository struct {
	db *database.DB
}

// NewBetMessageRepository creates a new bet message repository
func NewBetMessageRepository(db *database.DB) *BetMessageRepository {
	return &BetMessageRepository{db: db}
}

// Record stores a posted bet message. A message displays one bet for its
// whole lifetime, so conflicts simply refresh the mapping.
func (r *BetMessageRepository) Record(ctx context.Context, msg *models.BetMessage) error {
	query := `
		INSERT INTO bet_messages (message_id, channel_id, guild_id, bet_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (message_id) DO UPDATE SET
			bet_id = EXCLUDED.bet_id
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		msg.MessageID,
		msg.ChannelID,
		msg.GuildID,
		msg.BetID,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record bet message: %w", err)
	}

	return nil
}

// GetByMessage resolves which bet a message displays, or nil when the
// message is not a tracked bet view
func (r *BetMessageRepository) GetByMessage(ctx context.Context, messageID int64) (*models.BetMessage, error) {
	query := `
		SELECT message_id, channel_id, guild_id, bet_id, created_at
		FROM bet_messages
		WHERE message_id = $1
	`

	var msg models.BetMessage
	err := r.db.QueryRow(ctx, query, messageID).Scan(
		&msg.MessageID,
		&msg.ChannelID,
		&msg.GuildID,
		&msg.BetID,
		&msg.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet message: %w", err)
	}

	return &msg, nil
}

// GetByBet returns all messages currently displaying a bet, so each can be
// refreshed after a contribution
func (r *BetMessageRepository) GetByBet(ctx context.Context, betID string) ([]*models.BetMessage, error) {
	query := `
		SELECT message_id, channel_id, guild_id, bet_id, created_at
		FROM bet_messages
		WHERE bet_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, betID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bet messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.BetMessage
	for rows.Next() {
		var msg models.BetMessage
		if err := rows.Scan(
			&msg.MessageID,
			&msg.ChannelID,
			&msg.GuildID,
			&msg.BetID,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bet message: %w", err)
		}
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}
