package repository

import (
	"context"
	"testing"

	"poolbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildLinkRepository_GetByGuild(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewGuildLinkRepository(testDB.DB)
	ctx := context.Background()

	t.Run("no link found", func(t *testing.T) {
		link, err := repo.GetByGuild(ctx, 404404)
		require.NoError(t, err)
		assert.Nil(t, link)
	})

	t.Run("link found", func(t *testing.T) {
		original := testutil.CreateTestGuildLinkWithChannel(1001, "group-1", 2002)
		require.NoError(t, repo.Upsert(ctx, original))

		link, err := repo.GetByGuild(ctx, 1001)
		require.NoError(t, err)
		require.NotNil(t, link)

		assert.Equal(t, int64(1001), link.GuildID)
		assert.Equal(t, "group-1", link.GroupID)
		require.NotNil(t, link.AnnounceChannelID)
		assert.Equal(t, int64(2002), *link.AnnounceChannelID)
		assert.False(t, link.CreatedAt.IsZero())
	})
}

func TestGuildLinkRepository_Upsert(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewGuildLinkRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.CreateTestGuildLink(1001, "group-1")))

	t.Run("relinking replaces the group", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, testutil.CreateTestGuildLinkWithChannel(1001, "group-2", 3003)))

		link, err := repo.GetByGuild(ctx, 1001)
		require.NoError(t, err)
		require.NotNil(t, link)
		assert.Equal(t, "group-2", link.GroupID)
		require.NotNil(t, link.AnnounceChannelID)
		assert.Equal(t, int64(3003), *link.AnnounceChannelID)
	})

	t.Run("one link per guild", func(t *testing.T) {
		links, err := repo.ListByGroup(ctx, "group-1")
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestGuildLinkRepository_ListByGroup(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewGuildLinkRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.CreateTestGuildLink(1, "group-a")))
	require.NoError(t, repo.Upsert(ctx, testutil.CreateTestGuildLink(2, "group-a")))
	require.NoError(t, repo.Upsert(ctx, testutil.CreateTestGuildLink(3, "group-b")))

	links, err := repo.ListByGroup(ctx, "group-a")
	require.NoError(t, err)
	assert.Len(t, links, 2)

	links, err = repo.ListByGroup(ctx, "group-missing")
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestGuildLinkRepository_UpdateAnnounceChannel(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewGuildLinkRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.CreateTestGuildLink(1001, "group-1")))

	channelID := int64(5005)
	require.NoError(t, repo.UpdateAnnounceChannel(ctx, 1001, &channelID))

	link, err := repo.GetByGuild(ctx, 1001)
	require.NoError(t, err)
	require.NotNil(t, link.AnnounceChannelID)
	assert.Equal(t, int64(5005), *link.AnnounceChannelID)

	t.Run("clearing the channel", func(t *testing.T) {
		require.NoError(t, repo.UpdateAnnounceChannel(ctx, 1001, nil))

		link, err := repo.GetByGuild(ctx, 1001)
		require.NoError(t, err)
		assert.Nil(t, link.AnnounceChannelID)
	})

	t.Run("unknown guild errors", func(t *testing.T) {
		err := repo.UpdateAnnounceChannel(ctx, 404404, &channelID)
		assert.Error(t, err)
	})
}

func TestGuildLinkRepository_Unlink(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	linkRepo := NewGuildLinkRepository(testDB.DB)
	messageRepo := NewBetMessageRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, linkRepo.Upsert(ctx, testutil.CreateTestGuildLink(1001, "group-1")))

	msg := testutil.CreateTestBetMessage(7007, "bet-1")
	msg.GuildID = 1001
	require.NoError(t, messageRepo.Record(ctx, msg))

	require.NoError(t, linkRepo.Unlink(ctx, 1001))

	link, err := linkRepo.GetByGuild(ctx, 1001)
	require.NoError(t, err)
	assert.Nil(t, link)

	// The guild's bet message registry goes with the link
	stored, err := messageRepo.GetByMessage(ctx, 7007)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
