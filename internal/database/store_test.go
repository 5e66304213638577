package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/logger"
	"github.com/edgard/restobot/internal/secret"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newStore(t *testing.T) database.Store {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseDB(db) })

	box, err := secret.NewBox(testKey)
	require.NoError(t, err)
	return database.NewStore(db, box, logger.Discard())
}

func ptr(v int64) *int64 { return &v }

func TestStore_TenantRoundTripSealsToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	tenant := &database.Tenant{Slug: "pizza", Name: "Pizza Place", BotToken: "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsawQ"}
	require.NoError(t, store.SaveTenant(ctx, tenant))
	require.NotZero(t, tenant.ID)
	assert.Equal(t, "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsawQ", tenant.BotToken, "caller copy stays plaintext")

	got, err := store.GetTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.BotToken, got.BotToken)
	assert.True(t, got.HasBot())

	bySlug, err := store.GetTenantBySlug(ctx, "pizza")
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, bySlug.ID)

	got.BotToken = ""
	require.NoError(t, store.SaveTenant(ctx, got))
	got, err = store.GetTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.False(t, got.HasBot())
}

func TestStore_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	_, err := store.GetTenant(ctx, 404)
	assert.ErrorIs(t, err, database.ErrNotFound)
	_, err = store.GetTenantBySlug(ctx, "")
	assert.ErrorIs(t, err, database.ErrNotFound)
	_, err = store.GetNews(ctx, 404)
	assert.ErrorIs(t, err, database.ErrNotFound)
	_, err = store.FindRecipient(ctx, 1, 777)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestStore_Recipients(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	owner := &database.User{Name: "Owner", TelegramID: ptr(1001), TelegramChatID: ptr(5001)}
	alice := &database.User{Name: "Alice", Username: "alice", TelegramID: ptr(1002), TelegramChatID: ptr(5002)}
	bob := &database.User{Name: "Bob", TelegramID: ptr(1003)}
	carol := &database.User{Name: "Carol", TelegramID: ptr(1004), TelegramChatID: ptr(5004)}
	for _, u := range []*database.User{owner, alice, bob, carol} {
		require.NoError(t, store.SaveUser(ctx, u))
	}

	tenant := &database.Tenant{Slug: "sushi", Name: "Sushi Bar", OwnerID: &owner.ID}
	require.NoError(t, store.SaveTenant(ctx, tenant))
	require.NoError(t, store.AddTenantUser(ctx, tenant.ID, alice.ID))
	require.NoError(t, store.AddTenantUser(ctx, tenant.ID, bob.ID))
	require.NoError(t, store.AddTenantUser(ctx, tenant.ID, owner.ID))

	chatIDs, err := store.ListRecipientChatIDs(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{5001, 5002, 5001}, chatIDs, "owner first, chat-less users skipped, duplicates kept")

	found, err := store.FindRecipient(ctx, tenant.ID, 1002)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	found, err = store.FindRecipient(ctx, tenant.ID, 1001)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.ID)

	_, err = store.FindRecipient(ctx, tenant.ID, 1004)
	assert.ErrorIs(t, err, database.ErrNotFound, "carol is not linked")

	require.NoError(t, store.LikeTenant(ctx, tenant.ID, alice.ID))
	liked, err := store.IsTenantLikedBy(ctx, tenant.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	liked, err = store.IsTenantLikedBy(ctx, tenant.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, store.AddFriend(ctx, alice.ID, bob.ID))
	require.NoError(t, store.AddFriend(ctx, carol.ID, alice.ID))
	friends, err := store.ListFriends(ctx, tenant.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)

	friends, err = store.ListFriends(ctx, tenant.ID, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
	assert.NotNil(t, friends)
}

func TestStore_NewsWithImages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	tenant := &database.Tenant{Name: "Cafe"}
	require.NoError(t, store.SaveTenant(ctx, tenant))

	news := &database.News{
		RestaurantID: tenant.ID,
		Title:        "New menu",
		Body:         "<p>Try our <b>spring</b> dishes</p>",
		Images:       []string{"https://cdn.example.com/2.jpg", "https://cdn.example.com/1.jpg"},
	}
	require.NoError(t, store.SaveNews(ctx, news))

	got, err := store.GetNews(ctx, news.ID)
	require.NoError(t, err)
	assert.Equal(t, "New menu", got.Title)
	assert.Equal(t, news.Images, got.Images)
}

func TestStore_Maintenance(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	require.NoError(t, store.Ping(context.Background()))
	require.NoError(t, store.RunSQLMaintenance(context.Background()))
}
