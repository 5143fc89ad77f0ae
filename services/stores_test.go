package services

import (
	"context"
	"stylistapi/dbhelper"
	"stylistapi/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := dbhelper.SetupTestDB()
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	cleaner := dbhelper.SetupCleaner(db)
	cleaner()
	t.Cleanup(cleaner)
	return NewGormStore(db)
}

func createUser(t *testing.T, store *GormStore, email string, notify bool) *models.UserAccount {
	t.Helper()
	user := &models.UserAccount{
		Name:                 "Store User",
		Email:                email,
		Platform:             models.PlatformAndroid,
		ReceiveNotifications: notify,
		PreferredColors:      []string{"navy"},
	}
	require.NoError(t, store.UpdateProfile(context.Background(), user))
	return user
}

func TestGormStoreWardrobe(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner@example.com", true)
	other := createUser(t, store, "other@example.com", true)

	item := &models.Clothing{
		Name:      "Oxford Shirt",
		Category:  models.CategoryTop,
		Color:     "white",
		Formality: models.FormalitySmartCasual,
		Season:    models.SeasonAll,
		OwnerID:   owner.ID,
	}
	require.NoError(t, store.CreateItem(ctx, item))
	require.NotZero(t, item.ID)

	items, err := store.ListItems(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Oxford Shirt", items[0].Name)

	_, err = store.GetItem(ctx, other.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	item.Color = "light blue"
	require.NoError(t, store.SaveItem(ctx, item))
	stored, err := store.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "light blue", stored.Color)

	assert.ErrorIs(t, store.DeleteItem(ctx, other.ID, item.ID), ErrNotFound)
	require.NoError(t, store.DeleteItem(ctx, owner.ID, item.ID))
	_, err = store.GetItemByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStoreProfilesAndTokens(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	notified := createUser(t, store, "daily@example.com", true)
	createUser(t, store, "quiet@example.com", false)

	users, err := store.ListNotifiableUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, notified.ID, users[0].ID)
	assert.Equal(t, []string{"navy"}, []string(users[0].PreferredColors))

	token := &models.UserPushToken{UserAccountID: notified.ID, Platform: models.PlatformAndroid, Token: "device-1"}
	require.NoError(t, store.SavePushToken(ctx, token))
	again := &models.UserPushToken{UserAccountID: notified.ID, Platform: models.PlatformAndroid, Token: "device-1"}
	require.NoError(t, store.SavePushToken(ctx, again))
	assert.Equal(t, token.ID, again.ID)

	tokens, err := store.ActivePushTokens(ctx, notified.ID)
	require.NoError(t, err)
	assert.Len(t, tokens, 1)

	_, err = store.GetUser(ctx, 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStoreOutfits(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "outfits@example.com", false)

	liked := &models.SavedOutfit{OwnerID: owner.ID, OutfitKey: "a", Name: "Classic Look", ItemIDs: []int64{1, 2}, Reaction: models.ReactionLiked}
	saved := &models.SavedOutfit{OwnerID: owner.ID, OutfitKey: "b", Name: "Easy Look", ItemIDs: []int64{3, 4}, Reaction: models.ReactionSaved}
	require.NoError(t, store.SaveOutfit(ctx, liked))
	require.NoError(t, store.SaveOutfit(ctx, saved))

	all, err := store.ListOutfits(ctx, owner.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyLiked, err := store.ListOutfits(ctx, owner.ID, string(models.ReactionLiked))
	require.NoError(t, err)
	require.Len(t, onlyLiked, 1)
	assert.Equal(t, "a", onlyLiked[0].OutfitKey)

	require.NoError(t, store.DeleteOutfit(ctx, owner.ID, liked.ID))
	assert.ErrorIs(t, store.DeleteOutfit(ctx, owner.ID, liked.ID), ErrNotFound)
}

func TestNotFoundMapping(t *testing.T) {
	assert.ErrorIs(t, notFound(gorm.ErrRecordNotFound), ErrNotFound)
	assert.Nil(t, notFound(nil))
}
