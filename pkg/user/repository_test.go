package user

import (
	"context"
	"testing"

	"github.com/finpercent/finpercent/internal/test_utils"
	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepoImpl(t *testing.T) {
	db := test_utils.NewTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	// given
	id, err := repo.CreateUser(ctx, User{
		Uid:          "uid-1",
		Username:     "asha",
		Email:        "asha@example.com",
		DisplayName:  "Asha",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	t.Run("should read user with default settings", func(t *testing.T) {
		stored, err := repo.GetUser(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "asha", stored.Username)
		assert.Equal(t, "hash", stored.PasswordHash)
		assert.Equal(t, allocation.NWS, stored.Settings.ActiveMethod)
		assert.Equal(t, tax.RegimeNew, stored.Settings.TaxRegime)
	})

	t.Run("should find by uid and username", func(t *testing.T) {
		byUid, err := repo.GetUserByUid(ctx, "uid-1")
		require.NoError(t, err)
		byName, err := repo.GetUserByUsername(ctx, "asha")
		require.NoError(t, err)

		assert.Equal(t, id, byUid.Id)
		assert.Equal(t, id, byName.Id)
	})

	t.Run("should report missing users", func(t *testing.T) {
		_, err := repo.GetUser(ctx, 999)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("should reject duplicate username", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, User{Uid: "uid-2", Username: "asha"})

		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("should update settings", func(t *testing.T) {
		updated, err := repo.UpdateUser(ctx, id, User{
			DisplayName: "Asha K",
			Settings:    Settings{ActiveMethod: allocation.Kakeibo, TaxRegime: tax.RegimeOld},
		})

		require.NoError(t, err)
		assert.Equal(t, "Asha K", updated.DisplayName)
		assert.Equal(t, allocation.Kakeibo, updated.Settings.ActiveMethod)
		assert.Equal(t, tax.RegimeOld, updated.Settings.TaxRegime)
	})

	t.Run("should check username availability", func(t *testing.T) {
		taken, err := repo.IsUsernameAvailable(ctx, "asha")
		require.NoError(t, err)
		free, err := repo.IsUsernameAvailable(ctx, "ravi")
		require.NoError(t, err)

		assert.False(t, taken)
		assert.True(t, free)
	})

	t.Run("should delete user", func(t *testing.T) {
		require.NoError(t, repo.DeleteUser(ctx, id))

		users, err := repo.GetAllUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
		assert.ErrorIs(t, repo.DeleteUser(ctx, id), ErrUserNotFound)
	})
}
