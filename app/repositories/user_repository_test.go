package repositories

import (
	"testing"
	"time"

	"minisite/app/models"

	"github.com/stretchr/testify/assert"
)

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create and get by ID", func(t *testing.T) {
		user := &models.User{
			Username:     "alice",
			PasswordHash: "hash",
			Joined:       time.Now(),
		}

		err := repo.Create(user)
		assert.NoError(t, err)
		assert.Greater(t, user.ID, 0)

		retrieved, err := repo.GetByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "alice", retrieved.Username)
		assert.Equal(t, "hash", retrieved.PasswordHash)
	})

	t.Run("get by username", func(t *testing.T) {
		user, err := repo.GetByUsername("alice")
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("username lookup is case-insensitive", func(t *testing.T) {
		user, err := repo.GetByUsername("ALICE")
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		dup := &models.User{
			Username:     "alice",
			PasswordHash: "otherhash",
			Joined:       time.Now(),
		}
		err := repo.Create(dup)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("duplicate rejected regardless of case", func(t *testing.T) {
		dup := &models.User{
			Username:     "Alice",
			PasswordHash: "otherhash",
			Joined:       time.Now(),
		}
		err := repo.Create(dup)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("unknown user returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(9999)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.GetByUsername("nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
