package repositories

import (
	"testing"
	"time"

	"minisite/app/models"

	"github.com/stretchr/testify/assert"
)

func TestPostRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("create assigns ID", func(t *testing.T) {
		post := &models.Post{
			UserID:  1,
			Author:  "alice",
			Comment: "First post",
			Created: time.Now(),
		}

		err := repo.Create(post)
		assert.NoError(t, err)
		assert.Greater(t, post.ID, 0)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		for _, comment := range []string{"second", "third"} {
			err := repo.Create(&models.Post{
				UserID:  1,
				Author:  "alice",
				Comment: comment,
				Created: time.Now(),
			})
			assert.NoError(t, err)
		}

		posts, err := repo.List()
		assert.NoError(t, err)
		assert.Len(t, posts, 3)
		assert.Equal(t, "third", posts[0].Comment)
		assert.Equal(t, "second", posts[1].Comment)
		assert.Equal(t, "First post", posts[2].Comment)
	})

	t.Run("list preserves author and user link", func(t *testing.T) {
		posts, err := repo.List()
		assert.NoError(t, err)
		for _, post := range posts {
			assert.Equal(t, "alice", post.Author)
			assert.Equal(t, 1, post.UserID)
		}
	})
}

func TestPostRepositoryEmptyList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	posts, err := repo.List()
	assert.NoError(t, err)
	assert.Empty(t, posts)
}
