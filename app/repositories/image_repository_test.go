package repositories

import (
	"testing"
	"time"

	"minisite/app/models"

	"github.com/stretchr/testify/assert"
)

func TestImageRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerImageRepository(db)

	now := time.Now()
	for _, file := range []string{"images/a.jpg", "images/b.png"} {
		err := repo.Create(&models.Image{
			File:        file,
			Description: "test upload",
			Published:   now,
			Modified:    now,
		})
		assert.NoError(t, err)
	}

	t.Run("list returns newest first", func(t *testing.T) {
		images, err := repo.List()
		assert.NoError(t, err)
		assert.Len(t, images, 2)
		assert.Equal(t, "images/b.png", images[0].File)
		assert.Equal(t, "images/a.jpg", images[1].File)
	})
}
