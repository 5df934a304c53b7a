package repositories

import (
	"testing"
	"time"

	"minisite/app/models"

	"github.com/stretchr/testify/assert"
)

func TestTopicRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerTopicRepository(db)

	for _, name := range []string{"Website", "Products", "Support"} {
		err := repo.Create(&models.Topic{Name: name})
		assert.NoError(t, err)
	}

	t.Run("list sorted by name", func(t *testing.T) {
		topics, err := repo.List()
		assert.NoError(t, err)
		assert.Len(t, topics, 3)
		assert.Equal(t, "Products", topics[0].Name)
		assert.Equal(t, "Support", topics[1].Name)
		assert.Equal(t, "Website", topics[2].Name)
	})

	t.Run("get by ID", func(t *testing.T) {
		topics, err := repo.List()
		assert.NoError(t, err)

		topic, err := repo.GetByID(topics[0].ID)
		assert.NoError(t, err)
		assert.Equal(t, topics[0].Name, topic.Name)

		_, err = repo.GetByID(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFeedbackRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerFeedbackRepository(db)

	t.Run("create and list", func(t *testing.T) {
		fb := &models.Feedback{
			TopicID: 1,
			Rating:  85,
			Good:    "Fast pages",
			Bad:     "No dark mode",
			Created: time.Now(),
		}

		err := repo.Create(fb)
		assert.NoError(t, err)
		assert.Greater(t, fb.ID, 0)

		records, err := repo.List()
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, 85, records[0].Rating)
		assert.Equal(t, "Fast pages", records[0].Good)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		for _, rating := range []int{10, 20} {
			err := repo.Create(&models.Feedback{TopicID: 1, Rating: rating, Created: time.Now()})
			assert.NoError(t, err)
		}

		records, err := repo.List()
		assert.NoError(t, err)
		assert.Len(t, records, 3)
		assert.Equal(t, 85, records[0].Rating)
		assert.Equal(t, 10, records[1].Rating)
		assert.Equal(t, 20, records[2].Rating)
	})
}
