package repositories

import (
	"testing"

	"minisite/app/models"

	"github.com/stretchr/testify/assert"
)

func TestEntryRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerEntryRepository(db)

	words := []struct {
		word       string
		definition string
	}{
		{"Badger", "A short-legged omnivore"},
		{"gopher", "A burrowing rodent"},
		{"Go", "A programming language"},
		{"template", "A fill-in-the-blank document"},
	}
	for _, w := range words {
		err := repo.Create(&models.Entry{Word: w.word, Definition: w.definition})
		assert.NoError(t, err)
	}

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		entries, err := repo.Search("GO")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("results sorted alphabetically", func(t *testing.T) {
		entries, err := repo.Search("go")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "Go", entries[0].Word)
		assert.Equal(t, "gopher", entries[1].Word)
	})

	t.Run("mid-word substring matches", func(t *testing.T) {
		entries, err := repo.Search("adge")
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "Badger", entries[0].Word)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		entries, err := repo.Search("zzz")
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("list returns everything sorted", func(t *testing.T) {
		entries, err := repo.List()
		assert.NoError(t, err)
		assert.Len(t, entries, 4)
		assert.Equal(t, "Badger", entries[0].Word)
		assert.Equal(t, "template", entries[3].Word)
	})
}
