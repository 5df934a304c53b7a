package services

import (
	"minisite/app/models"
	"minisite/app/repositories"
)

// DictionaryService handles dictionary lookups and additions.
type DictionaryService struct {
	entryRepo repositories.EntryRepository
}

// NewDictionaryService creates a new DictionaryService
func NewDictionaryService(entryRepo repositories.EntryRepository) *DictionaryService {
	return &DictionaryService{entryRepo: entryRepo}
}

// Search finds entries whose word contains query, case-insensitively, sorted
// alphabetically. An empty or missing query yields no results rather than the
// whole dictionary.
func (s *DictionaryService) Search(query string) ([]*models.Entry, error) {
	if query == "" {
		return nil, nil
	}
	return s.entryRepo.Search(query)
}

// AddEntry validates and stores a new word with its definition.
func (s *DictionaryService) AddEntry(entry *models.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return s.entryRepo.Create(entry)
}
