package repositories

import (
	"fmt"
	"sort"
	"strings"

	"minisite/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerEntryRepository implements EntryRepository using BadgerDB
type BadgerEntryRepository struct {
	db *badger.DB
}

// NewBadgerEntryRepository creates a new BadgerEntryRepository
func NewBadgerEntryRepository(db *badger.DB) *BadgerEntryRepository {
	return &BadgerEntryRepository{db: db}
}

// Create creates a new dictionary entry
func (r *BadgerEntryRepository) Create(entry *models.Entry) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, EntrySeqKey)
		if err != nil {
			return err
		}
		entry.ID = id

		data, err := marshalEntity(entry)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(EntryKeyPrefix, entry.ID), data)
	})
}

// Search retrieves entries whose word contains query, case-insensitively,
// sorted alphabetically by word. An empty query matches every entry.
func (r *BadgerEntryRepository) Search(query string) ([]*models.Entry, error) {
	needle := strings.ToLower(query)

	var entries []*models.Entry
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(EntryKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var entry models.Entry
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &entry)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal entry: %v", err)
			}
			if strings.Contains(strings.ToLower(entry.Word), needle) {
				entries = append(entries, &entry)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Word) < strings.ToLower(entries[j].Word)
	})
	return entries, nil
}

// List retrieves all dictionary entries
func (r *BadgerEntryRepository) List() ([]*models.Entry, error) {
	return r.Search("")
}
