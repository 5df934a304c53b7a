package repositories

import (
	"fmt"
	"sort"

	"minisite/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerMessageRepository implements MessageRepository using BadgerDB
type BadgerMessageRepository struct {
	db *badger.DB
}

// NewBadgerMessageRepository creates a new BadgerMessageRepository
func NewBadgerMessageRepository(db *badger.DB) *BadgerMessageRepository {
	return &BadgerMessageRepository{db: db}
}

// Create creates a new hello page message
func (r *BadgerMessageRepository) Create(message *models.Message) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, MessageSeqKey)
		if err != nil {
			return err
		}
		message.ID = id

		data, err := marshalEntity(message)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(MessageKeyPrefix, message.ID), data)
	})
}

// List retrieves all hello page messages, newest first.
func (r *BadgerMessageRepository) List() ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(MessageKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var message models.Message
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &message)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal message: %v", err)
			}
			messages = append(messages, &message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].ID > messages[j].ID
	})
	return messages, nil
}
