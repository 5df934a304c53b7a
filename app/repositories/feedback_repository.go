package repositories

import (
	"fmt"
	"sort"
	"strings"

	"minisite/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerTopicRepository implements TopicRepository using BadgerDB
type BadgerTopicRepository struct {
	db *badger.DB
}

// NewBadgerTopicRepository creates a new BadgerTopicRepository
func NewBadgerTopicRepository(db *badger.DB) *BadgerTopicRepository {
	return &BadgerTopicRepository{db: db}
}

// Create creates a new feedback topic
func (r *BadgerTopicRepository) Create(topic *models.Topic) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, TopicSeqKey)
		if err != nil {
			return err
		}
		topic.ID = id

		data, err := marshalEntity(topic)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(TopicKeyPrefix, topic.ID), data)
	})
}

// GetByID retrieves a topic by ID
func (r *BadgerTopicRepository) GetByID(id int) (*models.Topic, error) {
	var topic models.Topic

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(TopicKeyPrefix, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &topic)
		})
	})

	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// List retrieves all topics, sorted by name.
func (r *BadgerTopicRepository) List() ([]*models.Topic, error) {
	var topics []*models.Topic
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(TopicKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var topic models.Topic
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &topic)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal topic: %v", err)
			}
			topics = append(topics, &topic)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(topics, func(i, j int) bool {
		return strings.ToLower(topics[i].Name) < strings.ToLower(topics[j].Name)
	})
	return topics, nil
}

// BadgerFeedbackRepository implements FeedbackRepository using BadgerDB
type BadgerFeedbackRepository struct {
	db *badger.DB
}

// NewBadgerFeedbackRepository creates a new BadgerFeedbackRepository
func NewBadgerFeedbackRepository(db *badger.DB) *BadgerFeedbackRepository {
	return &BadgerFeedbackRepository{db: db}
}

// Create creates a new feedback record
func (r *BadgerFeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, FeedbackSeqKey)
		if err != nil {
			return err
		}
		feedback.ID = id

		data, err := marshalEntity(feedback)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(FeedbackKeyPrefix, feedback.ID), data)
	})
}

// List retrieves all feedback records
func (r *BadgerFeedbackRepository) List() ([]*models.Feedback, error) {
	var records []*models.Feedback
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(FeedbackKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var feedback models.Feedback
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &feedback)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal feedback: %v", err)
			}
			records = append(records, &feedback)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records, nil
}
