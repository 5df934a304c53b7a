package repositories

import (
	"fmt"
	"sort"

	"minisite/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerImageRepository implements ImageRepository using BadgerDB
type BadgerImageRepository struct {
	db *badger.DB
}

// NewBadgerImageRepository creates a new BadgerImageRepository
func NewBadgerImageRepository(db *badger.DB) *BadgerImageRepository {
	return &BadgerImageRepository{db: db}
}

// Create creates a new gallery image record
func (r *BadgerImageRepository) Create(image *models.Image) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, ImageSeqKey)
		if err != nil {
			return err
		}
		image.ID = id

		data, err := marshalEntity(image)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(ImageKeyPrefix, image.ID), data)
	})
}

// List retrieves all gallery images, newest first.
func (r *BadgerImageRepository) List() ([]*models.Image, error) {
	var images []*models.Image
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ImageKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var image models.Image
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &image)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal image: %v", err)
			}
			images = append(images, &image)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].ID > images[j].ID
	})
	return images, nil
}
