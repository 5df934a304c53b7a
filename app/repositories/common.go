package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	UserKeyPrefix     = "user:"
	UserNameKeyPrefix = "username:"
	EntryKeyPrefix    = "entry:"
	PostKeyPrefix     = "post:"
	ImageKeyPrefix    = "image:"
	TopicKeyPrefix    = "topic:"
	FeedbackKeyPrefix = "feedback:"
	DirectorKeyPrefix = "director:"
	GenreKeyPrefix    = "genre:"
	MovieKeyPrefix    = "movie:"
	MessageKeyPrefix  = "message:"

	// Sequence keys for auto-incrementing IDs
	UserSeqKey     = "seq:user"
	EntrySeqKey    = "seq:entry"
	PostSeqKey     = "seq:post"
	ImageSeqKey    = "seq:image"
	TopicSeqKey    = "seq:topic"
	FeedbackSeqKey = "seq:feedback"
	DirectorSeqKey = "seq:director"
	GenreSeqKey    = "seq:genre"
	MovieSeqKey    = "seq:movie"
	MessageSeqKey  = "seq:message"
)

// getNextID gets the next available ID for a given sequence key
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			parsed, parseErr := strconv.Atoi(string(val))
			if parseErr != nil {
				return parseErr
			}
			id = parsed
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	if err := txn.Set([]byte(seqKey), []byte(strconv.Itoa(id))); err != nil {
		return 0, err
	}

	return id, nil
}

// entityKey builds the storage key for an entity ID under a prefix.
func entityKey(prefix string, id int) []byte {
	return []byte(prefix + strconv.Itoa(id))
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
