package repositories

import (
	"encoding/json"
	"fmt"

	"boardapp/app/apperrors"

	"github.com/google/uuid"
)

const (
	// Key prefixes for different entity types
	AccountKeyPrefix  = "account:"
	UsernameKeyPrefix = "username:"
	PostKeyPrefix     = "post:"
	CommentKeyPrefix  = "comment:"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = apperrors.ErrNotFound

// newID returns a time ordered identifier, so prefix scans yield insertion order.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %v", err)
	}
	return id.String(), nil
}

func accountKey(id string) []byte {
	return []byte(AccountKeyPrefix + id)
}

func usernameKey(username string) []byte {
	return []byte(UsernameKeyPrefix + username)
}

func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

func commentPrefix(postID string) []byte {
	return []byte(fmt.Sprintf("%s%s:", CommentKeyPrefix, postID))
}

func commentKey(postID, id string) []byte {
	return append(commentPrefix(postID), id...)
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
