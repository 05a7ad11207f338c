package repositories

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StorageBlob is the database row backing one persisted key-value blob.
type StorageBlob struct {
	Key   string `gorm:"primaryKey;type:varchar(100)"`
	Value []byte
}

// GORMBlobStore is a GORM implementation of BlobStore.
type GORMBlobStore struct {
	db *gorm.DB
}

// NewGORMBlobStore creates a new instance of GORMBlobStore.
func NewGORMBlobStore(db *gorm.DB) *GORMBlobStore {
	return &GORMBlobStore{
		db: db,
	}
}

// Load reads the blob under key and unmarshals it into out.
func (s *GORMBlobStore) Load(key string, out any) (bool, error) {
	var blob StorageBlob
	if err := s.db.First(&blob, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to load blob %s: %w", key, err)
	}
	if err := json.Unmarshal(blob.Value, out); err != nil {
		return false, fmt.Errorf("failed to decode blob %s: %w", key, err)
	}
	return true, nil
}

// Save marshals value and upserts it under key.
func (s *GORMBlobStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode blob %s: %w", key, err)
	}
	blob := StorageBlob{Key: key, Value: data}
	if err := s.db.Save(&blob).Error; err != nil {
		return fmt.Errorf("failed to save blob %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob under key. Deleting an absent key is not an
// error.
func (s *GORMBlobStore) Delete(key string) error {
	if err := s.db.Delete(&StorageBlob{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
