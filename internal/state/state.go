// Package state persiste la commande et la sélection de colonnes
// entre deux lancements. C'est le collaborateur clé/valeur du moteur :
// deux clés logiques, valeurs JSON, rien d'autre.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Logical keys.
const (
	KeyOrder   = "order"
	KeyColumns = "columns"
)

// Entry is one persisted value.
type Entry struct {
	Key   string         `gorm:"primaryKey;size:64"`
	Value datatypes.JSON `gorm:"not null"`
}

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// Open connects to the state database and migrates the single table.
// The DSN picks the driver: postgres for URL-style postgres DSNs,
// sqlite (a local file path, or ":memory:") otherwise.
func Open(dsn string) (*Store, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("DSN vide, vérifiez la configuration de l'environnement")
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	var (
		db  *gorm.DB
		err error
	)
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connexion état: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Put serializes v and upserts it under key.
func (s *Store) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("sérialisation %s: %w", key, err)
	}
	entry := Entry{Key: key, Value: datatypes.JSON(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

// Get deserializes the value under key into out. Returns false, and
// leaves out untouched, when the key has never been written.
func (s *Store) Get(key string, out any) (bool, error) {
	var entry Entry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		return false, fmt.Errorf("désérialisation %s: %w", key, err)
	}
	return true, nil
}

// Delete removes a key. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}
