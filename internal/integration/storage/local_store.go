// Package storage provides local filesystem persistence for receipt images.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LocalReceiptStore implements adapter.ReceiptStore on top of a local
// directory. Files are written with O_EXCL so two concurrent uploads can
// never clobber each other.
type LocalReceiptStore struct {
	dir string
}

// NewLocalReceiptStore creates the store and its backing directory.
func NewLocalReceiptStore(dir string) (*LocalReceiptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create receipts directory: %w", err)
	}
	return &LocalReceiptStore{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *LocalReceiptStore) Dir() string {
	return s.dir
}

// Save writes the receipt bytes under a collision-free generated name and
// returns the stored file path.
func (s *LocalReceiptStore) Save(data []byte, filename string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}

	token := make([]byte, 4)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("failed to generate file token: %w", err)
	}

	name := fmt.Sprintf("receipt_%s_%s%s",
		time.Now().UTC().Format("20060102_150405"),
		hex.EncodeToString(token),
		ext,
	)
	path := filepath.Join(s.dir, name)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return "", fmt.Errorf("failed to write receipt file: %w", err)
	}

	return path, nil
}
