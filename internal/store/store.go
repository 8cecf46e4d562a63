package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"practice-tracker/internal/logger"
	"practice-tracker/internal/models"
)

const (
	// AppDirName is the dot-directory under the user's home that holds the
	// data file and configuration.
	AppDirName = ".PracticeApp"

	dataFileName = "data.json"
	tempSuffix   = ".tmp"
)

// DefaultDir returns the per-user application directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, AppDirName), nil
}

// DefaultPath returns the per-user data file location.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dataFileName), nil
}

// FileStore persists the record collection as a single JSON file: a list
// of flat objects with ISO date strings and null for absent dates.
type FileStore struct {
	path string
	log  logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads the full collection. A missing file is an empty collection; a
// file that exists but does not decode is a CorruptDataError and is left
// untouched for manual recovery.
func (s *FileStore) Load() ([]*models.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("FileStore", "no data file, starting empty", map[string]interface{}{
			"path": s.path,
		})
		return make([]*models.Record, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var records []*models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &models.CorruptDataError{Path: s.path, Err: err}
	}
	if records == nil {
		records = make([]*models.Record, 0)
	}

	return records, nil
}

// Save rewrites the whole collection. The write goes to a temp file in the
// same directory followed by a rename, so a crash mid-write never
// truncates the previous data. The containing directory is created on
// first save.
func (s *FileStore) Save(records []*models.Record) error {
	if records == nil {
		records = make([]*models.Record, 0)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tempPath := s.path + tempSuffix
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}

	s.log.Debug("FileStore", "collection saved", map[string]interface{}{
		"path":  s.path,
		"count": len(records),
	})
	return nil
}
