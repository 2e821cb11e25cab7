package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/danielblac/tmech-invoice/internal/domain"
)

// RecordKey is the well-known key the serialized invoice lives under.
const RecordKey = "tmech_invoice_data"

// RecordStore persists the canonical invoice record.
type RecordStore interface {
	// Load returns the stored record, or the built-in default when
	// nothing usable is stored. It never fails on bad data.
	Load(ctx context.Context) (*domain.InvoiceRecord, error)

	// Save writes the record under the fixed key.
	Save(ctx context.Context, rec *domain.InvoiceRecord) error
}

// FileStore keeps a key-to-blob map in a single JSON file on disk.
type FileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the record blob. Any shape problem (missing file, unreadable
// file, bad JSON, absent key) falls back to the default record rather
// than propagating a failure.
func (s *FileStore) Load(ctx context.Context) (*domain.InvoiceRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Debug().Err(err).Str("path", s.path).Msg("data file unreadable, using default record")
		}
		return domain.DefaultInvoice(), nil
	}

	var blobs map[string]string
	if err := json.Unmarshal(data, &blobs); err != nil {
		s.log.Debug().Err(err).Str("path", s.path).Msg("data file malformed, using default record")
		return domain.DefaultInvoice(), nil
	}

	blob, ok := blobs[RecordKey]
	if !ok {
		return domain.DefaultInvoice(), nil
	}

	// Absent fields (e.g. deliveryFee from an older variant) unmarshal to
	// their zero values; that is "not configured", not an error.
	var rec domain.InvoiceRecord
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		s.log.Debug().Err(err).Msg("stored record malformed, using default record")
		return domain.DefaultInvoice(), nil
	}

	return &rec, nil
}

// Save serializes the record and rewrites the data file.
func (s *FileStore) Save(ctx context.Context, rec *domain.InvoiceRecord) error {
	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	// Preserve any other keys already in the file
	blobs := map[string]string{}
	if data, err := os.ReadFile(s.path); err == nil {
		_ = json.Unmarshal(data, &blobs)
	}
	blobs[RecordKey] = string(blob)

	data, err := json.MarshalIndent(blobs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}

	s.log.Debug().Str("invoice_no", rec.InvoiceNo).Msg("record saved")
	return nil
}
