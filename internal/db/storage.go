// Package db provides persistent storage for applied corrections
package db

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"go.etcd.io/bbolt"
)

var (
	correctionsBucket = []byte("corrections")
	metaBucket        = []byte("meta")
)

// Storage provides database operations
type Storage struct {
	db     *bbolt.DB
	path   string
	closed bool
}

// CorrectionRecord remembers a typo the user accepted a fix for.
type CorrectionRecord struct {
	Input      string    `json:"input"`
	Command    string    `json:"command"`
	Confidence string    `json:"confidence"`
	Count      int       `json:"count"`
	FirstUsed  time.Time `json:"first_used"`
	LastUsed   time.Time `json:"last_used"`
}

// Stats summarizes the correction store.
type Stats struct {
	UniqueTypos  int
	TotalFixes   int
	MostFixed    string
	MostFixedFor string
	MostFixedN   int
}

// NewStorage opens (creating if needed) the correction store at path.
func NewStorage(path string) (*Storage, error) {
	if len(path) > 1 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{correctionsBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &Storage{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Path returns the database file path.
func (s *Storage) Path() string {
	return s.path
}

// key hashes the raw input so arbitrary command lines make fixed-size
// bucket keys.
func key(input string) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, xxhash.Sum64String(input))
	return k
}

// RecordFix records that the user applied a correction for input.
func (s *Storage) RecordFix(ctx context.Context, input, command, confidence string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(correctionsBucket)
		k := key(input)

		now := time.Now()
		var rec CorrectionRecord

		if existing := bucket.Get(k); existing != nil {
			if err := json.Unmarshal(existing, &rec); err != nil {
				return err
			}
			rec.Command = command
			rec.Confidence = confidence
			rec.Count++
			rec.LastUsed = now
		} else {
			rec = CorrectionRecord{
				Input:      input,
				Command:    command,
				Confidence: confidence,
				Count:      1,
				FirstUsed:  now,
				LastUsed:   now,
			}
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		return bucket.Put(k, data)
	})
}

// Lookup returns the correction previously applied for input, if any.
func (s *Storage) Lookup(ctx context.Context, input string) (CorrectionRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return CorrectionRecord{}, false, err
	}

	var rec CorrectionRecord
	var found bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(correctionsBucket).Get(key(input))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		found = true
		return nil
	})

	return rec, found, err
}

// Recent returns up to limit records, most recently used first.
func (s *Storage) Recent(ctx context.Context, limit int) ([]CorrectionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []CorrectionRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(correctionsBucket).ForEach(func(_, v []byte) error {
			var rec CorrectionRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].LastUsed.After(records[j].LastUsed)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// GetStats summarizes the correction store.
func (s *Storage) GetStats(ctx context.Context) (Stats, error) {
	records, err := s.Recent(ctx, 0)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{UniqueTypos: len(records)}
	for _, rec := range records {
		stats.TotalFixes += rec.Count
		if rec.Count > stats.MostFixedN {
			stats.MostFixedN = rec.Count
			stats.MostFixed = rec.Input
			stats.MostFixedFor = rec.Command
		}
	}

	return stats, nil
}

// Clear removes all correction records.
func (s *Storage) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(correctionsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(correctionsBucket)
		return err
	})
}
