package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Store layers collection semantics over a Blob backend. A collection is a
// named JSON array of records keyed by a string id field. Every mutation
// re-serializes the full collection and overwrites its blob synchronously;
// every read deserializes fresh, so external writes to the same backend are
// visible on the next call.
//
// A blob that is absent or fails to parse is treated as an empty collection.
// The parse error is logged and never reaches the caller.
type Store struct {
	blob   Blob
	logger zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(blob Blob, logger zerolog.Logger) *Store {
	return &Store{
		blob:   blob,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lock returns the mutex serializing read-modify-write cycles for one
// collection. Readers do not take it; they only ever see a whole blob.
func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *Store) load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	data, ok, err := s.blob.Get(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		s.logger.Warn().Err(err).Str("collection", collection).
			Msg("corrupted collection blob, treating as empty")
		return nil, nil
	}
	return rows, nil
}

func (s *Store) save(ctx context.Context, collection string, rows []json.RawMessage) error {
	if rows == nil {
		rows = []json.RawMessage{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", collection, err)
	}
	return s.blob.Put(ctx, collection, data)
}

// rowID extracts the string value of idField from a serialized record.
func rowID(row json.RawMessage, idField string) (string, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(row, &fields); err != nil {
		return "", false
	}
	raw, ok := fields[idField]
	if !ok {
		return "", false
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", false
	}
	return id, true
}

// Upsert inserts record into collection, or replaces the first record whose
// idField equals id, preserving its ordinal position among the others.
func (s *Store) Upsert(ctx context.Context, collection, idField, id string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	rows, err := s.load(ctx, collection)
	if err != nil {
		return err
	}
	replaced := false
	for i, row := range rows {
		if existing, ok := rowID(row, idField); ok && existing == id {
			rows[i] = data
			replaced = true
			break
		}
	}
	if !replaced {
		rows = append(rows, data)
	}
	return s.save(ctx, collection, rows)
}

// Append adds record to the end of collection with no id check. Duplicate
// ids are possible; callers that need uniqueness use Upsert.
func (s *Store) Append(ctx context.Context, collection string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	rows, err := s.load(ctx, collection)
	if err != nil {
		return err
	}
	rows = append(rows, data)
	return s.save(ctx, collection, rows)
}

// ReplaceByID replaces the first record whose idField equals id. Unlike
// Upsert it never inserts; the return reports whether a record was found.
func (s *Store) ReplaceByID(ctx context.Context, collection, idField, id string, record interface{}) (bool, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("marshal record: %w", err)
	}

	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	rows, err := s.load(ctx, collection)
	if err != nil {
		return false, err
	}
	for i, row := range rows {
		if existing, ok := rowID(row, idField); ok && existing == id {
			rows[i] = data
			return true, s.save(ctx, collection, rows)
		}
	}
	return false, nil
}

// GetAll decodes the whole collection, in stored order, into out (a pointer
// to a slice). A collection that has never been written decodes as empty.
func (s *Store) GetAll(ctx context.Context, collection string, out interface{}) error {
	rows, err := s.load(ctx, collection)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []json.RawMessage{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode collection %s: %w", collection, err)
	}
	return nil
}

// GetByID scans collection for the first record whose idField equals id and
// decodes it into out. The first return reports whether it was found.
func (s *Store) GetByID(ctx context.Context, collection, idField, id string, out interface{}) (bool, error) {
	rows, err := s.load(ctx, collection)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if existing, ok := rowID(row, idField); ok && existing == id {
			if err := json.Unmarshal(row, out); err != nil {
				return false, fmt.Errorf("decode record %s/%s: %w", collection, id, err)
			}
			return true, nil
		}
	}
	return false, nil
}
