package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"mediazone/pkg/errors"
)

// timeFormat matches the ISO millisecond timestamps already present in the
// data files, so records written here sort and diff cleanly against records
// written before.
const timeFormat = "2006-01-02T15:04:05.000Z"

// Store is the generic read-modify-write layer over a single JSON document
// shaped {<key>: [records...], "lastId": n}. Every mutation re-reads the whole
// document, modifies it in memory and writes it back pretty-printed. Records
// are open maps: fields the caller supplies pass through verbatim.
//
// The mutex serializes the read-modify-write cycle within the process, which
// closes the lost-update window between two concurrent mutations. Identifier
// assignment stays strictly monotonic: lastId is never decremented, so deleted
// ids are never reused.
type Store struct {
	mu       sync.Mutex
	path     string
	key      string
	resource string
}

// NewStore builds a store over the document at path. key is the document
// field holding the record array ("products", "orders"); resource is the
// singular label used in not-found errors.
func NewStore(path, key, resource string) *Store {
	return &Store{
		path:     path,
		key:      key,
		resource: resource,
	}
}

type document struct {
	records []map[string]interface{}
	lastID  int
}

// ensure creates the containing directory and seeds an empty document on
// first access.
func (s *Store) ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Internal("failed to create data directory", err)
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.write(&document{records: []map[string]interface{}{}})
	} else if err != nil {
		return errors.Internal("failed to stat data file", err)
	}

	return nil
}

func (s *Store) read() (*document, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Internal("failed to read data file", err)
	}

	var raw struct {
		Records []map[string]interface{}
		LastID  int
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Internal("failed to parse data file", err)
	}
	if recs, ok := fields[s.key]; ok {
		if err := json.Unmarshal(recs, &raw.Records); err != nil {
			return nil, errors.Internal("failed to parse records", err)
		}
	}
	if last, ok := fields["lastId"]; ok {
		if err := json.Unmarshal(last, &raw.LastID); err != nil {
			return nil, errors.Internal("failed to parse lastId", err)
		}
	}

	if raw.Records == nil {
		raw.Records = []map[string]interface{}{}
	}

	return &document{records: raw.Records, lastID: raw.LastID}, nil
}

func (s *Store) write(doc *document) error {
	out := map[string]interface{}{
		s.key:    doc.records,
		"lastId": doc.lastID,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Internal("failed to encode data file", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Internal("failed to write data file", err)
	}

	return nil
}

// List returns every record in the document.
func (s *Store) List() ([]map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	return doc.records, nil
}

// Get returns the record with the given identifier.
func (s *Store) Get(id string) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	if idx := indexOf(doc.records, id); idx >= 0 {
		return doc.records[idx], nil
	}

	return nil, errors.NotFound(s.resource, nil)
}

// Create assigns the next identifier from the lastId high-water mark, stamps
// createdAt/updatedAt, appends the record and persists the whole document.
func (s *Store) Create(data map[string]interface{}) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	record := make(map[string]interface{}, len(data)+3)
	for k, v := range data {
		record[k] = v
	}

	now := time.Now().UTC().Format(timeFormat)
	record["id"] = strconv.Itoa(doc.lastID + 1)
	record["createdAt"] = now
	record["updatedAt"] = now

	doc.records = append(doc.records, record)
	doc.lastID++

	if err := s.write(doc); err != nil {
		return nil, err
	}

	return record, nil
}

// Update shallow-merges patch over the matching record and stamps updatedAt.
// When the identifier is absent the document is left untouched.
func (s *Store) Update(id string, patch map[string]interface{}) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	idx := indexOf(doc.records, id)
	if idx < 0 {
		return nil, errors.NotFound(s.resource, nil)
	}

	record := doc.records[idx]
	for k, v := range patch {
		record[k] = v
	}
	record["id"] = id
	record["updatedAt"] = time.Now().UTC().Format(timeFormat)

	doc.records[idx] = record

	if err := s.write(doc); err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes the matching record. lastId keeps its high-water mark so the
// deleted identifier is never handed out again.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	idx := indexOf(doc.records, id)
	if idx < 0 {
		return errors.NotFound(s.resource, nil)
	}

	doc.records = append(doc.records[:idx], doc.records[idx+1:]...)

	return s.write(doc)
}

func indexOf(records []map[string]interface{}, id string) int {
	for i, record := range records {
		if recordID, ok := record["id"].(string); ok && recordID == id {
			return i
		}
	}
	return -1
}
