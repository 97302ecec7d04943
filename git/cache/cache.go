package cache

import (
	"sync"
	"sync/atomic"
)

// Store is a goroutine-safe memo of file contents, directory listings and
// the tag table for one repository.
type Store struct {
	mu         sync.RWMutex
	generation uint64
	files      map[string][]byte   // "<rev>:<path>" → raw bytes
	dirs       map[string]*Listing // "<rev>:<path>" → listing
	tags       map[string]string   // nil until loaded

	hits   atomic.Int64
	misses atomic.Int64
	spawns atomic.Int64
	clears atomic.Int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		files: make(map[string][]byte),
		dirs:  make(map[string]*Listing),
	}
}

// Key builds the composite key shared by the file and directory tables.
func Key(rev, path string) string {
	return rev + ":" + path
}

// Generation returns the current generation. Pass it to the Put methods.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// File returns the cached bytes for key.
func (s *Store) File(key string) ([]byte, bool) {
	s.mu.RLock()
	data, ok := s.files[key]
	s.mu.RUnlock()
	s.record(ok)
	return data, ok
}

// PutFile stores data under key unless the store was cleared after gen.
// It reports whether the entry was stored.
func (s *Store) PutFile(gen uint64, key string, data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.files[key] = data
	return true
}

// Dir returns a copy of the cached listing for key.
func (s *Store) Dir(key string) (*Listing, bool) {
	s.mu.RLock()
	listing, ok := s.dirs[key]
	s.mu.RUnlock()
	s.record(ok)
	return listing.clone(), ok
}

// PutDir stores listing under key and removes the raw file entry with the
// same key in the same critical section. It is a no-op if the store was
// cleared after gen.
func (s *Store) PutDir(gen uint64, key string, listing *Listing) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.dirs[key] = listing.clone()
	delete(s.files, key)
	return true
}

// Tags returns a copy of the tag table and whether it has been loaded.
// A loaded table may be empty.
func (s *Store) Tags() (map[string]string, bool) {
	s.mu.RLock()
	tags := s.tags
	s.mu.RUnlock()

	ok := tags != nil
	s.record(ok)
	if !ok {
		return nil, false
	}
	return copyTags(tags), true
}

// PutTags replaces the tag table unless the store was cleared after gen.
func (s *Store) PutTags(gen uint64, tags map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	if tags == nil {
		tags = map[string]string{}
	}
	s.tags = copyTags(tags)
	return true
}

// Clear empties every table and starts a new generation.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.files = make(map[string][]byte)
	s.dirs = make(map[string]*Listing)
	s.tags = nil
	s.clears.Add(1)
}

// RecordSpawn counts one subprocess started for this store.
func (s *Store) RecordSpawn() {
	s.spawns.Add(1)
}

// Stats returns a snapshot of the store.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Files:      len(s.files),
		Dirs:       len(s.dirs),
		Tags:       len(s.tags),
		TagsLoaded: s.tags != nil,
		Hits:       s.hits.Load(),
		Misses:     s.misses.Load(),
		Spawns:     s.spawns.Load(),
		Clears:     s.clears.Load(),
	}
}

func (s *Store) record(hit bool) {
	if hit {
		s.hits.Add(1)
		return
	}
	s.misses.Add(1)
}

func copyTags(tags map[string]string) map[string]string {
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}
