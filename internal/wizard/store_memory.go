package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	run      *Run
	deadline time.Time
}

// MemoryStore holds runs in process memory with a sliding TTL. Runs are
// anonymous and cheap to rebuild, so losing them on restart is acceptable.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates a store whose runs expire ttl after their last use
// and starts the background sweep.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Create(_ context.Context, run *Run) (string, error) {
	runID := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[runID] = &memoryEntry{run: run, deadline: s.now().Add(s.ttl)}
	return runID, nil
}

func (s *MemoryStore) With(_ context.Context, runID string, fn func(*Run) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[runID]
	if !ok || s.now().After(entry.deadline) {
		delete(s.entries, runID)
		return ErrRunNotFound
	}
	entry.deadline = s.now().Add(s.ttl)
	return fn(entry.run)
}

func (s *MemoryStore) Delete(_ context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, runID)
	return nil
}

// Len reports the number of live runs.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the background sweep.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *MemoryStore) janitor() {
	interval := s.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for runID, entry := range s.entries {
		if now.After(entry.deadline) {
			delete(s.entries, runID)
		}
	}
}
