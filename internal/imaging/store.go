package imaging

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ironsheep/image-transform/internal/transform"
)

// StoredResult is a transformed buffer kept for later inspection.
type StoredResult struct {
	ID         string
	SourcePath string
	Kind       transform.Kind
	Source     *transform.Buffer
	Result     *transform.Buffer
	CreatedAt  time.Time
}

// ResultStore keeps transform results in memory under generated IDs.
//
// The store holds at most a fixed number of results; adding beyond that
// evicts the oldest. It is safe for concurrent use.
type ResultStore struct {
	mu      sync.RWMutex
	limit   int
	order   []string
	results map[string]*StoredResult
}

// DefaultResultLimit is the capacity of a store created with a limit <= 0.
const DefaultResultLimit = 32

// NewResultStore creates a store holding up to limit results.
func NewResultStore(limit int) *ResultStore {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	return &ResultStore{
		limit:   limit,
		results: make(map[string]*StoredResult),
	}
}

// Put stores a result and returns its new ID.
func (s *ResultStore) Put(sourcePath string, kind transform.Kind, source, result *transform.Buffer) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[id] = &StoredResult{
		ID:         id,
		SourcePath: sourcePath,
		Kind:       kind,
		Source:     source,
		Result:     result,
		CreatedAt:  time.Now(),
	}
	s.order = append(s.order, id)
	for len(s.order) > s.limit {
		delete(s.results, s.order[0])
		s.order = s.order[1:]
	}
	return id
}

// Get returns the result stored under id.
func (s *ResultStore) Get(id string) (*StoredResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid result id %q: %w", id, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.results[id]
	if !ok {
		return nil, fmt.Errorf("result %s not found", id)
	}
	return r, nil
}

// Len returns the number of stored results.
func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
