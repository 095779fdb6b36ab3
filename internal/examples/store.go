// Package examples holds the catalog of reference amounts and serves them
// in a fair, non-repeating random order.
package examples

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/iwvelando/perspective-retraites/pkg/mathutil"
)

// Example is a reference amount with a French descriptive label.
type Example struct {
	ID    string  `json:"id" yaml:"id"`
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
}

// Store is a catalog with a shuffle bag. Picks are served from a shuffled
// bag of indices that is refilled once empty; the entry served last is left
// out of the refill so no entry is ever served twice in a row.
//
// A Store is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	examples []Example
	index    map[string]int
	bag      []int
	last     int
	rng      *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used to shuffle the bag.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewStore builds a store over a copy of catalog. Ids must be unique and
// non-empty, values finite and positive.
func NewStore(catalog []Example, opts ...Option) (*Store, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	s := &Store{
		examples: make([]Example, len(catalog)),
		index:    make(map[string]int, len(catalog)),
		last:     -1,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	copy(s.examples, catalog)

	for i, ex := range s.examples {
		if ex.ID == "" {
			return nil, fmt.Errorf("example at position %d: %w", i, ErrMissingID)
		}
		if _, dup := s.index[ex.ID]; dup {
			return nil, fmt.Errorf("example %q: %w", ex.ID, ErrDuplicateID)
		}
		if !mathutil.IsFinite(ex.Value) || ex.Value <= 0 {
			return nil, fmt.Errorf("example %q has value %v: %w", ex.ID, ex.Value, ErrInvalidValue)
		}
		s.index[ex.ID] = i
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Len returns the catalog size.
func (s *Store) Len() int {
	return len(s.examples)
}

// Pick returns the next random example.
func (s *Store) Pick() Example {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.examples) <= 1 {
		s.last = 0
		return s.examples[0]
	}

	if len(s.bag) == 0 {
		s.refill()
	}

	next := s.bag[len(s.bag)-1]
	s.bag = s.bag[:len(s.bag)-1]
	s.last = next
	return s.examples[next]
}

// refill must be called with mu held.
func (s *Store) refill() {
	s.bag = s.bag[:0]
	for i := range s.examples {
		if i == s.last {
			continue
		}
		s.bag = append(s.bag, i)
	}

	for i := len(s.bag) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
	}
}

// Lookup returns the example with the given id. The boolean is false when
// the id is unknown; callers then treat the amount as custom.
func (s *Store) Lookup(id string) (Example, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return Example{}, false
	}
	return s.examples[i], true
}

// Patch updates the value of an example in place. Unknown ids and
// non-finite values are ignored. The shuffle bag is not touched. It reports
// whether the value was applied.
func (s *Store) Patch(id string, value float64) bool {
	if !mathutil.IsFinite(value) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.examples[i].Value = value
	return true
}

// All returns a snapshot of the catalog in insertion order.
func (s *Store) All() []Example {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Example, len(s.examples))
	copy(out, s.examples)
	return out
}
