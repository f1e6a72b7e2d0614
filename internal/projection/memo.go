package projection

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/theirongolddev/flynn/internal/model"
)

// DefaultMemoSize is the number of parameter sets a Memo keeps by default.
const DefaultMemoSize = 64

// Memo caches projections by parameter tuple for callers that recompute on
// every input change. Results are identical to calling Project directly.
type Memo struct {
	size  int
	cache *lru.Cache[model.SimulationParameters, model.ProjectionResult]

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemo creates a memo holding at most size results.
func NewMemo(size int) *Memo {
	if size <= 0 {
		size = DefaultMemoSize
	}
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[model.SimulationParameters, model.ProjectionResult](size)
	return &Memo{size: size, cache: cache}
}

// Project returns the cached result for p, computing it on a miss.
// Errors are not cached.
func (m *Memo) Project(p model.SimulationParameters) (model.ProjectionResult, error) {
	if res, ok := m.cache.Get(p); ok {
		m.hits.Add(1)
		return cloneResult(res), nil
	}
	m.misses.Add(1)

	res, err := Project(p)
	if err != nil {
		return res, err
	}
	m.cache.Add(p, res)
	return cloneResult(res), nil
}

// Len returns the number of cached results.
func (m *Memo) Len() int {
	return m.cache.Len()
}

// Stats returns hit and miss counts since creation.
func (m *Memo) Stats() (hits, misses int) {
	return int(m.hits.Load()), int(m.misses.Load())
}

// cloneResult copies the series so callers cannot mutate cached state.
func cloneResult(r model.ProjectionResult) model.ProjectionResult {
	series := make([]model.ProjectionPoint, len(r.Series))
	copy(series, r.Series)
	r.Series = series
	return r
}
