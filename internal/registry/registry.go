// Package registry tracks the set of art categories seen across play
// sessions. The first drawing in a category earns the high novelty bonus;
// every later drawing in that category earns the low one.
package registry

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Novelty bonus values.
const (
	ScoreKnownCategory = 1
	ScoreNewCategory   = 10
)

// Store is the persistence port for the category set. The file-backed
// implementation lives in this package; tests substitute an in-memory one.
type Store interface {
	Load() ([]string, error)
	Save(categories []string) error
}

// Registry is the durable, case-insensitive set of known category names.
// Load faults degrade to an empty set; durability is best-effort.
type Registry struct {
	mu         sync.Mutex
	store      Store
	logger     *zap.Logger
	categories []string
	loaded     bool
}

// New creates a registry backed by the given store.
func New(store Store, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{store: store, logger: logger}
}

// Resolve canonicalizes a category name and returns it with its novelty
// score. A name already present (ignoring case) scores ScoreKnownCategory and
// leaves the set untouched; a new name is appended, persisted, and scores
// ScoreNewCategory.
func (r *Registry) Resolve(name string) (string, int) {
	canonical := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded()

	for _, cat := range r.categories {
		if strings.EqualFold(cat, canonical) {
			return canonical, ScoreKnownCategory
		}
	}

	r.categories = append(r.categories, canonical)
	if err := r.store.Save(r.categories); err != nil {
		// Best-effort durability: the bonus still applies this session.
		r.logger.Warn("failed to persist category set",
			zap.String("category", canonical),
			zap.Error(err))
	}
	return canonical, ScoreNewCategory
}

// Categories returns a copy of the known category names.
func (r *Registry) Categories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded()

	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// ensureLoaded lazily reads the store on first use. Any load fault (missing
// file, corrupt content) is treated as an empty set, never surfaced.
func (r *Registry) ensureLoaded() {
	if r.loaded {
		return
	}
	cats, err := r.store.Load()
	if err != nil {
		r.logger.Debug("category store unreadable, starting empty", zap.Error(err))
		cats = nil
	}
	r.categories = cats
	r.loaded = true
}
