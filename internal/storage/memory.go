// Package storage provides recipe repository implementations and the
// JSON codec shared between them.
package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeRepository = (*MemoryRepository)(nil)

// MemoryRepository keeps recipes in memory. Safe for concurrent access.
type MemoryRepository struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
	log     *logger.Logger
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository(log *logger.Logger) *MemoryRepository {
	return &MemoryRepository{
		recipes: make(map[string]*domain.Recipe),
		log:     log,
	}
}

// Save persists a recipe. Overwrites if the ID already exists.
func (s *MemoryRepository) Save(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving recipe %s (%q)", recipe.ID, recipe.Title)
	s.recipes[recipe.ID] = recipe
	return nil
}

// FindByID retrieves a recipe by ID.
func (s *MemoryRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// FindByTitle retrieves the first recipe whose title matches,
// case-insensitively.
func (s *MemoryRepository) FindByTitle(ctx context.Context, title string) (*domain.Recipe, error) {
	all, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		if strings.EqualFold(r.Title, title) {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// FindAll returns every stored recipe, sorted by title.
func (s *MemoryRepository) FindAll(ctx context.Context) ([]*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// Delete removes a recipe by ID.
func (s *MemoryRepository) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.recipes, id)
	s.log.Debug("deleted recipe %s", id)
	return nil
}
