package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeRepository = (*FileRepository)(nil)

// FileRepository stores one JSON document per recipe under a directory,
// named <id>.json.
type FileRepository struct {
	dir string
	log *logger.Logger
}

// NewFileRepository creates a repository rooted at dir, creating the
// directory if needed.
func NewFileRepository(dir string, log *logger.Logger) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory %s: %w", dir, err)
	}
	return &FileRepository{dir: dir, log: log}, nil
}

func (s *FileRepository) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes the recipe to <id>.json, replacing any previous version.
func (s *FileRepository) Save(ctx context.Context, recipe *domain.Recipe) error {
	data, err := EncodeRecipe(recipe)
	if err != nil {
		return fmt.Errorf("encoding recipe %s: %w", recipe.ID, err)
	}
	if err := os.WriteFile(s.path(recipe.ID), data, 0o644); err != nil {
		return fmt.Errorf("saving recipe %s: %w", recipe.ID, err)
	}
	s.log.Debug("saved recipe %s (%q)", recipe.ID, recipe.Title)
	return nil
}

// FindByID reads and decodes <id>.json.
func (s *FileRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading recipe %s: %w", id, err)
	}
	return DecodeRecipe(data)
}

// FindByTitle scans all stored recipes for a case-insensitive title
// match.
func (s *FileRepository) FindByTitle(ctx context.Context, title string) (*domain.Recipe, error) {
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

// FindAll decodes every .json file in the directory, sorted by title.
func (s *FileRepository) FindAll(ctx context.Context) ([]*domain.Recipe, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.dir, err)
	}

	var out []*domain.Recipe
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		r, err := DecodeRecipe(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", e.Name(), err)
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// Delete removes <id>.json.
func (s *FileRepository) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrNotFound
	}
	return err
}
