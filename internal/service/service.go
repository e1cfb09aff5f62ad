// Package service implements the application facade over parsing,
// conversion, and storage. It depends only on interfaces and is fully
// testable with mocks.
package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hammamikhairi/cookbook/internal/convert"
	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/export"
	"github.com/hammamikhairi/cookbook/internal/logger"
	"github.com/hammamikhairi/cookbook/internal/parse"
	"github.com/hammamikhairi/cookbook/internal/storage"
)

// Option configures the service.
type Option func(*Service)

// WithRegistry replaces the default conversion registry.
func WithRegistry(reg convert.Registry) Option {
	return func(s *Service) {
		s.registry = reg
	}
}

// Service coordinates recipe import, lookup, scaling, conversion and
// shopping list aggregation on top of a RecipeRepository.
type Service struct {
	repo     domain.RecipeRepository
	registry convert.Registry
	log      *logger.Logger
}

// New creates a service with the given dependencies and options. The
// default registry carries only the standard conversion table.
func New(repo domain.RecipeRepository, log *logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		registry: convert.NewStandardRegistry(),
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the conversion registry the service operates with.
func (s *Service) Registry() convert.Registry {
	return s.registry
}

// ImportText parses recipe text and persists the resulting recipe.
func (s *Service) ImportText(ctx context.Context, text string) (*domain.Recipe, error) {
	recipe, err := parse.Recipe(text)
	if err != nil {
		return nil, fmt.Errorf("parsing recipe: %w", err)
	}

	if err := s.repo.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("saving recipe: %w", err)
	}

	s.log.Info("imported recipe %q (%d ingredients, %d steps)",
		recipe.Title, len(recipe.Ingredients), len(recipe.Instructions))
	return recipe, nil
}

// ImportFile loads a recipe from a file. Files ending in .json are
// decoded as serialized recipes; anything else is parsed as recipe text.
func (s *Service) ImportFile(ctx context.Context, path string) (*domain.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		recipe, err := storage.DecodeRecipe(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		if err := s.repo.Save(ctx, recipe); err != nil {
			return nil, fmt.Errorf("saving recipe: %w", err)
		}
		s.log.Info("imported recipe %q from %s", recipe.Title, path)
		return recipe, nil
	}

	return s.ImportText(ctx, string(data))
}

// Get returns a recipe by ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByTitle returns a recipe by exact title, case-insensitively.
func (s *Service) GetByTitle(ctx context.Context, title string) (*domain.Recipe, error) {
	return s.repo.FindByTitle(ctx, title)
}

// List returns all stored recipes sorted by title.
func (s *Service) List(ctx context.Context) ([]*domain.Recipe, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes a recipe by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted recipe %s", id)
	return nil
}

// Scale creates a scaled copy of a recipe for the target number of
// servings and persists it. The source recipe must declare servings.
func (s *Service) Scale(ctx context.Context, id string, targetServings int) (*domain.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	if recipe.Servings == nil {
		return nil, fmt.Errorf("recipe %q declares no servings: %w", recipe.Title, domain.ErrInvalidArgument)
	}
	if targetServings <= 0 {
		return nil, fmt.Errorf("target servings must be positive: %w", domain.ErrInvalidArgument)
	}

	factor := float64(targetServings) / float64(recipe.Servings.Amount)
	scaled, err := recipe.Scale(factor)
	if err != nil {
		return nil, fmt.Errorf("scaling recipe: %w", err)
	}
	scaled.Title = fmt.Sprintf("%s (serves %d)", recipe.Title, targetServings)

	if err := s.repo.Save(ctx, scaled); err != nil {
		return nil, fmt.Errorf("saving scaled recipe: %w", err)
	}

	s.log.Info("scaled recipe %q by %.3f for %d servings", recipe.Title, factor, targetServings)
	return scaled, nil
}

// Convert creates a copy of a recipe with every measured ingredient
// expressed in the target unit and persists it. Recipe-embedded rules
// participate in the lookup. The operation fails if any measured
// ingredient cannot be converted.
func (s *Service) Convert(ctx context.Context, id string, target domain.Unit) (*domain.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	converted, err := convert.Recipe(recipe, target, s.registry)
	if err != nil {
		return nil, err
	}
	converted.Title = fmt.Sprintf("%s (in %s)", recipe.Title, target.Abbreviation())

	if err := s.repo.Save(ctx, converted); err != nil {
		return nil, fmt.Errorf("saving converted recipe: %w", err)
	}

	s.log.Info("converted recipe %q to %s", recipe.Title, target.Name())
	return converted, nil
}

// ScaleToTarget rescales a recipe so that the named ingredient ends up
// at the given quantity, converting the rest of the ingredients where
// rules permit, and persists the result.
func (s *Service) ScaleToTarget(ctx context.Context, id, ingredientName string, target domain.Quantity) (*domain.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	scaled, err := convert.ScaleToTarget(recipe, ingredientName, target, s.registry)
	if err != nil {
		return nil, err
	}
	scaled.Title = fmt.Sprintf("%s (%s %s)", recipe.Title, target, ingredientName)

	if err := s.repo.Save(ctx, scaled); err != nil {
		return nil, fmt.Errorf("saving rescaled recipe: %w", err)
	}

	s.log.Info("rescaled recipe %q around %s = %s", recipe.Title, ingredientName, target)
	return scaled, nil
}

// ExportMarkdown renders a stored recipe as a Markdown document. When
// path is non-empty the document is written there instead of returned.
func (s *Service) ExportMarkdown(ctx context.Context, id, path string) (string, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("getting recipe: %w", err)
	}

	if path != "" {
		if err := export.WriteRecipe(recipe, path); err != nil {
			return "", err
		}
		s.log.Info("exported recipe %q to %s", recipe.Title, path)
		return "", nil
	}
	return export.Markdown(recipe), nil
}

// FindByIngredient returns all recipes whose ingredient list mentions
// the given name, matched as a case-insensitive substring.
func (s *Service) FindByIngredient(ctx context.Context, name string) ([]*domain.Recipe, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	var matches []*domain.Recipe
	for _, r := range all {
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing.Name()), needle) {
				matches = append(matches, r)
				break
			}
		}
	}

	s.log.Debug("found %d recipes containing %q", len(matches), name)
	return matches, nil
}
