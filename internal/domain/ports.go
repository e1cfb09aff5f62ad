package domain

import "context"

// RecipeRepository persists recipes. Implementations can be in-memory
// or file-backed; all lookups by ID. FindByID and FindByTitle return
// ErrNotFound when no recipe matches.
type RecipeRepository interface {
	Save(ctx context.Context, recipe *Recipe) error
	FindByID(ctx context.Context, id string) (*Recipe, error)
	FindByTitle(ctx context.Context, title string) (*Recipe, error)
	FindAll(ctx context.Context) ([]*Recipe, error)
	Delete(ctx context.Context, id string) error
}
