package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/logger"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepository(dir, logger.Nop())
	if err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}
	ctx := context.Background()

	recipe := testRecipe(t, "Pancakes")
	if err := repo.Save(ctx, recipe); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// One JSON file per recipe.
	if _, err := os.Stat(filepath.Join(dir, recipe.ID+".json")); err != nil {
		t.Errorf("expected recipe file: %v", err)
	}

	got, err := repo.FindByID(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Title != "Pancakes" {
		t.Errorf("Title = %q, want %q", got.Title, "Pancakes")
	}
	if len(got.Ingredients) != 1 {
		t.Errorf("got %d ingredients, want 1", len(got.Ingredients))
	}

	if err := repo.Delete(ctx, recipe.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, recipe.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID after delete: err = %v, want ErrNotFound", err)
	}
}

func TestFileRepositoryFindAllIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepository(dir, logger.Nop())
	if err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}
	ctx := context.Background()

	if err := repo.Save(ctx, testRecipe(t, "Waffles")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a recipe"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 1 || all[0].Title != "Waffles" {
		t.Errorf("FindAll = %v, want one recipe Waffles", all)
	}
}

func TestFileRepositoryCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "recipes")
	if _, err := NewFileRepository(dir, logger.Nop()); err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("store directory not created: %v", err)
	}
}

func TestFileRepositoryNotFound(t *testing.T) {
	repo, err := NewFileRepository(t.TempDir(), logger.Nop())
	if err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete: err = %v, want ErrNotFound", err)
	}
}
