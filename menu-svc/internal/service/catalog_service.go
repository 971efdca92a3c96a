package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"desi-beats/menu-svc/internal/domain"
)

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.repo.GetCategoryBySlug(ctx, slug)
}

func (s *CategoryService) Create(ctx context.Context, c *domain.Category) error {
	c.Slug = strings.TrimSpace(c.Slug)
	if err := checkStruct("Invalid category data", c); err != nil {
		return err
	}
	if err := s.ensureSlugFree(ctx, c.Slug, ""); err != nil {
		return err
	}
	return s.repo.CreateCategory(ctx, c)
}

func (s *CategoryService) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	current, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current
	patch.Apply(&updated)
	if err := checkStruct("Invalid category data", &updated); err != nil {
		return nil, err
	}
	if updated.Slug != current.Slug {
		if err := s.ensureSlugFree(ctx, updated.Slug, id); err != nil {
			return nil, err
		}
	}
	if err := s.repo.UpdateCategory(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *CategoryService) ensureSlugFree(ctx context.Context, slug, ownID string) error {
	existing, err := s.repo.GetCategoryBySlug(ctx, slug)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != ownID:
		return fmt.Errorf("slug %q: %w", slug, domain.ErrConflict)
	}
	return nil
}

var _ CategoryServiceInterface = (*CategoryService)(nil)

type MenuItemService struct {
	repo       MenuItemRepository
	categories CategoryRepository
	images     ImageStore
}

func NewMenuItemService(repo MenuItemRepository, categories CategoryRepository, images ImageStore) *MenuItemService {
	return &MenuItemService{repo: repo, categories: categories, images: images}
}

func (s *MenuItemService) List(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, filter)
}

func (s *MenuItemService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *MenuItemService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := checkStruct("Invalid menu item data", item); err != nil {
		return err
	}
	if err := s.ensureCategory(ctx, item.CategoryID); err != nil {
		return err
	}
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *MenuItemService) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	current, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current
	patch.Apply(&updated)
	if err := checkStruct("Invalid menu item data", &updated); err != nil {
		return nil, err
	}
	if updated.CategoryID != current.CategoryID {
		if err := s.ensureCategory(ctx, updated.CategoryID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.UpdateMenuItem(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MenuItemService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UploadImage stores src through the image store and points the menu item at
// the resulting URL.
func (s *MenuItemService) UploadImage(ctx context.Context, id, filename string, src io.Reader) (*domain.MenuItem, error) {
	if s.images == nil {
		return nil, errors.New("image store not configured")
	}
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}

	name := "menu_item_" + id + strings.ToLower(filepath.Ext(filename))
	url, err := s.images.SaveImage(ctx, name, src)
	if err != nil {
		return nil, err
	}

	item.Image = url
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ensureCategory is a soft reference check; the stores keep no foreign key.
func (s *MenuItemService) ensureCategory(ctx context.Context, categoryID string) error {
	_, err := s.categories.GetCategory(ctx, categoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return newValidationError("Invalid menu item data", FieldError{Field: "categoryId", Message: "does not reference an existing category"})
	}
	return err
}

var _ MenuItemServiceInterface = (*MenuItemService)(nil)
