package storage

import (
	"context"
	"sort"
	"sync"

	"desi-beats/menu-svc/internal/domain"

	"github.com/google/uuid"
)

// MemoryStore keeps the catalog and orders in process memory. Slices hold
// records in insertion order, which is the tie-break for equal sort keys.
type MemoryStore struct {
	mu         sync.RWMutex
	categories []domain.Category
	items      []domain.MenuItem
	orders     []domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	out := append([]domain.Category(nil), s.categories...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *MemoryStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) CreateCategory(ctx context.Context, c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.Slug == c.Slug {
			return domain.ErrConflict
		}
	}
	c.ID = uuid.NewString()
	s.categories = append(s.categories, *c)
	return nil
}

func (s *MemoryStore) UpdateCategory(ctx context.Context, c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, existing := range s.categories {
		if existing.ID == c.ID {
			idx = i
		} else if existing.Slug == c.Slug {
			return domain.ErrConflict
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	s.categories[idx] = *c
	return nil
}

func (s *MemoryStore) DeleteCategory(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) ListMenuItems(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, error) {
	s.mu.RLock()
	out := make([]domain.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		if matchesFilter(item, filter) {
			out = append(out, item)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func matchesFilter(item domain.MenuItem, filter domain.MenuItemFilter) bool {
	switch {
	case filter.CategoryID != "":
		return item.CategoryID == filter.CategoryID
	case filter.FeaturedOnly:
		return item.Featured
	default:
		return true
	}
}

func (s *MemoryStore) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			item := item
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = uuid.NewString()
	s.items = append(s.items, *item)
	return nil
}

func (s *MemoryStore) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *MemoryStore) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	s.orders = append(s.orders, *order)
	return nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListOrders returns newest first; orders with the same createdAt come out
// in reverse insertion order.
func (s *MemoryStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	out := make([]domain.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) DeleteOrder(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
