package service

import (
	"context"
	"io"
	"time"

	"desi-beats/menu-svc/internal/domain"
)

// Repositories report a missing record as domain.ErrNotFound and a slug
// collision as domain.ErrConflict.

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id string) (int64, error)
}

type MenuItemRepository interface {
	ListMenuItems(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) (int64, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type SessionStore interface {
	Create(ctx context.Context, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type StatsReader interface {
	DailyStats(ctx context.Context, date string) (*domain.DailyStats, error)
}

type ImageStore interface {
	SaveImage(ctx context.Context, name string, src io.Reader) (string, error)
}

type CategoryServiceInterface interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type MenuItemServiceInterface interface {
	List(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id, filename string, src io.Reader) (*domain.MenuItem, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	QRCode(ctx context.Context, id string) ([]byte, error)
	Receipt(ctx context.Context, id string) ([]byte, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, sessionID string) error
	IsAdmin(ctx context.Context, sessionID string) bool
	SessionTTL() time.Duration
}

type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type ContentServiceInterface interface {
	HeroSlider() domain.HeroSliderConfig
	ImageKitAuth(token string, expire int64) (*domain.ImageKitAuth, error)
}
