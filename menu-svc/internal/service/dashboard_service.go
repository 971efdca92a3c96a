package service

import (
	"context"
	"log"
	"time"

	"desi-beats/menu-svc/internal/domain"
)

type DashboardService struct {
	categories CategoryRepository
	items      MenuItemRepository
	orders     OrderRepository
	stats      StatsReader
	now        func() time.Time
}

// NewDashboardService builds the admin overview. stats may be nil when no
// Redis aggregate is available.
func NewDashboardService(categories CategoryRepository, items MenuItemRepository, orders OrderRepository, stats StatsReader) *DashboardService {
	return &DashboardService{categories: categories, items: items, orders: orders, stats: stats, now: time.Now}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListMenuItems(ctx, domain.MenuItemFilter{})
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	out := &domain.DashboardStats{
		Categories: len(categories),
		MenuItems:  len(items),
		Orders:     len(orders),
	}
	for _, o := range orders {
		if o.Status == domain.StatusPending {
			out.PendingOrders++
		}
	}

	if s.stats != nil {
		today, err := s.stats.DailyStats(ctx, s.now().UTC().Format("2006-01-02"))
		if err != nil {
			log.Printf("[menu-svc] daily stats unavailable: %v", err)
		} else {
			out.Today = today
		}
	}
	return out, nil
}

var _ DashboardServiceInterface = (*DashboardService)(nil)
