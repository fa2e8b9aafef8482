package admin

import (
	"context"
	"spice-garden/domain"
	"time"

	"golang.org/x/sync/errgroup"
)

const popularItemsLimit = 5

type (
	AdminService interface {
		GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error)
	}

	adminService struct {
		adminRepository AdminRepository
		now             func() time.Time
	}
)

func NewAdminService(adminRepository AdminRepository) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		now:             time.Now,
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// GetDashboardStats runs the read-only aggregates concurrently. Each query
// writes its own field, so no locking is needed.
func (s *adminService) GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	var res domain.DashboardStatsResponse
	var popular []*PopularItem
	today := startOfDay(s.now())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.TotalOrders, err = s.adminRepository.CountOrders(ctx, nil)
		return err
	})
	g.Go(func() (err error) {
		res.TodayOrders, err = s.adminRepository.CountOrders(ctx, &today)
		return err
	})
	g.Go(func() (err error) {
		res.TotalRevenue, err = s.adminRepository.SumRevenue(ctx, nil)
		return err
	})
	g.Go(func() (err error) {
		res.TodayRevenue, err = s.adminRepository.SumRevenue(ctx, &today)
		return err
	})
	g.Go(func() (err error) {
		res.TotalUsers, err = s.adminRepository.CountUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		res.TotalMenuItems, err = s.adminRepository.CountMenuItems(ctx)
		return err
	})
	g.Go(func() (err error) {
		res.PendingOrders, err = s.adminRepository.CountOrdersByStatus(ctx, domain.OrderStatusPending)
		return err
	})
	g.Go(func() (err error) {
		popular, err = s.adminRepository.PopularItems(ctx, popularItemsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	res.PopularItems = make([]domain.PopularItemResponse, 0, len(popular))
	for _, p := range popular {
		res.PopularItems = append(res.PopularItems, domain.PopularItemResponse{
			MenuItemID:    p.MenuItemID.String(),
			Name:          p.Name,
			TotalQuantity: p.TotalQuantity,
		})
	}
	return res, nil
}
