package stats

import (
	"context"
	"fmt"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"github.com/GoShareDrive/GoShareDrive/internal/rental"
	"github.com/GoShareDrive/GoShareDrive/internal/user"
)

// 报表的固定取数范围。
const (
	TopCarsLimit  = 5
	TopUsersLimit = 3
)

// GeneralStats 仪表盘总览。
type GeneralStats struct {
	TotalUsers   int64
	ActiveCars   int64
	TotalRentals int64
	TotalRevenue float64
}

// Service 只读的统计报表，无任何写入。
type Service struct {
	repo    *Repo
	users   *user.Repo
	cars    *car.Repo
	rentals *rental.Repo
	log     logger.Logger
}

func NewService(repo *Repo, users *user.Repo, cars *car.Repo, rentals *rental.Repo, log logger.Logger) *Service {
	return &Service{repo: repo, users: users, cars: cars, rentals: rentals, log: log}
}

// General 仪表盘：用户数、未删除车辆数、租赁总数、已完成租赁营收。
func (s *Service) General(ctx context.Context) (*GeneralStats, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	activeCars, err := s.cars.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cars: %w", err)
	}
	totalRentals, err := s.rentals.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rentals: %w", err)
	}
	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	return &GeneralStats{
		TotalUsers:   totalUsers,
		ActiveCars:   activeCars,
		TotalRentals: totalRentals,
		TotalRevenue: revenue,
	}, nil
}

// TopGrossingCars 营收前五的车辆。
func (s *Service) TopGrossingCars(ctx context.Context) ([]CarRevenue, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	s.log.Infof("generating revenue report")
	return s.repo.TopCarsByRevenue(ctx, TopCarsLimit)
}

// TopActiveUsers 租赁次数前三的用户。
func (s *Service) TopActiveUsers(ctx context.Context) ([]UserActivity, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	s.log.Infof("analyzing user activity")
	return s.repo.TopUsersByRentals(ctx, TopUsersLimit)
}
