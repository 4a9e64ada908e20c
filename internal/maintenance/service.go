package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"github.com/GoShareDrive/GoShareDrive/internal/user"
	"gorm.io/gorm"
)

var (
	ErrCarNotFound   = errors.New("car not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Service 维修日志与评价。
type Service struct {
	repo  *Repo
	cars  *car.Repo
	users *user.Repo
	log   logger.Logger
}

func NewService(repo *Repo, cars *car.Repo, users *user.Repo, log logger.Logger) *Service {
	return &Service{repo: repo, cars: cars, users: users, log: log}
}

// AddLog 为车辆记一条维修日志；回收站内的车辆同样允许记录。
func (s *Service) AddLog(ctx context.Context, carID uint, description string, cost float64) (*MaintenanceLog, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if _, err := s.cars.FindByIDAnyState(ctx, carID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("load car: %w", err)
	}

	m := &MaintenanceLog{CarID: carID, Description: description, Cost: cost}
	if err := s.repo.CreateLog(ctx, m); err != nil {
		return nil, fmt.Errorf("create maintenance log: %w", err)
	}
	s.log.Infof("maintenance log added: car=%d cost=%.2f", carID, cost)
	return m, nil
}

// LogsByCar 按车辆列出维修日志。
func (s *Service) LogsByCar(ctx context.Context, carID uint) ([]MaintenanceLog, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.repo.LogsByCar(ctx, carID)
}

// AddReview 为车辆写评价；评分限定 1..5。
func (s *Service) AddReview(ctx context.Context, userID, carID uint, rating int, comment string) (*Review, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if _, err := s.cars.FindByIDAnyState(ctx, carID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("load car: %w", err)
	}

	rv := &Review{UserID: userID, CarID: carID, Rating: rating, Comment: strings.TrimSpace(comment)}
	if err := s.repo.CreateReview(ctx, rv); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	s.log.Infof("review added: car=%d user=%d rating=%d", carID, userID, rating)
	return rv, nil
}

// ReviewsByCar 按车辆列出评价。
func (s *Service) ReviewsByCar(ctx context.Context, carID uint) ([]Review, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.repo.ReviewsByCar(ctx, carID)
}
