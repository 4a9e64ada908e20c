package maintenance

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) CreateLog(ctx context.Context, m *MaintenanceLog) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(m).Error
}

func (r *Repo) LogsByCar(ctx context.Context, carID uint) ([]MaintenanceLog, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var logs []MaintenanceLog
	if err := db.Where("car_id = ?", carID).Order("log_id asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *Repo) CreateReview(ctx context.Context, rv *Review) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(rv).Error
}

func (r *Repo) ReviewsByCar(ctx context.Context, carID uint) ([]Review, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var reviews []Review
	if err := db.Where("car_id = ?", carID).Order("review_id asc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
