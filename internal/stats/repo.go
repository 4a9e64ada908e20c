package stats

import (
	"context"
	"fmt"

	"github.com/GoShareDrive/GoShareDrive/internal/rental"
	"gorm.io/gorm"
)

// CarRevenue 单车营收汇总行。
type CarRevenue struct {
	CarID        uint
	Brand        string
	ModelName    string
	LicensePlate string
	Revenue      float64
}

// UserActivity 用户租赁次数汇总行。
type UserActivity struct {
	UserID  uint
	Name    string
	Email   string
	Rentals int64
}

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

// TotalRevenue 已完成租赁的费用总和。
func (r *Repo) TotalRevenue(ctx context.Context) (float64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, fmt.Errorf("repo db is nil")
	}
	var total float64
	err := db.Model(&rental.Rental{}).
		Where("status = ?", rental.StatusFinished).
		Select("COALESCE(SUM(total_cost), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// TopCarsByRevenue 按已完成租赁的营收汇总取前 limit 辆车。
// 软删除的车辆也计入历史营收，所以不走 cars 的默认软删除过滤。
func (r *Repo) TopCarsByRevenue(ctx context.Context, limit int) ([]CarRevenue, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var rows []CarRevenue
	err := db.Model(&rental.Rental{}).
		Select("rentals.car_id AS car_id, car_models.brand AS brand, car_models.model_name AS model_name, cars.license_plate AS license_plate, COALESCE(SUM(rentals.total_cost), 0) AS revenue").
		Joins("JOIN cars ON cars.car_id = rentals.car_id").
		Joins("JOIN car_models ON car_models.model_id = cars.model_id").
		Where("rentals.status = ?", rental.StatusFinished).
		Group("rentals.car_id, car_models.brand, car_models.model_name, cars.license_plate").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopUsersByRentals 按租赁次数取前 limit 名用户（不限租赁状态）。
func (r *Repo) TopUsersByRentals(ctx context.Context, limit int) ([]UserActivity, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var rows []UserActivity
	err := db.Model(&rental.Rental{}).
		Select("rentals.user_id AS user_id, users.name AS name, users.email AS email, COUNT(rentals.rent_id) AS rentals").
		Joins("JOIN users ON users.user_id = rentals.user_id").
		Group("rentals.user_id, users.name, users.email").
		Order("rentals DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
