package rental

import (
	"context"
	"fmt"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

// CreateWithCarStatus 在一个事务内插入租赁并更新车辆状态外键。
// 两个写入要么同时生效要么同时回滚。
func (r *Repo) CreateWithCarStatus(ctx context.Context, rent *Rental, carStatusID uint) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := NewRepo(tx).Create(ctx, rent); err != nil {
			return fmt.Errorf("create rental: %w", err)
		}
		if err := setCarStatus(tx, rent.CarID, carStatusID); err != nil {
			return fmt.Errorf("set car status: %w", err)
		}
		return nil
	})
}

// SaveWithCarStatus 在一个事务内保存租赁终态并更新车辆状态外键。
func (r *Repo) SaveWithCarStatus(ctx context.Context, rent *Rental, carStatusID uint) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := NewRepo(tx).Update(ctx, rent); err != nil {
			return fmt.Errorf("update rental: %w", err)
		}
		if err := setCarStatus(tx, rent.CarID, carStatusID); err != nil {
			return fmt.Errorf("set car status: %w", err)
		}
		return nil
	})
}

func setCarStatus(tx *gorm.DB, carID, statusID uint) error {
	return tx.Model(&car.Car{}).Where("car_id = ?", carID).
		Update("status_id", statusID).Error
}

func (r *Repo) Create(ctx context.Context, rent *Rental) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Omit(clause.Associations).Create(rent).Error
}

// Update 只写本表字段；预加载的关联不随之落库。
func (r *Repo) Update(ctx context.Context, rent *Rental) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Omit(clause.Associations).Save(rent).Error
}

// GetByIDWithCar 加载租赁记录及其车辆；车辆可能已软删除，历史记录仍需可查。
func (r *Repo) GetByIDWithCar(ctx context.Context, id uint) (*Rental, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var rent Rental
	err := db.
		Preload("Car", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		Preload("Car.Model").
		Where("rent_id = ?", id).First(&rent).Error
	if err != nil {
		return nil, err
	}
	return &rent, nil
}

// ListActive 返回全部进行中的租赁，带用户与车辆/型号用于展示。
func (r *Repo) ListActive(ctx context.Context) ([]Rental, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var rentals []Rental
	err := db.
		Preload("User").
		Preload("Car", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		Preload("Car.Model").
		Where("status = ?", StatusActive).
		Order("rent_id asc").Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, fmt.Errorf("repo db is nil")
	}
	var total int64
	if err := db.Model(&Rental{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repo) CreatePayment(ctx context.Context, p *Payment) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(p).Error
}

// PaymentsByRental 按租赁查支付记录（历史查询用）。
func (r *Repo) PaymentsByRental(ctx context.Context, rentID uint) ([]Payment, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var payments []Payment
	if err := db.Where("rent_id = ?", rentID).Order("payment_id asc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
