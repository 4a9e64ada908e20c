package rental

import (
	"time"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"github.com/GoShareDrive/GoShareDrive/internal/user"
)

// Status 租赁状态枚举（持久化为字符串）。
type Status string

const (
	StatusActive   Status = "Active"   // 进行中
	StatusFinished Status = "Finished" // 已还车结算
	StatusCanceled Status = "Canceled" // 已取消（未产生费用）
)

// Rental 是 rentals 表的 GORM 模型。
// TotalCost 仅在 Finished 时写入；EndTime 在进入终态时写入。
type Rental struct {
	ID     uint   `gorm:"primaryKey;autoIncrement;column:rent_id"`
	UserID uint   `gorm:"index;not null"`
	CarID  uint   `gorm:"index;not null"`
	Status Status `gorm:"type:varchar(16);index;not null"`

	StartTime time.Time  `gorm:"not null"`
	EndTime   *time.Time
	TotalCost *float64

	User user.User `gorm:"foreignKey:UserID"`
	Car  car.Car   `gorm:"foreignKey:CarID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Rental) TableName() string { return "rentals" }

// Payment 是 payments 表的 GORM 模型；还车结算后写入。
type Payment struct {
	ID            uint    `gorm:"primaryKey;autoIncrement;column:payment_id"`
	RentID        uint    `gorm:"index;not null"`
	Amount        float64 `gorm:"not null"`
	PaymentMethod string  `gorm:"size:32;not null"`
	Status        string  `gorm:"size:16;not null"`
	Reference     string  `gorm:"size:36;not null"` // 对账用的交易号

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Payment) TableName() string { return "payments" }
