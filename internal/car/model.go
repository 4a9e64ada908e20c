package car

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// 车辆状态的固定字典值（car_statuses 表按名称懒创建）。
const (
	StatusAvailable   = "Available"
	StatusRented      = "Rented"
	StatusMaintenance = "Maintenance"
)

// CarModel 是 car_models 维度表的 GORM 模型；(brand, model_name) 为自然键。
type CarModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement;column:model_id"`
	Brand     string `gorm:"size:64;not null;uniqueIndex:idx_brand_model"`
	ModelName string `gorm:"size:64;not null;uniqueIndex:idx_brand_model"`
}

func (CarModel) TableName() string { return "car_models" }

// CarLocation 是 car_locations 维度表的 GORM 模型；(city, address) 为自然键。
type CarLocation struct {
	ID      uint   `gorm:"primaryKey;autoIncrement;column:location_id"`
	City    string `gorm:"size:64;not null;uniqueIndex:idx_city_address"`
	Address string `gorm:"size:128;not null;uniqueIndex:idx_city_address"`
}

func (CarLocation) TableName() string { return "car_locations" }

// CarStatus 是 car_statuses 字典表的 GORM 模型。
type CarStatus struct {
	ID         uint   `gorm:"primaryKey;autoIncrement;column:status_id"`
	StatusName string `gorm:"uniqueIndex;size:32;not null"`
}

func (CarStatus) TableName() string { return "car_statuses" }

// Car 是 cars 表的 GORM 模型；DeletedAt 实现软删除（回收站）。
type Car struct {
	ID           uint    `gorm:"primaryKey;autoIncrement;column:car_id"`
	LicensePlate string  `gorm:"uniqueIndex;size:32;not null"`
	Year         int     `gorm:"not null"`
	PricePerHour float64 `gorm:"not null"`

	ModelID    uint `gorm:"index;not null"`
	LocationID uint `gorm:"index;not null"`
	StatusID   uint `gorm:"index;not null"`

	Model    CarModel    `gorm:"foreignKey:ModelID"`
	Location CarLocation `gorm:"foreignKey:LocationID"`
	Status   CarStatus   `gorm:"foreignKey:StatusID"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Car) TableName() string { return "cars" }

// Summary 列表展示用的一行文本（要求关联已预加载）。
func (c Car) Summary() string {
	return fmt.Sprintf(" - ID: %d | %s %s (%d) | Plate: %s | $%.2f/hr | Loc: %s, %s | [%s]",
		c.ID, c.Model.Brand, c.Model.ModelName, c.Year, c.LicensePlate,
		c.PricePerHour, c.Location.City, c.Location.Address, c.Status.StatusName)
}
