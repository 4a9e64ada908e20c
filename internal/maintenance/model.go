package maintenance

import (
	"fmt"
	"time"
)

// MaintenanceLog 是 maintenance_logs 表的 GORM 模型。
type MaintenanceLog struct {
	ID          uint    `gorm:"primaryKey;autoIncrement;column:log_id"`
	CarID       uint    `gorm:"index;not null"`
	Description string  `gorm:"size:255;not null"`
	Cost        float64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MaintenanceLog) TableName() string { return "maintenance_logs" }

func (m MaintenanceLog) Summary() string {
	return fmt.Sprintf(" - LogID: %d | Car: %d | %s | Cost: $%.2f | %s",
		m.ID, m.CarID, m.Description, m.Cost, m.CreatedAt.Format("2006-01-02"))
}

// Review 是 reviews 表的 GORM 模型。
type Review struct {
	ID      uint   `gorm:"primaryKey;autoIncrement;column:review_id"`
	UserID  uint   `gorm:"index;not null"`
	CarID   uint   `gorm:"index;not null"`
	Rating  int    `gorm:"not null"`
	Comment string `gorm:"size:512"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Review) TableName() string { return "reviews" }

func (r Review) Summary() string {
	return fmt.Sprintf(" - ReviewID: %d | User: %d | Rating: %d/5 | %s",
		r.ID, r.UserID, r.Rating, r.Comment)
}
