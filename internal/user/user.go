package user

import (
	"fmt"
	"time"
)

// User 是 users 表的 GORM 模型。
type User struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement;column:user_id"`
	Name                string    `gorm:"size:128;not null"`
	Email               string    `gorm:"uniqueIndex;size:128;not null"`
	PhoneNumber         string    `gorm:"size:32"`
	DriverLicenseNumber string    `gorm:"uniqueIndex;size:32;not null"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// Summary 列表展示用的一行文本。
func (u User) Summary() string {
	return fmt.Sprintf(" - ID: %d | Name: %s | Phone: %s | Email: %s | License: %s",
		u.ID, u.Name, u.PhoneNumber, u.Email, u.DriverLicenseNumber)
}
