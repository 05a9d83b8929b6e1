package models

import (
	"time"

	"github.com/lib/pq"
)

// Farm trại koi tại Nhật, điểm đến của các chuyến tham quan
type Farm struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string         `gorm:"not null" json:"name"`
	Address     string         `json:"address"`
	Province    string         `json:"province"`
	PhoneNumber string         `json:"phoneNumber"`
	Email       string         `json:"email"`
	Description string         `json:"description"`
	Avatar      string         `json:"avatar"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Varieties   []Fish         `gorm:"foreignKey:FarmID" json:"varieties,omitempty"`
}
