package models

import "time"

// Fish một cá thể koi được rao bán tại trại
type Fish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	FarmID      uint      `json:"farmId"`
	Farm        *Farm     `gorm:"foreignKey:FarmID" json:"farm,omitempty"`
	Variety     string    `gorm:"not null" json:"variety"`
	Length      float64   `json:"length"` // cm
	Weight      float64   `json:"weight"` // kg
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Price       int64     `json:"price"` // đơn vị đồng
}

// FishPack lô koi bán theo gói, không chọn từng con
type FishPack struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	FarmID      uint      `json:"farmId"`
	Farm        *Farm     `gorm:"foreignKey:FarmID" json:"farm,omitempty"`
	Length      string    `json:"length"`
	Weight      string    `json:"weight"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // đơn vị đồng
}
