package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:New User" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"password"`
	PhoneNumber   string        `gorm:"type:varchar(11)" json:"phone"`
	Address       string        `json:"address"`
	Avatar        string        `gorm:"default:''" json:"profile_image"`
	Role          int           `gorm:"default:0" json:"role"`
	Status        int           `gorm:"default:1" json:"status"`
	Gender        int           `json:"gender"`
	DateOfBirth   string        `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	FarmIDs       pq.Int64Array `gorm:"type:integer[]" json:"farm_ids"` // Các trại koi nhân viên tư vấn phụ trách
	ManagerID     *uint         `json:"managerId,omitempty"`
	Staffs        []User        `gorm:"foreignKey:ManagerID" json:"staffs,omitempty"`
}
