package models

import "time"

// Trip lịch trình tham quan gắn với booking, tạo ra ở giai đoạn báo giá
type Trip struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
	StartDate        string            `json:"startDate"` // dd/MM/yyyy
	EndDate          string            `json:"endDate"`
	DepartureAirport string            `json:"departureAirport"`
	Price            int64             `json:"price"` // đơn vị đồng
	Description      string            `json:"description"`
	Status           string            `gorm:"default:'Draft'" json:"status"`
	TripDestinations []TripDestination `gorm:"foreignKey:TripID" json:"tripDestinations"`
}

// TripDestination một điểm dừng tại trại koi trong lịch trình, sắp theo VisitOrder
type TripDestination struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TripID      uint   `json:"tripId"`
	FarmID      uint   `json:"farmId"`
	Farm        *Farm  `gorm:"foreignKey:FarmID" json:"farm,omitempty"`
	VisitOrder  int    `json:"visitOrder"`
	Description string `json:"description"`
}
