package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusRequested     = "Requested"
	BookingStatusPendingQuote  = "Pending Quote"
	BookingStatusApprovedQuote = "Approved Quote"
	BookingStatusPaidBooking   = "Paid Booking"
	BookingStatusOnGoing       = "On-going"
	BookingStatusOrderPrepare  = "Order Prepare"
	BookingStatusCompleted     = "Completed"
	BookingStatusCanceled      = "Canceled"
)

// Booking yêu cầu chuyến đi của khách, sở hữu một Trip (sau báo giá) và các FishOrder
type Booking struct {
	ID                string    `gorm:"primaryKey;size:10" json:"id"`
	CustomerID        uint      `json:"customerId"`
	Customer          *User     `gorm:"foreignKey:CustomerID" json:"customer"`
	TripID            *uint     `json:"tripId,omitempty"`
	Trip              *Trip     `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	SaleStaffID       *uint     `json:"saleStaffId,omitempty"`
	SaleStaff         *User     `gorm:"foreignKey:SaleStaffID" json:"saleStaff,omitempty"`
	ConsultingStaffID *uint     `json:"consultingStaffId,omitempty"`
	ConsultingStaff   *User     `gorm:"foreignKey:ConsultingStaffID" json:"consultingStaff,omitempty"`
	Status            string    `gorm:"default:'Requested'" json:"status"`
	Description       string    `json:"description"`
	QuotedAt          *time.Time `json:"quotedAt,omitempty"` // Thời điểm báo giá được duyệt, dùng cho job hết hạn
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	FishOrders        []FishOrder `gorm:"foreignKey:BookingID" json:"fishOrders,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID != "" {
		return nil
	}

	var count int64
	if err := tx.Model(&Booking{}).Count(&count).Error; err != nil {
		return err
	}
	b.ID = fmt.Sprintf("BO%04d", count+1)

	var existing int64
	if err := tx.Model(&Booking{}).Where("id = ?", b.ID).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return fmt.Errorf("mã booking %s đã tồn tại, hãy thử lại", b.ID)
	}
	return nil
}

// IsTerminal kiểm tra booking đã ở trạng thái kết thúc chưa
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCanceled
}
