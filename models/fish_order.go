package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Fish order status constants
const (
	OrderStatusPending    = "Pending"
	OrderStatusDeposited  = "Deposited"
	OrderStatusInTransit  = "In Transit"
	OrderStatusDelivering = "Delivering"
	OrderStatusCompleted  = "Completed"
	OrderStatusRejected   = "Rejected"
	OrderStatusCanceled   = "Canceled"
	OrderStatusReturn     = "Return"
)

// Payment status constants
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusDeposited = "Deposited"
	PaymentStatusPaidFull  = "Paid Full"
)

// FishOrder đơn mua koi thuộc một booking, theo dõi giao hàng và thanh toán riêng
type FishOrder struct {
	ID                   string                `gorm:"primaryKey;size:10" json:"id"`
	BookingID            string                `gorm:"size:10" json:"bookingId"`
	Booking              *Booking              `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	FarmID               uint                  `json:"farmId"`
	Farm                 *Farm                 `gorm:"foreignKey:FarmID" json:"farm,omitempty"`
	DeliveryAddress      string                `json:"deliveryAddress"`
	Status               string                `gorm:"default:'Pending'" json:"status"`
	PaymentStatus        string                `gorm:"default:'Pending'" json:"paymentStatus"`
	Total                int64                 `json:"total"` // đơn vị đồng
	Refunded             bool                  `gorm:"default:false" json:"refunded"`
	CreatedAt            time.Time             `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time             `gorm:"autoUpdateTime" json:"updatedAt"`
	FishOrderDetails     []FishOrderDetail     `gorm:"foreignKey:FishOrderID" json:"fishOrderDetails"`
	FishPackOrderDetails []FishPackOrderDetail `gorm:"foreignKey:FishOrderID" json:"fishPackOrderDetails"`
}

type FishOrderDetail struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FishOrderID string `gorm:"size:10" json:"fishOrderId"`
	FishID      uint   `json:"fishId"`
	Fish        *Fish  `gorm:"foreignKey:FishID" json:"fish,omitempty"`
	Price       int64  `json:"price"` // đơn vị đồng
}

type FishPackOrderDetail struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FishOrderID string    `gorm:"size:10" json:"fishOrderId"`
	FishPackID  uint      `json:"fishPackId"`
	FishPack    *FishPack `gorm:"foreignKey:FishPackID" json:"fishPack,omitempty"`
	Price       int64     `json:"price"` // đơn vị đồng
}

func (o *FishOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID != "" {
		return nil
	}

	var count int64
	if err := tx.Model(&FishOrder{}).Count(&count).Error; err != nil {
		return err
	}
	o.ID = fmt.Sprintf("FO%02d", count+1)

	var existing int64
	if err := tx.Model(&FishOrder{}).Where("id = ?", o.ID).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return fmt.Errorf("mã đơn %s đã tồn tại, hãy thử lại", o.ID)
	}
	return nil
}

// IsTerminal kiểm tra đơn đã ở trạng thái kết thúc chưa
func (o *FishOrder) IsTerminal() bool {
	switch o.Status {
	case OrderStatusCompleted, OrderStatusRejected, OrderStatusCanceled, OrderStatusReturn:
		return true
	}
	return false
}

// ComputeTotal tính tổng tiền từ các dòng chi tiết
func (o *FishOrder) ComputeTotal() int64 {
	var total int64
	for _, d := range o.FishOrderDetails {
		total += d.Price
	}
	for _, d := range o.FishPackOrderDetails {
		total += d.Price
	}
	return total
}
