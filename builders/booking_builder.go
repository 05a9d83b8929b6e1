package builders

import (
	"koi/models"
)

// FishOrderBuilder giúp tạo đơn cá theo từng bước
type FishOrderBuilder struct {
	order *models.FishOrder
}

// NewFishOrderBuilder tạo instance mới của FishOrderBuilder
func NewFishOrderBuilder() *FishOrderBuilder {
	return &FishOrderBuilder{
		order: &models.FishOrder{
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
		},
	}
}

// WithBooking gắn đơn vào booking
func (b *FishOrderBuilder) WithBooking(bookingID string) *FishOrderBuilder {
	b.order.BookingID = bookingID
	return b
}

// WithFarm gắn trại bán cá
func (b *FishOrderBuilder) WithFarm(farmID uint) *FishOrderBuilder {
	b.order.FarmID = farmID
	return b
}

// WithDeliveryAddress thêm địa chỉ giao hàng
func (b *FishOrderBuilder) WithDeliveryAddress(address string) *FishOrderBuilder {
	b.order.DeliveryAddress = address
	return b
}

// WithFish thêm một dòng cá lẻ
func (b *FishOrderBuilder) WithFish(fishID uint, price int64) *FishOrderBuilder {
	b.order.FishOrderDetails = append(b.order.FishOrderDetails, models.FishOrderDetail{
		FishID: fishID,
		Price:  price,
	})
	return b
}

// WithFishPack thêm một dòng lô cá
func (b *FishOrderBuilder) WithFishPack(packID uint, price int64) *FishOrderBuilder {
	b.order.FishPackOrderDetails = append(b.order.FishPackOrderDetails, models.FishPackOrderDetail{
		FishPackID: packID,
		Price:      price,
	})
	return b
}

// Build tạo đơn hoàn chỉnh, tổng tiền tính từ các dòng chi tiết
func (b *FishOrderBuilder) Build() *models.FishOrder {
	b.order.Total = b.order.ComputeTotal()
	return b.order
}
