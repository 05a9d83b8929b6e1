package builders

import (
	"testing"

	"koi/models"

	"github.com/stretchr/testify/assert"
)

func TestFishOrderBuilder(t *testing.T) {
	order := NewFishOrderBuilder().
		WithBooking("BO0002").
		WithFarm(3).
		WithDeliveryAddress("12 Nguyễn Trãi, Hà Nội").
		WithFish(1, 25_000_000).
		WithFish(2, 12_500_000).
		WithFishPack(1, 8_000_000).
		Build()

	assert.Equal(t, "BO0002", order.BookingID)
	assert.Equal(t, uint(3), order.FarmID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Len(t, order.FishOrderDetails, 2)
	assert.Len(t, order.FishPackOrderDetails, 1)
	assert.Equal(t, int64(45_500_000), order.Total)
}

func TestFishOrderBuilderEmptyOrder(t *testing.T) {
	order := NewFishOrderBuilder().WithBooking("BO0001").WithFarm(1).Build()

	assert.Equal(t, int64(0), order.Total)
	assert.Empty(t, order.FishOrderDetails)
}
