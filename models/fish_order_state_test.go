package models

import (
	"testing"

	"koi/errors"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrderForwardChain(t *testing.T) {
	chain := []string{
		OrderStatusPending,
		OrderStatusDeposited,
		OrderStatusInTransit,
		OrderStatusDelivering,
		OrderStatusCompleted,
	}

	for i := 0; i < len(chain)-1; i++ {
		assert.True(t, CanTransitionOrder(chain[i], chain[i+1]),
			"%q -> %q phải hợp lệ", chain[i], chain[i+1])
	}

	assert.False(t, CanTransitionOrder(OrderStatusPending, OrderStatusDelivering))
	assert.False(t, CanTransitionOrder(OrderStatusDelivering, OrderStatusPending))
}

func TestCanTransitionOrderAlternateTerminals(t *testing.T) {
	preCompleted := []string{
		OrderStatusPending, OrderStatusDeposited, OrderStatusInTransit, OrderStatusDelivering,
	}
	terminals := []string{OrderStatusRejected, OrderStatusCanceled, OrderStatusReturn}

	for _, from := range preCompleted {
		for _, to := range terminals {
			assert.True(t, CanTransitionOrder(from, to), "%q -> %q phải hợp lệ", from, to)
		}
	}

	// Các trạng thái kết thúc không đi đâu nữa
	for _, terminal := range append(terminals, OrderStatusCompleted) {
		for to := range orderTransitions {
			assert.False(t, CanTransitionOrder(terminal, to),
				"%q là trạng thái kết thúc, không được chuyển sang %q", terminal, to)
		}
	}
}

func TestCanAdvancePayment(t *testing.T) {
	assert.True(t, CanAdvancePayment(PaymentStatusPending, PaymentStatusDeposited))
	assert.True(t, CanAdvancePayment(PaymentStatusDeposited, PaymentStatusPaidFull))
	assert.True(t, CanAdvancePayment(PaymentStatusDeposited, PaymentStatusDeposited))

	// Không được lùi
	assert.False(t, CanAdvancePayment(PaymentStatusPaidFull, PaymentStatusDeposited))
	assert.False(t, CanAdvancePayment(PaymentStatusDeposited, PaymentStatusPending))

	// Giá trị ngoài enum
	assert.False(t, CanAdvancePayment(PaymentStatusPending, "Delivering"))
}

func TestFishOrderAvailableActionsPayHalfOnlyBeforeDeposit(t *testing.T) {
	order := &FishOrder{ID: "FO01", Status: OrderStatusPending, PaymentStatus: PaymentStatusPending}

	actions, err := FishOrderAvailableActions(order)
	assert.NoError(t, err)
	assert.True(t, ContainsAction(actions, ActionPayHalf))

	order.PaymentStatus = PaymentStatusDeposited
	actions, err = FishOrderAvailableActions(order)
	assert.NoError(t, err)
	assert.False(t, ContainsAction(actions, ActionPayHalf))
}

func TestFishOrderAvailableActionsFinishPayment(t *testing.T) {
	order := &FishOrder{ID: "FO02", Status: OrderStatusDelivering, PaymentStatus: PaymentStatusDeposited}

	actions, err := FishOrderAvailableActions(order)
	assert.NoError(t, err)
	assert.True(t, ContainsAction(actions, ActionFinishPayment))

	// Đã trả đủ thì thôi
	order.PaymentStatus = PaymentStatusPaidFull
	actions, err = FishOrderAvailableActions(order)
	assert.NoError(t, err)
	assert.False(t, ContainsAction(actions, ActionFinishPayment))

	// Chưa tới giai đoạn giao hàng thì cũng chưa trả nốt được
	order = &FishOrder{ID: "FO02", Status: OrderStatusInTransit, PaymentStatus: PaymentStatusDeposited}
	actions, err = FishOrderAvailableActions(order)
	assert.NoError(t, err)
	assert.False(t, ContainsAction(actions, ActionFinishPayment))
}

func TestFishOrderAvailableActionsRefund(t *testing.T) {
	// Đã hủy sau khi cọc: được hoàn tiền
	order := &FishOrder{ID: "FO01", Status: OrderStatusCanceled, PaymentStatus: PaymentStatusDeposited}
	actions, err := FishOrderAvailableActions(order)
	assert.NoError(t, err)
	assert.True(t, ContainsAction(actions, ActionRefund))

	// Bị từ chối sau khi trả đủ: được hoàn tiền
	order = &FishOrder{ID: "FO02", Status: OrderStatusRejected, PaymentStatus: PaymentStatusPaidFull}
	actions, err = FishOrderAvailableActions(order)
	assert.NoError(t, err)
	assert.True(t, ContainsAction(actions, ActionRefund))

	// Chưa trả đồng nào thì không có gì để hoàn
	order = &FishOrder{ID: "FO03", Status: OrderStatusCanceled, PaymentStatus: PaymentStatusPending}
	actions, err = FishOrderAvailableActions(order)
	assert.NoError(t, err)
	assert.False(t, ContainsAction(actions, ActionRefund))

	// Đã hoàn rồi thì không hoàn lần hai
	order = &FishOrder{ID: "FO04", Status: OrderStatusCanceled, PaymentStatus: PaymentStatusDeposited, Refunded: true}
	actions, err = FishOrderAvailableActions(order)
	assert.NoError(t, err)
	assert.False(t, ContainsAction(actions, ActionRefund))
}

func TestFishOrderAvailableActionsUnknownStatus(t *testing.T) {
	assert.NotPanics(t, func() {
		order := &FishOrder{ID: "FO05", Status: "Bogus", PaymentStatus: PaymentStatusPending}
		actions, err := FishOrderAvailableActions(order)

		assert.Empty(t, actions)
		assert.True(t, errors.HasCode(err, errors.ErrCodeUnknownStatus))
	})
}

func TestValidateOrderStatusChangeCompletedRequiresPaidFull(t *testing.T) {
	order := &FishOrder{ID: "FO01", Status: OrderStatusDelivering, PaymentStatus: PaymentStatusDeposited}

	err := ValidateOrderStatusChange(order, OrderStatusCompleted)
	assert.True(t, errors.HasCode(err, errors.ErrCodeIllegalTransition))

	order.PaymentStatus = PaymentStatusPaidFull
	assert.NoError(t, ValidateOrderStatusChange(order, OrderStatusCompleted))
}

func TestFishOrderComputeTotal(t *testing.T) {
	order := &FishOrder{
		FishOrderDetails: []FishOrderDetail{
			{FishID: 1, Price: 25_000_000},
			{FishID: 2, Price: 12_500_000},
		},
		FishPackOrderDetails: []FishPackOrderDetail{
			{FishPackID: 1, Price: 8_000_000},
		},
	}

	assert.Equal(t, int64(45_500_000), order.ComputeTotal())
}
