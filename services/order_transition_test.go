package services

import (
	"testing"

	"koi/errors"
	"koi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFishOrderStore struct {
	mock.Mock
}

func (m *mockFishOrderStore) GetByID(id string) (*models.FishOrder, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FishOrder), args.Error(1)
}

func (m *mockFishOrderStore) UpdateStatus(id string, status string) (*models.FishOrder, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FishOrder), args.Error(1)
}

func (m *mockFishOrderStore) UpdatePayment(id string, status string, paymentStatus string) (*models.FishOrder, error) {
	args := m.Called(id, status, paymentStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FishOrder), args.Error(1)
}

func TestOrderCancelThenRefundAvailable(t *testing.T) {
	order := &models.FishOrder{ID: "FO01", Status: models.OrderStatusDeposited, PaymentStatus: models.PaymentStatusDeposited}

	store := new(mockFishOrderStore)
	store.On("GetByID", "FO01").Return(order, nil)
	store.On("UpdateStatus", "FO01", models.OrderStatusCanceled).Run(func(args mock.Arguments) {
		order.Status = args.String(1)
	}).Return(order, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	updated, err := transitioner.Apply("FO01", models.ActionCancelOrder, models.OrderStatusDeposited)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCanceled, updated.Status)

	// Đơn đã hủy sau khi cọc thì được hoàn tiền
	actions, err := models.FishOrderAvailableActions(updated)
	assert.NoError(t, err)
	assert.True(t, models.ContainsAction(actions, models.ActionRefund))

	eligible, err := transitioner.AuthorizeRefund("FO01")
	assert.NoError(t, err)
	assert.Equal(t, "FO01", eligible.ID)
}

func TestOrderApplyIllegalActionDoesNotWrite(t *testing.T) {
	store := new(mockFishOrderStore)
	store.On("GetByID", "FO02").Return(&models.FishOrder{
		ID: "FO02", Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaidFull,
	}, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	_, err := transitioner.Apply("FO02", models.ActionCancelOrder, "")

	assert.True(t, errors.HasCode(err, errors.ErrCodeIllegalTransition))
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderPayHalf(t *testing.T) {
	store := new(mockFishOrderStore)
	store.On("GetByID", "FO03").Return(&models.FishOrder{
		ID: "FO03", Status: models.OrderStatusPending, PaymentStatus: models.PaymentStatusPending,
	}, nil)
	store.On("UpdatePayment", "FO03", models.OrderStatusDeposited, models.PaymentStatusDeposited).
		Return(&models.FishOrder{
			ID: "FO03", Status: models.OrderStatusDeposited, PaymentStatus: models.PaymentStatusDeposited,
		}, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	updated, err := transitioner.Apply("FO03", models.ActionPayHalf, "")

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusDeposited, updated.Status)
	assert.Equal(t, models.PaymentStatusDeposited, updated.PaymentStatus)
}

func TestOrderPayHalfTwiceRejected(t *testing.T) {
	store := new(mockFishOrderStore)
	store.On("GetByID", "FO03").Return(&models.FishOrder{
		ID: "FO03", Status: models.OrderStatusDeposited, PaymentStatus: models.PaymentStatusDeposited,
	}, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	_, err := transitioner.Apply("FO03", models.ActionPayHalf, "")

	assert.True(t, errors.HasCode(err, errors.ErrCodeIllegalTransition))
	store.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderFinishPaymentWhileDelivering(t *testing.T) {
	store := new(mockFishOrderStore)
	store.On("GetByID", "FO04").Return(&models.FishOrder{
		ID: "FO04", Status: models.OrderStatusDelivering, PaymentStatus: models.PaymentStatusDeposited,
	}, nil)
	store.On("UpdatePayment", "FO04", models.OrderStatusDelivering, models.PaymentStatusPaidFull).
		Return(&models.FishOrder{
			ID: "FO04", Status: models.OrderStatusDelivering, PaymentStatus: models.PaymentStatusPaidFull,
		}, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	updated, err := transitioner.Apply("FO04", models.ActionFinishPayment, "")

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaidFull, updated.PaymentStatus)
}

func TestOrderUpdateStatusRoundTrip(t *testing.T) {
	order := &models.FishOrder{ID: "FO05", Status: models.OrderStatusDeposited, PaymentStatus: models.PaymentStatusDeposited}

	store := new(mockFishOrderStore)
	store.On("GetByID", "FO05").Return(order, nil)
	store.On("UpdateStatus", "FO05", models.OrderStatusInTransit).Run(func(args mock.Arguments) {
		order.Status = args.String(1)
	}).Return(order, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	updated, err := transitioner.UpdateStatus("FO05", models.OrderStatusInTransit, "")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusInTransit, updated.Status)

	reread, err := store.GetByID("FO05")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusInTransit, reread.Status)
}

func TestOrderUpdateStatusConflictingState(t *testing.T) {
	store := new(mockFishOrderStore)
	store.On("GetByID", "FO06").Return(&models.FishOrder{
		ID: "FO06", Status: models.OrderStatusInTransit, PaymentStatus: models.PaymentStatusDeposited,
	}, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	_, err := transitioner.UpdateStatus("FO06", models.OrderStatusInTransit, models.OrderStatusDeposited)

	assert.True(t, errors.HasCode(err, errors.ErrCodeConflictingState))
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderUpdateStatusAndPaymentCompleteWithPaidFull(t *testing.T) {
	store := new(mockFishOrderStore)
	store.On("GetByID", "FO07").Return(&models.FishOrder{
		ID: "FO07", Status: models.OrderStatusDelivering, PaymentStatus: models.PaymentStatusDeposited,
	}, nil)
	store.On("UpdatePayment", "FO07", models.OrderStatusCompleted, models.PaymentStatusPaidFull).
		Return(&models.FishOrder{
			ID: "FO07", Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaidFull,
		}, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	// Giao xong và tất toán trong cùng một lần ghi
	updated, err := transitioner.UpdateStatusAndPayment("FO07", models.OrderStatusCompleted, models.PaymentStatusPaidFull, "")

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)
}

func TestOrderUpdateStatusAndPaymentRejectsRegression(t *testing.T) {
	store := new(mockFishOrderStore)
	store.On("GetByID", "FO08").Return(&models.FishOrder{
		ID: "FO08", Status: models.OrderStatusInTransit, PaymentStatus: models.PaymentStatusPaidFull,
	}, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	_, err := transitioner.UpdateStatusAndPayment("FO08", models.OrderStatusDelivering, models.PaymentStatusDeposited, "")

	assert.True(t, errors.HasCode(err, errors.ErrCodeIllegalTransition))
	store.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderCompletedWithoutPaidFullRejected(t *testing.T) {
	store := new(mockFishOrderStore)
	store.On("GetByID", "FO09").Return(&models.FishOrder{
		ID: "FO09", Status: models.OrderStatusDelivering, PaymentStatus: models.PaymentStatusDeposited,
	}, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	_, err := transitioner.UpdateStatus("FO09", models.OrderStatusCompleted, "")

	assert.True(t, errors.HasCode(err, errors.ErrCodeIllegalTransition))
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderAuthorizeRefundNothingPaid(t *testing.T) {
	store := new(mockFishOrderStore)
	store.On("GetByID", "FO10").Return(&models.FishOrder{
		ID: "FO10", Status: models.OrderStatusCanceled, PaymentStatus: models.PaymentStatusPending,
	}, nil)

	transitioner := NewFishOrderTransitioner(store, nil)

	_, err := transitioner.AuthorizeRefund("FO10")

	assert.True(t, errors.HasCode(err, errors.ErrCodeIllegalTransition))
}
