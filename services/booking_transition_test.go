package services

import (
	"testing"

	"koi/errors"
	"koi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingStore) UpdateStatus(id string, status string) (*models.Booking, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func TestBookingTransitionPayFromApprovedQuote(t *testing.T) {
	store := new(mockBookingStore)
	store.On("GetByID", "BO0002").Return(&models.Booking{ID: "BO0002", Status: models.BookingStatusApprovedQuote}, nil)
	store.On("UpdateStatus", "BO0002", models.BookingStatusPaidBooking).
		Return(&models.Booking{ID: "BO0002", Status: models.BookingStatusPaidBooking}, nil)

	transitioner := NewBookingTransitioner(store, nil)

	booking, err := transitioner.Transition("BO0002", models.ActionPay, models.BookingStatusApprovedQuote)

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPaidBooking, booking.Status)
	store.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

func TestBookingTransitionIllegalActionDoesNotWrite(t *testing.T) {
	store := new(mockBookingStore)
	store.On("GetByID", "BO0005").Return(&models.Booking{ID: "BO0005", Status: models.BookingStatusCompleted}, nil)

	transitioner := NewBookingTransitioner(store, nil)

	_, err := transitioner.Transition("BO0005", models.ActionReject, "")

	assert.True(t, errors.HasCode(err, errors.ErrCodeIllegalTransition))
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestBookingTransitionConflictingState(t *testing.T) {
	store := new(mockBookingStore)
	// Nhân viên khác vừa hủy booking, phía gọi vẫn tưởng còn Approved Quote
	store.On("GetByID", "BO0003").Return(&models.Booking{ID: "BO0003", Status: models.BookingStatusCanceled}, nil)

	transitioner := NewBookingTransitioner(store, nil)

	_, err := transitioner.Transition("BO0003", models.ActionPay, models.BookingStatusApprovedQuote)

	assert.True(t, errors.HasCode(err, errors.ErrCodeConflictingState))
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestBookingTransitionNotFound(t *testing.T) {
	store := new(mockBookingStore)
	store.On("GetByID", "BO9999").Return(nil, errors.NewAppError(errors.ErrCodeNotFound, "không tìm thấy booking BO9999", errors.ErrBookingNotFound))

	transitioner := NewBookingTransitioner(store, nil)

	_, err := transitioner.Transition("BO9999", models.ActionPay, "")

	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestBookingTransitionReadOnlyAction(t *testing.T) {
	store := new(mockBookingStore)
	store.On("GetByID", "BO0002").Return(&models.Booking{ID: "BO0002", Status: models.BookingStatusApprovedQuote}, nil)

	transitioner := NewBookingTransitioner(store, nil)

	booking, err := transitioner.Transition("BO0002", models.ActionViewQuote, "")

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusApprovedQuote, booking.Status)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestBookingChangeStatusRoundTrip(t *testing.T) {
	current := &models.Booking{ID: "BO0001", Status: models.BookingStatusRequested}

	store := new(mockBookingStore)
	store.On("GetByID", "BO0001").Return(current, nil)
	store.On("UpdateStatus", "BO0001", models.BookingStatusPendingQuote).Run(func(args mock.Arguments) {
		current.Status = args.String(1)
	}).Return(current, nil)

	transitioner := NewBookingTransitioner(store, nil)

	updated, err := transitioner.ChangeStatus("BO0001", models.BookingStatusPendingQuote, models.BookingStatusRequested)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPendingQuote, updated.Status)

	// Đọc lại ngay sau khi ghi phải thấy trạng thái vừa ghi
	reread, err := store.GetByID("BO0001")
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPendingQuote, reread.Status)
}

func TestBookingChangeStatusIllegalTarget(t *testing.T) {
	store := new(mockBookingStore)
	store.On("GetByID", "BO0001").Return(&models.Booking{ID: "BO0001", Status: models.BookingStatusRequested}, nil)

	transitioner := NewBookingTransitioner(store, nil)

	_, err := transitioner.ChangeStatus("BO0001", models.BookingStatusCompleted, "")

	assert.True(t, errors.HasCode(err, errors.ErrCodeIllegalTransition))
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}
