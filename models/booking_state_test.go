package models

import (
	"testing"

	"koi/errors"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionBookingForwardChain(t *testing.T) {
	chain := []string{
		BookingStatusRequested,
		BookingStatusPendingQuote,
		BookingStatusApprovedQuote,
		BookingStatusPaidBooking,
		BookingStatusOnGoing,
		BookingStatusOrderPrepare,
		BookingStatusCompleted,
	}

	for i := 0; i < len(chain)-1; i++ {
		assert.True(t, CanTransitionBooking(chain[i], chain[i+1]),
			"%q -> %q phải hợp lệ", chain[i], chain[i+1])
	}

	// Không được nhảy cóc hay đi lùi
	assert.False(t, CanTransitionBooking(BookingStatusRequested, BookingStatusApprovedQuote))
	assert.False(t, CanTransitionBooking(BookingStatusPaidBooking, BookingStatusApprovedQuote))
}

func TestCanTransitionBookingCancelFromNonTerminal(t *testing.T) {
	nonTerminal := []string{
		BookingStatusRequested, BookingStatusPendingQuote, BookingStatusApprovedQuote,
		BookingStatusPaidBooking, BookingStatusOnGoing, BookingStatusOrderPrepare,
	}
	for _, status := range nonTerminal {
		assert.True(t, CanTransitionBooking(status, BookingStatusCanceled),
			"phải hủy được booking từ %q", status)
	}

	assert.False(t, CanTransitionBooking(BookingStatusCompleted, BookingStatusCanceled))
	assert.False(t, CanTransitionBooking(BookingStatusCanceled, BookingStatusCompleted))
}

func TestBookingActionTarget(t *testing.T) {
	target, ok := BookingActionTarget(ActionPay)
	assert.True(t, ok)
	assert.Equal(t, BookingStatusPaidBooking, target)

	target, ok = BookingActionTarget(ActionReject)
	assert.True(t, ok)
	assert.Equal(t, BookingStatusCanceled, target)

	// Hành động chỉ đọc không có trạng thái đích
	_, ok = BookingActionTarget(ActionViewQuote)
	assert.False(t, ok)
	_, ok = BookingActionTarget(ActionTrack)
	assert.False(t, ok)
}

func TestValidateBookingStatusChange(t *testing.T) {
	booking := &Booking{ID: "BO0001", Status: BookingStatusRequested}

	assert.NoError(t, ValidateBookingStatusChange(booking, BookingStatusPendingQuote))

	err := ValidateBookingStatusChange(booking, BookingStatusCompleted)
	assert.True(t, errors.HasCode(err, errors.ErrCodeIllegalTransition))

	err = ValidateBookingStatusChange(booking, "Bogus")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnknownStatus))
}

func TestBookingIsTerminal(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: BookingStatusCanceled}).IsTerminal())
	assert.False(t, (&Booking{Status: BookingStatusOnGoing}).IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus(BookingStatusOrderPrepare)
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusOrderPrepare, status)

	_, err = ParseBookingStatus("pending quote")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnknownStatus))
}
