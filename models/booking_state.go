package models

import (
	"fmt"

	"koi/errors"
)

// bookingTransitions các bước chuyển hợp lệ của booking.
// Chuỗi tiến: Requested -> Pending Quote -> Approved Quote -> Paid Booking
// -> On-going -> Order Prepare -> Completed; Canceled đến được từ mọi trạng thái chưa kết thúc.
var bookingTransitions = map[string][]string{
	BookingStatusRequested:     {BookingStatusPendingQuote, BookingStatusCanceled},
	BookingStatusPendingQuote:  {BookingStatusApprovedQuote, BookingStatusCanceled},
	BookingStatusApprovedQuote: {BookingStatusPaidBooking, BookingStatusCanceled},
	BookingStatusPaidBooking:   {BookingStatusOnGoing, BookingStatusCanceled},
	BookingStatusOnGoing:       {BookingStatusOrderPrepare, BookingStatusCanceled},
	BookingStatusOrderPrepare:  {BookingStatusCompleted, BookingStatusCanceled},
	BookingStatusCompleted:     {},
	BookingStatusCanceled:      {},
}

// bookingActionTargets trạng thái đích của các hành động có ghi.
// ViewQuote, Track, ViewHistory chỉ đọc nên không có trong bảng.
var bookingActionTargets = map[Action]string{
	ActionPay:    BookingStatusPaidBooking,
	ActionReject: BookingStatusCanceled,
}

// ParseBookingStatus kiểm tra chuỗi trạng thái booking có thuộc enum không
func ParseBookingStatus(s string) (string, error) {
	if _, ok := bookingTransitions[s]; !ok {
		return "", errors.NewAppError(errors.ErrCodeUnknownStatus,
			fmt.Sprintf("trạng thái booking không xác định: %q", s), nil)
	}
	return s, nil
}

// CanTransitionBooking kiểm tra bước chuyển from -> to có trong bảng không
func CanTransitionBooking(from, to string) bool {
	for _, target := range bookingTransitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// BookingAvailableActions tập hành động hợp lệ theo trạng thái hiện tại của booking
func BookingAvailableActions(b *Booking) ([]Action, error) {
	return AvailableActions(MachineBooking, b.Status)
}

// BookingActionTarget trạng thái đích của một hành động; ok=false với hành động chỉ đọc
func BookingActionTarget(a Action) (string, bool) {
	target, ok := bookingActionTargets[a]
	return target, ok
}

// ValidateBookingStatusChange kiểm tra một lần ghi trạng thái do nhân viên yêu cầu,
// từ chối tại chỗ bằng ILLEGAL_TRANSITION thay vì tin vào phía lưu trữ
func ValidateBookingStatusChange(b *Booking, newStatus string) error {
	if _, err := ParseBookingStatus(newStatus); err != nil {
		return err
	}
	if _, err := ParseBookingStatus(b.Status); err != nil {
		return err
	}
	if !CanTransitionBooking(b.Status, newStatus) {
		return errors.NewAppError(errors.ErrCodeIllegalTransition,
			fmt.Sprintf("không thể chuyển booking %s từ %q sang %q", b.ID, b.Status, newStatus), nil)
	}
	return nil
}
