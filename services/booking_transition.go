package services

import (
	"fmt"

	"koi/errors"
	"koi/models"
	"koi/services/logger"
)

// BookingStore trừu tượng hóa phần lưu trữ booking để test bằng mock
type BookingStore interface {
	GetByID(id string) (*models.Booking, error)
	UpdateStatus(id string, status string) (*models.Booking, error)
}

// BookingTransitioner thực hiện chuyển trạng thái booking theo bảng hành động,
// luôn đọc lại trạng thái hiện tại trước khi ghi
type BookingTransitioner struct {
	store  BookingStore
	logger logger.Logger
}

func NewBookingTransitioner(store BookingStore, l logger.Logger) *BookingTransitioner {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingTransitioner{store: store, logger: l}
}

// Transition áp dụng một hành động lên booking.
// lastSeen là trạng thái phía gọi quan sát lần cuối; khác với trạng thái vừa đọc
// lại thì từ chối bằng CONFLICTING_STATE, buộc phía gọi refetch trước khi thử lại.
// Hành động không hợp lệ bị chặn tại đây, không chạm tới phần lưu trữ.
func (t *BookingTransitioner) Transition(id string, action models.Action, lastSeen string) (*models.Booking, error) {
	booking, err := t.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound,
			fmt.Sprintf("không tìm thấy booking %s", id), errors.ErrBookingNotFound)
	}

	if lastSeen != "" && booking.Status != lastSeen {
		return nil, errors.NewAppError(errors.ErrCodeConflictingState,
			fmt.Sprintf("booking %s đã chuyển sang %q, hãy tải lại trước khi thao tác", id, booking.Status), nil)
	}

	actions, err := models.BookingAvailableActions(booking)
	if err != nil {
		return nil, err
	}
	if !models.ContainsAction(actions, action) {
		return nil, errors.NewAppError(errors.ErrCodeIllegalTransition,
			fmt.Sprintf("hành động %s không hợp lệ khi booking %s đang ở %q", action, id, booking.Status), nil)
	}

	target, ok := models.BookingActionTarget(action)
	if !ok {
		// Hành động chỉ đọc, trả về booking hiện tại
		return booking, nil
	}

	updated, err := t.store.UpdateStatus(id, target)
	if err != nil {
		return nil, err
	}

	t.logger.Info("booking %s: %s -> %s (hành động %s)", id, booking.Status, target, action)
	return updated, nil
}

// ChangeStatus ghi trạng thái đích do nhân viên chỉ định, sau khi kiểm tra bảng chuyển
func (t *BookingTransitioner) ChangeStatus(id string, newStatus string, lastSeen string) (*models.Booking, error) {
	booking, err := t.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound,
			fmt.Sprintf("không tìm thấy booking %s", id), errors.ErrBookingNotFound)
	}

	if lastSeen != "" && booking.Status != lastSeen {
		return nil, errors.NewAppError(errors.ErrCodeConflictingState,
			fmt.Sprintf("booking %s đã chuyển sang %q, hãy tải lại trước khi thao tác", id, booking.Status), nil)
	}

	if err := models.ValidateBookingStatusChange(booking, newStatus); err != nil {
		return nil, err
	}

	updated, err := t.store.UpdateStatus(id, newStatus)
	if err != nil {
		return nil, err
	}

	t.logger.Info("booking %s: %s -> %s", id, booking.Status, newStatus)
	return updated, nil
}
