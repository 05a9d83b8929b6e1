package services

import (
	"fmt"

	"koi/errors"
	"koi/models"
	"koi/services/logger"
)

// FishOrderStore trừu tượng hóa phần lưu trữ đơn cá để test bằng mock
type FishOrderStore interface {
	GetByID(id string) (*models.FishOrder, error)
	UpdateStatus(id string, status string) (*models.FishOrder, error)
	UpdatePayment(id string, status string, paymentStatus string) (*models.FishOrder, error)
}

// FishOrderTransitioner áp dụng hành động và các lần ghi trạng thái lên đơn cá,
// chặn tại chỗ mọi bước chuyển ngoài bảng thay vì tin vào phần lưu trữ
type FishOrderTransitioner struct {
	store  FishOrderStore
	logger logger.Logger
}

func NewFishOrderTransitioner(store FishOrderStore, l logger.Logger) *FishOrderTransitioner {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &FishOrderTransitioner{store: store, logger: l}
}

func (t *FishOrderTransitioner) fetch(id string, lastSeen string) (*models.FishOrder, error) {
	order, err := t.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound,
			fmt.Sprintf("không tìm thấy đơn %s", id), errors.ErrOrderNotFound)
	}
	if lastSeen != "" && order.Status != lastSeen {
		return nil, errors.NewAppError(errors.ErrCodeConflictingState,
			fmt.Sprintf("đơn %s đã chuyển sang %q, hãy tải lại trước khi thao tác", id, order.Status), nil)
	}
	return order, nil
}

// UpdateStatus ghi trạng thái đích do phía gọi chỉ định sau khi kiểm tra bảng chuyển
func (t *FishOrderTransitioner) UpdateStatus(id string, newStatus string, lastSeen string) (*models.FishOrder, error) {
	order, err := t.fetch(id, lastSeen)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateOrderStatusChange(order, newStatus); err != nil {
		return nil, err
	}

	updated, err := t.store.UpdateStatus(id, newStatus)
	if err != nil {
		return nil, err
	}

	t.logger.Info("đơn %s: %s -> %s", id, order.Status, newStatus)
	return updated, nil
}

// UpdateStatusAndPayment ghi cả hai trục cùng lúc; trạng thái thanh toán chỉ được tiến
func (t *FishOrderTransitioner) UpdateStatusAndPayment(id string, newStatus string, newPaymentStatus string, lastSeen string) (*models.FishOrder, error) {
	order, err := t.fetch(id, lastSeen)
	if err != nil {
		return nil, err
	}

	if _, err := models.ParsePaymentStatus(newPaymentStatus); err != nil {
		return nil, err
	}
	if !models.CanAdvancePayment(order.PaymentStatus, newPaymentStatus) {
		return nil, errors.NewAppError(errors.ErrCodeIllegalTransition,
			fmt.Sprintf("trạng thái thanh toán của đơn %s không được lùi từ %q về %q", id, order.PaymentStatus, newPaymentStatus), nil)
	}

	// Kiểm tra trục giao hàng trên bản sao đã mang trạng thái thanh toán mới,
	// để Delivering -> Completed kèm Paid Full trong cùng một lần ghi vẫn hợp lệ.
	// Giữ nguyên trạng thái giao hàng thì chỉ trục thanh toán thay đổi.
	if newStatus != order.Status {
		check := *order
		check.PaymentStatus = newPaymentStatus
		if err := models.ValidateOrderStatusChange(&check, newStatus); err != nil {
			return nil, err
		}
	} else if _, err := models.ParseOrderStatus(newStatus); err != nil {
		return nil, err
	}

	updated, err := t.store.UpdatePayment(id, newStatus, newPaymentStatus)
	if err != nil {
		return nil, err
	}

	t.logger.Info("đơn %s: %s/%s -> %s/%s", id, order.Status, order.PaymentStatus, newStatus, newPaymentStatus)
	return updated, nil
}

// Apply thực hiện một hành động của khách trên đơn: hủy, cọc một nửa, trả nốt.
// Refund đi qua PaymentService, ở đây chỉ các hành động ghi trực tiếp trạng thái.
func (t *FishOrderTransitioner) Apply(id string, action models.Action, lastSeen string) (*models.FishOrder, error) {
	order, err := t.fetch(id, lastSeen)
	if err != nil {
		return nil, err
	}

	actions, err := models.FishOrderAvailableActions(order)
	if err != nil {
		return nil, err
	}
	if !models.ContainsAction(actions, action) {
		return nil, errors.NewAppError(errors.ErrCodeIllegalTransition,
			fmt.Sprintf("hành động %s không hợp lệ khi đơn %s đang ở %q/%q", action, id, order.Status, order.PaymentStatus), nil)
	}

	switch action {
	case models.ActionCancelOrder:
		updated, err := t.store.UpdateStatus(id, models.OrderStatusCanceled)
		if err != nil {
			return nil, err
		}
		t.logger.Info("đơn %s: %s -> %s (hành động %s)", id, order.Status, models.OrderStatusCanceled, action)
		return updated, nil

	case models.ActionPayHalf:
		updated, err := t.store.UpdatePayment(id, models.OrderStatusDeposited, models.PaymentStatusDeposited)
		if err != nil {
			return nil, err
		}
		t.logger.Info("đơn %s: đã đặt cọc", id)
		return updated, nil

	case models.ActionFinishPayment:
		updated, err := t.store.UpdatePayment(id, order.Status, models.PaymentStatusPaidFull)
		if err != nil {
			return nil, err
		}
		t.logger.Info("đơn %s: đã thanh toán đủ", id)
		return updated, nil

	case models.ActionTrackOrder:
		// Chỉ đọc
		return order, nil
	}

	return nil, errors.NewAppError(errors.ErrCodeIllegalTransition,
		fmt.Sprintf("hành động %s không áp dụng trực tiếp lên đơn", action), nil)
}

// AuthorizeRefund kiểm tra đơn có đủ điều kiện hoàn tiền không, không ghi gì cả
func (t *FishOrderTransitioner) AuthorizeRefund(id string) (*models.FishOrder, error) {
	order, err := t.fetch(id, "")
	if err != nil {
		return nil, err
	}

	actions, err := models.FishOrderAvailableActions(order)
	if err != nil {
		return nil, err
	}
	if !models.ContainsAction(actions, models.ActionRefund) {
		return nil, errors.NewAppError(errors.ErrCodeIllegalTransition,
			fmt.Sprintf("đơn %s không đủ điều kiện hoàn tiền (%q/%q)", id, order.Status, order.PaymentStatus), nil)
	}
	return order, nil
}
