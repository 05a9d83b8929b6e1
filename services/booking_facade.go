package services

import (
	"time"

	"koi/constants"
	"koi/errors"
	"koi/models"
	"koi/services/notification"
	"koi/utils"

	"gorm.io/gorm"
)

// BookingFacade đơn giản hóa việc phối hợp giữa máy trạng thái, cổng thanh toán
// và thông báo; controller chỉ gọi facade thay vì tự ghép từng service
type BookingFacade struct {
	db           *gorm.DB
	transitioner *BookingTransitioner
	orders       *FishOrderTransitioner
	orderStore   *GormFishOrderStore
	payment      *PaymentService
	notifier     notification.Service
}

func NewBookingFacade(db *gorm.DB, payment *PaymentService, notifier notification.Service) *BookingFacade {
	bookingStore := NewGormBookingStore(db)
	orderStore := NewGormFishOrderStore(db)
	return &BookingFacade{
		db:           db,
		transitioner: NewBookingTransitioner(bookingStore, nil),
		orders:       NewFishOrderTransitioner(orderStore, nil),
		orderStore:   orderStore,
		payment:      payment,
		notifier:     notifier,
	}
}

func (f *BookingFacade) notifyStatus(entity, id, from, to string) {
	if f.notifier == nil {
		return
	}
	message := notification.NewStatusMessageBuilder(entity, id, from, to).Build()
	if err := f.notifier.SendMessage(message); err != nil {
		// Thông báo hỏng không làm hỏng nghiệp vụ
		utils.LogError("không gửi được thông báo: %v", err)
	}
}

// RequestBooking khách tạo yêu cầu chuyến đi mới, trạng thái khởi đầu Requested
func (f *BookingFacade) RequestBooking(customerID uint, description string) (*models.Booking, error) {
	booking := &models.Booking{
		CustomerID:  customerID,
		Status:      models.BookingStatusRequested,
		Description: description,
	}
	if err := f.db.Create(booking).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi tạo booking", err)
	}
	return booking, nil
}

// CreateQuote nhân viên sale gắn trip và chuyển booking sang Pending Quote
func (f *BookingFacade) CreateQuote(bookingID string, trip *models.Trip, saleStaffID uint) (*models.Booking, error) {
	booking, err := f.transitioner.store.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateBookingStatusChange(booking, models.BookingStatusPendingQuote); err != nil {
		return nil, err
	}

	err = f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"trip_id":       trip.ID,
			"sale_staff_id": saleStaffID,
			"status":        models.BookingStatusPendingQuote,
		}
		return tx.Model(&models.Booking{}).Where("id = ?", bookingID).Updates(updates).Error
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi tạo báo giá", err)
	}

	f.notifyStatus("Booking", bookingID, booking.Status, models.BookingStatusPendingQuote)
	return f.transitioner.store.GetByID(bookingID)
}

// ApproveQuote quản lý duyệt báo giá, ghi lại thời điểm duyệt cho job hết hạn
func (f *BookingFacade) ApproveQuote(bookingID string) (*models.Booking, error) {
	booking, err := f.transitioner.store.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateBookingStatusChange(booking, models.BookingStatusApprovedQuote); err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":    models.BookingStatusApprovedQuote,
		"quoted_at": &now,
	}
	if err := f.db.Model(&models.Booking{}).Where("id = ?", bookingID).Updates(updates).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi duyệt báo giá", err)
	}
	if booking.TripID != nil {
		if err := f.db.Model(&models.Trip{}).Where("id = ?", *booking.TripID).
			Update("status", constants.TripStatusApproved).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi duyệt trip", err)
		}
	}

	f.notifyStatus("Booking", bookingID, booking.Status, models.BookingStatusApprovedQuote)
	return f.transitioner.store.GetByID(bookingID)
}

// PayBooking khách bấm Pay trên báo giá đã duyệt: kiểm tra hành động hợp lệ rồi
// xin approvalUrl từ cổng thanh toán. Trạng thái chỉ đổi khi cổng gọi lại ConfirmPayment.
func (f *BookingFacade) PayBooking(bookingID string, lastSeen string) (string, error) {
	booking, err := f.transitioner.store.GetByID(bookingID)
	if err != nil {
		return "", err
	}
	if lastSeen != "" && booking.Status != lastSeen {
		return "", errors.NewAppError(errors.ErrCodeConflictingState,
			"booking đã đổi trạng thái, hãy tải lại trước khi thanh toán", nil)
	}

	actions, err := models.BookingAvailableActions(booking)
	if err != nil {
		return "", err
	}
	if !models.ContainsAction(actions, models.ActionPay) {
		return "", errors.NewAppError(errors.ErrCodeIllegalTransition,
			"booking chưa ở trạng thái cho phép thanh toán", nil)
	}
	if booking.Trip == nil {
		return "", errors.NewAppError(errors.ErrCodeIllegalTransition,
			"booking chưa có báo giá", errors.ErrQuoteNotApproved)
	}

	return f.payment.CreateTripPayment(bookingID, booking.Trip.Price)
}

// ConfirmPayment cổng thanh toán báo thành công, booking chuyển Paid Booking
func (f *BookingFacade) ConfirmPayment(bookingID string) (*models.Booking, error) {
	updated, err := f.transitioner.Transition(bookingID, models.ActionPay, "")
	if err != nil {
		return nil, err
	}
	f.notifyStatus("Booking", bookingID, models.BookingStatusApprovedQuote, updated.Status)
	return updated, nil
}

// ApplyBookingAction khách thực hiện một hành động (Reject...) qua máy trạng thái
func (f *BookingFacade) ApplyBookingAction(bookingID string, action models.Action, lastSeen string) (*models.Booking, error) {
	booking, err := f.transitioner.store.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	from := booking.Status

	updated, err := f.transitioner.Transition(bookingID, action, lastSeen)
	if err != nil {
		return nil, err
	}
	if updated.Status != from {
		f.notifyStatus("Booking", bookingID, from, updated.Status)
	}
	return updated, nil
}

// ChangeBookingStatus nhân viên ghi trạng thái đích, có kiểm tra bảng chuyển
func (f *BookingFacade) ChangeBookingStatus(bookingID string, newStatus string, lastSeen string) (*models.Booking, error) {
	booking, err := f.transitioner.store.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	from := booking.Status

	updated, err := f.transitioner.ChangeStatus(bookingID, newStatus, lastSeen)
	if err != nil {
		return nil, err
	}
	f.notifyStatus("Booking", bookingID, from, updated.Status)
	return updated, nil
}

// UpdateOrderStatus ghi trạng thái (và tùy chọn trạng thái thanh toán) của đơn cá
func (f *BookingFacade) UpdateOrderStatus(orderID string, newStatus string, newPaymentStatus string, lastSeen string) (*models.FishOrder, error) {
	order, err := f.orderStore.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	from := order.Status

	var updated *models.FishOrder
	if newPaymentStatus != "" {
		updated, err = f.orders.UpdateStatusAndPayment(orderID, newStatus, newPaymentStatus, lastSeen)
	} else {
		updated, err = f.orders.UpdateStatus(orderID, newStatus, lastSeen)
	}
	if err != nil {
		return nil, err
	}

	f.notifyStatus("FishOrder", orderID, from, updated.Status)
	return updated, nil
}

// ApplyOrderAction khách thực hiện một hành động trên đơn cá
func (f *BookingFacade) ApplyOrderAction(orderID string, action models.Action, lastSeen string) (*models.FishOrder, error) {
	order, err := f.orderStore.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	from := order.Status

	updated, err := f.orders.Apply(orderID, action, lastSeen)
	if err != nil {
		return nil, err
	}
	if updated.Status != from {
		f.notifyStatus("FishOrder", orderID, from, updated.Status)
	}
	return updated, nil
}

// RefundOrder hoàn tiền một đơn cá đã hủy/từ chối sau khi đã thanh toán một phần
func (f *BookingFacade) RefundOrder(orderID string) (*models.FishOrder, error) {
	order, err := f.orders.AuthorizeRefund(orderID)
	if err != nil {
		return nil, err
	}

	if _, err := f.payment.Refund(orderID, order.Total); err != nil {
		return nil, err
	}

	updated, err := f.orderStore.MarkRefunded(orderID)
	if err != nil {
		return nil, err
	}

	f.notifyStatus("FishOrder", orderID, order.Status, order.Status+" (refunded)")
	return updated, nil
}
