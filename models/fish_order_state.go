package models

import (
	"fmt"

	"koi/errors"
)

// orderTransitions các bước chuyển hợp lệ của đơn cá.
// Chuỗi tiến: Pending -> Deposited -> In Transit -> Delivering -> Completed;
// Rejected, Canceled, Return đến được từ mọi trạng thái trước Completed và đều kết thúc.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusDeposited, OrderStatusRejected, OrderStatusCanceled, OrderStatusReturn},
	OrderStatusDeposited:  {OrderStatusInTransit, OrderStatusRejected, OrderStatusCanceled, OrderStatusReturn},
	OrderStatusInTransit:  {OrderStatusDelivering, OrderStatusRejected, OrderStatusCanceled, OrderStatusReturn},
	OrderStatusDelivering: {OrderStatusCompleted, OrderStatusRejected, OrderStatusCanceled, OrderStatusReturn},
	OrderStatusCompleted:  {},
	OrderStatusRejected:   {},
	OrderStatusCanceled:   {},
	OrderStatusReturn:     {},
}

// paymentRank thứ tự tăng dần của trạng thái thanh toán, không bao giờ giảm
var paymentRank = map[string]int{
	PaymentStatusPending:   0,
	PaymentStatusDeposited: 1,
	PaymentStatusPaidFull:  2,
}

// orderActionGuards điều kiện bổ sung theo trục thanh toán cho từng hành động.
// Ghi chú: điều kiện paymentStatus == "Delivering" trong hệ thống cũ nằm ngoài
// miền giá trị của paymentStatus nên không được giữ lại.
var orderActionGuards = map[Action]func(*FishOrder) bool{
	ActionPayHalf:       func(o *FishOrder) bool { return o.PaymentStatus == PaymentStatusPending },
	ActionFinishPayment: func(o *FishOrder) bool { return o.PaymentStatus != PaymentStatusPaidFull },
	ActionRefund: func(o *FishOrder) bool {
		return !o.Refunded && paymentRank[o.PaymentStatus] >= paymentRank[PaymentStatusDeposited]
	},
}

// ParseOrderStatus kiểm tra chuỗi trạng thái đơn có thuộc enum không
func ParseOrderStatus(s string) (string, error) {
	if _, ok := orderTransitions[s]; !ok {
		return "", errors.NewAppError(errors.ErrCodeUnknownStatus,
			fmt.Sprintf("trạng thái đơn không xác định: %q", s), nil)
	}
	return s, nil
}

// ParsePaymentStatus kiểm tra chuỗi trạng thái thanh toán có thuộc enum không
func ParsePaymentStatus(s string) (string, error) {
	if _, ok := paymentRank[s]; !ok {
		return "", errors.NewAppError(errors.ErrCodeUnknownStatus,
			fmt.Sprintf("trạng thái thanh toán không xác định: %q", s), nil)
	}
	return s, nil
}

// CanTransitionOrder kiểm tra bước chuyển from -> to có trong bảng không
func CanTransitionOrder(from, to string) bool {
	for _, target := range orderTransitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// CanAdvancePayment trạng thái thanh toán chỉ được tiến, không được lùi
func CanAdvancePayment(from, to string) bool {
	fromRank, okFrom := paymentRank[from]
	toRank, okTo := paymentRank[to]
	return okFrom && okTo && toRank >= fromRank
}

// FishOrderAvailableActions tập hành động hợp lệ của đơn: tra bảng theo trạng thái
// giao hàng rồi lọc tiếp bằng guard trên trục thanh toán
func FishOrderAvailableActions(o *FishOrder) ([]Action, error) {
	base, err := AvailableActions(MachineFishOrder, o.Status)
	if err != nil {
		return base, err
	}

	actions := make([]Action, 0, len(base))
	for _, a := range base {
		if guard, ok := orderActionGuards[a]; ok && !guard(o) {
			continue
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// ValidateOrderStatusChange kiểm tra một lần ghi trạng thái đơn trước khi gửi đi.
// Completed đòi hỏi đã thanh toán đủ.
func ValidateOrderStatusChange(o *FishOrder, newStatus string) error {
	if _, err := ParseOrderStatus(newStatus); err != nil {
		return err
	}
	if _, err := ParseOrderStatus(o.Status); err != nil {
		return err
	}
	if !CanTransitionOrder(o.Status, newStatus) {
		return errors.NewAppError(errors.ErrCodeIllegalTransition,
			fmt.Sprintf("không thể chuyển đơn %s từ %q sang %q", o.ID, o.Status, newStatus), nil)
	}
	if newStatus == OrderStatusCompleted && o.PaymentStatus != PaymentStatusPaidFull {
		return errors.NewAppError(errors.ErrCodeIllegalTransition,
			fmt.Sprintf("đơn %s chưa thanh toán đủ, không thể hoàn thành", o.ID), nil)
	}
	return nil
}
