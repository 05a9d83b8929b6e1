package models

import (
	"fmt"

	"koi/errors"
)

// Machine phân biệt hai máy trạng thái dùng chung resolver
type Machine string

const (
	MachineBooking   Machine = "Booking"
	MachineFishOrder Machine = "FishOrder"
)

// Action hành động khách hoặc nhân viên có thể thực hiện trên một trạng thái
type Action string

const (
	// Booking actions
	ActionViewQuote   Action = "ViewQuote"
	ActionPay         Action = "Pay"
	ActionReject      Action = "Reject"
	ActionTrack       Action = "Track"
	ActionViewHistory Action = "ViewHistory"

	// Fish order actions
	ActionCancelOrder   Action = "CancelOrder"
	ActionPayHalf       Action = "PayHalf"
	ActionFinishPayment Action = "FinishPayment"
	ActionTrackOrder    Action = "TrackOrder"
	ActionRefund        Action = "Refund"
)

// actionTable bảng trạng thái -> hành động cho cả hai máy.
// Thêm trạng thái hay hành động mới là sửa bảng, không sửa code.
var actionTable = map[Machine]map[string][]Action{
	MachineBooking: {
		BookingStatusRequested:     {},
		BookingStatusPendingQuote:  {},
		BookingStatusApprovedQuote: {ActionViewQuote, ActionPay, ActionReject},
		BookingStatusPaidBooking:   {ActionTrack},
		BookingStatusOnGoing:       {ActionTrack},
		BookingStatusOrderPrepare:  {ActionTrack},
		BookingStatusCompleted:     {ActionViewHistory},
		BookingStatusCanceled:      {ActionViewHistory},
	},
	MachineFishOrder: {
		OrderStatusPending:    {ActionCancelOrder, ActionPayHalf, ActionTrackOrder},
		OrderStatusDeposited:  {ActionCancelOrder, ActionTrackOrder},
		OrderStatusInTransit:  {ActionCancelOrder, ActionTrackOrder},
		OrderStatusDelivering: {ActionCancelOrder, ActionFinishPayment, ActionTrackOrder},
		OrderStatusCompleted:  {ActionTrackOrder},
		OrderStatusRejected:   {ActionTrackOrder, ActionRefund},
		OrderStatusCanceled:   {ActionTrackOrder, ActionRefund},
		OrderStatusReturn:     {ActionTrackOrder},
	},
}

// AvailableActions tra bảng hành động theo máy và trạng thái.
// Hàm total: trạng thái lạ trả về tập rỗng kèm lỗi UNKNOWN_STATUS, không panic.
func AvailableActions(machine Machine, status string) ([]Action, error) {
	table, ok := actionTable[machine]
	if !ok {
		return []Action{}, errors.NewAppError(errors.ErrCodeUnknownStatus,
			fmt.Sprintf("máy trạng thái không xác định: %q", machine), nil)
	}
	actions, ok := table[status]
	if !ok {
		return []Action{}, errors.NewAppError(errors.ErrCodeUnknownStatus,
			fmt.Sprintf("trạng thái không xác định: %q", status), nil)
	}

	out := make([]Action, len(actions))
	copy(out, actions)
	return out, nil
}

// ContainsAction kiểm tra một hành động có trong danh sách không
func ContainsAction(actions []Action, a Action) bool {
	for _, action := range actions {
		if action == a {
			return true
		}
	}
	return false
}
