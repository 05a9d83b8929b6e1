package models

import (
	"testing"

	"koi/errors"

	"github.com/stretchr/testify/assert"
)

func TestAvailableActionsDeterministic(t *testing.T) {
	statuses := []string{
		BookingStatusRequested, BookingStatusPendingQuote, BookingStatusApprovedQuote,
		BookingStatusPaidBooking, BookingStatusOnGoing, BookingStatusOrderPrepare,
		BookingStatusCompleted, BookingStatusCanceled,
	}

	for _, status := range statuses {
		first, err1 := AvailableActions(MachineBooking, status)
		second, err2 := AvailableActions(MachineBooking, status)

		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.NotNil(t, first, "trạng thái %q phải trả về slice, không trả nil", status)
		assert.Equal(t, first, second, "cùng trạng thái %q phải cho cùng kết quả", status)
	}
}

func TestAvailableActionsApprovedQuote(t *testing.T) {
	actions, err := AvailableActions(MachineBooking, BookingStatusApprovedQuote)

	assert.NoError(t, err)
	assert.ElementsMatch(t, []Action{ActionViewQuote, ActionPay, ActionReject}, actions)
}

func TestAvailableActionsTerminalStatesAreDeadEnds(t *testing.T) {
	mutating := []Action{
		ActionPay, ActionReject,
		ActionCancelOrder, ActionPayHalf, ActionFinishPayment,
	}

	cases := []struct {
		machine Machine
		status  string
	}{
		{MachineBooking, BookingStatusCompleted},
		{MachineBooking, BookingStatusCanceled},
		{MachineFishOrder, OrderStatusCompleted},
		{MachineFishOrder, OrderStatusRejected},
		{MachineFishOrder, OrderStatusCanceled},
		{MachineFishOrder, OrderStatusReturn},
	}

	for _, tc := range cases {
		actions, err := AvailableActions(tc.machine, tc.status)
		assert.NoError(t, err)
		for _, a := range mutating {
			assert.False(t, ContainsAction(actions, a),
				"trạng thái kết thúc %q không được phép có hành động ghi %q", tc.status, a)
		}
	}
}

func TestAvailableActionsUnknownStatus(t *testing.T) {
	assert.NotPanics(t, func() {
		actions, err := AvailableActions(MachineBooking, "Bogus")

		assert.NotNil(t, actions)
		assert.Empty(t, actions)
		assert.True(t, errors.HasCode(err, errors.ErrCodeUnknownStatus))
	})
}

func TestAvailableActionsUnknownMachine(t *testing.T) {
	actions, err := AvailableActions(Machine("Hotel"), BookingStatusRequested)

	assert.Empty(t, actions)
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnknownStatus))
}

func TestAvailableActionsReturnsCopy(t *testing.T) {
	actions, err := AvailableActions(MachineBooking, BookingStatusApprovedQuote)
	assert.NoError(t, err)

	actions[0] = Action("Tampered")

	again, err := AvailableActions(MachineBooking, BookingStatusApprovedQuote)
	assert.NoError(t, err)
	assert.NotContains(t, again, Action("Tampered"))
}

func TestContainsAction(t *testing.T) {
	actions := []Action{ActionViewQuote, ActionPay}

	assert.True(t, ContainsAction(actions, ActionPay))
	assert.False(t, ContainsAction(actions, ActionReject))
	assert.False(t, ContainsAction(nil, ActionPay))
}
