package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleCustomer        = 0
	RoleSalesStaff      = 1
	RoleConsultingStaff = 2
	RoleDeliveryStaff   = 3
	RoleManager         = 4
	RoleAdmin           = 5
)

// Trip status
const (
	TripStatusDraft    = "Draft"
	TripStatusApproved = "Approved"
	TripStatusCanceled = "Canceled"
)

// Thời hạn hiệu lực của báo giá (ngày)
const QuoteValidityDays = 7
