package dto

// CreateBookingRequest khách gửi yêu cầu chuyến đi mới
type CreateBookingRequest struct {
	Description string `json:"description"`
}

// UpdateBookingRequest nhân viên ghi trạng thái đích; LastSeenStatus là trạng thái
// phía gọi quan sát lần cuối, dùng để phát hiện ghi đè lẫn nhau
type UpdateBookingRequest struct {
	Status         string `json:"status" binding:"required"`
	LastSeenStatus string `json:"lastSeenStatus"`
}

// BookingActionRequest khách thực hiện một hành động (Pay, Reject...) trên booking
type BookingActionRequest struct {
	Action         string `json:"action" binding:"required"`
	LastSeenStatus string `json:"lastSeenStatus"`
}

type BookingCustomerResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone"`
}

type BookingStaffResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID               string                   `json:"id"`
	Status           string                   `json:"status"`
	Description      string                   `json:"description"`
	Customer         *BookingCustomerResponse `json:"customer,omitempty"`
	Trip             *TripResponse            `json:"trip,omitempty"`
	SaleStaff        *BookingStaffResponse    `json:"saleStaff,omitempty"`
	ConsultingStaff  *BookingStaffResponse    `json:"consultingStaff,omitempty"`
	AvailableActions []string                 `json:"availableActions"`
	CreateAt         string                   `json:"createAt"`
}
