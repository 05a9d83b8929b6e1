package dto

type UserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone"`
	Address     string `json:"address"`
	Avatar      string `json:"profile_image"`
	Role        int    `json:"role"`
	Status      int    `json:"status"`
}

type UpdateUserRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone"`
	Address     string  `json:"address"`
	Avatar      string  `json:"profile_image"`
	FarmIDs     []int64 `json:"farm_ids"`
}

type ChangeUserStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

type AssignStaffRequest struct {
	BookingID         string `json:"bookingId" binding:"required"`
	SaleStaffID       *uint  `json:"saleStaffId"`
	ConsultingStaffID *uint  `json:"consultingStaffId"`
}
