package dto

// CreateFishOrderDetail một dòng cá lẻ trong đơn
type CreateFishOrderDetail struct {
	FishID uint  `json:"fishId" binding:"required"`
	Price  int64 `json:"price" binding:"required"`
}

// CreateFishPackOrderDetail một dòng lô cá trong đơn
type CreateFishPackOrderDetail struct {
	FishPackID uint  `json:"fishPackId" binding:"required"`
	Price      int64 `json:"price" binding:"required"`
}

type CreateFishOrderRequest struct {
	BookingID            string                      `json:"bookingId" binding:"required"`
	FarmID               uint                        `json:"farmId" binding:"required"`
	DeliveryAddress      string                      `json:"deliveryAddress"`
	FishOrderDetails     []CreateFishOrderDetail     `json:"fishOrderDetails"`
	FishPackOrderDetails []CreateFishPackOrderDetail `json:"fishPackOrderDetails"`
}

// UpdateFishOrderRequest ghi trạng thái đích của đơn; PaymentStatus để trống nếu
// không đổi; LastSeenStatus dùng để phát hiện ghi đè lẫn nhau
type UpdateFishOrderRequest struct {
	Status         string `json:"status" binding:"required"`
	PaymentStatus  string `json:"paymentStatus"`
	LastSeenStatus string `json:"lastSeenStatus"`
}

// FishOrderActionRequest khách thực hiện một hành động trên đơn
type FishOrderActionRequest struct {
	Action         string `json:"action" binding:"required"`
	LastSeenStatus string `json:"lastSeenStatus"`
}

type FishOrderDetailResponse struct {
	ID      uint   `json:"id"`
	FishID  uint   `json:"fishId"`
	Variety string `json:"variety"`
	Price   int64  `json:"price"`
}

type FishPackOrderDetailResponse struct {
	ID         uint   `json:"id"`
	FishPackID uint   `json:"fishPackId"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
}

type FishOrderResponse struct {
	ID                   string                        `json:"id"`
	BookingID            string                        `json:"bookingId"`
	FarmID               uint                          `json:"farmId"`
	FarmName             string                        `json:"farmName,omitempty"`
	DeliveryAddress      string                        `json:"deliveryAddress"`
	Status               string                        `json:"status"`
	PaymentStatus        string                        `json:"paymentStatus"`
	Total                int64                         `json:"total"`
	Refunded             bool                          `json:"refunded"`
	AvailableActions     []string                      `json:"availableActions"`
	FishOrderDetails     []FishOrderDetailResponse     `json:"fishOrderDetails"`
	FishPackOrderDetails []FishPackOrderDetailResponse `json:"fishPackOrderDetails"`
	CreatedAt            string                        `json:"createdAt"`
}
