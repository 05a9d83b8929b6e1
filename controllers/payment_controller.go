package controllers

import (
	"log"

	"koi/config"
	"koi/dto"
	"koi/response"
	"koi/services"

	"github.com/gin-gonic/gin"
)

// PaymentController chuyển tiếp sang cổng thanh toán ngoài; trạng thái chỉ đổi
// khi cổng gọi lại báo thành công
type PaymentController struct {
	facade *services.BookingFacade
}

func NewPaymentController(facade *services.BookingFacade) *PaymentController {
	return &PaymentController{facade: facade}
}

// CreateTripPayment khởi tạo thanh toán chuyến đi, trả về link duyệt của cổng
func (pc *PaymentController) CreateTripPayment(c *gin.Context) {
	bookingID := c.Param("id")

	var req struct {
		LastSeenStatus string `json:"lastSeenStatus"`
	}
	// Body để trống vẫn hợp lệ, khi đó bỏ qua kiểm tra ghi đè
	_ = c.ShouldBindJSON(&req)

	approvalURL, err := pc.facade.PayBooking(bookingID, req.LastSeenStatus)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, dto.CreateTripPaymentResponse{ApprovalURL: approvalURL})
}

// PaymentSuccess cổng thanh toán gọi lại sau khi khách trả tiền xong
func (pc *PaymentController) PaymentSuccess(c *gin.Context) {
	bookingID := c.Param("id")

	booking, err := pc.facade.ConfirmPayment(bookingID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	pc.invalidateCaches()
	response.Success(c, convertToBookingResponse(*booking))
}

// RefundOrder hoàn tiền cho đơn cá đã hủy hoặc bị từ chối sau khi khách đã cọc
func (pc *PaymentController) RefundOrder(c *gin.Context) {
	orderID := c.Param("id")

	order, err := pc.facade.RefundOrder(orderID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	pc.invalidateCaches()
	response.Success(c, dto.RefundResponse{OrderID: order.ID, Refunded: order.Refunded})
}

func (pc *PaymentController) invalidateCaches() {
	if config.RDB == nil {
		return
	}
	for _, pattern := range []string{"bookings:*", "fishorders:*"} {
		if err := services.InvalidateByPattern(config.Ctx, config.RDB, pattern); err != nil {
			log.Printf("Lỗi khi xóa cache sau thanh toán: %v", err)
		}
	}
}
