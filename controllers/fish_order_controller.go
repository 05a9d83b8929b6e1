package controllers

import (
	"log"
	"strconv"

	"koi/builders"
	"koi/commands"
	"koi/config"
	"koi/dto"
	"koi/models"
	"koi/response"
	"koi/services"
	"koi/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// FishOrderController gom các handler quanh vòng đời đơn cá
type FishOrderController struct {
	facade *services.BookingFacade
	store  *services.GormFishOrderStore
	rdb    *redis.Client
}

func NewFishOrderController(facade *services.BookingFacade, rdb *redis.Client) *FishOrderController {
	return &FishOrderController{
		facade: facade,
		store:  services.NewGormFishOrderStore(config.DB),
		rdb:    rdb,
	}
}

func convertToFishOrderResponse(order models.FishOrder) dto.FishOrderResponse {
	resp := dto.FishOrderResponse{
		ID:              order.ID,
		BookingID:       order.BookingID,
		FarmID:          order.FarmID,
		DeliveryAddress: order.DeliveryAddress,
		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		Total:           order.Total,
		Refunded:        order.Refunded,
		CreatedAt:       order.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if order.Farm != nil {
		resp.FarmName = order.Farm.Name
	}

	actions, err := models.FishOrderAvailableActions(&order)
	if err != nil {
		log.Printf("trạng thái lạ trên đơn %s: %v", order.ID, err)
	}
	resp.AvailableActions = make([]string, 0, len(actions))
	for _, a := range actions {
		resp.AvailableActions = append(resp.AvailableActions, string(a))
	}

	resp.FishOrderDetails = make([]dto.FishOrderDetailResponse, 0, len(order.FishOrderDetails))
	for _, d := range order.FishOrderDetails {
		detail := dto.FishOrderDetailResponse{ID: d.ID, FishID: d.FishID, Price: d.Price}
		if d.Fish != nil {
			detail.Variety = d.Fish.Variety
		}
		resp.FishOrderDetails = append(resp.FishOrderDetails, detail)
	}

	resp.FishPackOrderDetails = make([]dto.FishPackOrderDetailResponse, 0, len(order.FishPackOrderDetails))
	for _, d := range order.FishPackOrderDetails {
		detail := dto.FishPackOrderDetailResponse{ID: d.ID, FishPackID: d.FishPackID, Price: d.Price}
		if d.FishPack != nil {
			detail.Quantity = d.FishPack.Quantity
		}
		resp.FishPackOrderDetails = append(resp.FishPackOrderDetails, detail)
	}

	return resp
}

// GetFishOrdersByCustomer danh sách đơn cá của một khách qua các booking của họ
func (fc *FishOrderController) GetFishOrdersByCustomer(c *gin.Context) {
	customerIDStr := c.Param("customerId")
	customerID, err := strconv.ParseUint(customerIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Mã khách không hợp lệ")
		return
	}

	orders, err := fc.store.ListByCustomer(uint(customerID))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	orderResponses := make([]dto.FishOrderResponse, 0, len(orders))
	for _, order := range orders {
		orderResponses = append(orderResponses, convertToFishOrderResponse(order))
	}

	response.Success(c, orderResponses)
}

// GetFishOrderDetail chi tiết một đơn cá
func (fc *FishOrderController) GetFishOrderDetail(c *gin.Context) {
	id := c.Param("id")

	order, err := fc.store.GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, convertToFishOrderResponse(*order))
}

// CreateFishOrder nhân viên tư vấn tạo đơn cá tại trại cho booking đang On-going
func (fc *FishOrderController) CreateFishOrder(c *gin.Context) {
	var req dto.CreateFishOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateFishOrderRequest(&req); err != nil {
		response.FromAppError(c, err)
		return
	}

	// Đơn chỉ được mở khi chuyến đi đang diễn ra
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", req.BookingID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if booking.Status != models.BookingStatusOnGoing {
		response.BadRequest(c, "Booking chưa ở trạng thái On-going, không thể mở đơn cá")
		return
	}

	builder := builders.NewFishOrderBuilder().
		WithBooking(req.BookingID).
		WithFarm(req.FarmID).
		WithDeliveryAddress(req.DeliveryAddress)
	for _, d := range req.FishOrderDetails {
		builder = builder.WithFish(d.FishID, d.Price)
	}
	for _, d := range req.FishPackOrderDetails {
		builder = builder.WithFishPack(d.FishPackID, d.Price)
	}
	order := builder.Build()

	if err := commands.NewCreateFishOrderCommand(order, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	fc.invalidateCaches()
	response.Success(c, convertToFishOrderResponse(*order))
}

// UpdateFishOrder ghi trạng thái đơn theo route PUT /fish-order/:bookingId/:farmId/update
func (fc *FishOrderController) UpdateFishOrder(c *gin.Context) {
	bookingID := c.Param("id")
	farmIDStr := c.Param("farmId")
	farmID, err := strconv.ParseUint(farmIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Mã trại không hợp lệ")
		return
	}

	var req dto.UpdateFishOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	order, err := fc.store.GetByBookingAndFarm(bookingID, uint(farmID))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	updated, err := fc.facade.UpdateOrderStatus(order.ID, req.Status, req.PaymentStatus, req.LastSeenStatus)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	fc.invalidateCaches()
	response.Success(c, convertToFishOrderResponse(*updated))
}

// FishOrderAction khách thực hiện một hành động trên đơn (CancelOrder, PayHalf...)
func (fc *FishOrderController) FishOrderAction(c *gin.Context) {
	id := c.Param("id")

	var req dto.FishOrderActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updated, err := fc.facade.ApplyOrderAction(id, models.Action(req.Action), req.LastSeenStatus)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	fc.invalidateCaches()
	response.Success(c, convertToFishOrderResponse(*updated))
}

func (fc *FishOrderController) invalidateCaches() {
	if fc.rdb == nil {
		return
	}
	if err := services.InvalidateByPattern(config.Ctx, fc.rdb, "fishorders:*"); err != nil {
		log.Printf("Lỗi khi xóa cache đơn cá: %v", err)
	}
}
