package controllers

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"koi/config"
	"koi/constants"
	"koi/dto"
	"koi/models"
	"koi/response"
	"koi/services"
	"koi/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// BookingController gom các handler quanh vòng đời booking
type BookingController struct {
	facade *services.BookingFacade
	store  *services.GormBookingStore
	rdb    *redis.Client
}

func NewBookingController(facade *services.BookingFacade, rdb *redis.Client) *BookingController {
	return &BookingController{
		facade: facade,
		store:  services.NewGormBookingStore(config.DB),
		rdb:    rdb,
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:          booking.ID,
		Status:      booking.Status,
		Description: booking.Description,
		CreateAt:    booking.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	actions, err := models.BookingAvailableActions(&booking)
	if err != nil {
		log.Printf("trạng thái lạ trên booking %s: %v", booking.ID, err)
	}
	resp.AvailableActions = make([]string, 0, len(actions))
	for _, a := range actions {
		resp.AvailableActions = append(resp.AvailableActions, string(a))
	}

	if booking.Customer != nil {
		resp.Customer = &dto.BookingCustomerResponse{
			ID:          booking.Customer.ID,
			Name:        booking.Customer.Name,
			Email:       booking.Customer.Email,
			PhoneNumber: booking.Customer.PhoneNumber,
		}
	}
	if booking.Trip != nil {
		trip := convertToTripResponse(*booking.Trip)
		resp.Trip = &trip
	}
	if booking.SaleStaff != nil {
		resp.SaleStaff = &dto.BookingStaffResponse{ID: booking.SaleStaff.ID, Name: booking.SaleStaff.Name}
	}
	if booking.ConsultingStaff != nil {
		resp.ConsultingStaff = &dto.BookingStaffResponse{ID: booking.ConsultingStaff.ID, Name: booking.ConsultingStaff.Name}
	}
	return resp
}

// GetBookings danh sách booking cho nhân viên, lọc theo vai trò người gọi
func (bc *BookingController) GetBookings(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	cacheKey := fmt.Sprintf("bookings:role:%d:user:%d", currentUserRole, currentUserID)

	var allBookings []models.Booking

	// Lấy dữ liệu từ Redis Cache
	if err := services.GetFromRedis(config.Ctx, bc.rdb, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		baseTx := config.DB.Model(&models.Booking{}).
			Preload("Customer").
			Preload("Trip").
			Preload("SaleStaff").
			Preload("ConsultingStaff")

		// Áp dụng quyền truy cập theo vai trò
		switch currentUserRole {
		case constants.RoleSalesStaff:
			baseTx = baseTx.Where("sale_staff_id = ? OR status = ?", currentUserID, models.BookingStatusRequested)
		case constants.RoleConsultingStaff:
			baseTx = baseTx.Where("consulting_staff_id = ?", currentUserID)
		case constants.RoleDeliveryStaff:
			baseTx = baseTx.Where("status = ?", models.BookingStatusOrderPrepare)
		}

		if err := baseTx.Order("created_at DESC").Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, bc.rdb, cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	// Lấy các tham số filter từ query
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	nameFilter := c.Query("customerName")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Áp dụng bộ lọc
	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if statusFilter != "" && booking.Status != statusFilter {
			continue
		}
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if booking.Customer == nil ||
				!strings.Contains(strings.ToLower(booking.Customer.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		filteredBookings = append(filteredBookings, booking)
	}

	total := len(filteredBookings)

	// Phân trang
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	bookingResponses := make([]dto.BookingResponse, 0, end-start)
	for _, booking := range filteredBookings[start:end] {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

// GetBookingDetail chi tiết một booking kèm trip và danh sách hành động hợp lệ
func (bc *BookingController) GetBookingDetail(c *gin.Context) {
	id := c.Param("id")

	booking, err := bc.store.GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// GetBookingsByCustomer danh sách booking của một khách
func (bc *BookingController) GetBookingsByCustomer(c *gin.Context) {
	customerIDStr := c.Param("customerId")
	customerID, err := strconv.ParseUint(customerIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Mã khách không hợp lệ")
		return
	}

	bookings, err := bc.store.ListByCustomer(uint(customerID))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.Success(c, bookingResponses)
}

// CreateBooking khách tạo yêu cầu chuyến đi mới
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	booking, err := bc.facade.RequestBooking(userID.(uint), req.Description)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	bc.invalidateCaches()
	response.Success(c, convertToBookingResponse(*booking))
}

// UpdateBookingStatus nhân viên ghi trạng thái đích, máy trạng thái chặn bước chuyển sai
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updated, err := bc.facade.ChangeBookingStatus(id, req.Status, req.LastSeenStatus)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	bc.invalidateCaches()
	response.Success(c, convertToBookingResponse(*updated))
}

// BookingAction khách thực hiện một hành động trên booking (Reject...)
// Pay đi qua payment controller vì cần approvalUrl
func (bc *BookingController) BookingAction(c *gin.Context) {
	id := c.Param("id")

	var req dto.BookingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updated, err := bc.facade.ApplyBookingAction(id, models.Action(req.Action), req.LastSeenStatus)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	bc.invalidateCaches()
	response.Success(c, convertToBookingResponse(*updated))
}

// CreateQuote nhân viên sale tạo báo giá: gắn trip, booking sang Pending Quote
func (bc *BookingController) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateQuoteRequest(&req); err != nil {
		response.FromAppError(c, err)
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	trip := &models.Trip{
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		DepartureAirport: req.DepartureAirport,
		Price:            req.Price,
		Description:      req.Description,
		Status:           constants.TripStatusDraft,
	}
	for _, d := range req.Destinations {
		trip.TripDestinations = append(trip.TripDestinations, models.TripDestination{
			FarmID:      d.FarmID,
			VisitOrder:  d.VisitOrder,
			Description: d.Description,
		})
	}

	updated, err := bc.facade.CreateQuote(req.BookingID, trip, userID.(uint))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	bc.invalidateCaches()
	response.Success(c, convertToBookingResponse(*updated))
}

// ApproveQuote quản lý duyệt báo giá, booking sang Approved Quote
func (bc *BookingController) ApproveQuote(c *gin.Context) {
	id := c.Param("id")

	updated, err := bc.facade.ApproveQuote(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	bc.invalidateCaches()
	response.Success(c, convertToBookingResponse(*updated))
}

// AssignStaff quản lý gán nhân viên sale/tư vấn cho booking
func (bc *BookingController) AssignStaff(c *gin.Context) {
	var req dto.AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updates := map[string]interface{}{}
	if req.SaleStaffID != nil {
		updates["sale_staff_id"] = *req.SaleStaffID
	}
	if req.ConsultingStaffID != nil {
		updates["consulting_staff_id"] = *req.ConsultingStaffID
	}
	if len(updates) == 0 {
		response.BadRequest(c, "Không có nhân viên nào để gán")
		return
	}

	if err := config.DB.Model(&models.Booking{}).Where("id = ?", req.BookingID).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	booking, err := bc.store.GetByID(req.BookingID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	bc.invalidateCaches()
	response.Success(c, convertToBookingResponse(*booking))
}

func (bc *BookingController) invalidateCaches() {
	if bc.rdb == nil {
		return
	}
	if err := services.InvalidateByPattern(config.Ctx, bc.rdb, "bookings:*"); err != nil {
		log.Printf("Lỗi khi xóa cache booking: %v", err)
	}
}
