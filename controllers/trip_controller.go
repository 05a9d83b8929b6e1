package controllers

import (
	"koi/config"
	"koi/constants"
	"koi/dto"
	"koi/models"
	"koi/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func convertToTripResponse(trip models.Trip) dto.TripResponse {
	resp := dto.TripResponse{
		ID:               trip.ID,
		StartDate:        trip.StartDate,
		EndDate:          trip.EndDate,
		DepartureAirport: trip.DepartureAirport,
		Price:            trip.Price,
		Description:      trip.Description,
		Status:           trip.Status,
	}

	resp.TripDestinations = make([]dto.TripDestinationResponse, 0, len(trip.TripDestinations))
	for _, dest := range trip.TripDestinations {
		destResp := dto.TripDestinationResponse{
			ID:          dest.ID,
			VisitOrder:  dest.VisitOrder,
			Description: dest.Description,
		}
		if dest.Farm != nil {
			farm := convertToFarmResponse(*dest.Farm)
			destResp.Farm = &farm
		}
		resp.TripDestinations = append(resp.TripDestinations, destResp)
	}
	return resp
}

// GetTripDetail chi tiết lịch trình kèm các điểm dừng theo thứ tự tham quan
func GetTripDetail(c *gin.Context) {
	id := c.Param("id")

	var trip models.Trip
	if err := config.DB.
		Preload("TripDestinations", func(db *gorm.DB) *gorm.DB {
			return db.Order("visit_order ASC")
		}).
		Preload("TripDestinations.Farm").
		First(&trip, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToTripResponse(trip))
}

// UpdateTrip nhân viên bán hàng chỉnh lịch trình khi báo giá còn ở bản nháp
func UpdateTrip(c *gin.Context) {
	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var trip models.Trip
	if err := config.DB.Preload("TripDestinations").First(&trip, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Lịch trình đã duyệt thì khóa lại, phải tạo báo giá mới
	if trip.Status != constants.TripStatusDraft {
		response.Conflict(c, "Lịch trình đã duyệt, không thể sửa")
		return
	}

	if req.StartDate != "" {
		trip.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		trip.EndDate = req.EndDate
	}
	if req.DepartureAirport != "" {
		trip.DepartureAirport = req.DepartureAirport
	}
	if req.Price != nil {
		trip.Price = *req.Price
	}
	if req.Description != "" {
		trip.Description = req.Description
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.Destinations != nil {
			if err := tx.Where("trip_id = ?", trip.ID).Delete(&models.TripDestination{}).Error; err != nil {
				return err
			}
			trip.TripDestinations = make([]models.TripDestination, 0, len(req.Destinations))
			for i, d := range req.Destinations {
				order := d.VisitOrder
				if order == 0 {
					order = i + 1
				}
				trip.TripDestinations = append(trip.TripDestinations, models.TripDestination{
					TripID:      trip.ID,
					FarmID:      d.FarmID,
					VisitOrder:  order,
					Description: d.Description,
				})
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&trip).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToTripResponse(trip))
}
