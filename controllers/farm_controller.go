package controllers

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"koi/config"
	"koi/dto"
	"koi/models"
	"koi/response"
	"koi/services"

	"github.com/gin-gonic/gin"
)

func convertToFarmResponse(farm models.Farm) dto.FarmResponse {
	return dto.FarmResponse{
		ID:          farm.ID,
		Name:        farm.Name,
		Address:     farm.Address,
		Province:    farm.Province,
		PhoneNumber: farm.PhoneNumber,
		Email:       farm.Email,
		Description: farm.Description,
		Avatar:      farm.Avatar,
		Images:      farm.Images,
	}
}

// GetAllFarms danh sách trại koi, lọc theo tên và tỉnh trên bản cache
func GetAllFarms(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	cacheKey := "farms:all"

	var allFarms []models.Farm
	if err := services.GetFromRedis(config.Ctx, config.RDB, cacheKey, &allFarms); err != nil || len(allFarms) == 0 {
		if err := config.DB.Preload("Varieties").Order("created_at DESC").Find(&allFarms).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RDB, cacheKey, allFarms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách trại vào Redis: %v", err)
		}
	}

	// Lọc trên bản cache
	nameFilter := strings.ToLower(strings.TrimSpace(c.Query("name")))
	provinceFilter := strings.ToLower(strings.TrimSpace(c.Query("province")))

	filtered := make([]models.Farm, 0, len(allFarms))
	for _, farm := range allFarms {
		if nameFilter != "" && !strings.Contains(strings.ToLower(farm.Name), nameFilter) {
			continue
		}
		if provinceFilter != "" && !strings.Contains(strings.ToLower(farm.Province), provinceFilter) {
			continue
		}
		filtered = append(filtered, farm)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Farm{}
	} else {
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	farmResponses := make([]dto.FarmResponse, 0, len(filtered))
	for _, farm := range filtered {
		farmResponses = append(farmResponses, convertToFarmResponse(farm))
	}

	response.SuccessWithPagination(c, farmResponses, page, limit, total)
}

// GetFarmDetail chi tiết một trại kèm danh sách cá đang bán
func GetFarmDetail(c *gin.Context) {
	id := c.Param("id")

	var farm models.Farm
	if err := config.DB.Preload("Varieties").First(&farm, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	resp := struct {
		dto.FarmResponse
		Varieties []models.Fish `json:"varieties"`
	}{
		FarmResponse: convertToFarmResponse(farm),
		Varieties:    farm.Varieties,
	}

	response.Success(c, resp)
}

// SearchFarms tìm trại gần đúng theo tên, tỉnh hoặc giống cá; bộ lọc lần trước
// được nhớ trong Redis theo phiên để người dùng gõ bổ sung thay vì gõ lại
func SearchFarms(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")

	filters := &dto.FarmSearchFilters{
		Query:    strings.TrimSpace(c.Query("query")),
		Province: strings.TrimSpace(c.Query("province")),
		Variety:  strings.TrimSpace(c.Query("variety")),
	}

	if sessionID != "" {
		if old, err := services.GetLastFilters(config.Ctx, config.RDB, sessionID); err == nil {
			filters = services.MergeFilters(old, filters)
		}
		if err := services.SaveLastFilters(config.Ctx, config.RDB, sessionID, filters); err != nil {
			log.Printf("Lỗi khi lưu bộ lọc tìm kiếm: %v", err)
		}
	}

	tx := config.DB.Preload("Varieties")
	if filters.Province != "" {
		tx = tx.Where("LOWER(province) LIKE ?", "%"+strings.ToLower(filters.Province)+"%")
	}
	if filters.Variety != "" {
		tx = tx.Where("id IN (?)", config.DB.Model(&models.Fish{}).Select("farm_id").
			Where("LOWER(variety) LIKE ?", "%"+strings.ToLower(filters.Variety)+"%"))
	}

	var farms []models.Farm
	if err := tx.Find(&farms).Error; err != nil {
		response.ServerError(c)
		return
	}

	if filters.Query != "" {
		farms = services.NewFarmSearch(farms).Search(filters.Query, 20)
	}

	farmResponses := make([]dto.FarmResponse, 0, len(farms))
	for _, farm := range farms {
		farmResponses = append(farmResponses, convertToFarmResponse(farm))
	}

	response.Success(c, farmResponses)
}

// CreateFarm quản lý thêm trại mới
func CreateFarm(c *gin.Context) {
	var req dto.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	farm := models.Farm{
		Name:        req.Name,
		Address:     req.Address,
		Province:    req.Province,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Description: req.Description,
		Avatar:      req.Avatar,
		Images:      req.Images,
	}

	if err := config.DB.Create(&farm).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateFarmCaches()
	response.Success(c, convertToFarmResponse(farm))
}

// UpdateFarm quản lý sửa thông tin trại
func UpdateFarm(c *gin.Context) {
	var req dto.UpdateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var farm models.Farm
	if err := config.DB.First(&farm, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		farm.Name = req.Name
	}
	if req.Address != "" {
		farm.Address = req.Address
	}
	if req.Province != "" {
		farm.Province = req.Province
	}
	if req.PhoneNumber != "" {
		farm.PhoneNumber = req.PhoneNumber
	}
	if req.Email != "" {
		farm.Email = req.Email
	}
	if req.Description != "" {
		farm.Description = req.Description
	}
	if req.Avatar != "" {
		farm.Avatar = req.Avatar
	}
	if req.Images != nil {
		farm.Images = req.Images
	}

	if err := config.DB.Save(&farm).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateFarmCaches()
	response.Success(c, convertToFarmResponse(farm))
}

// DeleteFarm quản lý gỡ trại khỏi hệ thống
func DeleteFarm(c *gin.Context) {
	id := c.Param("id")

	var count int64
	config.DB.Model(&models.TripDestination{}).Where("farm_id = ?", id).Count(&count)
	if count > 0 {
		response.Conflict(c, "Trại đang nằm trong lịch trình, không thể xóa")
		return
	}

	if err := config.DB.Delete(&models.Farm{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateFarmCaches()
	response.Success(c, gin.H{"deleted": fmt.Sprintf("farm %s", id)})
}

func invalidateFarmCaches() {
	if config.RDB == nil {
		return
	}
	if err := services.InvalidateByPattern(config.Ctx, config.RDB, "farms:*"); err != nil {
		log.Printf("Lỗi khi xóa cache trại: %v", err)
	}
}
