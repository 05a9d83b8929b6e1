package controllers

import (
	"log"
	"time"

	"koi/config"
	"koi/models"
	"koi/response"
	"koi/services"

	"github.com/gin-gonic/gin"
)

// GetFishByFarm danh sách koi đang bán của một trại
func GetFishByFarm(c *gin.Context) {
	farmID := c.Param("farmId")

	cacheKey := "fish:farm:" + farmID

	var fish []models.Fish
	if err := services.GetFromRedis(config.Ctx, config.RDB, cacheKey, &fish); err != nil || len(fish) == 0 {
		if err := config.DB.Where("farm_id = ?", farmID).Order("variety ASC").Find(&fish).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RDB, cacheKey, fish, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách cá vào Redis: %v", err)
		}
	}

	response.Success(c, fish)
}

// GetFishDetail chi tiết một cá thể koi
func GetFishDetail(c *gin.Context) {
	id := c.Param("id")

	var fish models.Fish
	if err := config.DB.Preload("Farm").First(&fish, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, fish)
}

// CreateFish quản lý thêm koi vào danh mục của trại
func CreateFish(c *gin.Context) {
	var fish models.Fish
	if err := c.ShouldBindJSON(&fish); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if fish.Variety == "" || fish.FarmID == 0 {
		response.BadRequest(c, "Thiếu giống cá hoặc mã trại")
		return
	}
	if fish.Price <= 0 {
		response.BadRequest(c, "Giá phải lớn hơn 0")
		return
	}

	if err := config.DB.Create(&fish).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateFishCaches()
	response.Success(c, fish)
}

// UpdateFish quản lý sửa thông tin koi
func UpdateFish(c *gin.Context) {
	var input models.Fish
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var fish models.Fish
	if err := config.DB.First(&fish, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Variety != "" {
		fish.Variety = input.Variety
	}
	if input.Length > 0 {
		fish.Length = input.Length
	}
	if input.Weight > 0 {
		fish.Weight = input.Weight
	}
	if input.Description != "" {
		fish.Description = input.Description
	}
	if input.Avatar != "" {
		fish.Avatar = input.Avatar
	}
	if input.Price > 0 {
		fish.Price = input.Price
	}

	if err := config.DB.Save(&fish).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateFishCaches()
	response.Success(c, fish)
}

// DeleteFish gỡ koi khỏi danh mục, chỉ khi chưa nằm trong đơn nào
func DeleteFish(c *gin.Context) {
	id := c.Param("id")

	var count int64
	config.DB.Model(&models.FishOrderDetail{}).Where("fish_id = ?", id).Count(&count)
	if count > 0 {
		response.Conflict(c, "Cá đã nằm trong đơn, không thể xóa")
		return
	}

	if err := config.DB.Delete(&models.Fish{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateFishCaches()
	response.Success(c, gin.H{"deleted": id})
}

// GetFishPacksByFarm danh sách lô koi bán theo gói của một trại
func GetFishPacksByFarm(c *gin.Context) {
	farmID := c.Param("farmId")

	var packs []models.FishPack
	if err := config.DB.Where("farm_id = ?", farmID).Find(&packs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, packs)
}

// CreateFishPack quản lý thêm lô koi
func CreateFishPack(c *gin.Context) {
	var pack models.FishPack
	if err := c.ShouldBindJSON(&pack); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if pack.FarmID == 0 || pack.Quantity <= 0 || pack.Price <= 0 {
		response.BadRequest(c, "Thiếu mã trại, số lượng hoặc giá")
		return
	}

	if err := config.DB.Create(&pack).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateFishCaches()
	response.Success(c, pack)
}

func invalidateFishCaches() {
	if config.RDB == nil {
		return
	}
	if err := services.InvalidateByPattern(config.Ctx, config.RDB, "fish:*"); err != nil {
		log.Printf("Lỗi khi xóa cache cá: %v", err)
	}
}
