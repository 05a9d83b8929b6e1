package controllers

import (
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
	"github.com/lib/pq"
)

// GetUsers danh sách tài khoản cho trang quản trị, lọc theo vai trò và tên
func GetUsers(c *gin.Context) {
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

	cacheKey := "users:all"

	var allUsers []models.User
	if err := services.GetFromRedis(config.Ctx, config.RDB, cacheKey, &allUsers); err != nil || len(allUsers) == 0 {
		if err := config.DB.Order("created_at DESC").Find(&allUsers).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RDB, cacheKey, allUsers, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách người dùng vào Redis: %v", err)
		}
	}

	roleFilter := c.Query("role")
	nameFilter := strings.ToLower(strings.TrimSpace(c.Query("name")))

	filtered := make([]models.User, 0, len(allUsers))
	for _, user := range allUsers {
		if roleFilter != "" {
			role, err := strconv.Atoi(roleFilter)
			if err != nil || user.Role != role {
				continue
			}
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(user.Name), nameFilter) {
			continue
		}
		filtered = append(filtered, user)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.User{}
	} else {
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	userResponses := make([]dto.UserResponse, 0, len(filtered))
	for _, user := range filtered {
		userResponses = append(userResponses, convertToUserResponse(user))
	}

	response.SuccessWithPagination(c, userResponses, page, limit, total)
}

// GetUserByID chi tiết một tài khoản
func GetUserByID(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// GetProfile thông tin của chính người gọi, lấy từ token
func GetProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// UpdateUser sửa hồ sơ; farm_ids chỉ có nghĩa với nhân viên tư vấn
func UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.FarmIDs != nil {
		user.FarmIDs = pq.Int64Array(req.FarmIDs)
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateUserCaches()
	response.Success(c, convertToUserResponse(user))
}

// ChangeUserStatus khóa hoặc mở khóa tài khoản
func ChangeUserStatus(c *gin.Context) {
	var req dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Status = req.Status
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateUserCaches()
	response.Success(c, convertToUserResponse(user))
}

func invalidateUserCaches() {
	if config.RDB == nil {
		return
	}
	if err := services.InvalidateByPattern(config.Ctx, config.RDB, "users:*"); err != nil {
		log.Printf("Lỗi khi xóa cache người dùng: %v", err)
	}
}
