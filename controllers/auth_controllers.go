package controllers

import (
	"strings"

	"koi/dto"
	"koi/models"
	"koi/response"
	"koi/services"

	"github.com/gin-gonic/gin"
)

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		Avatar:      user.Avatar,
		Role:        user.Role,
		Status:      user.Status,
	}
}

// Login đăng nhập bằng email và mật khẩu, trả về access token
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Thiếu email hoặc mật khẩu")
		return
	}

	user, err := services.GetUserByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := services.CheckPassword(user, req.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, 60*24)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AuthResponse{
		AccessToken: token,
		User:        convertToUserResponse(user),
	})
}

// RegisterUser đăng ký tài khoản khách hàng mới
func RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	created, err := services.CreateUser(user)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, convertToUserResponse(created))
}
