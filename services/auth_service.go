package services

import (
	"errors"
	"time"

	"koi/config"
	"koi/constants"
	"koi/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var secretKey = []byte("8Xuii3dvd0AXbeRMPPbDD3IKG2s9bOdm")

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken tạo access token chứa userID và role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

// CreateUser đăng ký tài khoản khách mới, mật khẩu băm bằng bcrypt
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return models.User{}, errors.New("không được để trống email, password, phone")
	}

	if _, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, errors.New("email đã được sử dụng")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	input.Password = string(hashed)
	input.Role = constants.RoleCustomer
	input.Status = constants.UserStatusActive

	if err := config.DB.Create(&input).Error; err != nil {
		return models.User{}, err
	}
	return input, nil
}

// CheckPassword so khớp mật khẩu với bản băm trong DB
func CheckPassword(user models.User, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
}
