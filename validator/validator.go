package validator

import (
	"regexp"
	"time"

	"koi/dto"
	"koi/errors"
	"koi/models"

	"github.com/go-playground/validator/v10"
)

// Dùng chung tag `binding` với gin để một bộ tag phục vụ cả hai nơi
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	return nil
}

// ValidateQuoteRequest validate báo giá nhân viên sale tạo cho booking
func ValidateQuoteRequest(req *dto.CreateQuoteRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Báo giá thiếu trường bắt buộc", err)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày bắt đầu phải theo dạng dd/MM/yyyy", err)
	}

	end, err := parseDate(req.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày kết thúc phải theo dạng dd/MM/yyyy", err)
	}

	if end.Before(start) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	if req.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá chuyến đi phải lớn hơn 0", nil)
	}

	if len(req.Destinations) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Lịch trình phải có ít nhất một trại", nil)
	}

	for _, d := range req.Destinations {
		if d.FarmID == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Điểm dừng thiếu mã trại", nil)
		}
	}

	return nil
}

// ValidateFishOrderRequest validate đơn cá nhân viên tư vấn tạo tại trại
func ValidateFishOrderRequest(req *dto.CreateFishOrderRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Đơn cá thiếu trường bắt buộc", nil)
	}

	if len(req.FishOrderDetails) == 0 && len(req.FishPackOrderDetails) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Đơn phải có ít nhất một dòng cá hoặc lô cá", nil)
	}

	for _, d := range req.FishOrderDetails {
		if d.Price <= 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá cá phải lớn hơn 0", nil)
		}
	}

	for _, d := range req.FishPackOrderDetails {
		if d.Price <= 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá lô cá phải lớn hơn 0", nil)
		}
	}

	return nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("02/01/2006", s)
}

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^0\d{9,10}$`)
	return re.MatchString(phone)
}
