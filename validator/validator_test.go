package validator

import (
	"testing"

	"koi/dto"
	"koi/errors"
	"koi/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateUser(t *testing.T) {
	user := &models.User{Email: "khach@example.com", Password: "secret", PhoneNumber: "0912345678"}
	assert.NoError(t, ValidateUser(user))

	user.Email = "khong-phai-email"
	err := ValidateUser(user)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEmail))

	user.Email = ""
	err = ValidateUser(user)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

	user = &models.User{Email: "khach@example.com", Password: "secret", PhoneNumber: "12345"}
	err = ValidateUser(user)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPhone))
}

func TestValidateQuoteRequest(t *testing.T) {
	valid := &dto.CreateQuoteRequest{
		BookingID: "BO0001",
		StartDate: "10/10/2026",
		EndDate:   "15/10/2026",
		Price:     52_000_000,
		Destinations: []dto.TripDestinationRequest{
			{FarmID: 1, VisitOrder: 1},
			{FarmID: 2, VisitOrder: 2},
		},
	}
	assert.NoError(t, ValidateQuoteRequest(valid))

	bad := *valid
	bad.StartDate = "2026-10-10"
	assert.True(t, errors.HasCode(ValidateQuoteRequest(&bad), errors.ErrCodeInvalidFormat))

	bad = *valid
	bad.EndDate = "09/10/2026"
	assert.True(t, errors.HasCode(ValidateQuoteRequest(&bad), errors.ErrCodeValidation))

	// Price = 0 vướng tag required trước khi tới kiểm tra số tiền
	bad = *valid
	bad.Price = 0
	assert.True(t, errors.HasCode(ValidateQuoteRequest(&bad), errors.ErrCodeValidation))

	bad = *valid
	bad.Price = -5
	assert.True(t, errors.HasCode(ValidateQuoteRequest(&bad), errors.ErrCodeInvalidAmount))

	bad = *valid
	bad.Destinations = nil
	assert.True(t, errors.HasCode(ValidateQuoteRequest(&bad), errors.ErrCodeRequiredField))

	// Tag required không tự lặn vào phần tử slice, kiểm tra tay bắt được
	bad = *valid
	bad.Destinations = []dto.TripDestinationRequest{{FarmID: 0}}
	assert.True(t, errors.HasCode(ValidateQuoteRequest(&bad), errors.ErrCodeRequiredField))
}

func TestValidateFishOrderRequest(t *testing.T) {
	valid := &dto.CreateFishOrderRequest{
		BookingID: "BO0001",
		FarmID:    1,
		FishOrderDetails: []dto.CreateFishOrderDetail{
			{FishID: 1, Price: 25_000_000},
		},
	}
	assert.NoError(t, ValidateFishOrderRequest(valid))

	empty := &dto.CreateFishOrderRequest{BookingID: "BO0001", FarmID: 1}
	assert.True(t, errors.HasCode(ValidateFishOrderRequest(empty), errors.ErrCodeRequiredField))

	bad := &dto.CreateFishOrderRequest{
		BookingID:        "BO0001",
		FarmID:           1,
		FishOrderDetails: []dto.CreateFishOrderDetail{{FishID: 1, Price: 0}},
	}
	assert.True(t, errors.HasCode(ValidateFishOrderRequest(bad), errors.ErrCodeInvalidAmount))

	badPack := &dto.CreateFishOrderRequest{
		BookingID:            "BO0001",
		FarmID:               1,
		FishPackOrderDetails: []dto.CreateFishPackOrderDetail{{FishPackID: 1, Price: -5}},
	}
	assert.True(t, errors.HasCode(ValidateFishOrderRequest(badPack), errors.ErrCodeInvalidAmount))
}
