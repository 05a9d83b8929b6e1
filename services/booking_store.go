package services

import (
	"errors"
	"fmt"

	apperrors "koi/errors"
	"koi/models"

	"gorm.io/gorm"
)

// GormBookingStore hiện thực BookingStore trên Postgres
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.
		Preload("Customer").
		Preload("Trip").
		Preload("Trip.TripDestinations", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_destinations.visit_order ASC")
		}).
		Preload("Trip.TripDestinations.Farm").
		Preload("SaleStaff").
		Preload("ConsultingStaff").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound,
				fmt.Sprintf("không tìm thấy booking %s", id), apperrors.ErrBookingNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn booking", err)
	}
	return &booking, nil
}

func (s *GormBookingStore) UpdateStatus(id string, status string) (*models.Booking, error) {
	if err := s.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi cập nhật trạng thái booking", err)
	}
	return s.GetByID(id)
}

// ListByCustomer danh sách booking của một khách, mới nhất trước
func (s *GormBookingStore) ListByCustomer(customerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Preload("Trip").
		Preload("SaleStaff").
		Preload("ConsultingStaff").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn booking theo khách", err)
	}
	return bookings, nil
}

// GormFishOrderStore hiện thực FishOrderStore trên Postgres
type GormFishOrderStore struct {
	db *gorm.DB
}

func NewGormFishOrderStore(db *gorm.DB) *GormFishOrderStore {
	return &GormFishOrderStore{db: db}
}

func (s *GormFishOrderStore) GetByID(id string) (*models.FishOrder, error) {
	var order models.FishOrder
	err := s.db.
		Preload("Farm").
		Preload("FishOrderDetails").
		Preload("FishOrderDetails.Fish").
		Preload("FishPackOrderDetails").
		Preload("FishPackOrderDetails.FishPack").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound,
				fmt.Sprintf("không tìm thấy đơn %s", id), apperrors.ErrOrderNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn đơn cá", err)
	}
	return &order, nil
}

// GetByBookingAndFarm tìm đơn theo cặp booking + trại, khóa tự nhiên của route cập nhật
func (s *GormFishOrderStore) GetByBookingAndFarm(bookingID string, farmID uint) (*models.FishOrder, error) {
	var order models.FishOrder
	err := s.db.
		Where("booking_id = ? AND farm_id = ?", bookingID, farmID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound,
				fmt.Sprintf("không tìm thấy đơn của booking %s tại trại %d", bookingID, farmID), apperrors.ErrOrderNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn đơn cá", err)
	}
	return &order, nil
}

func (s *GormFishOrderStore) UpdateStatus(id string, status string) (*models.FishOrder, error) {
	if err := s.db.Model(&models.FishOrder{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi cập nhật trạng thái đơn", err)
	}
	return s.GetByID(id)
}

func (s *GormFishOrderStore) UpdatePayment(id string, status string, paymentStatus string) (*models.FishOrder, error) {
	updates := map[string]interface{}{
		"status":         status,
		"payment_status": paymentStatus,
	}
	if err := s.db.Model(&models.FishOrder{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi cập nhật thanh toán đơn", err)
	}
	return s.GetByID(id)
}

// MarkRefunded đánh dấu đơn đã hoàn tiền sau khi cổng thanh toán xác nhận
func (s *GormFishOrderStore) MarkRefunded(id string) (*models.FishOrder, error) {
	if err := s.db.Model(&models.FishOrder{}).Where("id = ?", id).Update("refunded", true).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi đánh dấu hoàn tiền", err)
	}
	return s.GetByID(id)
}

// ListByCustomer danh sách đơn cá của một khách qua các booking của họ
func (s *GormFishOrderStore) ListByCustomer(customerID uint) ([]models.FishOrder, error) {
	var orders []models.FishOrder
	err := s.db.
		Preload("Farm").
		Preload("FishOrderDetails").
		Preload("FishOrderDetails.Fish").
		Preload("FishPackOrderDetails").
		Preload("FishPackOrderDetails.FishPack").
		Where("booking_id IN (?)",
			s.db.Model(&models.Booking{}).Select("id").Where("customer_id = ?", customerID)).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn đơn cá theo khách", err)
	}
	return orders, nil
}
