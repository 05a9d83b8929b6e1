package services

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"koi/constants"
	"koi/models"
	"koi/services/logger"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

const DefaultTimezone = "Asia/Ho_Chi_Minh"

// QuoteSweeper quét các báo giá đã duyệt nhưng khách để quá hạn không thanh toán
type QuoteSweeper struct {
	db     *gorm.DB
	logger logger.Logger
}

type QuoteSweeperOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewQuoteSweeper(opts QuoteSweeperOptions) *QuoteSweeper {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel).WithTag("quote-sweep")
	}
	return &QuoteSweeper{
		db:     opts.DB,
		logger: l,
	}
}

// findStaleQuotes lấy các booking còn treo ở Approved Quote quá số ngày cho phép
func (s *QuoteSweeper) findStaleQuotes() ([]models.Booking, error) {
	var bookings []models.Booking

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi tải múi giờ: %w", err)
	}

	cutoff := time.Now().In(loc).AddDate(0, 0, -constants.QuoteValidityDays)

	err = s.db.Where("status = ? AND quoted_at IS NOT NULL AND quoted_at < ?",
		models.BookingStatusApprovedQuote, cutoff).Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("lỗi khi truy vấn báo giá quá hạn: %w", err)
	}

	return bookings, nil
}

// ExpireStaleQuotes hủy các booking quá hạn và báo cho dashboard qua websocket
func (s *QuoteSweeper) ExpireStaleQuotes(m *melody.Melody) (int, error) {
	bookings, err := s.findStaleQuotes()
	if err != nil {
		s.logger.Error("lỗi lấy báo giá quá hạn: %v", err)
		return 0, err
	}

	if len(bookings) == 0 {
		s.logger.Info("không có báo giá nào quá hạn hôm nay")
		return 0, nil
	}

	tx := s.db.Begin()

	for _, booking := range bookings {
		if err := tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Update("status", models.BookingStatusCanceled).Error; err != nil {
			tx.Rollback()
			s.logger.Error("lỗi hủy booking %s: %v", booking.ID, err)
			return 0, err
		}
		s.logger.Info("đã hủy booking %s, báo giá duyệt từ %v", booking.ID, booking.QuotedAt)

		//thông báo
		if m != nil {
			message := fmt.Sprintf("🔔 Booking %s: báo giá quá hạn, đã tự động hủy.", booking.ID)
			m.Broadcast([]byte(message))
		}
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	return len(bookings), nil
}
