package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// QuoteExpirer định nghĩa interface cho việc quét báo giá quá hạn
type QuoteExpirer interface {
	ExpireStaleQuotes(m *melody.Melody) (int, error)
}

var quoteExpirer QuoteExpirer

// SetQuoteExpirer thiết lập implementation cho QuoteExpirer
func SetQuoteExpirer(expirer QuoteExpirer) {
	quoteExpirer = expirer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang quét báo giá quá hạn lúc: %v", now)
		if quoteExpirer == nil {
			log.Printf("Lỗi: QuoteExpirer chưa được thiết lập")
			return
		}
		n, err := quoteExpirer.ExpireStaleQuotes(m)
		if err != nil {
			log.Printf("Lỗi khi quét báo giá quá hạn: %v", err)
			return
		}
		if n > 0 {
			log.Printf("Đã hủy %d booking có báo giá quá hạn", n)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
