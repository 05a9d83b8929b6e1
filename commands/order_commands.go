package commands

import (
	"koi/models"

	"gorm.io/gorm"
)

// OrderCommand định nghĩa interface cho các command trên đơn cá
type OrderCommand interface {
	Execute() error
}

// CreateFishOrderCommand command để tạo đơn mới
type CreateFishOrderCommand struct {
	order *models.FishOrder
	db    *gorm.DB
}

func NewCreateFishOrderCommand(order *models.FishOrder, db *gorm.DB) *CreateFishOrderCommand {
	return &CreateFishOrderCommand{
		order: order,
		db:    db,
	}
}

func (c *CreateFishOrderCommand) Execute() error {
	return c.db.Create(c.order).Error
}

// UpdateFishOrderCommand command để cập nhật đơn
type UpdateFishOrderCommand struct {
	order *models.FishOrder
	db    *gorm.DB
}

func NewUpdateFishOrderCommand(order *models.FishOrder, db *gorm.DB) *UpdateFishOrderCommand {
	return &UpdateFishOrderCommand{
		order: order,
		db:    db,
	}
}

func (c *UpdateFishOrderCommand) Execute() error {
	return c.db.Save(c.order).Error
}

// DeleteFishOrderCommand command để xóa đơn còn ở Pending
type DeleteFishOrderCommand struct {
	orderID string
	db      *gorm.DB
}

func NewDeleteFishOrderCommand(orderID string, db *gorm.DB) *DeleteFishOrderCommand {
	return &DeleteFishOrderCommand{
		orderID: orderID,
		db:      db,
	}
}

func (c *DeleteFishOrderCommand) Execute() error {
	return c.db.Where("id = ? AND status = ?", c.orderID, models.OrderStatusPending).
		Delete(&models.FishOrder{}).Error
}
