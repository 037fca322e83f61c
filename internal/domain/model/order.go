package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 注文ステータスとして受け付ける値か
func IsValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// チェックアウト時点のカートから作る。作成後はstatus以外は不変。
// total_amountは作成時にカートの合計をコピーし、以後は再計算しない。
type Order struct {
	ID              string      `gorm:"primaryKey;size:355" json:"id"`
	UserID          string      `gorm:"not null;index;size:320" json:"user_id"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ShippingAddress string      `gorm:"type:text;not null" json:"shipping_address"`
	PaymentMethod   string      `gorm:"type:varchar(64);not null" json:"payment_method"`
	CreatedAt       time.Time   `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
