package model

import "time"

// 1ユーザーにつきカートは1つ。idは cart_<email> で決定的に作る。
// total_amount / item_count は明細の集計値（書き込み側が毎回再計算する）。
type Cart struct {
	ID          string    `gorm:"primaryKey;size:320" json:"id"`
	UserID      string    `gorm:"not null;uniqueIndex;size:320" json:"user_id"`
	TotalAmount float64   `gorm:"not null;default:0" json:"total_amount"`
	ItemCount   int       `gorm:"not null;default:0" json:"item_count"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
