package model

import "time"

// カートの明細
// priceは追加時点のスナップショット。カタログ側の変更に追従しない。
// (cart_id, game_id) は一意。同じゲームの追加は数量加算になる。
type CartItem struct {
	ID       string    `gorm:"primaryKey;size:64" json:"id"`
	CartID   string    `gorm:"not null;size:320;uniqueIndex:uq_cart_items_cart_game" json:"cart_id"`
	GameID   string    `gorm:"not null;size:64;uniqueIndex:uq_cart_items_cart_game" json:"game_id"`
	Quantity int       `gorm:"not null;default:1" json:"quantity"`
	Price    float64   `gorm:"not null" json:"price"`
	AddedAt  time.Time `gorm:"not null;autoCreateTime" json:"added_at"`

	Cart Cart `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"-"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
}
