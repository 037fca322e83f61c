package model

// 注文の明細
// game_nameとpriceは注文時点のスナップショット。
// ゲームが後から改名・削除されても過去の注文は読めるままにする。
type OrderItem struct {
	ID       string  `gorm:"primaryKey;size:64" json:"id"`
	OrderID  string  `gorm:"not null;index;size:355" json:"order_id"`
	GameID   string  `gorm:"not null;index;size:64" json:"game_id"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
	GameName string  `gorm:"type:varchar(255);not null" json:"game_name"`

	Order Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Game  Game  `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
}
