package repository

import (
	"context"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
)

// gamesとJOINした明細ビュー
type CartItemWithGame struct {
	model.CartItem
	GameName     string `json:"game_name"`
	GameImageRef string `json:"game_image_ref"`
}

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error)
	ListWithGameInfo(ctx context.Context, cartID string) ([]CartItemWithGame, error)
	FindByID(ctx context.Context, cartItemID string) (model.CartItem, error)
	// 同一ゲームは数量+1（スナップショット価格は据え置き）。
	// 新規行はnewItemIDとunitPriceで作る。実行後に集計値を再計算する。
	Upsert(ctx context.Context, cartID string, gameID string, unitPrice float64, newItemID string) error
	UpdateQuantity(ctx context.Context, cartItemID string, qty int) error
	DeleteByID(ctx context.Context, cartItemID string) error
	IsOwnedByUser(ctx context.Context, cartItemID string, userID string) (bool, error)
}
