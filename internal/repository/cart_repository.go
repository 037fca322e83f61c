package repository

import (
	"context"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
)

type CartRepository interface {
	// 無ければ cart_<email> で作る。何度呼んでも同じカートを返す。
	GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error)
	FindByUserID(ctx context.Context, userID string) (model.Cart, error)
	FindByID(ctx context.Context, cartID string) (model.Cart, error)
	// 明細を全削除して集計値をゼロに戻す（カート行は残す）
	Clear(ctx context.Context, cartID string) error
}
