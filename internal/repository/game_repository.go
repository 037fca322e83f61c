package repository

import (
	"context"
	"errors"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type GameListQuery struct {
	Category string
	Q        string
}

// カタログの永続化（保存・取得）だけを約束。
type GameRepository interface {
	FindByID(ctx context.Context, id string) (model.Game, error)
	// isAvailable=true のみ。Qはnameの部分一致（大文字小文字なし）
	ListAvailable(ctx context.Context, q GameListQuery) ([]model.Game, error)

	Create(ctx context.Context, g model.Game) error
	// 同じidは上書き（REPLACE）
	CreateBatch(ctx context.Context, games []model.Game) error
	Update(ctx context.Context, g model.Game) error
	DeleteByID(ctx context.Context, id string) error
}
