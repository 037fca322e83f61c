package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameGormRepository struct {
	db *gorm.DB
}

// DI
func NewGameGormRepository(db *gorm.DB) *GameGormRepository {
	return &GameGormRepository{db: db}
}

// IDでゲームを取得
func (r *GameGormRepository) FindByID(ctx context.Context, id string) (model.Game, error) {
	var g model.Game
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Game{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Game{}, err
	}
	return g, nil
}

// 購入可能（is_available=true）なゲームだけを返す。
func (r *GameGormRepository) ListAvailable(ctx context.Context, q repo.GameListQuery) ([]model.Game, error) {
	tx := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("is_available = ?", true)

	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	// nameの部分一致。SQLiteのLIKEはASCIIに対してcase-insensitive。
	// 大文字混じりの検索語にも効くようlower同士で比べる。
	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(q.Q)) + "%"
		tx = tx.Where("lower(name) LIKE ?", like)
	}

	var games []model.Game
	if err := tx.Order("created_at asc").Order("id asc").Find(&games).Error; err != nil {
		return []model.Game{}, err
	}
	return games, nil
}

// ゲームの作成
func (r *GameGormRepository) Create(ctx context.Context, g model.Game) error {
	return r.db.WithContext(ctx).Create(&g).Error
}

// 一括投入。同じidは全カラム上書き（REPLACE相当）。
func (r *GameGormRepository) CreateBatch(ctx context.Context, games []model.Game) error {
	if len(games) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&games).Error
}

// ゲームの更新
func (r *GameGormRepository) Update(ctx context.Context, g model.Game) error {
	res := r.db.WithContext(ctx).
		Model(&model.Game{}).
		Where("id = ?", g.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(g)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ゲームの削除。cart_items / order_items はFKでCASCADE削除される。
// CASCADEで明細が消えたカートは集計値を同じトランザクションで引き直す。
func (r *GameGormRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cartIDs []string
		err := tx.Model(&model.CartItem{}).
			Where("game_id = ?", id).
			Distinct().
			Pluck("cart_id", &cartIDs).Error
		if err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&model.Game{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		for _, cartID := range cartIDs {
			if err := recomputeTotals(tx, cartID); err != nil {
				return err
			}
		}
		return nil
	})
}
