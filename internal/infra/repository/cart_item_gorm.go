package repository

import (
	"context"
	"errors"
	"time"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"

	"gorm.io/gorm"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// カート内の明細一覧（追加順）
func (r *CartItemGormRepository) ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error) {
	var items []model.CartItem

	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("added_at asc").
		Find(&items).Error

	if err != nil {
		return nil, err
	}
	return items, nil
}

// ゲーム名と画像付きで明細一覧を取得（表示用）
func (r *CartItemGormRepository) ListWithGameInfo(ctx context.Context, cartID string) ([]repo.CartItemWithGame, error) {
	var rows []repo.CartItemWithGame

	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.*, games.name as game_name, games.image_ref as game_image_ref").
		Joins("join games on games.id = cart_items.game_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.added_at asc").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// idで明細を取得
func (r *CartItemGormRepository) FindByID(ctx context.Context, itemID string) (model.CartItem, error) {
	var item model.CartItem

	err := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 追加。同じゲームが既にあれば数量+1（単価は追加時のスナップショットを維持）。
func (r *CartItemGormRepository) Upsert(ctx context.Context, cartID string, gameID string, unitPrice float64, newItemID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CartItem
		findErr := tx.
			Where("cart_id = ? AND game_id = ?", cartID, gameID).
			First(&existing).Error

		if findErr == nil {
			if err := tx.Model(&model.CartItem{}).
				Where("id = ?", existing.ID).
				Update("quantity", existing.Quantity+1).Error; err != nil {
				return err
			}
			return recomputeTotals(tx, cartID)
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		item := model.CartItem{
			ID:       newItemID,
			CartID:   cartID,
			GameID:   gameID,
			Quantity: 1,
			Price:    unitPrice,
			AddedAt:  time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return recomputeTotals(tx, cartID)
	})
}

// 数量変更
func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, cartItemID string, qty int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.CartItem
		err := tx.
			Where("id = ?", cartItemID).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&model.CartItem{}).
			Where("id = ?", cartItemID).
			Update("quantity", qty).Error; err != nil {
			return err
		}

		return recomputeTotals(tx, item.CartID)
	})
}

// 明細を削除
func (r *CartItemGormRepository) DeleteByID(ctx context.Context, cartItemID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.CartItem
		err := tx.
			Where("id = ?", cartItemID).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Where("id = ?", cartItemID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		return recomputeTotals(tx, item.CartID)
	})
}

// 明細が指定ユーザーのカートに属するか
func (r *CartItemGormRepository) IsOwnedByUser(ctx context.Context, itemID, userID string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Table("cart_items").
		Joins("join carts on carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}
