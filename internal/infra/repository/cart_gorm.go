package repository

import (
	"context"
	"errors"
	"time"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートidはユーザーから決定的に作る（1ユーザー1カート）
func CartIDForUser(userID string) string {
	return "cart_" + userID
}

// ユーザーのカートを取得し、無ければ作成
func (r *CartGormRepository) GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error) {
	var cart model.Cart

	//トランザクションで探す→無ければ作る
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Where("user_id = ?", userID).
			First(&cart).Error

		if findErr == nil {
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無ければ作る。idが決定的なので二重作成は一意制約で弾かれる。
		now := time.Now()
		newCart := model.Cart{
			ID:        CartIDForUser(userID),
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := tx.Create(&newCart).Error; err != nil {
			retryErr := tx.
				Where("user_id = ?", userID).
				First(&cart).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		cart = newCart
		return nil
	})

	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// ユーザーのカートを取得
func (r *CartGormRepository) FindByUserID(ctx context.Context, userID string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// idでカートを取得
func (r *CartGormRepository) FindByID(ctx context.Context, cartID string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("id = ?", cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 指定カートの明細を全削除して集計値をゼロに戻す（カート行は残す）
func (r *CartGormRepository) Clear(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart model.Cart
		if err := tx.Where("id = ?", cartID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		return recomputeTotals(tx, cartID)
	})
}

// 集計値の再計算。構造を変えた書き込みと同じtxの中で必ず呼ぶ。
// item_count = Σ quantity, total_amount = Σ price×quantity
func recomputeTotals(tx *gorm.DB, cartID string) error {
	var agg struct {
		ItemCount   int
		TotalAmount float64
	}

	err := tx.
		Table("cart_items").
		Select("coalesce(sum(quantity), 0) as item_count, coalesce(sum(price * quantity), 0) as total_amount").
		Where("cart_id = ?", cartID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return tx.Model(&model.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"item_count":   agg.ItemCount,
			"total_amount": agg.TotalAmount,
			"updated_at":   time.Now(),
		}).Error
}
