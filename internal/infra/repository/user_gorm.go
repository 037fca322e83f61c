package repository

import (
	"context"
	"errors"
	"time"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	domainrepo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// Create はユーザーを新規作成。email重複は ErrDuplicate に読み替える。
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainrepo.ErrDuplicate
	}
	return err
}

// emailでユーザーを1件取得。見つからなければ (nil, nil)。
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// 全ユーザー一覧
func (r *userGormRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&users).Error; err != nil {
		return []model.User{}, err
	}
	return users, nil
}

// 管理者だけの一覧
func (r *userGormRepository) ListAdmins(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("is_admin = ?", true).
		Order("created_at asc").
		Find(&users).Error
	if err != nil {
		return []model.User{}, err
	}
	return users, nil
}

// ユーザーを更新。
func (r *userGormRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// プロフィール項目だけを更新
func (r *userGormRepository) UpdateProfile(ctx context.Context, email string, name string, phone string, bio string) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"name":       name,
			"phone":      phone,
			"bio":        bio,
			"updated_at": time.Now(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

// プロフィール画像の差し替え（nilで未設定に戻す）
func (r *userGormRepository) UpdateProfilePicture(ctx context.Context, email string, uri *string) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"profile_picture_uri": uri,
			"updated_at":          time.Now(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

// 管理者フラグの付け外し
func (r *userGormRepository) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"is_admin":   isAdmin,
			"updated_at": time.Now(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

// emailでユーザーを削除
func (r *userGormRepository) DeleteByEmail(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).Where("email = ?", email).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

// 登録ユーザー数（最初の1人を管理者にする判定に使う）
func (r *userGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
