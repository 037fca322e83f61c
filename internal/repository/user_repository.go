package repository

import (
	"context"
	"errors"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
)

// unique制約に当たったとき（email重複など）
var ErrDuplicate = errors.New("duplicate")

// 保存・取得を約束
type UserRepository interface {
	// 既に同じemailがあれば ErrDuplicate
	Create(ctx context.Context, user *model.User) error
	// 見つからなければ (nil, nil)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
	ListAdmins(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateProfile(ctx context.Context, email string, name string, phone string, bio string) error
	UpdateProfilePicture(ctx context.Context, email string, uri *string) error
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
	DeleteByEmail(ctx context.Context, email string) error
	Count(ctx context.Context) (int64, error)
}
