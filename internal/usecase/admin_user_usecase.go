package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 外部APIから取得するテストユーザー
type SeedUser struct {
	Email      string
	Name       string
	Phone      string
	Password   string
	PictureURI string
}

// テストユーザーの取得元の約束
type SeedUserSource interface {
	Fetch(ctx context.Context, count int) ([]SeedUser, error)
}

type AdminUserUsecase struct {
	users  repo.UserRepository
	source SeedUserSource
}

func NewAdminUserUsecase(users repo.UserRepository, source SeedUserSource) *AdminUserUsecase {
	return &AdminUserUsecase{
		users:  users,
		source: source,
	}
}

type SetAdminInput struct {
	IsAdmin bool `json:"is_admin"`
}

type SeedUsersInput struct {
	Count int `json:"count"`
}

type SeedUsersResponse struct {
	Requested int `json:"requested"`
	Created   int `json:"created"`
	Skipped   int `json:"skipped"`
}

func (u *AdminUserUsecase) ListUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toUserDTOs(users), nil
}

func (u *AdminUserUsecase) ListAdmins(ctx context.Context) ([]UserDTO, error) {
	users, err := u.users.ListAdmins(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toUserDTOs(users), nil
}

// 管理者権限の付与・剥奪。自分自身の剥奪はhandler側で弾く。
func (u *AdminUserUsecase) SetAdmin(ctx context.Context, email string, in SetAdminInput) (*UserDTO, error) {
	if strings.TrimSpace(email) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	err := u.users.SetAdmin(ctx, email, in.IsAdmin)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	dto := toUserDTO(user)
	return &dto, nil
}

func (u *AdminUserUsecase) DeleteUser(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	err := u.users.DeleteByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// SeedUsers は外部APIからテストユーザーを取り込む。
// 既存emailとの重複は作成失敗にせずスキップ。
func (u *AdminUserUsecase) SeedUsers(ctx context.Context, in SeedUsersInput) (*SeedUsersResponse, error) {
	count := in.Count
	if count <= 0 {
		count = 5
	}
	if count > 50 {
		return nil, NewHTTPError(http.StatusBadRequest, "count too large")
	}

	seeds, err := u.source.Fetch(ctx, count)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadGateway, "seed source unavailable")
	}

	resp := &SeedUsersResponse{Requested: count}
	for _, s := range seeds {
		email := strings.TrimSpace(strings.ToLower(s.Email))
		if email == "" {
			resp.Skipped++
			continue
		}

		existing, err := u.users.FindByEmail(ctx, email)
		if err != nil {
			return resp, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if existing != nil {
			resp.Skipped++
			continue
		}

		pwHash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			resp.Skipped++
			continue
		}

		user := &model.User{
			Email:        email,
			PasswordHash: string(pwHash),
			Name:         s.Name,
			Phone:        s.Phone,
		}
		if s.PictureURI != "" {
			uri := s.PictureURI
			user.ProfilePictureURI = &uri
		}

		if err := u.users.Create(ctx, user); err != nil {
			resp.Skipped++
			continue
		}
		resp.Created++
	}

	return resp, nil
}

func toUserDTOs(users []model.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, toUserDTO(&users[i]))
	}
	return dtos
}
