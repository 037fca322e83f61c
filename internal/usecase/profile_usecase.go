package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"
)

type ProfileUsecase struct {
	users repo.UserRepository
}

func NewProfileUsecase(users repo.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{users: users}
}

type UpdateProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}

type UpdateProfilePictureInput struct {
	URI *string `json:"uri"`
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, email string) (*UserDTO, error) {
	if email == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

func (u *ProfileUsecase) UpdateProfile(ctx context.Context, email string, in UpdateProfileInput) (*UserDTO, error) {
	if email == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "name required")
	}

	err := u.users.UpdateProfile(ctx, email, strings.TrimSpace(in.Name), strings.TrimSpace(in.Phone), in.Bio)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetProfile(ctx, email)
}

// アバター画像の差し替え。nilで未設定に戻す。
func (u *ProfileUsecase) UpdateProfilePicture(ctx context.Context, email string, in UpdateProfilePictureInput) (*UserDTO, error) {
	if email == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	err := u.users.UpdateProfilePicture(ctx, email, in.URI)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetProfile(ctx, email)
}
