package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/validator"

	"golang.org/x/crypto/bcrypt"
)

// access tokenを発行する約束（JWTの詳細はmainに寄せる）
type AccessTokenIssuer interface {
	Issue(email string, isAdmin bool) (token string, expiresIn int, err error)
}

// 入力検証はvalidatorに寄せる
type AuthValidator interface {
	ValidateRegister(ctx context.Context, email string, password string, name string) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type AuthUsecase struct {
	users     repo.UserRepository
	validator AuthValidator
	issuer    AccessTokenIssuer
}

func NewAuthUsecase(users repo.UserRepository, v AuthValidator, issuer AccessTokenIssuer) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		validator: v,
		issuer:    issuer,
	}
}

type AuthRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type UserDTO struct {
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	ProfilePictureURI *string `json:"profile_picture_uri"`
	IsAdmin           bool    `json:"is_admin"`
	Bio               string  `json:"bio"`
}

type AuthRegisterResponse struct {
	User UserDTO `json:"user"`
}

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthLoginResponse struct {
	User  UserDTO  `json:"user"`
	Token TokenDTO `json:"token"`
}

func (u *AuthUsecase) Register(ctx context.Context, req AuthRegisterRequest) (*AuthRegisterResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, email, req.Password, req.Name); err != nil {
		return nil, httpErrorFromValidation(err)
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	//最初の登録ユーザーだけ管理者になる
	count, err := u.users.Count(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(pwHash),
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		IsAdmin:      count == 0,
	}

	//重複チェックとCreateの間に同じemailが先に入り込む余地はあるので、
	//unique違反だけを409にして、それ以外の保存失敗は500で返す。
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, NewHTTPError(http.StatusConflict, "email already registered")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return &AuthRegisterResponse{
		User: toUserDTO(user),
	}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, req AuthLoginRequest) (*AuthLoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if err := u.validator.ValidateLogin(ctx, email, req.Password); err != nil {
		return nil, httpErrorFromValidation(err)
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	// 未登録か照合失敗かは区別させない
	if user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, expiresIn, err := u.issuer.Issue(user.Email, user.IsAdmin)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return &AuthLoginResponse{
		User: toUserDTO(user),
		Token: TokenDTO{
			AccessToken: token,
			ExpiresIn:   expiresIn,
		},
	}, nil
}

// validatorのエラーをAPIのエラー表現に読み替える。
// 見知らぬエラーは重複チェック時のDB失敗なので500扱い。
func httpErrorFromValidation(err error) error {
	switch {
	case errors.Is(err, validator.ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, "invalid email")
	case errors.Is(err, validator.ErrPasswordTooShort):
		return NewHTTPError(http.StatusBadRequest, "password too short")
	case errors.Is(err, validator.ErrNameRequired):
		return NewHTTPError(http.StatusBadRequest, "name required")
	case errors.Is(err, validator.ErrEmailAlreadyUsed):
		return NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, validator.ErrMissingCredentials):
		return NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	return NewHTTPError(http.StatusInternalServerError, "db error")
}

// model.UserをAPI返却用DTOに変換。
func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		Email:             u.Email,
		Name:              u.Name,
		Phone:             u.Phone,
		ProfilePictureURI: u.ProfilePictureURI,
		IsAdmin:           u.IsAdmin,
		Bio:               u.Bio,
	}
}
