package validator

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/repository"
)

var (
	// email形式が不正
	ErrInvalidEmail = errors.New("invalid email")

	// パスワードが短すぎる
	ErrPasswordTooShort = errors.New("password too short")

	// 表示名が空
	ErrNameRequired = errors.New("name required")

	// emailが既に使用済み
	ErrEmailAlreadyUsed = errors.New("email already used")

	// email/passwordのどちらかが空
	ErrMissingCredentials = errors.New("missing credentials")
)

// パスワード最低文字数（MVP: 8）
const minPasswordLen = 8

type AuthValidator struct {
	users repository.UserRepository
}

// DI
// usecaseにはinterfaceで注入します。
func NewAuthValidator(users repository.UserRepository) *AuthValidator {
	return &AuthValidator{users: users}
}

// サインアップの入力を検証。emailは呼び出し側で正規化済みの前提。
func (v *AuthValidator) ValidateRegister(ctx context.Context, email string, password string, name string) error {
	// email形式
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}

	// email重複チェック（DBが必要）
	existing, err := v.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyUsed
	}

	return nil
}

// ログインの入力を検証
func (v *AuthValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingCredentials
	}
	return nil
}
