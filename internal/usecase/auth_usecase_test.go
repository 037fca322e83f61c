package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// Mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ListAll(ctx context.Context) ([]model.User, error) {
	panic("not used in AuthUsecase tests")
}

func (m *UserRepoMock) ListAdmins(ctx context.Context) ([]model.User, error) {
	panic("not used in AuthUsecase tests")
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	panic("not used in AuthUsecase tests")
}

func (m *UserRepoMock) UpdateProfile(ctx context.Context, email string, name string, phone string, bio string) error {
	panic("not used in AuthUsecase tests")
}

func (m *UserRepoMock) UpdateProfilePicture(ctx context.Context, email string, uri *string) error {
	panic("not used in AuthUsecase tests")
}

func (m *UserRepoMock) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	panic("not used in AuthUsecase tests")
}

func (m *UserRepoMock) DeleteByEmail(ctx context.Context, email string) error {
	panic("not used in AuthUsecase tests")
}

func (m *UserRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type IssuerMock struct{ mock.Mock }

func (m *IssuerMock) Issue(email string, isAdmin bool) (string, int, error) {
	args := m.Called(email, isAdmin)
	return args.String(0), args.Int(1), args.Error(2)
}

// =====================
// Register
// =====================

func TestRegister_FirstUserBecomesAdmin(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewAuthUsecase(users, validator.NewAuthValidator(users), &IssuerMock{})

	users.On("FindByEmail", mock.Anything, "alice@example.com").Return((*model.User)(nil), nil)
	users.On("Count", mock.Anything).Return(int64(0), nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "alice@example.com" && u.IsAdmin
	})).Return(nil)

	out, err := uc.Register(context.Background(), AuthRegisterRequest{
		Email:    "Alice@Example.com",
		Password: "secret-pass",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.True(t, out.User.IsAdmin)
	users.AssertExpectations(t)
}

func TestRegister_SecondUserIsNotAdmin(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewAuthUsecase(users, validator.NewAuthValidator(users), &IssuerMock{})

	users.On("FindByEmail", mock.Anything, "bob@example.com").Return((*model.User)(nil), nil)
	users.On("Count", mock.Anything).Return(int64(1), nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return !u.IsAdmin
	})).Return(nil)

	out, err := uc.Register(context.Background(), AuthRegisterRequest{
		Email:    "bob@example.com",
		Password: "secret-pass",
		Name:     "Bob",
	})
	require.NoError(t, err)
	assert.False(t, out.User.IsAdmin)
}

func TestRegister_Validation(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewAuthUsecase(users, validator.NewAuthValidator(users), &IssuerMock{})

	cases := []struct {
		name string
		req  AuthRegisterRequest
	}{
		{"bad email", AuthRegisterRequest{Email: "not-an-email", Password: "secret-pass", Name: "x"}},
		{"short password", AuthRegisterRequest{Email: "a@example.com", Password: "short", Name: "x"}},
		{"missing name", AuthRegisterRequest{Email: "a@example.com", Password: "secret-pass", Name: "  "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tc.req)
			he, ok := AsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Status)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewAuthUsecase(users, validator.NewAuthValidator(users), &IssuerMock{})

	users.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(&model.User{Email: "alice@example.com"}, nil)

	_, err := uc.Register(context.Background(), AuthRegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
		Name:     "Alice",
	})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}

// 重複チェックの後、Createまでに同じemailが先に入り込んだ場合は409。
func TestRegister_CreateConflictRace(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewAuthUsecase(users, validator.NewAuthValidator(users), &IssuerMock{})

	users.On("FindByEmail", mock.Anything, "alice@example.com").Return((*model.User)(nil), nil)
	users.On("Count", mock.Anything).Return(int64(1), nil)
	users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

	_, err := uc.Register(context.Background(), AuthRegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
		Name:     "Alice",
	})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}

// 重複以外の保存失敗は409にしない
func TestRegister_CreateFailureIsNotConflict(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewAuthUsecase(users, validator.NewAuthValidator(users), &IssuerMock{})

	users.On("FindByEmail", mock.Anything, "alice@example.com").Return((*model.User)(nil), nil)
	users.On("Count", mock.Anything).Return(int64(1), nil)
	users.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk I/O error"))

	_, err := uc.Register(context.Background(), AuthRegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
		Name:     "Alice",
	})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

// =====================
// Login
// =====================

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &UserRepoMock{}
	issuer := &IssuerMock{}
	uc := NewAuthUsecase(users, validator.NewAuthValidator(users), issuer)

	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Name:         "Alice",
		IsAdmin:      true,
	}, nil)
	issuer.On("Issue", "alice@example.com", true).Return("signed-token", 900, nil)

	out, err := uc.Login(context.Background(), AuthLoginRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token.AccessToken)
	assert.Equal(t, 900, out.Token.ExpiresIn)
	assert.True(t, out.User.IsAdmin)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &UserRepoMock{}
	uc := NewAuthUsecase(users, validator.NewAuthValidator(users), &IssuerMock{})

	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err = uc.Login(context.Background(), AuthLoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewAuthUsecase(users, validator.NewAuthValidator(users), &IssuerMock{})

	users.On("FindByEmail", mock.Anything, "ghost@example.com").Return((*model.User)(nil), nil)

	_, err := uc.Login(context.Background(), AuthLoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-pass",
	})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}
