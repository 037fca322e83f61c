package validator

import (
	"context"
	"testing"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FindByEmailだけ差し替えるスタブ。他のメソッドは呼ばれない前提。
type usersStub struct {
	repository.UserRepository
	byEmail map[string]*model.User
}

func (s *usersStub) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.byEmail[email], nil
}

func TestValidateRegister(t *testing.T) {
	v := NewAuthValidator(&usersStub{byEmail: map[string]*model.User{
		"taken@example.com": {Email: "taken@example.com"},
	}})
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
		person   string
		want     error
	}{
		{"ok", "alice@example.com", "secret-pass", "Alice", nil},
		{"bad email", "not-an-email", "secret-pass", "Alice", ErrInvalidEmail},
		{"short password", "alice@example.com", "short", "Alice", ErrPasswordTooShort},
		{"missing name", "alice@example.com", "secret-pass", "  ", ErrNameRequired},
		{"email taken", "taken@example.com", "secret-pass", "Alice", ErrEmailAlreadyUsed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateRegister(ctx, tc.email, tc.password, tc.person)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	v := NewAuthValidator(&usersStub{})
	ctx := context.Background()

	require.NoError(t, v.ValidateLogin(ctx, "alice@example.com", "secret-pass"))
	assert.ErrorIs(t, v.ValidateLogin(ctx, "  ", "secret-pass"), ErrMissingCredentials)
	assert.ErrorIs(t, v.ValidateLogin(ctx, "alice@example.com", ""), ErrMissingCredentials)
}
