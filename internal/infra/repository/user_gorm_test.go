package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_DuplicateEmail(t *testing.T) {
	gormDB := newTestDB(t)
	users := NewUserGormRepository(gormDB)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &model.User{
		Email: "alice@example.com", PasswordHash: "h1", Name: "Alice",
	}))

	//emailはPKなので2回目はErrDuplicate
	err := users.Create(ctx, &model.User{
		Email: "alice@example.com", PasswordHash: "h2", Name: "Alice",
	})
	assert.True(t, errors.Is(err, repo.ErrDuplicate))
}
