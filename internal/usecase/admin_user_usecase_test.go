package usecase

import (
	"context"
	"net/http"
	"testing"

	infraRepo "github.com/qosme/appGameZone-010V-Grupo3/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeedSource struct {
	seeds []SeedUser
	err   error
}

func (s *fakeSeedSource) Fetch(ctx context.Context, count int) ([]SeedUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	if count > len(s.seeds) {
		count = len(s.seeds)
	}
	return s.seeds[:count], nil
}

func TestSeedUsers_SkipsExisting(t *testing.T) {
	gormDB := newCheckoutTestDB(t)
	ctx := context.Background()

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	source := &fakeSeedSource{seeds: []SeedUser{
		{Email: "seed1@example.com", Name: "Seed One", Password: "generated-pass", PictureURI: "https://example.com/p1.jpg"},
		{Email: "seed2@example.com", Name: "Seed Two", Password: "generated-pass"},
	}}
	uc := NewAdminUserUsecase(userRepo, source)

	out, err := uc.SeedUsers(ctx, SeedUsersInput{Count: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Created)
	assert.Equal(t, 0, out.Skipped)

	//同じ取り込みをもう一度流しても重複は作らない
	out, err = uc.SeedUsers(ctx, SeedUsersInput{Count: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Created)
	assert.Equal(t, 2, out.Skipped)

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	//取り込んだユーザーは管理者ではない
	admins, err := uc.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 0)
}

func TestSeedUsers_SourceUnavailable(t *testing.T) {
	gormDB := newCheckoutTestDB(t)

	uc := NewAdminUserUsecase(
		infraRepo.NewUserGormRepository(gormDB),
		&fakeSeedSource{err: context.DeadlineExceeded},
	)

	_, err := uc.SeedUsers(context.Background(), SeedUsersInput{Count: 2})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, he.Status)
}

func TestSetAdminAndDelete(t *testing.T) {
	gormDB := newCheckoutTestDB(t)
	ctx := context.Background()

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	uc := NewAdminUserUsecase(userRepo, &fakeSeedSource{seeds: []SeedUser{
		{Email: "seed1@example.com", Name: "Seed One", Password: "generated-pass"},
	}})

	_, err := uc.SeedUsers(ctx, SeedUsersInput{Count: 1})
	require.NoError(t, err)

	out, err := uc.SetAdmin(ctx, "seed1@example.com", SetAdminInput{IsAdmin: true})
	require.NoError(t, err)
	assert.True(t, out.IsAdmin)

	admins, err := uc.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	_, err = uc.SetAdmin(ctx, "ghost@example.com", SetAdminInput{IsAdmin: true})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)

	require.NoError(t, uc.DeleteUser(ctx, "seed1@example.com"))
	err = uc.DeleteUser(ctx, "seed1@example.com")
	he, ok = AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
