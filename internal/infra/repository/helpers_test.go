package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/infra/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 各テストが独立したDBファイルを使う。
// ":memory:"はコネクションごとに別DBになるので使わない。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	gormDB, err := db.Connect(path)
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(
		&model.Game{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.User{},
	))

	return gormDB
}

func seedGame(t *testing.T, gormDB *gorm.DB, id string, name string, price float64) model.Game {
	t.Helper()

	g := model.Game{
		ID:          id,
		Name:        name,
		Price:       price,
		Category:    "Acción",
		IsAvailable: true,
	}
	require.NoError(t, NewGameGormRepository(gormDB).Create(context.Background(), g))
	return g
}
