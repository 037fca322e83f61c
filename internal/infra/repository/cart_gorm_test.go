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

func TestCartRepository_GetOrCreateIsIdempotent(t *testing.T) {
	gormDB := newTestDB(t)
	r := NewCartGormRepository(gormDB)
	ctx := context.Background()

	cart1, err := r.GetOrCreateByUserID(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "cart_alice@example.com", cart1.ID)
	assert.Equal(t, 0, cart1.ItemCount)
	assert.Equal(t, float64(0), cart1.TotalAmount)

	//2回目は同じカートが返る
	cart2, err := r.GetOrCreateByUserID(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, cart1.ID, cart2.ID)

	var count int64
	require.NoError(t, gormDB.Model(&model.Cart{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCartItemRepository_UpsertIncrementsQuantity(t *testing.T) {
	gormDB := newTestDB(t)
	cartRepo := NewCartGormRepository(gormDB)
	itemRepo := NewCartItemGormRepository(gormDB)
	ctx := context.Background()

	seedGame(t, gormDB, "gtav", "Grand Theft Auto V", 59990)
	cart, err := cartRepo.GetOrCreateByUserID(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "gtav", 59990, "item-1"))
	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "gtav", 59990, "item-unused"))

	//行は1本のまま数量だけ増える
	items, err := itemRepo.ListByCartID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item-1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, float64(59990), items[0].Price)

	//集計値も追従する
	cart, err = cartRepo.FindByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.ItemCount)
	assert.Equal(t, float64(119980), cart.TotalAmount)
}

func TestCartItemRepository_UpsertKeepsSnapshotPrice(t *testing.T) {
	gormDB := newTestDB(t)
	cartRepo := NewCartGormRepository(gormDB)
	itemRepo := NewCartItemGormRepository(gormDB)
	gameRepo := NewGameGormRepository(gormDB)
	ctx := context.Background()

	seedGame(t, gormDB, "gtav", "Grand Theft Auto V", 59990)
	cart, err := cartRepo.GetOrCreateByUserID(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "gtav", 59990, "item-1"))

	//カタログ価格が変わっても既存明細の単価は動かない
	require.NoError(t, gameRepo.Update(ctx, model.Game{
		ID: "gtav", Name: "Grand Theft Auto V", Price: 9990, IsAvailable: true,
	}))
	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "gtav", 9990, "item-unused"))

	items, err := itemRepo.ListByCartID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, float64(59990), items[0].Price)

	cart, err = cartRepo.FindByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(119980), cart.TotalAmount)
}

func TestCartItemRepository_UpdateQuantityAndDelete(t *testing.T) {
	gormDB := newTestDB(t)
	cartRepo := NewCartGormRepository(gormDB)
	itemRepo := NewCartItemGormRepository(gormDB)
	ctx := context.Background()

	seedGame(t, gormDB, "gtav", "Grand Theft Auto V", 59990)
	seedGame(t, gormDB, "terraria", "Terraria", 9990)
	cart, err := cartRepo.GetOrCreateByUserID(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "gtav", 59990, "item-1"))
	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "terraria", 9990, "item-2"))

	require.NoError(t, itemRepo.UpdateQuantity(ctx, "item-1", 3))

	cart, err = cartRepo.FindByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.ItemCount)
	assert.Equal(t, float64(3*59990+9990), cart.TotalAmount)

	require.NoError(t, itemRepo.DeleteByID(ctx, "item-1"))

	cart, err = cartRepo.FindByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)
	assert.Equal(t, float64(9990), cart.TotalAmount)

	err = itemRepo.UpdateQuantity(ctx, "nope", 1)
	assert.True(t, errors.Is(err, repo.ErrNotFound))
	err = itemRepo.DeleteByID(ctx, "nope")
	assert.True(t, errors.Is(err, repo.ErrNotFound))
}

func TestCartRepository_ClearKeepsCartRow(t *testing.T) {
	gormDB := newTestDB(t)
	cartRepo := NewCartGormRepository(gormDB)
	itemRepo := NewCartItemGormRepository(gormDB)
	ctx := context.Background()

	seedGame(t, gormDB, "gtav", "Grand Theft Auto V", 59990)
	cart, err := cartRepo.GetOrCreateByUserID(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "gtav", 59990, "item-1"))

	require.NoError(t, cartRepo.Clear(ctx, cart.ID))

	cart, err = cartRepo.FindByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.ItemCount)
	assert.Equal(t, float64(0), cart.TotalAmount)

	items, err := itemRepo.ListByCartID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Len(t, items, 0)
}

func TestCartItemRepository_ListWithGameInfo(t *testing.T) {
	gormDB := newTestDB(t)
	cartRepo := NewCartGormRepository(gormDB)
	itemRepo := NewCartItemGormRepository(gormDB)
	ctx := context.Background()

	g := seedGame(t, gormDB, "gtav", "Grand Theft Auto V", 59990)
	cart, err := cartRepo.GetOrCreateByUserID(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, g.ID, g.Price, "item-1"))

	rows, err := itemRepo.ListWithGameInfo(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Grand Theft Auto V", rows[0].GameName)
	assert.Equal(t, "gtav", rows[0].GameID)
}

func TestCartItemRepository_IsOwnedByUser(t *testing.T) {
	gormDB := newTestDB(t)
	cartRepo := NewCartGormRepository(gormDB)
	itemRepo := NewCartItemGormRepository(gormDB)
	ctx := context.Background()

	seedGame(t, gormDB, "gtav", "Grand Theft Auto V", 59990)
	cart, err := cartRepo.GetOrCreateByUserID(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "gtav", 59990, "item-1"))

	owned, err := itemRepo.IsOwnedByUser(ctx, "item-1", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = itemRepo.IsOwnedByUser(ctx, "item-1", "bob@example.com")
	require.NoError(t, err)
	assert.False(t, owned)
}

func TestCartItems_CascadeOnGameDelete(t *testing.T) {
	gormDB := newTestDB(t)
	cartRepo := NewCartGormRepository(gormDB)
	itemRepo := NewCartItemGormRepository(gormDB)
	gameRepo := NewGameGormRepository(gormDB)
	ctx := context.Background()

	seedGame(t, gormDB, "gtav", "Grand Theft Auto V", 59990)
	seedGame(t, gormDB, "sims4", "Los Sims 4", 39990)
	cart, err := cartRepo.GetOrCreateByUserID(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "gtav", 59990, "item-1"))
	require.NoError(t, itemRepo.Upsert(ctx, cart.ID, "sims4", 39990, "item-2"))

	//ゲーム削除で明細もFKで消える
	require.NoError(t, gameRepo.DeleteByID(ctx, "gtav"))

	items, err := itemRepo.ListByCartID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "sims4", items[0].GameID)

	//CASCADE後もカートの集計値は残った明細と一致する
	got, err := cartRepo.FindByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ItemCount)
	assert.Equal(t, float64(39990), got.TotalAmount)
}
