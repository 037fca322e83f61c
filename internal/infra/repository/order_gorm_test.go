package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_ListByUserIDNewestFirst(t *testing.T) {
	gormDB := newTestDB(t)
	r := NewOrderGormRepository(gormDB)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"order_a_1", "order_a_2", "order_a_3"} {
		require.NoError(t, r.Create(ctx, model.Order{
			ID:              id,
			UserID:          "alice@example.com",
			TotalAmount:     1000,
			Status:          model.OrderStatusPending,
			ShippingAddress: "Av. Siempre Viva 742",
			PaymentMethod:   "credit_card",
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, r.Create(ctx, model.Order{
		ID:              "order_b_1",
		UserID:          "bob@example.com",
		Status:          model.OrderStatusPending,
		ShippingAddress: "x",
		PaymentMethod:   "cash",
		CreatedAt:       base,
	}))

	orders, err := r.ListByUserID(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "order_a_3", orders[0].ID)
	assert.Equal(t, "order_a_1", orders[2].ID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	gormDB := newTestDB(t)
	r := NewOrderGormRepository(gormDB)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, model.Order{
		ID:              "order_a_1",
		UserID:          "alice@example.com",
		Status:          model.OrderStatusPending,
		ShippingAddress: "x",
		PaymentMethod:   "cash",
		CreatedAt:       time.Now(),
	}))

	require.NoError(t, r.UpdateStatus(ctx, "order_a_1", model.OrderStatusShipped))

	o, err := r.FindByID(ctx, "order_a_1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, o.Status)

	err = r.UpdateStatus(ctx, "nope", model.OrderStatusShipped)
	assert.True(t, errors.Is(err, repo.ErrNotFound))
}

func TestOrderItems_SnapshotSurvivesGameRename(t *testing.T) {
	gormDB := newTestDB(t)
	orderRepo := NewOrderGormRepository(gormDB)
	itemRepo := NewOrderItemGormRepository(gormDB)
	gameRepo := NewGameGormRepository(gormDB)
	ctx := context.Background()

	seedGame(t, gormDB, "gtav", "Grand Theft Auto V", 59990)
	require.NoError(t, orderRepo.Create(ctx, model.Order{
		ID:              "order_a_1",
		UserID:          "alice@example.com",
		TotalAmount:     59990,
		Status:          model.OrderStatusPending,
		ShippingAddress: "x",
		PaymentMethod:   "cash",
		CreatedAt:       time.Now(),
	}))
	require.NoError(t, itemRepo.CreateBulk(ctx, "order_a_1", []model.OrderItem{
		{ID: "oi-1", GameID: "gtav", GameName: "Grand Theft Auto V", Quantity: 1, Price: 59990},
	}))

	//改名してもスナップショットは当時のまま
	require.NoError(t, gameRepo.Update(ctx, model.Game{
		ID: "gtav", Name: "GTA V Remastered", Price: 29990, IsAvailable: true,
	}))

	items, err := itemRepo.ListByOrderID(ctx, "order_a_1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Grand Theft Auto V", items[0].GameName)
	assert.Equal(t, float64(59990), items[0].Price)
	assert.Equal(t, "order_a_1", items[0].OrderID)
}
