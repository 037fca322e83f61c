package repository

import (
	"context"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	// createdAt降順
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}
