package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"
)

type OrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
}

func NewOrderUsecase(orderRepo repo.OrderRepository, orderItemRepo repo.OrderItemRepository) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

type UpdateOrderStatusInput struct {
	Status string
}

// ListMyOrders は自分の注文履歴（新しい順、明細付き）。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID string) ([]OrderResponse, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items, err := u.orderItemRepo.ListByOrderID(ctx, o.ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		resp = append(resp, orderResponseFrom(o, items))
	}
	return resp, nil
}

// GetMyOrderDetail は注文詳細。他人の注文は存在自体を隠して404。
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID string, orderID string) (OrderResponse, error) {
	if userID == "" {
		return OrderResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID == "" {
		return OrderResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if order.UserID != userID {
		return OrderResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return OrderResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orderResponseFrom(order, items), nil
}

// UpdateOrderStatus は管理者による配送ステータス更新。
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput) (OrderResponse, error) {
	if orderID == "" {
		return OrderResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	status := model.OrderStatus(in.Status)
	if !model.IsValidOrderStatus(status) {
		return OrderResponse{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return OrderResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orderResponseFrom(order, items), nil
}
