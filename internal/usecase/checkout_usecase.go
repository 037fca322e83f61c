package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/pubsub"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"
)

// CheckoutUsecase はカートから注文への変換を担当します。
// 注文作成・明細コピー・カートクリアは同じトランザクションで行い、
// 失敗したら注文もカートも元のままにする。
type CheckoutUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
	clock Clock
	hub   *pubsub.Hub
}

func NewCheckoutUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock, hub *pubsub.Hub) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:    tx,
		idGen: idGen,
		clock: clock,
		hub:   hub,
	}
}

type CheckoutInput struct {
	ShippingAddress string
	PaymentMethod   string
}

type OrderItemResponse struct {
	ID       string  `json:"id"`
	GameID   string  `json:"game_id"`
	GameName string  `json:"game_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	TotalAmount     float64             `json:"total_amount"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	CreatedAt       string              `json:"created_at"`
	Items           []OrderItemResponse `json:"items"`
}

// Checkout はカートの内容で注文を確定する。
// 注文の金額・ゲーム名・単価はすべてカート時点のスナップショット。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID string, in CheckoutInput) (OrderResponse, error) {
	if userID == "" {
		return OrderResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.ShippingAddress) == "" {
		return OrderResponse{}, NewHTTPError(http.StatusBadRequest, "shipping address required")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return OrderResponse{}, NewHTTPError(http.StatusBadRequest, "payment method required")
	}

	var (
		order      model.Order
		orderItems []model.OrderItem
		cartID     string
	)

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}
		if err != nil {
			return err
		}
		cartID = cart.ID

		items, err := r.CartItems().ListWithGameInfo(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		now := u.clock.Now()
		order = model.Order{
			ID:              fmt.Sprintf("order_%s_%d", userID, now.UnixMilli()),
			UserID:          userID,
			TotalAmount:     cart.TotalAmount,
			Status:          model.OrderStatusPending,
			ShippingAddress: in.ShippingAddress,
			PaymentMethod:   in.PaymentMethod,
			CreatedAt:       now,
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return err
		}

		orderItems = make([]model.OrderItem, 0, len(items))
		for _, it := range items {
			orderItems = append(orderItems, model.OrderItem{
				ID:       u.idGen.NewID(),
				GameID:   it.GameID,
				GameName: it.GameName,
				Quantity: it.Quantity,
				Price:    it.Price,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, order.ID, orderItems); err != nil {
			return err
		}

		return r.Carts().Clear(ctx, cart.ID)
	})

	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return OrderResponse{}, he
		}
		return OrderResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Publish(pubsub.TopicCart(cartID))
	return orderResponseFrom(order, orderItems), nil
}

func orderResponseFrom(o model.Order, items []model.OrderItem) OrderResponse {
	respItems := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		respItems = append(respItems, OrderItemResponse{
			ID:       it.ID,
			GameID:   it.GameID,
			GameName: it.GameName,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		Items:           respItems,
	}
}
