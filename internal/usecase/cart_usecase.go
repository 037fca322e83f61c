package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/pubsub"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// Cart行の集計値（total/item_count）はリポジトリが書き込みごとに再計算済みなので、
// 読む側はそのまま返すだけでよい。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	gameRepo     repo.GameRepository
	idGen        IDGenerator
	hub          *pubsub.Hub
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	gameRepo repo.GameRepository,
	idGen IDGenerator,
	hub *pubsub.Hub,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		gameRepo:     gameRepo,
		idGen:        idGen,
		hub:          hub,
	}
}

type CartItemResponse struct {
	ID       string  `json:"id"`
	GameID   string  `json:"game_id"`
	Name     string  `json:"name"`
	ImageRef string  `json:"image_ref"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartResponse struct {
	CartID    string             `json:"cart_id"`
	Items     []CartItemResponse `json:"items"`
	Total     float64            `json:"total"`
	ItemCount int                `json:"item_count"`
}

type AddCartInput struct {
	GameID string
}

type UpdateCartItemInput struct {
	Quantity int
}

// GetCart はカート取得（無ければ作って空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddToCart はカートに追加（同一ゲームは数量+1、価格は追加時点のスナップショット）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddCartInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.GameID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid game_id")
	}

	//カート取得（無ければ作成）
	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//ゲームチェック（購入可能のみ）
	g, err := u.gameRepo.FindByID(ctx, in.GameID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid game")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !g.IsAvailable {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid game")
	}

	// 新規行になる場合の価格はいまのカタログ価格
	if err := u.cartItemRepo.Upsert(ctx, cart.ID, g.ID, g.Price, u.idGen.NewID()); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Publish(pubsub.TopicCart(cart.ID))
	return u.buildCartResponse(ctx, cart.ID)
}

// 数量変更（所有チェック付き）。qty<1は削除操作を使わせるため拒否する。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID string, cartItemID string, in UpdateCartItemInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Publish(pubsub.TopicCart(item.CartID))
	return u.buildCartResponse(ctx, item.CartID)
}

// 明細削除
func (u *CartUsecase) DeleteCartItem(ctx context.Context, userID string, cartItemID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Publish(pubsub.TopicCart(item.CartID))
	return u.buildCartResponse(ctx, item.CartID)
}

// カートを空にする（カート行は残り、集計値はゼロに戻る）
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Publish(pubsub.TopicCart(cart.ID))
	return u.buildCartResponse(ctx, cart.ID)
}

// WatchCart はカートのライブビュー。購読時にまず現状が届き、
// 以後はカートが変わるたびに読み直したスナップショットが届く。
func (u *CartUsecase) WatchCart(ctx context.Context, userID string) (<-chan CartResponse, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//明細はgamesとのJOINなので、カタログ側の変更（改名や画像差し替え、
	//削除のCASCADE）でも見た目が変わる。両トピックを購読する。
	events, cancel := u.hub.Subscribe(pubsub.TopicCart(cart.ID))
	catalogEvents, cancelCatalog := u.hub.Subscribe(pubsub.TopicCatalog)
	out := make(chan CartResponse, 1)

	go func() {
		defer cancel()
		defer cancelCatalog()
		defer close(out)

		send := func() {
			resp, err := u.buildCartResponse(ctx, cart.ID)
			if err != nil {
				return
			}
			select {
			case out <- resp:
			case <-ctx.Done():
			}
		}

		send()
		for {
			select {
			case <-ctx.Done():
				return
			case <-events:
				send()
			case <-catalogEvents:
				send()
			}
		}
	}()

	return out, nil
}

// gamesとJOINした明細と、Cart行の集計値でレスポンスを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID string) (CartResponse, error) {
	items, err := u.cartItemRepo.ListWithGameInfo(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		respItems = append(respItems, CartItemResponse{
			ID:       it.ID,
			GameID:   it.GameID,
			Name:     it.GameName,
			ImageRef: it.GameImageRef,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	return CartResponse{
		CartID:    cart.ID,
		Items:     respItems,
		Total:     cart.TotalAmount,
		ItemCount: cart.ItemCount,
	}, nil
}
