package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/pubsub"
	repo "github.com/qosme/appGameZone-010V-Grupo3/internal/repository"
)

// CatalogUsecase は /games の業務ロジックです。
type CatalogUsecase struct {
	gameRepo repo.GameRepository
	hub      *pubsub.Hub
}

func NewCatalogUsecase(gameRepo repo.GameRepository, hub *pubsub.Hub) *CatalogUsecase {
	return &CatalogUsecase{gameRepo: gameRepo, hub: hub}
}

// GET /gamesの入力
type ListGamesInput struct {
	Category string
	Q        string
}

// 管理者のゲーム登録/更新の入力
type GameInput struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	LongDescription string  `json:"long_description"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	Rating          float64 `json:"rating"`
	ReleaseDate     string  `json:"release_date"`
	Developer       string  `json:"developer"`
	Publisher       string  `json:"publisher"`
	ImageRef        string  `json:"image_ref"`
	IsAvailable     *bool   `json:"is_available"`
}

// 購入可能なゲームの一覧（カテゴリ・name部分一致の絞り込み付き）
func (u *CatalogUsecase) ListGames(ctx context.Context, in ListGamesInput) ([]model.Game, error) {
	games, err := u.gameRepo.ListAvailable(ctx, repo.GameListQuery{
		Category: in.Category,
		Q:        in.Q,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return games, nil
}

// 1件取得（非公開タイトルも管理画面で見られるよう絞らない）
func (u *CatalogUsecase) GetGame(ctx context.Context, id string) (model.Game, error) {
	g, err := u.gameRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Game{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Game{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return g, nil
}

// ゲームの登録（管理者）
func (u *CatalogUsecase) CreateGame(ctx context.Context, in GameInput) (model.Game, error) {
	g, err := gameFromInput(in)
	if err != nil {
		return model.Game{}, err
	}

	if err := u.gameRepo.Create(ctx, g); err != nil {
		return model.Game{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Publish(pubsub.TopicCatalog)
	return g, nil
}

// 一括登録。同じidは上書き（シード投入と同じREPLACE動作）。
func (u *CatalogUsecase) CreateGames(ctx context.Context, ins []GameInput) (int, error) {
	if len(ins) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "empty batch")
	}

	games := make([]model.Game, 0, len(ins))
	for _, in := range ins {
		g, err := gameFromInput(in)
		if err != nil {
			return 0, err
		}
		games = append(games, g)
	}

	if err := u.gameRepo.CreateBatch(ctx, games); err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Publish(pubsub.TopicCatalog)
	return len(games), nil
}

// ゲームの更新（管理者）
func (u *CatalogUsecase) UpdateGame(ctx context.Context, id string, in GameInput) (model.Game, error) {
	in.ID = id
	g, err := gameFromInput(in)
	if err != nil {
		return model.Game{}, err
	}

	err = u.gameRepo.Update(ctx, g)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Game{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Game{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Publish(pubsub.TopicCatalog)
	return g, nil
}

// ゲームの削除（管理者）。明細側はFKでCASCADE削除。
func (u *CatalogUsecase) DeleteGame(ctx context.Context, id string) error {
	err := u.gameRepo.DeleteByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Publish(pubsub.TopicCatalog)
	return nil
}

// WatchCatalog は購入可能な一覧のライブビュー。
// 購読するとまず現時点のスナップショットが届き、以後はカタログが
// 変わるたびに読み直した一覧が届く。ctx終了でチャネルはcloseされる。
func (u *CatalogUsecase) WatchCatalog(ctx context.Context) <-chan []model.Game {
	events, cancel := u.hub.Subscribe(pubsub.TopicCatalog)
	out := make(chan []model.Game, 1)

	go func() {
		defer cancel()
		defer close(out)

		send := func() {
			games, err := u.gameRepo.ListAvailable(ctx, repo.GameListQuery{})
			if err != nil {
				return
			}
			select {
			case out <- games:
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
			}
		}
	}()

	return out
}

// 入力検証つきでmodelに詰め替える
func gameFromInput(in GameInput) (model.Game, error) {
	if strings.TrimSpace(in.ID) == "" {
		return model.Game{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Game{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price < 0 {
		return model.Game{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return model.Game{}, NewHTTPError(http.StatusBadRequest, "invalid rating")
	}

	isAvailable := true
	if in.IsAvailable != nil {
		isAvailable = *in.IsAvailable
	}

	return model.Game{
		ID:              strings.TrimSpace(in.ID),
		Name:            in.Name,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		Price:           in.Price,
		Category:        in.Category,
		Rating:          in.Rating,
		ReleaseDate:     in.ReleaseDate,
		Developer:       in.Developer,
		Publisher:       in.Publisher,
		ImageRef:        in.ImageRef,
		IsAvailable:     isAvailable,
	}, nil
}
