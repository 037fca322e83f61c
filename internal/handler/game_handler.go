package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /games の公開API
type GameHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewGameHandler(uc *usecase.CatalogUsecase) *GameHandler {
	return &GameHandler{uc: uc}
}

// 公開カタログのルートを登録
func (h *GameHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/games", h.list)
	e.GET("/games/stream", h.stream)
	e.GET("/games/:id", h.detail)
}

func (h *GameHandler) list(c echo.Context) error {
	out, err := h.uc.ListGames(c.Request().Context(), usecase.ListGamesInput{
		Category: c.QueryParam("category"),
		Q:        c.QueryParam("q"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *GameHandler) detail(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	g, err := h.uc.GetGame(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, g)
}

// SSEでカタログのライブビューを流す。
// 接続直後に現時点の一覧、以後は変わるたびに一覧全体を送る。
func (h *GameHandler) stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	updates := h.uc.WatchCatalog(ctx)

	for games := range updates {
		payload, err := json.Marshal(games)
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
			return nil
		}
		res.Flush()
	}

	return nil
}
