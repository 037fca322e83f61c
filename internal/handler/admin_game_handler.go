package handler

import (
	"net/http"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/config"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/middleware"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SuccessResponse は { message: string } の形。
type SuccessResponse struct {
	Message string `json:"message"`
}

type BatchCreateResponse struct {
	Created int `json:"created"`
}

// /admin/games のカタログ管理
type AdminGameHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewAdminGameHandler(uc *usecase.CatalogUsecase) *AdminGameHandler {
	return &AdminGameHandler{uc: uc}
}

// adminを登録
func (h *AdminGameHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin/games")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.POST("", h.createGame)
	admin.POST("/batch", h.createGames)
	admin.PUT("/:id", h.updateGame)
	admin.DELETE("/:id", h.deleteGame)
}

func (h *AdminGameHandler) createGame(c echo.Context) error {
	var req usecase.GameInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	g, err := h.uc.CreateGame(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, g)
}

// 一括投入。同じidは上書き。
func (h *AdminGameHandler) createGames(c echo.Context) error {
	var req []usecase.GameInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	n, err := h.uc.CreateGames(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, BatchCreateResponse{Created: n})
}

func (h *AdminGameHandler) updateGame(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.GameInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	g, err := h.uc.UpdateGame(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, g)
}

func (h *AdminGameHandler) deleteGame(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteGame(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

//middleware.AuthJWT が c.Set("user_email", string) した値を取り出す

func getUserEmailFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxUserEmailKey)
	if v == nil {
		return "", false
	}

	email, ok := v.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
