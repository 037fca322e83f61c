package handler

import (
	"net/http"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/config"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/middleware"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/users のHTTP
type AdminUserHandler struct {
	uc *usecase.AdminUserUsecase
}

// DI
func NewAdminUserHandler(uc *usecase.AdminUserUsecase) *AdminUserHandler {
	return &AdminUserHandler{uc: uc}
}

type SeedUsersRequest struct {
	Count int `json:"count"`
}

func (h *AdminUserHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin/users")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("", h.listUsers)
	admin.GET("/admins", h.listAdmins)
	admin.POST("/seed", h.seedUsers)
	admin.POST("/:email/admin", h.grantAdmin)
	admin.DELETE("/:email/admin", h.revokeAdmin)
	admin.DELETE("/:email", h.deleteUser)
}

func (h *AdminUserHandler) listUsers(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminUserHandler) listAdmins(c echo.Context) error {
	out, err := h.uc.ListAdmins(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminUserHandler) grantAdmin(c echo.Context) error {
	target := c.Param("email")
	if target == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email"})
	}

	out, err := h.uc.SetAdmin(c.Request().Context(), target, usecase.SetAdminInput{
		IsAdmin: true,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminUserHandler) revokeAdmin(c echo.Context) error {
	target := c.Param("email")
	if target == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email"})
	}

	//自分自身の権限剥奪は事故のもとなので拒否
	self, ok := getUserEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	if target == self {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot revoke own admin"})
	}

	out, err := h.uc.SetAdmin(c.Request().Context(), target, usecase.SetAdminInput{
		IsAdmin: false,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminUserHandler) deleteUser(c echo.Context) error {
	target := c.Param("email")
	if target == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email"})
	}

	self, ok := getUserEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	if target == self {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot delete self"})
	}

	if err := h.uc.DeleteUser(c.Request().Context(), target); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (h *AdminUserHandler) seedUsers(c echo.Context) error {
	var req SeedUsersRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SeedUsers(c.Request().Context(), usecase.SeedUsersInput{
		Count: req.Count,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
