package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cuddlecrafts/internal/config"
	"cuddlecrafts/internal/middleware"
	"cuddlecrafts/internal/usecase"
)

type AdminAuthHandler struct {
	uc  *usecase.AdminAuthUsecase
	cfg config.Config
}

// DI
func NewAdminAuthHandler(uc *usecase.AdminAuthUsecase, cfg config.Config) *AdminAuthHandler {
	return &AdminAuthHandler{uc: uc, cfg: cfg}
}

func (h *AdminAuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admin/login", h.login)
	//パスワード変更はログイン済み管理者のみ
	e.POST("/admin/password", h.changePassword, middleware.AdminJWT(h.cfg))
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *AdminAuthHandler) login(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminAuthHandler) changePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.uc.ChangePassword(c.Request().Context(), req.CurrentPassword, req.NewPassword); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password updated"})
}
