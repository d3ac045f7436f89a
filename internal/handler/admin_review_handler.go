package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cuddlecrafts/internal/config"
	"cuddlecrafts/internal/middleware"
	"cuddlecrafts/internal/usecase"
)

// 管理側はレビュー削除だけを持つ
type AdminReviewHandler struct {
	uc  *usecase.ReviewUsecase
	cfg config.Config
}

// DI
func NewAdminReviewHandler(uc *usecase.ReviewUsecase, cfg config.Config) *AdminReviewHandler {
	return &AdminReviewHandler{uc: uc, cfg: cfg}
}

func (h *AdminReviewHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/reviews", middleware.AdminJWT(h.cfg))
	g.DELETE("/:id", h.delete)
}

func (h *AdminReviewHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
