package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/usecase"
)

// 公開側の配送オプション一覧
type ShippingHandler struct {
	uc *usecase.ShippingUsecase
}

// DI
func NewShippingHandler(uc *usecase.ShippingUsecase) *ShippingHandler {
	return &ShippingHandler{uc: uc}
}

func (h *ShippingHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/shipping-options", h.list)
}

func (h *ShippingHandler) list(c echo.Context) error {
	subtotal := decimal.Zero
	if v := c.QueryParam("subtotal"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid subtotal"})
		}
		subtotal = d
	}

	out, err := h.uc.ListEligible(c.Request().Context(), subtotal)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
