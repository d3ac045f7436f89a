package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/config"
	"cuddlecrafts/internal/middleware"
	"cuddlecrafts/internal/usecase"
)

type AdminShippingHandler struct {
	uc  *usecase.AdminShippingUsecase
	cfg config.Config
}

// DI
func NewAdminShippingHandler(uc *usecase.AdminShippingUsecase, cfg config.Config) *AdminShippingHandler {
	return &AdminShippingHandler{uc: uc, cfg: cfg}
}

func (h *AdminShippingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/shipping-options", middleware.AdminJWT(h.cfg))
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

type ShippingOptionRequest struct {
	Name           string           `json:"name"`
	Cost           decimal.Decimal  `json:"cost"`
	EstimatedDays  string           `json:"estimated_days"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount"`
	MaxOrderAmount *decimal.Decimal `json:"max_order_amount"`
	IsActive       bool             `json:"is_active"`
}

func (r ShippingOptionRequest) toInput() usecase.ShippingOptionInput {
	return usecase.ShippingOptionInput{
		Name:           r.Name,
		Cost:           r.Cost,
		EstimatedDays:  r.EstimatedDays,
		MinOrderAmount: r.MinOrderAmount,
		MaxOrderAmount: r.MaxOrderAmount,
		IsActive:       r.IsActive,
	}
}

func (h *AdminShippingHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminShippingHandler) create(c echo.Context) error {
	var req ShippingOptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	opt, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, opt)
}

func (h *AdminShippingHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ShippingOptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	opt, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, opt)
}

func (h *AdminShippingHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
