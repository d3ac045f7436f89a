package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/config"
	"cuddlecrafts/internal/middleware"
	"cuddlecrafts/internal/usecase"
)

type AdminCouponHandler struct {
	uc  *usecase.AdminCouponUsecase
	cfg config.Config
}

// DI
func NewAdminCouponHandler(uc *usecase.AdminCouponUsecase, cfg config.Config) *AdminCouponHandler {
	return &AdminCouponHandler{uc: uc, cfg: cfg}
}

func (h *AdminCouponHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/coupons", middleware.AdminJWT(h.cfg))
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

type CouponRequest struct {
	Code          string           `json:"code"`
	DiscountType  string           `json:"discount_type"`
	DiscountValue decimal.Decimal  `json:"discount_value"`
	MinPurchase   *decimal.Decimal `json:"min_purchase"`
	MaxDiscount   *decimal.Decimal `json:"max_discount"`
	ValidFrom     *time.Time       `json:"valid_from"`
	ValidUntil    *time.Time       `json:"valid_until"`
	UsageLimit    *int64           `json:"usage_limit"`
	IsActive      bool             `json:"is_active"`
}

func (r CouponRequest) toInput() usecase.CouponInput {
	return usecase.CouponInput{
		Code:          r.Code,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MinPurchase:   r.MinPurchase,
		MaxDiscount:   r.MaxDiscount,
		ValidFrom:     r.ValidFrom,
		ValidUntil:    r.ValidUntil,
		UsageLimit:    r.UsageLimit,
		IsActive:      r.IsActive,
	}
}

func (h *AdminCouponHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminCouponHandler) create(c echo.Context) error {
	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	coupon, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, coupon)
}

func (h *AdminCouponHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	coupon, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, coupon)
}

func (h *AdminCouponHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
