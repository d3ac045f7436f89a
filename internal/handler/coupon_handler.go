package handler

import (
	"net/http"

	"cuddlecrafts/internal/middleware"
	"cuddlecrafts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// クーポン適用チェック（カートの小計に対して）
type CouponHandler struct {
	uc *usecase.CouponUsecase
}

// DI
func NewCouponHandler(uc *usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{uc: uc}
}

type ApplyCouponRequest struct {
	Code string `json:"code"`
}

func (h *CouponHandler) RegisterRoutes(e *echo.Echo) {
	//バナー用の一覧はカートに紐づかない
	e.GET("/coupons/active", h.listActive)

	g := e.Group("/coupons")
	g.Use(middleware.CartToken())

	g.POST("/apply", h.apply)
}

func (h *CouponHandler) listActive(c echo.Context) error {
	out, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CouponHandler) apply(c echo.Context) error {
	token, ok := middleware.GetCartToken(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing cart token"})
	}

	var req ApplyCouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.ApplyCoupon(c.Request().Context(), token, usecase.ApplyCouponInput{Code: req.Code})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
