package handler

import (
	"errors"
	"net/http"

	"cuddlecrafts/internal/middleware"
	"cuddlecrafts/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`

	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number"`
	CardName      string `json:"card_name"`
	ExpiryDate    string `json:"expiry_date"`
	CVV           string `json:"cvv"`

	CouponCode       string `json:"coupon_code"`
	ShippingOptionID int64  `json:"shipping_option_id"`
	Notes            string `json:"notes"`
}

// フィールド単位の検証エラー用
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/checkout")
	g.Use(middleware.CartToken())

	g.POST("", h.checkout)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	token, ok := middleware.GetCartToken(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing cart token"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), token, usecase.CheckoutInput{
		CustomerName:     req.CustomerName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		ZipCode:          req.ZipCode,
		Country:          req.Country,
		PaymentMethod:    req.PaymentMethod,
		CardNumber:       req.CardNumber,
		CardName:         req.CardName,
		ExpiryDate:       req.ExpiryDate,
		CVV:              req.CVV,
		CouponCode:       req.CouponCode,
		ShippingOptionID: req.ShippingOptionID,
		Notes:            req.Notes,
	})
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: ve.Fields})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
