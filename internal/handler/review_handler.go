package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cuddlecrafts/internal/usecase"
)

type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

// DI
func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products/:id/reviews", h.list)
	e.POST("/products/:id/reviews", h.create)
}

type CreateReviewRequest struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

func (h *ReviewHandler) list(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	reviews, err := h.uc.ListByProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) create(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	review, err := h.uc.Create(c.Request().Context(), id, usecase.CreateReviewInput{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, review)
}
