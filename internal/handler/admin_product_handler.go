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

type AdminProductHandler struct {
	uc  *usecase.AdminProductUsecase
	cfg config.Config
}

// DI
func NewAdminProductHandler(uc *usecase.AdminProductUsecase, cfg config.Config) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, cfg: cfg}
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/products", middleware.AdminJWT(h.cfg))
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/images", h.uploadImage)
}

type ProductRequest struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category"`
	AgeGroup         string          `json:"age_group"`
	Material         string          `json:"material"`
	Size             string          `json:"size"`
	Images           []string        `json:"images"`
	Features         []string        `json:"features"`
	CareInstructions string          `json:"care_instructions"`
	CharacterStory   string          `json:"character_story"`
	Badge            string          `json:"badge"`
}

func (r ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:             r.Name,
		Description:      r.Description,
		Price:            r.Price,
		Category:         r.Category,
		AgeGroup:         r.AgeGroup,
		Material:         r.Material,
		Size:             r.Size,
		Images:           r.Images,
		Features:         r.Features,
		CareInstructions: r.CareInstructions,
		CharacterStory:   r.CharacterStory,
		Badge:            r.Badge,
	}
}

func (h *AdminProductHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	p, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	p, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// multipartのimageフィールドを受け取ってアップロードする
func (h *AdminProductHandler) uploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image file is required"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read image file"})
	}
	defer f.Close()

	url, err := h.uc.UploadImage(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"url": url})
}
