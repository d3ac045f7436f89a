package usecase

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

// 商品画像のアップロード先（Cloudinary実装をmainで注入）
type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader) (url string, err error)
}

type AdminProductUsecase struct {
	productRepo repo.ProductRepository
	uploader    ImageUploader
}

// DI
func NewAdminProductUsecase(productRepo repo.ProductRepository, uploader ImageUploader) *AdminProductUsecase {
	return &AdminProductUsecase{productRepo: productRepo, uploader: uploader}
}

type ProductInput struct {
	Name             string
	Description      string
	Price            decimal.Decimal
	Category         string
	AgeGroup         string
	Material         string
	Size             string
	Images           []string
	Features         []string
	CareInstructions string
	CharacterStory   string
	Badge            string
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}
	return nil
}

func (in ProductInput) toModel() model.Product {
	return model.Product{
		Name:             strings.TrimSpace(in.Name),
		Description:      in.Description,
		Price:            in.Price,
		Category:         in.Category,
		AgeGroup:         in.AgeGroup,
		Material:         in.Material,
		Size:             in.Size,
		Images:           in.Images,
		Features:         in.Features,
		CareInstructions: in.CareInstructions,
		CharacterStory:   in.CharacterStory,
		Badge:            in.Badge,
	}
}

func (u *AdminProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx, repo.ProductListQuery{})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *AdminProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.Create(ctx, in.toModel())
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *AdminProductUsecase) Update(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	p := in.toModel()
	p.ID = id
	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

func (u *AdminProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.productRepo.SoftDelete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 画像を1枚アップロードしてURLを返す。商品への紐付けは編集フォーム側。
func (u *AdminProductUsecase) UploadImage(ctx context.Context, file io.Reader) (string, error) {
	if u.uploader == nil {
		return "", NewHTTPError(http.StatusServiceUnavailable, "image upload is not configured")
	}

	url, err := u.uploader.Upload(ctx, file)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "upload failed")
	}
	return url, nil
}
