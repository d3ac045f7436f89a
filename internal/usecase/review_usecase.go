package usecase

import (
	"context"
	"net/http"
	"strings"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	productRepo repo.ProductRepository
}

// DI
func NewReviewUsecase(reviewRepo repo.ReviewRepository, productRepo repo.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo, productRepo: productRepo}
}

type CreateReviewInput struct {
	CustomerName string
	Rating       int
	Comment      string
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	reviews, err := u.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

func (u *ReviewUsecase) Create(ctx context.Context, productID int64, in CreateReviewInput) (model.Review, error) {
	if productID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	//商品が存在するときだけ受け付ける
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	review, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID:    productID,
		CustomerName: strings.TrimSpace(in.CustomerName),
		Rating:       in.Rating,
		Comment:      in.Comment,
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return review, nil
}

// 管理者のみ
func (u *ReviewUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.reviewRepo.Delete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
