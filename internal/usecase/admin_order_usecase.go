package usecase

import (
	"context"
	"net/http"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo repo.OrderRepository
}

// DI
func NewAdminOrderUsecase(orderRepo repo.OrderRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{orderRepo: orderRepo}
}

type ListOrdersInput struct {
	Page   int
	Limit  int
	Status string
}

type OrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type UpdateOrderInput struct {
	Status       string
	CustomerName string
	Email        string
	Phone        string
	Address      string
	Notes        string
}

func validOrderStatus(s string) bool {
	switch model.OrderStatus(s) {
	case model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusShipped,
		model.OrderStatusDelivered, model.OrderStatusCancelled:
		return true
	}
	return false
}

func (u *AdminOrderUsecase) List(ctx context.Context, in ListOrdersInput) (OrderListOutput, error) {
	if in.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if in.Status != "" && !validOrderStatus(in.Status) {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	items, total, err := u.orderRepo.List(ctx, repo.OrderListFilter{
		Page:   in.Page,
		Limit:  in.Limit,
		Status: in.Status,
	})
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *AdminOrderUsecase) Get(ctx context.Context, id int64) (model.Order, error) {
	if id <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// ステータスと連絡先/メモだけを編集できる。金額の書き換えはさせない。
func (u *AdminOrderUsecase) Update(ctx context.Context, id int64, in UpdateOrderInput) (model.Order, error) {
	if id <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	//status省略は「変更なし」
	if in.Status != "" && !validOrderStatus(in.Status) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	current, err := u.orderRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Status != "" {
		current.Status = model.OrderStatus(in.Status)
	}
	if in.CustomerName != "" {
		current.CustomerName = in.CustomerName
	}
	if in.Email != "" {
		current.Email = in.Email
	}
	if in.Phone != "" {
		current.Phone = in.Phone
	}
	if in.Address != "" {
		current.Address = in.Address
	}
	current.Notes = in.Notes

	if err := u.orderRepo.Update(ctx, current); err != nil {
		if err == repo.ErrNotFound {
			return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return current, nil
}

// 明示的な管理操作でのみ消せる
func (u *AdminOrderUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.orderRepo.Delete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
