package service

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
	"github.com/tuanvumaihuynh/commerce-mock/internal/repository"
)

type OrderService interface {
	// PlaceOrder persists the submitted order fields as-is and
	// returns the assigned order id.
	PlaceOrder(ctx context.Context, order model.Order) (string, error)

	// AddToCart appends the submitted items to the cart and returns
	// the number of items added.
	AddToCart(ctx context.Context, items []model.CartItem) (int, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, order model.Order) (string, error) {
	stored, err := s.orderRepo.Append(ctx, order)
	if err != nil {
		return "", fmt.Errorf("order repository append: %w", err)
	}

	id, _ := stored["id"].(string)
	return id, nil
}

func (s *orderService) AddToCart(ctx context.Context, items []model.CartItem) (int, error) {
	added, err := s.cartRepo.AppendItems(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("cart repository append items: %w", err)
	}

	return added, nil
}
