package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/commerce-mock/internal/apperr"
	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
)

func (s *Service) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var items []model.CartItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil || items == nil {
		s.respondError(w, r, apperr.ErrNoCartDetails)
		return
	}

	added, err := s.orderSvc.AddToCart(r.Context(), items)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, statusMessageResponse{
		StatusMessage: fmt.Sprintf("Added %d item(s) to cart", added),
	})
}

type placeOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

func (s *Service) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	// the order intake accepts arbitrary fields and performs no
	// validation, by contract
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		order = model.Order{}
	}

	orderID, err := s.orderSvc.PlaceOrder(r.Context(), order)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, placeOrderResponse{Success: true, OrderID: orderID})
}
