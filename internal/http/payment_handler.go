package http

import (
	"encoding/json"
	"net/http"
)

type paymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

type paymentResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
}

func (s *Service) handlePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	//nolint:errcheck
	json.NewDecoder(r.Body).Decode(&req)

	receipt, err := s.paymentSvc.Charge(r.Context(), req.Amount, req.Method)
	if err != nil {
		// the payment contract answers a bare success flag, not the
		// statusMessage body
		s.respond(w, r, http.StatusBadRequest, paymentResponse{Success: false})
		return
	}

	s.respond(w, r, http.StatusOK, paymentResponse{
		Success:       true,
		TransactionID: receipt.TransactionID,
	})
}
