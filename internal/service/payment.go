package service

import (
	"context"

	"github.com/tuanvumaihuynh/commerce-mock/internal/apperr"
)

// mockTransactionID is the fixed transaction id every accepted mock
// payment answers with.
const mockTransactionID = "txn12345"

var acceptedPaymentMethods = map[string]struct{}{
	"credit_card": {},
	"paypal":      {},
}

type Receipt struct {
	TransactionID string
}

type PaymentService interface {
	// Charge validates the payment request and returns a mock
	// receipt. No payment provider is contacted.
	Charge(ctx context.Context, amount float64, method string) (Receipt, error)
}

type paymentService struct{}

func NewPaymentService() PaymentService {
	return &paymentService{}
}

func (s *paymentService) Charge(_ context.Context, amount float64, method string) (Receipt, error) {
	if amount <= 0 {
		return Receipt{}, apperr.ErrPaymentRejected
	}
	if _, ok := acceptedPaymentMethods[method]; !ok {
		return Receipt{}, apperr.ErrPaymentRejected
	}

	return Receipt{TransactionID: mockTransactionID}, nil
}
