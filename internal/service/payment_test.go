package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/commerce-mock/internal/service"
)

func TestCharge(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPaymentService()

	t.Run("Should accept credit_card and paypal with a positive amount", func(t *testing.T) {
		for _, method := range []string{"credit_card", "paypal"} {
			receipt, err := svc.Charge(ctx, 50, method)
			require.NoError(t, err)
			assert.Equal(t, "txn12345", receipt.TransactionID)
		}
	})

	t.Run("Should reject a non-positive amount", func(t *testing.T) {
		_, err := svc.Charge(ctx, 0, "credit_card")
		assert.Error(t, err)

		_, err = svc.Charge(ctx, -5, "credit_card")
		assert.Error(t, err)
	})

	t.Run("Should reject an unknown method", func(t *testing.T) {
		_, err := svc.Charge(ctx, 50, "cash")
		assert.Error(t, err)
	})
}
