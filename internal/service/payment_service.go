package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/integration"
)

// PaymentIntentCreator is implemented by integration.PaymentClient.
type PaymentIntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency, description string, metadata map[string]string) (*integration.PaymentIntent, error)
}

// PaymentService creates payment intents against the external provider.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency, description string) (*integration.PaymentIntent, error)
}

type paymentService struct {
	client PaymentIntentCreator
}

// NewPaymentService creates a new payment service.
func NewPaymentService(client PaymentIntentCreator) PaymentService {
	return &paymentService{client: client}
}

var minorUnits = decimal.NewFromInt(100)

// CreateIntent validates the amount, converts it to minor units and requests
// an intent from the provider. Each intent carries a generated reference id in
// its metadata for later reconciliation.
func (s *paymentService) CreateIntent(ctx context.Context, amount decimal.Decimal, currency, description string) (*integration.PaymentIntent, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}

	minor := amount.Mul(minorUnits)
	if !minor.IsInteger() {
		return nil, apperrors.ErrInvalidAmount
	}

	intent, err := s.client.CreateIntent(ctx, minor.IntPart(), currency, description, map[string]string{
		"reference": uuid.New().String(),
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return intent, nil
}
