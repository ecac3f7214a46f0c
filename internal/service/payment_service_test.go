package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/integration"
)

// MockPaymentClient is a mock implementation of PaymentIntentCreator.
type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) CreateIntent(ctx context.Context, amount int64, currency, description string, metadata map[string]string) (*integration.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency, description, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.PaymentIntent), args.Error(1)
}

func TestPaymentService_CreateIntent(t *testing.T) {
	t.Run("converts amount to minor units", func(t *testing.T) {
		mockClient := new(MockPaymentClient)
		mockClient.On("CreateIntent", mock.Anything, int64(1999), "usd", "consulting", mock.AnythingOfType("map[string]string")).
			Return(&integration.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: 1999, Currency: "usd"}, nil)

		service := NewPaymentService(mockClient)
		intent, err := service.CreateIntent(context.Background(), decimal.RequireFromString("19.99"), "usd", "consulting")

		assert.NoError(t, err)
		assert.Equal(t, "pi_1_secret", intent.ClientSecret)
		mockClient.AssertExpectations(t)

		// Every intent carries a reference id for reconciliation.
		metadata := mockClient.Calls[0].Arguments.Get(4).(map[string]string)
		assert.NotEmpty(t, metadata["reference"])
	})

	t.Run("rejects invalid amounts before the remote call", func(t *testing.T) {
		tests := []struct {
			name   string
			amount string
		}{
			{"zero", "0"},
			{"negative", "-5.00"},
			{"sub-cent precision", "1.999"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockClient := new(MockPaymentClient)
				service := NewPaymentService(mockClient)

				intent, err := service.CreateIntent(context.Background(), decimal.RequireFromString(tt.amount), "usd", "")

				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				assert.Nil(t, intent)
				mockClient.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})
}
