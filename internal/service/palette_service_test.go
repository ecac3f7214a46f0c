package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "portfolio/internal/errors"
)

// MockPaletteClient is a mock implementation of PaletteGenerator.
type MockPaletteClient struct {
	mock.Mock
}

func (m *MockPaletteClient) Generate(ctx context.Context, description, mood string, count int) ([]string, error) {
	args := m.Called(ctx, description, mood, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestPaletteService_Generate(t *testing.T) {
	t.Run("zero count uses the default size", func(t *testing.T) {
		mockClient := new(MockPaletteClient)
		mockClient.On("Generate", mock.Anything, "ocean sunset", "calm", defaultPaletteSize).
			Return([]string{"#0A3D62", "#3C6382", "#E58E26", "#F8C291", "#FAD390"}, nil)

		service := NewPaletteService(mockClient)
		colors, err := service.Generate(context.Background(), "ocean sunset", "calm", 0)

		assert.NoError(t, err)
		assert.Len(t, colors, 5)
		mockClient.AssertExpectations(t)
	})

	t.Run("count out of range is rejected locally", func(t *testing.T) {
		for _, count := range []int{-1, 11, 100} {
			mockClient := new(MockPaletteClient)
			service := NewPaletteService(mockClient)

			colors, err := service.Generate(context.Background(), "ocean sunset", "", count)

			assert.ErrorIs(t, err, apperrors.ErrInvalidPalette)
			assert.Nil(t, colors)
			mockClient.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})
}
