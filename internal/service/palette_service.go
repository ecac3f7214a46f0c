package service

import (
	"context"
	"fmt"

	apperrors "portfolio/internal/errors"
)

const (
	defaultPaletteSize = 5
	maxPaletteSize     = 10
)

// PaletteGenerator is implemented by integration.PaletteClient.
type PaletteGenerator interface {
	Generate(ctx context.Context, description, mood string, count int) ([]string, error)
}

// PaletteService fronts the text-to-palette generation API.
type PaletteService interface {
	Generate(ctx context.Context, description, mood string, count int) ([]string, error)
}

type paletteService struct {
	client PaletteGenerator
}

// NewPaletteService creates a new palette service.
func NewPaletteService(client PaletteGenerator) PaletteService {
	return &paletteService{client: client}
}

// Generate requests a palette of count colors. Count zero means the default
// size; anything outside 1..10 is rejected before the remote call.
func (s *paletteService) Generate(ctx context.Context, description, mood string, count int) ([]string, error) {
	if count == 0 {
		count = defaultPaletteSize
	}
	if count < 1 || count > maxPaletteSize {
		return nil, apperrors.ErrInvalidPalette
	}

	colors, err := s.client.Generate(ctx, description, mood, count)
	if err != nil {
		return nil, fmt.Errorf("generate palette: %w", err)
	}
	return colors, nil
}
