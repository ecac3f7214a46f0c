package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PaletteClient talks to a text-to-palette generation API: a description and
// mood go in, a list of color values comes out. The remote model is opaque.
type PaletteClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewPaletteClient creates a palette API client.
func NewPaletteClient(endpoint, apiKey string) *PaletteClient {
	return &PaletteClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type paletteRequest struct {
	Description string `json:"description"`
	Mood        string `json:"mood,omitempty"`
	Count       int    `json:"count"`
}

type paletteResponse struct {
	Colors []string `json:"colors"`
}

// Generate requests count colors for the given description and mood.
func (c *PaletteClient) Generate(ctx context.Context, description, mood string, count int) ([]string, error) {
	payload, err := json.Marshal(paletteRequest{
		Description: description,
		Mood:        mood,
		Count:       count,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal palette request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build palette request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("palette api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("palette api returned status %d", resp.StatusCode)
	}

	var out paletteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse palette response: %w", err)
	}
	if len(out.Colors) == 0 {
		return nil, fmt.Errorf("palette api returned no colors")
	}
	return out.Colors, nil
}
