package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Generator produces the human-readable alert text for a shortage. It is an
// external collaborator and may fail; callers must treat failure as
// non-fatal.
type Generator interface {
	Describe(ctx context.Context, name, category string, stock, threshold int) (string, error)
}

// HTTPGenerator delegates text generation to a remote service (an LLM
// endpoint in the original deployment).
type HTTPGenerator struct {
	URL    string
	Client *http.Client
}

type describeRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
}

type describeResponse struct {
	Text string `json:"text"`
}

func (g *HTTPGenerator) Describe(ctx context.Context, name, category string, stock, threshold int) (string, error) {
	body, err := json.Marshal(describeRequest{Name: name, Category: category, Stock: stock, Threshold: threshold})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := g.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("alert generator: status %d", resp.StatusCode)
	}

	var out describeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Text == "" {
		return "", fmt.Errorf("alert generator: empty text")
	}
	return out.Text, nil
}

// TemplateGenerator is the local default when no generator endpoint is
// configured.
type TemplateGenerator struct{}

func (TemplateGenerator) Describe(_ context.Context, name, category string, stock, threshold int) (string, error) {
	return fmt.Sprintf("URGENT: stock of %q (%s) is low: %d left, threshold is %d. Restock soon.",
		name, category, stock, threshold), nil
}
