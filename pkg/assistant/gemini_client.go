package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"Resep-HPP/domain"
	"Resep-HPP/internal/utils"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type (
	GeminiClient interface {
		GenerateText(ctx context.Context, prompt string) (string, error)
	}

	geminiClient struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}
)

// NewGeminiClient reads GEMINI_API_KEY and GEMINI_MODEL from config.
func NewGeminiClient() GeminiClient {
	return NewGeminiClientWithURL(utils.GetConfig("GEMINI_API_KEY"), utils.GetConfig("GEMINI_MODEL"), geminiBaseURL)
}

func NewGeminiClientWithURL(apiKey, model, baseURL string) GeminiClient {
	return &geminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" || g.model == "" {
		return "", domain.ErrGeminiNotConfigured
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.2,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %s - %s", domain.ErrGeminiAPIFailed, resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailed, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiAPIFailed
	}
	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}

// extractJSON cuts the outermost JSON value delimited by first and last out of
// a model reply that may carry markdown fences or prose around it.
func extractJSON(text string, first, last byte) (string, error) {
	start := strings.IndexByte(text, first)
	end := strings.LastIndexByte(text, last)
	if start == -1 || end == -1 || start > end {
		return "", fmt.Errorf("%w: invalid response format", domain.ErrGeminiAPIFailed)
	}
	return text[start : end+1], nil
}
