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
)

const (
	openaiBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultModel  = "gpt-4o-mini"

	rewritePrompt = "Rewrite the assistant answer for clarity and brevity. Keep facts unchanged, no extra claims, max 90 words."
)

// WordingEnhancer rewrites deterministic assistant text through an external
// language model. It is strictly cosmetic: callers must fall back to the
// original text on any error.
type WordingEnhancer struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewWordingEnhancer(apiKey, model string) *WordingEnhancer {
	if model == "" {
		model = defaultModel
	}
	return &WordingEnhancer{
		apiKey:  apiKey,
		model:   model,
		baseURL: openaiBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Enhance sends baseText for a rewrite and returns the rewritten wording.
func (e *WordingEnhancer) Enhance(ctx context.Context, baseText string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       e.model,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: rewritePrompt},
			{Role: "user", Content: baseText},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error marshaling rewrite request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error building rewrite request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling rewrite service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("rewrite service returned status %d", resp.StatusCode)
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("error decoding rewrite response: %w", err)
	}

	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("rewrite service returned no choices")
	}

	rewritten := strings.TrimSpace(payload.Choices[0].Message.Content)
	if rewritten == "" {
		return "", fmt.Errorf("rewrite service returned empty content")
	}

	return rewritten, nil
}
