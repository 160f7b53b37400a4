package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront-backend/config"
)

// AIService calls the generative-language API for the storefront's marketing
// widgets (chatbot replies, hero imagery, feature copy). Every caller must
// have a static fallback ready: an AI failure degrades the widget, never the
// page.
type AIService struct {
	config *config.Config
	client *http.Client
}

// NewAIService creates a new AI service
func NewAIService(cfg *config.Config) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: time.Duration(cfg.AITimeout) * time.Second},
	}
}

type aiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type aiPart struct {
	Text       string        `json:"text,omitempty"`
	InlineData *aiInlineData `json:"inlineData,omitempty"`
}

type aiContent struct {
	Parts []aiPart `json:"parts"`
	Role  string   `json:"role,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type generateContentRequest struct {
	Contents         []aiContent       `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content aiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateText asks the text model for a completion. The context cancels the
// in-flight request, so callers can abort on client disconnect.
func (s *AIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	response, err := s.generateContent(ctx, s.config.AITextModel, prompt, nil)
	if err != nil {
		return "", err
	}

	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", fmt.Errorf("no text candidates in response")
}

// GenerateImage asks the image model for a generated asset and returns it as
// a data URL suitable for direct embedding
func (s *AIService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	response, err := s.generateContent(ctx, s.config.AIImageModel, prompt, &generationConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return "", err
	}

	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data), nil
			}
		}
	}
	return "", fmt.Errorf("no image candidates in response")
}

func (s *AIService) generateContent(ctx context.Context, model, prompt string, genConfig *generationConfig) (*generateContentResponse, error) {
	if s.config.AIAPIKey == "" {
		return nil, fmt.Errorf("AI API key is not configured")
	}

	requestBody := generateContentRequest{
		Contents:         []aiContent{{Parts: []aiPart{{Text: prompt}}}},
		GenerationConfig: genConfig,
	}
	payload, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.config.AIBaseURL, model, s.config.AIAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI request returned status %d", resp.StatusCode)
	}

	var response generateContentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(response.Candidates) == 0 {
		return nil, fmt.Errorf("empty candidate list in response")
	}

	return &response, nil
}
