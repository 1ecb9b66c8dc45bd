package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/idilsaglam/prata/internal/config"
	"github.com/idilsaglam/prata/internal/core"
	"go.uber.org/zap"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1"
	defaultAnthropicModel   = "claude-sonnet-4-5"
	anthropicVersion        = "2023-06-01"
	anthropicMaxRetries     = 3
)

// AnthropicClient is the Anthropic backend, speaking the Messages API with
// tool-use content blocks.
type AnthropicClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

// NewAnthropicClient builds the Anthropic backend from config.
func NewAnthropicClient(cfg config.Config, log *zap.Logger) *AnthropicClient {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultAnthropicModel
	}
	return &AnthropicClient{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout(),
		},
		log: log,
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	Tools     []anthropicTool    `json:"tools,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema"`
}

type anthropicContentBlock struct {
	Type  string         `json:"type"`
	Text  string         `json:"text,omitempty"`
	ID    string         `json:"id,omitempty"`
	Name  string         `json:"name,omitempty"`
	Input map[string]any `json:"input,omitempty"`
}

type anthropicResponse struct {
	Content    []anthropicContentBlock `json:"content"`
	StopReason string                  `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Translate implements Translator.
func (c *AnthropicClient) Translate(ctx context.Context, input string, store core.Store) (Translation, error) {
	if c.apiKey == "" {
		return Translation{}, fmt.Errorf("no Anthropic API key configured (set ANTHROPIC_API_KEY or api_key in ~/.prata/config.yaml)")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	reqBody := anthropicRequest{
		Model:     c.model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: promptContext(store) + "\n\nUser: " + input},
		},
		Tools: anthropicTools(),
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return Translation{}, fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= anthropicMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Translation{}, ctx.Err()
			case <-time.After(time.Duration(1<<uint(attempt-1)) * time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
		if err != nil {
			return Translation{}, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", anthropicVersion)

		c.log.Debug("anthropic request", zap.String("model", c.model), zap.Int("attempt", attempt))
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("transient API error (status %d)", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return Translation{}, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
		}

		var parsed anthropicResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return Translation{}, fmt.Errorf("parse response: %w", err)
		}
		if parsed.Error != nil {
			return Translation{}, fmt.Errorf("API error: %s", parsed.Error.Message)
		}
		return decodeAnthropicContent(parsed.Content), nil
	}
	return Translation{}, lastErr
}

func decodeAnthropicContent(blocks []anthropicContentBlock) Translation {
	var calls []ToolCall
	var reply strings.Builder
	for _, block := range blocks {
		switch block.Type {
		case "text":
			reply.WriteString(block.Text)
		case "tool_use":
			calls = append(calls, ToolCall{Name: block.Name, Args: block.Input})
		}
	}
	return Translation{
		Actions: decodeCalls(calls),
		Reply:   strings.TrimSpace(reply.String()),
	}
}

func anthropicTools() []anthropicTool {
	tools := make([]anthropicTool, 0, len(toolSpecs))
	for _, spec := range toolSpecs {
		props := make(map[string]any, len(spec.params))
		required := []string{}
		for _, p := range spec.params {
			prop := map[string]any{
				"type":        "string",
				"description": p.desc,
			}
			if len(p.enum) > 0 {
				prop["enum"] = p.enum
			}
			props[p.name] = prop
			if p.required {
				required = append(required, p.name)
			}
		}
		tools = append(tools, anthropicTool{
			Name:        spec.name,
			Description: spec.desc,
			InputSchema: map[string]any{
				"type":       "object",
				"properties": props,
				"required":   required,
			},
		})
	}
	return tools
}
