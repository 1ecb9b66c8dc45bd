package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/idilsaglam/prata/internal/config"
	"github.com/idilsaglam/prata/internal/core"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient is the Gemini backend, using native function calling.
type GeminiClient struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGeminiClient builds the Gemini backend from config.
func NewGeminiClient(ctx context.Context, cfg config.Config, log *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no Gemini API key configured (set GEMINI_API_KEY or api_key in ~/.prata/config.yaml)")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model, log: log}, nil
}

// Translate implements Translator.
func (c *GeminiClient) Translate(ctx context.Context, input string, store core.Store) (Translation, error) {
	prompt := promptContext(store) + "\n\nUser: " + input
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Tools: []*genai.Tool{
			{FunctionDeclarations: geminiDeclarations()},
		},
		Temperature: genai.Ptr[float32](0),
	}

	c.log.Debug("gemini request", zap.String("model", c.model), zap.Int("prompt_len", len(prompt)))
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genCfg)
	if err != nil {
		return Translation{}, fmt.Errorf("gemini request: %w", err)
	}

	calls := make([]ToolCall, 0)
	for _, fc := range resp.FunctionCalls() {
		calls = append(calls, ToolCall{Name: fc.Name, Args: fc.Args})
	}
	c.log.Debug("gemini response", zap.Int("tool_calls", len(calls)))

	return Translation{
		Actions: decodeCalls(calls),
		Reply:   strings.TrimSpace(resp.Text()),
	}, nil
}

func geminiDeclarations() []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(toolSpecs))
	for _, spec := range toolSpecs {
		props := make(map[string]*genai.Schema, len(spec.params))
		var required []string
		for _, p := range spec.params {
			props[p.name] = &genai.Schema{
				Type:        genai.TypeString,
				Description: p.desc,
				Enum:        p.enum,
			}
			if p.required {
				required = append(required, p.name)
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        spec.name,
			Description: spec.desc,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   required,
			},
		})
	}
	return decls
}
