// Package llm constructs chat models from configuration.
package llm

import (
	"context"
	"fmt"

	"github.com/bytedance/gg/gptr"
	einoGemini "github.com/cloudwego/eino-ext/components/model/gemini"
	einoOpenAI "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"github.com/kiosk404/stockmind/internal/pkg/options"
)

// BuildChatModel creates the chat model for the configured provider.
func BuildChatModel(ctx context.Context, opts *options.ModelOptions) (model.BaseChatModel, error) {
	switch opts.Provider {
	case options.ProviderGemini:
		return buildGemini(ctx, opts)
	case options.ProviderOpenAI:
		return buildOpenAI(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown model provider %q", opts.Provider)
	}
}

func buildGemini(ctx context.Context, opts *options.ModelOptions) (model.BaseChatModel, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  opts.ResolveAPIKey(),
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	cfg := &einoGemini.Config{
		Client:      client,
		Model:       opts.Model,
		Temperature: gptr.Of(float32(opts.Temperature)),
	}
	if opts.MaxTokens > 0 {
		cfg.MaxTokens = gptr.Of(opts.MaxTokens)
	}

	return einoGemini.NewChatModel(ctx, cfg)
}

func buildOpenAI(ctx context.Context, opts *options.ModelOptions) (model.BaseChatModel, error) {
	temperature := float32(opts.Temperature)
	cfg := &einoOpenAI.ChatModelConfig{
		Model:       opts.Model,
		APIKey:      opts.ResolveAPIKey(),
		Temperature: &temperature,
	}
	if opts.MaxTokens > 0 {
		cfg.MaxTokens = gptr.Of(opts.MaxTokens)
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	return einoOpenAI.NewChatModel(ctx, cfg)
}
