package options

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ModelOptions selects and configures the chat model provider.
//
// The API key may be left empty in config, in which case it is resolved
// from the provider's conventional environment variable. A missing key is a
// startup failure, never a runtime one.
type ModelOptions struct {
	Provider    string  `json:"provider"    mapstructure:"provider"`
	Model       string  `json:"model"       mapstructure:"model"`
	APIKey      string  `json:"api-key"     mapstructure:"api-key"`
	BaseURL     string  `json:"base-url"    mapstructure:"base-url"`
	Temperature float64 `json:"temperature" mapstructure:"temperature"`
	MaxTokens   int     `json:"max-tokens"  mapstructure:"max-tokens"`
}

func NewModelOptions() *ModelOptions {
	return &ModelOptions{
		Provider:    ProviderGemini,
		Model:       "gemini-2.0-flash",
		Temperature: 0,
		MaxTokens:   4096,
	}
}

// ResolveAPIKey returns the configured key, falling back to the provider's
// environment variable.
func (o *ModelOptions) ResolveAPIKey() string {
	if o.APIKey != "" {
		return o.APIKey
	}
	switch o.Provider {
	case ProviderGemini:
		return os.Getenv("GOOGLE_API_KEY")
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	}
	return ""
}

func (o *ModelOptions) Validate() []error {
	var errs []error
	if o.Provider != ProviderGemini && o.Provider != ProviderOpenAI {
		errs = append(errs, fmt.Errorf("invalid model provider %q, must be 'gemini' or 'openai'", o.Provider))
	}
	if o.Model == "" {
		errs = append(errs, fmt.Errorf("model id is required"))
	}
	if o.ResolveAPIKey() == "" {
		errs = append(errs, fmt.Errorf("no API key for provider %q: set models.api-key or the provider environment variable", o.Provider))
	}
	return errs
}

func (o *ModelOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Provider, "models.provider", o.Provider, "Chat model provider: 'gemini' or 'openai'.")
	fs.StringVar(&o.Model, "models.model", o.Model, "Model ID to use for inference.")
	fs.StringVar(&o.APIKey, "models.api-key", o.APIKey, "Provider API key (falls back to GOOGLE_API_KEY / OPENAI_API_KEY).")
	fs.StringVar(&o.BaseURL, "models.base-url", o.BaseURL, "Override the provider base URL.")
	fs.Float64Var(&o.Temperature, "models.temperature", o.Temperature, "Sampling temperature.")
	fs.IntVar(&o.MaxTokens, "models.max-tokens", o.MaxTokens, "Maximum completion tokens.")
}
