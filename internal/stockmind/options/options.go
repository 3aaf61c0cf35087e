// Package options defines the stockmind configuration surface.
package options

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/pflag"

	genericoptions "github.com/kiosk404/stockmind/internal/pkg/options"
)

// Options is the full stockmind configuration.
type Options struct {
	Serving *genericoptions.ServingOptions `json:"serving" mapstructure:"serving"`
	Log     *genericoptions.LogOptions     `json:"log"     mapstructure:"log"`
	Model   *genericoptions.ModelOptions   `json:"models"  mapstructure:"models"`
	Agent   *AgentOptions                  `json:"agent"   mapstructure:"agent"`
}

// AgentOptions configures the query processing loop.
type AgentOptions struct {
	// MaxTurns caps model calls per query.
	MaxTurns int `json:"max-turns" mapstructure:"max-turns"`

	// InventoryURL is the base URL of the inventory service.
	InventoryURL string `json:"inventory-url" mapstructure:"inventory-url"`

	// RequestTimeout bounds each inventory HTTP call.
	RequestTimeout time.Duration `json:"request-timeout" mapstructure:"request-timeout"`
}

func NewAgentOptions() *AgentOptions {
	inventoryURL := os.Getenv("INVENTORY_SERVICE_URL")
	if inventoryURL == "" {
		inventoryURL = "http://127.0.0.1:8000"
	}

	return &AgentOptions{
		MaxTurns:       10,
		InventoryURL:   inventoryURL,
		RequestTimeout: 5 * time.Second,
	}
}

func (o *AgentOptions) Validate() []error {
	var errs []error
	if o.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("agent.max-turns must be positive, got %d", o.MaxTurns))
	}
	if _, err := url.ParseRequestURI(o.InventoryURL); err != nil {
		errs = append(errs, fmt.Errorf("invalid agent.inventory-url %q: %w", o.InventoryURL, err))
	}
	if o.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("agent.request-timeout must be positive, got %v", o.RequestTimeout))
	}
	return errs
}

func (o *AgentOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.MaxTurns, "agent.max-turns", o.MaxTurns, "Maximum model calls per query.")
	fs.StringVar(&o.InventoryURL, "agent.inventory-url", o.InventoryURL, "Base URL of the inventory service.")
	fs.DurationVar(&o.RequestTimeout, "agent.request-timeout", o.RequestTimeout, "Timeout for each inventory service call.")
}

func NewOptions() *Options {
	return &Options{
		Serving: genericoptions.NewServingOptions(8001),
		Log:     genericoptions.NewLogOptions(),
		Model:   genericoptions.NewModelOptions(),
		Agent:   NewAgentOptions(),
	}
}

func (o *Options) Validate() []error {
	var errs []error
	errs = append(errs, o.Serving.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	errs = append(errs, o.Model.Validate()...)
	errs = append(errs, o.Agent.Validate()...)
	return errs
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.Serving.AddFlags(fs)
	o.Log.AddFlags(fs)
	o.Model.AddFlags(fs)
	o.Agent.AddFlags(fs)
}
