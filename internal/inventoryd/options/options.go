// Package options defines the inventoryd configuration surface.
package options

import (
	"fmt"

	"github.com/spf13/pflag"

	genericoptions "github.com/kiosk404/stockmind/internal/pkg/options"
)

// Options is the full inventoryd configuration.
type Options struct {
	Serving *genericoptions.ServingOptions `json:"serving" mapstructure:"serving"`
	Log     *genericoptions.LogOptions     `json:"log"     mapstructure:"log"`
	Store   *StoreOptions                  `json:"store"   mapstructure:"store"`
}

// StoreOptions configures the in-memory inventory store.
type StoreOptions struct {
	// Initial is the seed stock, e.g. tshirts=20,pants=15.
	Initial map[string]int `json:"initial" mapstructure:"initial"`

	// StrictItems rejects updates for items outside the seed set (422).
	// When false, unknown items are auto-created at zero.
	StrictItems bool `json:"strict-items" mapstructure:"strict-items"`
}

func NewStoreOptions() *StoreOptions {
	return &StoreOptions{
		Initial:     map[string]int{"tshirts": 20, "pants": 15},
		StrictItems: true,
	}
}

func (o *StoreOptions) Validate() []error {
	var errs []error
	for item, count := range o.Initial {
		if count < 0 {
			errs = append(errs, fmt.Errorf("initial stock for %q is negative (%d)", item, count))
		}
	}
	return errs
}

func (o *StoreOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringToIntVar(&o.Initial, "store.initial", o.Initial, "Seed stock as item=count pairs.")
	fs.BoolVar(&o.StrictItems, "store.strict-items", o.StrictItems, "Reject updates for items outside the seed set.")
}

func NewOptions() *Options {
	return &Options{
		Serving: genericoptions.NewServingOptions(8000),
		Log:     genericoptions.NewLogOptions(),
		Store:   NewStoreOptions(),
	}
}

func (o *Options) Validate() []error {
	var errs []error
	errs = append(errs, o.Serving.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	errs = append(errs, o.Store.Validate()...)
	return errs
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.Serving.AddFlags(fs)
	o.Log.AddFlags(fs)
	o.Store.AddFlags(fs)
}
