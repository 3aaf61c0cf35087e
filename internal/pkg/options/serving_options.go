package options

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// ServingOptions holds the HTTP serving configuration shared by both
// services.
type ServingOptions struct {
	BindAddress     string `json:"bind-address"     mapstructure:"bind-address"`
	BindPort        int    `json:"bind-port"        mapstructure:"bind-port"`
	Mode            string `json:"mode"             mapstructure:"mode"`
	EnableProfiling bool   `json:"enable-profiling" mapstructure:"enable-profiling"`
}

func NewServingOptions(defaultPort int) *ServingOptions {
	return &ServingOptions{
		BindAddress: "127.0.0.1",
		BindPort:    defaultPort,
		Mode:        "release",
	}
}

// Addr returns the host:port string to listen on.
func (o *ServingOptions) Addr() string {
	return net.JoinHostPort(o.BindAddress, strconv.Itoa(o.BindPort))
}

func (o *ServingOptions) Validate() []error {
	var errs []error
	if o.BindPort < 1 || o.BindPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid bind port %d, must be between 1 and 65535", o.BindPort))
	}
	if o.Mode != "release" && o.Mode != "debug" && o.Mode != "test" {
		errs = append(errs, fmt.Errorf("invalid serving mode %q, must be 'release', 'debug' or 'test'", o.Mode))
	}
	return errs
}

func (o *ServingOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BindAddress, "serving.bind-address", o.BindAddress, "IP address to listen on.")
	fs.IntVar(&o.BindPort, "serving.bind-port", o.BindPort, "Port to listen on.")
	fs.StringVar(&o.Mode, "serving.mode", o.Mode, "Gin mode: 'release', 'debug' or 'test'.")
	fs.BoolVar(&o.EnableProfiling, "serving.enable-profiling", o.EnableProfiling, "Expose pprof endpoints under /debug/pprof.")
}
