// Package app builds command line applications from an options struct,
// a cobra command and viper-backed config binding.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CliOptions abstracts the configuration of an application.
type CliOptions interface {
	AddFlags(fs *pflag.FlagSet)
	Validate() []error
}

// RunFunc is the application's entry point, called after flag parsing,
// config binding and option validation.
type RunFunc func(basename string) error

type App struct {
	name        string
	basename    string
	description string
	options     CliOptions
	runFunc     RunFunc
	noConfig    bool
	commands    []*cobra.Command
	cmd         *cobra.Command
}

type Option func(*App)

func WithOptions(opts CliOptions) Option {
	return func(a *App) { a.options = opts }
}

func WithRunFunc(run RunFunc) Option {
	return func(a *App) { a.runFunc = run }
}

func WithDescription(desc string) Option {
	return func(a *App) { a.description = desc }
}

// WithNoConfig skips the --config flag and config file loading.
func WithNoConfig() Option {
	return func(a *App) { a.noConfig = true }
}

// WithCommands attaches extra subcommands to the root command.
func WithCommands(cmds ...*cobra.Command) Option {
	return func(a *App) { a.commands = append(a.commands, cmds...) }
}

func NewApp(name string, basename string, opts ...Option) *App {
	a := &App{
		name:     name,
		basename: basename,
	}
	for _, o := range opts {
		o(a)
	}
	a.buildCommand()

	return a
}

func (a *App) buildCommand() {
	cmd := &cobra.Command{
		Use:           a.basename,
		Short:         a.name,
		Long:          a.description,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	cmd.Flags().SortFlags = true

	// Options go on the persistent set so subcommands share them.
	if a.options != nil {
		a.options.AddFlags(cmd.PersistentFlags())
	}
	if !a.noConfig {
		cmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file.")
	}

	if a.runFunc != nil {
		cmd.RunE = a.runCommand
	}
	cmd.AddCommand(a.commands...)

	a.cmd = cmd
}

// Command exposes the underlying cobra command, mainly for tests.
func (a *App) Command() *cobra.Command {
	return a.cmd
}

func (a *App) runCommand(cmd *cobra.Command, args []string) error {
	if a.options != nil {
		if err := a.bindOptions(cmd); err != nil {
			return err
		}
		if errs := a.options.Validate(); len(errs) != 0 {
			return joinErrors(errs)
		}
	}

	if a.runFunc != nil {
		return a.runFunc(a.basename)
	}

	return nil
}

// bindOptions overlays config file values and environment variables on
// top of the defaults, then lets explicit flags win.
func (a *App) bindOptions(cmd *cobra.Command) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	v.SetEnvPrefix(strings.ToUpper(a.basename))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if !a.noConfig {
		if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("read config file %s: %w", cfgFile, err)
			}
		}
	}

	return v.Unmarshal(a.options)
}

func joinErrors(errs []error) error {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Run executes the application and exits on error.
func (a *App) Run() {
	if err := a.cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
