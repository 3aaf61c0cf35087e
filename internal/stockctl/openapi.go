package stockctl

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kiosk404/stockmind/internal/pkg/json"
)

var openapiExample = heredoc.Doc(`
		# Convert an exported OpenAPI document to YAML next to the input
		stockctl openapi convert openapi.json

		# Write the YAML to a chosen path
		stockctl openapi convert openapi.json --output docs/openapi.yaml
`)

type OpenAPIOptions struct {
	Output string

	IOStreams
}

func NewCmdOpenAPI(streams IOStreams) *cobra.Command {
	o := &OpenAPIOptions{IOStreams: streams}

	cmd := &cobra.Command{
		Use:     "openapi",
		Short:   "Work with OpenAPI documents",
		Example: openapiExample,
		Run:     runHelp,
	}

	convert := &cobra.Command{
		Use:   "convert <openapi.json>",
		Short: "Convert an OpenAPI JSON document to YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.RunConvert(args[0])
		},
	}
	convert.Flags().StringVarP(&o.Output, "output", "o", "", "Output path (defaults to the input with a .yaml extension).")

	cmd.AddCommand(convert)

	return cmd
}

func (o *OpenAPIOptions) RunConvert(input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("render YAML: %w", err)
	}

	output := o.Output
	if output == "" {
		output = strings.TrimSuffix(input, ".json") + ".yaml"
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(o.Out, "%s converted to %s\n", input, output)

	return nil
}
