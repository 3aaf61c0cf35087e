package stockctl

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kiosk404/stockmind/internal/pkg/json"
)

var queryExample = heredoc.Doc(`
		# Ask about current stock
		stockctl query "how many tshirts do we have?"

		# Sell items in natural language
		stockctl query "I sold 3 pants today"

		# Talk to a stockmind server on another host
		stockctl query --server http://10.0.0.5:8001 "sell half of the tshirts"
`)

type QueryOptions struct {
	Server  string
	Timeout time.Duration

	IOStreams
}

func NewCmdQuery(streams IOStreams) *cobra.Command {
	o := &QueryOptions{
		Server:    "http://127.0.0.1:8001",
		Timeout:   120 * time.Second,
		IOStreams: streams,
	}

	cmd := &cobra.Command{
		Use:                   "query [message]",
		DisableFlagsInUseLine: true,
		Short:                 "Send a natural language query to the stockmind server",
		Example:               queryExample,
		Args:                  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(args[0])
		},
	}

	cmd.Flags().StringVar(&o.Server, "server", o.Server, "Stockmind HTTP server address.")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", o.Timeout, "Time to wait for the agent's answer.")

	return cmd
}

func (o *QueryOptions) Run(query string) error {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return err
	}

	hc := &http.Client{Timeout: o.Timeout}
	resp, err := hc.Post(strings.TrimRight(o.Server, "/")+"/process_query", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not reach the stockmind server: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, errResp.Detail)
		}

		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var queryResp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(data, &queryResp); err != nil {
		return fmt.Errorf("malformed server response: %w", err)
	}

	fmt.Fprintln(o.Out, color.CyanString(queryResp.Response))

	return nil
}
