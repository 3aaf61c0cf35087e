// Package tools exposes the inventory operations as eino tools the
// chat model can call.
package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/kiosk404/stockmind/internal/inventory"
	"github.com/kiosk404/stockmind/internal/inventory/client"
	"github.com/kiosk404/stockmind/internal/pkg/json"
)

const (
	GetInventoryToolName    = "get_inventory"
	UpdateInventoryToolName = "update_inventory"
)

// toolError is the payload returned to the model when an inventory call
// fails. Business and transport failures are surfaced as tool content so
// the model can explain them, not as Go errors.
type toolError struct {
	Error struct {
		StatusCode int    `json:"status_code"`
		Detail     string `json:"detail"`
	} `json:"error"`
}

func errContent(statusErr *client.StatusError) (string, error) {
	var payload toolError
	payload.Error.StatusCode = statusErr.StatusCode
	payload.Error.Detail = statusErr.Detail

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func snapshotContent(snapshot inventory.Snapshot) (string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// GetInventoryTool reports the current stock counts.
type GetInventoryTool struct {
	client *client.Client
}

var _ tool.InvokableTool = (*GetInventoryTool)(nil)

func NewGetInventoryTool(c *client.Client) *GetInventoryTool {
	return &GetInventoryTool{client: c}
}

func (t *GetInventoryTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        GetInventoryToolName,
		Desc:        "Returns the current inventory counts for every item as a JSON object.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
	}, nil
}

func (t *GetInventoryTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	snapshot, err := t.client.Fetch(ctx)
	if err != nil {
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) {
			return errContent(statusErr)
		}

		return "", fmt.Errorf("fetch inventory: %w", err)
	}

	return snapshotContent(snapshot)
}

// UpdateInventoryTool adjusts the count of a single item.
type UpdateInventoryTool struct {
	client *client.Client
}

var _ tool.InvokableTool = (*UpdateInventoryTool)(nil)

func NewUpdateInventoryTool(c *client.Client) *UpdateInventoryTool {
	return &UpdateInventoryTool{client: c}
}

func (t *UpdateInventoryTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: UpdateInventoryToolName,
		Desc: "Adjusts the count of an inventory item by a signed amount. " +
			"Use a positive change to add stock and a negative change to remove stock.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"item": {
				Desc:     "The inventory item to adjust.",
				Type:     schema.String,
				Required: true,
			},
			"change": {
				Desc:     "The signed amount to adjust the count by.",
				Type:     schema.Integer,
				Required: true,
			},
		}),
	}, nil
}

type updateArgs struct {
	Item   string      `json:"item"`
	Change json.Number `json:"change"`
}

func (t *UpdateInventoryTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	var args updateArgs
	if err := json.Unmarshal([]byte(argumentsInJSON), &args); err != nil {
		return "", fmt.Errorf("unmarshal update_inventory arguments: %w", err)
	}
	if args.Item == "" {
		return "", errors.New("update_inventory requires a non-empty item")
	}

	change, err := args.Change.Int64()
	if err != nil {
		return "", fmt.Errorf("update_inventory requires an integer change, got %q", args.Change.String())
	}

	snapshot, err := t.client.Apply(ctx, args.Item, int(change))
	if err != nil {
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) {
			return errContent(statusErr)
		}

		return "", fmt.Errorf("update inventory: %w", err)
	}

	return snapshotContent(snapshot)
}

// All returns every inventory tool bound to the given client.
func All(c *client.Client) []tool.BaseTool {
	return []tool.BaseTool{
		NewGetInventoryTool(c),
		NewUpdateInventoryTool(c),
	}
}
