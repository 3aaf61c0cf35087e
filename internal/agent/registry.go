package agent

import (
	"context"
	"fmt"
	"sort"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/kiosk404/stockmind/internal/agent/errno"
)

// Registry holds the tools available to the agent, indexed by name.
type Registry struct {
	tools map[string]tool.InvokableTool
	infos []*schema.ToolInfo
}

// NewRegistry builds a registry from the given tools. Every tool must be
// invokable and carry a unique name.
func NewRegistry(ctx context.Context, tools []tool.BaseTool) (*Registry, error) {
	if len(tools) == 0 {
		return nil, errno.ErrNoToolsAvailable
	}

	r := &Registry{
		tools: make(map[string]tool.InvokableTool, len(tools)),
		infos: make([]*schema.ToolInfo, 0, len(tools)),
	}

	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("read tool info: %w", err)
		}

		invokable, ok := t.(tool.InvokableTool)
		if !ok {
			return nil, fmt.Errorf("tool %q is not invokable", info.Name)
		}
		if _, exists := r.tools[info.Name]; exists {
			return nil, fmt.Errorf("%w: %s", errno.ErrDuplicateTool, info.Name)
		}

		r.tools[info.Name] = invokable
		r.infos = append(r.infos, info)
	}

	return r, nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (tool.InvokableTool, bool) {
	t, ok := r.tools[name]

	return t, ok
}

// Infos returns the tool metadata to bind to the chat model.
func (r *Registry) Infos() []*schema.ToolInfo {
	return r.infos
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
