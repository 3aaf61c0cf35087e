package mcpserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/stockmind/internal/agent"
	"github.com/kiosk404/stockmind/internal/inventory/client"
	"github.com/kiosk404/stockmind/internal/tools"
)

type auditTool struct {
	name string
}

var _ tool.InvokableTool = (*auditTool)(nil)

func (a *auditTool) Info(_ context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: a.name,
		Desc: "audit tool",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"reason": {Desc: "Why the audit runs.", Type: schema.String, Required: true},
		}),
	}, nil
}

func (a *auditTool) InvokableRun(_ context.Context, _ string, _ ...tool.Option) (string, error) {
	return `{"audited":true}`, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func newServer(t *testing.T, baseTools []tool.BaseTool) (*Server, *agent.Registry) {
	t.Helper()

	reg, err := agent.NewRegistry(context.Background(), baseTools)
	require.NoError(t, err)

	s, err := New(reg, testLogger())
	require.NoError(t, err)

	return s, reg
}

func TestServer_PublishesEveryRegistryTool(t *testing.T) {
	s, reg := newServer(t, tools.All(nil))

	published := s.Tools()
	infos := reg.Infos()
	require.Len(t, published, len(infos))

	for i, info := range infos {
		assert.Equal(t, info.Name, published[i].Name)
		assert.Equal(t, info.Desc, published[i].Description)
	}
}

func TestServer_SchemasCarryRegistryParameters(t *testing.T) {
	s, _ := newServer(t, tools.All(nil))

	var update *mcp.Tool
	for i := range s.Tools() {
		if s.Tools()[i].Name == tools.UpdateInventoryToolName {
			tl := s.Tools()[i]
			update = &tl
		}
	}
	require.NotNil(t, update)

	raw := string(update.RawInputSchema)
	assert.Contains(t, raw, `"item"`)
	assert.Contains(t, raw, `"change"`)
	assert.Contains(t, raw, `"required"`)
}

func TestServer_ExtraRegistryToolIsPublished(t *testing.T) {
	base := append(tools.All(nil), &auditTool{name: "audit_inventory"})
	s, reg := newServer(t, base)

	require.Len(t, s.Tools(), len(reg.Infos()))

	names := make([]string, 0, len(s.Tools()))
	for _, tl := range s.Tools() {
		names = append(names, tl.Name)
	}
	assert.Contains(t, names, "audit_inventory")
}

func TestServer_DispatchRoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tshirts":20,"pants":15}`))
	}))
	defer ts.Close()

	s, _ := newServer(t, tools.All(client.New(ts.URL)))

	req := mcp.CallToolRequest{}
	req.Params.Name = tools.GetInventoryToolName

	result, err := s.dispatch(tools.GetInventoryToolName)(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"tshirts":20`)
}

func TestServer_DispatchUnknownTool(t *testing.T) {
	s, _ := newServer(t, tools.All(nil))

	req := mcp.CallToolRequest{}
	req.Params.Name = "missing_tool"

	result, err := s.dispatch("missing_tool")(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
