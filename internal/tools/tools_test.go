package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/stockmind/internal/inventory/client"
	"github.com/kiosk404/stockmind/internal/pkg/json"
)

func newToolServer(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return client.New(ts.URL)
}

func TestGetInventoryTool_Info(t *testing.T) {
	info, err := NewGetInventoryTool(nil).Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, GetInventoryToolName, info.Name)
}

func TestGetInventoryTool_ReturnsSnapshot(t *testing.T) {
	c := newToolServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tshirts":20,"pants":15}`))
	})

	out, err := NewGetInventoryTool(c).InvokableRun(context.Background(), "{}")
	require.NoError(t, err)

	var snapshot map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &snapshot))
	assert.Equal(t, map[string]int{"tshirts": 20, "pants": 15}, snapshot)
}

func TestUpdateInventoryTool_AppliesChange(t *testing.T) {
	c := newToolServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"tshirts":25,"pants":15}`))
	})

	out, err := NewUpdateInventoryTool(c).InvokableRun(context.Background(), `{"item":"tshirts","change":5}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"tshirts":25`)
}

func TestUpdateInventoryTool_BusinessRejectionBecomesContent(t *testing.T) {
	c := newToolServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Cannot reduce tshirts count below zero. Current: 20, Attempted change: -25"}`))
	})

	out, err := NewUpdateInventoryTool(c).InvokableRun(context.Background(), `{"item":"tshirts","change":-25}`)
	require.NoError(t, err)

	var payload struct {
		Error struct {
			StatusCode int    `json:"status_code"`
			Detail     string `json:"detail"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, http.StatusBadRequest, payload.Error.StatusCode)
	assert.Contains(t, payload.Error.Detail, "Cannot reduce tshirts count below zero")
}

func TestUpdateInventoryTool_ServerDownBecomesContent(t *testing.T) {
	c := client.New("http://127.0.0.1:1")

	out, err := NewUpdateInventoryTool(c).InvokableRun(context.Background(), `{"item":"tshirts","change":1}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"status_code":503`)
	assert.Contains(t, out, "could not connect to the inventory service")
}

func TestUpdateInventoryTool_RejectsFractionalChange(t *testing.T) {
	_, err := NewUpdateInventoryTool(nil).InvokableRun(context.Background(), `{"item":"tshirts","change":1.5}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer change")
}

func TestUpdateInventoryTool_RejectsMissingItem(t *testing.T) {
	_, err := NewUpdateInventoryTool(nil).InvokableRun(context.Background(), `{"change":1}`)
	require.Error(t, err)
}

func TestAll(t *testing.T) {
	all := All(nil)
	require.Len(t, all, 2)

	names := make([]string, 0, len(all))
	for _, tl := range all {
		info, err := tl.Info(context.Background())
		require.NoError(t, err)
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{GetInventoryToolName, UpdateInventoryToolName}, names)
}
