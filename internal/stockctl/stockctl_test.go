package stockctl

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := NewStockCtlCommand(IOStreams{In: bytes.NewReader(nil), Out: out, ErrOut: out})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/process_query", r.URL.Path)
		_, _ = w.Write([]byte(`{"response":"You have 20 tshirts."}`))
	}))
	defer ts.Close()

	out, err := runCommand(t, "query", "--server", ts.URL, "how many tshirts?")
	require.NoError(t, err)
	assert.Contains(t, out, "You have 20 tshirts.")
}

func TestQueryCommand_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"An internal server error occurred while processing your request."}`))
	}))
	defer ts.Close()

	_, err := runCommand(t, "query", "--server", ts.URL, "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal server error")
}

func TestInventoryGetCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tshirts":20,"pants":15}`))
	}))
	defer ts.Close()

	out, err := runCommand(t, "inventory", "get", "--server", ts.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "pants")
	assert.Contains(t, out, "20")
}

func TestInventoryUpdateCommand_RejectsNonIntegerChange(t *testing.T) {
	_, err := runCommand(t, "inventory", "update", "tshirts", "2.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer")
}

func TestOpenAPIConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "openapi.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"openapi":"3.1.0","info":{"title":"Inventory Service API"}}`), 0o644))

	out, err := runCommand(t, "openapi", "convert", input)
	require.NoError(t, err)
	assert.Contains(t, out, "openapi.yaml")

	converted, err := os.ReadFile(filepath.Join(dir, "openapi.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(converted), "openapi: 3.1.0")
	assert.Contains(t, string(converted), "Inventory Service API")
}
