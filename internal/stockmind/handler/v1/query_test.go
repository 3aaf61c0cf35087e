package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/stockmind/internal/agent/errno"
	"github.com/kiosk404/stockmind/internal/pkg/json"
)

type stubProcessor struct {
	answer string
	err    error
	seen   string
}

func (s *stubProcessor) ProcessQuery(_ context.Context, query string) (string, error) {
	s.seen = query
	if s.err != nil {
		return "", s.err
	}

	return s.answer, nil
}

func newQueryRouter(p QueryProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	engine := gin.New()
	engine.POST("/process_query", NewQueryHandler(p, log).Process)

	return engine
}

func postQuery(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/process_query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestQueryHandler_Success(t *testing.T) {
	p := &stubProcessor{answer: "You have 20 tshirts."}
	w := postQuery(t, newQueryRouter(p), `{"query":"how many tshirts?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "how many tshirts?", p.seen)

	var resp QueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "You have 20 tshirts.", resp.Response)
}

func TestQueryHandler_MissingQuery(t *testing.T) {
	w := postQuery(t, newQueryRouter(&stubProcessor{}), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryHandler_MalformedBody(t *testing.T) {
	w := postQuery(t, newQueryRouter(&stubProcessor{}), `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryHandler_EmptyQueryError(t *testing.T) {
	p := &stubProcessor{err: errno.ErrEmptyQuery}
	w := postQuery(t, newQueryRouter(p), `{"query":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryHandler_MaxTurnsExceeded(t *testing.T) {
	p := &stubProcessor{err: errno.ErrMaxTurnsExceeded}
	w := postQuery(t, newQueryRouter(p), `{"query":"loop forever"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail, "allowed number of steps")
}

func TestQueryHandler_InternalError(t *testing.T) {
	p := &stubProcessor{err: errors.New("model exploded")}
	w := postQuery(t, newQueryRouter(p), `{"query":"hello"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "An internal server error occurred while processing your request.", resp.Detail)
	assert.NotContains(t, resp.Detail, "model exploded")
}
