package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iwvelando/perspective-retraites/internal/calculator"
	"github.com/iwvelando/perspective-retraites/internal/config"
	"github.com/iwvelando/perspective-retraites/internal/session"
	"github.com/iwvelando/perspective-retraites/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	conf := config.Defaults()
	conf.Share.URL = "https://example.test/"
	cfg, err := NewConfig(conf)
	require.NoError(t, err)

	calc := calculator.New(zap.NewNop(), testutil.NewStore(t, nil), nil)
	return NewHandler(zap.NewNop(), calc, session.NewRegistry(100), cfg, "1.2.3")
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestHandleTemporalSuccess(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPost, "/api/temporal", map[string]string{"amount": "420 000 000 000"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode(t, rr)
	assert.NotEmpty(t, resp["sessionId"])
	assert.Equal(t, "temporal", resp["mode"])
	assert.Equal(t, float64(1), resp["calculationCount"])
	assert.Equal(t, false, resp["installPrompt"])

	result, ok := resp["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1 année", result["text"])
	assert.Equal(t, "de prestations retraites (2025).", resp["footer"])
}

func TestHandleTemporalExampleAndSessionReuse(t *testing.T) {
	h := newTestHandler(t)

	first := decode(t, doJSON(t, h, http.MethodPost, "/api/temporal", map[string]string{"exampleId": "rafale"}))
	id, _ := first["sessionId"].(string)
	require.NotEmpty(t, id)

	result := first["result"].(map[string]interface{})
	assert.Equal(t, "2 heures 5 minutes 13 secondes", result["text"])
	assert.Equal(t, "Un Rafale représente\u00a0:", first["header"])

	second := decode(t, doJSON(t, h, http.MethodPost, "/api/temporal", map[string]string{
		"sessionId": id,
		"amount":    "1000",
	}))
	assert.Equal(t, id, second["sessionId"])
	assert.Equal(t, float64(2), second["calculationCount"])
	assert.Equal(t, true, second["installPrompt"])
	assert.Equal(t, float64(2), second["totalCalculations"])
}

func TestHandleTemporalValidation(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		message string
	}{
		{name: "empty", amount: "", message: "Veuillez entrer un montant."},
		{name: "garbage", amount: "abc", message: "Veuillez entrer un montant valide."},
		{name: "negative", amount: "-5", message: "Veuillez entrer un montant valide."},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, h, http.MethodPost, "/api/temporal", map[string]string{"amount": tt.amount})
			require.Equal(t, http.StatusBadRequest, rr.Code)

			resp := decode(t, rr)
			assert.Equal(t, "amount", resp["field"])
			assert.Equal(t, tt.message, resp["message"])
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestHandleComparison(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPost, "/api/comparison", map[string]string{"price": "1", "period": "year"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode(t, rr)
	assert.Equal(t, "financial", resp["mode"])
	comparison := resp["comparison"].(map[string]interface{})
	assert.Equal(t, "420 milliards", comparison["formattedCount"])
	assert.Equal(t, "de fois", comparison["connector"])
	assert.Contains(t, resp["summary"], "420 milliards")
}

func TestHandleComparisonValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  map[string]string
		field string
	}{
		{name: "zero price", body: map[string]string{"price": "0"}, field: "object-price"},
		{name: "unknown period", body: map[string]string{"price": "10", "period": "fortnight"}, field: "time-period"},
		{name: "empty custom period", body: map[string]string{"price": "10", "period": "custom"}, field: "custom-period"},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, h, http.MethodPost, "/api/comparison", tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.field, decode(t, rr)["field"])
		})
	}
}

func TestHandleExamples(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodGet, "/api/examples", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode(t, rr)["examples"].([]interface{})
	assert.Len(t, list, len(testutil.Catalog()))

	rr = doJSON(t, h, http.MethodGet, "/api/examples/smic", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "un SMIC annuel net", decode(t, rr)["label"])

	rr = doJSON(t, h, http.MethodGet, "/api/examples/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/api/examples/random", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	picked, _ := decode(t, rr)["id"].(string)
	assert.NotNil(t, testutil.FindExample(testutil.Catalog(), picked))
}

func TestHandleShare(t *testing.T) {
	h := newTestHandler(t)

	first := decode(t, doJSON(t, h, http.MethodPost, "/api/temporal", map[string]string{"exampleId": "rafale"}))
	id := first["sessionId"].(string)

	rr := doJSON(t, h, http.MethodPost, "/api/share", map[string]string{"sessionId": id})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t,
		"J'ai calculé : un Rafale = 2 heures 5 minutes 13 secondes de retraites.\nÀ vous de tester sur https://example.test/",
		decode(t, rr)["message"])

	rr = doJSON(t, h, http.MethodPost, "/api/share", map[string]string{"sessionId": id, "mode": "financial"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = doJSON(t, h, http.MethodPost, "/api/share", map[string]string{"sessionId": "missing"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodPost, "/api/share", map[string]string{"sessionId": id, "mode": "bogus"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	for _, path := range []string{"/api/temporal", "/api/comparison", "/api/share"} {
		rr := doJSON(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, path)
	}
	rr := doJSON(t, h, http.MethodPost, "/api/version", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRequestBodyLimit(t *testing.T) {
	cfg, err := NewConfig(config.Defaults())
	require.NoError(t, err)
	cfg.SetBodySizeBytes(16)

	calc := calculator.New(zap.NewNop(), testutil.NewStore(t, nil), nil)
	h := NewHandler(zap.NewNop(), calc, nil, cfg, "")

	rr := doJSON(t, h, http.MethodPost, "/api/temporal", map[string]string{"amount": strings.Repeat("9", 64)})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestMalformedBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/temporal", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleVersionAndStatic(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", decode(t, rr)["version"])

	rr = doJSON(t, h, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Perspective retraites")
}
