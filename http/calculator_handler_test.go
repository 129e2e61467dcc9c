package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/repository"
	"fincalc/service"
)

func newTestRouter(t *testing.T, limit int) http.Handler {
	store := repository.NewMemoryCounter()
	t.Cleanup(store.Stop)

	limiter := NewRateLimiter(store, limit, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	handler := NewCalculatorHandler(service.NewCalculatorService(nil), nil)
	return NewRouter(handler, limiter, nil)
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateHandler_OK(t *testing.T) {
	router := newTestRouter(t, 100)

	w := postJSON(router, "/calculate/emi", `{
		"loanAmount": "200000",
		"interestRate": "8",
		"tenure": "20"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Mode    string             `json:"mode"`
		Result  map[string]float64 `json:"result"`
		Display map[string]string  `json:"display"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "emi", resp.Mode)
	assert.Equal(t, 1672.88, resp.Result["monthlyPayment"])
	assert.Equal(t, "201491.23", resp.Display["totalInterest"])
}

func TestCalculateHandler_AcceptsNumbersAndDefaults(t *testing.T) {
	router := newTestRouter(t, 100)

	w := postJSON(router, "/calculate/gst", `{"amount": 1000, "gstRate": null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Display map[string]string `json:"display"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "180.00", resp.Display["gstAmount"])
}

func TestCalculateHandler_InvalidNumber(t *testing.T) {
	router := newTestRouter(t, 100)

	w := postJSON(router, "/calculate/simple-interest", `{"principal": "abc", "rate": "5", "time": "3"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errorResponse{Error: "Please enter valid numbers", Field: "principal", Value: "abc"}, resp)
}

func TestCalculateHandler_ZeroFrequency(t *testing.T) {
	router := newTestRouter(t, 100)

	w := postJSON(router, "/calculate/compound-interest",
		`{"principal": "1000", "rate": "5", "time": "2", "compoundFrequency": "0"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "compoundFrequency", resp.Field)
}

func TestCalculateHandler_OverflowingEMI(t *testing.T) {
	router := newTestRouter(t, 100)

	w := postJSON(router, "/calculate/emi", `{"loanAmount": "1e308", "interestRate": "0", "tenure": "1e-10"}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errorResponse{Error: "Please enter valid numbers", Field: "tenure", Value: "1e-10"}, resp)
}

func TestCalculateHandler_UnknownMode(t *testing.T) {
	router := newTestRouter(t, 100)

	w := postJSON(router, "/calculate/mortgage", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, 100)

	req := httptest.NewRequest(http.MethodGet, "/calculate/emi", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateHandler_BadRequest(t *testing.T) {
	router := newTestRouter(t, 100)

	w := postJSON(router, "/calculate/emi", `{invalid-json}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateHandler_UnsupportedMediaType(t *testing.T) {
	router := newTestRouter(t, 100)

	req := httptest.NewRequest(http.MethodPost, "/calculate/emi", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestScheduleHandler(t *testing.T) {
	router := newTestRouter(t, 100)

	w := postJSON(router, "/calculate/emi/schedule", `{"loanAmount": "120000", "interestRate": "0", "tenure": "10"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Installments []map[string]float64 `json:"installments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Installments, 120)
	assert.Equal(t, 1000.0, resp.Installments[0]["payment"])
	assert.Equal(t, 0.0, resp.Installments[119]["remainingBalance"])
}

func TestListModesHandler(t *testing.T) {
	router := newTestRouter(t, 100)

	req := httptest.NewRequest(http.MethodGet, "/calculators", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var modes []struct {
		Mode string `json:"mode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &modes))
	require.Len(t, modes, 4)
	assert.Equal(t, "simple-interest", modes[0].Mode)
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(t, 2)

	body := `{"amount": "1000"}`
	assert.Equal(t, http.StatusOK, postJSON(router, "/calculate/gst", body).Code)
	assert.Equal(t, http.StatusOK, postJSON(router, "/calculate/gst", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, postJSON(router, "/calculate/gst", body).Code)
}
