package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"fincalc/calculator"
	"fincalc/domain"
	"fincalc/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

type CalculatorHandler struct {
	service *service.CalculatorService
	logger  *zap.Logger
}

func NewCalculatorHandler(service *service.CalculatorService, logger *zap.Logger) *CalculatorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculatorHandler{service: service, logger: logger}
}

// Calculate serves POST /calculate/{mode}.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	mode, ok := calculator.LookupMode(r.PathValue("mode"))
	if !ok {
		writeError(w, h.logger, http.StatusNotFound, errorResponse{Error: "unknown calculator mode"})
		return
	}

	raw, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}

	result, err := h.service.Calculate(mode, raw)
	if err != nil {
		h.writeCalculationError(w, err)
		return
	}

	h.writeJSON(w, result)
}

// Schedule serves POST /calculate/emi/schedule.
func (h *CalculatorHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}

	schedule, err := h.service.Schedule(raw)
	if err != nil {
		h.writeCalculationError(w, err)
		return
	}

	h.writeJSON(w, schedule)
}

// ListModes serves GET /calculators.
func (h *CalculatorHandler) ListModes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, calculator.Modes())
}

func (h *CalculatorHandler) decodeInputs(w http.ResponseWriter, r *http.Request) (domain.RawInputSet, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return nil, false
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Debug("invalid request body", zap.Error(err))
		writeError(w, h.logger, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return nil, false
	}

	return rawInputs(body), true
}

// rawInputs accepts both JSON strings and bare numbers; null leaves the
// field absent so defaults apply.
func rawInputs(body map[string]json.RawMessage) domain.RawInputSet {
	raw := make(domain.RawInputSet, len(body))
	for name, value := range body {
		text := strings.TrimSpace(string(value))
		if text == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			text = s
		}
		raw[name] = text
	}
	return raw
}

func (h *CalculatorHandler) writeCalculationError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidNumberError
	if errors.As(err, &invalid) {
		writeError(w, h.logger, http.StatusBadRequest, errorResponse{
			Error: domain.UserMessage,
			Field: invalid.Field,
			Value: invalid.Value,
		})
		return
	}

	h.logger.Error("calculation failed", zap.Error(err))
	writeError(w, h.logger, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (h *CalculatorHandler) writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error("error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("error writing response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, body errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("error writing error response", zap.Error(err))
	}
}
