package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorPayload is the body of every failed resource request.
type ErrorPayload struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

// GatewayPayload is the body of OAuth and Drive gateway responses.
type GatewayPayload struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// JSONResponse sends payload as JSON with the given status
func JSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func ErrorResponse(w http.ResponseWriter, status int, detail string) {
	JSONResponse(w, status, ErrorPayload{Detail: detail})
}

func ValidationResponse(w http.ResponseWriter, errs map[string]string) {
	JSONResponse(w, http.StatusBadRequest, ErrorPayload{Detail: "Validation failed", Errors: errs})
}

func GatewayError(w http.ResponseWriter, status int, msg string, details any) {
	JSONResponse(w, status, GatewayPayload{Error: msg, Details: details})
}
