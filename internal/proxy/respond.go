package proxy

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the standard error shape for all proxy errors.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeResponse writes the upstream response payload wrapped in the
// familiar {"response": ...} envelope.
func writeResponse(w http.ResponseWriter, response json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"response":`))
	if len(response) == 0 {
		w.Write([]byte("null"))
	} else {
		w.Write(response)
	}
	w.Write([]byte("}"))
}

// writeError sends a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	resp := errorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
