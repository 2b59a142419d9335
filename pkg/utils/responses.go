package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every JSON response the service writes.
// Errors carries per-field validation messages and is omitted otherwise.
type Envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(env)
}

// ResponseSuccess writes 200 with data.
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	writeEnvelope(w, http.StatusOK, Envelope{Status: true, Message: message, Data: data})
}

// ResponseCreated writes 201 with data.
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	writeEnvelope(w, http.StatusCreated, Envelope{Status: true, Message: message, Data: data})
}

// ResponseError writes a failed envelope. 5xx messages are replaced with a
// generic text so driver errors never reach the client.
func ResponseError(w http.ResponseWriter, code int, message string, fieldErrors map[string]string) {
	if code >= http.StatusInternalServerError {
		message = "Internal server error"
	}
	writeEnvelope(w, code, Envelope{Message: message, Errors: fieldErrors})
}
