package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseErrorHidesServerErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, http.StatusInternalServerError, "dial tcp 10.0.0.5:5432: connection refused", nil)

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusInternalServerError || env.Status {
		t.Fatalf("status = %d %v", rec.Code, env.Status)
	}
	if env.Message != "Internal server error" {
		t.Fatalf("message = %q, want generic text", env.Message)
	}
}

func TestResponseErrorKeepsFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, http.StatusBadRequest, "Validation failed", map[string]string{"SeatID": "This field is required"})

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Message != "Validation failed" || env.Errors["SeatID"] != "This field is required" {
		t.Fatalf("envelope = %+v", env)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestResponseSuccessOmitsErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseSuccess(rec, "success", map[string]int{"available_count": 2})

	var raw map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if _, present := raw["errors"]; present {
		t.Fatalf("errors key present in %s", rec.Body.String())
	}
	if raw["status"] != true {
		t.Fatalf("status = %v", raw["status"])
	}
}
