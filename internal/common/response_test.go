package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONDataWrapsPayload(t *testing.T) {
	rr := httptest.NewRecorder()
	JSONData(rr, http.StatusOK, map[string]any{"refreshed": true})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	var body struct {
		Data map[string]bool `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Data["refreshed"] {
		t.Fatalf("expected payload under data, got %s", rr.Body.String())
	}
}

func TestWriteErrorHonoursAppError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, NewAppError("NOT_FOUND", "delivery method not found", http.StatusNotFound, errors.New("missing")))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	var body struct {
		Error ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Code != "NOT_FOUND" {
		t.Fatalf("unexpected code %q", body.Error.Code)
	}
}

func TestWriteErrorDefaultsToInternal(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("boom"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
	var body struct {
		Error ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Code != "INTERNAL" {
		t.Fatalf("unexpected code %q", body.Error.Code)
	}
	if body.Error.Message == "boom" {
		t.Fatal("internal error detail must not leak to the client")
	}
}
