package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/btcc-fantasy/league-engine/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		reason string
	}{
		{fmt.Errorf("%w: bad", usecase.ErrInvalidInput), http.StatusBadRequest, "invalidInput"},
		{fmt.Errorf("%w: missing", usecase.ErrNotFound), http.StatusNotFound, "notFound"},
		{fmt.Errorf("%w: nope", usecase.ErrUnauthorized), http.StatusUnauthorized, "unauthorized"},
		{fmt.Errorf("%w: event x", usecase.ErrEventNotLocked), http.StatusConflict, "preconditionFailed"},
		{fmt.Errorf("%w: event x", usecase.ErrAlreadyLocked), http.StatusConflict, "preconditionFailed"},
		{fmt.Errorf("%w: event x", usecase.ErrResultsMissing), http.StatusConflict, "preconditionFailed"},
		{fmt.Errorf("%w: event x", usecase.ErrNoEntries), http.StatusConflict, "preconditionFailed"},
		{errors.New("boom"), http.StatusInternalServerError, "internalError"},
	}

	for _, tc := range cases {
		mapped := mapError(tc.err)
		if mapped.HTTPStatus != tc.status {
			t.Fatalf("error %v: expected status %d, got %d", tc.err, tc.status, mapped.HTTPStatus)
		}
		if mapped.Reason != tc.reason {
			t.Fatalf("error %v: expected reason %s, got %s", tc.err, tc.reason, mapped.Reason)
		}
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(t.Context(), rec, fmt.Errorf("%w: event e1", usecase.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type: %s", ct)
	}

	var envelope googleResponseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("unexpected apiVersion: %s", envelope.APIVersion)
	}
	if envelope.Error == nil || envelope.Error.Status != "NOT_FOUND" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(t.Context(), rec, http.StatusOK, map[string]int{"total": 42})

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var envelope struct {
		APIVersion string         `json:"apiVersion"`
		Data       map[string]int `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Data["total"] != 42 {
		t.Fatalf("unexpected data: %+v", envelope.Data)
	}
}
