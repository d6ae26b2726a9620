package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/greenlyfe/greenlyfe-backend/internal/advice"
	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
	"github.com/greenlyfe/greenlyfe-backend/pkg/types"
)

type stubAdviceProvider struct {
	text string
	err  error
}

func (s stubAdviceProvider) Recommend(ctx context.Context, req advice.Request) (string, error) {
	return s.text, s.err
}

func postAdvice(t *testing.T, provider advice.Provider, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := Advice(provider, testLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAdviceSuccess(t *testing.T) {
	rec := postAdvice(t, stubAdviceProvider{text: "Recomendo a quinoa."},
		`{"dietary_needs":"Preciso de mais proteína vegetal","preferences":"Prefiro grãos e sementes"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data adviceResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode advice response: %v", err)
	}
	if envelope.Data.Advice != "Recomendo a quinoa." {
		t.Fatalf("unexpected advice %q", envelope.Data.Advice)
	}
}

func TestAdviceRejectsShortFields(t *testing.T) {
	rec := postAdvice(t, stubAdviceProvider{text: "nunca chega aqui"},
		`{"dietary_needs":"curto","preferences":"Prefiro grãos e sementes"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR, got %s", body.Error.Code)
	}
}

func TestAdviceUnavailableCarriesNotice(t *testing.T) {
	rec := postAdvice(t, advice.Disabled{},
		`{"dietary_needs":"Preciso de mais proteína vegetal","preferences":"Prefiro grãos e sementes"}`)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var body types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodeAdviceUnavailable) {
		t.Fatalf("expected ADVICE_UNAVAILABLE, got %s", body.Error.Code)
	}
	if !body.Error.Retryable {
		t.Fatal("advice unavailability must be retryable")
	}
	details, ok := body.Error.Details.(map[string]any)
	if !ok || details["notice"] != advice.FallbackNotice {
		t.Fatalf("expected fallback notice in details, got %v", body.Error.Details)
	}
}

func TestAdviceRejectsMalformedBody(t *testing.T) {
	rec := postAdvice(t, stubAdviceProvider{}, `{"dietary_needs":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}
