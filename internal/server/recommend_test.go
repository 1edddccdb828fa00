package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type providerFunc func(ctx context.Context, system, prompt string) (string, error)

func (f providerFunc) Complete(ctx context.Context, system, prompt string) (string, error) {
	return f(ctx, system, prompt)
}

func doRecommend(t *testing.T, h *RecommendHandler, contentType, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return rec, h.Recommend(e.NewContext(req, rec))
}

func testLogger() *log.Logger { return log.New(log.Writer(), "[test] ", 0) }

func TestRecommendParsesFencedReply(t *testing.T) {
	h := &RecommendHandler{
		Logger: testLogger(),
		Gemini: providerFunc(func(_ context.Context, _, prompt string) (string, error) {
			if !strings.Contains(prompt, "write me a blog about Go") {
				t.Errorf("prompt missing user text: %q", prompt)
			}
			return "```json\n{\"content_type\":\"blog\",\"recommended_agent\":\"blogging\",\"available_agents\":[\"blogging\"],\"confidence_score\":0.9,\"is_relevant\":true}\n```", nil
		}),
	}

	rec, err := doRecommend(t, h, echo.MIMEApplicationJSON, `{"prompt":"write me a blog about Go"}`)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out Recommendation
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.RecommendedAgent != "blogging" || !out.IsRelevant || out.ConfidenceScore != 0.9 {
		t.Fatalf("unexpected recommendation: %+v", out)
	}
}

func TestRecommendFallsBackOnProviderError(t *testing.T) {
	h := &RecommendHandler{
		Logger: testLogger(),
		Gemini: providerFunc(func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("quota")
		}),
	}
	rec, err := doRecommend(t, h, echo.MIMEApplicationJSON, `{"prompt":"hello"}`)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var out Recommendation
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.RecommendedAgent != "unrelated" || out.IsRelevant {
		t.Fatalf("expected unrelated fallback, got %+v", out)
	}
	if len(out.AvailableAgents) == 0 {
		t.Fatal("fallback must list available agents")
	}
}

func TestRecommendFallsBackOnUnparseableReply(t *testing.T) {
	h := &RecommendHandler{
		Logger: testLogger(),
		Gemini: providerFunc(func(_ context.Context, _, _ string) (string, error) {
			return "sorry, I cannot help with that", nil
		}),
	}
	rec, err := doRecommend(t, h, echo.MIMEApplicationJSON, `{"prompt":"hello"}`)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var out Recommendation
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.RecommendedAgent != "unrelated" {
		t.Fatalf("expected unrelated fallback, got %+v", out)
	}
}

func TestRecommendValidation(t *testing.T) {
	h := &RecommendHandler{Logger: testLogger()}

	rec, err := doRecommend(t, h, echo.MIMETextPlain, `{"prompt":"x"}`)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", rec.Code)
	}

	rec, err = doRecommend(t, h, echo.MIMEApplicationJSON, `{"prompt":""}`)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
