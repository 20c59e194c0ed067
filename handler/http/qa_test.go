package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	httpHdlr "docqa/handler/http"
	"docqa/src/core/docqa"
)

type stubService struct {
	answers []string
	err     error
	calls   int
	healthy bool
}

func (s *stubService) Answer(ctx context.Context, documentURL string, questions []string) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.answers != nil {
		return s.answers, nil
	}
	answers := make([]string, len(questions))
	return answers, nil
}

func (s *stubService) CheckHealth(context.Context) docqa.HealthStatus {
	if s.healthy {
		return docqa.HealthStatus{Status: "healthy", Components: map[string]string{"generator": "up"}}
	}
	return docqa.HealthStatus{Status: "unhealthy", Components: map[string]string{"generator": "down"}}
}

const testToken = "test-secret-token"

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	httpHdlr.NewHandler(svc, testToken, 10).RegisterRoutes(r)
	return r
}

func doRun(r *gin.Engine, token string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/hackrx/run", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func questions(n int) []string {
	qs := make([]string, n)
	for i := range qs {
		qs[i] = "What is the grace period?"
	}
	return qs
}

func TestRunHappyPath(t *testing.T) {
	svc := &stubService{answers: []string{"thirty days", ""}}
	r := newTestRouter(svc)

	w := doRun(r, testToken, gin.H{
		"documents": "http://example.com/policy.pdf",
		"questions": questions(2),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp httpHdlr.RunResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(resp.Answers))
	}
	if resp.Answers[0] != "thirty days" || resp.Answers[1] != "" {
		t.Errorf("answers = %v", resp.Answers)
	}
}

func TestRunAuth(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "wrong token", token: "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			r := newTestRouter(svc)

			w := doRun(r, tt.token, gin.H{
				"documents": "http://example.com/policy.pdf",
				"questions": questions(1),
			})

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if svc.calls != 0 {
				t.Errorf("service called %d times, want 0", svc.calls)
			}
		})
	}
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{name: "too many questions", body: gin.H{"documents": "http://example.com/a.pdf", "questions": questions(11)}},
		{name: "no questions", body: gin.H{"documents": "http://example.com/a.pdf", "questions": []string{}}},
		{name: "blank question", body: gin.H{"documents": "http://example.com/a.pdf", "questions": []string{"  "}}},
		{name: "missing documents", body: gin.H{"questions": questions(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			r := newTestRouter(svc)

			w := doRun(r, testToken, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
			if svc.calls != 0 {
				t.Errorf("pipeline invoked %d times before validation, want 0", svc.calls)
			}
		})
	}
}

func TestRunFatalPipelineErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "fetch error", err: &docqa.FetchError{URL: "http://example.com/a.pdf", Err: errors.New("connection refused")}, want: http.StatusBadRequest},
		{name: "extraction error", err: &docqa.ExtractionError{Err: errors.New("corrupt PDF")}, want: http.StatusBadRequest},
		{name: "unexpected error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubService{err: tt.err})

			w := doRun(r, testToken, gin.H{
				"documents": "http://example.com/a.pdf",
				"questions": questions(1),
			})

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tt := range []struct {
		healthy bool
		want    int
	}{
		{healthy: true, want: http.StatusOK},
		{healthy: false, want: http.StatusServiceUnavailable},
	} {
		r := newTestRouter(&stubService{healthy: tt.healthy})
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("healthy=%v status = %d, want %d", tt.healthy, w.Code, tt.want)
		}
	}
}

func TestStatusEndpoint(t *testing.T) {
	r := newTestRouter(&stubService{})

	for _, path := range []string{"/status", "/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, w.Code)
		}
	}
}
