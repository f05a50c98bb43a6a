package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadform/models"
	"leadform/services/attribution"
	"leadform/services/form"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubFlowService scripts FormFlowService responses per test.
type stubFlowService struct {
	startAttr  attribution.Params
	startPage  string
	resp       *models.FormSessionResponse
	err        error
	submitResp *models.FormSessionResponse
	submitErr  error
}

func (s *stubFlowService) StartSession(ctx context.Context, page string, attr attribution.Params) (*models.FormSessionResponse, error) {
	s.startPage = page
	s.startAttr = attr
	return s.resp, s.err
}

func (s *stubFlowService) GetSession(ctx context.Context, sessionID string) (*models.FormSessionResponse, error) {
	return s.resp, s.err
}

func (s *stubFlowService) UpdateFields(ctx context.Context, sessionID string, update models.FieldUpdate) (*models.FormSessionResponse, error) {
	return s.resp, s.err
}

func (s *stubFlowService) AdvanceStep(ctx context.Context, sessionID string) (*models.FormSessionResponse, error) {
	return s.resp, s.err
}

func (s *stubFlowService) ToggleCourse(ctx context.Context, sessionID, course string) (*models.FormSessionResponse, error) {
	return s.resp, s.err
}

func (s *stubFlowService) SetCustomCourse(ctx context.Context, sessionID, custom string) (*models.FormSessionResponse, error) {
	return s.resp, s.err
}

func (s *stubFlowService) Submit(ctx context.Context, sessionID string) (*models.FormSessionResponse, error) {
	return s.submitResp, s.submitErr
}

func newTestRouter(svc form.FormFlowService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewFormHandler(svc, form.NewPageRegistry(), zap.NewNop())
	r.POST("/api/forms/:page/session", h.StartSession)
	r.GET("/api/forms/session/:sessionID", h.GetSession)
	r.PUT("/api/forms/session/:sessionID", h.UpdateSession)
	r.POST("/api/forms/session/:sessionID/submit", h.Submit)
	return r
}

func sessionResp(step models.Step) *models.FormSessionResponse {
	return &models.FormSessionResponse{
		Session: &models.FormSession{SessionID: "s1", Page: "main", Step: step},
	}
}

func TestStartSessionReadsAttributionParams(t *testing.T) {
	svc := &stubFlowService{resp: sessionResp(models.StepContact)}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/forms/main/session?src=kakao&material=42&blog=b1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if svc.startPage != "main" {
		t.Errorf("page = %q", svc.startPage)
	}
	want := attribution.Params{Source: "kakao", Material: "42", Blog: "b1"}
	if svc.startAttr != want {
		t.Errorf("attribution params = %+v, want %+v", svc.startAttr, want)
	}
}

func TestSubmitSuccessReturnsTerminalStep(t *testing.T) {
	svc := &stubFlowService{submitResp: sessionResp(models.StepDone)}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/forms/session/s1/submit", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.FormSessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Session.Step != models.StepDone {
		t.Errorf("step = %d, want 3", resp.Session.Step)
	}
}

func TestSubmitFailureSurfacesServerMessage(t *testing.T) {
	svc := &stubFlowService{submitErr: form.NewSubmitError("이미 접수된 번호입니다")}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/forms/session/s1/submit", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "이미 접수된 번호입니다") {
		t.Errorf("server message missing from body: %s", w.Body.String())
	}
}

func TestSubmitIncompleteForm(t *testing.T) {
	svc := &stubFlowService{submitErr: form.ErrNotSubmittable}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/forms/session/s1/submit", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestSubmitInFlightConflict(t *testing.T) {
	svc := &stubFlowService{submitErr: form.ErrSubmitInFlight}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/forms/session/s1/submit", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	svc := &stubFlowService{err: form.ErrSessionNotFound}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/forms/session/unknown", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateSessionRejectsBadJSON(t *testing.T) {
	svc := &stubFlowService{resp: sessionResp(models.StepContact)}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/forms/session/s1", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
