package consultation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadform/models"
)

func TestSubmitConsultationSuccess(t *testing.T) {
	var received models.ConsultationRecord
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/consultations" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	record := models.ConsultationRecord{Name: "홍길동", Phone: "010-1234-5678", ClickSource: "홈페이지이름_카카오"}
	if err := client.SubmitConsultation(context.Background(), record); err != nil {
		t.Fatalf("SubmitConsultation failed: %v", err)
	}
	if received.Name != "홍길동" || received.ClickSource != "홈페이지이름_카카오" {
		t.Errorf("record not transmitted verbatim: %+v", received)
	}
}

func TestSubmitConsultationFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "이미 접수된 번호입니다"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.SubmitConsultation(context.Background(), models.ConsultationRecord{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status code = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "이미 접수된 번호입니다" {
		t.Errorf("server message not decoded: %q", apiErr.Message)
	}
}

func TestSubmitConsultationFailureWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.SubmitConsultation(context.Background(), models.ConsultationRecord{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "" {
		t.Errorf("message should be empty when the body has none, got %q", apiErr.Message)
	}
}
