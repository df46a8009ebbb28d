package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aalvaropc/formdraft/internal/domain"
)

func sampleDraft() domain.Draft {
	return domain.Draft{
		FirstName:   "John",
		LastName:    "Brown",
		Age:         "45",
		Address:     "123 Main St",
		PlaceOfWork: "Google",
		JobTitle:    "Software Engineer",
		PhoneNumber: "1234567890",
		LinkedIn:    "https://linkedin.com/in/john",
	}
}

func TestSubmitter_PostsDraftAsJSON(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/submit" {
			t.Errorf("expected /api/submit, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content-type, got %q", ct)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Form submission received"}`))
	}))
	defer server.Close()

	ack, err := NewSubmitter(server.URL+"/api/submit").Submit(context.Background(), sampleDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ack.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", ack.StatusCode)
	}
	if ack.Message != "Form submission received" {
		t.Fatalf("unexpected ack message %q", ack.Message)
	}

	want, _ := json.Marshal(sampleDraft())
	if string(gotBody) != string(want) {
		t.Fatalf("unexpected body:\n got=%s\nwant=%s", gotBody, want)
	}
}

func TestSubmitter_Non2xxIsSubmitError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
	}))
	defer server.Close()

	_, err := NewSubmitter(server.URL).Submit(context.Background(), sampleDraft())
	if err == nil {
		t.Fatalf("expected error")
	}

	var se *domain.SubmitError
	if !errors.As(err, &se) {
		t.Fatalf("expected SubmitError, got %T", err)
	}
	if se.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", se.StatusCode)
	}
	if !errors.Is(err, domain.ErrSubmitRejected) {
		t.Fatalf("expected ErrSubmitRejected in chain")
	}
}

func TestSubmitter_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewSubmitter(url).Submit(context.Background(), sampleDraft())
	var se *domain.SubmitError
	if !errors.As(err, &se) {
		t.Fatalf("expected SubmitError, got %v", err)
	}
	if se.StatusCode != 0 {
		t.Fatalf("transport failures carry no status, got %d", se.StatusCode)
	}
}

func TestBuildSubmitRequest_RejectsBadEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "   ", "not-a-url", "/api/submit"} {
		_, err := BuildSubmitRequest(context.Background(), endpoint, sampleDraft())
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Errorf("endpoint %q: expected invalid config, got %v", endpoint, err)
		}
	}
}

func TestAckMessage(t *testing.T) {
	cases := map[string]string{
		`{"message":"ok"}`: "ok",
		`{"message":42}`:   "",
		`{"other":"x"}`:    "",
		`not json`:         "",
		``:                 "",
	}
	for body, want := range cases {
		if got := ackMessage([]byte(body)); got != want {
			t.Errorf("ackMessage(%q) = %q, want %q", body, got, want)
		}
	}
}
