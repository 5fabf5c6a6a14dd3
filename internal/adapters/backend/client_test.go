package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ppalog/internal/config"
	"ppalog/internal/core/domain"
	"ppalog/test/mocks"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *mocks.CredStoreMock) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creds := mocks.NewCredStoreMock()
	cfg := &config.Config{APIBaseURL: server.URL, RequestTimeout: 5 * time.Second}
	return NewClient(cfg, creds, nil, nil), creds
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`[]`))
	}))
	creds.Seed("tok-123")

	if _, err := client.ListLogs(context.Background(), 0, 0); err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestClient_NoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	if _, err := client.ListLogs(context.Background(), 0, 0); err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClient_ListLogsQueryParams(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	if _, err := client.ListLogs(context.Background(), 2026, 3); err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if gotQuery != "month=3&year=2026" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestClient_ListLogsUnfilteredHasNoQuery(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	if _, err := client.ListLogs(context.Background(), 0, 0); err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("query = %q, want none", gotQuery)
	}
}

func TestClient_DecodesDailyLog(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id": "l1",
			"date": "2026-03-14",
			"description": "Deployed the reporting service",
			"hours": 7.5,
			"status": "rejected",
			"approvalRecord": {
				"decision": "Rejected",
				"comment": "Missing timesheet",
				"approvedAt": "2026-03-15T09:30:00Z",
				"supervisorName": "Mrs. Okafor"
			}
		}]`))
	}))

	logs, err := client.ListLogs(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	log := logs[0]
	if log.Status != domain.StatusRejected {
		t.Errorf("status = %q", log.Status)
	}
	if want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC); !log.Date.Equal(want) {
		t.Errorf("date = %v, want %v", log.Date, want)
	}
	if log.Approval == nil || log.Approval.Comment != "Missing timesheet" {
		t.Errorf("approval = %+v", log.Approval)
	}
	if log.Approval.Decision != domain.DecisionRejected {
		t.Errorf("decision = %q", log.Approval.Decision)
	}
}

func TestClient_FieldErrorsDecoded(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "validation failed", "errors": {"hours": ["must be at most 24"]}}`))
	}))

	_, err := client.CreateLog(context.Background(), domain.CreateLogRequest{
		Date:        time.Now(),
		Description: "A long enough description",
		Hours:       99,
	})
	var re *domain.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RequestError", err)
	}
	if re.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", re.StatusCode)
	}
	if got := re.Fields["hours"]; len(got) != 1 || got[0] != "must be at most 24" {
		t.Errorf("fields = %v", re.Fields)
	}
}

func TestClient_UnauthorizedMapsToAuthError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "token expired"}`))
	}))

	_, err := client.CurrentUser(context.Background())
	var ae *domain.AuthError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want AuthError", err)
	}
	if ae.Message != "token expired" {
		t.Errorf("message = %q", ae.Message)
	}
}

func TestClient_NotFoundMapsToNotFoundError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	err := client.DeleteLog(context.Background(), "nope")
	var nfe *domain.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestClient_BusinessFailuresDoNotTripBreaker(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "log not found"}`))
			return
		}
		w.Write([]byte(`[]`))
	}))

	// Three consecutive 4xx outcomes: the backend is answering, so the
	// breaker must stay closed.
	for i := 0; i < 3; i++ {
		err := client.DeleteLog(context.Background(), "stale-id")
		var nfe *domain.NotFoundError
		if !errors.As(err, &nfe) {
			t.Fatalf("delete %d: err = %v, want NotFoundError", i, err)
		}
	}

	if _, err := client.ListLogs(context.Background(), 0, 0); err != nil {
		t.Fatalf("healthy request after 4xxs: %v", err)
	}
}

func TestClient_TransportFailureMapsToNetworkError(t *testing.T) {
	creds := mocks.NewCredStoreMock()
	cfg := &config.Config{APIBaseURL: "http://127.0.0.1:1", RequestTimeout: time.Second}
	client := NewClient(cfg, creds, nil, nil)

	_, err := client.ListLogs(context.Background(), 0, 0)
	var ne *domain.NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("err = %v, want NetworkError", err)
	}
}

func TestClient_JoinCodePathEscaped(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"isValid": true}`))
	}))

	ok, err := client.ValidateJoinCode(context.Background(), "PPA-9F3A21")
	if err != nil {
		t.Fatalf("ValidateJoinCode: %v", err)
	}
	if !ok {
		t.Error("code should validate")
	}
	if gotPath != "/ppa/validate/PPA-9F3A21" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestClient_LoginMapsProfile(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"token": "tok-123",
			"user": {
				"id": "u1",
				"name": "Ada",
				"role": "corps_member",
				"profile": {"ppaId": "p1", "ppa": "Tech Hub", "supervisorName": "Mrs. Okafor"}
			}
		}`))
	}))

	auth, err := client.Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if auth.Token != "tok-123" {
		t.Errorf("token = %q", auth.Token)
	}
	if auth.Identity.Role != domain.RoleCorpsMember {
		t.Errorf("role = %q", auth.Identity.Role)
	}
	if auth.Identity.PPAName != "Tech Hub" {
		t.Errorf("ppa = %q", auth.Identity.PPAName)
	}
}

func TestClient_MonthlyReportPDFPassesBytesThrough(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake body")
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))

	data, err := client.MonthlyReportPDF(context.Background(), "u1", 2026, 3)
	if err != nil {
		t.Fatalf("MonthlyReportPDF: %v", err)
	}
	if string(data) != string(pdf) {
		t.Errorf("body = %q", data)
	}
	if gotQuery != "month=3&userId=u1&year=2026" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestClient_CreateLogSendsDateOnly(t *testing.T) {
	var gotBody string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Write([]byte(`{"id": "l1", "date": "2026-03-14", "status": "Draft"}`))
	}))

	_, err := client.CreateLog(context.Background(), domain.CreateLogRequest{
		Date:        time.Date(2026, 3, 14, 16, 45, 0, 0, time.UTC),
		Description: "Wrote the deployment runbook",
		Hours:       5,
		IsDraft:     true,
	})
	if err != nil {
		t.Fatalf("CreateLog: %v", err)
	}
	want := `"date":"2026-03-14"`
	if !strings.Contains(gotBody, want) {
		t.Errorf("body %q missing %q", gotBody, want)
	}
}
