package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/ports/secondary"
)

func testSession() *models.Session {
	return &models.Session{
		Token: "test-token",
		User:  models.User{ID: "u1", Username: "citizen", Role: "user"},
	}
}

func newTestClient(t *testing.T, handler http.Handler, session *models.Session) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, session)
}

func TestUploadImageSendsMultipartWithAuth(t *testing.T) {
	var gotAuth, gotFilename string
	var gotData []byte

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/uploads" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("missing image part: %v", err)
		}
		defer file.Close()
		gotFilename = header.Filename
		gotData, _ = io.ReadAll(file)

		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.net/i/abc.jpg"})
	}), testSession())

	url, err := client.UploadImage(context.Background(), []byte("jpegdata"), "damage.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("UploadImage failed: %v", err)
	}

	if url != "https://cdn.example.net/i/abc.jpg" {
		t.Errorf("unexpected url: %s", url)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotFilename != "damage.jpg" {
		t.Errorf("expected filename damage.jpg, got %q", gotFilename)
	}
	if string(gotData) != "jpegdata" {
		t.Errorf("payload not transported intact: %q", gotData)
	}
}

func TestUploadImageWithoutSession(t *testing.T) {
	client := NewClient("http://localhost:0", time.Second, nil)

	_, err := client.UploadImage(context.Background(), []byte("x"), "a.jpg", "image/jpeg")
	if !errors.Is(err, secondary.ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired, got %v", err)
	}
}

func TestCreateReport(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/reports" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(models.Report{
			ID:       "rep-1",
			Category: "Flooding",
			Status:   "Unverified",
			ImageURL: gotBody["image_url"].(string),
		})
	}), testSession())

	report, err := client.CreateReport(context.Background(), secondary.CreateReportRequest{
		Category:    "Flooding",
		Severity:    "High",
		Description: "street underwater",
		Latitude:    35.7,
		Longitude:   51.4,
		ImageURL:    "https://cdn.example.net/i/abc.jpg",
	})
	if err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}

	if report.ID != "rep-1" {
		t.Errorf("unexpected report id: %s", report.ID)
	}
	if gotBody["category"] != "Flooding" || gotBody["severity"] != "High" {
		t.Errorf("fields not transported: %+v", gotBody)
	}
	if gotBody["latitude"].(float64) != 35.7 {
		t.Errorf("latitude not transported: %v", gotBody["latitude"])
	}
}

func TestCreateReportMapsUnauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
	}), testSession())

	_, err := client.CreateReport(context.Background(), secondary.CreateReportRequest{})
	if !errors.Is(err, secondary.ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired, got %v", err)
	}
}

func TestCreateReportMapsBackendValidation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "severity must be Low, Medium, or High"})
	}), testSession())

	_, err := client.CreateReport(context.Background(), secondary.CreateReportRequest{})
	if !errors.Is(err, secondary.ErrBackendValidation) {
		t.Errorf("expected ErrBackendValidation, got %v", err)
	}
}

func TestNetworkFailureMapsToErrNetwork(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, time.Second, testSession())

	_, err := client.Stats(context.Background())
	if !errors.Is(err, secondary.ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}

func TestListReportsWithBounds(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("min_lat") != "35.5" || q.Get("max_lng") != "51.6" {
			t.Errorf("bounds not transported: %v", q)
		}
		json.NewEncoder(w).Encode([]*models.Report{{ID: "rep-1"}, {ID: "rep-2"}})
	}), testSession())

	reports, err := client.ListReports(context.Background(), &models.MapBounds{
		MinLat: 35.5, MaxLat: 35.9, MinLng: 51.2, MaxLng: 51.6,
	})
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(reports) != 2 {
		t.Errorf("expected 2 reports, got %d", len(reports))
	}
}

func TestGetReportNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Report not found"})
	}), testSession())

	_, err := client.GetReport(context.Background(), "missing")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateReportStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/reports/rep-1/status" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(models.Report{ID: "rep-1", Status: body["status"]})
	}), testSession())

	report, err := client.UpdateReportStatus(context.Background(), "rep-1", models.StatusVerified)
	if err != nil {
		t.Fatalf("UpdateReportStatus failed: %v", err)
	}
	if report.Status != "Verified" {
		t.Errorf("expected Verified, got %s", report.Status)
	}
}

func TestLoginDoesNotRequireSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not send a bearer token")
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "citizen" {
			t.Errorf("credentials not transported: %v", body)
		}
		json.NewEncoder(w).Encode(models.Session{
			Token: "fresh-token",
			User:  models.User{Username: "citizen", Role: "user"},
		})
	}), nil)

	sess, err := client.Login(context.Background(), "citizen", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if sess.Token != "fresh-token" {
		t.Errorf("unexpected token: %s", sess.Token)
	}
}

func TestSetSessionTakesEffect(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer rotated" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "bad token"})
			return
		}
		json.NewEncoder(w).Encode(models.User{Username: "citizen"})
	}), testSession())

	if _, err := client.Me(context.Background()); !errors.Is(err, secondary.ErrAuthRequired) {
		t.Fatalf("expected stale token to be rejected, got %v", err)
	}

	client.SetSession(&models.Session{Token: "rotated"})
	user, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me failed after SetSession: %v", err)
	}
	if user.Username != "citizen" {
		t.Errorf("unexpected user: %+v", user)
	}
}
