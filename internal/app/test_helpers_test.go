package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/ports/secondary"
)

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// mockQueue for testing
type mockQueue struct {
	mu      sync.Mutex
	records []*secondary.PendingSubmissionRecord

	putErr    error
	listErr   error
	deleteErr error
}

func newMockQueue() *mockQueue {
	return &mockQueue{}
}

func (m *mockQueue) Put(ctx context.Context, record *secondary.PendingSubmissionRecord) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *mockQueue) ListAll(ctx context.Context) ([]*secondary.PendingSubmissionRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*secondary.PendingSubmissionRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *mockQueue) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockQueue) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

func (m *mockQueue) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records), nil
}

type uploadCall struct {
	data        []byte
	filename    string
	contentType string
}

// mockGateway for testing
type mockGateway struct {
	mu      sync.Mutex
	session *models.Session

	uploads []uploadCall
	created []secondary.CreateReportRequest

	uploadErr   error
	createErr   error
	failUploads map[string]error

	// uploadGate, when set, blocks UploadImage until closed;
	// uploadEntered signals that an upload is in flight.
	uploadGate    chan struct{}
	uploadEntered chan struct{}

	reports  []*models.Report
	stats    *models.Stats
	loginErr error
	user     *models.User
}

func newMockGateway() *mockGateway {
	return &mockGateway{failUploads: make(map[string]error)}
}

func (m *mockGateway) UploadImage(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if m.uploadEntered != nil {
		select {
		case m.uploadEntered <- struct{}{}:
		default:
		}
	}
	if m.uploadGate != nil {
		<-m.uploadGate
	}
	if err, ok := m.failUploads[filename]; ok {
		return "", err
	}
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads = append(m.uploads, uploadCall{data: data, filename: filename, contentType: contentType})
	return "/uploads/" + filename, nil
}

func (m *mockGateway) CreateReport(ctx context.Context, req secondary.CreateReportRequest) (*models.Report, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, req)
	return &models.Report{
		ID:          fmt.Sprintf("report-%d", len(m.created)),
		Category:    req.Category,
		Severity:    req.Severity,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
		Status:      string(models.StatusUnverified),
	}, nil
}

func (m *mockGateway) ListReports(ctx context.Context, bounds *models.MapBounds) ([]*models.Report, error) {
	return m.reports, nil
}

func (m *mockGateway) GetReport(ctx context.Context, id string) (*models.Report, error) {
	for _, r := range m.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockGateway) UpdateReportStatus(ctx context.Context, id string, status models.Status) (*models.Report, error) {
	r, err := m.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Status = string(status)
	return r, nil
}

func (m *mockGateway) Stats(ctx context.Context) (*models.Stats, error) {
	return m.stats, nil
}

func (m *mockGateway) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return &models.Session{Token: "token-" + username, User: models.User{Username: username}}, nil
}

func (m *mockGateway) Register(ctx context.Context, username, email, password string) (*models.Session, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return &models.Session{Token: "token-" + username, User: models.User{Username: username, Email: email}}, nil
}

func (m *mockGateway) Me(ctx context.Context) (*models.User, error) {
	if m.user == nil {
		return nil, secondary.ErrAuthRequired
	}
	return m.user, nil
}

func (m *mockGateway) SetSession(session *models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
}

// mockConnectivity for testing
type mockConnectivity struct {
	online bool
}

func (m *mockConnectivity) Online(ctx context.Context) bool {
	return m.online
}

func (m *mockConnectivity) Subscribe(fn func(online bool)) func() {
	return func() {}
}

// mockImaging for testing; the codec is a readable passthrough rather than
// real base64 so test failures print something inspectable.
type mockImaging struct {
	validateReason string
	compressErr    error
	oversize       bool
}

func (m *mockImaging) Validate(img secondary.ImageCandidate) secondary.ValidationResult {
	if m.validateReason != "" {
		return secondary.ValidationResult{Reason: m.validateReason}
	}
	return secondary.ValidationResult{OK: true}
}

func (m *mockImaging) CompressAsync(ctx context.Context, img secondary.ImageCandidate) <-chan secondary.CompressOutcome {
	out := make(chan secondary.CompressOutcome, 1)
	if m.compressErr != nil {
		out <- secondary.CompressOutcome{Err: m.compressErr}
		return out
	}
	out <- secondary.CompressOutcome{Image: secondary.CompressedImage{
		Name:        img.Name + ".jpg",
		ContentType: "image/jpeg",
		Data:        img.Data,
		Oversize:    m.oversize,
	}}
	return out
}

func (m *mockImaging) Encode(data []byte, contentType string) string {
	return "data:" + contentType + ";raw," + string(data)
}

func (m *mockImaging) Decode(encoded string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(encoded, "data:")
	if !ok {
		return nil, "", fmt.Errorf("bad encoding")
	}
	contentType, payload, ok := strings.Cut(rest, ";raw,")
	if !ok {
		return nil, "", fmt.Errorf("bad encoding")
	}
	return []byte(payload), contentType, nil
}

// mockSessionStore for testing
type mockSessionStore struct {
	session *models.Session
	saveErr error
	loadErr error
}

func (m *mockSessionStore) Load() (*models.Session, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.session, nil
}

func (m *mockSessionStore) Save(session *models.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.session = session
	return nil
}

func (m *mockSessionStore) Clear() error {
	m.session = nil
	return nil
}
