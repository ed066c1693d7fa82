package secondary

import (
	"context"
	"errors"

	"github.com/example/fieldreport/internal/models"
)

// Sentinel errors for backend interactions. Adapters wrap these so services
// and the CLI can branch on failure class without knowing wire details.
var (
	// ErrAuthRequired indicates no valid session is available.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNetwork indicates the backend could not be reached or timed out.
	ErrNetwork = errors.New("network error")

	// ErrUpload indicates the image upload step failed.
	ErrUpload = errors.New("image upload failed")

	// ErrBackendValidation indicates the backend rejected the request content.
	ErrBackendValidation = errors.New("backend rejected request")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)

// CreateReportRequest carries everything the backend needs to register a
// report: form fields, coordinates, and the reference of an already-uploaded
// image.
type CreateReportRequest struct {
	Category    string
	Severity    string
	Description string
	Latitude    float64
	Longitude   float64
	ImageURL    string
}

// ReportGateway defines the secondary port for the report backend. The
// backend owns all report state; this client only creates, reads, and
// requests status transitions.
type ReportGateway interface {
	// UploadImage stores the image binary remotely and returns a public
	// reference usable in a subsequent CreateReport call.
	UploadImage(ctx context.Context, data []byte, filename, contentType string) (string, error)

	// CreateReport registers a new damage report.
	CreateReport(ctx context.Context, req CreateReportRequest) (*models.Report, error)

	// ListReports returns reports, optionally restricted to a bounding box.
	ListReports(ctx context.Context, bounds *models.MapBounds) ([]*models.Report, error)

	// GetReport fetches a single report by id.
	GetReport(ctx context.Context, id string) (*models.Report, error)

	// UpdateReportStatus transitions a report's verification status.
	UpdateReportStatus(ctx context.Context, id string, status models.Status) (*models.Report, error)

	// Stats returns the aggregate report summary.
	Stats(ctx context.Context) (*models.Stats, error)

	// Login exchanges credentials for a session.
	Login(ctx context.Context, username, password string) (*models.Session, error)

	// Register creates an account and returns its initial session.
	Register(ctx context.Context, username, email, password string) (*models.Session, error)

	// Me returns the account behind the current session.
	Me(ctx context.Context) (*models.User, error)

	// SetSession replaces the session used for authenticated calls.
	// Called on login/logout; everything else treats the session read-only.
	SetSession(session *models.Session)
}

// SessionStore defines the secondary port for session persistence.
type SessionStore interface {
	// Load returns the persisted session, or nil when none exists.
	Load() (*models.Session, error)

	// Save durably replaces the persisted session.
	Save(session *models.Session) error

	// Clear removes the persisted session. Clearing when none exists is
	// not an error.
	Clear() error
}
