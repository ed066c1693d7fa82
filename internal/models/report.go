// Package models contains the domain types shared across the application:
// reports as the backend exposes them, plus the value types (coordinates,
// bounds, sessions) the client moves around.
package models

// Category is the damage category of a report.
type Category string

// Damage categories accepted by the backend.
const (
	CategoryFlooding       Category = "Flooding"
	CategoryRoadBlocked    Category = "Road Blocked"
	CategoryPotholes       Category = "Potholes"
	CategoryBuildingDamage Category = "Building Damage"
	CategoryPowerOutage    Category = "Power Outage"
	CategoryWaterSupply    Category = "Water Supply Issue"
	CategoryOther          Category = "Other"
)

// Categories returns all valid damage categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFlooding,
		CategoryRoadBlocked,
		CategoryPotholes,
		CategoryBuildingDamage,
		CategoryPowerOutage,
		CategoryWaterSupply,
		CategoryOther,
	}
}

// Severity is the reported severity of the damage.
type Severity string

// Severity levels.
const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Status is the verification status of a report, owned by the backend.
type Status string

// Report statuses.
const (
	StatusUnverified Status = "Unverified"
	StatusVerified   Status = "Verified"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// ValidStatus reports whether s is a status the backend accepts.
func ValidStatus(s Status) bool {
	switch s {
	case StatusUnverified, StatusVerified, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Report is a damage report as owned by the backend. The client never
// mutates report state beyond what a creation or status request carries.
type Report struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// Coordinates is a captured device location.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// MapBounds is a geographic bounding box for report queries.
type MapBounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Stats is the aggregate report summary the backend computes for authorities.
type Stats struct {
	Total          int `json:"total"`
	Unverified     int `json:"unverified"`
	Verified       int `json:"verified"`
	InProgress     int `json:"in_progress"`
	Resolved       int `json:"resolved"`
	HighSeverity   int `json:"high_severity"`
	MediumSeverity int `json:"medium_severity"`
	LowSeverity    int `json:"low_severity"`
}

// User is an authenticated backend account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Session is the persisted authentication state: initialized at startup from
// disk, replaced on login/logout, read-only everywhere else.
type Session struct {
	Token string `json:"access_token"`
	User  User   `json:"user"`
}
