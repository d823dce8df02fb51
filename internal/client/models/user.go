// Package models defines the records exchanged with the ForCreators API and
// the raw form input bundles collected from the user. Records coming from the
// server are replaced wholesale on every fetch, never merged field by field.
package models

// Segment is the classification tag assigned by the remote scoring engine.
// The set is closed on the server side; the client treats the value as
// opaque except for display-label mapping.
type Segment string

const (
	SegmentCasual   Segment = "casual"
	SegmentEmerging Segment = "emerging"
	SegmentPro      Segment = "pro"
	SegmentAgency   Segment = "agency"
)

// Plan holds the pricing terms the server derived for a segment. It is
// produced together with the segment and is read-only on the client.
type Plan struct {
	Label        string   `json:"label"`
	Description  string   `json:"description"`
	MonthlyPrice float64  `json:"monthly_price"`
	YearlyPrice  *float64 `json:"yearly_price"`
	BillingNote  string   `json:"billing_note"`
}

// User is the identity record resolved by signup or login.
type User struct {
	UserID        string  `json:"user_id"`
	Email         string  `json:"email"`
	MainPlatform  string  `json:"main_platform"`
	Username      string  `json:"username"`
	Followers     int64   `json:"followers"`
	ProfilesCount int     `json:"profiles_count"`
	Segment       Segment `json:"segment"`
	Plan          Plan    `json:"plan"`
}
