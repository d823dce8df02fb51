package services

import "github.com/forcreators/forcreators-cli/internal/client/models"

// TipsState tags the tips slot so callers can tell "never fetched" apart
// from "fetch failed", even though both render as the same fallback today.
type TipsState int

const (
	TipsNotFetched TipsState = iota
	TipsLoaded
	TipsFailed
)

// TipsResult is the tagged outcome of the best-effort tips fetch.
type TipsResult struct {
	State TipsState
	Tips  *models.ProfileTips // set only when State is TipsLoaded
}

// SessionState is everything the dashboard renders: the three server-derived
// records plus one independent status slot per flow. The slots never share an
// error channel; a failure in one flow does not touch the text of another
// except where a flow explicitly resets its siblings at start.
type SessionState struct {
	User     *models.User
	MediaKit *models.MediaKit
	Tips     TipsResult

	SignupStatus   string
	LoginStatus    string
	MediaKitStatus string
}

// LoggedIn reports whether an identity record is currently loaded.
func (s SessionState) LoggedIn() bool { return s.User != nil }
