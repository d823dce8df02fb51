package models

// ProfileTips is advisory content fetched after every identity load.
// Tips are ordered by priority; the order is preserved as received.
type ProfileTips struct {
	Level   string   `json:"level"`
	Summary string   `json:"summary"`
	Tips    []string `json:"tips"`
}
