package models

// Estimated holds the average view projections computed by the server.
type Estimated struct {
	PostAvgViews  int64 `json:"post_avg_views"`
	StoryAvgViews int64 `json:"story_avg_views"`
}

// SuggestedRates holds the content prices (EUR) the server suggests for
// one identity.
type SuggestedRates struct {
	SinglePost         float64 `json:"single_post"`
	SingleStory        float64 `json:"single_story"`
	BundlePost3Stories float64 `json:"bundle_post_3stories"`
}

// MediaKit is a regenerable snapshot of estimated reach and suggested
// pricing, always scoped to exactly one user. Regenerating it replaces the
// prior snapshot; there is no history.
type MediaKit struct {
	Username       string         `json:"username"`
	MainPlatform   string         `json:"main_platform"`
	Segment        Segment        `json:"segment"`
	SegmentLabel   string         `json:"segment_label"`
	Followers      int64          `json:"followers"`
	Estimated      Estimated      `json:"estimated"`
	SuggestedRates SuggestedRates `json:"suggested_rates_eur"`
}
