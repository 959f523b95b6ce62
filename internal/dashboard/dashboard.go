package dashboard

// Progress tracks a user's submissions against the configured goal.
type Progress struct {
	Submitted int64 `json:"submitted"`
	Goal      int   `json:"goal"`
}

// Metrics is the personal dashboard payload. Percentages are rounded to
// one decimal place.
type Metrics struct {
	TopIdeasPercentage float64 `json:"topIdeasPercentage"`
	EngagementRate     float64 `json:"engagementRate"`
	CommunityPoints    int64   `json:"communityPoints"`
	IdeasImplemented   int64   `json:"ideasImplemented"`
}
