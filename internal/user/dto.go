package user

// ActivitySummaryResponse is the per-user profile counter.
type ActivitySummaryResponse struct {
	IdeasSubmitted int64 `json:"ideasSubmitted"`
}
