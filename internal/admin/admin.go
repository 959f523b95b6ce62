package admin

// Listing wraps one entity collection for the admin panel. Data is
// omitted unless the caller asks for it with includeData.
type Listing struct {
	Count int64       `json:"count"`
	Data  interface{} `json:"data,omitempty"`
}

// TotalCounts is the row count of every entity table.
type TotalCounts struct {
	Ideas    int64 `json:"ideas"`
	Votes    int64 `json:"votes"`
	Comments int64 `json:"comments"`
	Users    int64 `json:"users"`
}

// EntityStats breaks the totals down: ideas per status, votes per
// direction, and the admin share of users.
type EntityStats struct {
	Ideas IdeaStats `json:"ideas"`
	Votes VoteStats `json:"votes"`
	Users UserStats `json:"users"`
}

type IdeaStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
	Implemented int64 `json:"implemented"`
}

type VoteStats struct {
	Total     int64 `json:"total"`
	UpVotes   int64 `json:"upVotes"`
	DownVotes int64 `json:"downVotes"`
}

type UserStats struct {
	Total  int64 `json:"total"`
	Admins int64 `json:"admins"`
}
