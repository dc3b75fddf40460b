package user

// User represents a registered account. The watchlist and search history are
// embedded in the record itself; no other component owns a copy of them.
type User struct {
	ID            string               `json:"id"`
	Email         string               `json:"email"` // unique across all users
	Name          string               `json:"name"`
	Password      string               `json:"password,omitempty"` // stored verbatim, compared on login
	Watchlist     []WatchlistEntry     `json:"watchlist"`
	SearchHistory []SearchHistoryEntry `json:"searchHistory"`
}

// WatchlistEntry is a snapshot of a catalog movie taken at save time.
// At most one entry per catalog id exists in a user's watchlist.
type WatchlistEntry struct {
	MovieID      int64   `json:"id"` // catalog id
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	SavedAt      int64   `json:"savedAt"` // epoch milliseconds, assigned at insertion
}

// SearchHistoryEntry is one logged search query.
type SearchHistoryEntry struct {
	Query     string `json:"query"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds, assigned at insertion
}
