package movie

// Summary is a single catalog result as returned by the movie catalog API.
type Summary struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// Page is the first page of a catalog listing. Further pages are never fetched.
type Page struct {
	Page         int       `json:"page"`
	Results      []Summary `json:"results"`
	TotalResults int       `json:"total_results"`
}

// Suggestion is one AI-generated recommendation.
type Suggestion struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Year   string `json:"year,omitempty"`
}
