package entities

// URL represents a short-link mapping row in the database.
type URL struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Hits int64  `json:"hits"`
}
