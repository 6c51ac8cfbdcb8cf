package models

// FieldError describes a single validation failure on a request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrorResponse is the 400 payload listing every validation failure.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// StatsResponse reports the hit counter for a mapping.
type StatsResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Hits     int64  `json:"hits"`
	ShortURL string `json:"short_url"`
}
