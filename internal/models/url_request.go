package models

// ShortenRequest is the form payload for creating a short link.
type ShortenRequest struct {
	URL string `form:"url" binding:"required,url"` // Must be a well-formed absolute URL
}
