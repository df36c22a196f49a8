package models

// Service is a practice area offered by the firm, sourced from the CMS.
type Service struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"` // sanitized HTML
	Slug        string   `json:"slug"`
	Features    []string `json:"features"`
	Image       string   `json:"image,omitempty"`
}
