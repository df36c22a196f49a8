package models

// Page is free-form CMS page content (about, privacy, etc.).
type Page struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
}
