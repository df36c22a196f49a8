package models

// Testimonial is a client quote displayed on the home page.
type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Rating  int    `json:"rating"` // 1-5
	Image   string `json:"image,omitempty"`
}
