package models

import "time"

// BlogPost is an article from the CMS blogs collection.
// Content is always HTML by the time it reaches a template: block-structured
// rich text is flattened by the CMS client before it gets here.
type BlogPost struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	Author        string    `json:"author"`
	PublishedAt   time.Time `json:"publishedAt"`
	Tags          []string  `json:"tags,omitempty"`
	Category      string    `json:"category,omitempty"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
}
