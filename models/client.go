package models

// Client is a company the firm represents, shown in the clients strip.
type Client struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo,omitempty"`
	Industry string `json:"industry"`
}
