package models

// TeamMember is a lawyer or staff profile, sourced from the CMS.
type TeamMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Experience string `json:"experience"`
	Specialty  string `json:"specialty"`
	Image      string `json:"image,omitempty"`
	Bio        string `json:"bio"`
}
