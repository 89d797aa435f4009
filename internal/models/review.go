package models

// Review is a published parent testimonial shown on the marketing site.
type Review struct {
	ID         string `json:"id,omitempty"`
	ParentName string `json:"parent_name"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating,omitempty"`
	Date       string `json:"date"`
}
