package model

// Item is the domain model for a todo entry.
// Text and ID are fixed at creation; only Done changes afterwards.
type Item struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
	Done bool   `json:"done" yaml:"done"`
}
