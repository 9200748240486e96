package models

import "time"

// Job is a single job-board posting as returned by the feed.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	PostedBy    string    `json:"postedBy,omitempty"`
	PostedAt    time.Time `json:"postedAt,omitempty"`
}
