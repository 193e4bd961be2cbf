// Package domain holds DTOs for leaderboard http and service contracts
package domain

import "time"

// TopInput selects one board
type TopInput struct {
	Type  string `json:"type" validate:"required,oneof=profile repo"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// Row is one ranked leaderboard entry, score is hotty minus notty
type Row struct {
	Rank       int       `json:"rank" example:"1"`
	GithubID   int64     `json:"github_id" example:"124599"`
	Type       string    `json:"type" example:"profile"`
	Username   string    `json:"username" example:"shadcn"`
	HottyCount int64     `json:"hotty_count" example:"42"`
	NottyCount int64     `json:"notty_count" example:"7"`
	Score      int64     `json:"score" example:"35"`
	UpdatedAt  time.Time `json:"updated_at" example:"2025-08-01T12:00:00Z"`
}

// PriorityResult carries the curated seed list for one item type
type PriorityResult struct {
	Type  string   `json:"type" example:"repo"`
	Items []string `json:"items" example:"calcom/cal.com"`
}
