// Package domain holds DTOs for ratings http and service contracts
package domain

import "time"

// Item types and verdicts are closed enums, validated at the edge

// SubmitInput records one verdict on a GitHub profile or repo
type SubmitInput struct {
	UserID         string `json:"user_id" validate:"required,uuid4" example:"6a1f6a3e-9c1e-4e0e-8b7a-0f0f0f0f0f0f"`
	GithubID       int64  `json:"github_id" validate:"required,min=1" example:"124599"`
	GithubUsername string `json:"github_username" validate:"required,min=1,max=120" example:"shadcn"`
	FullName       string `json:"full_name,omitempty" validate:"omitempty,max=250" example:"calcom/cal.com"`
	Type           string `json:"type" validate:"required,oneof=profile repo" example:"profile"`
	Rating         string `json:"rating" validate:"required,oneof=hotty notty" example:"hotty"`
}

// Rating is a persisted verdict
type Rating struct {
	ID             string    `json:"id" example:"0d4b8f1a-3a44-4a52-9f28-1f2f3f4f5f6f"`
	UserID         string    `json:"user_id" example:"6a1f6a3e-9c1e-4e0e-8b7a-0f0f0f0f0f0f"`
	GithubID       int64     `json:"github_id" example:"124599"`
	GithubUsername string    `json:"github_username" example:"shadcn"`
	FullName       string    `json:"full_name,omitempty" example:"calcom/cal.com"`
	Type           string    `json:"type" example:"profile"`
	Rating         string    `json:"rating" example:"hotty"`
	CreatedAt      time.Time `json:"created_at" example:"2025-08-01T12:00:00Z"`
}

// CheckInput asks whether a user already rated an item
type CheckInput struct {
	UserID   string `json:"user_id" validate:"required,uuid4"`
	GithubID int64  `json:"github_id" validate:"required,min=1"`
	Type     string `json:"type" validate:"required,oneof=profile repo"`
}

// CheckResult reports the user's existing verdict, if any
type CheckResult struct {
	HasRated bool   `json:"has_rated" example:"true"`
	Rating   string `json:"rating,omitempty" example:"hotty"`
}

// CountsInput identifies an item whose tallies are wanted
type CountsInput struct {
	GithubID int64  `json:"github_id" validate:"required,min=1"`
	Type     string `json:"type" validate:"required,oneof=profile repo"`
}

// CountsResult carries the hotty and notty tallies for one item
type CountsResult struct {
	Hotty int64 `json:"hotty" example:"42"`
	Notty int64 `json:"notty" example:"7"`
}

// UserStatsResult carries per-user aggregate numbers
type UserStatsResult struct {
	RatingCount int64 `json:"rating_count" example:"128"`
}
