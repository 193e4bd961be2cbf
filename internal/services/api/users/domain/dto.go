// Package domain holds DTOs for the users http and service contracts
package domain

import "time"

// UpsertInput registers a signed-in GitHub account. Posting the same
// github_id again refreshes the profile fields and returns the same row
type UpsertInput struct {
	GithubID  int64  `json:"github_id" validate:"required,min=1" example:"124599"`
	Username  string `json:"username" validate:"required,min=1,max=120" example:"shadcn"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url,max=500" example:"https://avatars.githubusercontent.com/u/124599"`
}

// User is a persisted account. ID is the uuid that ratings reference
type User struct {
	ID        string    `json:"id" example:"6a1f6a3e-9c1e-4e0e-8b7a-0f0f0f0f0f0f"`
	GithubID  int64     `json:"github_id" example:"124599"`
	Username  string    `json:"username" example:"shadcn"`
	AvatarURL string    `json:"avatar_url,omitempty" example:"https://avatars.githubusercontent.com/u/124599"`
	CreatedAt time.Time `json:"created_at" example:"2025-08-01T12:00:00Z"`
}
