// Package domain holds the deck's core types and service contracts
package domain

import (
	"strconv"
	"time"
)

// CacheKey builds the canonical type:id key used across caches
func CacheKey(t ItemType, id int64) string {
	return string(t) + ":" + strconv.FormatInt(id, 10)
}

// ItemType discriminates what kind of GitHub object a card shows
type ItemType string

// Item types
const (
	TypeProfile ItemType = "profile"
	TypeRepo    ItemType = "repo"
)

// Valid reports whether t is a known item type
func (t ItemType) Valid() bool { return t == TypeProfile || t == TypeRepo }

// Verdict is a user's call on an item
type Verdict string

// Verdicts
const (
	VerdictHotty Verdict = "hotty"
	VerdictNotty Verdict = "notty"
)

// Valid reports whether v is a known verdict
func (v Verdict) Valid() bool { return v == VerdictHotty || v == VerdictNotty }

// State is the queue lifecycle state
type State string

// Queue states
const (
	StateUninitialized State = "uninitialized"
	StateFilling       State = "filling"
	StateReady         State = "ready"
	StateTransitioning State = "transitioning"
)

// ContributionDay is one cell of the activity calendar
type ContributionDay struct {
	Date  string `json:"date" example:"2025-08-01"`
	Count int    `json:"count" example:"12"`
	Level int    `json:"level" example:"2"`
}

// ProfilePayload is the card body for a user
type ProfilePayload struct {
	Login     string `json:"login" example:"shadcn"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Company   string `json:"company,omitempty"`
	Location  string `json:"location,omitempty"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	Repos     int    `json:"public_repos"`
	HTMLURL   string `json:"html_url,omitempty"`
}

// RepoPayload is the card body for a repository
type RepoPayload struct {
	FullName    string   `json:"full_name" example:"calcom/cal.com"`
	Description string   `json:"description,omitempty"`
	Language    string   `json:"language,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	OwnerLogin  string   `json:"owner_login,omitempty"`
	OwnerAvatar string   `json:"owner_avatar,omitempty"`
	HTMLURL     string   `json:"html_url,omitempty"`
}

// Item is one card in the deck, exactly one payload is set
type Item struct {
	Type          ItemType          `json:"type"`
	ID            int64             `json:"id" example:"124599"`
	Profile       *ProfilePayload   `json:"profile,omitempty"`
	Repo          *RepoPayload      `json:"repo,omitempty"`
	Contributions []ContributionDay `json:"contributions,omitempty"`
}

// Key is the rating-cache key for the item, shaped type:id
func (it Item) Key() string { return CacheKey(it.Type, it.ID) }

// Login returns the handle a rating should be filed under
func (it Item) Login() string {
	if it.Type == TypeRepo && it.Repo != nil {
		return it.Repo.OwnerLogin
	}
	if it.Profile != nil {
		return it.Profile.Login
	}
	return ""
}

// FullName returns the repo slug when the item is a repo
func (it Item) FullName() string {
	if it.Repo != nil {
		return it.Repo.FullName
	}
	return ""
}

// Status is a point-in-time snapshot of one queue
type Status struct {
	Type        ItemType   `json:"type"`
	State       State      `json:"state"`
	BufferLen   int        `json:"buffer_len"`
	ShownCount  int        `json:"shown_count"`
	CachedCount int        `json:"cached_count"`
	Limited     bool       `json:"rate_limited"`
	RecoverAt   *time.Time `json:"recover_at,omitempty"`
}
