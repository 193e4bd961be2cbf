package domain

import "time"

// NextInput controls the reveal delay of a transition
type NextInput struct {
	DelayMS int `json:"delay_ms,omitempty" validate:"omitempty,min=0,max=10000" example:"300"`
}

// PinInput forces a specific item to the head of its queue, ident is a
// login for profiles and an owner/name slug for repos
type PinInput struct {
	Type  ItemType `json:"type" validate:"required,oneof=profile repo"`
	Ident string   `json:"ident" validate:"required,min=1,max=250" example:"calcom/cal.com"`
}

// RateInput records a verdict on the current card and advances the deck
type RateInput struct {
	UserID  string   `json:"user_id" validate:"required,uuid4"`
	Type    ItemType `json:"type" validate:"required,oneof=profile repo"`
	ID      int64    `json:"id" validate:"required,min=1"`
	Verdict Verdict  `json:"verdict" validate:"required,oneof=hotty notty"`
}

// CurrentResult carries the head card, or the empty sentinel when the pool
// is drained, with a retry hint while the guard cools down. AlreadyRated is
// set when a rating turned out to be a repeat on the server, the deck still
// advances so the user is told rather than stuck
type CurrentResult struct {
	Item         *Item      `json:"item,omitempty"`
	Empty        bool       `json:"empty,omitempty"`
	RetryAt      *time.Time `json:"retry_at,omitempty"`
	AlreadyRated bool       `json:"already_rated,omitempty"`
}
