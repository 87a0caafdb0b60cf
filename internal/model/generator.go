package model

import "time"

// GenerateRequest represents a password generation request.
// A zero Length and a nil IncludeSpecials fall back to the configured defaults.
type GenerateRequest struct {
	Length          int   `json:"length"`
	IncludeSpecials *bool `json:"include_specials"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	ID              string `json:"id"`
	Password        string `json:"password"`
	Length          int    `json:"length"`
	IncludeSpecials bool   `json:"include_specials"`
}

// HistoryEntry is a password generated during the current session.
type HistoryEntry struct {
	ID              string    `json:"id"`
	Password        string    `json:"password"`
	Length          int       `json:"length"`
	IncludeSpecials bool      `json:"include_specials"`
	CreatedAt       time.Time `json:"created_at"`
}

// HistoryResponse lists session history, newest first.
type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}
