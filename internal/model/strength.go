package model

// StrengthRequest represents a password strength check request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse carries the label, raw score and improvement hints.
type StrengthResponse struct {
	Strength string   `json:"strength"`
	Score    int      `json:"score"`
	Hints    []string `json:"hints"`
}
