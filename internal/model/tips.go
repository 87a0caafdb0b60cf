package model

// Tips are general password hygiene suggestions shown alongside the tools.
var Tips = []string{
	"Use at least 12 characters.",
	"Mix uppercase and lowercase letters.",
	"Include numbers and special characters.",
	"Avoid common words or sequences.",
	"Enable Two-Factor Authentication (2FA).",
}

// TipsResponse wraps Tips for the API.
type TipsResponse struct {
	Tips []string `json:"tips"`
}
