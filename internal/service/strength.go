package service

import (
	"errors"

	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/password"
)

var ErrPasswordRequired = errors.New("please enter a password")

// StrengthService handles password strength checks.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check evaluates the request password. An empty password is rejected here
// even though the evaluator itself accepts it.
func (s *StrengthService) Check(req model.StrengthRequest) (model.StrengthResponse, error) {
	if req.Password == "" {
		return model.StrengthResponse{}, ErrPasswordRequired
	}

	result := password.Evaluate(req.Password)

	return model.StrengthResponse{
		Strength: string(result.Label),
		Score:    result.Score,
		Hints:    result.Hints,
	}, nil
}
