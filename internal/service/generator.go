package service

import (
	"errors"
	"fmt"

	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/password"
)

var (
	ErrLengthTooShort = errors.New("password length is below the minimum")
	ErrLengthTooLong  = errors.New("password length is above the maximum")
)

// GeneratorSettings bounds and defaults the lengths callers may request.
type GeneratorSettings struct {
	MinLength       int
	MaxLength       int
	DefaultLength   int
	DefaultSpecials bool
}

// DefaultGeneratorSettings allows 8 to 30 characters with a default of 12.
func DefaultGeneratorSettings() GeneratorSettings {
	return GeneratorSettings{
		MinLength:       8,
		MaxLength:       30,
		DefaultLength:   12,
		DefaultSpecials: true,
	}
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *password.Generator
	history   *History
	settings  GeneratorSettings
}

// NewGeneratorService creates a new GeneratorService. Every generated password
// is recorded in history.
func NewGeneratorService(gen *password.Generator, history *History, settings GeneratorSettings) *GeneratorService {
	return &GeneratorService{
		generator: gen,
		history:   history,
		settings:  settings,
	}
}

// Settings returns the bounds the service enforces.
func (s *GeneratorService) Settings() GeneratorSettings {
	return s.settings
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = s.settings.DefaultLength
	}
	includeSpecials := boolOrDefault(req.IncludeSpecials, s.settings.DefaultSpecials)

	if length < s.settings.MinLength {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooShort, s.settings.MinLength)
	}
	if length > s.settings.MaxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.settings.MaxLength)
	}

	pw, err := s.generator.Generate(length, includeSpecials)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	entry := s.history.Add(pw, includeSpecials)

	return model.GenerateResponse{
		ID:              entry.ID,
		Password:        pw,
		Length:          len(pw),
		IncludeSpecials: includeSpecials,
	}, nil
}

// History returns generated passwords, newest first.
func (s *GeneratorService) History() model.HistoryResponse {
	return model.HistoryResponse{Entries: s.history.List()}
}

// ClearHistory forgets every generated password.
func (s *GeneratorService) ClearHistory() {
	s.history.Clear()
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
