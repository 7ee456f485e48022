package player

import (
	"strings"

	"github.com/boredgamers/tally/internal/model"
)

// Service canonicalizes free-text player names and renders them for display.
type Service struct{}

// New creates a new player identity service
func New() *Service {
	return &Service{}
}

// Normalize canonicalizes a raw name to its stable key form: lowercased and
// trimmed. An empty result is rejected with the offending raw text.
func (s *Service) Normalize(raw string) (model.PlayerKey, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", &model.InvalidInputError{Raw: raw}
	}
	return model.PlayerKey(key), nil
}

// NormalizeAll normalizes a list of raw names, preserving order.
func (s *Service) NormalizeAll(raw []string) ([]model.PlayerKey, error) {
	keys := make([]model.PlayerKey, 0, len(raw))
	for _, r := range raw {
		key, err := s.Normalize(r)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Display renders a player key for presentation: each whitespace-separated
// token is title-cased ("john doe" -> "John Doe"). Purely presentational;
// Normalize(Display(k)) always round-trips back to k.
func (s *Service) Display(key model.PlayerKey) string {
	tokens := strings.Fields(string(key))
	for i, t := range tokens {
		r := []rune(t)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		tokens[i] = string(r)
	}
	return strings.Join(tokens, " ")
}

// SplitList parses a comma-separated list of raw names into normalized keys,
// skipping empty segments. At least one name is required.
func (s *Service) SplitList(text string) ([]model.PlayerKey, error) {
	var keys []model.PlayerKey
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, err := s.Normalize(part)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, &model.InvalidInputError{Raw: text}
	}
	return keys, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Normalize(raw string) (model.PlayerKey, error)
	NormalizeAll(raw []string) ([]model.PlayerKey, error)
	Display(key model.PlayerKey) string
	SplitList(text string) ([]model.PlayerKey, error)
}

var _ ServiceInterface = (*Service)(nil)
