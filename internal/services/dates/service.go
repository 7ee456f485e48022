package dates

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/boredgamers/tally/internal/model"
)

// ISOFormat is the stored date layout.
const ISOFormat = "2006-01-02"

// Service parses user date input into ISO dates. Exact ISO input passes
// through; anything else ("today", "yesterday", "last friday") goes through
// natural-language parsing.
type Service struct {
	parser *when.Parser
}

// New creates a new date parsing service
func New() *Service {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Service{parser: w}
}

// Parse resolves user text to an ISO date relative to now. Empty input
// defaults to today.
func (s *Service) Parse(text string, now time.Time) (string, error) {
	if text == "" {
		return now.Format(ISOFormat), nil
	}

	if t, err := time.Parse(ISOFormat, text); err == nil {
		return t.Format(ISOFormat), nil
	}

	result, err := s.parser.Parse(text, now)
	if err != nil || result == nil {
		return "", &model.InvalidInputError{Raw: text}
	}
	return result.Time.Format(ISOFormat), nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Parse(text string, now time.Time) (string, error)
}

var _ ServiceInterface = (*Service)(nil)
