package dates

import (
	"testing"
	"time"

	"github.com/boredgamers/tally/internal/model"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	now     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	// A Monday, midday, so "yesterday" and "last friday" are unambiguous.
	s.now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
}

func (s *ServiceSuite) TestEmptyDefaultsToToday() {
	date, err := s.service.Parse("", s.now)
	s.Require().NoError(err)
	s.Equal("2024-06-10", date)
}

func (s *ServiceSuite) TestISOPassthrough() {
	date, err := s.service.Parse("2023-11-05", s.now)
	s.Require().NoError(err)
	s.Equal("2023-11-05", date)
}

func (s *ServiceSuite) TestToday() {
	date, err := s.service.Parse("today", s.now)
	s.Require().NoError(err)
	s.Equal("2024-06-10", date)
}

func (s *ServiceSuite) TestYesterday() {
	date, err := s.service.Parse("yesterday", s.now)
	s.Require().NoError(err)
	s.Equal("2024-06-09", date)
}

func (s *ServiceSuite) TestUnparseableRejected() {
	_, err := s.service.Parse("not a date at all", s.now)
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrInvalidInput)

	var invalid *model.InvalidInputError
	s.ErrorAs(err, &invalid)
	s.Equal("not a date at all", invalid.Raw)
}
