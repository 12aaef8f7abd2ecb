package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chaos-room/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "monster not found",
			expected: "NOT_FOUND: monster not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "level must be positive",
			expected: "INVALID_ARGUMENT: level must be positive",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("monster not found").
		WithMeta("monster_id", "door-lice").
		WithMeta("deck", "door")

	s.Equal("door-lice", err.Meta["monster_id"])
	s.Equal("door", errors.GetMeta(err)["deck"])
}

func (s *ErrorsTestSuite) TestWrapKeepsCode() {
	base := errors.NotFound("race not found")
	wrapped := errors.Wrap(base, "failed to build player")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to build player", errors.GetMessage(wrapped))
	s.True(errors.IsNotFound(wrapped))
	s.Equal("NOT_FOUND: failed to build player: NOT_FOUND: race not found", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.Wrapf(base, "failed to load %s", "catalog")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal(base, wrapped.Unwrap())
	s.Equal("failed to load catalog", wrapped.Message)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeDataLoss, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.NotFound("key missing").WithMeta("key", "catalog:monster:x")
	wrapped := errors.WrapWithCode(base, errors.CodeDataLoss, "catalog index is corrupt")

	s.True(errors.IsDataLoss(wrapped))
	s.Equal("catalog:monster:x", wrapped.Meta["key"])
}

func (s *ErrorsTestSuite) TestIs() {
	err := errors.Wrap(errors.AlreadyExists("duplicate id"), "load failed")

	s.True(errors.Is(err, errors.AlreadyExists("")))
	s.False(errors.Is(err, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("combat over")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.Run("no errors builds nil", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", "Gnome", vb)
		errors.ValidateNonNegative("level", 0, vb)
		s.NoError(vb.Build())
	})

	s.Run("fields are reported sorted", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", "  ", vb)
		errors.ValidateNonNegative("level", -1, vb)
		vb.InvalidField("levelsLost", "unknown value \"sometimes\"")

		err := vb.Build()
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal(
			"INVALID_ARGUMENT: validation failed: level: must not be negative, got -1; "+
				"levelsLost: is invalid: unknown value \"sometimes\"; name: is required",
			err.Error(),
		)

		fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Require().True(ok)
		s.Len(fields, 3)
	})
}
