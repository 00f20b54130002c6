package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(ValidationInvalidAmount, "trace-123")

	s.Equal(string(ValidationInvalidAmount), resp.Error.Code)
	s.Equal("Amount is not a valid decimal number", resp.Error.Message)
	s.Equal("trace-123", resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	resp := NewErrorResponse(MutationUpdateFailed, "trace-456",
		WithDetails("remote store rejected the update"),
		WithMessage("Could not save cell"))

	s.Equal("Could not save cell", resp.Error.Message)
	s.Equal([]string{"remote store rejected the update"}, resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	resp := NewValidationError(map[string]string{"value": "must be numeric"}, "trace-789")

	s.Equal(string(ValidationGeneral), resp.Error.Code)
	s.Len(resp.Error.Details, 1)
	s.Contains(resp.Error.Details[0], "value")
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection reset")
	resp, err := WrapSystemError(internal, "trace-000")

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), resp.Error.Code)
	s.NotContains(resp.Error.Message, "pq:", "internal details must not leak to clients")
}

func (s *ResponseTestSuite) TestToJSON() {
	resp := NewErrorResponse(GridInvalidMonth, "trace-json")

	raw, err := resp.ToJSON()
	s.Require().NoError(err)

	var decoded ErrorResponse
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	s.Equal(resp.Error.Code, decoded.Error.Code)
	s.Equal(resp.Error.TraceID, decoded.Error.TraceID)
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidAmount, http.StatusBadRequest},
		{GridInvalidMonth, http.StatusBadRequest},
		{MutationTransactionNotFound, http.StatusNotFound},
		{MutationNotConfirmed, http.StatusConflict},
		{MutationCreateFailed, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{StateCoordinateOutOfBounds, http.StatusInternalServerError},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}
