package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lunargrid/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestPanicRecoverySuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *PanicRecoveryTestSuite) TestRecoversFromPanic() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("boom")
	})

	s.Require().NoError(handler(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.SystemInternalError), resp.Error.Code)
	s.Equal("trace-123", resp.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPassesThroughWithoutPanic() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	s.Require().NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}
