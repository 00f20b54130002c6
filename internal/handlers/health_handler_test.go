package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lunargrid/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	handler *HealthCheckHandler
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	db := database.SetupTestDB(s.T())
	s.handler = NewHealthCheckHandler(db.DB)
}

func (s *HealthHandlerTestSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("healthy", resp["status"])
	s.NotEmpty(resp["time"])
}
