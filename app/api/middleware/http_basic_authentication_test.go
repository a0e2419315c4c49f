package middleware_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"backend/school-platform/app/api/middleware"
	"backend/school-platform/app/internal/config"
	"backend/school-platform/app/internal/runtime"
)

type HttpBasicAuthenticationSuite struct {
	suite.Suite
	mw   *middleware.Middleware
	echo *echo.Echo
	req  *http.Request
	rec  *httptest.ResponseRecorder
	ctx  echo.Context
	res  runtime.Resource
}

func TestHttpBasicAuthenticationSuite(t *testing.T) {
	suite.Run(t, new(HttpBasicAuthenticationSuite))
}

func (s *HttpBasicAuthenticationSuite) SetupSuite() {
	logger, _ := zap.NewDevelopment()
	s.res = runtime.Resource{
		Config: config.ApplicationConfig{
			BasicAuthConfig: config.BasicAuthConfig{
				Secret: "operator:s3cret",
			},
		},
		Logger: logger,
	}
}

func (s *HttpBasicAuthenticationSuite) SetupTest() {
	s.echo = echo.New()
	s.req = httptest.NewRequest(http.MethodGet, "/users", nil)
	s.rec = httptest.NewRecorder()
	s.ctx = s.echo.NewContext(s.req, s.rec)

	s.mw = middleware.NewMiddleware(s.res)
}

func (s *HttpBasicAuthenticationSuite) callHandler() error {
	handler := s.mw.RequireBasicAuth()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(s.ctx)
}

func (s *HttpBasicAuthenticationSuite) setBasicHeader(credentials string) {
	encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
	s.req.Header.Set("Authorization", "Basic "+encoded)
}

func (s *HttpBasicAuthenticationSuite) assertUnauthorized(err error) {
	s.Require().Error(err)
	httpErr, ok := err.(*echo.HTTPError)
	s.Require().True(ok)
	s.Equal(http.StatusUnauthorized, httpErr.Code)
	s.Equal(`Basic realm="Restricted"`, s.rec.Header().Get("WWW-Authenticate"))
}

func (s *HttpBasicAuthenticationSuite) TestMissingHeader() {
	s.assertUnauthorized(s.callHandler())
}

func (s *HttpBasicAuthenticationSuite) TestNonBasicScheme() {
	s.req.Header.Set("Authorization", "Bearer some-token")
	s.assertUnauthorized(s.callHandler())
}

func (s *HttpBasicAuthenticationSuite) TestInvalidBase64Payload() {
	s.req.Header.Set("Authorization", "Basic %%%not-base64%%%")
	s.assertUnauthorized(s.callHandler())
}

func (s *HttpBasicAuthenticationSuite) TestPayloadWithoutSeparator() {
	s.setBasicHeader("no-colon-here")
	s.assertUnauthorized(s.callHandler())
}

func (s *HttpBasicAuthenticationSuite) TestWrongSecret() {
	s.setBasicHeader("operator:wrong")
	s.assertUnauthorized(s.callHandler())
}

func (s *HttpBasicAuthenticationSuite) TestValidSecretPasses() {
	s.setBasicHeader("operator:s3cret")

	err := s.callHandler()
	s.Require().NoError(err)
	s.Equal(http.StatusOK, s.rec.Code)
}

func (s *HttpBasicAuthenticationSuite) TestLowercaseSchemeAccepted() {
	encoded := base64.StdEncoding.EncodeToString([]byte("operator:s3cret"))
	s.req.Header.Set("Authorization", "basic "+encoded)

	err := s.callHandler()
	s.Require().NoError(err)
	s.Equal(http.StatusOK, s.rec.Code)
}
