// Package echomw provides the Echo middlewares of the intake server.
package echomw

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

const (
	EnvIntakeBearerToken = "STAT_SCANNER_INTAKE_BEARER_TOKEN"

	authRealm = "stat-scanner-intake"
)

// TokenFromEnv reads the intake token, surrounding whitespace removed.
func TokenFromEnv() string {
	return strings.TrimSpace(os.Getenv(EnvIntakeBearerToken))
}

/*
RequireBearerToken checks "Authorization: Bearer <token>" against expected
and answers 401 otherwise. An empty expected token rejects every request.
*/
func RequireBearerToken(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if expected == "" {
				return unauthorized(c)
			}

			received, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return unauthorized(c)
			}
			if subtle.ConstantTimeCompare([]byte(received), []byte(expected)) != 1 {
				return unauthorized(c)
			}
			return next(c)
		}
	}
}

// bearerToken extracts the credentials; the scheme is case-insensitive.
func bearerToken(header string) (token string, ok bool) {
	const bearer = "bearer "
	auth := strings.TrimSpace(header)
	if len(auth) < len(bearer) || !strings.EqualFold(auth[:len(bearer)], bearer) {
		return "", false
	}
	token = strings.TrimSpace(auth[len(bearer):])
	return token, token != ""
}

func unauthorized(c echo.Context) error {
	LogRouteAccess(c, tl.Info, "Unauthorized access attempt", palette.Yellow)

	c.Response().Header().Set("WWW-Authenticate", `Bearer realm="`+authRealm+`"`)
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": "unauthorized",
	})
}
