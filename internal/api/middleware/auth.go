package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/dwirez99/majunkita/internal/api/metrics"
)

// Auth verifies the bearer token issued by the identity provider (HS256,
// signed with the provider's JWT secret) and injects the caller identity
// into the request context. Verification failure is terminal for the
// request; there are no retries.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized - invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_subject").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			c.Set("caller_id", sub)
			if email, ok := claims["email"].(string); ok {
				c.Set("caller_email", email)
			}

			return next(c)
		}
	}
}
