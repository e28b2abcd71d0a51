package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsubandi/account-service/pkg/helpers"
	"github.com/rsubandi/account-service/pkg/response"
)

// CtxEmailKey is where Auth stores the verified token subject.
const CtxEmailKey = "userEmail"

// Auth validates the session cookie and injects the token subject (the
// account email) into the Gin context. Tokens are stateless: only signature
// and expiry are checked, there is no server-side session to consult.
func Auth(tokens *helpers.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := helpers.SessionToken(c)
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		subject, err := tokens.Verify(token)
		if err != nil {
			msg := "invalid access token"
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = "access token expired"
			}
			response.AbortError(c, http.StatusUnauthorized, msg, nil)
			return
		}
		c.Set(CtxEmailKey, subject)
		c.Next()
	}
}
