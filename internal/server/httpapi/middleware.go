package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key the gates store the verified user under.
const userIDKey = "userID"

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", common.ErrMissingAuthHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", common.ErrMalformedToken
	}
	return parts[1], nil
}

// refreshGate authorizes token-refresh requests. Checks run in a fixed
// order, each with its own outcome: missing header (401), malformed token
// (401), bad signature or expiry (403), missing subject (403), and finally
// the store lookup (403) that makes session replacement on re-login
// effective. The gate never mutates anything.
func (s *Server) refreshGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}

		if err := s.users.ValidateRefreshSession(c.Request.Context(), userID, token); err != nil {
			if errors.Is(err, common.ErrSessionMismatch) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// accessGate authorizes record and profile requests with an access token.
// No store lookup here: access tokens live only as long as their signature.
func (s *Server) accessGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the user the gate verified for this request.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
