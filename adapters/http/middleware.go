package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/huytran/devconnect/pkg/apperror"
	"github.com/huytran/devconnect/pkg/auth"
	"github.com/huytran/devconnect/pkg/logger"
)

const GinContextKeyOwnerID = "ownerID"

// AuthMiddleware is the auth precondition for every mutation: it validates
// the bearer token and stashes the owner id for handlers. It never creates
// or looks up any account state itself.
func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyOwnerID, claims.OwnerID)

		c.Next()
	}
}

func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyOwnerID)
	if !ok {
		return uuid.Nil, false
	}
	ownerID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return ownerID, true
}

// ErrorMiddleware translates errors attached via c.Error into JSON
// responses. Internal detail is logged, never relayed to the caller.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr)
			} else {
				log.Warn("request rejected: " + appErr.Error())
			}
			c.AbortWithStatusJSON(status, appErr.ToJSON())
			return
		}

		log.Error("unhandled request error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"message": "An internal server error occurred",
		})
	}
}
