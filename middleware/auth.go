package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/krasbyt/appliance-service-api/services"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// RequireAuth validates the session cookie and injects the authenticated
// principal into the request context. Page requests without a valid
// session are redirected to the login view; API and delete requests get
// a 401 JSON body instead.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			rejectUnauthenticated(c)
			return
		}

		claims, err := services.ValidateSessionToken(token)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHENTICATED",
			"message": "Sign in to access this resource",
		},
	})
	c.Abort()
}

// GetUserID extracts the authenticated user's ID from the Gin context
func GetUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	id, ok := userID.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_USER_ID", Message: "User ID has an unexpected type"}
	}

	return id, nil
}

// GetUsername extracts the authenticated username from the Gin context
func GetUsername(c *gin.Context) (string, error) {
	username, exists := c.Get("username")
	if !exists {
		return "", &AuthError{Code: "MISSING_USERNAME", Message: "Username not found in context"}
	}

	name, ok := username.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_USERNAME", Message: "Username has an unexpected type"}
	}

	return name, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
