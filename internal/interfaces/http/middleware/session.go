package middleware

import (
	"net/http"
	"strings"

	"github.com/commercekit/checkout/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Session context keys
const (
	SessionClaimsKey     = "session_claims"
	SessionOrderIDKey    = "session_order_id"
	SessionCustomerIDKey = "session_customer_id"
	AuthHeaderKey        = "Authorization"
	BearerPrefix         = "Bearer "
)

// SessionMiddlewareConfig holds configuration for session auth middleware
type SessionMiddlewareConfig struct {
	// Service is required for token validation
	Service *auth.SessionService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// OrderIDParam names the route parameter checked against the token scope
	OrderIDParam string
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultSessionConfig returns default session middleware configuration
func DefaultSessionConfig(service *auth.SessionService) SessionMiddlewareConfig {
	return SessionMiddlewareConfig{
		Service:      service,
		SkipPaths:    []string{"/healthz"},
		OrderIDParam: "orderId",
	}
}

// SessionAuth creates session authentication middleware
func SessionAuth(service *auth.SessionService) gin.HandlerFunc {
	return SessionAuthWithConfig(DefaultSessionConfig(service))
}

// SessionAuthWithConfig creates session authentication middleware with custom config.
// The token must be a bearer JWT scoped to the order named in the route; a valid
// token for a different order is rejected with 403.
func SessionAuthWithConfig(cfg SessionMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.Service.ValidateSessionToken(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err, "Token validation failed")
			return
		}

		if cfg.OrderIDParam != "" {
			if orderID := c.Param(cfg.OrderIDParam); orderID != "" && orderID != claims.OrderID {
				if cfg.Logger != nil {
					cfg.Logger.Warn("Session token scoped to another order",
						zap.String("token_order_id", claims.OrderID),
						zap.String("path_order_id", orderID),
					)
				}
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "FORBIDDEN",
						"message": "Session is not valid for this order",
					},
				})
				return
			}
		}

		c.Set(SessionClaimsKey, claims)
		c.Set(SessionOrderIDKey, claims.OrderID)
		c.Set(SessionCustomerIDKey, claims.CustomerID)

		c.Next()
	}
}

// handleAuthError handles authentication errors
func handleAuthError(c *gin.Context, cfg SessionMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Session authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorCode := "UNAUTHORIZED"
	errorMessage := "Authentication required"

	switch err {
	case auth.ErrExpiredToken:
		errorCode = "TOKEN_EXPIRED"
		errorMessage = "Token has expired"
	case auth.ErrInvalidToken:
		errorCode = "INVALID_TOKEN"
		errorMessage = "Invalid token"
	case auth.ErrTokenNotYetValid:
		errorCode = "TOKEN_NOT_VALID"
		errorMessage = "Token is not yet valid"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    errorCode,
			"message": errorMessage,
		},
	})
}

// GetSessionClaims retrieves session claims from gin.Context
func GetSessionClaims(c *gin.Context) *auth.SessionClaims {
	if claims, exists := c.Get(SessionClaimsKey); exists {
		if sessionClaims, ok := claims.(*auth.SessionClaims); ok {
			return sessionClaims
		}
	}
	return nil
}

// GetSessionOrderID retrieves the order ID from session claims in context
func GetSessionOrderID(c *gin.Context) string {
	if orderID, exists := c.Get(SessionOrderIDKey); exists {
		if id, ok := orderID.(string); ok {
			return id
		}
	}
	return ""
}

// GetSessionCustomerID retrieves the customer ID from session claims in context
func GetSessionCustomerID(c *gin.Context) string {
	if customerID, exists := c.Get(SessionCustomerIDKey); exists {
		if id, ok := customerID.(string); ok {
			return id
		}
	}
	return ""
}
