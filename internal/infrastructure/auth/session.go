package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingOrderID   = errors.New("missing order_id in claims")
)

// SessionClaims represents the checkout session token claims.
// A session token is scoped to a single order: the storefront mints one
// per checkout and the engine refuses requests for any other order.
type SessionClaims struct {
	jwt.RegisteredClaims
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id,omitempty"`
	Guest      bool   `json:"guest,omitempty"`
}

// SessionService signs and validates checkout session tokens
type SessionService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewSessionService creates a new session token service
func NewSessionService(secret, issuer string, expiration time.Duration) *SessionService {
	if expiration == 0 {
		expiration = time.Hour
	}
	return &SessionService{
		secret:     []byte(secret),
		expiration: expiration,
		issuer:     issuer,
	}
}

// SessionInput contains input for session token generation
type SessionInput struct {
	OrderID    string
	CustomerID string
	Guest      bool
}

// GenerateSessionToken creates a signed session token scoped to an order
func (s *SessionService) GenerateSessionToken(input SessionInput) (string, error) {
	if input.OrderID == "" {
		return "", ErrMissingOrderID
	}

	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   input.OrderID,
			Audience:  jwt.ClaimStrings{s.issuer},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		OrderID:    input.OrderID,
		CustomerID: input.CustomerID,
		Guest:      input.Guest,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSessionToken validates a session token and returns its claims
func (s *SessionService) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.OrderID == "" {
		return nil, ErrMissingOrderID
	}

	return claims, nil
}
