package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultTTL is how long an issued session stays valid.
const DefaultTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Session is the explicit actor value carried through a request. "Is
// authenticated" is a pure comparison of ValidUntil against the clock, not
// a token decode scattered across call sites.
type Session struct {
	UserID     uint
	Email      string
	Role       string
	ValidUntil time.Time
}

// Valid reports whether the session is still usable at the given time.
func (s Session) Valid(now time.Time) bool {
	return s.UserID != 0 && now.Before(s.ValidUntil)
}

// IsAdmin reports whether the session's actor holds the admin role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Issue signs a session as an HS256 JWT expiring after DefaultTTL.
func Issue(s Session, secret []byte, now time.Time) (string, error) {
	validUntil := s.ValidUntil
	if validUntil.IsZero() {
		validUntil = now.Add(DefaultTTL)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": s.UserID,
		"email":   s.Email,
		"role":    s.Role,
		"exp":     validUntil.Unix(),
	})
	return token.SignedString(secret)
}

// Parse verifies the token signature and rebuilds the Session. Expiry is
// NOT re-checked here beyond what the JWT library enforces; callers gate on
// Valid(now) explicitly.
func Parse(tokenString string, secret []byte) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}

	s := Session{}
	if userID, ok := claims["user_id"].(float64); ok {
		s.UserID = uint(userID)
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		s.Role = role
	}
	if exp, ok := claims["exp"].(float64); ok {
		s.ValidUntil = time.Unix(int64(exp), 0)
	}
	if s.UserID == 0 {
		return Session{}, ErrInvalidToken
	}
	return s, nil
}
