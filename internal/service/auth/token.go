package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
)

const tokenIssuer = "hostel-parcels"

// Claims represents the JWT claims of a desk access token.
type Claims struct {
	Role        domain.Role `json:"role"`
	Name        string      `json:"name"`
	RoomNumber  string      `json:"room,omitempty"`
	PhoneNumber string      `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// User converts claims back into the authenticated identity.
func (c *Claims) User() domain.User {
	return domain.User{
		Role:        c.Role,
		Name:        c.Name,
		RoomNumber:  c.RoomNumber,
		PhoneNumber: c.PhoneNumber,
	}
}

// TokenService handles JWT creation and validation.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// NewTokenService creates a TokenService signing with HS256.
func NewTokenService(signingKey string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenService{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}
}

// Issue signs an access token for u.
func (s *TokenService) Issue(u domain.User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:        u.Role,
		Name:        u.Name,
		RoomNumber:  u.RoomNumber,
		PhoneNumber: u.PhoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   string(u.Role),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates signature, algorithm, issuer and expiry.
// Any failure yields apperr.ErrUnauthorized.
func (s *TokenService) Parse(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token has expired", apperr.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: invalid token claims", apperr.ErrUnauthorized)
	}
	return claims, nil
}
