package jwt

import (
	"errors"
	"time"

	"hotel-booking/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carries the opaque guest identity issued by the identity provider.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// Service validates HS256 tokens. Minting exists for tests and local tooling;
// production tokens come from the identity provider sharing the secret.
type Service struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
	parser   *jwt.Parser
}

func NewService(cfg config.JWTConfig) *Service {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	return &Service{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		lifetime: cfg.Duration,
		parser:   jwt.NewParser(opts...),
	}
}

func (s *Service) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) ValidateToken(raw string) (uuid.UUID, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return uuid.Nil, ErrExpiredToken
	case err != nil:
		return uuid.Nil, ErrInvalidToken
	case claims.UserID == uuid.Nil:
		return uuid.Nil, ErrInvalidToken
	}
	return claims.UserID, nil
}
