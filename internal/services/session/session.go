// Package session turns bearer tokens into the capability a viewer holds
// for the rest of its session.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles"
)

const minSecretLength = 32

// Config holds the signing secret and the profile store roles come from.
type Config struct {
	Secret   []byte
	Issuer   string // Optional; checked when set
	Profiles profiles.Repository
	Clock    clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if len(c.Secret) < minSecretLength {
		vb.Fieldf("Secret", "must be at least %d bytes", minSecretLength)
	}
	if c.Profiles == nil {
		vb.RequiredField("Profiles")
	}
	return vb.Build()
}

// Service verifies tokens and resolves capabilities.
type Service struct {
	secret   []byte
	issuer   string
	profiles profiles.Repository
	clock    clock.Clock
}

// New creates a session service
func New(cfg *Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &Service{
		secret:   cfg.Secret,
		issuer:   cfg.Issuer,
		profiles: cfg.Profiles,
		clock:    c,
	}, nil
}

// Issue signs a token for playerID valid for ttl.
func (s *Service) Issue(playerID string, ttl time.Duration) (string, error) {
	if playerID == "" {
		return "", errors.InvalidArgument("player ID cannot be empty")
	}
	if ttl <= 0 {
		return "", errors.InvalidArgument("ttl must be positive")
	}

	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   playerID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Authenticate verifies token and returns the player it was issued to.
func (s *Service) Authenticate(token string) (string, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return "", errors.Unauthenticated("token is required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnauthenticated, "invalid token")
	}
	if claims.Subject == "" {
		return "", errors.Unauthenticated("token has no subject")
	}

	return claims.Subject, nil
}

// Resolve computes the capability of playerID from its stored role. The
// result is meant to be held for the session, not re-queried per action.
func (s *Service) Resolve(ctx context.Context, playerID string) (entities.Capability, error) {
	out, err := s.profiles.Get(ctx, profiles.GetInput{PlayerID: playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return entities.Capability{}, errors.PermissionDeniedf("player %s has no profile", playerID)
		}
		return entities.Capability{}, errors.Wrap(err, "failed to resolve capability")
	}
	return entities.CapabilityFor(out.Profile), nil
}

// Start authenticates token and resolves the session capability.
func (s *Service) Start(ctx context.Context, token string) (entities.Capability, error) {
	playerID, err := s.Authenticate(token)
	if err != nil {
		return entities.Capability{}, err
	}
	return s.Resolve(ctx, playerID)
}
