package service

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-tilt/service/i"
	"github.com/google/uuid"
)

// SessionClaim is the token claim carrying the session a bearer may drive.
const SessionClaim = "session_id"

var ErrInvalidSessionToken = errors.New("invalid session token")

var _ i.SessionAuthenticator = &Auth{}

// Auth issues and checks the bearer tokens of game sessions.
// Implements i.SessionAuthenticator.
type Auth struct {
	tokenizer i.Tokenizer
	ttl       time.Duration
}

// NewAuth creates an Auth whose tokens live for ttl.
func NewAuth(tokenizer i.Tokenizer, ttl time.Duration) (*Auth, error) {
	if tokenizer == nil {
		return nil, errors.New("tokenizer is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	return &Auth{tokenizer: tokenizer, ttl: ttl}, nil
}

// Issue returns a token granting access to the session.
func (a *Auth) Issue(sessionID uuid.UUID) (string, error) {
	return a.tokenizer.Generate(map[string]interface{}{SessionClaim: sessionID.String()}, a.ttl)
}

// Authenticate returns the session a token grants access to.
func (a *Auth) Authenticate(token string) (uuid.UUID, error) {
	claims, err := a.tokenizer.Decode(token)
	if err != nil {
		return uuid.Nil, ErrInvalidSessionToken
	}
	return SessionFromClaims(claims)
}

// SessionFromClaims extracts the session id from decoded token claims.
func SessionFromClaims(claims map[string]interface{}) (uuid.UUID, error) {
	raw, ok := claims[SessionClaim].(string)
	if !ok {
		return uuid.Nil, ErrInvalidSessionToken
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidSessionToken
	}
	return id, nil
}
