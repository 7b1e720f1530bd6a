package i

import "github.com/google/uuid"

// SessionAuthenticator issues and checks bearer tokens scoped to one game session.
type SessionAuthenticator interface {
	Issue(sessionID uuid.UUID) (string, error)
	Authenticate(token string) (uuid.UUID, error)
}
