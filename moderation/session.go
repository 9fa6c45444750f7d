package moderation

import "sync"

// Session is the admin gate: a plaintext shared-secret comparison. This is a
// UI affordance to deter casual edits, not a security boundary. There is no
// lockout, rate limit or audit log.
type Session struct {
	secret string

	mu            sync.Mutex
	authenticated bool
}

func NewSession(secret string) *Session {
	return &Session{secret: secret}
}

// Login compares the supplied secret. A wrong secret just returns false so
// the prompt can redisplay with an inline error.
func (s *Session) Login(secret string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if secret != s.secret || s.secret == "" {
		return false
	}
	s.authenticated = true
	return true
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}
