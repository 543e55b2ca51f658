// Package session owns the authentication state of the application: who is
// logged in, which token backs the session, and whether the startup
// reconciliation is still in flight.
package session

import "github.com/mkazantsev/jobdeck/internal/client/models"

// State is a point-in-time snapshot of the session. Readers receive copies;
// only the Manager mutates the live value.
//
// Invariant: User is non-nil only while Token is non-empty. The converse may
// not hold transiently (token persisted, profile fetch pending).
type State struct {
	User    *models.User
	Token   string
	Loading bool
}

// IsAuthenticated reports whether a user profile is loaded. Derived on every
// call, never cached.
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// IsEmployer reports whether the current user is an employer account.
func (s State) IsEmployer() bool {
	return s.User != nil && s.User.UserType == models.UserTypeEmployer
}

// IsJobSeeker reports whether the current user is a job-seeker account.
func (s State) IsJobSeeker() bool {
	return s.User != nil && s.User.UserType == models.UserTypeJobSeeker
}

// clone deep-copies the snapshot so callers cannot reach back into the
// Manager's live state through the User pointer.
func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
