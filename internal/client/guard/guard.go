// Package guard decides whether a navigation target may be rendered for
// the current session. The decision function is pure: it never mutates
// session state and has no side effects, so the router owns the actual
// redirect.
package guard

import (
	"github.com/mkazantsev/jobdeck/internal/client/models"
	"github.com/mkazantsev/jobdeck/internal/client/session"
)

// Requirement is the declarative access constraint a route attaches to
// itself. An empty AllowedRoles means any authenticated role is accepted.
type Requirement struct {
	RequiresAuth bool
	AllowedRoles []models.UserType
}

// Decision is the outcome of evaluating a navigation attempt.
type Decision int

const (
	// Pending: session reconciliation is still in flight; render a neutral
	// waiting state and re-evaluate when loading completes.
	Pending Decision = iota
	// Allow: render the requested view.
	Allow
	// RedirectLogin: the route needs authentication and there is none.
	RedirectLogin
	// RedirectForbidden: authenticated, but the role does not grant access.
	RedirectForbidden
)

// Allowed reports whether the navigation may proceed to the target view.
func (d Decision) Allowed() bool { return d == Allow }

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectForbidden:
		return "redirect-forbidden"
	default:
		return "unknown"
	}
}

// Evaluate applies the access rules in order: loading wins, then the
// authentication requirement, then role restrictions. Role tags that match
// no known role never grant access, so a malformed requirement degrades to
// deny rather than a crash.
func Evaluate(state session.State, req Requirement) Decision {
	if state.Loading {
		return Pending
	}
	if req.RequiresAuth && !state.IsAuthenticated() {
		return RedirectLogin
	}
	if len(req.AllowedRoles) > 0 && !hasAnyRole(state, req.AllowedRoles) {
		return RedirectForbidden
	}
	return Allow
}

func hasAnyRole(state session.State, roles []models.UserType) bool {
	for _, role := range roles {
		switch role {
		case models.UserTypeEmployer:
			if state.IsEmployer() {
				return true
			}
		case models.UserTypeJobSeeker:
			if state.IsJobSeeker() {
				return true
			}
		}
	}
	return false
}
