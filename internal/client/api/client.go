// Package api contains the HTTP adapter for the job-board REST API.
package api

import (
	"context"

	"github.com/mkazantsev/jobdeck/internal/client/models"
)

// AuthResponse is returned by the login and register endpoints. Refresh is
// carried for completeness; the client currently authenticates with the
// access token only.
type AuthResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    *models.User `json:"user"`
}

// Client is the transport boundary of the application. The bearer token it
// sends is shared mutable state: only the session manager may call SetToken
// and ClearToken, and it does so in lockstep with its own state changes.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*AuthResponse, error)
	Register(ctx context.Context, reg models.Registration) (*AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)

	Jobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	Job(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, posting models.JobPosting) (*models.Job, error)
	Apply(ctx context.Context, jobID int64, form models.ApplicationForm) (*models.JobApplication, error)
	ToggleSaved(ctx context.Context, jobID int64) error
	SavedJobs(ctx context.Context) ([]models.SavedJob, error)

	SetToken(token string)
	ClearToken()
}
