// Package services contains application services for the jobdeck client.
// This file defines the job service: searching and reading postings, and
// the role-specific actions (posting, applying, bookmarking).
package services

import (
	"context"
	"fmt"

	"github.com/mkazantsev/jobdeck/internal/client/api"
	"github.com/mkazantsev/jobdeck/internal/client/models"
	"github.com/mkazantsev/jobdeck/internal/client/validate"
)

// JobService defines job-board operations for the CLI.
//
// Contract:
//   - Search and Get are public: they work with or without a session.
//   - Post requires an employer session; Apply requires a job-seeker one.
//     The client pre-checks forms but the server decides authorization.
//   - ToggleSaved bookmarks a posting, or removes an existing bookmark.
//
// All methods honor context cancellation/timeouts.
type JobService interface {
	Search(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Post(ctx context.Context, posting models.JobPosting) (*models.Job, error)
	Apply(ctx context.Context, jobID int64, form models.ApplicationForm) (*models.JobApplication, error)
	ToggleSaved(ctx context.Context, jobID int64) error
	Saved(ctx context.Context) ([]models.SavedJob, error)
}

type jobService struct {
	client api.Client
}

// NewJobService constructs a JobService bound to the given API client.
func NewJobService(client api.Client) JobService {
	return &jobService{client: client}
}

func (s *jobService) Search(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	jobs, err := s.client.Jobs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("job search error: %w", err)
	}
	return jobs, nil
}

func (s *jobService) Get(ctx context.Context, id int64) (*models.Job, error) {
	job, err := s.client.Job(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("job fetch error: %w", err)
	}
	return job, nil
}

func (s *jobService) Post(ctx context.Context, posting models.JobPosting) (*models.Job, error) {
	if err := validate.Struct(posting); err != nil {
		return nil, err
	}
	job, err := s.client.CreateJob(ctx, posting)
	if err != nil {
		return nil, fmt.Errorf("job posting error: %w", err)
	}
	return job, nil
}

func (s *jobService) Apply(ctx context.Context, jobID int64, form models.ApplicationForm) (*models.JobApplication, error) {
	if err := validate.Struct(form); err != nil {
		return nil, err
	}
	app, err := s.client.Apply(ctx, jobID, form)
	if err != nil {
		return nil, fmt.Errorf("application error: %w", err)
	}
	return app, nil
}

func (s *jobService) ToggleSaved(ctx context.Context, jobID int64) error {
	if err := s.client.ToggleSaved(ctx, jobID); err != nil {
		return fmt.Errorf("save job error: %w", err)
	}
	return nil
}

func (s *jobService) Saved(ctx context.Context) ([]models.SavedJob, error) {
	saved, err := s.client.SavedJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("saved jobs error: %w", err)
	}
	return saved, nil
}
