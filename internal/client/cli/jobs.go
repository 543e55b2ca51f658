package cli

import (
	"context"
	"fmt"

	"github.com/mkazantsev/jobdeck/internal/client/models"
)

func (a *App) searchJobs(ctx context.Context, search string) {
	a.Navigate(ctx, ViewJobs)

	jobs, err := a.jobs.Search(ctx, models.JobFilter{Search: search})
	if err != nil {
		fmt.Fprintln(a.out, "Failed to fetch jobs")
		a.logger.Warn(ctx, "job search failed", "error", err)
		return
	}

	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "No jobs found. Try different search criteria.")
		return
	}

	fmt.Fprintf(a.out, "Found %d job(s)\n", len(jobs))
	for _, job := range jobs {
		a.printJobCard(job)
	}
}

func (a *App) printJobCard(job models.Job) {
	fmt.Fprintf(a.out, "  [%d] %s — %s (%s, %s)", job.ID, job.Title, job.CompanyName, job.JobType, job.Location)
	if job.IsExpired {
		fmt.Fprint(a.out, " [expired]")
	}
	fmt.Fprintln(a.out)
}

func (a *App) showJob(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	job, err := a.jobs.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to fetch job")
		a.logger.Warn(ctx, "job fetch failed", "id", id, "error", err)
		return
	}

	fmt.Fprintf(a.out, "%s at %s\n", job.Title, job.CompanyName)
	fmt.Fprintf(a.out, "  %s / %s / %s\n", job.JobType, job.ExperienceLevel, job.Location)
	if job.SalaryMin != "" || job.SalaryMax != "" {
		fmt.Fprintf(a.out, "  Salary: %s - %s\n", job.SalaryMin, job.SalaryMax)
	}
	fmt.Fprintf(a.out, "  Applications: %d\n", job.ApplicationsCount)
	fmt.Fprintln(a.out, job.Description)
}

// applyToJob is a job-seeker action; the guard keeps employers and
// anonymous users out before any input is collected.
func (a *App) applyToJob(ctx context.Context, arg string) {
	st := a.session.Snapshot()
	if !st.IsJobSeeker() {
		fmt.Fprintln(a.out, "Only job seekers can apply to jobs.")
		return
	}

	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	coverLetter, err := GetMultiline(a.reader, "Cover letter", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	app, err := a.jobs.Apply(ctx, id, models.ApplicationForm{CoverLetter: coverLetter})
	if err != nil {
		fmt.Fprintf(a.out, "Application unsuccessful: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Applied to %s (status: %s)\n", app.JobTitle, app.Status)
}

func (a *App) toggleSaved(ctx context.Context, arg string) {
	if !a.session.Snapshot().IsAuthenticated() {
		fmt.Fprintln(a.out, "Log in to save jobs.")
		return
	}

	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.jobs.ToggleSaved(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not save job: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Saved list updated")
}

func (a *App) listSaved(ctx context.Context) {
	if !a.session.Snapshot().IsAuthenticated() {
		fmt.Fprintln(a.out, "Log in to see saved jobs.")
		return
	}

	saved, err := a.jobs.Saved(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load saved jobs: %s\n", err.Error())
		return
	}
	if len(saved) == 0 {
		fmt.Fprintln(a.out, "No saved jobs.")
		return
	}
	for _, s := range saved {
		a.printJobCard(s.JobDetails)
	}
}
