package cli

import (
	"context"
	"fmt"

	"github.com/mkazantsev/jobdeck/internal/client/models"
)

// postJob walks an employer through creating a posting. Validation runs
// before the request so a typo in job_type does not cost a round trip.
func (a *App) postJob(ctx context.Context) {
	prompt := func(label string) string {
		value, err := getSimpleText(a.reader, label, a.out)
		if err != nil {
			return ""
		}
		return value
	}

	posting := models.JobPosting{
		Title:           prompt("Job title"),
		JobType:         prompt("Job type (full_time, part_time, contract, internship, remote)"),
		ExperienceLevel: prompt("Experience level (entry, mid, senior, executive)"),
		Location:        prompt("Location"),
		SalaryMin:       prompt("Salary min (optional)"),
		SalaryMax:       prompt("Salary max (optional)"),
	}

	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	posting.Description = description

	job, err := a.jobs.Post(ctx, posting)
	if err != nil {
		fmt.Fprintf(a.out, "Posting unsuccessful: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Job posted: [%d] %s\n", job.ID, job.Title)
}
