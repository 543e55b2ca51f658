package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkazantsev/jobdeck/internal/client/models"
)

func TestSearchJobs_PrintsResults(t *testing.T) {
	client := &fakeClient{jobs: []models.Job{
		{ID: 1, Title: "Go Developer", CompanyName: "Acme", JobType: models.JobTypeFullTime, Location: "Riga"},
		{ID: 2, Title: "SRE", CompanyName: "Initech", JobType: models.JobTypeRemote, Location: "Remote", IsExpired: true},
	}}
	a, out := newTestApp(t, client, true)

	a.searchJobs(context.Background(), "go")

	got := out.String()
	require.Contains(t, got, "Found 2 job(s)")
	require.Contains(t, got, "[1] Go Developer — Acme")
	require.Contains(t, got, "[expired]")
}

func TestSearchJobs_EmptyResult(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, true)

	a.searchJobs(context.Background(), "cobol")

	require.Contains(t, out.String(), "No jobs found")
}

func TestShowJob_InvalidID(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, true)

	a.showJob(context.Background(), "abc")

	require.Contains(t, out.String(), "invalid job id")
}

func TestShowJob_Detail(t *testing.T) {
	client := &fakeClient{jobs: []models.Job{{
		ID: 7, Title: "Backend Engineer", CompanyName: "Acme",
		JobType: models.JobTypeFullTime, ExperienceLevel: models.ExperienceSenior,
		Location: "Riga", SalaryMin: "4000", SalaryMax: "6000",
		Description: "Build APIs.", ApplicationsCount: 3,
	}}}
	a, out := newTestApp(t, client, true)

	a.showJob(context.Background(), "7")

	got := out.String()
	require.Contains(t, got, "Backend Engineer at Acme")
	require.Contains(t, got, "Salary: 4000 - 6000")
	require.Contains(t, got, "Applications: 3")
	require.Contains(t, got, "Build APIs.")
}

func TestApply_RequiresJobSeeker(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, true)
	loginAs(t, a, client, &models.User{ID: 2, Username: "acme", UserType: models.UserTypeEmployer})

	a.applyToJob(context.Background(), "1")

	require.Contains(t, out.String(), "Only job seekers can apply")
}

func TestApply_Success(t *testing.T) {
	client := &fakeClient{applyResp: &models.JobApplication{ID: 5, JobTitle: "Go Developer", Status: "pending"}}
	a, out := newTestApp(t, client, true)
	loginAs(t, a, client, &models.User{ID: 1, Username: "sam", UserType: models.UserTypeJobSeeker})
	a.reader = bufio.NewReader(strings.NewReader("I would love to join.\n\n"))

	a.applyToJob(context.Background(), "1")

	require.Contains(t, out.String(), "Applied to Go Developer (status: pending)")
}

func TestApply_EmptyCoverLetterRejectedLocally(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, true)
	loginAs(t, a, client, &models.User{ID: 1, Username: "sam", UserType: models.UserTypeJobSeeker})
	a.reader = bufio.NewReader(strings.NewReader("\n"))

	a.applyToJob(context.Background(), "1")

	require.Contains(t, out.String(), "Application unsuccessful")
}

func TestToggleSaved_RequiresLogin(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, true)

	a.toggleSaved(context.Background(), "1")

	require.Contains(t, out.String(), "Log in to save jobs.")
}

func TestListSaved(t *testing.T) {
	client := &fakeClient{saved: []models.SavedJob{
		{ID: 1, JobDetails: models.Job{ID: 4, Title: "Go Developer", CompanyName: "Acme"}},
	}}
	a, out := newTestApp(t, client, true)
	loginAs(t, a, client, &models.User{ID: 1, Username: "sam", UserType: models.UserTypeJobSeeker})

	a.listSaved(context.Background())

	require.Contains(t, out.String(), "[4] Go Developer — Acme")
}

func TestPostJob(t *testing.T) {
	client := &fakeClient{createResp: &models.Job{ID: 9, Title: "Go Developer"}}
	a, out := newTestApp(t, client, true)
	loginAs(t, a, client, &models.User{ID: 2, Username: "acme", UserType: models.UserTypeEmployer})
	stubInputs(t, []string{"Go Developer", "full_time", "senior", "Riga", "", ""}, nil)
	a.reader = bufio.NewReader(strings.NewReader("Build APIs.\n\n"))

	a.postJob(context.Background())

	require.Contains(t, out.String(), "Job posted: [9] Go Developer")
}

func TestPostJob_InvalidJobTypeRejectedLocally(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, true)
	loginAs(t, a, client, &models.User{ID: 2, Username: "acme", UserType: models.UserTypeEmployer})
	stubInputs(t, []string{"Go Developer", "gig", "senior", "Riga", "", ""}, nil)
	a.reader = bufio.NewReader(strings.NewReader("Build APIs.\n\n"))

	a.postJob(context.Background())

	require.Contains(t, out.String(), "Posting unsuccessful")
}
