package cli

import (
	"context"
	"fmt"

	"github.com/mkazantsev/jobdeck/internal/client/models"
)

func (a *App) showProfile(ctx context.Context) {
	st := a.session.Snapshot()
	if st.User == nil {
		return
	}
	u := st.User

	fmt.Fprintf(a.out, "Profile: %s (%s)\n", u.Username, u.UserType)
	fmt.Fprintf(a.out, "  Name:     %s %s\n", u.FirstName, u.LastName)
	fmt.Fprintf(a.out, "  Email:    %s\n", u.Email)
	fmt.Fprintf(a.out, "  Phone:    %s\n", u.PhoneNumber)
	fmt.Fprintf(a.out, "  Location: %s\n", u.Location)
	if u.UserType == models.UserTypeEmployer {
		fmt.Fprintf(a.out, "  Company:  %s %s\n", u.CompanyName, u.CompanyWebsite)
	} else {
		fmt.Fprintf(a.out, "  Skills:   %s\n", u.Skills)
	}
	if u.Bio != "" {
		fmt.Fprintf(a.out, "  Bio:      %s\n", u.Bio)
	}
}

// updateProfile prompts for the fields to change; empty input keeps the
// current value. On failure the session's user is untouched.
func (a *App) updateProfile(ctx context.Context) {
	prompt := func(label string) string {
		value, err := getSimpleText(a.reader, label+" (empty to keep)", a.out)
		if err != nil {
			return ""
		}
		return value
	}

	upd := models.ProfileUpdate{
		Email:       prompt("Email"),
		FirstName:   prompt("First name"),
		LastName:    prompt("Last name"),
		PhoneNumber: prompt("Phone number"),
		Location:    prompt("Location"),
		Bio:         prompt("Bio"),
	}
	if a.session.Snapshot().IsEmployer() {
		upd.CompanyName = prompt("Company name")
		upd.CompanyWebsite = prompt("Company website")
	} else {
		upd.Skills = prompt("Skills")
	}

	if err := a.session.UpdateProfile(ctx, upd); err != nil {
		fmt.Fprintf(a.out, "Update unsuccessful: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Profile updated")
	a.showProfile(ctx)
}

func (a *App) showDashboard(ctx context.Context) {
	st := a.session.Snapshot()
	if st.User == nil {
		return
	}
	fmt.Fprintf(a.out, "Dashboard for %s\n", st.User.DisplayName())

	saved, err := a.jobs.Saved(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to load saved jobs", "error", err)
		fmt.Fprintln(a.out, "Could not load saved jobs.")
		return
	}
	fmt.Fprintf(a.out, "Saved jobs: %d\n", len(saved))
	for _, s := range saved {
		fmt.Fprintf(a.out, "  [%d] %s at %s\n", s.JobDetails.ID, s.JobDetails.Title, s.JobDetails.CompanyName)
	}
}
