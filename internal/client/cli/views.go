package cli

import (
	"context"
	"fmt"

	"github.com/mkazantsev/jobdeck/internal/client/guard"
	"github.com/mkazantsev/jobdeck/internal/client/models"
)

// View is a named screen of the application, the terminal equivalent of a
// route.
type View string

const (
	ViewHome      View = "home"
	ViewJobs      View = "jobs"
	ViewLogin     View = "login"
	ViewRegister  View = "register"
	ViewProfile   View = "profile"
	ViewDashboard View = "dashboard"
	ViewPostJob   View = "post-job"
	ViewNotFound  View = "404"
)

// knownViews is the full view set; navigating anywhere else lands on the
// not-found view.
var knownViews = map[View]bool{
	ViewHome:      true,
	ViewJobs:      true,
	ViewLogin:     true,
	ViewRegister:  true,
	ViewProfile:   true,
	ViewDashboard: true,
	ViewPostJob:   true,
	ViewNotFound:  true,
}

// routes declares the access requirement of each protected view. Views not
// listed here are public.
var routes = map[View]guard.Requirement{
	ViewProfile:   {RequiresAuth: true},
	ViewDashboard: {RequiresAuth: true},
	ViewPostJob:   {RequiresAuth: true, AllowedRoles: []models.UserType{models.UserTypeEmployer}},
}

// Navigate runs the requested view through the route guard and renders the
// resulting view: the target itself, the login view, or the not-found view.
// It returns the guard's decision so command handlers can stop when access
// was denied.
func (a *App) Navigate(ctx context.Context, view View) guard.Decision {
	if !knownViews[view] {
		view = ViewNotFound
	}
	req := routes[view]
	decision := guard.Evaluate(a.session.Snapshot(), req)
	a.logger.Debug(ctx, "navigating", "view", string(view), "decision", decision.String())

	switch decision {
	case guard.Pending:
		fmt.Fprintln(a.out, "Session is still loading, try again in a moment.")
	case guard.RedirectLogin:
		a.view = ViewLogin
		a.render(ctx)
	case guard.RedirectForbidden:
		a.view = ViewNotFound
		a.render(ctx)
	case guard.Allow:
		a.view = view
		a.render(ctx)
	}
	return decision
}

// render prints the current view. The header line mirrors what a web
// navigation bar would show: identity, role, and the links it unlocks.
func (a *App) render(ctx context.Context) {
	st := a.session.Snapshot()

	switch a.view {
	case ViewHome:
		fmt.Fprintln(a.out, "JobBoard — find your dream job")
		if st.IsAuthenticated() {
			fmt.Fprintf(a.out, "Signed in as %s. Views: jobs, profile, dashboard", st.User.DisplayName())
			if st.IsEmployer() {
				fmt.Fprint(a.out, ", post-job")
			}
			fmt.Fprintln(a.out)
		} else {
			fmt.Fprintln(a.out, "Views: jobs, login, register")
		}
	case ViewLogin:
		fmt.Fprintln(a.out, "Please log in (command: login).")
	case ViewRegister:
		fmt.Fprintln(a.out, "Create an account (command: register).")
	case ViewJobs:
		fmt.Fprintln(a.out, "Job search — use: jobs [search terms]")
	case ViewProfile:
		a.showProfile(ctx)
	case ViewDashboard:
		a.showDashboard(ctx)
	case ViewPostJob:
		fmt.Fprintln(a.out, "Post a job (command: post).")
	case ViewNotFound:
		fmt.Fprintln(a.out, "404 — page not found or not authorized.")
	}
}
