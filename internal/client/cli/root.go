package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// getStatus builds the prompt suffix from the current session, e.g.
// "(alice job_seeker)".
func (a *App) getStatus() string {
	st := a.session.Snapshot()
	if st.Loading {
		return "(loading)"
	}
	if !st.IsAuthenticated() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", st.User.DisplayName(), st.User.UserType)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to JobBoard CLI (type 'help' for commands)")

	a.Navigate(ctx, ViewHome)

	for {
		fmt.Fprintf(a.out, "jobdeck %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			if err := a.Login(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "register":
			if err := a.Register(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.whoami()
		case "open":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: open <view>")
				continue
			}
			a.Navigate(ctx, View(args[0]))
		case "profile":
			a.Navigate(ctx, ViewProfile)
		case "update":
			if a.Navigate(ctx, ViewProfile).Allowed() {
				a.updateProfile(ctx)
			}
		case "jobs":
			a.searchJobs(ctx, strings.Join(args, " "))
		case "job":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: job <id>")
				continue
			}
			a.showJob(ctx, args[0])
		case "post":
			if a.Navigate(ctx, ViewPostJob).Allowed() {
				a.postJob(ctx)
			}
		case "apply":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: apply <job id>")
				continue
			}
			a.applyToJob(ctx, args[0])
		case "save":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: save <job id>")
				continue
			}
			a.toggleSaved(ctx, args[0])
		case "saved":
			a.listSaved(ctx)
		case "dashboard":
			a.Navigate(ctx, ViewDashboard)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	st := a.session.Snapshot()
	if st.IsAuthenticated() {
		fmt.Fprintln(a.out, "Available commands: jobs, job <id>, profile, update, dashboard, saved, save <id>, apply <id>, whoami, logout, exit")
		if st.IsEmployer() {
			fmt.Fprintln(a.out, "Employer commands: post")
		}
	} else {
		fmt.Fprintln(a.out, "Available commands: jobs, job <id>, login, register, exit")
	}
}

func (a *App) whoami() {
	st := a.session.Snapshot()
	if !st.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", st.User.Username, st.User.Email, st.User.UserType)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid job id %q", arg)
	}
	return id, nil
}
