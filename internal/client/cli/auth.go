package cli

import (
	"context"
	"fmt"

	"github.com/mkazantsev/jobdeck/internal/client/models"
	"github.com/mkazantsev/jobdeck/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the home view
// is rendered with the user signed in; on failure the server's message (or
// a generic fallback) is printed and the session is left as it was.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	creds := models.Credentials{Username: username, Password: string(password)}
	if err := a.session.Login(ctx, creds); err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return nil
	}

	fmt.Fprintln(a.out, "Login successful")
	a.Navigate(ctx, ViewHome)
	return nil
}

// Register prompts for account details and signs the user up. A successful
// registration also logs the user in, matching the server's response shape.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	userType, err := getSimpleText(a.reader, "Account type (job_seeker or employer)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(confirm)

	reg := models.Registration{
		Username:  username,
		Email:     email,
		UserType:  models.UserType(userType),
		Password:  string(password),
		Password2: string(confirm),
	}
	if err := a.session.Register(ctx, reg); err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %s\n", err.Error())
		return nil
	}

	fmt.Fprintln(a.out, "Success!")
	a.Navigate(ctx, ViewHome)
	return nil
}

// Logout clears the session and returns to the home view. Safe to call when
// not logged in.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	a.Navigate(ctx, ViewHome)
}
