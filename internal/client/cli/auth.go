package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mzaikin/boardroom/internal/client/gateway"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials, authenticates against the backend,
// and on success activates the session: stores are loaded, change feeds
// opened, and the reminder scheduler started.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Println("Already logged in")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.gw.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, gateway.ErrUnavailable) {
			fmt.Println("Server unavailable, try again later")
		} else {
			fmt.Println("Login failed:", err.Error())
		}
		return err
	}

	if err := a.activateSession(ctx, session); err != nil {
		fmt.Println("Could not load portal data:", err.Error())
		return err
	}

	a.recorder.Record("auth.login", session.UserID)
	fmt.Printf("Welcome, %s!\n", session.Name)
	return nil
}

// Logout tears the session down: scheduler stopped, change feeds closed,
// mirrors dropped. The gateway connection itself stays up for the next login.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	if a.recorder != nil {
		a.recorder.Record("auth.logout", a.session.UserID)
	}
	a.deactivateSession()
	fmt.Println("Logged out")
	return nil
}
