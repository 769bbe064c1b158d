package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/cryptox"
)

func (a *App) register(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Enter name (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer cryptox.WipeByteArray(password)

	user, err := a.auth.Register(ctx, name, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			fmt.Fprintln(a.out, "That email is already registered.")
			return
		}
		fmt.Fprintf(a.out, "registration failed: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Registered %s. Use 'login' to sign in.\n", user.Email)
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer cryptox.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password.")
			return
		}
		fmt.Fprintf(a.out, "login failed: %v\n", err)
		return
	}

	a.userEmail = user.Email
	fmt.Fprintf(a.out, "Signed in as %s\n", user.Email)
}

func (a *App) whoami(ctx context.Context) {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if user == nil {
		a.userEmail = ""
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}

	a.userEmail = user.Email
	if user.Name != "" {
		fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
		return
	}
	fmt.Fprintln(a.out, user.Email)
}

func (a *App) logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "logout failed: %v\n", err)
		return
	}
	a.userEmail = ""
	fmt.Fprintln(a.out, "Signed out.")
}
