package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookmarks/internal/client/session"
	"github.com/dmitrijs2005/bookmarks/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type signFunc func(ctx context.Context, email, password string) (string, error)

// authenticate prompts for credentials, calls sign and saves the session.
func (a *App) authenticate(ctx context.Context, sign signFunc) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := sign(ctx, email, string(password))
	if err != nil {
		return err
	}

	if err := a.store.Save(ctx, session.Session{AccessToken: token, Email: email}); err != nil {
		return err
	}
	a.setSession(email, token)
	return nil
}

// Register creates an account and logs in with it.
func (a *App) Register(ctx context.Context) error {
	if err := a.authenticate(ctx, a.api.SignUp); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login replaces the current session.
func (a *App) Login(ctx context.Context) error {
	if err := a.authenticate(ctx, a.api.SignIn); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout forgets the saved token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.setSession("", "")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
