package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookmarks/internal/client/models"
)

func (a *App) printUser(u *models.User) {
	fmt.Fprintf(a.out, "ID:      %d\n", u.ID)
	fmt.Fprintf(a.out, "Email:   %s\n", u.Email)
	fmt.Fprintf(a.out, "Name:    %s\n", u.DisplayName())
	fmt.Fprintf(a.out, "Created: %s\n", u.CreatedAt.Local().Format("2006-01-02 15:04"))
}

func (a *App) Me(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	u, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	a.printUser(u)
	return nil
}

// EditMe updates the profile. A changed email is written back to the
// saved session so the prompt stays accurate.
func (a *App) EditMe(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var (
		upd models.UserUpdate
		err error
	)
	if upd.Email, err = GetOptionalText(a.reader, "New email", a.out); err != nil {
		return err
	}
	if upd.FirstName, err = GetOptionalText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if upd.LastName, err = GetOptionalText(a.reader, "Last name", a.out); err != nil {
		return err
	}

	u, err := a.api.EditMe(ctx, upd)
	if err != nil {
		return err
	}

	if u.Email != a.email {
		a.email = u.Email
		if err := a.store.Save(ctx, sessionOf(a)); err != nil {
			return err
		}
	}

	a.printUser(u)
	return nil
}
