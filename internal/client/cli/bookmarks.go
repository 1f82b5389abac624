package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookmarks/internal/client/models"
)

// idFromArgs takes the id from the command line or asks for it.
func (a *App) idFromArgs(args []string, prompt string) (int64, error) {
	if len(args) > 0 {
		return parseID(args[0])
	}
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	return parseID(s)
}

func (a *App) printBookmark(b *models.Bookmark) {
	fmt.Fprintf(a.out, "ID:          %d\n", b.ID)
	fmt.Fprintf(a.out, "Title:       %s\n", b.Title)
	fmt.Fprintf(a.out, "Link:        %s\n", b.Link)
	if b.Description != nil && *b.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", *b.Description)
	}
	fmt.Fprintf(a.out, "Updated:     %s\n", b.UpdatedAt.Local().Format("2006-01-02 15:04"))
}

func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	items, err := a.api.ListBookmarks(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No bookmarks yet")
		return nil
	}
	for _, b := range items {
		fmt.Fprintln(a.out, b)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var (
		nb  models.NewBookmark
		err error
	)
	if nb.Title, err = GetRequiredText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if nb.Link, err = GetRequiredText(a.reader, "Link", a.out); err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	if desc != "" {
		nb.Description = &desc
	}

	b, err := a.api.CreateBookmark(ctx, nb)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added bookmark %d\n", b.ID)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.idFromArgs(args, "Enter bookmark id to show")
	if err != nil {
		return err
	}

	b, err := a.api.GetBookmark(ctx, id)
	if err != nil {
		return err
	}
	a.printBookmark(b)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.idFromArgs(args, "Enter bookmark id to edit")
	if err != nil {
		return err
	}

	var upd models.BookmarkUpdate
	if upd.Title, err = GetOptionalText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if upd.Link, err = GetOptionalText(a.reader, "Link", a.out); err != nil {
		return err
	}
	if upd.Description, err = GetOptionalText(a.reader, "Description", a.out); err != nil {
		return err
	}

	if upd.Empty() {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	b, err := a.api.EditBookmark(ctx, id, upd)
	if err != nil {
		return err
	}
	a.printBookmark(b)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.idFromArgs(args, "Enter bookmark id to delete")
	if err != nil {
		return err
	}

	if err := a.api.DeleteBookmark(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted bookmark %d\n", id)
	return nil
}
