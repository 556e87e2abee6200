package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
)

func (a *App) verify(ctx context.Context, id string) {
	a.reviewCmd(ctx, id, corpus.StatusVerified)
}

func (a *App) reject(ctx context.Context, id string) {
	a.reviewCmd(ctx, id, corpus.StatusRejected)
}

func (a *App) reviewCmd(ctx context.Context, id string, target corpus.Status) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login required.")
		return
	}

	var (
		rec *corpus.Record
		err error
	)
	switch target {
	case corpus.StatusVerified:
		rec, err = a.service.Verify(ctx, id)
	default:
		rec, err = a.service.Reject(ctx, id)
	}

	if err != nil {
		switch {
		case errors.Is(err, corpus.ErrNotFound):
			fmt.Fprintf(a.out, "Record %s not found.\n", id)
		case errors.Is(err, corpus.ErrUnauthorized):
			fmt.Fprintln(a.out, "Only the record owner may review it.")
		case errors.Is(err, corpus.ErrIllegalTransition):
			fmt.Fprintf(a.out, "Record %s is not pending.\n", id)
		default:
			a.log.Error(ctx, "review failed", "id", id, "error", err)
		}
		return
	}

	fmt.Fprintf(a.out, "Record %s is now %s.\n", rec.ID, rec.Status)
	a.syncCmd(ctx)
}
