package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
)

func (a *App) submit(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login required.")
		return
	}

	language, err := GetSimpleText(a.reader, "Language name", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading input", "error", err)
		return
	}
	region, err := GetSimpleText(a.reader, "Region", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading input", "error", err)
		return
	}
	content, err := GetMultiline(a.reader, "Corpus data", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading input", "error", err)
		return
	}

	rec, err := a.service.Submit(ctx, language, region, content)
	if err != nil {
		if errors.Is(err, corpus.ErrInconsistent) && rec != nil {
			fmt.Fprintf(a.out, "Record %s stored but not indexed; it will not appear in listings.\n", rec.ID)
			return
		}
		a.log.Error(ctx, "submit failed", "error", err)
		return
	}

	fmt.Fprintln(a.out, "Submitted record", rec.ID)
	a.syncCmd(ctx)
}
