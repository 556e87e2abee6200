package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/view"
)

func (a *App) syncCmd(ctx context.Context) {
	if err := a.service.Sync(ctx); err != nil {
		a.log.Warn(ctx, "sync failed", "error", err)
		fmt.Fprintln(a.out, "Store unreachable; showing last known records.")
		return
	}
	fmt.Fprintf(a.out, "Synchronized, %d records.\n", len(a.service.Snapshot()))
}

// list prints one page of records, optionally narrowed by a search term.
// Arguments are positional: an optional term, then an optional page number.
// A bare number is treated as a page, not a term.
func (a *App) list(ctx context.Context, args []string) {
	term := ""
	page := 1

	switch len(args) {
	case 1:
		if n, err := strconv.Atoi(args[0]); err == nil {
			page = n
		} else {
			term = args[0]
		}
	case 2:
		term = args[0]
		if n, err := strconv.Atoi(args[1]); err == nil {
			page = n
		}
	}

	filtered := view.Filter(a.service.Snapshot(), term)
	total := view.TotalPages(len(filtered), a.config.PageSize)
	pageRecords := view.Paginate(filtered, a.config.PageSize, page)

	if len(pageRecords) == 0 {
		fmt.Fprintln(a.out, "No records.")
		return
	}

	for _, rec := range pageRecords {
		a.printRecord(&rec)
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d records)\n", page, total, len(filtered))
}

func (a *App) printRecord(rec *corpus.Record) {
	created := time.Unix(rec.CreatedAt, 0).UTC().Format(time.RFC3339)
	fmt.Fprintf(a.out, "%s  [%s]  %s / %s  owner=%s  %s\n",
		rec.ID, rec.Status, rec.Language, rec.Region, rec.Owner, created)
}
