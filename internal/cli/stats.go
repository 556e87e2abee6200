package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/view"
)

func (a *App) stats(ctx context.Context) {
	snapshot := a.service.Snapshot()

	counts := view.CountByStatus(snapshot)
	fmt.Fprintf(a.out, "Total: %d (pending %d, verified %d, rejected %d)\n",
		counts.Total(), counts.Pending, counts.Verified, counts.Rejected)

	byLanguage := view.CountByLanguage(snapshot)
	if len(byLanguage) == 0 {
		return
	}

	languages := make([]string, 0, len(byLanguage))
	for lang := range byLanguage {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	for _, lang := range languages {
		fmt.Fprintf(a.out, "  %s: %d\n", lang, byLanguage[lang])
	}
}
