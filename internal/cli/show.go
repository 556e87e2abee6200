package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
)

// show reveals one record's plaintext. The reveal protocol asks the identity
// provider to sign the session challenge first, so the user sees a signature
// confirmation prompt before anything is decoded.
func (a *App) show(ctx context.Context, id string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login required.")
		return
	}

	rec, err := a.findRecord(id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	plaintext, err := a.protocol.Reveal(ctx, rec)
	if err != nil {
		if errors.Is(err, corpus.ErrDenied) {
			fmt.Fprintln(a.out, "Signature declined; record stays hidden.")
			return
		}
		a.log.Error(ctx, "reveal failed", "id", id, "error", err)
		return
	}

	a.printRecord(rec)

	var sub corpus.Submission
	if err := json.Unmarshal(plaintext, &sub); err != nil {
		// Plaintext that is not a submission document is shown raw.
		fmt.Fprintln(a.out, string(plaintext))
		return
	}
	fmt.Fprintln(a.out, sub.Content)
}

func (a *App) findRecord(id string) (*corpus.Record, error) {
	for _, rec := range a.service.Snapshot() {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("record %s not found, try 'sync' first", id)
}
