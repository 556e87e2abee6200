package cli

import (
	"context"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/identity"
)

// providerRef forwards to whichever identity the app currently holds,
// so service and protocol see login and logout without rewiring.
type providerRef struct {
	app *App
}

func (p *providerRef) Current() (string, error) {
	return p.app.provider.Current()
}

func (p *providerRef) SignMessage(ctx context.Context, msg string) ([]byte, error) {
	return p.app.provider.SignMessage(ctx, msg)
}

var _ identity.Provider = (*providerRef)(nil)
