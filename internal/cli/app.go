// Package cli implements the interactive corpus registry client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/config"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/envelope"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/identity"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/kv"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/logging"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/registry"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/reveal"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	store    kv.Store
	service  *registry.Service
	protocol *reveal.Protocol
	provider identity.Provider
	local    *identity.LocalProvider // nil until login
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {

	store, err := kv.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error opening store backend %q: %w", cfg.Backend, err)
	}

	codec := envelope.NewPrefixCodec()
	index := registry.NewIndexManager(store, log)
	records := registry.NewRecordStore(store, index, codec, log)

	a := &App{
		config:   cfg,
		log:      log,
		store:    store,
		provider: identity.None{},
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	ref := &providerRef{app: a}
	a.service = registry.NewService(store, records, ref, log)
	a.service.ReviewDelay = cfg.ReviewDelay

	session, err := reveal.NewSession(cfg.EndpointID, cfg.NetworkID, cfg.ValidityWindowDays)
	if err != nil {
		return nil, err
	}
	a.protocol = reveal.NewProtocol(session, codec, ref, log)
	a.protocol.PostSignDelay = cfg.RevealDelay

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.local != nil {
		a.local.Close()
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.local != nil
}
