package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/identity"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/shared"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

// login unlocks the identity key file, creating a fresh keypair on first
// use. Signatures from then on require an interactive confirmation.
func (a *App) login(ctx context.Context) {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Run 'logout' first.")
		return
	}

	passphrase, err := getPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "error reading passphrase", "error", err)
		return
	}
	defer shared.WipeByteArray(passphrase)

	var local *identity.LocalProvider
	if _, statErr := os.Stat(a.config.KeyFile); errors.Is(statErr, fs.ErrNotExist) {
		local, err = identity.NewLocalProvider()
		if err != nil {
			a.log.Error(ctx, "error generating identity", "error", err)
			return
		}
		if err := local.SaveKeyFile(a.config.KeyFile, passphrase); err != nil {
			a.log.Error(ctx, "error saving key file", "error", err)
			local.Close()
			return
		}
		fmt.Fprintln(a.out, "New identity created in", a.config.KeyFile)
	} else {
		local, err = identity.LoadKeyFile(a.config.KeyFile, passphrase)
		if err != nil {
			a.log.Error(ctx, "login failed", "error", err)
			return
		}
	}

	local.Confirm = func(msg string) bool {
		fmt.Fprintln(a.out, "Signature requested for message:")
		fmt.Fprintln(a.out, msg)
		return GetConfirmation(a.reader, "Sign?", a.out)
	}

	a.local = local
	a.provider = local

	addr, _ := local.Current()
	fmt.Fprintln(a.out, "Logged in as", addr)
}

func (a *App) logout(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	a.local.Close()
	a.local = nil
	a.provider = identity.None{}
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) whoami(ctx context.Context) {
	addr, err := a.provider.Current()
	if err != nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintln(a.out, addr)
}
