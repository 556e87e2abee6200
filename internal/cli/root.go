package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	addr, err := a.provider.Current()
	if err != nil {
		return ""
	}
	// Shorten the address: first six plus last four characters.
	if len(addr) > 12 {
		addr = addr[:6] + ".." + addr[len(addr)-4:]
	}
	return fmt.Sprintf("(%s)", addr)
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Endangered language corpus registry (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	a.syncCmd(ctx)

	for {
		fmt.Fprintf(a.out, "corpus %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "sync":
			a.syncCmd(ctx)
		case "list":
			a.list(ctx, args)
		case "submit":
			a.submit(ctx)
		case "verify":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: verify <id>")
				continue
			}
			a.verify(ctx, args[0])
		case "reject":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: reject <id>")
				continue
			}
			a.reject(ctx, args[0])
		case "show":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: show <id>")
				continue
			}
			a.show(ctx, args[0])
		case "stats":
			a.stats(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: sync, list [term] [page], show <id>, submit, verify <id>, reject <id>, stats, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, sync, list [term] [page], stats, exit")
	}
}
