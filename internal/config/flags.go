package config

import (
	"flag"
	"os"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string  store backend (memory|sqlite|badger|redis|postgres|s3)
//	-s string  sqlite database path
//	-r string  redis address (host:port)
//	-d string  postgres DSN
//	-k string  identity key file
//	-p int     records per page
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-s", "-r", "-d", "-k", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "store backend")
	fs.StringVar(&cfg.SQLitePath, "s", cfg.SQLitePath, "sqlite database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "postgres dsn")
	fs.StringVar(&cfg.KeyFile, "k", cfg.KeyFile, "identity key file")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "records per page")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
