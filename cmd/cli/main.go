package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/buildinfo"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/cli"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/config"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
