package main

import (
	"context"
	"log"
	"os"

	"cotizador/internal/buildinfo"
	"cotizador/internal/cli"
	"cotizador/internal/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
