package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/notevault/internal/buildinfo"
	"github.com/dmitrijs2005/notevault/internal/server"
	"github.com/dmitrijs2005/notevault/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	app, err := server.NewApp(ctx, config.LoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "notevault server: %v\n", err)
		os.Exit(1)
	}

	// blocks until a signal or a failing listener stops the app
	app.Run(ctx)
}
