package main

import (
	"context"
	"log"
	"os"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/app"
	logsvc "github.com/Hellothereeee2312/Portal/services/logger"
	"github.com/Hellothereeee2312/Portal/storage/database"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	ctx := context.Background()

	// set up datastore
	backend, err := database.Open(ctx, conf)
	errAndDie(err)
	a, err := app.New(ctx, conf, logsvc.New(conf, "ADMIN"), backend)
	errAndDie(err)

	// start CLI
	cli := commandLine{app: a, out: os.Stdout}
	err = cli.run(os.Args)
	if cErr := a.Close(); cErr != nil {
		logger.Printf("closing datastore: %v", cErr)
	}
	if err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
