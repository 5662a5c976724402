package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/transport/console"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	argLength = 4
	usage     = "Usage: hotel <dbname> <port> <user>"
)

func main() {
	if len(os.Args) != argLength {
		fmt.Fprintln(os.Stderr, usage)

		return
	}

	logger.InitLogger()
	logger.WithSession(uuid.NewString())

	args := config.Args{
		Database: os.Args[1],
		Port:     os.Args[2],
		User:     os.Args[3],
	}

	cfg := config.FromArgs(args)

	logger.SetLogLevel(cfg)

	console.Greeting(os.Stdout)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Error().Err(err).Msg("Failed to apply migrations")
		}
	}

	fmt.Print("Connecting to database...")

	app, cleanup, err := di.InitializeConsole(args)
	if err != nil {
		reportStartupError(os.Stderr, err)

		os.Exit(1)
	}

	fmt.Println("Done")

	var once sync.Once

	shutdown := func() {
		once.Do(func() {
			fmt.Print("Disconnecting from database...")
			cleanup()
			fmt.Println("Done\n\nBye !")
		})
	}

	app.HandleSignals(shutdown)

	defer shutdown()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Console stopped unexpectedly")
		}
	}()

	app.Run(context.Background())
}

// reportStartupError explains why the console could not start. Only an
// unreachable database gets the postgres hint.
func reportStartupError(w io.Writer, err error) {
	if failure.IsFatal(err) {
		fmt.Fprintln(w, "Error - Unable to Connect to Database: "+err.Error())
		fmt.Fprintln(w, "Make sure you started postgres on this machine")

		return
	}

	log.Error().Err(err).Msg("Failed to build the console")
	fmt.Fprintln(w, "Error - Unable to start: "+err.Error())
}
